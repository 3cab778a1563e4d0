// Package naming provides identifier sanitization and case conversion for
// generated Go code. All functions are deterministic and total: any input
// string maps to a valid identifier token, and collisions after sanitization
// are reported rather than silently overwritten.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/oasgen/oasgen/generrors"
)

// goReservedWords contains Go reserved keywords that cannot be used as
// identifiers. Predeclared identifiers like "error" are not included because
// they can be shadowed and are commonly wanted as type names.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// titleCaser performs proper Unicode title casing (strings.Title is deprecated).
var titleCaser = cases.Title(language.English, cases.NoLower)

// escapeReservedWord appends an underscore when a name is a Go keyword.
// The check is case-insensitive so PascalCase names like "Range" or "Type"
// are still escaped.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// words splits a raw value on runs of non-alphanumeric characters, collapsing
// consecutive separators into a single split point.
func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ToTypeName converts an arbitrary schema name to a valid Go type name
// (PascalCase). Non-identifier characters split words, the name is guaranteed
// to start with a letter, and Go keywords are escaped.
func ToTypeName(s string) string {
	parts := words(s)
	if len(parts) == 0 {
		return "Type"
	}

	var result strings.Builder
	for _, part := range parts {
		result.WriteString(titleCaser.String(part))
	}
	name := result.String()

	if !unicode.IsLetter([]rune(name)[0]) {
		name = "T" + name
	}
	return escapeReservedWord(name)
}

// ToFieldName converts a schema property name to a valid exported Go field
// name. The rules are the same as for type names.
func ToFieldName(s string) string {
	return ToTypeName(s)
}

// ToFileToken converts a schema name to a lowercase token usable in file
// names and import identifiers. Example: "UserProfile" -> "user_profile".
func ToFileToken(s string) string {
	parts := words(s)
	if len(parts) == 0 {
		return "type"
	}

	var out []string
	for _, part := range parts {
		out = append(out, splitCamel(part)...)
	}
	return strings.ToLower(strings.Join(out, "_"))
}

// splitCamel splits a single word on lower-to-upper case boundaries.
func splitCamel(s string) []string {
	var parts []string
	var current strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(prev) {
			parts = append(parts, current.String())
			current.Reset()
		}
		current.WriteRune(r)
		prev = r
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// ToEnumMemberName converts a single enum value to a member-name token.
// The caller prepends the enum's type name to form the full constant name.
//
// Edge cases handled per the generated-code contract:
//   - empty string        -> "Empty"
//   - the literal "null"  -> "Null"
//   - leading digit       -> prefixed with "N" (e.g. "2xx" -> "N2Xx")
//   - non-identifier runs -> collapsed to one word break ("a--b" -> "AB")
func ToEnumMemberName(value string) string {
	if value == "" {
		return "Empty"
	}
	if value == "null" {
		return "Null"
	}

	parts := words(value)
	if len(parts) == 0 {
		return "Value"
	}
	var result strings.Builder
	for _, part := range parts {
		result.WriteString(titleCaser.String(part))
	}
	name := result.String()
	if unicode.IsDigit([]rune(name)[0]) {
		name = "N" + name
	}
	return name
}

// EnumMemberNames sanitizes every enum value into a constant name prefixed
// with typeName, preserving value order. Two values that sanitize to the same
// constant are a reportable error: silently overwriting one would corrupt the
// generated code.
func EnumMemberNames(typeName string, values []string) ([]string, error) {
	names := make([]string, 0, len(values))
	seen := make(map[string]string, len(values))
	for _, v := range values {
		name := typeName + ToEnumMemberName(v)
		if first, exists := seen[name]; exists {
			return nil, &generrors.NamingError{
				Name:    name,
				First:   first,
				Second:  v,
				Context: "enum " + typeName,
			}
		}
		seen[name] = v
		names = append(names, name)
	}
	return names, nil
}
