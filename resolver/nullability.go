package resolver

import "strings"

// IsNullable computes whether a resolved type must be optional.
//
// A property is nullable when it is neither required nor defaulted, when the
// schema carries an explicit nullable flag (OAS 3.0 nullable: true or a
// "null" entry in an OAS 3.1 type array), or when it was collapsed out of a
// two-branch null union.
func IsNullable(required, explicitNullable, hasDefault, nullUnionBranch bool) bool {
	return (!required && !hasDefault) || explicitNullable || nullUnionBranch
}

// EnsureNullable applies the textual optionality marker to a Go type at most
// once. Slices and maps are already nilable and never take a pointer marker;
// a type that already carries one is returned unchanged.
//
// Repeated string concatenation produced duplicate markers in earlier
// generators; all nullable rendering must go through this function.
func EnsureNullable(goType string) string {
	if goType == "" || goType == "any" {
		return goType
	}
	if strings.HasPrefix(goType, "*") ||
		strings.HasPrefix(goType, "[]") ||
		strings.HasPrefix(goType, "map[") {
		return goType
	}
	return "*" + goType
}
