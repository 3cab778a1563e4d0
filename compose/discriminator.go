package compose

import (
	"fmt"
	"sort"

	"github.com/oasgen/oasgen/resolver"
	"github.com/oasgen/oasgen/schema"
)

// discriminator is the internal, source-agnostic view of a tag selector.
// Explicit declarations and inferred sibling pairs both normalize to this
// shape so a single union-build routine serves both.
type discriminator struct {
	property string
	// refTags maps a branch $ref to its declared tag value, inverted from an
	// explicit mapping declaration
	refTags map[string]string
	// positional holds tag values matched to non-null variants by position,
	// recovered from an inferred enum sibling
	positional []string
}

// extractDiscriminator reads an explicit discriminator declaration off the
// composition node. An explicit mapping (tag value to $ref) is inverted so
// branches can look their tag up by reference; both the full pointer and its
// trailing name are indexed because documents use either form.
func (c *Combinator) extractDiscriminator(node *schema.Schema) (*discriminator, bool) {
	decl := node.Discriminator
	if decl == nil || decl.PropertyName == "" {
		return nil, false
	}
	disc := &discriminator{property: decl.PropertyName}
	if len(decl.Mapping) > 0 {
		disc.refTags = make(map[string]string, len(decl.Mapping)*2)
		values := make([]string, 0, len(decl.Mapping))
		for value := range decl.Mapping {
			values = append(values, value)
		}
		sort.Strings(values)
		for _, value := range values {
			ref := decl.Mapping[value]
			disc.refTags[ref] = value
			disc.refTags[schema.RefName(ref)] = value
		}
	}
	return disc, true
}

// tagFor derives one variant's tag. Priority: a declared value (positional
// list or explicit mapping), then the literal the branch itself pins its
// discriminator property to, then a synthesized fallback.
func (c *Combinator) tagFor(disc *discriminator, branch *schema.Schema, variant int) string {
	if variant < len(disc.positional) {
		return disc.positional[variant]
	}
	if branch.IsReference() {
		if tag, ok := disc.refTags[branch.Ref]; ok {
			return tag
		}
		if tag, ok := disc.refTags[schema.RefName(branch.Ref)]; ok {
			return tag
		}
	}
	if tag, ok := c.branchTagLiteral(disc.property, branch); ok {
		return tag
	}
	return fmt.Sprintf("type_%d", variant)
}

// branchTagLiteral looks inside a branch for the single string value its own
// discriminator property is pinned to (a one-value enum). Reference branches
// are dereferenced first; resolution failure just means no literal.
func (c *Combinator) branchTagLiteral(property string, branch *schema.Schema) (string, bool) {
	node := branch
	if node.IsReference() {
		resolved, err := c.res.Resolve(node.Ref)
		if err != nil {
			return "", false
		}
		node = resolved
	}
	prop, ok := node.Properties[property]
	if !ok || len(prop.Enum) != 1 {
		return "", false
	}
	value, ok := prop.Enum[0].(string)
	return value, ok
}

// Inferred describes a discriminator recovered from an enclosing object
// rather than a formal declaration: an enum-of-strings property acting as
// the tag for a union-typed payload property elsewhere in the same object.
type Inferred struct {
	// Property is the enum property carrying the tag
	Property string
	// Values are the tag values in enum declaration order
	Values []string
	// UnionProperty is the union-typed payload property the tag selects for
	UnionProperty string
}

// InferDiscriminator scans an object's properties for the informal
// discriminated-union encoding many documents use instead of the formal
// keyword: a string-enum property sitting next to a oneOf/anyOf property.
// The union must have more than one branch, or exactly one branch that is a
// reference, for the pair to count. Candidates are scanned in sorted property
// order so inference is deterministic.
func InferDiscriminator(obj *schema.Schema) (Inferred, bool) {
	if obj == nil || len(obj.Properties) < 2 {
		return Inferred{}, false
	}
	names := make([]string, 0, len(obj.Properties))
	for name := range obj.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var enumProp string
	var enumValues []string
	for _, name := range names {
		if values, ok := stringEnumValues(obj.Properties[name]); ok {
			enumProp, enumValues = name, values
			break
		}
	}
	if enumProp == "" {
		return Inferred{}, false
	}

	for _, name := range names {
		if name == enumProp {
			continue
		}
		prop := obj.Properties[name]
		op, branches := prop.Composition()
		if op != schema.OpOneOf && op != schema.OpAnyOf {
			continue
		}
		if _, isNullUnion := resolver.NullUnionBranch(branches); isNullUnion {
			continue
		}
		if len(branches) > 1 || (len(branches) == 1 && branches[0].IsReference()) {
			return Inferred{
				Property:      enumProp,
				Values:        enumValues,
				UnionProperty: name,
			}, true
		}
	}
	return Inferred{}, false
}

// stringEnumValues returns a property's enum values when every one of them is
// a string literal.
func stringEnumValues(s *schema.Schema) ([]string, bool) {
	if s == nil || len(s.Enum) == 0 {
		return nil, false
	}
	values := make([]string, 0, len(s.Enum))
	for _, v := range s.Enum {
		str, ok := v.(string)
		if !ok {
			return nil, false
		}
		values = append(values, str)
	}
	return values, true
}
