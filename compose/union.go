package compose

// UnionType is the codegen artifact for a oneOf/anyOf composition that could
// not be collapsed to a single type. Variant order follows branch declaration
// order and is the decode order for the lossy wrapper form.
type UnionType struct {
	// Name is the sanitized type name of the union
	Name string
	// Discriminator is the tag property name; empty for the wrapper fallback
	Discriminator string
	// DiscriminatorField is the Go field name the tag is surfaced as
	DiscriminatorField string
	// Variants holds one entry per non-null branch
	Variants []Variant
	// Lossy marks the no-discriminator wrapper form, whose decode picks the
	// first branch that accepts the payload
	Lossy bool
	// Imports are the module tokens the variant payload types live in
	Imports []string
}

// Variant is one tagged branch of a union.
type Variant struct {
	// Tag is the discriminator literal selecting this variant; empty in the
	// wrapper fallback form
	Tag string
	// TypeName is the payload's resolved type expression
	TypeName string
	// FieldName is the Go field and constructor suffix for this variant
	FieldName string
}

// Discriminated reports whether the union decodes by switching on a tag.
func (u *UnionType) Discriminated() bool {
	return u.Discriminator != "" && !u.Lossy
}
