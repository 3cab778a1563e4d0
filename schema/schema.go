// Package schema defines the in-memory representation of a parsed schema
// document: the node type, the discriminator declaration, and the graph that
// maps #/... pointer paths to nodes.
//
// Nodes are immutable once parsed. The graph may contain cycles (a property
// or array item referencing back to an ancestor); traversal code is expected
// to carry its own visited set.
package schema

// Schema represents a single schema node.
// Supports OAS 2.0, OAS 3.0, and OAS 3.1+ (JSON Schema Draft 2020-12) fields
// that the resolution engine consumes.
type Schema struct {
	// JSON Schema Core
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Type validation
	Type any   `yaml:"type,omitempty" json:"type,omitempty"` // string or []string (OAS 3.1+)
	Enum []any `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Array validation
	Items *Schema `yaml:"items,omitempty" json:"items,omitempty"`

	// Object validation
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	AdditionalProperties any                `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"` // *Schema or bool

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`

	// OAS specific extensions
	Nullable      bool           `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0 only (replaced by type: [T, "null"] in 3.1+)
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`

	// Format
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
}

// Discriminator represents a discriminator for polymorphism (OAS 3.0+).
// Mapping maps a discriminator property value to the $ref of the branch that
// value selects.
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
}

// CompositionOp identifies which composition keyword a schema node carries.
type CompositionOp int

const (
	// OpNone means the node carries no composition keyword.
	OpNone CompositionOp = iota
	// OpAllOf is intersection-style composition (merge).
	OpAllOf
	// OpOneOf is an exactly-one union.
	OpOneOf
	// OpAnyOf is a flexible union.
	OpAnyOf
)

// String returns the schema keyword for the composition operator.
func (op CompositionOp) String() string {
	switch op {
	case OpAllOf:
		return "allOf"
	case OpOneOf:
		return "oneOf"
	case OpAnyOf:
		return "anyOf"
	default:
		return "none"
	}
}

// Composition returns the composition operator and branch list for a node,
// or OpNone when the node carries no composition keyword. allOf wins when a
// document carries more than one keyword on the same node.
//
// A present-but-empty keyword (allOf: []) still reports its operator with a
// zero-length branch list, so callers can flag the malformed composition
// instead of treating the node as plain.
func (s *Schema) Composition() (CompositionOp, []*Schema) {
	if s == nil {
		return OpNone, nil
	}
	switch {
	case s.AllOf != nil:
		return OpAllOf, s.AllOf
	case s.OneOf != nil:
		return OpOneOf, s.OneOf
	case s.AnyOf != nil:
		return OpAnyOf, s.AnyOf
	default:
		return OpNone, nil
	}
}

// IsReference reports whether the node is a bare $ref.
func (s *Schema) IsReference() bool {
	return s != nil && s.Ref != ""
}

// IsEnum reports whether the node declares an enum value list.
func (s *Schema) IsEnum() bool {
	return s != nil && len(s.Enum) > 0
}
