package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestComposition(t *testing.T) {
	tests := []struct {
		name     string
		node     *Schema
		wantOp   CompositionOp
		branches int
	}{
		{name: "nil node", node: nil, wantOp: OpNone},
		{name: "plain object", node: &Schema{Type: "object"}, wantOp: OpNone},
		{
			name:     "allOf",
			node:     &Schema{AllOf: []*Schema{{Type: "object"}}},
			wantOp:   OpAllOf,
			branches: 1,
		},
		{
			name:     "oneOf",
			node:     &Schema{OneOf: []*Schema{{Type: "string"}, {Type: "null"}}},
			wantOp:   OpOneOf,
			branches: 2,
		},
		{
			name:     "anyOf",
			node:     &Schema{AnyOf: []*Schema{{Type: "string"}}},
			wantOp:   OpAnyOf,
			branches: 1,
		},
		{
			name: "allOf wins over oneOf",
			node: &Schema{
				AllOf: []*Schema{{Type: "object"}},
				OneOf: []*Schema{{Type: "string"}, {Type: "integer"}},
			},
			wantOp:   OpAllOf,
			branches: 1,
		},
		{
			name:     "empty allOf keyword still reports its operator",
			node:     &Schema{AllOf: []*Schema{}},
			wantOp:   OpAllOf,
			branches: 0,
		},
		{
			name:     "empty oneOf keyword still reports its operator",
			node:     &Schema{OneOf: []*Schema{}},
			wantOp:   OpOneOf,
			branches: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, branches := tt.node.Composition()
			assert.Equal(t, tt.wantOp, op)
			assert.Len(t, branches, tt.branches)
		})
	}
}

func TestCompositionOpString(t *testing.T) {
	assert.Equal(t, "allOf", OpAllOf.String())
	assert.Equal(t, "oneOf", OpOneOf.String())
	assert.Equal(t, "anyOf", OpAnyOf.String())
	assert.Equal(t, "none", OpNone.String())
}

func TestTypes(t *testing.T) {
	tests := []struct {
		name string
		node *Schema
		want []string
	}{
		{name: "nil node", node: nil, want: nil},
		{name: "no type", node: &Schema{}, want: nil},
		{name: "string form", node: &Schema{Type: "string"}, want: []string{"string"}},
		{
			name: "array form",
			node: &Schema{Type: []any{"string", "null"}},
			want: []string{"string", "null"},
		},
		{
			name: "string slice form",
			node: &Schema{Type: []string{"integer", "null"}},
			want: []string{"integer", "null"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Types())
		})
	}
}

func TestPrimaryType(t *testing.T) {
	tests := []struct {
		name string
		node *Schema
		want string
	}{
		{name: "explicit", node: &Schema{Type: "integer"}, want: "integer"},
		{name: "first non-null", node: &Schema{Type: []any{"null", "string"}}, want: "string"},
		{name: "null only", node: &Schema{Type: "null"}, want: "null"},
		{name: "inferred object", node: &Schema{Properties: map[string]*Schema{"a": nil}}, want: "object"},
		{name: "inferred array", node: &Schema{Items: &Schema{Type: "string"}}, want: "array"},
		{name: "inferred enum string", node: &Schema{Enum: []any{"a"}}, want: "string"},
		{name: "nothing", node: &Schema{}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.PrimaryType())
		})
	}
}

func TestIsNullOnly(t *testing.T) {
	tests := []struct {
		name string
		node *Schema
		want bool
	}{
		{name: "type null", node: &Schema{Type: "null"}, want: true},
		{name: "bare nullable", node: &Schema{Nullable: true}, want: true},
		{name: "nullable string", node: &Schema{Type: "string", Nullable: true}, want: false},
		{name: "type list with null", node: &Schema{Type: []any{"string", "null"}}, want: false},
		{name: "nullable ref", node: &Schema{Ref: "#/x", Nullable: true}, want: false},
		{name: "plain", node: &Schema{Type: "string"}, want: false},
		{name: "nil", node: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.IsNullOnly())
		})
	}
}

func TestSchemaYAMLRoundTripFields(t *testing.T) {
	doc := `
$ref: ""
type: object
description: a pet
required: [name]
properties:
  name:
    type: string
  tag:
    type: string
    nullable: true
discriminator:
  propertyName: kind
  mapping:
    dog: '#/components/schemas/Dog'
`
	var s Schema
	require.NoError(t, yaml.Unmarshal([]byte(doc), &s))
	assert.Equal(t, "a pet", s.Description)
	assert.Equal(t, []string{"name"}, s.Required)
	assert.True(t, s.Properties["tag"].Nullable)
	require.NotNil(t, s.Discriminator)
	assert.Equal(t, "kind", s.Discriminator.PropertyName)
	assert.Equal(t, "#/components/schemas/Dog", s.Discriminator.Mapping["dog"])
}
