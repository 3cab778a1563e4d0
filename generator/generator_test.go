package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasgen/oasgen/schema"
)

func orderGraph() *schema.Graph {
	g := schema.NewGraph("#/components/schemas")
	g.Register("Order", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"featuredProduct": {OneOf: []*schema.Schema{
				{Ref: "#/components/schemas/Product"},
				{Type: "null"},
			}},
			"items": {
				Type:  "array",
				Items: &schema.Schema{Ref: "#/components/schemas/Product"},
			},
		},
		Required: []string{"items"},
	})
	g.Register("Product", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"id":   {Type: "string"},
			"name": {Type: "string"},
		},
		Required: []string{"id", "name"},
	})
	return g
}

func TestGenerateGraphEndToEnd(t *testing.T) {
	result, err := New().GenerateGraph(orderGraph())
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.GeneratedTypes)
	assert.Equal(t, 0, result.GeneratedUnions)

	order := result.GetFile("order.go")
	require.NotNil(t, order)
	code := string(order.Content)
	assert.Contains(t, code, "package models")
	assert.Contains(t, code, "type Order struct {")
	assert.Contains(t, code, "FeaturedProduct *Product")
	assert.Contains(t, code, `json:"featuredProduct,omitempty"`)
	assert.Contains(t, code, "Items           []Product")
	assert.Contains(t, code, `json:"items"`)

	product := result.GetFile("product.go")
	require.NotNil(t, product)
	assert.Contains(t, string(product.Content), "type Product struct {")
}

func TestGenerateGraphDocumentOrder(t *testing.T) {
	// File order must follow document registration order, not sorted names.
	g := schema.NewGraph("#/components/schemas")
	g.Register("Zebra", &schema.Schema{Type: "string"})
	g.Register("Aardvark", &schema.Schema{Type: "string"})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	require.Len(t, result.Files, 2)
	assert.Equal(t, "zebra.go", result.Files[0].Name)
	assert.Equal(t, "aardvark.go", result.Files[1].Name)
}

func TestGenerateGraphDiscriminatedUnion(t *testing.T) {
	g := schema.NewGraph("#/components/schemas")
	g.Register("Dog", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"kind": {Type: "string", Enum: []any{"dog"}},
			"bark": {Type: "string"},
		},
		Required: []string{"kind", "bark"},
	})
	g.Register("Cat", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"kind": {Type: "string", Enum: []any{"cat"}},
			"meow": {Type: "string"},
		},
		Required: []string{"kind", "meow"},
	})
	g.Register("Pet", &schema.Schema{
		OneOf: []*schema.Schema{
			{Ref: "#/components/schemas/Dog"},
			{Ref: "#/components/schemas/Cat"},
		},
		Discriminator: &schema.Discriminator{PropertyName: "kind"},
	})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.GeneratedUnions)

	pet := result.GetFile("pet.go")
	require.NotNil(t, pet)
	code := string(pet.Content)
	assert.Contains(t, code, "type Pet struct {")
	assert.Contains(t, code, `PetTagDog = "dog"`)
	assert.Contains(t, code, "func (u *Pet) UnmarshalJSON(data []byte) error")
}

func TestGenerateGraphArrayItemUnion(t *testing.T) {
	// A composition at array item position resolves to a scoped type name;
	// the type carrying that name must actually be generated.
	g := schema.NewGraph("#/components/schemas")
	g.Register("Dog", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"kind": {Type: "string", Enum: []any{"dog"}},
			"bark": {Type: "string"},
		},
		Required: []string{"kind", "bark"},
	})
	g.Register("Cat", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"kind": {Type: "string", Enum: []any{"cat"}},
			"meow": {Type: "string"},
		},
		Required: []string{"kind", "meow"},
	})
	g.Register("Zoo", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"animals": {
				Type: "array",
				Items: &schema.Schema{
					OneOf: []*schema.Schema{
						{Ref: "#/components/schemas/Dog"},
						{Ref: "#/components/schemas/Cat"},
					},
					Discriminator: &schema.Discriminator{PropertyName: "kind"},
				},
			},
		},
		Required: []string{"animals"},
	})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.GeneratedUnions)

	zoo := result.GetFile("zoo.go")
	require.NotNil(t, zoo)
	assert.Contains(t, string(zoo.Content), "Animals []ZooAnimals")

	union := result.GetFile("zoo_animals.go")
	require.NotNil(t, union, "the item union must be defined, not just referenced")
	code := string(union.Content)
	assert.Contains(t, code, "type ZooAnimals struct {")
	assert.Contains(t, code, `ZooAnimalsTagDog = "dog"`)
	assert.Contains(t, code, `ZooAnimalsTagCat = "cat"`)
}

func TestGenerateGraphMapValueUnion(t *testing.T) {
	// Same for additionalProperties: the map value type needs its own file.
	g := schema.NewGraph("#/components/schemas")
	g.Register("Registry", &schema.Schema{
		Type: "object",
		AdditionalProperties: &schema.Schema{AnyOf: []*schema.Schema{
			{Type: "object", Properties: map[string]*schema.Schema{"a": {Type: "string"}}},
			{Type: "object", Properties: map[string]*schema.Schema{"b": {Type: "string"}}},
		}},
	})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.HasWarnings(), "a wrapper value union is reported as lossy")

	registry := result.GetFile("registry.go")
	require.NotNil(t, registry)
	assert.Contains(t, string(registry.Content), "map[string]RegistryValue")

	value := result.GetFile("registry_value.go")
	require.NotNil(t, value)
	assert.Contains(t, string(value.Content), "type RegistryValue struct {")
}

func TestGenerateGraphArrayItemNullUnionCollapses(t *testing.T) {
	// A null union at item position collapses to a nullable element and must
	// not synthesize an auxiliary type.
	g := schema.NewGraph("#/components/schemas")
	g.Register("Report", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"scores": {
				Type: "array",
				Items: &schema.Schema{OneOf: []*schema.Schema{
					{Type: "number"},
					{Type: "null"},
				}},
			},
		},
		Required: []string{"scores"},
	})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 0, result.GeneratedUnions)
	require.Len(t, result.Files, 1)
	assert.Contains(t, string(result.Files[0].Content), "Scores []*float64")
}

func TestGenerateGraphInferredDiscriminator(t *testing.T) {
	g := schema.NewGraph("#/components/schemas")
	g.Register("Card", &schema.Schema{
		Type:       "object",
		Properties: map[string]*schema.Schema{"number": {Type: "string"}},
	})
	g.Register("Bank", &schema.Schema{
		Type:       "object",
		Properties: map[string]*schema.Schema{"iban": {Type: "string"}},
	})
	g.Register("Payment", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"method": {Type: "string", Enum: []any{"card", "bank"}},
			"details": {OneOf: []*schema.Schema{
				{Ref: "#/components/schemas/Card"},
				{Ref: "#/components/schemas/Bank"},
			}},
		},
		Required: []string{"method", "details"},
	})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.True(t, result.Success)

	payment := result.GetFile("payment.go")
	require.NotNil(t, payment)
	assert.Contains(t, string(payment.Content), "Details PaymentDetails")

	// The informal enum-next-to-union encoding must produce the same tagged
	// union a formal discriminator would.
	union := result.GetFile("payment_details.go")
	require.NotNil(t, union)
	code := string(union.Content)
	assert.Contains(t, code, "type PaymentDetails struct {")
	assert.Contains(t, code, `PaymentDetailsTagCard = "card"`)
	assert.Contains(t, code, `PaymentDetailsTagBank = "bank"`)
	assert.Contains(t, code, `union.Tag(data, "method")`)
}

func TestGenerateGraphWrapperUnionWarns(t *testing.T) {
	g := schema.NewGraph("#/components/schemas")
	g.Register("A", &schema.Schema{
		Type:       "object",
		Properties: map[string]*schema.Schema{"a": {Type: "string"}},
	})
	g.Register("B", &schema.Schema{
		Type:       "object",
		Properties: map[string]*schema.Schema{"b": {Type: "string"}},
	})
	g.Register("Payload", &schema.Schema{AnyOf: []*schema.Schema{
		{Ref: "#/components/schemas/A"},
		{Ref: "#/components/schemas/B"},
	}})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.True(t, result.Success, "a lossy union is a warning, not a failure")
	assert.True(t, result.HasWarnings())

	payload := result.GetFile("payload.go")
	require.NotNil(t, payload)
	assert.Contains(t, string(payload.Content), "union.DecodeStrict")
}

func TestGenerateGraphEmptyCompositionWarns(t *testing.T) {
	// allOf: [] degrades to an untyped alias and is surfaced as a warning.
	g := schema.NewGraph("#/components/schemas")
	g.Register("Anything", &schema.Schema{AllOf: []*schema.Schema{}})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.HasWarnings())
	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0].Message, "malformed composition")

	anything := result.GetFile("anything.go")
	require.NotNil(t, anything)
	assert.Contains(t, string(anything.Content), "type Anything = any")
}

func TestGenerateGraphFieldOrderSorted(t *testing.T) {
	// Properties are held in a map, so rendering sorts them for byte-stable
	// output across runs.
	g := schema.NewGraph("#/components/schemas")
	g.Register("Config", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"zeta":  {Type: "string"},
			"alpha": {Type: "string"},
			"mid":   {Type: "string"},
		},
	})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	config := result.GetFile("config.go")
	require.NotNil(t, config)

	code := string(config.Content)
	alpha := strings.Index(code, "Alpha")
	mid := strings.Index(code, "Mid")
	zeta := strings.Index(code, "Zeta")
	require.NotEqual(t, -1, alpha)
	assert.True(t, alpha < mid && mid < zeta, "fields must render in sorted property order")
}

func TestGenerateGraphEnum(t *testing.T) {
	g := schema.NewGraph("#/components/schemas")
	g.Register("Color", &schema.Schema{
		Type: "string",
		Enum: []any{"red", "green", "blue"},
	})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)

	color := result.GetFile("color.go")
	require.NotNil(t, color)
	code := string(color.Content)
	assert.Contains(t, code, "type Color string")
	assert.Contains(t, code, `ColorRed   Color = "red"`)
	assert.Contains(t, code, `ColorBlue  Color = "blue"`)
}

func TestGenerateGraphEnumMemberCollision(t *testing.T) {
	g := schema.NewGraph("#/components/schemas")
	g.Register("Status", &schema.Schema{
		Type: "string",
		Enum: []any{"on-line", "on_line"},
	})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.CriticalCount)
	assert.Nil(t, result.GetFile("status.go"))
}

func TestGenerateGraphFileTokenCollision(t *testing.T) {
	g := schema.NewGraph("#/components/schemas")
	g.Register("UserProfile", &schema.Schema{Type: "string"})
	g.Register("user_profile", &schema.Schema{Type: "string"})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.CriticalCount)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "user_profile.go", result.Files[0].Name)
}

func TestGenerateGraphSkipsBadSchemaOnly(t *testing.T) {
	// One failing schema must not abort the rest of the run.
	g := schema.NewGraph("#/components/schemas")
	g.Register("Broken", &schema.Schema{
		Type: "string",
		Enum: []any{"a-b", "a_b"},
	})
	g.Register("Fine", &schema.Schema{Type: "string"})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotNil(t, result.GetFile("fine.go"))
}

func TestGenerateGraphUnresolvedRefDegrades(t *testing.T) {
	g := schema.NewGraph("#/components/schemas")
	g.Register("Holder", &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"thing": {Ref: "#/components/schemas/Missing"},
		},
	})

	result, err := New().GenerateGraph(g)
	require.NoError(t, err)
	assert.True(t, result.Success, "an unresolved reference degrades, it does not fail the run")

	holder := result.GetFile("holder.go")
	require.NotNil(t, holder)
	assert.Contains(t, string(holder.Content), "Thing any")
}

func TestGenerateWithOptions(t *testing.T) {
	doc := `
openapi: 3.0.3
components:
  schemas:
    Product:
      type: object
      required: [id]
      properties:
        id:
          type: string
`
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	result, err := GenerateWithOptions(
		WithFilePath(path),
		WithPackageName("petstore"),
	)
	require.NoError(t, err)
	assert.Equal(t, "petstore", result.PackageName)
	require.NotNil(t, result.GetFile("product.go"))
	assert.Contains(t, string(result.GetFile("product.go").Content), "package petstore")
}

func TestGenerateWithOptionsStrictMode(t *testing.T) {
	g := schema.NewGraph("#/components/schemas")
	g.Register("Payload", &schema.Schema{AnyOf: []*schema.Schema{
		{Type: "object", Properties: map[string]*schema.Schema{"a": {Type: "string"}}},
		{Type: "object", Properties: map[string]*schema.Schema{"b": {Type: "string"}}},
	}})

	_, err := GenerateWithOptions(WithGraph(g), WithStrictMode(true))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strict mode")
}

func TestGenerateWithOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "no input source", opts: []Option{WithPackageName("x")}},
		{
			name: "multiple input sources",
			opts: []Option{
				WithGraph(schema.NewGraph("#/components/schemas")),
				WithFilePath("x.yaml"),
			},
		},
		{name: "nil graph", opts: []Option{WithGraph(nil)}},
		{name: "empty package name", opts: []Option{WithGraph(schema.NewGraph("#/x")), WithPackageName("")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateWithOptions(tt.opts...)
			assert.Error(t, err)
		})
	}
}

func TestWriteFiles(t *testing.T) {
	result, err := New().GenerateGraph(orderGraph())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, result.WriteFiles(dir))

	data, err := os.ReadFile(filepath.Join(dir, "order.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "type Order struct {")
}
