package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oasgen/oasgen/schema"
)

func TestSignaturePermutationStability(t *testing.T) {
	a := []Field{
		{Name: "id", Required: true},
		{Name: "name", Required: false},
		{Name: "email", Required: true},
	}
	b := []Field{
		{Name: "email", Required: true},
		{Name: "name", Required: false},
		{Name: "id", Required: true},
	}
	assert.Equal(t, Signature(a), Signature(b),
		"permutations of the same name:required pairs must share a signature")
}

func TestSignatureDistinguishesRequiredness(t *testing.T) {
	a := []Field{{Name: "id", Required: true}}
	b := []Field{{Name: "id", Required: false}}
	assert.NotEqual(t, Signature(a), Signature(b))
}

func TestSignatureOf(t *testing.T) {
	node := &schema.Schema{
		Type: "object",
		Properties: map[string]*schema.Schema{
			"id":   {Type: "string"},
			"name": {Type: "string"},
		},
		Required: []string{"id"},
	}
	want := Signature([]Field{
		{Name: "id", Required: true},
		{Name: "name", Required: false},
	})
	assert.Equal(t, want, SignatureOf(node))

	assert.Empty(t, SignatureOf(nil))
	assert.Empty(t, SignatureOf(&schema.Schema{Type: "string"}))
}
