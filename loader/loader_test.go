package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasgen/oasgen/generrors"
)

const oas3Doc = `
openapi: 3.0.3
info:
  title: Pet Store
  version: 1.0.0
components:
  schemas:
    Zebra:
      type: object
      properties:
        stripes:
          type: integer
    Aardvark:
      type: object
      properties:
        snout:
          type: string
    Mongoose:
      $ref: '#/components/schemas/Aardvark'
`

func TestLoadBytesOAS3(t *testing.T) {
	result, err := New().LoadBytes([]byte(oas3Doc))
	require.NoError(t, err)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)
	assert.Equal(t, "#/components/schemas", result.Graph.Prefix())

	// Names must come back in document order, not sorted.
	assert.Equal(t, []string{"Zebra", "Aardvark", "Mongoose"}, result.Graph.Names())

	zebra, ok := result.Graph.Named("Zebra")
	require.True(t, ok)
	assert.Contains(t, zebra.Properties, "stripes")

	mongoose, ok := result.Graph.Named("Mongoose")
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/Aardvark", mongoose.Ref)
}

func TestLoadBytesOAS2Definitions(t *testing.T) {
	doc := `
swagger: "2.0"
definitions:
  Pet:
    type: object
    required: [name]
    properties:
      name:
        type: string
`
	result, err := New().LoadBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "#/definitions", result.Graph.Prefix())
	assert.Equal(t, []string{"Pet"}, result.Graph.Names())
}

func TestLoadBytesJSONDefs(t *testing.T) {
	doc := `{
  "$defs": {
    "Item": {
      "type": "object",
      "properties": {"id": {"type": "string"}}
    }
  }
}`
	result, err := New().LoadBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, "#/$defs", result.Graph.Prefix())
	assert.Equal(t, []string{"Item"}, result.Graph.Names())
}

func TestLoadBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "empty input", data: ""},
		{name: "scalar root", data: "42"},
		{name: "no schema namespace", data: "openapi: 3.0.3\ninfo:\n  title: x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().LoadBytes([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, generrors.ErrConfig)
		})
	}
}

func TestLoadWithOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.yaml")
	require.NoError(t, os.WriteFile(path, []byte(oas3Doc), 0o644))

	result, err := LoadWithOptions(WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, 3, result.Graph.Len())
}

func TestLoadWithOptionsSourceName(t *testing.T) {
	result, err := LoadWithOptions(
		WithReader(strings.NewReader(oas3Doc)),
		WithSourceName("pets-api"),
	)
	require.NoError(t, err)
	assert.Equal(t, "pets-api", result.SourcePath)
}

func TestLoadWithOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "no input source", opts: nil},
		{
			name: "multiple input sources",
			opts: []Option{
				WithBytes([]byte(oas3Doc)),
				WithReader(strings.NewReader(oas3Doc)),
			},
		},
		{name: "nil reader", opts: []Option{WithReader(nil)}},
		{name: "nil bytes", opts: []Option{WithBytes(nil)}},
		{
			name: "empty source name",
			opts: []Option{WithBytes([]byte(oas3Doc)), WithSourceName("")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithOptions(tt.opts...)
			assert.Error(t, err)
		})
	}
}
