// Package loader reads a schema document (YAML or JSON) and builds the
// pointer-addressed schema graph the resolver and combinator operate on.
//
// Named schemas are discovered under the document's schema namespace,
// "#/components/schemas" (OAS 3.x), "#/definitions" (OAS 2.0), or "#/$defs"
// (JSON Schema 2020-12), whichever the document carries. Name order follows
// document order, not map order, so downstream output is deterministic.
package loader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/oasgen/oasgen/generrors"
	"github.com/oasgen/oasgen/logging"
	"github.com/oasgen/oasgen/schema"
)

// SourceFormat represents the format of the source document.
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
)

// Result contains the loaded schema graph and source metadata.
type Result struct {
	// Graph holds the named schema nodes in document order
	Graph *schema.Graph
	// SourcePath is where the document was read from
	SourcePath string
	// SourceFormat records how the document was encoded
	SourceFormat SourceFormat
}

// Loader reads schema documents into graphs.
type Loader struct {
	// Logger is the structured logger for load events.
	// If nil, logging is disabled (default).
	Logger logging.Logger
}

// New creates a Loader with default settings.
func New() *Loader {
	return &Loader{}
}

func (l *Loader) log() logging.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return logging.NopLogger{}
}

// Load reads and parses the document at the given file path.
func (l *Loader) Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	result, err := l.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	result.SourcePath = path
	return result, nil
}

// LoadReader reads and parses a document from an io.Reader.
func (l *Loader) LoadReader(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: reading input: %w", err)
	}
	result, err := l.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	result.SourcePath = "LoadReader"
	return result, nil
}

// LoadBytes parses a document from raw bytes. YAML and JSON both parse
// through the YAML decoder; the format is detected for reporting only.
func (l *Loader) LoadBytes(data []byte) (*Result, error) {
	if len(data) == 0 {
		return nil, &generrors.ConfigError{Option: "input", Message: "document is empty"}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("loader: parsing document: %w", err)
	}
	doc := documentNode(&root)
	if doc == nil || doc.Kind != yaml.MappingNode {
		return nil, &generrors.ConfigError{Option: "input", Message: "document root is not a mapping"}
	}

	prefix, schemasNode, err := schemaNamespace(doc)
	if err != nil {
		return nil, err
	}

	graph := schema.NewGraph(prefix)
	// Mapping content alternates key, value; walking pairs in slice order is
	// what preserves document order.
	for i := 0; i+1 < len(schemasNode.Content); i += 2 {
		name := schemasNode.Content[i].Value
		var node schema.Schema
		if err := schemasNode.Content[i+1].Decode(&node); err != nil {
			l.log().Warn("skipping undecodable schema", "name", name, "error", err)
			continue
		}
		graph.Register(name, &node)
	}
	l.log().Debug("loaded schema graph", "schemas", graph.Len(), "prefix", prefix)

	return &Result{
		Graph:        graph,
		SourcePath:   "LoadBytes",
		SourceFormat: detectFormat(data),
	}, nil
}

// documentNode unwraps the document wrapper yaml puts around the root.
func documentNode(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		return root.Content[0]
	}
	return root
}

// schemaNamespace finds the document's named-schema mapping and the pointer
// prefix it lives under. Lookup order matches how mixed documents are read in
// practice: OAS 3.x components first, then OAS 2.0 definitions, then $defs.
func schemaNamespace(doc *yaml.Node) (string, *yaml.Node, error) {
	if components := mappingValue(doc, "components"); components != nil {
		if schemas := mappingValue(components, "schemas"); schemas != nil {
			return "#/components/schemas", schemas, nil
		}
	}
	if definitions := mappingValue(doc, "definitions"); definitions != nil {
		return "#/definitions", definitions, nil
	}
	if defs := mappingValue(doc, "$defs"); defs != nil {
		return "#/$defs", defs, nil
	}
	return "", nil, &generrors.ConfigError{
		Option:  "input",
		Message: "document has no components/schemas, definitions, or $defs section",
	}
}

// mappingValue returns the value node for a key in a mapping node.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// detectFormat classifies the input bytes for reporting.
func detectFormat(data []byte) SourceFormat {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}
