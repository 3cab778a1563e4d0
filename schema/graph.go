package schema

import (
	"strconv"
	"strings"
)

// Graph is the arena of named schema nodes for one document, addressed by
// absolute #/... pointer paths. It is built once per run by the loader and is
// read-only afterwards.
type Graph struct {
	// prefix is the pointer namespace named schemas live under,
	// e.g. "#/components/schemas" (OAS 3.x) or "#/definitions" (OAS 2.0)
	prefix string
	// nodes maps "<prefix>/<name>" to the registered node
	nodes map[string]*Schema
	// names preserves registration order, which the loader derives from
	// document order so downstream output is deterministic
	names []string
}

// NewGraph creates an empty graph whose named schemas live under prefix.
// The prefix must be an absolute local pointer such as "#/components/schemas".
func NewGraph(prefix string) *Graph {
	return &Graph{
		prefix: strings.TrimSuffix(prefix, "/"),
		nodes:  make(map[string]*Schema),
	}
}

// Prefix returns the pointer namespace named schemas live under.
func (g *Graph) Prefix() string {
	return g.prefix
}

// Register adds a named schema to the graph. Re-registering a name replaces
// the node without disturbing its position in document order.
func (g *Graph) Register(name string, s *Schema) {
	ptr := g.prefix + "/" + name
	if _, exists := g.nodes[ptr]; !exists {
		g.names = append(g.names, name)
	}
	g.nodes[ptr] = s
}

// Names returns the schema names in document order.
func (g *Graph) Names() []string {
	return g.names
}

// Len returns the number of registered schemas.
func (g *Graph) Len() int {
	return len(g.names)
}

// Node returns the node registered at exactly the given pointer.
func (g *Graph) Node(ptr string) (*Schema, bool) {
	s, ok := g.nodes[ptr]
	return s, ok
}

// Named returns the node registered under the given schema name.
func (g *Graph) Named(name string) (*Schema, bool) {
	return g.Node(g.prefix + "/" + name)
}

// Walk resolves a pointer against the graph, descending into nested schema
// structure segment by segment (properties/<name>, items, allOf/<i>,
// oneOf/<i>, anyOf/<i>). A segment miss at any depth returns false rather
// than panicking; callers treat that as NotFound.
func (g *Graph) Walk(ptr string) (*Schema, bool) {
	if !IsLocal(ptr) {
		return nil, false
	}
	if s, ok := g.nodes[ptr]; ok {
		return s, true
	}

	rel, ok := strings.CutPrefix(ptr, g.prefix+"/")
	if !ok {
		return nil, false
	}
	segments := strings.Split(rel, "/")
	node, ok := g.nodes[g.prefix+"/"+UnescapeToken(segments[0])]
	if !ok {
		return nil, false
	}
	return descend(node, segments[1:])
}

// descend walks the remaining pointer segments over a schema node.
func descend(node *Schema, segments []string) (*Schema, bool) {
	for i := 0; i < len(segments); i++ {
		if node == nil {
			return nil, false
		}
		switch seg := UnescapeToken(segments[i]); seg {
		case "properties":
			if i+1 >= len(segments) || node.Properties == nil {
				return nil, false
			}
			i++
			next, ok := node.Properties[UnescapeToken(segments[i])]
			if !ok {
				return nil, false
			}
			node = next
		case "items":
			if node.Items == nil {
				return nil, false
			}
			node = node.Items
		case "allOf", "oneOf", "anyOf":
			branches := node.AllOf
			switch seg {
			case "oneOf":
				branches = node.OneOf
			case "anyOf":
				branches = node.AnyOf
			}
			if i+1 >= len(segments) {
				return nil, false
			}
			i++
			idx, err := strconv.Atoi(segments[i])
			if err != nil || idx < 0 || idx >= len(branches) {
				return nil, false
			}
			node = branches[idx]
		default:
			return nil, false
		}
	}
	if node == nil {
		return nil, false
	}
	return node, true
}

// IsLocal reports whether a reference points inside the same document.
// Non-local (file or URL) references are unsupported and resolve to NotFound.
func IsLocal(ref string) bool {
	return strings.HasPrefix(ref, "#/")
}

// RefName derives a type-name seed from a pointer's last path segment.
// Example: "#/components/schemas/Pet" -> "Pet".
func RefName(ref string) string {
	parts := strings.Split(ref, "/")
	if len(parts) == 0 {
		return ""
	}
	return UnescapeToken(parts[len(parts)-1])
}

// UnescapeToken unescapes JSON Pointer tokens.
// Per RFC 6901, ~1 represents / and ~0 represents ~.
func UnescapeToken(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")
	return token
}
