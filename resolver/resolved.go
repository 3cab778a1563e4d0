package resolver

import "sort"

// ResolvedType is the resolver's output contract: the target type descriptor
// for one schema node, independent of any emission format. Values are cheap
// and self-contained; they hold no back-reference to the graph.
type ResolvedType struct {
	// Name is the bare Go type expression, without any optionality marker
	Name string
	// Nullable marks the type as optional; rendering applies the marker
	// exactly once via GoString
	Nullable bool
	// IsList is true for array schemas
	IsList bool
	// IsUnion is true when the node is a oneOf/anyOf that did not collapse
	// to a nullable single branch; the combinator synthesizes its type
	IsUnion bool
	// ItemType is the element type for lists, empty otherwise
	ItemType string
	// Imports is the deduplicated, sorted set of module identifiers required
	// to use Name
	Imports []string
}

// GoString renders the type expression with the optionality marker applied
// at most once.
func (rt ResolvedType) GoString() string {
	if rt.Nullable {
		return EnsureNullable(rt.Name)
	}
	return rt.Name
}

// WithImport returns a copy of the type with the given import added.
// The import set stays sorted and free of duplicates; empty identifiers are
// ignored.
func (rt ResolvedType) WithImport(imp string) ResolvedType {
	if imp == "" {
		return rt
	}
	for _, existing := range rt.Imports {
		if existing == imp {
			return rt
		}
	}
	merged := make([]string, 0, len(rt.Imports)+1)
	merged = append(merged, rt.Imports...)
	merged = append(merged, imp)
	sort.Strings(merged)
	out := rt
	out.Imports = merged
	return out
}

// MergeImports returns a copy of the type whose import set also contains
// every identifier from other.
func (rt ResolvedType) MergeImports(other ResolvedType) ResolvedType {
	out := rt
	for _, imp := range other.Imports {
		out = out.WithImport(imp)
	}
	return out
}
