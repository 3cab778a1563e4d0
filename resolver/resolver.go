// Package resolver turns schema graph nodes into target type descriptors.
//
// A Resolver owns a per-run memoization cache and walks $ref pointers,
// allOf chains, and nullable-union patterns without ever aborting the run:
// an unresolvable reference degrades to an untyped fallback and is logged,
// a reference cycle is broken with a terminal marker node.
package resolver

import (
	"github.com/oasgen/oasgen/generrors"
	"github.com/oasgen/oasgen/logging"
	"github.com/oasgen/oasgen/schema"
)

// Resolver resolves references and property types against one schema graph.
// It is a per-run object: the cache it owns is cleared with ClearCache and
// must not be mutated concurrently.
type Resolver struct {
	graph  *schema.Graph
	cache  *cache
	logger logging.Logger
}

// New creates a resolver over the given graph with logging discarded.
func New(graph *schema.Graph) *Resolver {
	return NewWithLogger(graph, logging.NopLogger{})
}

// NewWithLogger creates a resolver that reports resolution events
// (broken cycles, unresolved references) to the given logger.
func NewWithLogger(graph *schema.Graph, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Resolver{
		graph:  graph,
		cache:  newCache(),
		logger: logger,
	}
}

// Graph returns the graph this resolver reads from.
func (r *Resolver) Graph() *schema.Graph {
	return r.graph
}

// ClearCache resets the resolution cache between independent runs.
func (r *Resolver) ClearCache() {
	r.cache.clear()
}

// Resolve resolves a pointer to its schema node, following chains of bare
// references until a non-reference node is reached. It never panics: a
// missing target, a non-local pointer, or a pure reference cycle yields a
// *generrors.ReferenceError and a nil node.
//
// Resolution is idempotent: resolving a reference-to-a-reference is
// equivalent to a single call on the final target.
func (r *Resolver) Resolve(ptr string) (*schema.Schema, error) {
	seen := make(map[string]bool)
	for {
		if !schema.IsLocal(ptr) {
			return nil, &generrors.ReferenceError{Ref: ptr, IsNonLocal: true}
		}
		if seen[ptr] {
			return nil, &generrors.ReferenceError{Ref: ptr, IsCircular: true}
		}
		seen[ptr] = true

		node, ok := r.graph.Walk(ptr)
		if !ok {
			return nil, &generrors.ReferenceError{Ref: ptr}
		}
		if !node.IsReference() {
			return node, nil
		}
		ptr = node.Ref
	}
}

// ResolveDeep fully inlines the references under a node, returning a new
// node tree that shares no structure with the graph. The visited set carries
// the reference pointers on the current traversal path (empty at the outer
// call); when a pointer is revisited the recursion stops and a terminal
// reference marker node is returned in its place, which is what guarantees
// termination on self-referential or mutually-referential schemas.
func (r *Resolver) ResolveDeep(node *schema.Schema, visited map[string]bool) *schema.Schema {
	if node == nil {
		return nil
	}
	if visited == nil {
		visited = make(map[string]bool)
	}

	if node.IsReference() {
		ref := node.Ref
		if visited[ref] {
			r.logger.Debug("breaking reference cycle", "ref", ref)
			return &schema.Schema{Ref: ref}
		}
		target, err := r.Resolve(ref)
		if err != nil {
			r.logger.Warn("unresolved reference left in place", "ref", ref, "error", err)
			return &schema.Schema{Ref: ref}
		}
		visited[ref] = true
		resolved := r.ResolveDeep(target, visited)
		delete(visited, ref)
		return resolved
	}

	out := *node
	if node.Items != nil {
		out.Items = r.ResolveDeep(node.Items, visited)
	}
	if node.Properties != nil {
		props := make(map[string]*schema.Schema, len(node.Properties))
		for name, prop := range node.Properties {
			props[name] = r.ResolveDeep(prop, visited)
		}
		out.Properties = props
	}
	out.AllOf = r.resolveDeepBranches(node.AllOf, visited)
	out.OneOf = r.resolveDeepBranches(node.OneOf, visited)
	out.AnyOf = r.resolveDeepBranches(node.AnyOf, visited)
	return &out
}

func (r *Resolver) resolveDeepBranches(branches []*schema.Schema, visited map[string]bool) []*schema.Schema {
	if branches == nil {
		return nil
	}
	out := make([]*schema.Schema, len(branches))
	for i, branch := range branches {
		out[i] = r.ResolveDeep(branch, visited)
	}
	return out
}

// MergeAllOf folds a list of allOf branches into one flattened object schema.
// Each branch is resolved first when it is a reference. Properties merge
// last-write-wins per name in branch order, required is the union across all
// branches (first-occurrence order), and description takes the first
// non-empty value.
//
// The merge is intentionally shallow: composition nested inside a branch is
// not recursively re-merged beyond this one level.
func (r *Resolver) MergeAllOf(branches []*schema.Schema) *schema.Schema {
	merged := &schema.Schema{
		Type:       "object",
		Properties: make(map[string]*schema.Schema),
	}
	seenRequired := make(map[string]bool)

	for _, branch := range branches {
		node := branch
		if node.IsReference() {
			resolved, err := r.Resolve(node.Ref)
			if err != nil {
				r.logger.Warn("skipping unresolvable allOf branch", "ref", node.Ref, "error", err)
				continue
			}
			node = resolved
		}
		if node == nil {
			continue
		}
		for name, prop := range node.Properties {
			merged.Properties[name] = prop
		}
		for _, req := range node.Required {
			if !seenRequired[req] {
				seenRequired[req] = true
				merged.Required = append(merged.Required, req)
			}
		}
		if merged.Description == "" && node.Description != "" {
			merged.Description = node.Description
		}
	}
	return merged
}

// NullUnionBranch detects the nullable-union pattern: a union with exactly
// two branches of which exactly one denotes null. It returns the non-null
// branch. The pattern is an alternate encoding of an optional type and must
// collapse before any discriminator handling.
func NullUnionBranch(branches []*schema.Schema) (*schema.Schema, bool) {
	if len(branches) != 2 {
		return nil, false
	}
	first, second := branches[0].IsNullOnly(), branches[1].IsNullOnly()
	switch {
	case first && !second:
		return branches[1], true
	case second && !first:
		return branches[0], true
	default:
		return nil, false
	}
}
