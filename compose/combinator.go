// Package compose implements oneOf/anyOf/allOf composition semantics:
// nullable-union collapsing, discriminator extraction (declared and
// inferred), and discriminated-union code synthesis.
//
// Both discriminator paths feed the same union-codegen routine; the
// no-discriminator fallback is a best-effort wrapper whose decode tries each
// branch in declaration order and is documented as lossy.
package compose

import (
	"fmt"

	"github.com/oasgen/oasgen/generrors"
	"github.com/oasgen/oasgen/internal/naming"
	"github.com/oasgen/oasgen/logging"
	"github.com/oasgen/oasgen/resolver"
	"github.com/oasgen/oasgen/schema"
)

// Combinator turns composition nodes into resolved types and, when a union
// needs its own source, a UnionType artifact.
type Combinator struct {
	res    *resolver.Resolver
	logger logging.Logger
}

// New creates a combinator over the given resolver with logging discarded.
func New(res *resolver.Resolver) *Combinator {
	return NewWithLogger(res, logging.NopLogger{})
}

// NewWithLogger creates a combinator that reports composition events to the
// given logger.
func NewWithLogger(res *resolver.Resolver, logger logging.Logger) *Combinator {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Combinator{res: res, logger: logger}
}

// Result is the outcome of combining one composition node.
type Result struct {
	// Type is the resolved type descriptor for the composition
	Type resolver.ResolvedType
	// Union is non-nil when the composition requires synthesized union code
	Union *UnionType
	// Merged is non-nil for a multi-branch allOf: the flattened object
	// schema the emission layer renders as a plain model
	Merged *schema.Schema
	// Ambiguity is non-nil when the composition degraded: an empty branch
	// list collapsed to any, or the union fell back to the lossy wrapper.
	// The run reports it rather than failing
	Ambiguity *generrors.CompositionError
}

// Combine resolves a composition node registered (or synthesized) under the
// given name. Dispatch order is fixed: the nullable-union pattern collapses
// first, then discriminator extraction, then the lossy wrapper fallback.
// A two-branch null union is never treated as a discriminated union, even
// when a discriminator declaration is present.
//
// An empty branch list degrades to the untyped fallback, reported through
// Result.Ambiguity rather than failing the run. The only returned error is a
// naming collision among variant tags, which corrupts generated code and is
// fatal for this schema.
func (c *Combinator) Combine(name string, node *schema.Schema) (Result, error) {
	return c.combine(name, node, nil)
}

// CombineInferred is Combine with a discriminator recovered from the
// enclosing object's sibling properties (see InferDiscriminator). The hint
// only applies when the node is a oneOf/anyOf that survives the nullable
// collapse; everything else behaves exactly like Combine.
func (c *Combinator) CombineInferred(name string, node *schema.Schema, inf Inferred) (Result, error) {
	return c.combine(name, node, &discriminator{
		property:   inf.Property,
		positional: inf.Values,
	})
}

func (c *Combinator) combine(name string, node *schema.Schema, hint *discriminator) (Result, error) {
	op, branches := node.Composition()
	if op == schema.OpNone {
		return Result{Type: c.res.ResolvePropertyType(name, node, true)}, nil
	}
	if len(branches) == 0 {
		c.logger.Warn("empty composition, using untyped fallback", "op", op.String(), "schema", name)
		return Result{
			Type: resolver.ResolvedType{Name: "any"},
			Ambiguity: &generrors.CompositionError{
				Op:         op.String(),
				SchemaName: name,
				IsEmpty:    true,
				Message:    "empty branch list",
			},
		}, nil
	}

	if op == schema.OpAllOf {
		return c.combineAllOf(name, branches)
	}

	// Nullable-union pattern fires before any discriminator handling.
	if other, ok := resolver.NullUnionBranch(branches); ok {
		rt := c.res.ResolvePropertyType(name, other, true)
		rt.Nullable = true
		return Result{Type: rt}, nil
	}

	disc, ok := hint, hint != nil
	if !ok {
		disc, ok = c.extractDiscriminator(node)
	}
	if ok {
		union, err := c.buildDiscriminatedUnion(name, disc, branches)
		if err != nil {
			return Result{}, err
		}
		return Result{
			Type:  unionResolvedType(name, union),
			Union: union,
		}, nil
	}

	c.logger.Info("union without discriminator, generating best-effort wrapper",
		"op", op.String(), "schema", name)
	union := c.buildWrapperUnion(name, branches)
	return Result{
		Type:  unionResolvedType(name, union),
		Union: union,
		Ambiguity: &generrors.CompositionError{
			Op:         op.String(),
			SchemaName: name,
			Message:    "no discriminator; decode is first-match in declaration order",
		},
	}, nil
}

// combineAllOf routes allOf composition. A single bare-reference branch is
// the base-type-extension idiom and resolves to the referenced type; anything
// else is a shallow merge rendered as a plain object model.
func (c *Combinator) combineAllOf(name string, branches []*schema.Schema) (Result, error) {
	if len(branches) == 1 && branches[0].IsReference() {
		return Result{Type: c.res.ResolvePropertyType(name, branches[0], true)}, nil
	}
	merged := c.res.MergeAllOf(branches)
	return Result{
		Type:   resolver.ResolvedType{Name: naming.ToTypeName(name)},
		Merged: merged,
	}, nil
}

// unionResolvedType builds the descriptor for a synthesized union type,
// merging in the imports its variants require.
func unionResolvedType(name string, union *UnionType) resolver.ResolvedType {
	rt := resolver.ResolvedType{
		Name:    naming.ToTypeName(name),
		IsUnion: true,
	}
	for _, imp := range union.Imports {
		rt = rt.WithImport(imp)
	}
	return rt
}

// buildDiscriminatedUnion synthesizes one variant per non-null branch.
// Variant order follows branch declaration order; tags are compile-time
// constants so encode can never emit a tag/payload mismatch.
func (c *Combinator) buildDiscriminatedUnion(name string, disc *discriminator, branches []*schema.Schema) (*UnionType, error) {
	typeName := naming.ToTypeName(name)
	union := &UnionType{
		Name:               typeName,
		Discriminator:      disc.property,
		DiscriminatorField: naming.ToFieldName(disc.property),
	}

	seenTags := make(map[string]int)
	seenFields := make(map[string]string)
	variant := 0
	for i, branch := range branches {
		if branch.IsNullOnly() {
			continue
		}
		rt := c.res.ResolvePropertyType(fmt.Sprintf("%s_variant_%d", name, i), branch, true)
		tag := c.tagFor(disc, branch, variant)
		variant++
		if prev, dup := seenTags[tag]; dup {
			c.logger.Warn("duplicate discriminator value", "schema", name, "value", tag,
				"first_branch", prev, "second_branch", i)
		}
		seenTags[tag] = i

		fieldName := variantFieldName(rt.Name, tag, i)
		if first, dup := seenFields[fieldName]; dup {
			return nil, &generrors.NamingError{
				Name:    fieldName,
				First:   first,
				Second:  tag,
				Context: typeName,
			}
		}
		seenFields[fieldName] = tag

		union.Variants = append(union.Variants, Variant{
			Tag:       tag,
			TypeName:  rt.Name,
			FieldName: fieldName,
		})
		union.Imports = mergeImports(union.Imports, rt.Imports)
	}
	return union, nil
}

// buildWrapperUnion synthesizes the no-discriminator fallback: a wrapper
// holding an untyped payload with per-branch typed accessors. Decode order
// matters and ambiguous payloads silently pick the first matching branch;
// the artifact is marked lossy so emission can say so in generated docs.
func (c *Combinator) buildWrapperUnion(name string, branches []*schema.Schema) *UnionType {
	typeName := naming.ToTypeName(name)
	union := &UnionType{
		Name:  typeName,
		Lossy: true,
	}
	for i, branch := range branches {
		if branch.IsNullOnly() {
			continue
		}
		rt := c.res.ResolvePropertyType(fmt.Sprintf("%s_variant_%d", name, i), branch, true)
		union.Variants = append(union.Variants, Variant{
			TypeName:  rt.Name,
			FieldName: variantFieldName(rt.Name, "", i),
		})
		union.Imports = mergeImports(union.Imports, rt.Imports)
	}
	return union
}

// variantFieldName derives the Go-facing name of one variant from its payload
// type, its tag, or its position, in that order of preference.
func variantFieldName(typeName, tag string, index int) string {
	if typeName != "" && typeName != "any" && !isBuiltinType(typeName) {
		return naming.ToTypeName(typeName)
	}
	if tag != "" {
		return naming.ToTypeName(tag)
	}
	return fmt.Sprintf("Variant%d", index)
}

// isBuiltinType reports whether a type expression is a Go builtin or
// composite that cannot seed a field name.
func isBuiltinType(t string) bool {
	switch t {
	case "string", "bool", "int32", "int64", "float32", "float64", "[]byte", "time.Time":
		return true
	}
	return len(t) > 0 && (t[0] == '[' || t[0] == '*') || len(t) > 3 && t[:4] == "map["
}

func mergeImports(dst, src []string) []string {
	for _, imp := range src {
		found := false
		for _, existing := range dst {
			if existing == imp {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, imp)
		}
	}
	return dst
}
