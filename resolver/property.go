package resolver

import (
	"errors"
	"strconv"

	"github.com/oasgen/oasgen/generrors"
	"github.com/oasgen/oasgen/internal/naming"
	"github.com/oasgen/oasgen/schema"
)

// ResolvePropertyType is the single entry point generators use for "what
// target type and imports does this schema property need". propName seeds the
// name of any anonymous type the property gives rise to (a multi-branch allOf
// merge or a union).
//
// Failure semantics: a missing or non-local $ref never aborts resolution; it
// degrades to the untyped fallback with an empty import set so the rest of
// the document keeps generating.
func (r *Resolver) ResolvePropertyType(propName string, node *schema.Schema, required bool) ResolvedType {
	if node == nil {
		return ResolvedType{Name: "any"}
	}

	if node.IsReference() {
		return r.resolveReferenceType(node.Ref, required)
	}

	if op, branches := node.Composition(); op != schema.OpNone {
		return r.resolveCompositionType(propName, op, branches, required)
	}

	explicitNullable := node.Nullable || node.IsNullDeclared()
	nullable := IsNullable(required, explicitNullable, node.Default != nil, false)

	switch node.PrimaryType() {
	case "string":
		goType, imp := stringFormatToGoType(node.Format)
		rt := ResolvedType{Name: goType, Nullable: nullable}
		return rt.WithImport(imp)
	case "integer":
		return ResolvedType{Name: integerFormatToGoType(node.Format), Nullable: nullable}
	case "number":
		return ResolvedType{Name: numberFormatToGoType(node.Format), Nullable: nullable}
	case "boolean":
		return ResolvedType{Name: "bool", Nullable: nullable}
	case "array":
		item := r.ResolvePropertyType(propName, node.Items, true)
		return ResolvedType{
			Name:     "[]" + item.GoString(),
			IsList:   true,
			ItemType: item.Name,
			Imports:  item.Imports,
		}
	case "object":
		if node.Properties == nil {
			if addProps, ok := node.AdditionalProperties.(*schema.Schema); ok {
				value := r.ResolvePropertyType(propName, addProps, true)
				rt := ResolvedType{Name: "map[string]" + value.GoString(), Imports: value.Imports}
				return rt
			}
			return ResolvedType{Name: "map[string]any"}
		}
		return ResolvedType{Name: "map[string]any"}
	default:
		return ResolvedType{Name: "any", Nullable: false}
	}
}

// resolveReferenceType maps a $ref to the referenced type name plus the
// import of the module holding it. Results are memoized per (ref, required)
// for the lifetime of the run.
func (r *Resolver) resolveReferenceType(ref string, required bool) ResolvedType {
	key := "ref:" + ref + ":" + strconv.FormatBool(required)
	if rt, ok := r.cache.get(key); ok {
		return rt
	}

	rt := ResolvedType{Name: "any"}
	if _, err := r.Resolve(ref); err != nil {
		if errors.Is(err, generrors.ErrCircularReference) {
			// A pure reference cycle has no concrete target type; break it
			// and keep going with the untyped fallback.
			r.logger.Info("reference cycle broken", "ref", ref)
		} else {
			r.logger.Warn("unresolved reference, using untyped fallback", "ref", ref, "error", err)
		}
	} else {
		seed := schema.RefName(ref)
		rt = ResolvedType{
			Name:     naming.ToTypeName(seed),
			Nullable: !required,
			Imports:  []string{naming.ToFileToken(seed)},
		}
	}
	r.cache.put(key, rt)
	return rt
}

// resolveCompositionType dispatches composition nodes at property position.
func (r *Resolver) resolveCompositionType(propName string, op schema.CompositionOp, branches []*schema.Schema, required bool) ResolvedType {
	if len(branches) == 0 {
		r.logger.Warn("empty composition, using untyped fallback", "op", op.String(), "property", propName)
		return ResolvedType{Name: "any"}
	}

	switch op {
	case schema.OpAllOf:
		// A single bare-reference branch is the "extend a base type" idiom:
		// it resolves to the referenced type, not a merged anonymous one.
		if len(branches) == 1 && branches[0].IsReference() {
			return r.resolveReferenceType(branches[0].Ref, required)
		}
		return ResolvedType{
			Name:     naming.ToTypeName(propName),
			Nullable: !required,
		}

	case schema.OpOneOf, schema.OpAnyOf:
		if other, ok := NullUnionBranch(branches); ok {
			// Nullable-union pattern: collapse to the non-null branch with
			// nullability already accounted for. Resolving the branch as
			// required keeps its own requiredness from adding a second marker.
			rt := r.ResolvePropertyType(propName, other, true)
			rt.Nullable = true
			return rt
		}
		// A real union: the combinator synthesizes its type under this name.
		return ResolvedType{
			Name:     naming.ToTypeName(propName),
			IsUnion:  true,
			Nullable: !required,
		}

	default:
		return ResolvedType{Name: "any"}
	}
}
