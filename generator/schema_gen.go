package generator

import (
	"sort"

	"github.com/oasgen/oasgen/compose"
	"github.com/oasgen/oasgen/internal/naming"
	"github.com/oasgen/oasgen/resolver"
	"github.com/oasgen/oasgen/schema"
)

// generateSchema emits the file(s) for one named schema. Failures are
// reported as issues against the schema's name and only skip this schema.
func (run *generateRun) generateSchema(name string, node *schema.Schema) {
	token, ok := run.claimToken(name)
	if !ok {
		return
	}

	if op, _ := node.Composition(); op != schema.OpNone {
		run.generateComposition(name, token, node)
		return
	}

	switch {
	case node.IsReference():
		rt := run.res.ResolvePropertyType(name, node, true)
		run.renderAlias(name, token, node.Description, rt)

	case node.IsEnum():
		run.generateEnum(name, token, node)

	case len(node.Properties) > 0:
		run.renderStruct(name, token, node)

	default:
		seed := name
		element, hasElement := nestedComposition(node)
		if hasElement {
			// The element composition needs its own type; seed it with a
			// scoped name so the alias and its element cannot collide.
			if node.PrimaryType() == "array" {
				seed = name + "_item"
			} else {
				seed = name + "_value"
			}
		}
		rt := run.res.ResolvePropertyType(seed, node, true)
		if hasElement {
			run.emitElementType(name, seed, element)
		}
		run.renderAlias(name, token, node.Description, rt)
	}
}

// generateComposition emits a top-level allOf/oneOf/anyOf schema: a merged
// struct, a union type, or an alias when the composition collapses.
func (run *generateRun) generateComposition(name, token string, node *schema.Schema) {
	result, err := run.comb.Combine(name, node)
	if err != nil {
		run.addIssue(SeverityCritical, name, "cannot compose: %v", err)
		return
	}
	if result.Ambiguity != nil {
		run.addIssue(SeverityWarning, name, "%v", result.Ambiguity)
	}
	switch {
	case result.Union != nil:
		run.renderUnion(name, token, result.Union)
	case result.Merged != nil:
		result.Merged.Description = firstNonEmpty(result.Merged.Description, node.Description)
		run.renderStruct(name, token, result.Merged)
	default:
		run.renderAlias(name, token, node.Description, result.Type)
	}
}

// generateEnum emits a string enum as a named type with one constant per
// value. Non-string enums degrade to a plain alias of the underlying type.
func (run *generateRun) generateEnum(name, token string, node *schema.Schema) {
	typeName := naming.ToTypeName(name)
	values, isStrings := stringValues(node.Enum)
	if !isStrings {
		run.addIssue(SeverityInfo, name, "non-string enum rendered as plain %s", node.PrimaryType())
		rt := resolver.ResolvedType{Name: primitiveGoType(run.res, node)}
		run.renderAlias(name, token, node.Description, rt)
		return
	}

	members, err := naming.EnumMemberNames(typeName, values)
	if err != nil {
		run.addIssue(SeverityCritical, name, "cannot name enum members: %v", err)
		return
	}

	data := enumData{
		Package:     run.pkg,
		Name:        typeName,
		Description: node.Description,
	}
	for i, value := range values {
		data.Members = append(data.Members, enumMemberData{Name: members[i], Value: value})
	}
	content, err := executeTemplate("enum.go.tmpl", data)
	if err != nil {
		run.addIssue(SeverityCritical, name, "rendering enum: %v", err)
		return
	}
	run.addFile(token+".go", content)
	run.result.GeneratedTypes++
}

// renderStruct emits an object schema as a struct, generating auxiliary types
// (property unions, merged anonymous objects) alongside it.
func (run *generateRun) renderStruct(name, token string, node *schema.Schema) {
	typeName := naming.ToTypeName(name)
	inferred, hasInferred := compose.InferDiscriminator(node)

	propNames := make([]string, 0, len(node.Properties))
	for propName := range node.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	data := modelData{
		Package:     run.pkg,
		Name:        typeName,
		Description: node.Description,
	}
	seenFields := make(map[string]string)
	for _, propName := range propNames {
		prop := node.Properties[propName]
		required := isRequired(node.Required, propName)

		rt, ok := run.propertyType(name, propName, prop, required, hasInferred && propName == inferred.UnionProperty, inferred)
		if !ok {
			return
		}

		fieldName := naming.ToFieldName(propName)
		if first, dup := seenFields[fieldName]; dup {
			run.addIssue(SeverityCritical, name,
				"properties %q and %q collide on field name %q, skipping schema", first, propName, fieldName)
			return
		}
		seenFields[fieldName] = propName

		tag := propName
		if !required {
			tag += ",omitempty"
		}
		description := ""
		if prop != nil {
			description = prop.Description
		}
		data.Fields = append(data.Fields, fieldData{
			Name:        fieldName,
			Type:        rt.GoString(),
			Tag:         tag,
			Description: description,
		})
	}

	content, err := executeTemplate("model.go.tmpl", data)
	if err != nil {
		run.addIssue(SeverityCritical, name, "rendering model: %v", err)
		return
	}
	run.addFile(token+".go", content)
	run.result.GeneratedTypes++
}

// propertyType resolves one property's type, emitting any auxiliary type the
// property gives rise to. The aux type is named by scoping the property name
// under the schema name so unrelated schemas cannot collide.
func (run *generateRun) propertyType(schemaName, propName string, prop *schema.Schema, required, useInferred bool, inferred compose.Inferred) (resolver.ResolvedType, bool) {
	auxName := schemaName + "_" + propName
	op, _ := prop.Composition()
	if op == schema.OpNone {
		rt := run.res.ResolvePropertyType(auxName, prop, required)
		if element, ok := nestedComposition(prop); ok {
			run.emitElementType(schemaName, auxName, element)
		}
		return rt, true
	}

	var result compose.Result
	var err error
	if useInferred {
		result, err = run.comb.CombineInferred(auxName, prop, inferred)
	} else {
		result, err = run.comb.Combine(auxName, prop)
	}
	if err != nil {
		run.addIssue(SeverityCritical, schemaName, "cannot compose property %q: %v", propName, err)
		return resolver.ResolvedType{}, false
	}
	if result.Ambiguity != nil {
		run.addIssue(SeverityWarning, schemaName, "property %q: %v", propName, result.Ambiguity)
	}

	switch {
	case result.Union != nil:
		if token, ok := run.claimToken(auxName); ok {
			run.renderUnion(auxName, token, result.Union)
		}
	case result.Merged != nil:
		if token, ok := run.claimToken(auxName); ok {
			run.renderStruct(auxName, token, result.Merged)
		}
	}

	rt := result.Type
	hasDefault := prop != nil && prop.Default != nil
	rt.Nullable = rt.Nullable || resolver.IsNullable(required, false, hasDefault, false)
	return rt, true
}

// nestedComposition walks a plain node's element positions (array items,
// additionalProperties values) looking for a composition buried below the top
// level. The resolver names such elements after the enclosing property, so
// the composed node must be surfaced for the generator to define that type.
func nestedComposition(node *schema.Schema) (*schema.Schema, bool) {
	for node != nil && !node.IsReference() {
		if op, _ := node.Composition(); op != schema.OpNone {
			return node, true
		}
		switch node.PrimaryType() {
		case "array":
			node = node.Items
		case "object":
			if node.Properties == nil {
				if addProps, ok := node.AdditionalProperties.(*schema.Schema); ok {
					node = addProps
					continue
				}
			}
			return nil, false
		default:
			return nil, false
		}
	}
	return nil, false
}

// emitElementType synthesizes the named type an element-position composition
// resolves to. Compositions that collapse (null unions, single-reference
// allOf) produce no artifact and nothing is emitted; without this the
// generated field would reference a type that is never defined.
func (run *generateRun) emitElementType(owner, auxName string, element *schema.Schema) {
	result, err := run.comb.Combine(auxName, element)
	if err != nil {
		run.addIssue(SeverityCritical, owner, "cannot compose %q: %v", auxName, err)
		return
	}
	if result.Ambiguity != nil {
		run.addIssue(SeverityWarning, owner, "%v", result.Ambiguity)
	}
	switch {
	case result.Union != nil:
		if token, ok := run.claimToken(auxName); ok {
			run.renderUnion(auxName, token, result.Union)
		}
	case result.Merged != nil:
		if token, ok := run.claimToken(auxName); ok {
			run.renderStruct(auxName, token, result.Merged)
		}
	}
}

// renderUnion emits one union file via the composition templates.
func (run *generateRun) renderUnion(name, token string, union *compose.UnionType) {
	content, err := compose.RenderUnion(run.pkg, union)
	if err != nil {
		run.addIssue(SeverityCritical, name, "rendering union: %v", err)
		return
	}
	run.addFile(token+".go", content)
	run.result.GeneratedTypes++
	run.result.GeneratedUnions++
}

// renderAlias emits a named alias to an already-representable type.
func (run *generateRun) renderAlias(name, token, description string, rt resolver.ResolvedType) {
	data := aliasData{
		Package:     run.pkg,
		Name:        naming.ToTypeName(name),
		Target:      rt.GoString(),
		Description: description,
	}
	content, err := executeTemplate("alias.go.tmpl", data)
	if err != nil {
		run.addIssue(SeverityCritical, name, "rendering alias: %v", err)
		return
	}
	run.addFile(token+".go", content)
	run.result.GeneratedTypes++
}

// isRequired checks if a property name is in the required list.
func isRequired(required []string, name string) bool {
	for _, r := range required {
		if r == name {
			return true
		}
	}
	return false
}

// stringValues returns the enum values when every one is a string literal.
func stringValues(enum []any) ([]string, bool) {
	values := make([]string, 0, len(enum))
	for _, v := range enum {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		values = append(values, s)
	}
	return values, true
}

// primitiveGoType maps a non-string-enum node to its underlying Go type.
func primitiveGoType(res *resolver.Resolver, node *schema.Schema) string {
	rt := res.ResolvePropertyType("", &schema.Schema{Type: node.PrimaryType(), Format: node.Format}, true)
	return rt.Name
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
