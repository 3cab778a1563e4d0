package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasgen/oasgen/resolver"
	"github.com/oasgen/oasgen/schema"
)

type resolveTypeInput struct {
	Doc      docInput `json:"doc"                jsonschema:"The schema document to resolve against"`
	Schema   string   `json:"schema"             jsonschema:"Name of the schema to resolve"`
	Property string   `json:"property,omitempty" jsonschema:"Optional property of the schema to resolve instead of the schema itself"`
	Required bool     `json:"required,omitempty" jsonschema:"Treat the property as required (only meaningful with property)"`
}

type resolveTypeOutput struct {
	GoType   string   `json:"go_type"`
	Name     string   `json:"name"`
	Nullable bool     `json:"nullable"`
	IsList   bool     `json:"is_list"`
	IsUnion  bool     `json:"is_union"`
	ItemType string   `json:"item_type,omitempty"`
	Imports  []string `json:"imports,omitempty"`
}

func handleResolveType(_ context.Context, _ *mcp.CallToolRequest, input resolveTypeInput) (*mcp.CallToolResult, resolveTypeOutput, error) {
	if input.Schema == "" {
		return errResult(fmt.Errorf("schema is required")), resolveTypeOutput{}, nil
	}
	loaded, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), resolveTypeOutput{}, nil
	}

	node, ok := loaded.Graph.Named(input.Schema)
	if !ok {
		return errResult(fmt.Errorf("schema %q not found", input.Schema)), resolveTypeOutput{}, nil
	}

	target := node
	required := true
	seed := input.Schema
	if input.Property != "" {
		prop, ok := node.Properties[input.Property]
		if !ok {
			return errResult(fmt.Errorf("schema %q has no property %q", input.Schema, input.Property)), resolveTypeOutput{}, nil
		}
		target = prop
		required = input.Required
		seed = input.Schema + "_" + input.Property
	}

	res := resolver.New(loaded.Graph)
	rt := res.ResolvePropertyType(seed, target, required)

	output := resolveTypeOutput{
		GoType:   rt.GoString(),
		Name:     rt.Name,
		Nullable: rt.Nullable,
		IsList:   rt.IsList,
		IsUnion:  rt.IsUnion,
		ItemType: rt.ItemType,
	}
	output.Imports = makeSlice[string](len(rt.Imports))
	output.Imports = append(output.Imports, rt.Imports...)
	return nil, output, nil
}

type signatureInput struct {
	Doc    docInput `json:"doc"    jsonschema:"The schema document"`
	Schema string   `json:"schema" jsonschema:"Name of the object schema to fingerprint"`
}

type signatureOutput struct {
	Signature string `json:"signature"`
	Fields    int    `json:"fields"`
}

func handleSignature(_ context.Context, _ *mcp.CallToolRequest, input signatureInput) (*mcp.CallToolResult, signatureOutput, error) {
	if input.Schema == "" {
		return errResult(fmt.Errorf("schema is required")), signatureOutput{}, nil
	}
	loaded, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), signatureOutput{}, nil
	}
	node, ok := loaded.Graph.Named(input.Schema)
	if !ok {
		return errResult(fmt.Errorf("schema %q not found", input.Schema)), signatureOutput{}, nil
	}
	return nil, signatureOutput{
		Signature: resolver.SignatureOf(node),
		Fields:    propertyCount(node),
	}, nil
}

func propertyCount(node *schema.Schema) int {
	if node == nil {
		return 0
	}
	return len(node.Properties)
}
