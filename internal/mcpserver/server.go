// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes oasgen's schema resolution and code generation as MCP tools over
// stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasgen/oasgen"
)

const serverInstructions = `oasgen MCP server: resolves schema types and generates Go models from OpenAPI/JSON Schema documents.

Tools:
- resolve_type: resolve one named schema (or a property of it) to its Go type descriptor: type name, nullability, list-ness, union-ness, and import set.
- signature: compute the order-independent structural signature of a named object schema (sorted name:required pairs), usable as a cache or consolidation key.
- generate: generate Go model files for every named schema in a document. Requires output_dir. Returns a manifest of generated files and any issues.

Documents are parsed per session and cached by file path; pass content inline for ad-hoc schemas.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasgen", Version: oasgen.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_type",
		Description: "Resolve a named schema, or one property of it, to its Go type descriptor. Returns the type expression, nullability, list/union flags, the item type for arrays, and the deduplicated import set. Unresolvable references degrade to the untyped fallback rather than failing.",
	}, handleResolveType)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "signature",
		Description: "Compute the structural signature of a named object schema: the sorted name:required pairs of its properties. Two schemas with the same signature are structurally interchangeable for header/parameter consolidation.",
	}, handleSignature)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate",
		Description: "Generate Go model files (structs, enums, unions, aliases) for every named schema in a document. Requires output_dir. Returns a manifest of generated files plus warning and critical issue counts; a schema that cannot be generated is skipped and reported, not fatal.",
	}, handleGenerate)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
