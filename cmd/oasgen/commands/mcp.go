package commands

import (
	"context"
	"errors"
	"flag"

	"github.com/oasgen/oasgen/internal/mcpserver"
)

// HandleMCP executes the mcp command, running the MCP server over stdio
// until the client disconnects.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasgen mcp\n\n")
		Writef(fs.Output(), "Run the MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(fs.Output(), "Tools exposed:\n")
		Writef(fs.Output(), "  resolve_type  Resolve a named schema or property to its Go type\n")
		Writef(fs.Output(), "  signature     Compute the structural signature of an object schema\n")
		Writef(fs.Output(), "  generate      Generate Go model files for every named schema\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	return mcpserver.Run(context.Background())
}
