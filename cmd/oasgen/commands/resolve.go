package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/oasgen/oasgen/loader"
	"github.com/oasgen/oasgen/resolver"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	Required bool
	Format   string
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
func SetupResolveFlags() (*flag.FlagSet, *ResolveFlags) {
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	flags := &ResolveFlags{}

	fs.BoolVar(&flags.Required, "required", false, "treat the property as required (only meaningful with a property argument)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format (text, json, yaml)")
	fs.StringVar(&flags.Format, "f", FormatText, "output format (text, json, yaml)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasgen resolve [flags] <file|-> <schema> [property]\n\n")
		Writef(fs.Output(), "Resolve a named schema, or one property of it, to its Go type descriptor.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasgen resolve openapi.yaml Product\n")
		Writef(fs.Output(), "  oasgen resolve openapi.yaml Order featuredProduct\n")
		Writef(fs.Output(), "  oasgen resolve --required openapi.yaml Order items\n")
		Writef(fs.Output(), "  oasgen resolve -f json openapi.yaml Order items\n")
	}

	return fs, flags
}

// resolvedType is the structured output of the resolve command.
type resolvedType struct {
	GoType   string   `json:"go_type"   yaml:"go_type"`
	Name     string   `json:"name"      yaml:"name"`
	Nullable bool     `json:"nullable"  yaml:"nullable"`
	IsList   bool     `json:"is_list"   yaml:"is_list"`
	IsUnion  bool     `json:"is_union"  yaml:"is_union"`
	ItemType string   `json:"item_type,omitempty" yaml:"item_type,omitempty"`
	Imports  []string `json:"imports,omitempty"   yaml:"imports,omitempty"`
}

// HandleResolve executes the resolve command
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 2 || fs.NArg() > 3 {
		fs.Usage()
		return fmt.Errorf("resolve command requires a file path and a schema name, with an optional property name")
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	loaded, err := loadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	schemaName := fs.Arg(1)
	node, ok := loaded.Graph.Named(schemaName)
	if !ok {
		return fmt.Errorf("schema %q not found in %s", schemaName, FormatSpecPath(fs.Arg(0)))
	}

	target := node
	required := true
	seed := schemaName
	if fs.NArg() == 3 {
		propName := fs.Arg(2)
		prop, ok := node.Properties[propName]
		if !ok {
			return fmt.Errorf("schema %q has no property %q", schemaName, propName)
		}
		target = prop
		required = flags.Required
		seed = schemaName + "_" + propName
	}

	rt := resolver.New(loaded.Graph).ResolvePropertyType(seed, target, required)
	out := resolvedType{
		GoType:   rt.GoString(),
		Name:     rt.Name,
		Nullable: rt.Nullable,
		IsList:   rt.IsList,
		IsUnion:  rt.IsUnion,
		ItemType: rt.ItemType,
		Imports:  rt.Imports,
	}

	if flags.Format != FormatText {
		return OutputStructured(out, flags.Format)
	}

	fmt.Printf("Go Type: %s\n", out.GoType)
	fmt.Printf("Name: %s\n", out.Name)
	fmt.Printf("Nullable: %t\n", out.Nullable)
	fmt.Printf("List: %t\n", out.IsList)
	fmt.Printf("Union: %t\n", out.IsUnion)
	if out.ItemType != "" {
		fmt.Printf("Item Type: %s\n", out.ItemType)
	}
	if len(out.Imports) > 0 {
		fmt.Printf("Imports: %v\n", out.Imports)
	}
	return nil
}

// HandleSignature executes the signature command
func HandleSignature(args []string) error {
	fs := flag.NewFlagSet("signature", flag.ContinueOnError)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasgen signature <file|-> <schema>\n\n")
		Writef(fs.Output(), "Print the structural signature of a named object schema.\n")
		Writef(fs.Output(), "Two schemas with the same signature are structurally interchangeable.\n\n")
		Writef(fs.Output(), "Examples:\n")
		Writef(fs.Output(), "  oasgen signature openapi.yaml Product\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("signature command requires a file path and a schema name")
	}

	loaded, err := loadDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	node, ok := loaded.Graph.Named(fs.Arg(1))
	if !ok {
		return fmt.Errorf("schema %q not found in %s", fs.Arg(1), FormatSpecPath(fs.Arg(0)))
	}

	fmt.Println(resolver.SignatureOf(node))
	return nil
}

// loadDocument loads a schema document from a file path or stdin.
func loadDocument(docPath string) (*loader.Result, error) {
	if docPath == StdinFilePath {
		result, err := loader.LoadWithOptions(
			loader.WithReader(os.Stdin),
			loader.WithSourceName("<stdin>"),
		)
		if err != nil {
			return nil, fmt.Errorf("loading stdin: %w", err)
		}
		return result, nil
	}
	result, err := loader.LoadWithOptions(loader.WithFilePath(docPath))
	if err != nil {
		return nil, fmt.Errorf("loading file: %w", err)
	}
	return result, nil
}
