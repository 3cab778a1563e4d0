package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/oasgen/oasgen"
	"github.com/oasgen/oasgen/generator"
	"github.com/oasgen/oasgen/loader"
)

// GenerateFlags contains flags for the generate command
type GenerateFlags struct {
	Output      string
	PackageName string
	Strict      bool
	NoWarnings  bool
}

// SetupGenerateFlags creates and configures a FlagSet for the generate command.
// Returns the FlagSet and a GenerateFlags struct with bound flag variables.
func SetupGenerateFlags() (*flag.FlagSet, *GenerateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &GenerateFlags{}

	fs.StringVar(&flags.Output, "o", "", "output directory for generated files (required)")
	fs.StringVar(&flags.Output, "output", "", "output directory for generated files (required)")
	fs.StringVar(&flags.PackageName, "p", "models", "Go package name for generated code")
	fs.StringVar(&flags.PackageName, "package", "models", "Go package name for generated code")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any generation issues (even warnings)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress warning and info messages")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasgen generate [flags] <file|->\n\n")
		Writef(fs.Output(), "Generate Go model types from a schema document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasgen generate -o ./models openapi.yaml\n")
		Writef(fs.Output(), "  oasgen generate -o ./models -p petstore openapi.yaml\n")
		Writef(fs.Output(), "  oasgen generate --strict -o ./models openapi.yaml\n")
		Writef(fs.Output(), "  cat openapi.yaml | oasgen generate -o ./models -\n")
		Writef(fs.Output(), "\nNotes:\n")
		Writef(fs.Output(), "  - Every named schema in the document produces one file\n")
		Writef(fs.Output(), "  - Schemas that cannot be generated are skipped and reported, not fatal\n")
		Writef(fs.Output(), "  - Use '-' as the file path to read the document from stdin\n")
	}

	return fs, flags
}

// HandleGenerate executes the generate command
func HandleGenerate(args []string) error {
	fs, flags := SetupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("generate command requires exactly one file path or '-' for stdin")
	}

	docPath := fs.Arg(0)

	if flags.Output == "" {
		fs.Usage()
		return fmt.Errorf("output directory is required (use -o or --output)")
	}

	// Generate the code with timing
	startTime := time.Now()
	var result *generator.GenerateResult
	var err error

	if docPath == StdinFilePath {
		loaded, loadErr := loader.LoadWithOptions(
			loader.WithReader(os.Stdin),
			loader.WithSourceName("<stdin>"),
		)
		if loadErr != nil {
			return fmt.Errorf("loading stdin: %w", loadErr)
		}
		result, err = generator.GenerateWithOptions(
			generator.WithLoaded(loaded),
			generator.WithPackageName(flags.PackageName),
			generator.WithStrictMode(flags.Strict),
			generator.WithIncludeInfo(!flags.NoWarnings),
		)
	} else {
		result, err = generator.GenerateWithOptions(
			generator.WithFilePath(docPath),
			generator.WithPackageName(flags.PackageName),
			generator.WithStrictMode(flags.Strict),
			generator.WithIncludeInfo(!flags.NoWarnings),
		)
	}
	totalTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	// Print results
	fmt.Printf("Schema Code Generator\n")
	fmt.Printf("=====================\n\n")
	fmt.Printf("oasgen version: %s\n", oasgen.Version())
	fmt.Printf("Document: %s\n", FormatSpecPath(docPath))
	fmt.Printf("Package: %s\n", result.PackageName)
	fmt.Printf("Types: %d\n", result.GeneratedTypes)
	fmt.Printf("Unions: %d\n", result.GeneratedUnions)
	fmt.Printf("Total Time: %v\n\n", totalTime)

	// Print issues
	if len(result.Issues) > 0 {
		fmt.Printf("Generation Issues (%d):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  %s\n", issue.String())
		}
		fmt.Println()
	}

	// Write files
	if err := result.WriteFiles(flags.Output); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}

	// Print generated files
	fmt.Printf("Generated Files (%d):\n", len(result.Files))
	for _, file := range result.Files {
		fmt.Printf("  - %s/%s (%d bytes)\n", flags.Output, file.Name, len(file.Content))
	}
	fmt.Println()

	// Print summary
	if result.Success {
		fmt.Printf("✓ Generation successful")
		if result.InfoCount > 0 || result.WarningCount > 0 {
			fmt.Printf(" (%d info, %d warnings)", result.InfoCount, result.WarningCount)
		}
		fmt.Println()
	} else {
		fmt.Printf("✗ Generation completed with %d critical issue(s)", result.CriticalCount)
		if result.WarningCount > 0 {
			fmt.Printf(", %d warning(s)", result.WarningCount)
		}
		fmt.Println()
		return fmt.Errorf("generation failed with %d critical issue(s)", result.CriticalCount)
	}

	return nil
}
