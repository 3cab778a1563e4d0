package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasgen/oasgen/generator"
)

type generateInput struct {
	Doc         docInput `json:"doc"                     jsonschema:"The schema document to generate code from"`
	PackageName string   `json:"package_name,omitempty"  jsonschema:"Go package name for generated code (default: models)"`
	OutputDir   string   `json:"output_dir"              jsonschema:"Directory to write generated files to"`
}

type generatedFileInfo struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type generateOutput struct {
	Success        bool                `json:"success"`
	OutputDir      string              `json:"output_dir"`
	PackageName    string              `json:"package_name"`
	FileCount      int                 `json:"file_count"`
	Files          []generatedFileInfo `json:"files"`
	GeneratedTypes int                 `json:"generated_types"`
	UnionCount     int                 `json:"union_count"`
	WarningCount   int                 `json:"warning_count"`
	CriticalCount  int                 `json:"critical_count"`
}

func handleGenerate(_ context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), generateOutput{}, nil
	}

	loaded, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	opts := []generator.Option{
		generator.WithLoaded(loaded),
	}
	if input.PackageName != "" {
		opts = append(opts, generator.WithPackageName(input.PackageName))
	}

	result, err := generator.GenerateWithOptions(opts...)
	if err != nil {
		return errResult(err), generateOutput{}, nil
	}

	if err := result.WriteFiles(input.OutputDir); err != nil {
		return errResult(fmt.Errorf("failed to write generated files: %w", err)), generateOutput{}, nil
	}

	output := generateOutput{
		Success:        result.Success,
		OutputDir:      input.OutputDir,
		PackageName:    result.PackageName,
		FileCount:      len(result.Files),
		GeneratedTypes: result.GeneratedTypes,
		UnionCount:     result.GeneratedUnions,
		WarningCount:   result.WarningCount,
		CriticalCount:  result.CriticalCount,
	}
	output.Files = makeSlice[generatedFileInfo](len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, generatedFileInfo{
			Name: f.Name,
			Size: len(f.Content),
		})
	}
	return nil, output, nil
}
