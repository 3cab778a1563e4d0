// Package generator turns a loaded schema graph into Go source files, one
// file per named schema. It is the emission layer over the resolver and
// combinator: those decide types, this package only renders them.
package generator

import (
	"fmt"
	"time"

	"github.com/oasgen/oasgen/compose"
	"github.com/oasgen/oasgen/internal/issues"
	"github.com/oasgen/oasgen/internal/naming"
	"github.com/oasgen/oasgen/internal/severity"
	"github.com/oasgen/oasgen/loader"
	"github.com/oasgen/oasgen/logging"
	"github.com/oasgen/oasgen/resolver"
	"github.com/oasgen/oasgen/schema"
)

// Severity indicates the severity level of a generation issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about generation choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates features that may not generate perfectly
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates validation errors
	SeverityError = severity.SeverityError
	// SeverityCritical indicates schemas that could not be generated
	SeverityCritical = severity.SeverityCritical
)

// GenerateIssue represents a single generation issue or limitation
type GenerateIssue = issues.Issue

// GeneratedFile represents a single generated file
type GeneratedFile struct {
	// Name is the file name (e.g., "product.go")
	Name string
	// Content is the generated Go source code
	Content []byte
}

// GenerateResult contains the results of generating code from a schema
// document.
type GenerateResult struct {
	// Files contains all generated files
	Files []GeneratedFile
	// SourceFormat is the format of the source document (JSON or YAML)
	SourceFormat loader.SourceFormat
	// PackageName is the Go package name used in generation
	PackageName string
	// Issues contains all generation issues
	Issues []GenerateIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if generation completed without critical issues
	Success bool
	// LoadTime is the time taken to load the source document
	LoadTime time.Duration
	// GenerateTime is the time taken to generate code
	GenerateTime time.Duration
	// GeneratedTypes is the count of types generated
	GeneratedTypes int
	// GeneratedUnions is the count of union types among them
	GeneratedUnions int
}

// HasCriticalIssues returns true if there are any critical issues
func (r *GenerateResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *GenerateResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// GetFile returns the generated file with the given name, or nil if not found
func (r *GenerateResult) GetFile(name string) *GeneratedFile {
	for i := range r.Files {
		if r.Files[i].Name == name {
			return &r.Files[i]
		}
	}
	return nil
}

// Generator handles code generation from schema documents.
type Generator struct {
	// PackageName is the Go package name for generated code.
	// If empty, defaults to "models".
	PackageName string

	// StrictMode causes generation to fail on any issues (even warnings)
	StrictMode bool

	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool

	// Logger is the structured logger for generation events.
	// If nil, logging is disabled (default).
	Logger logging.Logger
}

// New creates a new Generator instance with default settings
func New() *Generator {
	return &Generator{
		PackageName: "models",
		IncludeInfo: true,
	}
}

func (g *Generator) log() logging.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return logging.NopLogger{}
}

// Generate loads the document at the given path and generates code from it.
func (g *Generator) Generate(docPath string) (*GenerateResult, error) {
	loadStart := time.Now()
	loaded, err := loader.LoadWithOptions(
		loader.WithFilePath(docPath),
		loader.WithLogger(g.Logger),
	)
	if err != nil {
		return nil, fmt.Errorf("generator: loading %s: %w", docPath, err)
	}
	loadTime := time.Since(loadStart)

	result, err := g.GenerateLoaded(loaded)
	if result != nil {
		result.LoadTime = loadTime
	}
	return result, err
}

// GenerateLoaded generates code from an already loaded document.
func (g *Generator) GenerateLoaded(loaded *loader.Result) (*GenerateResult, error) {
	if loaded == nil || loaded.Graph == nil {
		return nil, fmt.Errorf("generator: nil load result")
	}
	result, err := g.GenerateGraph(loaded.Graph)
	if result != nil {
		result.SourceFormat = loaded.SourceFormat
	}
	return result, err
}

// GenerateGraph generates one Go source file per named schema, walking names
// in document order. A schema that cannot be generated is reported as a
// critical issue and skipped; it never aborts the remaining schemas.
func (g *Generator) GenerateGraph(graph *schema.Graph) (*GenerateResult, error) {
	start := time.Now()
	packageName := g.PackageName
	if packageName == "" {
		packageName = "models"
	}

	res := resolver.NewWithLogger(graph, g.Logger)
	run := &generateRun{
		gen:    g,
		graph:  graph,
		res:    res,
		comb:   compose.NewWithLogger(res, g.Logger),
		pkg:    packageName,
		tokens: make(map[string]string),
		result: &GenerateResult{PackageName: packageName},
	}

	for _, name := range graph.Names() {
		node, ok := graph.Named(name)
		if !ok {
			continue
		}
		run.generateSchema(name, node)
	}

	run.tally()
	run.result.GenerateTime = time.Since(start)
	g.log().Info("generation complete",
		"types", run.result.GeneratedTypes,
		"unions", run.result.GeneratedUnions,
		"issues", len(run.result.Issues))

	if g.StrictMode && len(run.result.Issues) > 0 {
		return run.result, fmt.Errorf("generator: strict mode: %d issue(s) reported", len(run.result.Issues))
	}
	return run.result, nil
}

// generateRun carries the per-run state one GenerateGraph call owns.
type generateRun struct {
	gen    *Generator
	graph  *schema.Graph
	res    *resolver.Resolver
	comb   *compose.Combinator
	pkg    string
	result *GenerateResult
	// tokens maps each emitted file token to the schema that claimed it, so
	// case-collapsed name collisions surface instead of overwriting files
	tokens map[string]string
}

func (run *generateRun) addIssue(sev Severity, path, format string, args ...any) {
	if sev == SeverityInfo && !run.gen.IncludeInfo {
		return
	}
	run.result.Issues = append(run.result.Issues, GenerateIssue{
		Path:     path,
		Message:  fmt.Sprintf(format, args...),
		Severity: sev,
	})
}

func (run *generateRun) addFile(name string, content []byte) {
	run.result.Files = append(run.result.Files, GeneratedFile{Name: name, Content: content})
}

// claimToken reserves the file token for a schema. Two distinct schema names
// collapsing to the same token is a reportable collision, not a silent
// overwrite.
func (run *generateRun) claimToken(schemaName string) (string, bool) {
	token := naming.ToFileToken(schemaName)
	if first, taken := run.tokens[token]; taken {
		run.addIssue(SeverityCritical, schemaName,
			"file token %q collides with schema %q, skipping", token, first)
		return "", false
	}
	run.tokens[token] = schemaName
	return token, true
}

// tally folds issue severities into the result counters and the success flag.
func (run *generateRun) tally() {
	r := run.result
	for _, issue := range r.Issues {
		switch issue.Severity {
		case SeverityInfo:
			r.InfoCount++
		case SeverityWarning:
			r.WarningCount++
		case SeverityCritical:
			r.CriticalCount++
		}
	}
	r.Success = r.CriticalCount == 0
}
