package generator

import (
	"fmt"

	"github.com/oasgen/oasgen/internal/options"
	"github.com/oasgen/oasgen/loader"
	"github.com/oasgen/oasgen/logging"
	"github.com/oasgen/oasgen/schema"
)

// Option is a function that configures a generate operation
type Option func(*generateConfig) error

// generateConfig holds configuration for a generate operation
type generateConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	loaded   *loader.Result
	graph    *schema.Graph

	packageName string
	strictMode  bool
	includeInfo bool
	logger      logging.Logger
}

// GenerateWithOptions generates code from a schema document using functional
// options.
//
// Example:
//
//	result, err := generator.GenerateWithOptions(
//	    generator.WithFilePath("openapi.yaml"),
//	    generator.WithPackageName("petstore"),
//	)
func GenerateWithOptions(opts ...Option) (*GenerateResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("generator: invalid options: %w", err)
	}

	g := &Generator{
		PackageName: cfg.packageName,
		StrictMode:  cfg.strictMode,
		IncludeInfo: cfg.includeInfo,
		Logger:      cfg.logger,
	}

	switch {
	case cfg.filePath != nil:
		return g.Generate(*cfg.filePath)
	case cfg.loaded != nil:
		return g.GenerateLoaded(cfg.loaded)
	case cfg.graph != nil:
		return g.GenerateGraph(cfg.graph)
	default:
		return nil, fmt.Errorf("generator: no input source specified")
	}
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*generateConfig, error) {
	cfg := &generateConfig{
		packageName: "models",
		includeInfo: true,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := options.ValidateSingleInputSource(
		"generator: must specify an input source (use WithFilePath, WithLoaded, or WithGraph)",
		"generator: must specify exactly one input source",
		cfg.filePath != nil, cfg.loaded != nil, cfg.graph != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a schema document file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *generateConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithLoaded specifies an already loaded document as the input source
func WithLoaded(result *loader.Result) Option {
	return func(cfg *generateConfig) error {
		if result == nil {
			return fmt.Errorf("generator: loaded result cannot be nil")
		}
		cfg.loaded = result
		return nil
	}
}

// WithGraph specifies a schema graph as the input source
func WithGraph(graph *schema.Graph) Option {
	return func(cfg *generateConfig) error {
		if graph == nil {
			return fmt.Errorf("generator: graph cannot be nil")
		}
		cfg.graph = graph
		return nil
	}
}

// WithPackageName specifies the Go package name for generated code
// Default: "models"
func WithPackageName(name string) Option {
	return func(cfg *generateConfig) error {
		if name == "" {
			return fmt.Errorf("generator: package name cannot be empty")
		}
		cfg.packageName = name
		return nil
	}
}

// WithStrictMode causes generation to fail on any reported issue
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational issues in the result
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *generateConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger sets a structured logger for generation events.
// By default, no logging is performed.
func WithLogger(l logging.Logger) Option {
	return func(cfg *generateConfig) error {
		cfg.logger = l
		return nil
	}
}
