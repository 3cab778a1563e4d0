package loader

import (
	"fmt"
	"io"

	"github.com/oasgen/oasgen/internal/options"
	"github.com/oasgen/oasgen/logging"
)

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger     logging.Logger
	sourceName *string
}

// LoadWithOptions loads a schema document using functional options.
//
// Example:
//
//	result, err := loader.LoadWithOptions(
//	    loader.WithFilePath("openapi.yaml"),
//	)
func LoadWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: invalid options: %w", err)
	}

	l := &Loader{Logger: cfg.logger}

	var result *Result
	var loadErr error
	switch {
	case cfg.filePath != nil:
		result, loadErr = l.Load(*cfg.filePath)
	case cfg.reader != nil:
		result, loadErr = l.LoadReader(cfg.reader)
	case cfg.bytes != nil:
		result, loadErr = l.LoadBytes(cfg.bytes)
	default:
		return nil, fmt.Errorf("loader: no input source specified")
	}

	if loadErr != nil {
		return result, loadErr
	}
	if result != nil && cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if err := options.ValidateSingleInputSource(
		"loader: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"loader: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return fmt.Errorf("loader: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return fmt.Errorf("loader: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets a structured logger for load events.
// By default, no logging is performed.
func WithLogger(l logging.Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName specifies a meaningful name for the source document, used in
// diagnostics when loading from bytes or a reader.
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		if name == "" {
			return fmt.Errorf("loader: source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}
