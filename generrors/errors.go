// Package generrors provides structured error types for oasgen.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between categories of
// resolution and generation failures and pick a recovery strategy.
//
// # Error Categories
//
//   - ReferenceError: $ref resolution failures and circular-reference events
//   - CompositionError: malformed or ambiguous allOf/oneOf/anyOf groupings
//   - NamingError: sanitized identifier collisions in generated code
//   - ConfigError: invalid configuration or input options
//
// Structural and reference problems are recovered locally with a conservative
// fallback type, so callers usually see them as issues on a result rather
// than as returned errors. Naming collisions are fatal for the affected
// schema: a silent collision corrupts generated code.
package generrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrUnresolvedReference indicates a $ref whose target is missing or
	// non-local.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrCircularReference indicates a circular $ref was detected and broken.
	ErrCircularReference = errors.New("circular reference")

	// ErrAmbiguousComposition indicates a union with no discriminator and no
	// nullable pattern, degraded to a best-effort wrapper.
	ErrAmbiguousComposition = errors.New("ambiguous composition")

	// ErrMalformedComposition indicates an empty allOf/oneOf/anyOf array.
	ErrMalformedComposition = errors.New("malformed composition")

	// ErrNamingCollision indicates two sanitized identifiers collide.
	ErrNamingCollision = errors.New("naming collision")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ReferenceError represents a failure to resolve a $ref.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// IsCircular is true if this error records a broken reference cycle
	IsCircular bool
	// IsNonLocal is true if the reference points outside the document
	IsNonLocal bool
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "unresolved reference"
	if e.IsCircular {
		msg = "circular reference"
	} else if e.IsNonLocal {
		msg = "non-local reference"
	}
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type. Circular references
// match ErrCircularReference; everything else matches ErrUnresolvedReference.
func (e *ReferenceError) Is(target error) bool {
	if target == ErrCircularReference && e.IsCircular {
		return true
	}
	return target == ErrUnresolvedReference && !e.IsCircular
}

// CompositionError represents a malformed or ambiguous composition.
type CompositionError struct {
	// Op is the composition keyword ("allOf", "oneOf", "anyOf")
	Op string
	// SchemaName is the named schema the composition belongs to
	SchemaName string
	// IsEmpty is true when the composition's branch list is empty
	IsEmpty bool
	// Message describes the problem
	Message string
}

// Error returns a human-readable error message.
func (e *CompositionError) Error() string {
	msg := "ambiguous composition"
	if e.IsEmpty {
		msg = "malformed composition"
	}
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.SchemaName != "" {
		msg += " in " + e.SchemaName
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CompositionError) Is(target error) bool {
	if target == ErrMalformedComposition && e.IsEmpty {
		return true
	}
	return target == ErrAmbiguousComposition && !e.IsEmpty
}

// NamingError represents a sanitized identifier collision.
type NamingError struct {
	// Name is the colliding sanitized identifier
	Name string
	// First is the original value that produced Name first
	First string
	// Second is the original value that collided with First
	Second string
	// Context describes where the collision occurred (e.g. an enum type name)
	Context string
}

// Error returns a human-readable error message.
func (e *NamingError) Error() string {
	msg := fmt.Sprintf("naming collision: %q and %q both sanitize to %s", e.First, e.Second, e.Name)
	if e.Context != "" {
		msg += " in " + e.Context
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *NamingError) Is(target error) bool {
	return target == ErrNamingCollision
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
