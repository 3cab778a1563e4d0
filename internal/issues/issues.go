// Package issues provides a unified issue type for resolution and generation
// problems that are recovered locally rather than returned as errors.
package issues

import (
	"fmt"

	"github.com/oasgen/oasgen/internal/severity"
)

// Issue represents a single problem found while resolving or generating.
type Issue struct {
	// Path is the pointer path to the problematic node
	// (e.g., "#/components/schemas/Order/properties/status")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}
	if i.Path == "" {
		return fmt.Sprintf("%s %s", symbol, i.Message)
	}
	return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
}
