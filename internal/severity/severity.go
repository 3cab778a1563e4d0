// Package severity provides severity level constants for issues reported by
// the resolver, combinator, and generator packages.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error < Critical
package severity

// Severity indicates the severity level of an issue found during resolution
// or code generation.
type Severity int

const (
	// SeverityError indicates a problem that makes the affected schema
	// unusable, such as a naming collision in generated identifiers.
	SeverityError Severity = iota

	// SeverityWarning indicates degraded output that should be reviewed,
	// such as an unresolvable $ref replaced by an untyped fallback.
	SeverityWarning

	// SeverityInfo indicates informational messages about resolution choices,
	// such as a broken reference cycle or a lossy union wrapper.
	SeverityInfo

	// SeverityCritical indicates a schema that could not be generated at all.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
