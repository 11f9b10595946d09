// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that loggers and renderers can
//              decide how loudly to report a failure.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for toolchain codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem in user input, e.g. a syntax error in a script
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error such as an unreadable configuration
	SeverityHigh

	// SeverityCritical indicates an internal failure of the toolchain itself
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeIO:
		return SeverityHigh

	case CodeLexical, CodeSyntax, CodeSemantic, CodeSymbol,
		CodeInvalidInput, CodeValidationFailed, CodeInvalidLength, CodeNotFound:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
