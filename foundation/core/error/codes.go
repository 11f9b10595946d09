// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes used across the FadeBasic front end
//              and its command line tooling. Codes classify failures for logging,
//              diagnostics rendering and process exit statuses.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Toolchain codes, ExitCode replaces HTTPStatus

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Source processing
	CodeLexical  Code = "LEXICAL"
	CodeSyntax   Code = "SYNTAX"
	CodeSemantic Code = "SEMANTIC"
	CodeSymbol   Code = "SYMBOL"

	// Command vocabulary
	CodeDuplicateEntry  Code = "DUPLICATE_ENTRY"
	CodeInvalidCommand  Code = "INVALID_COMMAND"
	CodeCommandNotFound Code = "COMMAND_NOT_FOUND"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeIO            Code = "IO"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// ExitCode returns the process exit status the CLI uses for this code
func (c Code) ExitCode() int {
	switch c {
	case CodeLexical, CodeSyntax:
		return 2
	case CodeSemantic, CodeSymbol:
		return 3
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeDuplicateEntry, CodeInvalidCommand, CodeCommandNotFound:
		return 4
	case CodeIO, CodeNotFound:
		return 5
	default:
		return 1
	}
}
