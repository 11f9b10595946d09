// ============================================================================
// FadeBasic toolchain
// ============================================================================
//
// Package:     version
// Description: Central version management for the toolchain components
// Author:      msto63
// Created:     2025-12-06
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for the toolchain
const (
	// Tool version
	Tool = "0.4.0"

	// Component versions
	Lexer    = "0.4.0"
	Parser   = "0.4.0"
	Commands = "0.3.0"
)

// Set at build time via -ldflags "-X ...version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "commands":
		return Commands
	default:
		return Tool
	}
}

// String returns the full version line printed by `fadebasic version`
func String() string {
	return fmt.Sprintf("fadebasic %s (commit %s, built %s)", Tool, Commit, BuildDate)
}
