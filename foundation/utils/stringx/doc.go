// Package stringx provides small string helpers shared by the FadeBasic front end
// and its tooling.
//
// Package: stringx
// Title: String Utilities
// Description: Blank checks, Unicode-aware truncation and padding, line splitting
//              across line ending conventions, and whitespace normalization used
//              to key command names.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers the toolchain uses, added NormalizeSpace
package stringx
