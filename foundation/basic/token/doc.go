// Package token defines the lexical vocabulary of the FadeBasic language.
//
// Package: token
// Title: FadeBasic Tokens
// Description: Token kinds, the immutable Token value produced by the lexer, and
//              the Comment record the lexer collects alongside the token stream.
//              Line and character numbers are 1-based. A virtual end-of-statement
//              token, inserted by the lexer at a line break, has empty Raw text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial token model
package token
