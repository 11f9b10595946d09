// Package diag is the diagnostics model of the FadeBasic front end.
//
// Package: diag
// Title: FadeBasic Diagnostics
// Description: Every failure of the lexer, parser and post-parse validation is a
//              ParseError: a numeric ErrorCode from a fixed catalog anchored to a
//              TokenRange in the source. Code ranges classify the producer:
//
//                0xxx  lexer
//                01xx  syntax (parser)
//                02xx  post-parse semantic checks
//                03xx  symbol and type resolution
//
//              ErrorList collects several diagnostics when the parser runs in
//              recovery mode, and ProgramRecovery records where the parser
//              resynchronized after each one.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial diagnostics model
package diag
