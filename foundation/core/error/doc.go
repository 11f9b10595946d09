// Package error provides the coded error type shared by the FadeBasic front end.
//
// Package: error
// Title: FadeBasic Error Handling Framework
// Description: Structured errors with a code, a severity, free-form details and a
//              captured stack trace. Lexer and parser diagnostics are wrapped into
//              this type at the engine boundary so callers get one error shape with
//              the original diagnostic reachable through errors.As.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Codes reworked for the BASIC toolchain, CLI exit codes
//
// Usage:
//   import mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
//
//   err := mdwerror.Wrap(parseErr, "parse failed").
//     WithCode(mdwerror.CodeSyntax).
//     WithDetail("line", 12)
//
//   if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//     os.Exit(mdwerror.GetCode(err).ExitCode())
//   }
package error
