// Package: parser
// Title: BASIC Statement and Expression Parser
// Description: Turns a token stream into an AST. Statements are parsed by
//              recursive descent dispatching on the leading token, expressions
//              by precedence climbing. Every block form scans for its own
//              closing keyword and reports a dedicated diagnostic when the end
//              of input is reached first.
//
//              By default the first diagnostic aborts the parse. With
//              Options.Recover the failing top-level statement is replaced by
//              an ast.ErrorStatement, the cursor skips to the next end of
//              statement, and all diagnostics are returned as a diag.ErrorList.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	tokens, err := lexer.Tokenize(source, cmds)
//	if err != nil {
//	    return err
//	}
//	program, err := parser.Parse(tokens, cmds)
package parser
