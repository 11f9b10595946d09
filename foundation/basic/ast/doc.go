// Package ast defines the abstract syntax tree of FadeBasic programs.
//
// Package: ast
// Title: FadeBasic Abstract Syntax Tree
// Description: Nodes form two closed families, statements and expressions, each
//              sealed by an unexported marker method. Traversals switch on the
//              concrete node type (see Walk and Sprint) instead of dispatching
//              through visitor methods. Every node records the first and last
//              token it was built from so diagnostics can point at the source.
//
//              A Program owns its top-level statements. The Labels, TypeDefinitions
//              and Functions side indexes refer into that tree; they are filled by
//              the parser and consumed by later compilation stages.
//
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial AST
package ast
