// File: token.go
// Title: Token Value
// Description: Defines the immutable Token produced by the lexer and the
//              Comment records collected while scanning.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package token

import "fmt"

// Token is a classified, located span of source text. Tokens are values and are
// never mutated after the lexer creates them.
type Token struct {
	Kind       Kind
	LineNumber int    // 1-based, 0 for a synthesized EOF
	CharNumber int    // 1-based column of the first character
	Raw        string // text as written in the source
	Text       string // case-normalized text used for matching
}

// New creates a token
func New(kind Kind, line, char int, raw, text string) Token {
	return Token{Kind: kind, LineNumber: line, CharNumber: char, Raw: raw, Text: text}
}

// EOFToken returns the synthesized end of file token
func EOFToken() Token {
	return Token{Kind: EOF}
}

// IsVirtual reports whether the token was inserted by the lexer rather than
// written in the source. Only end-of-statement tokens at line breaks are virtual.
func (t Token) IsVirtual() bool {
	return t.Kind == EndStatement && t.Raw == ""
}

// EndChar returns the 1-based column just past the token's source text
func (t Token) EndChar() int {
	return t.CharNumber + len(t.Raw)
}

// Position returns "line:char"
func (t Token) Position() string {
	return fmt.Sprintf("%d:%d", t.LineNumber, t.CharNumber)
}

// String returns a compact representation for debugging and CLI output
func (t Token) String() string {
	switch {
	case t.Kind == EOF:
		return "EOF"
	case t.IsVirtual():
		return fmt.Sprintf("%s %s(\\n)", t.Position(), t.Kind)
	default:
		return fmt.Sprintf("%s %s(%s)", t.Position(), t.Kind, t.Raw)
	}
}

// Comment is a line or block comment captured by the lexer
type Comment struct {
	Line  int    // line of the comment marker
	Char  int    // column of the comment marker
	Text  string // comment body without the marker
	Block bool   // true for REMSTART/REMEND blocks
}
