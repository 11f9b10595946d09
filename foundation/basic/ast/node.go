// File: node.go
// Title: AST Node Interfaces
// Description: Node interfaces, source spans, scopes and type references.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
)

// Node is implemented by every AST node
type Node interface {
	// Range returns the source span the node was built from
	Range() diag.TokenRange
}

// Statement is a node that can appear in a statement list
type Statement interface {
	Node
	stmtNode()
}

// Expression is a node that produces a value
type Expression interface {
	Node
	exprNode()
}

// Reference is an expression that names storage: a variable, an array element,
// a struct field, or a dereferenced pointer
type Reference interface {
	Expression
	refNode()
}

// Span is embedded in every node and records its first and last token
type Span struct {
	StartToken token.Token
	EndToken   token.Token
}

// NewSpan creates a span from start to end
func NewSpan(start, end token.Token) Span {
	return Span{StartToken: start, EndToken: end}
}

// Range implements Node
func (s Span) Range() diag.TokenRange {
	return diag.Span(s.StartToken, s.EndToken)
}

// Scope is the visibility modifier of a declaration
type Scope int

const (
	ScopeDefault Scope = iota
	ScopeGlobal
	ScopeLocal
)

// String returns the keyword of the scope, empty for the default
func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeLocal:
		return "local"
	default:
		return ""
	}
}

// TypeKind enumerates the kinds of type a declaration can name
type TypeKind int

const (
	TypeInteger TypeKind = iota
	TypeFloat
	TypeString
	TypeBoolean
	TypeByte
	TypeWord
	TypeDWord
	TypeDoubleInteger
	TypeDoubleFloat
	TypeStruct
)

var typeKindNames = [...]string{
	TypeInteger:       "integer",
	TypeFloat:         "float",
	TypeString:        "string",
	TypeBoolean:       "boolean",
	TypeByte:          "byte",
	TypeWord:          "word",
	TypeDWord:         "dword",
	TypeDoubleInteger: "double integer",
	TypeDoubleFloat:   "double float",
	TypeStruct:        "struct",
}

// String returns the source spelling of the type kind
func (k TypeKind) String() string {
	if k >= 0 && int(k) < len(typeKindNames) {
		return typeKindNames[k]
	}
	return "unknown"
}

// TypeKindOf maps a primitive type keyword to its kind
func TypeKindOf(kind token.Kind) (TypeKind, bool) {
	switch kind {
	case token.TypeInteger:
		return TypeInteger, true
	case token.TypeFloat:
		return TypeFloat, true
	case token.TypeString:
		return TypeString, true
	case token.TypeBoolean:
		return TypeBoolean, true
	case token.TypeByte:
		return TypeByte, true
	case token.TypeWord:
		return TypeWord, true
	case token.TypeDWord:
		return TypeDWord, true
	case token.TypeDoubleInteger:
		return TypeDoubleInteger, true
	case token.TypeDoubleFloat:
		return TypeDoubleFloat, true
	default:
		return 0, false
	}
}

// TypeReference names the type of a declaration, member or parameter
type TypeReference struct {
	Span
	Kind    TypeKind
	Name    string // lowercased TYPE name when Kind is TypeStruct
	Implied bool   // derived from a variable suffix, not written with AS
}

// String returns the type name
func (t *TypeReference) String() string {
	if t.Kind == TypeStruct {
		return t.Name
	}
	return t.Kind.String()
}

// ImpliedType returns the type a variable suffix implies: '$' is a string and
// '#' a float. Unsuffixed variables default to integer.
func ImpliedType(varKind token.Kind, at token.Token) *TypeReference {
	kind := TypeInteger
	switch varKind {
	case token.VariableString:
		kind = TypeString
	case token.VariableReal:
		kind = TypeFloat
	}
	return &TypeReference{Span: NewSpan(at, at), Kind: kind, Implied: true}
}
