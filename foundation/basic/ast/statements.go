// File: statements.go
// Title: Statement Nodes
// Description: Assignments, declarations, control flow blocks, functions,
//              types, jumps, commands, comments and error placeholders.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/commands"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
)

// AssignmentStatement stores a value: x = 1
type AssignmentStatement struct {
	Span
	Variable   Reference
	Expression Expression
}

// DeclarationStatement declares a variable or, with Ranks, an array:
//
//	GLOBAL score AS INTEGER = 0
//	DIM grid(10, 10) AS FLOAT
type DeclarationStatement struct {
	Span
	Scope       Scope
	Name        string
	Kind        token.Kind
	Type        *TypeReference
	Ranks       []Expression
	Initializer Expression
}

// IsArray reports whether the declaration came from DIM
func (d *DeclarationStatement) IsArray() bool {
	return len(d.Ranks) > 0
}

// IfStatement is a block or inline conditional
type IfStatement struct {
	Span
	Condition Expression
	Positive  []Statement
	Negative  []Statement
	Inline    bool // written with THEN on one logical line
}

// WhileStatement loops while Condition holds
type WhileStatement struct {
	Span
	Condition  Expression
	Statements []Statement
}

// RepeatUntilStatement loops until Condition holds
type RepeatUntilStatement struct {
	Span
	Statements []Statement
	Condition  Expression
}

// DoLoopStatement loops forever
type DoLoopStatement struct {
	Span
	Statements []Statement
}

// ForStatement counts Variable from Start to End by Step
type ForStatement struct {
	Span
	Variable   Reference
	Start      Expression
	End        Expression
	Step       Expression
	Statements []Statement
}

// SwitchStatement is SELECT expr with its CASE blocks
type SwitchStatement struct {
	Span
	Expression Expression
	Cases      []*CaseStatement
	Default    *DefaultCaseStatement
}

// CaseStatement matches any of Values
type CaseStatement struct {
	Span
	Values     []Expression
	Statements []Statement
}

// DefaultCaseStatement runs when no CASE matched
type DefaultCaseStatement struct {
	Span
	Statements []Statement
}

// Parameter is a function parameter
type Parameter struct {
	Span
	Name string
	Kind token.Kind
	Type *TypeReference
}

// FunctionStatement declares a function. ReturnValue holds the expression
// written after ENDFUNCTION, if any.
type FunctionStatement struct {
	Span
	Name        string
	Parameters  []*Parameter
	Statements  []Statement
	ReturnValue Expression
}

// FunctionReturnStatement is EXITFUNCTION with an optional value
type FunctionReturnStatement struct {
	Span
	Value Expression
}

// CommandStatement calls a host command
type CommandStatement struct {
	Span
	Command commands.CommandDescriptor
	Args    []Expression
}

// GotoStatement jumps to a label
type GotoStatement struct {
	Span
	Label string
}

// GoSubStatement calls a label as a subroutine
type GoSubStatement struct {
	Span
	Label string
}

// ReturnStatement returns from a GOSUB
type ReturnStatement struct {
	Span
}

// LabelStatement declares a jump target: name:
type LabelStatement struct {
	Span
	Name string
}

// TypeField is one member of a TYPE
type TypeField struct {
	Span
	Name string
	Kind token.Kind
	Type *TypeReference
}

// TypeDefinitionStatement declares a struct type
type TypeDefinitionStatement struct {
	Span
	Name   string
	Fields []*TypeField
}

// CommentStatement is a comment collected by the lexer
type CommentStatement struct {
	Span
	Text  string
	Block bool
}

// ExpressionStatement evaluates an expression for its effect
type ExpressionStatement struct {
	Span
	Expression Expression
}

// ErrorStatement replaces a statement that failed to parse in recovery mode
type ErrorStatement struct {
	Span
	Error *diag.ParseError
}

func (*AssignmentStatement) stmtNode()     {}
func (*DeclarationStatement) stmtNode()    {}
func (*IfStatement) stmtNode()             {}
func (*WhileStatement) stmtNode()          {}
func (*RepeatUntilStatement) stmtNode()    {}
func (*DoLoopStatement) stmtNode()         {}
func (*ForStatement) stmtNode()            {}
func (*SwitchStatement) stmtNode()         {}
func (*CaseStatement) stmtNode()           {}
func (*DefaultCaseStatement) stmtNode()    {}
func (*FunctionStatement) stmtNode()       {}
func (*FunctionReturnStatement) stmtNode() {}
func (*CommandStatement) stmtNode()        {}
func (*GotoStatement) stmtNode()           {}
func (*GoSubStatement) stmtNode()          {}
func (*ReturnStatement) stmtNode()         {}
func (*LabelStatement) stmtNode()          {}
func (*TypeDefinitionStatement) stmtNode() {}
func (*CommentStatement) stmtNode()        {}
func (*ExpressionStatement) stmtNode()     {}
func (*ErrorStatement) stmtNode()          {}
