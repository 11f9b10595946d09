// File: program.go
// Title: Program Node
// Description: Root node with the top-level statement list and the side
//              indexes for labels, functions, type definitions and comments.
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

// LabelDeclaration records where a label sits in the top-level statement list
type LabelDeclaration struct {
	Name           string
	StatementIndex int
	Node           *LabelStatement
}

// Program is the root of a parsed source file. The side indexes hold
// references into Statements and do not own their nodes.
type Program struct {
	Statements      []Statement
	TypeDefinitions []*TypeDefinitionStatement
	Functions       []*FunctionStatement
	Labels          []LabelDeclaration
	Comments        []*CommentStatement
}

// NewProgram creates an empty program
func NewProgram() *Program {
	return &Program{}
}

// Range spans the first to the last top-level statement
func (p *Program) Range() diag.TokenRange {
	if p == nil || len(p.Statements) == 0 {
		return diag.TokenRange{}
	}
	first := p.Statements[0].Range()
	last := p.Statements[len(p.Statements)-1].Range()
	return diag.Span(first.Start, last.End)
}

// Append adds a top-level statement and indexes it
func (p *Program) Append(stmt Statement) {
	index := len(p.Statements)
	p.Statements = append(p.Statements, stmt)

	switch s := stmt.(type) {
	case *TypeDefinitionStatement:
		p.TypeDefinitions = append(p.TypeDefinitions, s)
	case *FunctionStatement:
		p.Functions = append(p.Functions, s)
	}

	// labels nested in blocks resolve to their enclosing top-level statement
	Inspect(stmt, func(n Node) bool {
		if l, ok := n.(*LabelStatement); ok {
			p.Labels = append(p.Labels, LabelDeclaration{Name: l.Name, StatementIndex: index, Node: l})
		}
		return true
	})
}

// AddComments converts lexer comments into comment nodes
func (p *Program) AddComments(comments []token.Comment) {
	for _, c := range comments {
		at := token.New(token.EOF, c.Line, c.Char, "", "")
		p.Comments = append(p.Comments, &CommentStatement{
			Span:  NewSpan(at, at),
			Text:  c.Text,
			Block: c.Block,
		})
	}
}

// Label returns the declaration of a label
func (p *Program) Label(name string) (LabelDeclaration, bool) {
	for _, l := range p.Labels {
		if l.Name == name {
			return l, true
		}
	}
	return LabelDeclaration{}, false
}

// TypeDefinition returns a TYPE by name
func (p *Program) TypeDefinition(name string) (*TypeDefinitionStatement, bool) {
	for _, t := range p.TypeDefinitions {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Function returns a FUNCTION by name
func (p *Program) Function(name string) (*FunctionStatement, bool) {
	for _, f := range p.Functions {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Errors returns the diagnostics of every ErrorStatement in the program
func (p *Program) Errors() diag.ErrorList {
	var list diag.ErrorList
	for _, stmt := range p.Statements {
		if e, ok := stmt.(*ErrorStatement); ok && e.Error != nil {
			list.Add(e.Error)
		}
	}
	return list
}
