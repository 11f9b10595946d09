// File: print.go
// Title: S-Expression Printer
// Description: Renders nodes as compact S-expressions for tests, the CLI and
//              the inspector.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"strconv"
	"strings"
)

// Sprint renders node as an S-expression. A program renders one top-level
// statement per line.
func Sprint(node Node) string {
	if node == nil || isNilNode(node) {
		return "()"
	}
	p := &printer{}
	if prog, ok := node.(*Program); ok {
		for i, s := range prog.Statements {
			if i > 0 {
				p.WriteByte('\n')
			}
			p.node(s)
		}
		return p.String()
	}
	p.node(node)
	return p.String()
}

type printer struct {
	strings.Builder
}

func (p *printer) open(name string) {
	p.WriteByte('(')
	p.WriteString(name)
}

func (p *printer) close() {
	p.WriteByte(')')
}

// arg writes a space-separated child
func (p *printer) arg(n Node) {
	p.WriteByte(' ')
	p.node(n)
}

func (p *printer) word(s string) {
	p.WriteByte(' ')
	p.WriteString(s)
}

func (p *printer) exprs(list []Expression) {
	for _, e := range list {
		p.arg(e)
	}
}

func (p *printer) stmts(list []Statement) {
	for _, s := range list {
		p.arg(s)
	}
}

func (p *printer) block(name string, list []Statement) {
	p.WriteByte(' ')
	p.open(name)
	p.stmts(list)
	p.close()
}

func (p *printer) node(n Node) {
	if n == nil || isNilNode(n) {
		p.WriteString("()")
		return
	}

	switch n := n.(type) {
	// Expressions
	case *LiteralInt:
		p.WriteString(strconv.FormatInt(n.Value, 10))
	case *LiteralReal:
		p.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
	case *LiteralString:
		p.WriteString(strconv.Quote(n.Value))
	case *VariableRef:
		p.WriteString(n.Name)
	case *ArrayIndexReference:
		p.open("idx")
		p.word(n.Name)
		p.exprs(n.Indexes)
		p.close()
	case *StructFieldReference:
		p.open(".")
		p.arg(n.Left)
		p.arg(n.Right)
		p.close()
	case *DereferenceExpression:
		p.open("deref")
		p.arg(n.Target)
		p.close()
	case *AddressExpression:
		p.open("addr")
		p.arg(n.Target)
		p.close()
	case *BinaryOperand:
		p.open(n.Operator.String())
		p.arg(n.Left)
		p.arg(n.Right)
		p.close()
	case *UnaryOperation:
		p.open(n.Operator.String())
		p.arg(n.Operand)
		p.close()
	case *CommandExpression:
		p.open("call")
		p.word(strconv.Quote(n.Command.Name))
		p.exprs(n.Args)
		p.close()
	case *TypeReference:
		p.WriteString(strings.ReplaceAll(n.String(), " ", "_"))

	// Statements
	case *AssignmentStatement:
		p.open("=")
		p.arg(n.Variable)
		p.arg(n.Expression)
		p.close()
	case *DeclarationStatement:
		p.open("decl")
		if n.Scope != ScopeDefault {
			p.word(n.Scope.String())
		}
		p.word(n.Name)
		if n.Type != nil {
			p.arg(n.Type)
		}
		if n.IsArray() {
			p.WriteByte(' ')
			p.open("ranks")
			p.exprs(n.Ranks)
			p.close()
		}
		if n.Initializer != nil {
			p.arg(n.Initializer)
		}
		p.close()
	case *IfStatement:
		p.open("if")
		p.arg(n.Condition)
		p.block("then", n.Positive)
		if len(n.Negative) > 0 {
			p.block("else", n.Negative)
		}
		p.close()
	case *WhileStatement:
		p.open("while")
		p.arg(n.Condition)
		p.stmts(n.Statements)
		p.close()
	case *RepeatUntilStatement:
		p.open("repeat")
		p.stmts(n.Statements)
		p.WriteByte(' ')
		p.open("until")
		p.arg(n.Condition)
		p.close()
		p.close()
	case *DoLoopStatement:
		p.open("do")
		p.stmts(n.Statements)
		p.close()
	case *ForStatement:
		p.open("for")
		p.arg(n.Variable)
		p.arg(n.Start)
		p.arg(n.End)
		p.arg(n.Step)
		p.stmts(n.Statements)
		p.close()
	case *SwitchStatement:
		p.open("select")
		p.arg(n.Expression)
		for _, c := range n.Cases {
			p.arg(c)
		}
		if n.Default != nil {
			p.arg(n.Default)
		}
		p.close()
	case *CaseStatement:
		p.open("case")
		p.WriteString(" (")
		for i, v := range n.Values {
			if i > 0 {
				p.WriteByte(' ')
			}
			p.node(v)
		}
		p.close()
		p.stmts(n.Statements)
		p.close()
	case *DefaultCaseStatement:
		p.open("default")
		p.stmts(n.Statements)
		p.close()
	case *FunctionStatement:
		p.open("function")
		p.word(n.Name)
		p.WriteByte(' ')
		p.open("params")
		for _, param := range n.Parameters {
			p.arg(param)
		}
		p.close()
		p.stmts(n.Statements)
		if n.ReturnValue != nil {
			p.WriteByte(' ')
			p.open("returns")
			p.arg(n.ReturnValue)
			p.close()
		}
		p.close()
	case *Parameter:
		p.named(n.Name, n.Type)
	case *FunctionReturnStatement:
		p.open("exitfunction")
		if n.Value != nil {
			p.arg(n.Value)
		}
		p.close()
	case *CommandStatement:
		p.open("call")
		p.word(strconv.Quote(n.Command.Name))
		p.exprs(n.Args)
		p.close()
	case *GotoStatement:
		p.open("goto")
		p.word(n.Label)
		p.close()
	case *GoSubStatement:
		p.open("gosub")
		p.word(n.Label)
		p.close()
	case *ReturnStatement:
		p.WriteString("(return)")
	case *LabelStatement:
		p.open("label")
		p.word(n.Name)
		p.close()
	case *TypeDefinitionStatement:
		p.open("type")
		p.word(n.Name)
		for _, f := range n.Fields {
			p.arg(f)
		}
		p.close()
	case *TypeField:
		p.named(n.Name, n.Type)
	case *CommentStatement:
		p.open("rem")
		p.word(strconv.Quote(n.Text))
		p.close()
	case *ExpressionStatement:
		p.open("expr")
		p.arg(n.Expression)
		p.close()
	case *ErrorStatement:
		p.open("error")
		if n.Error != nil {
			p.word(n.Error.ErrorCode.ID())
		}
		p.close()
	default:
		p.WriteString("(?)")
	}
}

func (p *printer) named(name string, t *TypeReference) {
	p.open(name)
	if t != nil {
		p.arg(t)
	}
	p.close()
}
