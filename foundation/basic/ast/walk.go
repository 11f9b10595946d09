// File: walk.go
// Title: Tree Traversal
// Description: Depth-first traversal over statements and expressions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

// Visitor is called for each node. Returning nil skips the node's children;
// the returned visitor is used for the children otherwise. After the children
// are walked Visit is called with nil.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses node depth first
func Walk(v Visitor, node Node) {
	if node == nil || isNilNode(node) {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkStatements(v, n.Statements)

	// Statements
	case *AssignmentStatement:
		walkExpr(v, n.Variable)
		walkExpr(v, n.Expression)
	case *DeclarationStatement:
		if n.Type != nil {
			Walk(v, n.Type)
		}
		walkExprs(v, n.Ranks)
		walkExpr(v, n.Initializer)
	case *IfStatement:
		walkExpr(v, n.Condition)
		walkStatements(v, n.Positive)
		walkStatements(v, n.Negative)
	case *WhileStatement:
		walkExpr(v, n.Condition)
		walkStatements(v, n.Statements)
	case *RepeatUntilStatement:
		walkStatements(v, n.Statements)
		walkExpr(v, n.Condition)
	case *DoLoopStatement:
		walkStatements(v, n.Statements)
	case *ForStatement:
		walkExpr(v, n.Variable)
		walkExpr(v, n.Start)
		walkExpr(v, n.End)
		walkExpr(v, n.Step)
		walkStatements(v, n.Statements)
	case *SwitchStatement:
		walkExpr(v, n.Expression)
		for _, c := range n.Cases {
			Walk(v, c)
		}
		if n.Default != nil {
			Walk(v, n.Default)
		}
	case *CaseStatement:
		walkExprs(v, n.Values)
		walkStatements(v, n.Statements)
	case *DefaultCaseStatement:
		walkStatements(v, n.Statements)
	case *FunctionStatement:
		for _, p := range n.Parameters {
			Walk(v, p)
		}
		walkStatements(v, n.Statements)
		walkExpr(v, n.ReturnValue)
	case *Parameter:
		if n.Type != nil {
			Walk(v, n.Type)
		}
	case *FunctionReturnStatement:
		walkExpr(v, n.Value)
	case *CommandStatement:
		walkExprs(v, n.Args)
	case *TypeDefinitionStatement:
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *TypeField:
		if n.Type != nil {
			Walk(v, n.Type)
		}
	case *ExpressionStatement:
		walkExpr(v, n.Expression)

	// Expressions
	case *ArrayIndexReference:
		walkExprs(v, n.Indexes)
	case *StructFieldReference:
		walkExpr(v, n.Left)
		walkExpr(v, n.Right)
	case *DereferenceExpression:
		walkExpr(v, n.Target)
	case *AddressExpression:
		walkExpr(v, n.Target)
	case *BinaryOperand:
		walkExpr(v, n.Left)
		walkExpr(v, n.Right)
	case *UnaryOperation:
		walkExpr(v, n.Operand)
	case *CommandExpression:
		walkExprs(v, n.Args)

	// Leaves: literals, variables, type references, jumps, labels,
	// comments and error placeholders
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if node != nil && f(node) {
		return f
	}
	return nil
}

// Inspect traverses node depth first and calls f for every node. Returning
// false from f skips the node's children.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

func walkStatements(v Visitor, list []Statement) {
	for _, s := range list {
		Walk(v, s)
	}
}

func walkExprs(v Visitor, list []Expression) {
	for _, e := range list {
		walkExpr(v, e)
	}
}

func walkExpr(v Visitor, e Node) {
	if e != nil {
		Walk(v, e)
	}
}

// isNilNode catches typed nil pointers stored in an interface
func isNilNode(node Node) bool {
	switch n := node.(type) {
	case *Program:
		return n == nil
	case *TypeReference:
		return n == nil
	case *CaseStatement:
		return n == nil
	case *DefaultCaseStatement:
		return n == nil
	}
	return false
}
