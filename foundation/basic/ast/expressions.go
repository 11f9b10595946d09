// File: expressions.go
// Title: Expression Nodes
// Description: Literals, references, operators and command calls.
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
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
)

// BinaryOperator is an infix operator
type BinaryOperator int

const (
	OpAdd BinaryOperator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpMod
	OpEqual
	OpNotEqual
	OpGreaterThan
	OpGreaterThanOrEqual
	OpLessThan
	OpLessThanOrEqual
	OpAnd
	OpOr
)

var binarySymbols = [...]string{
	OpAdd:                "+",
	OpSubtract:           "-",
	OpMultiply:           "*",
	OpDivide:             "/",
	OpPower:              "^",
	OpMod:                "mod",
	OpEqual:              "=",
	OpNotEqual:           "<>",
	OpGreaterThan:        ">",
	OpGreaterThanOrEqual: ">=",
	OpLessThan:           "<",
	OpLessThanOrEqual:    "<=",
	OpAnd:                "and",
	OpOr:                 "or",
}

// String returns the source symbol of the operator
func (op BinaryOperator) String() string {
	if op >= 0 && int(op) < len(binarySymbols) {
		return binarySymbols[op]
	}
	return "?"
}

// BinaryOperatorOf maps an operator token to its operator
func BinaryOperatorOf(kind token.Kind) (BinaryOperator, bool) {
	switch kind {
	case token.OpPlus:
		return OpAdd, true
	case token.OpMinus:
		return OpSubtract, true
	case token.OpMultiply:
		return OpMultiply, true
	case token.OpDivide:
		return OpDivide, true
	case token.OpPower:
		return OpPower, true
	case token.OpMod:
		return OpMod, true
	case token.OpEqual:
		return OpEqual, true
	case token.OpNotEqual:
		return OpNotEqual, true
	case token.OpGt:
		return OpGreaterThan, true
	case token.OpGte:
		return OpGreaterThanOrEqual, true
	case token.OpLt:
		return OpLessThan, true
	case token.OpLte:
		return OpLessThanOrEqual, true
	case token.OpAnd:
		return OpAnd, true
	case token.OpOr:
		return OpOr, true
	default:
		return 0, false
	}
}

// UnaryOperator is a prefix operator
type UnaryOperator int

const (
	OpNegate UnaryOperator = iota
	OpNot
)

// String returns the S-expression name of the operator
func (op UnaryOperator) String() string {
	if op == OpNot {
		return "not"
	}
	return "neg"
}

// LiteralInt is an integer literal
type LiteralInt struct {
	Span
	Value int64
}

// LiteralReal is a floating point literal
type LiteralReal struct {
	Span
	Value float64
}

// LiteralString is a string literal without its quotes
type LiteralString struct {
	Span
	Value string
}

// VariableRef names a scalar variable
type VariableRef struct {
	Span
	Name string     // lowercased, including any type suffix
	Kind token.Kind // VariableGeneral, VariableString or VariableReal
}

// ArrayIndexReference is an element access a(i, j)
type ArrayIndexReference struct {
	Span
	Name    string
	Kind    token.Kind
	Indexes []Expression
}

// StructFieldReference is a field access left.right, where right may chain
// further fields
type StructFieldReference struct {
	Span
	Left  Reference
	Right Reference
}

// DereferenceExpression reads through a pointer: *p
type DereferenceExpression struct {
	Span
	Target Reference
}

// AddressExpression passes a reference to a command argument declared as ref
type AddressExpression struct {
	Span
	Target Reference
}

// BinaryOperand applies an infix operator. Grouped is set when the source wrote
// the operation inside parentheses.
type BinaryOperand struct {
	Span
	Operator BinaryOperator
	Left     Expression
	Right    Expression
	Grouped  bool
}

// UnaryOperation applies NOT or a negation
type UnaryOperation struct {
	Span
	Operator UnaryOperator
	Operand  Expression
}

// CommandExpression calls a host command for its result
type CommandExpression struct {
	Span
	Command commands.CommandDescriptor
	Args    []Expression
}

func (*LiteralInt) exprNode()            {}
func (*LiteralReal) exprNode()           {}
func (*LiteralString) exprNode()         {}
func (*VariableRef) exprNode()           {}
func (*ArrayIndexReference) exprNode()   {}
func (*StructFieldReference) exprNode()  {}
func (*DereferenceExpression) exprNode() {}
func (*AddressExpression) exprNode()     {}
func (*BinaryOperand) exprNode()         {}
func (*UnaryOperation) exprNode()        {}
func (*CommandExpression) exprNode()     {}

func (*VariableRef) refNode()           {}
func (*ArrayIndexReference) refNode()   {}
func (*StructFieldReference) refNode()  {}
func (*DereferenceExpression) refNode() {}
