// File: expression.go
// Title: Expression Parser
// Description: Precedence climbing over the binary operators, primary terms,
//              unary minus, the NOT rewrite and variable references.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strconv"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/ast"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
)

// Operator precedences, higher binds tighter
const (
	PrecedenceNot        = 5
	PrecedenceAnd        = 6
	PrecedenceOr         = 7
	PrecedenceComparison = 10
	PrecedenceAdditive   = 20
	PrecedenceProduct    = 30
	PrecedencePower      = 40
)

// Precedence returns the binding strength of a binary operator token
func Precedence(kind token.Kind) (int, bool) {
	if !kind.IsBinaryOperator() {
		return 0, false
	}
	switch kind {
	case token.OpAnd:
		return PrecedenceAnd, true
	case token.OpOr:
		return PrecedenceOr, true
	case token.OpEqual, token.OpNotEqual, token.OpGt, token.OpGte, token.OpLt, token.OpLte:
		return PrecedenceComparison, true
	case token.OpPlus, token.OpMinus:
		return PrecedenceAdditive, true
	case token.OpMultiply, token.OpDivide:
		return PrecedenceProduct, true
	case token.OpMod, token.OpPower:
		return PrecedencePower, true
	default:
		return 0, false
	}
}

func (st *state) expression() (ast.Expression, error) {
	return st.binary(0)
}

// binary climbs operators of at least minPrec. The right operand is parsed
// one level tighter, so equal precedences group to the left.
func (st *state) binary(minPrec int) (ast.Expression, error) {
	left, err := st.term()
	if err != nil {
		return nil, err
	}

	for {
		opTok := st.s.Peek()
		prec, ok := Precedence(opTok.Kind)
		if !ok || prec < minPrec {
			return left, nil
		}
		st.s.Advance()

		right, err := st.binary(prec + 1)
		if err != nil {
			return nil, err
		}

		op, _ := ast.BinaryOperatorOf(opTok.Kind)
		left = &ast.BinaryOperand{
			Span:     ast.NewSpan(left.Range().Start, right.Range().End),
			Operator: op,
			Left:     left,
			Right:    right,
		}
	}
}

// term parses a primary expression
func (st *state) term() (ast.Expression, error) {
	tok := st.s.Peek()

	switch tok.Kind {
	case token.ParenOpen:
		return st.group()

	case token.LiteralInt:
		st.s.Advance()
		v, err := strconv.ParseInt(tok.Raw, 10, 64)
		if err != nil {
			return nil, diag.At(diag.InvalidLiteral, tok, fmt.Sprintf("integer literal %s is out of range", tok.Raw))
		}
		return &ast.LiteralInt{Span: ast.NewSpan(tok, tok), Value: v}, nil

	case token.LiteralReal:
		st.s.Advance()
		v, err := strconv.ParseFloat(tok.Raw, 64)
		if err != nil {
			return nil, diag.At(diag.InvalidLiteral, tok, fmt.Sprintf("invalid real literal %s", tok.Raw))
		}
		return &ast.LiteralReal{Span: ast.NewSpan(tok, tok), Value: v}, nil

	case token.LiteralString:
		st.s.Advance()
		return &ast.LiteralString{Span: ast.NewSpan(tok, tok), Value: unquote(tok.Raw)}, nil

	case token.VariableGeneral, token.VariableString, token.VariableReal, token.OpMultiply:
		return st.reference()

	case token.CommandWord:
		return st.commandExpression()

	case token.OpMinus:
		st.s.Advance()
		if lit := st.s.Peek(); lit.Kind == token.LiteralInt {
			// the most negative integer has no positive counterpart
			if _, err := strconv.ParseInt(lit.Raw, 10, 64); err != nil {
				if v, err := strconv.ParseInt("-"+lit.Raw, 10, 64); err == nil {
					st.s.Advance()
					return &ast.LiteralInt{Span: ast.NewSpan(tok, lit), Value: v}, nil
				}
			}
		}
		operand, err := st.term()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOperation{
			Span:     ast.NewSpan(tok, operand.Range().End),
			Operator: ast.OpNegate,
			Operand:  operand,
		}, nil

	case token.OpNot:
		st.s.Advance()
		operand, err := st.expression()
		if err != nil {
			return nil, err
		}
		return applyNot(tok, operand), nil
	}

	return nil, diag.At(diag.ExpressionMissing, tok, expectedExpression(tok))
}

// group parses a parenthesized expression
func (st *state) group() (ast.Expression, error) {
	open := st.s.Advance()

	next := st.s.Peek()
	if next.Kind == token.ParenClose || isStatementEnd(next.Kind) {
		return nil, diag.At(diag.ExpressionMissingAfterOpenParen, next, "")
	}

	inner, err := st.expression()
	if err != nil {
		return nil, err
	}

	if !st.peekIs(token.ParenClose) {
		return nil, diag.New(diag.ExpressionMissingCloseParen, open, st.s.Peek(), "")
	}
	st.s.Advance()

	if b, ok := inner.(*ast.BinaryOperand); ok {
		b.Grouped = true
	}
	return inner, nil
}

// applyNot negates e. An unparenthesized AND/OR node keeps its shape and the
// negation moves onto its left operand, so NOT 3>2 AND 3 negates only the
// comparison.
func applyNot(notTok token.Token, e ast.Expression) ast.Expression {
	if b, ok := e.(*ast.BinaryOperand); ok && !b.Grouped && (b.Operator == ast.OpAnd || b.Operator == ast.OpOr) {
		b.Left = &ast.UnaryOperation{
			Span:     ast.NewSpan(notTok, b.Left.Range().End),
			Operator: ast.OpNot,
			Operand:  b.Left,
		}
		b.StartToken = notTok
		return b
	}
	return &ast.UnaryOperation{
		Span:     ast.NewSpan(notTok, e.Range().End),
		Operator: ast.OpNot,
		Operand:  e,
	}
}

// reference parses a variable, array element, struct field chain or pointer
// dereference
func (st *state) reference() (ast.Reference, error) {
	tok := st.s.Peek()

	if tok.Kind == token.OpMultiply {
		st.s.Advance()
		target, err := st.reference()
		if err != nil {
			return nil, err
		}
		return &ast.DereferenceExpression{Span: ast.NewSpan(tok, target.Range().End), Target: target}, nil
	}

	if !tok.Kind.IsVariable() {
		return nil, diag.At(diag.ExpectedVariable, tok, fmt.Sprintf("expected a variable, found %s", describe(tok)))
	}
	st.s.Advance()

	var ref ast.Reference = &ast.VariableRef{Span: ast.NewSpan(tok, tok), Name: tok.Text, Kind: tok.Kind}

	if st.peekIs(token.ParenOpen) {
		open := st.s.Advance()
		var indexes []ast.Expression
		for !st.peekIs(token.ParenClose) {
			if len(indexes) > 0 {
				if !st.peekIs(token.ArgSplitter) {
					return nil, diag.New(diag.ArrayMissingCloseParen, open, st.s.Peek(), "")
				}
				st.s.Advance()
			}
			index, err := st.expression()
			if err != nil {
				return nil, err
			}
			indexes = append(indexes, index)
		}
		closeTok := st.s.Advance()
		ref = &ast.ArrayIndexReference{Span: ast.NewSpan(tok, closeTok), Name: tok.Text, Kind: tok.Kind, Indexes: indexes}
	}

	if st.peekIs(token.FieldSplitter) {
		st.s.Advance()
		if !st.s.Peek().Kind.IsVariable() {
			return nil, diag.At(diag.StructFieldMissingName, st.s.Peek(), "")
		}
		right, err := st.reference()
		if err != nil {
			return nil, err
		}
		ref = &ast.StructFieldReference{Span: ast.NewSpan(tok, right.Range().End), Left: ref, Right: right}
	}

	return ref, nil
}

func unquote(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return raw[1 : len(raw)-1]
	}
	return raw
}

func describe(tok token.Token) string {
	switch {
	case tok.Kind == token.EOF:
		return "the end of input"
	case tok.IsVirtual():
		return "the end of the line"
	case tok.Kind.IsLiteral():
		return "the literal " + tok.Raw
	default:
		return fmt.Sprintf("%q", tok.Raw)
	}
}

func expectedExpression(tok token.Token) string {
	return fmt.Sprintf("expected an expression, found %s", describe(tok))
}
