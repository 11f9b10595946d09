// File: command.go
// Title: Command Invocations
// Description: Resolves command words against the collection and parses their
//              argument lists in statement and expression context.
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

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/ast"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/commands"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
)

func (st *state) lookupCommand(tok token.Token) (commands.CommandDescriptor, error) {
	cmd, ok := st.cmds.Lookup(tok.Text)
	if !ok {
		return commands.CommandDescriptor{}, diag.At(diag.UnknownCommand, tok,
			fmt.Sprintf("command %q is not registered", tok.Raw))
	}
	return cmd, nil
}

// commandStatement parses a command called for its effect. Arguments follow
// the command word directly.
func (st *state) commandStatement() (ast.Statement, error) {
	tok := st.s.Advance()
	cmd, err := st.lookupCommand(tok)
	if err != nil {
		return nil, err
	}

	args, err := st.commandArgs(cmd, false)
	if err != nil {
		return nil, err
	}
	return &ast.CommandStatement{Span: ast.NewSpan(tok, st.s.LastReal()), Command: cmd, Args: args}, nil
}

// commandExpression parses a command called for its result. The argument list
// may be wrapped in parentheses: rnd(10) + 1.
func (st *state) commandExpression() (ast.Expression, error) {
	tok := st.s.Advance()
	cmd, err := st.lookupCommand(tok)
	if err != nil {
		return nil, err
	}

	if !st.peekIs(token.ParenOpen) {
		args, err := st.commandArgs(cmd, false)
		if err != nil {
			return nil, err
		}
		return &ast.CommandExpression{Span: ast.NewSpan(tok, st.s.LastReal()), Command: cmd, Args: args}, nil
	}

	open := st.s.Advance()
	args, err := st.commandArgs(cmd, true)
	if err != nil {
		return nil, err
	}
	if !st.peekIs(token.ParenClose) {
		return nil, diag.New(diag.ExpressionMissingCloseParen, open, st.s.Peek(), "")
	}
	closeTok := st.s.Advance()
	return &ast.CommandExpression{Span: ast.NewSpan(tok, closeTok), Command: cmd, Args: args}, nil
}

// commandArgs parses one expression per source argument of cmd, separated by
// commas. Optional and variadic arguments may end the list early.
func (st *state) commandArgs(cmd commands.CommandDescriptor, inParens bool) ([]ast.Expression, error) {
	var args []ast.Expression

	for i, arg := range cmd.SourceArgs() {
		next := st.s.Peek()
		if i > 0 {
			if next.Kind != token.ArgSplitter {
				if arg.Optional || arg.Params {
					break
				}
				if argListEnd(next, inParens) {
					return nil, missingArgument(cmd, arg, next)
				}
				return nil, diag.At(diag.CommandExpectedArgSplitter, next,
					fmt.Sprintf("expected ',' before argument %q of %s", arg.Name, cmd.Name))
			}
			st.s.Advance()
		} else if argListEnd(next, inParens) {
			if arg.Optional || arg.Params {
				break
			}
			return nil, missingArgument(cmd, arg, next)
		}

		value, err := st.argument(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, value)

		if arg.Params {
			for st.peekIs(token.ArgSplitter) {
				st.s.Advance()
				value, err := st.argument(arg)
				if err != nil {
					return nil, err
				}
				args = append(args, value)
			}
			break
		}
	}

	return args, nil
}

// argument parses one command argument. Reference arguments take the address
// of a variable.
func (st *state) argument(arg commands.ArgDescriptor) (ast.Expression, error) {
	if !arg.Ref {
		return st.expression()
	}

	tok := st.s.Peek()
	if !tok.Kind.IsVariable() && tok.Kind != token.OpMultiply {
		return nil, diag.At(diag.RefArgumentRequiresVariable, tok,
			fmt.Sprintf("argument %q must be a variable", arg.Name))
	}
	target, err := st.reference()
	if err != nil {
		return nil, err
	}
	return &ast.AddressExpression{Span: ast.NewSpan(tok, target.Range().End), Target: target}, nil
}

func argListEnd(tok token.Token, inParens bool) bool {
	return isStatementEnd(tok.Kind) || (inParens && tok.Kind == token.ParenClose)
}

func missingArgument(cmd commands.CommandDescriptor, arg commands.ArgDescriptor, at token.Token) error {
	return diag.At(diag.CommandMissingArgument, at,
		fmt.Sprintf("%s requires argument %q", cmd.Name, arg.Name))
}
