// File: parser.go
// Title: Parser Entry Points
// Description: Parser options, the top-level statement loop, error recovery
//              and the token helpers shared by the statement and expression
//              productions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"fmt"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/ast"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/commands"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
)

// MaxArrayRanks is the largest number of dimensions DIM accepts
const MaxArrayRanks = 5

// Options configures a Parser
type Options struct {
	Logger *mdwlog.Logger

	// Recover keeps parsing after a failed top-level statement
	Recover bool

	// MaxErrors stops a recovering parse after this many diagnostics.
	// Zero means no limit.
	MaxErrors int
}

// Result is the outcome of a parse
type Result struct {
	Program    *ast.Program
	Recoveries []diag.ProgramRecovery
}

// Parser turns token streams into programs. A Parser holds no per-call state
// and may be shared between goroutines; each call owns its own stream.
type Parser struct {
	opts   Options
	logger *mdwlog.Logger
}

// New creates a parser
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxErrors < 0 {
		opts.MaxErrors = 0
	}
	return &Parser{
		opts:   opts,
		logger: opts.Logger.WithName("basic-parser"),
	}
}

// Parse runs a fail-fast parser over tokens
func Parse(tokens []token.Token, cmds *commands.Collection) (*ast.Program, error) {
	return New(Options{}).Parse(NewStream(tokens), cmds)
}

// ParseExpression parses tokens as a single expression. Trailing
// end-of-statement tokens are allowed, anything else is an error.
func ParseExpression(tokens []token.Token, cmds *commands.Collection) (ast.Expression, error) {
	st := &state{s: NewStream(tokens), cmds: cmds}
	expr, err := st.expression()
	if err != nil {
		return nil, err
	}
	st.skipSeparators()
	if !st.s.IsEof() {
		return nil, diag.At(diag.ExpectedEndOfStatement, st.s.Peek(), "")
	}
	return expr, nil
}

// Parse consumes the stream and returns the program. In recovery mode the
// program is returned together with a diag.ErrorList of every failure.
func (p *Parser) Parse(stream *Stream, cmds *commands.Collection) (*ast.Program, error) {
	res, err := p.Run(stream, cmds)
	if res == nil {
		return nil, err
	}
	return res.Program, err
}

// Run is Parse returning the recovery records as well
func (p *Parser) Run(stream *Stream, cmds *commands.Collection) (*Result, error) {
	timer := p.logger.StartTimer("parse")

	st := &state{s: stream, cmds: cmds}
	res := &Result{Program: ast.NewProgram()}

	var errs diag.ErrorList
	for {
		st.skipSeparators()
		if st.s.IsEof() {
			break
		}

		start := st.s.Save()
		stmt, err := st.statement()
		if err == nil {
			err = st.expectEnd()
		}
		if err == nil {
			res.Program.Append(stmt)
			continue
		}

		perr := asParseError(err)
		if !p.opts.Recover {
			timer.Fail(perr)
			return nil, perr
		}

		errs.Add(perr)
		skipped := st.synchronize(start)
		first := st.s.tokens[start]
		res.Program.Append(&ast.ErrorStatement{
			Span:  ast.NewSpan(first, st.s.LastReal()),
			Error: perr,
		})
		res.Recoveries = append(res.Recoveries, diag.ProgramRecovery{
			Index:            len(res.Program.Statements) - 1,
			Error:            perr,
			CorrectiveTokens: skipped,
		})
		p.logger.Debug("recovered from parse error", mdwlog.Fields{
			"code":    perr.ErrorCode.ID(),
			"at":      perr.Location.String(),
			"skipped": len(skipped),
		})

		if p.opts.MaxErrors > 0 && len(errs) >= p.opts.MaxErrors {
			p.logger.Debug("error limit reached", mdwlog.Fields{"max_errors": p.opts.MaxErrors})
			break
		}
	}

	timer.WithField("statements", len(res.Program.Statements)).
		WithField("errors", len(errs)).
		Stop()
	return res, errs.Err()
}

// state is the per-call parser state
type state struct {
	s    *Stream
	cmds *commands.Collection
}

// synchronize skips to the next end of statement and returns every token
// consumed since start. When the failed statement left blocks open, the skip
// runs on to the statement that closes the outermost of them.
func (st *state) synchronize(start int) []token.Token {
	toks := st.s.tokens
	var open nesting
	for i := start; i < st.s.Index(); i++ {
		open = open.step(toks, i)
	}
	for {
		for !st.s.Peek().Kind.IsStatementTerminator() {
			open = open.step(toks, st.s.Index())
			st.s.Advance()
		}
		if len(open) == 0 || st.s.IsEof() {
			break
		}
		st.s.Advance()
	}
	return st.s.Slice(start, st.s.Index())
}

// blockKeywords maps each block opener to the keywords that end it and those
// that continue it
var blockKeywords = map[token.Kind]struct{ ends, cont []token.Kind }{
	token.If:       {ends: []token.Kind{token.EndIf}, cont: []token.Kind{token.Else}},
	token.While:    {ends: []token.Kind{token.EndWhile}},
	token.For:      {ends: []token.Kind{token.Next}},
	token.Do:       {ends: []token.Kind{token.Loop}},
	token.Repeat:   {ends: []token.Kind{token.Until}},
	token.Select:   {ends: []token.Kind{token.EndSelect}, cont: []token.Kind{token.Case, token.CaseDefault, token.EndCase}},
	token.Function: {ends: []token.Kind{token.EndFunction}},
	token.Type:     {ends: []token.Kind{token.EndType}},
}

// nesting is the stack of block openers seen while skipping tokens
type nesting []token.Kind

func (n nesting) step(toks []token.Token, i int) nesting {
	kind := toks[i].Kind
	if kind == token.If && !blockIf(toks, i) {
		return n
	}
	if _, ok := blockKeywords[kind]; ok {
		return append(n, kind)
	}
	for j := len(n) - 1; j >= 0; j-- {
		kw := blockKeywords[n[j]]
		if kindIn(kind, kw.ends) {
			return n[:j]
		}
		if kindIn(kind, kw.cont) {
			return n[:j+1]
		}
	}
	return n
}

// blockIf reports whether the IF at toks[i] opens a block, which it does
// unless THEN is followed by a statement on the same line
func blockIf(toks []token.Token, i int) bool {
	for j := i + 1; j < len(toks) && toks[j].Kind != token.EndStatement; j++ {
		if toks[j].Kind == token.Then {
			return j+1 >= len(toks) || toks[j+1].IsVirtual()
		}
	}
	return true
}

func asParseError(err error) *diag.ParseError {
	var perr *diag.ParseError
	if errors.As(err, &perr) {
		return perr
	}
	return diag.At(diag.UnknownStatement, token.EOFToken(), err.Error())
}

// --- token helpers ---

func (st *state) peekIs(kinds ...token.Kind) bool {
	return kindIn(st.s.Peek().Kind, kinds)
}

func kindIn(kind token.Kind, kinds []token.Kind) bool {
	for _, k := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// isSeparator reports tokens that separate statements
func isSeparator(kind token.Kind) bool {
	return kind == token.EndStatement || kind == token.ArgSplitter
}

// isStatementEnd reports tokens that may follow a complete statement
func isStatementEnd(kind token.Kind) bool {
	switch kind {
	case token.EndStatement, token.ArgSplitter, token.EOF, token.Else, token.EndIf:
		return true
	}
	return false
}

func (st *state) skipSeparators() {
	for isSeparator(st.s.Peek().Kind) {
		st.s.Advance()
	}
}

// expectEnd requires a separator or the end of input after a statement
func (st *state) expectEnd(closers ...token.Kind) error {
	next := st.s.Peek()
	if isSeparator(next.Kind) || next.Kind.IsStatementTerminator() || kindIn(next.Kind, closers) {
		return nil
	}
	return diag.At(diag.ExpectedEndOfStatement, next,
		fmt.Sprintf("expected the end of the statement, found %q", next.Raw))
}

// missingClose reports a block that reached the end of input, spanning from its
// opening keyword to the last token written in the source
func (st *state) missingClose(code diag.ErrorCode, opener token.Token) error {
	end := st.s.LastReal()
	if end.Kind == token.EOF {
		end = opener
	}
	return diag.New(code, opener, end, "")
}

// block parses statements until one of closers is next or the input ends. The
// closer is left unconsumed; found is false when the input ended first.
func (st *state) block(closers ...token.Kind) (list []ast.Statement, closer token.Token, found bool, err error) {
	for {
		st.skipSeparators()
		next := st.s.Peek()
		if next.Kind == token.EOF {
			return list, next, false, nil
		}
		if kindIn(next.Kind, closers) {
			return list, next, true, nil
		}

		stmt, err := st.statement()
		if err != nil {
			return nil, next, false, err
		}
		list = append(list, stmt)

		if err := st.expectEnd(closers...); err != nil {
			return nil, next, false, err
		}
	}
}
