// File: engine.go
// Title: Front End Engine
// Description: Runs source text through the lexer, the parser and post-parse
//              validation, and converts diagnostics into coded errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package basic

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/ast"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/commands"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/lexer"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/parser"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
)

// Options configures an Engine
type Options struct {
	Logger *mdwlog.Logger

	// Commands is the vocabulary used for tokenizing and parsing. The
	// embedded standard vocabulary is used when nil.
	Commands *commands.Collection

	MaxSourceLength       int
	MaxConstantExpansions int

	// Recover keeps parsing after failed statements, see parser.Options
	Recover   bool
	MaxErrors int

	// SkipValidation disables the duplicate and unknown symbol checks
	SkipValidation bool
}

// Engine is the front end facade. It is safe for concurrent use.
type Engine struct {
	opts   Options
	logger *mdwlog.Logger
	lexer  *lexer.Lexer
	parser *parser.Parser
}

// Result holds everything a run produced. Program is nil when a fail-fast
// run stops at a diagnostic.
type Result struct {
	RunID       string
	Tokens      []token.Token
	Comments    []token.Comment
	Constants   map[string]string
	Program     *ast.Program
	Recoveries  []diag.ProgramRecovery
	Diagnostics diag.ErrorList
}

// OK reports whether the run produced no diagnostics
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// New creates an engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	logger := opts.Logger.WithName("basic-engine")

	if opts.Commands == nil {
		std, err := commands.Standard(commands.Options{Logger: opts.Logger})
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to load the standard command vocabulary").
				WithOperation("basic.New")
		}
		opts.Commands = std
	}

	e := &Engine{
		opts:   opts,
		logger: logger,
		lexer: lexer.New(lexer.Options{
			Logger:                opts.Logger,
			MaxSourceLength:       opts.MaxSourceLength,
			MaxConstantExpansions: opts.MaxConstantExpansions,
		}),
		parser: parser.New(parser.Options{
			Logger:    opts.Logger,
			Recover:   opts.Recover,
			MaxErrors: opts.MaxErrors,
		}),
	}

	logger.Debug("engine initialized", mdwlog.Fields{
		"commands":   opts.Commands.Len(),
		"recover":    opts.Recover,
		"max_errors": opts.MaxErrors,
	})
	return e, nil
}

// Commands returns the engine's vocabulary
func (e *Engine) Commands() *commands.Collection {
	return e.opts.Commands
}

// Tokenize runs only the lexer
func (e *Engine) Tokenize(source string) (*Result, error) {
	res := &Result{RunID: uuid.NewString()}
	logger := e.logger.WithCorrelationID(res.RunID).WithFields(mdwlog.Fields{
		"source_bytes": len(source),
		"recover":      e.opts.Recover,
	})

	lexed, err := e.lexer.Run(source, e.opts.Commands)
	if err != nil {
		res.Diagnostics = diag.Collect(err)
		logger.Debug("tokenize failed", mdwlog.Fields{"diagnostics": len(res.Diagnostics)})
		return res, WrapDiagnostics(err, "basic.Tokenize")
	}
	res.Tokens = lexed.Tokens
	res.Comments = lexed.Comments
	res.Constants = lexed.Constants
	return res, nil
}

// Parse tokenizes, parses and validates source. The result is returned even
// on failure so callers can inspect the tokens and diagnostics.
func (e *Engine) Parse(source string) (*Result, error) {
	res, err := e.Tokenize(source)
	if err != nil {
		return res, err
	}
	logger := e.logger.WithCorrelationID(res.RunID)

	parsed, err := e.parser.Run(parser.NewStream(res.Tokens), e.opts.Commands)
	if parsed != nil {
		res.Program = parsed.Program
		res.Recoveries = parsed.Recoveries
		res.Program.AddComments(res.Comments)
	}
	if err != nil {
		res.Diagnostics = diag.Collect(err)
	}

	if res.Program != nil && !e.opts.SkipValidation {
		for _, d := range ast.Validate(res.Program) {
			res.Diagnostics.Add(d)
		}
	}
	res.Diagnostics.Sort()

	logger.Debug("parse finished", mdwlog.Fields{
		"tokens":      len(res.Tokens),
		"diagnostics": len(res.Diagnostics),
		"recovered":   len(res.Recoveries),
	})

	if len(res.Diagnostics) > 0 {
		return res, WrapDiagnostics(res.Diagnostics, "basic.Parse")
	}
	return res, nil
}

// WrapDiagnostics converts a diagnostic error into a coded error. The code is
// taken from the category of the first diagnostic. Errors that carry no
// diagnostics are wrapped as internal errors.
func WrapDiagnostics(err error, operation string) error {
	if err == nil {
		return nil
	}

	list := diag.Collect(err)
	if len(list) == 0 {
		return mdwerror.Wrap(err, "front end failed").
			WithCode(mdwerror.CodeInternal).
			WithOperation(operation)
	}

	first := list[0]
	msg := fmt.Sprintf("%s error", first.ErrorCode.Category())
	if len(list) > 1 {
		msg = fmt.Sprintf("%d %s errors", len(list), first.ErrorCode.Category())
	}

	return mdwerror.Wrap(err, msg).
		WithCode(CodeFor(first.ErrorCode)).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"diagnostic_code": first.ErrorCode.ID(),
			"diagnostic":      first.ErrorCode.Name,
			"line":            first.Line(),
			"char":            first.Char(),
			"count":           len(list),
		})
}

// CodeFor maps a diagnostic code to the error code of its category
func CodeFor(code diag.ErrorCode) mdwerror.Code {
	switch code.Category() {
	case diag.CategoryLexer:
		return mdwerror.CodeLexical
	case diag.CategorySyntax:
		return mdwerror.CodeSyntax
	case diag.CategorySemantic:
		return mdwerror.CodeSemantic
	default:
		return mdwerror.CodeSymbol
	}
}
