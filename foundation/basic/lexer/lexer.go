// File: lexer.go
// Title: FadeBasic Tokenizer
// Description: Scans source text line by line against a lexeme table and
//              produces the token sequence, collected comments and the recorded
//              #constant definitions.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/commands"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
	mdwstringx "github.com/cdhanna/fadebasic-sub000/foundation/utils/stringx"
)

// DefaultMaxConstantExpansions bounds repeated substitution at one column
const DefaultMaxConstantExpansions = 32

const (
	blockCommentOpen  = "remstart"
	blockCommentClose = "remend"
	constantDirective = "#constant"
)

// Options configures the lexer
type Options struct {
	Logger *mdwlog.Logger

	// MaxSourceLength rejects longer sources; 0 disables the check
	MaxSourceLength int

	// MaxConstantExpansions bounds how often constants may be substituted at the
	// same column before the lexer reports a recursive definition
	MaxConstantExpansions int

	// Table replaces the base lexeme table
	Table *Table
}

// Result is the output of one lexer run
type Result struct {
	Tokens    []token.Token
	Comments  []token.Comment
	Constants map[string]string // lowercased name to replacement text
}

// Lexer tokenizes FadeBasic source. A Lexer holds no per-call state and may be
// shared between goroutines.
type Lexer struct {
	opts   Options
	logger *mdwlog.Logger
}

// New creates a lexer
func New(opts Options) *Lexer {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxConstantExpansions <= 0 {
		opts.MaxConstantExpansions = DefaultMaxConstantExpansions
	}
	if opts.Table == nil {
		opts.Table = BaseTable()
	}
	return &Lexer{
		opts:   opts,
		logger: opts.Logger.WithName("basic-lexer"),
	}
}

// Tokenize runs a default lexer over source
func Tokenize(source string, cmds *commands.Collection) ([]token.Token, error) {
	res, err := New(Options{}).Run(source, cmds)
	if err != nil {
		return nil, err
	}
	return res.Tokens, nil
}

// Run tokenizes source against the base table extended with cmds. Failures are
// returned as *diag.ParseError.
func (l *Lexer) Run(source string, cmds *commands.Collection) (*Result, error) {
	timer := l.logger.StartTimer("tokenize")

	if l.opts.MaxSourceLength > 0 && len(source) > l.opts.MaxSourceLength {
		err := diag.At(diag.SourceTooLong, token.New(token.EOF, 1, 1, "", ""),
			fmt.Sprintf("source is %d bytes, the limit is %d", len(source), l.opts.MaxSourceLength))
		timer.Fail(err)
		return nil, err
	}

	s := &scanner{
		table:         l.opts.Table.WithCommands(cmds),
		maxExpansions: l.opts.MaxConstantExpansions,
		logger:        l.logger,
		res: &Result{
			Constants: make(map[string]string),
		},
	}

	lines := mdwstringx.SplitLines(source)
	for i, line := range lines {
		if err := s.line(i+1, line); err != nil {
			timer.Fail(err)
			return nil, err
		}
	}
	s.finish()

	timer.WithField("tokens", len(s.res.Tokens)).
		WithField("comments", len(s.res.Comments)).
		WithField("lines", len(lines)).
		Stop()
	return s.res, nil
}

// scanner is the per-call tokenizer state
type scanner struct {
	table         *Table
	maxExpansions int
	logger        *mdwlog.Logger
	res           *Result

	lastKind token.Kind
	hasLast  bool

	pendingEOS  bool
	pendingLine int
	pendingChar int

	inBlock   bool
	blockLine int
	blockChar int
	blockText []string
}

// push appends a real token, flushing a scheduled end-of-statement first
func (s *scanner) push(tok token.Token) {
	s.flushPending()
	s.res.Tokens = append(s.res.Tokens, tok)
	s.lastKind = tok.Kind
	s.hasLast = true
}

func (s *scanner) flushPending() {
	if !s.pendingEOS {
		return
	}
	s.res.Tokens = append(s.res.Tokens, token.New(token.EndStatement, s.pendingLine, s.pendingChar, "", ""))
	s.pendingEOS = false
}

func (s *scanner) finish() {
	if s.inBlock {
		s.closeBlock()
	}
	s.flushPending()
}

func (s *scanner) closeBlock() {
	s.res.Comments = append(s.res.Comments, token.Comment{
		Line:  s.blockLine,
		Char:  s.blockChar,
		Text:  strings.Join(s.blockText, "\n"),
		Block: true,
	})
	s.inBlock = false
	s.blockText = nil
}

// blockMarker reports whether line starts with marker as a whole word, ignoring
// case and indentation, and returns the indentation width
func blockMarker(line, marker string) (int, bool) {
	trimmed := strings.TrimLeft(line, " \t")
	indent := len(line) - len(trimmed)
	lower := lowerASCII(trimmed)
	if !strings.HasPrefix(lower, marker) {
		return indent, false
	}
	if len(lower) > len(marker) && isIdentPart(lower[len(marker)]) {
		return indent, false
	}
	return indent, true
}

func (s *scanner) line(lineNo int, text string) error {
	if s.inBlock {
		if _, ok := blockMarker(text, blockCommentClose); ok {
			s.closeBlock()
		} else {
			s.blockText = append(s.blockText, text)
		}
		return nil
	}
	if indent, ok := blockMarker(text, blockCommentOpen); ok {
		s.inBlock = true
		s.blockLine = lineNo
		s.blockChar = indent + 1
		s.blockText = nil
		if rest := strings.TrimSpace(text[indent+len(blockCommentOpen):]); rest != "" {
			s.blockText = append(s.blockText, rest)
		}
		return nil
	}

	if err := s.scan(lineNo, text); err != nil {
		return err
	}

	if s.hasLast && !s.pendingEOS && s.lastKind != token.EndStatement && s.lastKind != token.ArgSplitter {
		s.pendingEOS = true
		s.pendingLine = lineNo
		s.pendingChar = len(text) + 1
	}
	return nil
}

// scan tokenizes one line. cols maps each byte of the (possibly rewritten)
// line to its 1-based column in the original line; the extra last entry is the
// end of line.
func (s *scanner) scan(lineNo int, text string) error {
	line := text
	lower := lowerASCII(line)
	cols := make([]int, len(line)+1)
	for i := range cols {
		cols[i] = i + 1
	}

	expandAt, expandCount := -1, 0
	pos := 0
	for pos < len(line) {
		c := s.table.match(lower[pos:])
		if c.lexeme == nil {
			return s.unmatched(lineNo, cols[pos], line[pos:])
		}
		raw := line[pos : pos+c.length]
		at := token.New(c.lexeme.Kind, lineNo, cols[pos], raw, lower[pos:pos+c.length])
		if c.ambiguous != nil {
			return diag.At(diag.AmbiguousLexeme, at,
				fmt.Sprintf("%q matches both %s and %s", raw, c.lexeme.Pattern, c.ambiguous.Pattern))
		}

		switch c.lexeme.Action {
		case ActionSkip:
		case ActionComment:
			body := raw[len(c.lexeme.Pattern):]
			s.res.Comments = append(s.res.Comments, token.Comment{
				Line: lineNo,
				Char: at.CharNumber,
				Text: strings.TrimSpace(body),
			})
		case ActionConstant:
			if err := s.define(at); err != nil {
				return err
			}
		default:
			if value, ok := s.res.Constants[at.Text]; ok && at.Kind.IsVariable() {
				if pos == expandAt {
					expandCount++
				} else {
					expandAt, expandCount = pos, 1
				}
				if expandCount > s.maxExpansions {
					return diag.At(diag.ConstantRecursion, at,
						fmt.Sprintf("constant %q expands into itself", raw))
				}
				line = line[:pos] + value + line[pos+c.length:]
				lower = lowerASCII(line)
				cols = substituteColumns(cols, pos, c.length, len(value))
				continue
			}
			s.push(at)
		}
		pos += c.length
	}
	return nil
}

// substituteColumns replaces the n columns at pos with size copies of the
// column of pos
func substituteColumns(cols []int, pos, n, size int) []int {
	out := make([]int, 0, len(cols)-n+size)
	out = append(out, cols[:pos]...)
	for i := 0; i < size; i++ {
		out = append(out, cols[pos])
	}
	return append(out, cols[pos+n:]...)
}

func (s *scanner) define(at token.Token) error {
	rest := strings.TrimSpace(at.Raw[len(constantDirective):])
	fields := strings.Fields(rest)
	if len(fields) < 2 {
		return diag.At(diag.ConstantMissingValue, at, "")
	}
	name := fields[0]
	value := strings.TrimSpace(rest[len(name):])
	s.res.Constants[lowerASCII(name)] = value

	s.logger.Debug("constant defined", mdwlog.Fields{
		"name":  name,
		"value": value,
		"line":  at.LineNumber,
	})
	return nil
}

func (s *scanner) unmatched(lineNo, col int, rest string) error {
	if rest[0] == '"' {
		return diag.At(diag.UnterminatedString, token.New(token.LiteralString, lineNo, col, rest, lowerASCII(rest)), "")
	}
	r, size := utf8.DecodeRuneInString(rest)
	bad := token.New(token.EOF, lineNo, col, rest[:size], rest[:size])
	return diag.At(diag.UnknownLexeme, bad, fmt.Sprintf("unexpected character %q", r))
}
