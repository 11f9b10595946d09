// File: table.go
// Title: Lexeme Table
// Description: The ordered lexeme catalog. The base table is built once and
//              shared; WithCommands derives a per-call table that adds one
//              lexeme per command and re-sorts the copy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"sort"
	"sync"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/commands"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
)

// Action says what the lexer does with a matched lexeme
type Action int

const (
	ActionEmit Action = iota
	ActionSkip
	ActionComment
	ActionConstant
)

// Priorities of the base lexemes. Lower values win ties of equal length.
const (
	PriorityComment    = -1
	PriorityKeyword    = 0
	PriorityIdentifier = 10
)

// Lexeme is a (kind, pattern, priority) rule that recognizes one token
type Lexeme struct {
	Kind     token.Kind
	Action   Action
	Pattern  string // human readable form of the matcher
	Priority int
	matcher  Matcher
}

// Table is an immutable, priority-sorted lexeme catalog
type Table struct {
	lexemes []Lexeme
	buckets [256][]int
}

var (
	baseOnce  sync.Once
	baseTable *Table
)

// BaseTable returns the shared table of keywords, operators, literals and
// identifiers
func BaseTable() *Table {
	baseOnce.Do(func() {
		baseTable = newTable(baseLexemes())
	})
	return baseTable
}

// CommandPriority returns the priority of a command lexeme. Longer names sort
// earlier and always outrank base lexemes.
func CommandPriority(name string) int {
	return -10 * len(name)
}

// WithCommands returns a new table holding the receiver's lexemes plus one
// lexeme per command. The receiver is not modified.
func (t *Table) WithCommands(cmds *commands.Collection) *Table {
	all := cmds.All()
	if len(all) == 0 {
		return t
	}
	lexemes := make([]Lexeme, len(t.lexemes), len(t.lexemes)+len(all))
	copy(lexemes, t.lexemes)
	for _, cmd := range all {
		key := cmd.Key()
		lexemes = append(lexemes, Lexeme{
			Kind:     token.CommandWord,
			Action:   ActionEmit,
			Pattern:  key,
			Priority: CommandPriority(key),
			matcher:  phrase(key),
		})
	}
	return newTable(lexemes)
}

// Lexemes returns a copy of the table in scan order
func (t *Table) Lexemes() []Lexeme {
	out := make([]Lexeme, len(t.lexemes))
	copy(out, t.lexemes)
	return out
}

// Len returns the number of lexemes
func (t *Table) Len() int {
	return len(t.lexemes)
}

func newTable(lexemes []Lexeme) *Table {
	sort.SliceStable(lexemes, func(i, j int) bool {
		return lexemes[i].Priority < lexemes[j].Priority
	})
	t := &Table{lexemes: lexemes}
	for b := 0; b < 256; b++ {
		for i := range lexemes {
			if lexemes[i].matcher.CanStart(byte(b)) {
				t.buckets[b] = append(t.buckets[b], i)
			}
		}
	}
	return t
}

// candidate is the outcome of matching the table at one position
type candidate struct {
	lexeme    *Lexeme
	length    int
	ambiguous *Lexeme // set when an equal-priority lexeme of another kind tied
}

// match scans the bucket for s[0] in priority order. The first longest match
// wins; an equal-length, equal-priority match of a different kind or action is
// reported as ambiguous.
func (t *Table) match(s string) candidate {
	var best candidate
	if len(s) == 0 {
		return best
	}
	for _, i := range t.buckets[s[0]] {
		lx := &t.lexemes[i]
		n := lx.matcher.Match(s)
		if n == 0 {
			continue
		}
		switch {
		case n > best.length:
			best = candidate{lexeme: lx, length: n}
		case n == best.length && lx.Priority == best.lexeme.Priority &&
			(lx.Kind != best.lexeme.Kind || lx.Action != best.lexeme.Action):
			best.ambiguous = lx
		}
	}
	return best
}

func emit(kind token.Kind, pattern string, m Matcher, priority int) Lexeme {
	return Lexeme{Kind: kind, Action: ActionEmit, Pattern: pattern, Priority: priority, matcher: m}
}

func keyword(kind token.Kind, text string) Lexeme {
	return emit(kind, text, phrase(text), PriorityKeyword)
}

func closer(kind token.Kind, first, second string) Lexeme {
	return emit(kind, first+"[ ]"+second, compound(first, second), PriorityKeyword)
}

func baseLexemes() []Lexeme {
	return []Lexeme{
		{Kind: token.EOF, Action: ActionSkip, Pattern: "whitespace", Priority: PriorityKeyword, matcher: spaceMatcher{}},
		{Kind: token.EOF, Action: ActionComment, Pattern: "`", Priority: PriorityComment, matcher: restOfLineMatcher{marker: "`"}},
		{Kind: token.EOF, Action: ActionComment, Pattern: "rem", Priority: PriorityComment, matcher: restOfLineMatcher{marker: "rem", word: true}},
		{Kind: token.EOF, Action: ActionConstant, Pattern: "#constant", Priority: PriorityKeyword, matcher: restOfLineMatcher{marker: "#constant", word: true}},

		keyword(token.EndStatement, ":"),
		keyword(token.ArgSplitter, ","),
		keyword(token.FieldSplitter, "."),
		keyword(token.ParenOpen, "("),
		keyword(token.ParenClose, ")"),

		keyword(token.OpPlus, "+"),
		keyword(token.OpMinus, "-"),
		keyword(token.OpMultiply, "*"),
		keyword(token.OpDivide, "/"),
		keyword(token.OpPower, "^"),
		keyword(token.OpMod, "mod"),
		keyword(token.OpEqual, "="),
		keyword(token.OpNotEqual, "<>"),
		keyword(token.OpGt, ">"),
		keyword(token.OpGte, ">="),
		keyword(token.OpLt, "<"),
		keyword(token.OpLte, "<="),
		keyword(token.OpAnd, "and"),
		keyword(token.OpOr, "or"),
		keyword(token.OpNot, "not"),

		emit(token.LiteralInt, "[0-9]+", intMatcher{}, PriorityKeyword),
		emit(token.LiteralReal, "[0-9]*.[0-9]+", realMatcher{}, PriorityKeyword),
		emit(token.LiteralString, `"..."`, stringMatcher{}, PriorityKeyword),

		emit(token.VariableGeneral, "[a-z_][a-z0-9_]*", identMatcher{}, PriorityIdentifier),
		emit(token.VariableString, "[a-z_][a-z0-9_]*$", identMatcher{suffix: '$'}, PriorityIdentifier),
		emit(token.VariableReal, "[a-z_][a-z0-9_]*#", identMatcher{suffix: '#'}, PriorityIdentifier),

		keyword(token.If, "if"),
		keyword(token.Then, "then"),
		keyword(token.Else, "else"),
		closer(token.EndIf, "end", "if"),
		keyword(token.For, "for"),
		keyword(token.To, "to"),
		keyword(token.Step, "step"),
		keyword(token.Next, "next"),
		keyword(token.While, "while"),
		closer(token.EndWhile, "end", "while"),
		keyword(token.Repeat, "repeat"),
		keyword(token.Until, "until"),
		keyword(token.Do, "do"),
		keyword(token.Loop, "loop"),
		keyword(token.Select, "select"),
		closer(token.EndSelect, "end", "select"),
		keyword(token.Case, "case"),
		keyword(token.CaseDefault, "case default"),
		closer(token.EndCase, "end", "case"),
		keyword(token.Function, "function"),
		closer(token.EndFunction, "end", "function"),
		closer(token.ExitFunction, "exit", "function"),
		keyword(token.Goto, "goto"),
		keyword(token.GoSub, "gosub"),
		keyword(token.Return, "return"),

		keyword(token.Type, "type"),
		closer(token.EndType, "end", "type"),
		keyword(token.As, "as"),
		keyword(token.Dim, "dim"),
		keyword(token.Global, "global"),
		keyword(token.Local, "local"),

		keyword(token.TypeInteger, "integer"),
		keyword(token.TypeFloat, "float"),
		keyword(token.TypeString, "string"),
		keyword(token.TypeBoolean, "boolean"),
		keyword(token.TypeByte, "byte"),
		keyword(token.TypeWord, "word"),
		keyword(token.TypeDWord, "dword"),
		keyword(token.TypeDoubleInteger, "double integer"),
		keyword(token.TypeDoubleFloat, "double float"),
	}
}
