// File: lexer_test.go
// Title: Lexer Tests
// Description: Table-driven tests for token recognition, command vocabulary
//              matching, constants, comments and statement termination.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tests

package lexer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/commands"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
)

func testCommands(t *testing.T) *commands.Collection {
	t.Helper()
	c, err := commands.FromDescriptors(
		commands.CommandDescriptor{Name: "wait key"},
		commands.CommandDescriptor{Name: "wait", Args: []commands.ArgDescriptor{{Name: "ms", Type: commands.LiteralInteger}}},
		commands.CommandDescriptor{Name: "print", Args: []commands.ArgDescriptor{{Name: "v", Type: commands.LiteralAny, Params: true}}},
		commands.CommandDescriptor{Name: "str$", Returns: commands.LiteralString, Args: []commands.ArgDescriptor{{Name: "v", Type: commands.LiteralNumeric}}},
	)
	if err != nil {
		t.Fatalf("FromDescriptors() error = %v", err)
	}
	return c
}

func kindsOf(tokens []token.Token) []token.Kind {
	var kinds []token.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func mustTokenize(t *testing.T, src string, cmds *commands.Collection) []token.Token {
	t.Helper()
	tokens, err := Tokenize(src, cmds)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", src, err)
	}
	return tokens
}

func TestTokenKinds(t *testing.T) {
	const eos = token.EndStatement
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{"less or equal", "a<=b", []token.Kind{token.VariableGeneral, token.OpLte, token.VariableGeneral, eos}},
		{"not equal", "a<>b", []token.Kind{token.VariableGeneral, token.OpNotEqual, token.VariableGeneral, eos}},
		{"greater or equal", "a >= b", []token.Kind{token.VariableGeneral, token.OpGte, token.VariableGeneral, eos}},
		{"single char compare", "a<b>c=d", []token.Kind{token.VariableGeneral, token.OpLt, token.VariableGeneral, token.OpGt, token.VariableGeneral, token.OpEqual, token.VariableGeneral, eos}},
		{"arithmetic", "1+2-3*4/5^6", []token.Kind{token.LiteralInt, token.OpPlus, token.LiteralInt, token.OpMinus, token.LiteralInt, token.OpMultiply, token.LiteralInt, token.OpDivide, token.LiteralInt, token.OpPower, token.LiteralInt, eos}},
		{"word operators", "a AND b or NOT c mod d", []token.Kind{token.VariableGeneral, token.OpAnd, token.VariableGeneral, token.OpOr, token.OpNot, token.VariableGeneral, token.OpMod, token.VariableGeneral, eos}},
		{"identifiers containing operators", "order = android", []token.Kind{token.VariableGeneral, token.OpEqual, token.VariableGeneral, eos}},
		{"variable kinds", "name$ speed# score", []token.Kind{token.VariableString, token.VariableReal, token.VariableGeneral, eos}},
		{"numbers", "3.14 42 .5", []token.Kind{token.LiteralReal, token.LiteralInt, token.LiteralReal, eos}},
		{"string", `"Hello, World"`, []token.Kind{token.LiteralString, eos}},
		{"struct field", "p.x", []token.Kind{token.VariableGeneral, token.FieldSplitter, token.VariableGeneral, eos}},
		{"array index", "a(1, 2)", []token.Kind{token.VariableGeneral, token.ParenOpen, token.LiteralInt, token.ArgSplitter, token.LiteralInt, token.ParenClose, eos}},
		{"if keywords", "IF x THEN y ELSE z", []token.Kind{token.If, token.VariableGeneral, token.Then, token.VariableGeneral, token.Else, token.VariableGeneral, eos}},
		{"closers with and without space", "endif end if ENDWHILE end  select", []token.Kind{token.EndIf, token.EndIf, token.EndWhile, token.EndSelect, eos}},
		{"case default", "case default CASE   DEFAULT case", []token.Kind{token.CaseDefault, token.CaseDefault, token.Case, eos}},
		{"function keywords", "function exitfunction endfunction", []token.Kind{token.Function, token.ExitFunction, token.EndFunction, eos}},
		{"type keywords", "integer float string boolean byte word dword", []token.Kind{token.TypeInteger, token.TypeFloat, token.TypeString, token.TypeBoolean, token.TypeByte, token.TypeWord, token.TypeDWord, eos}},
		{"double types", "double integer DOUBLE FLOAT", []token.Kind{token.TypeDoubleInteger, token.TypeDoubleFloat, eos}},
		{"declaration keywords", "global local dim as type endtype", []token.Kind{token.Global, token.Local, token.Dim, token.As, token.Type, token.EndType, eos}},
		{"loop keywords", "for to step next while repeat until do loop", []token.Kind{token.For, token.To, token.Step, token.Next, token.While, token.Repeat, token.Until, token.Do, token.Loop, eos}},
		{"jumps", "goto gosub return", []token.Kind{token.Goto, token.GoSub, token.Return, eos}},
		{"keyword prefix is identifier", "todo = format", []token.Kind{token.VariableGeneral, token.OpEqual, token.VariableGeneral, eos}},
		{"label", "start:", []token.Kind{token.VariableGeneral, token.EndStatement}},
		{"empty source", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kindsOf(mustTokenize(t, tt.src, nil))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLongestMatchProducesSingleToken(t *testing.T) {
	for _, src := range []string{"<=", "<>", ">="} {
		tokens := mustTokenize(t, src, nil)
		if len(tokens) != 2 || tokens[0].Raw != src {
			t.Errorf("%q tokenized as %v", src, tokens)
		}
	}
}

func TestCommandVocabulary(t *testing.T) {
	cmds := testCommands(t)
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"multi word command", "wait key", []string{"COMMAND_WORD:wait key"}},
		{"flexible whitespace", "WAIT    Key", []string{"COMMAND_WORD:WAIT    Key"}},
		{"shorter command", "wait 100", []string{"COMMAND_WORD:wait", "LITERAL_INT:100"}},
		{"suffix command", "a$ = str$(5)", []string{"VARIABLE_STRING:a$", "OP_EQUAL:=", "COMMAND_WORD:str$", "PAREN_OPEN:(", "LITERAL_INT:5", "PAREN_CLOSE:)"}},
		{"identifier extends command", "printer = 1", []string{"VARIABLE_GENERAL:printer", "OP_EQUAL:=", "LITERAL_INT:1"}},
		{"phrase must end on a word boundary", "wait keys", []string{"COMMAND_WORD:wait", "VARIABLE_GENERAL:keys"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, tok := range mustTokenize(t, tt.src, cmds) {
				if tok.Kind == token.EndStatement {
					continue
				}
				got = append(got, tok.Kind.String()+":"+tok.Raw)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("tokens = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBaseTableIsNotMutated(t *testing.T) {
	before := BaseTable().Len()
	derived := BaseTable().WithCommands(testCommands(t))

	if BaseTable().Len() != before {
		t.Errorf("base table grew from %d to %d", before, BaseTable().Len())
	}
	if derived.Len() != before+4 {
		t.Errorf("derived table has %d lexemes, want %d", derived.Len(), before+4)
	}

	lexemes := derived.Lexemes()
	for i := 1; i < len(lexemes); i++ {
		if lexemes[i-1].Priority > lexemes[i].Priority {
			t.Fatalf("lexemes not sorted by priority at %d", i)
		}
	}
	if lexemes[0].Pattern != "wait key" {
		t.Errorf("longest command should sort first, got %q", lexemes[0].Pattern)
	}
}

func TestAutomaticStatementTermination(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []token.Kind
	}{
		{
			"newline terminates",
			"x=5\ny=2",
			[]token.Kind{token.VariableGeneral, token.OpEqual, token.LiteralInt, token.EndStatement, token.VariableGeneral, token.OpEqual, token.LiteralInt, token.EndStatement},
		},
		{
			"comma joined",
			"x=4, y=2",
			[]token.Kind{token.VariableGeneral, token.OpEqual, token.LiteralInt, token.ArgSplitter, token.VariableGeneral, token.OpEqual, token.LiteralInt, token.EndStatement},
		},
		{
			"trailing comma continues the statement",
			"print 1,\n2",
			[]token.Kind{token.VariableGeneral, token.LiteralInt, token.ArgSplitter, token.LiteralInt, token.EndStatement},
		},
		{
			"explicit colon is not doubled",
			"a:\nb",
			[]token.Kind{token.VariableGeneral, token.EndStatement, token.VariableGeneral, token.EndStatement},
		},
		{
			"blank lines add nothing",
			"a\n\n\n` comment only\nb",
			[]token.Kind{token.VariableGeneral, token.EndStatement, token.VariableGeneral, token.EndStatement},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kindsOf(mustTokenize(t, tt.src, nil))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("kinds = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVirtualEndOfStatementPosition(t *testing.T) {
	tokens := mustTokenize(t, "x = 10\ny", nil)
	eos := tokens[3]
	if !eos.IsVirtual() || eos.LineNumber != 1 || eos.CharNumber != 7 {
		t.Errorf("virtual token = %+v", eos)
	}
	if tokens[2].CharNumber != 5 || tokens[4].LineNumber != 2 || tokens[4].CharNumber != 1 {
		t.Errorf("positions: %v", tokens)
	}
}

func TestConstants(t *testing.T) {
	plain := mustTokenize(t, "y = 1", nil)

	for _, src := range []string{"#constant X 1\ny = x", "#CONSTANT x 1\ny = X", "#constant x 1\ny = x"} {
		t.Run(src, func(t *testing.T) {
			got := mustTokenize(t, src, nil)
			if len(got) != len(plain) {
				t.Fatalf("got %v, want %v", got, plain)
			}
			for i := range got {
				if got[i].Kind != plain[i].Kind || got[i].Text != plain[i].Text || got[i].CharNumber != plain[i].CharNumber {
					t.Errorf("token %d = %v, want %v", i, got[i], plain[i])
				}
			}
		})
	}
}

func TestConstantColumnMapping(t *testing.T) {
	res, err := New(Options{}).Run("#constant LIMIT 1 + 2\nz = limit * 3", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Constants["limit"] != "1 + 2" {
		t.Errorf("Constants = %v", res.Constants)
	}

	var got []string
	for _, tok := range res.Tokens {
		got = append(got, tok.Position()+" "+tok.Raw)
	}
	want := []string{"2:1 z", "2:3 =", "2:5 1", "2:5 +", "2:5 2", "2:11 *", "2:13 3", "2:14 "}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokens = %q, want %q", got, want)
	}
}

func TestComments(t *testing.T) {
	src := "x = 1 ` set x\nrem whole line\nremark = 2\nREMSTART\nblock one\n  block two\nREMEND\ny = 3 REM tail"
	res, err := New(Options{}).Run(src, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []token.Comment{
		{Line: 1, Char: 7, Text: "set x"},
		{Line: 2, Char: 1, Text: "whole line"},
		{Line: 4, Char: 1, Text: "block one\n  block two", Block: true},
		{Line: 8, Char: 7, Text: "tail"},
	}
	if !reflect.DeepEqual(res.Comments, want) {
		t.Errorf("Comments = %+v, want %+v", res.Comments, want)
	}

	wantKinds := []token.Kind{
		token.VariableGeneral, token.OpEqual, token.LiteralInt, token.EndStatement,
		token.VariableGeneral, token.OpEqual, token.LiteralInt, token.EndStatement,
		token.VariableGeneral, token.OpEqual, token.LiteralInt, token.EndStatement,
	}
	if got := kindsOf(res.Tokens); !reflect.DeepEqual(got, wantKinds) {
		t.Errorf("kinds = %v, want %v", got, wantKinds)
	}
}

func TestUnclosedBlockCommentRunsToEnd(t *testing.T) {
	res, err := New(Options{}).Run("x\nremstart notes\nmore", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Comments) != 1 || res.Comments[0].Text != "notes\nmore" {
		t.Errorf("Comments = %+v", res.Comments)
	}
	if got := kindsOf(res.Tokens); !reflect.DeepEqual(got, []token.Kind{token.VariableGeneral, token.EndStatement}) {
		t.Errorf("kinds = %v", got)
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		code diag.ErrorCode
		line int
		char int
	}{
		{"unknown character", "x = 1 @ 2", Options{}, diag.UnknownLexeme, 1, 7},
		{"unterminated string", "a$ = \"open", Options{}, diag.UnterminatedString, 1, 6},
		{"constant without value", "#constant X", Options{}, diag.ConstantMissingValue, 1, 1},
		{"recursive constant", "#constant a b\n#constant b a\nx = a", Options{}, diag.ConstantRecursion, 3, 5},
		{"source too long", "x = 1", Options{MaxSourceLength: 3}, diag.SourceTooLong, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts).Run(tt.src, nil)
			var pe *diag.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v, want *diag.ParseError", err)
			}
			if pe.ErrorCode != tt.code {
				t.Errorf("code = %s, want %s", pe.ErrorCode, tt.code)
			}
			if pe.Line() != tt.line || pe.Char() != tt.char {
				t.Errorf("at %d:%d, want %d:%d", pe.Line(), pe.Char(), tt.line, tt.char)
			}
		})
	}
}

func TestAmbiguousLexemes(t *testing.T) {
	table := newTable([]Lexeme{
		keyword(token.OpPlus, "+"),
		keyword(token.OpMinus, "+"),
	})
	_, err := New(Options{Table: table}).Run("+", nil)

	var pe *diag.ParseError
	if !errors.As(err, &pe) || pe.ErrorCode != diag.AmbiguousLexeme {
		t.Fatalf("error = %v, want AmbiguousLexeme", err)
	}
}

func TestPriorityBreaksEqualLengthTies(t *testing.T) {
	cmds := commands.MustFromDescriptors(commands.CommandDescriptor{Name: "loop"})

	tokens := mustTokenize(t, "loop", cmds)
	if tokens[0].Kind != token.CommandWord {
		t.Errorf("command should outrank keyword, got %s", tokens[0].Kind)
	}
	tokens = mustTokenize(t, "loop", nil)
	if tokens[0].Kind != token.Loop {
		t.Errorf("keyword should outrank identifier, got %s", tokens[0].Kind)
	}
}
