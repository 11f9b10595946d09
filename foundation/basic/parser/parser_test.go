// File: parser_test.go
// Title: Parser Tests
// Description: Tests for expression precedence, statement forms, command
//              arguments, diagnostics and error recovery.
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
	"strings"
	"testing"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/ast"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/commands"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/lexer"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
)

func testCommands() *commands.Collection {
	return commands.MustFromDescriptors(
		commands.CommandDescriptor{Name: "print", Args: []commands.ArgDescriptor{
			{Name: "values", Type: commands.LiteralAny, Params: true},
		}},
		commands.CommandDescriptor{Name: "wait key"},
		commands.CommandDescriptor{Name: "rnd", Returns: commands.LiteralInteger, Args: []commands.ArgDescriptor{
			{Name: "max", Type: commands.LiteralInteger},
		}},
		commands.CommandDescriptor{Name: "timer", Returns: commands.LiteralInteger},
		commands.CommandDescriptor{Name: "input", Args: []commands.ArgDescriptor{
			{Name: "prompt", Type: commands.LiteralString},
			{Name: "target", Type: commands.LiteralAny, Ref: true},
		}},
		commands.CommandDescriptor{Name: "randomize", Args: []commands.ArgDescriptor{
			{Name: "seed", Type: commands.LiteralInteger, Optional: true},
		}},
		commands.CommandDescriptor{Name: "get time", Returns: commands.LiteralInteger, Args: []commands.ArgDescriptor{
			{Name: "host", Type: commands.LiteralAny, VmArg: true},
		}},
		commands.CommandDescriptor{Name: "box", Args: []commands.ArgDescriptor{
			{Name: "x", Type: commands.LiteralInteger},
			{Name: "y", Type: commands.LiteralInteger},
		}},
	)
}

func parseSource(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	cmds := testCommands()
	tokens, err := lexer.Tokenize(src, cmds)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", src, err)
	}
	return Parse(tokens, cmds)
}

func parseExpr(t *testing.T, src string) (ast.Expression, error) {
	t.Helper()
	cmds := testCommands()
	tokens, err := lexer.Tokenize(src, cmds)
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", src, err)
	}
	return ParseExpression(tokens, cmds)
}

// binaryOps lists every binary operator with its source spelling and its
// S-expression name
var binaryOps = []struct {
	src  string
	name string
	prec int
}{
	{"and", "and", PrecedenceAnd},
	{"or", "or", PrecedenceOr},
	{"=", "=", PrecedenceComparison},
	{"<>", "<>", PrecedenceComparison},
	{">", ">", PrecedenceComparison},
	{">=", ">=", PrecedenceComparison},
	{"<", "<", PrecedenceComparison},
	{"<=", "<=", PrecedenceComparison},
	{"+", "+", PrecedenceAdditive},
	{"-", "-", PrecedenceAdditive},
	{"*", "*", PrecedenceProduct},
	{"/", "/", PrecedenceProduct},
	{"mod", "mod", PrecedencePower},
	{"^", "^", PrecedencePower},
}

func TestPrecedenceTable(t *testing.T) {
	for _, a := range binaryOps {
		for _, b := range binaryOps {
			src := fmt.Sprintf("x %s y %s z", a.src, b.src)

			var want string
			switch {
			case a.prec < b.prec:
				want = fmt.Sprintf("(%s x (%s y z))", a.name, b.name)
			default:
				want = fmt.Sprintf("(%s (%s x y) z)", b.name, a.name)
			}

			t.Run(src, func(t *testing.T) {
				expr, err := parseExpr(t, src)
				if err != nil {
					t.Fatalf("ParseExpression() error = %v", err)
				}
				if got := ast.Sprint(expr); got != want {
					t.Errorf("ParseExpression(%q) = %s, want %s", src, got, want)
				}
			})
		}
	}
	for _, k := range []token.Kind{token.OpNot, token.LiteralInt, token.EndStatement} {
		if _, ok := Precedence(k); ok {
			t.Errorf("Precedence(%s) reported a binary operator", k)
		}
	}
}

func TestExpressions(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"not 3>2 and 3", "(and (not (> 3 2)) 3)"},
		{"not (3>2 and 3)", "(not (and (> 3 2) 3))"},
		{"not a and b and c", "(and (not (and a b)) c)"},
		{"not a or b and c", "(and (not (or a b)) c)"},
		{"not a", "(not a)"},
		{"-a*b", "(* (neg a) b)"},
		{"-(a*b)", "(neg (* a b))"},
		{"-9223372036854775808", "-9223372036854775808"},
		{"-9223372036854775807", "(neg 9223372036854775807)"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"1.5 + .5", "(+ 1.5 0.5)"},
		{`"Hello World"`, `"Hello World"`},
		{"p.x + a(1, 2)", "(+ (. p x) (idx a 1 2))"},
		{"p.pos.x", "(. p (. pos x))"},
		{"a(1).x", "(. (idx a 1) x)"},
		{"*p + 1", "(+ (deref p) 1)"},
		{"name$ + s#", "(+ name$ s#)"},
		{"rnd(10) + 1", `(+ (call "rnd" 10) 1)`},
		{"rnd 10", `(call "rnd" 10)`},
		{"timer() * 2", `(* (call "timer") 2)`},
		{"get time() - timer", `(- (call "get time") (call "timer"))`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr, err := parseExpr(t, tt.src)
			if err != nil {
				t.Fatalf("ParseExpression() error = %v", err)
			}
			if got := ast.Sprint(expr); got != tt.want {
				t.Errorf("ParseExpression(%q) = %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestNotGroupingProducesDifferentTrees(t *testing.T) {
	bare, err := parseExpr(t, "NOT 3>2 AND 3")
	if err != nil {
		t.Fatal(err)
	}
	grouped, err := parseExpr(t, "NOT (3>2 AND 3)")
	if err != nil {
		t.Fatal(err)
	}
	if ast.Sprint(bare) == ast.Sprint(grouped) {
		t.Errorf("both inputs produced %s", ast.Sprint(bare))
	}
	if b, ok := grouped.(*ast.UnaryOperation); !ok || !b.Operand.(*ast.BinaryOperand).Grouped {
		t.Errorf("parenthesized operand should be marked as grouped: %#v", grouped)
	}
}

func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.ErrorCode
	}{
		{"(", diag.ExpressionMissingAfterOpenParen},
		{"()", diag.ExpressionMissingAfterOpenParen},
		{"(1 + 2", diag.ExpressionMissingCloseParen},
		{"1 +", diag.ExpressionMissing},
		{"a(1 2", diag.ArrayMissingCloseParen},
		{"p.", diag.StructFieldMissingName},
		{"rnd(1", diag.ExpressionMissingCloseParen},
		{"1 2", diag.ExpectedEndOfStatement},
		{"9223372036854775808", diag.InvalidLiteral},
		{"-9223372036854775809", diag.InvalidLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := parseExpr(t, tt.src)
			errs := diag.Collect(err)
			if len(errs) != 1 || errs[0].ErrorCode != tt.code {
				t.Errorf("ParseExpression(%q) error = %v, want %s", tt.src, err, tt.code)
			}
		})
	}
}

func TestDiagnosticMessagesNameTheToken(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"dim 3", "DIM requires an array name, found the literal 3"},
		{`dim "a"`, `DIM requires an array name, found the literal "a"`},
		{"dim endif", `DIM requires an array name, found "endif"`},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := parseSource(t, tt.src)
			errs := diag.Collect(err)
			if len(errs) != 1 || errs[0].Message != tt.want {
				t.Errorf("error = %v, want message %q", err, tt.want)
			}
		})
	}
}

func TestStatementTermination(t *testing.T) {
	tests := []struct {
		src  string
		want int
	}{
		{"x=5\ny=2", 2},
		{"x=4, y=2", 2},
		{"x=1 : y=2 : z=3", 3},
		{"\n\nx=1\n\n", 1},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog, err := parseSource(t, tt.src)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if len(prog.Statements) != tt.want {
				t.Errorf("Parse(%q) produced %d statements, want %d:\n%s", tt.src, len(prog.Statements), tt.want, ast.Sprint(prog))
			}
		})
	}
}

func TestStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"assignment", "x = 5", "(= x 5)"},
		{"field assignment", "p.x = 3", "(= (. p x) 3)"},
		{"array assignment", "a(1) = 2", "(= (idx a 1) 2)"},
		{"deref assignment", "*p = 1", "(= (deref p) 1)"},
		{"expression", "x", "(expr x)"},
		{"call expression", "foo(1, 2)", "(expr (idx foo 1 2))"},
		{"declaration", "x as integer = 3", "(decl x integer 3)"},
		{"double type", "x as double float", "(decl x double_float)"},
		{"struct type", "v as vec", "(decl v vec)"},
		{"global", "global name$ as string", "(decl global name$ string)"},
		{"local implied", "local s#", "(decl local s# float)"},
		{"dim", "dim grid(3, 4) as float", "(decl grid float (ranks 3 4))"},
		{"five ranks", "dim a(1,2,3,4,5)", "(decl a integer (ranks 1 2 3 4 5))"},
		{"global dim", "global dim a(2)", "(decl global a integer (ranks 2))"},
		{
			"if block",
			"if x > 1\n  y = 2\nelse\n  y = 3\nendif",
			"(if (> x 1) (then (= y 2)) (else (= y 3)))",
		},
		{"if without else", "if x\n y = 1\nend if", "(if x (then (= y 1)))"},
		{
			"if inline",
			"if x then y = 1 : z = 2 else y = 0",
			"(if x (then (= y 1) (= z 2)) (else (= y 0)))",
		},
		{"if then newline", "if x then\n y = 1\nendif", "(if x (then (= y 1)))"},
		{"while", "while i < 10\n i = i + 1\nendwhile", "(while (< i 10) (= i (+ i 1)))"},
		{"repeat", "repeat\n i = i - 1\nuntil i = 0", "(repeat (= i (- i 1)) (until (= i 0)))"},
		{"do", "do\n wait key\nloop", `(do (call "wait key"))`},
		{"for step", "for i = 1 to 10 step 2\n print i\nnext i", `(for i 1 10 2 (call "print" i))`},
		{"for default step", "for i = 1 to 3\nnext", "(for i 1 3 1)"},
		{"next then statement", "for i = 1 to 3\nnext i, y = 2", "(for i 1 3 1)\n(= y 2)"},
		{
			"select",
			"select x\n case 1, 2\n  y = 1\n endcase\n case default\n  y = 0\n endcase\nendselect",
			"(select x (case (1 2) (= y 1)) (default (= y 0)))",
		},
		{
			"function",
			"function add(a, b as float)\n exitfunction a\nendfunction a + b",
			"(function add (params (a integer) (b float)) (exitfunction a) (returns (+ a b)))",
		},
		{"empty function", "function f()\nendfunction", "(function f (params))"},
		{"type", "type vec\n x as float\n y#\nendtype", "(type vec (x float) (y# float))"},
		{"jumps", "goto top\ngosub draw\nreturn\ntop:", "(goto top)\n(gosub draw)\n(return)\n(label top)"},
		{"label then statement", "top:\nx = 1", "(label top)\n(= x 1)"},
		{"command no args", "wait key", `(call "wait key")`},
		{"command params", "print 1, a$, 2 + 3", `(call "print" 1 a$ (+ 2 3))`},
		{"command empty params", "print", `(call "print")`},
		{"command ref", `input "name", n$`, `(call "input" "name" (addr n$))`},
		{"command optional omitted", "randomize", `(call "randomize")`},
		{"command optional given", "randomize 5", `(call "randomize" 5)`},
		{"command in expression", "x = get time() + 1", `(= x (+ (call "get time") 1))`},
		{"command fixed args then statement", "box 1, 2, y = 3", "(call \"box\" 1 2)\n(= y 3)"},
		{"mixed case", "IF X THEN PRINT \"Hi\"", `(if x (then (call "print" "Hi")))`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parseSource(t, tt.src)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.src, err)
			}
			if got := ast.Sprint(prog); got != tt.want {
				t.Errorf("Parse(%q) =\n%s\nwant\n%s", tt.src, got, tt.want)
			}
		})
	}
}

func TestProgramIndexesFromSource(t *testing.T) {
	src := "type vec\n x\nendtype\nfunction f()\nendfunction\nstart:\ndo\n inner:\nloop"
	prog, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(prog.TypeDefinitions) != 1 || len(prog.Functions) != 1 {
		t.Errorf("types = %d, functions = %d", len(prog.TypeDefinitions), len(prog.Functions))
	}
	if l, ok := prog.Label("start"); !ok || l.StatementIndex != 2 {
		t.Errorf("Label(start) = %+v, %v", l, ok)
	}
	if l, ok := prog.Label("inner"); !ok || l.StatementIndex != 3 {
		t.Errorf("Label(inner) = %+v, %v", l, ok)
	}
}

func TestStatementErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.ErrorCode
		line int
		char int
	}{
		{"ambiguous", "x 3 +2", diag.AmbiguousDeclarationOrAssignment, 1, 3},
		{"if", "if x\n y = 1", diag.IfStatementMissingEndIf, 1, 1},
		{"if else", "if x\nelse\n y = 1", diag.IfStatementMissingEndIf, 1, 1},
		{"while", "while x\n y = 1", diag.WhileStatementMissingEndWhile, 1, 1},
		{"for", "for i = 1 to 3\n print i", diag.ForStatementMissingNext, 1, 1},
		{"do", "do\n wait key", diag.DoStatementMissingLoop, 1, 1},
		{"repeat", "repeat\n x = 1", diag.RepeatStatementMissingUntil, 1, 1},
		{"select", "select x", diag.SelectStatementMissingEndSelect, 1, 1},
		{"function", "function f()\n x = 1", diag.FunctionMissingEndFunction, 1, 1},
		{"type", "type t\n x", diag.TypeDefMissingEndType, 1, 1},
		{"case", "select x\ncase 1\ny = 2\nendselect", diag.CaseStatementMissingEndCase, 2, 1},
		{"rank limit", "dim a(1,2,3,4,5,6)", diag.ArrayRankLimitExceeded, 1, 17},
		{"dim without ranks", "dim a", diag.DimMissingRanks, 1, 6},
		{"dim without name", "dim 5", diag.ExpectedVariable, 1, 5},
		{
			"two defaults",
			"select x\ncase default\nendcase\ncase default\nendcase\nendselect",
			diag.MultipleDefaultCasesFound, 4, 1,
		},
		{"select body", "select x\n y = 1\nendselect", diag.SelectExpectedCase, 2, 2},
		{"stray closer", "endif", diag.UnknownStatement, 1, 1},
		{"trailing token", "wait key 5", diag.ExpectedEndOfStatement, 1, 10},
		{"ref argument", `input "a", 5`, diag.RefArgumentRequiresVariable, 1, 12},
		{"missing argument", "rnd", diag.CommandMissingArgument, 1, 4},
		{"missing later argument", "box 1", diag.CommandMissingArgument, 1, 6},
		{"missing splitter", "box 1 2", diag.CommandExpectedArgSplitter, 1, 7},
		{"invalid type", "x as 5", diag.InvalidTypeReference, 1, 6},
		{"for equals", "for i 1 to 3\nnext", diag.ForStatementMissingEquals, 1, 7},
		{"for to", "for i = 1 3\nnext", diag.ForStatementMissingTo, 1, 11},
		{"for variable", "for 1 = 1 to 3\nnext", diag.ExpectedVariable, 1, 5},
		{"next variable list", "for i = 1 to 3\nnext i, j", diag.ExpectedEndOfStatement, 2, 7},
		{"goto", "goto 5", diag.GotoMissingLabel, 1, 6},
		{"function name", "function (a)\nendfunction", diag.FunctionMissingName, 1, 10},
		{"function paren", "function f\nendfunction", diag.FunctionMissingOpenParen, 1, 11},
		{"function close", "function f(a b)\nendfunction", diag.FunctionMissingCloseParen, 1, 14},
		{"type name", "type 5\nendtype", diag.TypeDefMissingName, 1, 6},
		{"type member", "type t\n 5\nendtype", diag.TypeDefInvalidMember, 2, 2},
		{"scope", "global 5", diag.ScopeMissingDeclaration, 1, 8},
		{"missing expression", "x = )", diag.ExpressionMissing, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parseSource(t, tt.src)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded:\n%s", tt.src, ast.Sprint(prog))
			}
			if prog != nil {
				t.Error("a failed parse must not return a program")
			}
			errs := diag.Collect(err)
			if len(errs) != 1 {
				t.Fatalf("Parse(%q) error = %v, want a single diagnostic", tt.src, err)
			}
			e := errs[0]
			if e.ErrorCode != tt.code {
				t.Errorf("code = %s, want %s", e.ErrorCode, tt.code)
			}
			if e.Line() != tt.line || e.Char() != tt.char {
				t.Errorf("position = %d:%d, want %d:%d", e.Line(), e.Char(), tt.line, tt.char)
			}
		})
	}
}

func TestMissingCloseSpansToLastToken(t *testing.T) {
	_, err := parseSource(t, "while x\n  y = 10\n")
	errs := diag.Collect(err)
	if len(errs) != 1 {
		t.Fatalf("error = %v", err)
	}
	loc := errs[0].Location
	if loc.End.Raw != "10" || loc.End.LineNumber != 2 {
		t.Errorf("range ends at %v, want the literal 10 on line 2", loc.End)
	}
}

func TestUnknownCommand(t *testing.T) {
	tokens, err := lexer.Tokenize("wait key", testCommands())
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(tokens, commands.New(commands.Options{}))
	if errs := diag.Collect(err); len(errs) != 1 || errs[0].ErrorCode != diag.UnknownCommand {
		t.Errorf("Parse() error = %v, want UnknownCommand", err)
	}
}

func TestRecovery(t *testing.T) {
	src := "x = \ny = 2\nendif\nz = 3"
	cmds := testCommands()
	tokens, err := lexer.Tokenize(src, cmds)
	if err != nil {
		t.Fatal(err)
	}

	res, err := New(Options{Recover: true}).Run(NewStream(tokens), cmds)
	if res == nil {
		t.Fatal("recovering parse returned no result")
	}
	want := "(error 0100)\n(= y 2)\n(error 0104)\n(= z 3)"
	if got := ast.Sprint(res.Program); got != want {
		t.Errorf("program =\n%s\nwant\n%s", got, want)
	}

	errs := diag.Collect(err)
	if len(errs) != 2 || !errs.Has(diag.ExpressionMissing) || !errs.Has(diag.UnknownStatement) {
		t.Errorf("errors = %v", err)
	}
	if len(res.Recoveries) != 2 || res.Recoveries[0].Index != 0 || res.Recoveries[1].Index != 2 {
		t.Fatalf("recoveries = %+v", res.Recoveries)
	}
	if skipped := res.Recoveries[1].CorrectiveTokens; len(skipped) != 1 || skipped[0].Raw != "endif" {
		t.Errorf("corrective tokens = %v", skipped)
	}
	if got := res.Program.Errors(); len(got) != 2 {
		t.Errorf("Program.Errors() = %v", got)
	}
}

func TestRecoveryReportsOneDiagnosticPerOpenBlock(t *testing.T) {
	openers := []struct {
		src  string
		code diag.ErrorCode
	}{
		{"if x", diag.IfStatementMissingEndIf},
		{"while x", diag.WhileStatementMissingEndWhile},
		{"for i = 1 to 2", diag.ForStatementMissingNext},
		{"do", diag.DoStatementMissingLoop},
		{"repeat", diag.RepeatStatementMissingUntil},
		{"select x", diag.SelectStatementMissingEndSelect},
		{"function f()", diag.FunctionMissingEndFunction},
		{"type t", diag.TypeDefMissingEndType},
	}

	for _, tt := range openers {
		t.Run(tt.src, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tt.src+"\n", testCommands())
			if err != nil {
				t.Fatal(err)
			}
			_, err = New(Options{Recover: true}).Parse(NewStream(tokens), testCommands())
			errs := diag.Collect(err)
			if len(errs) != 1 || errs[0].ErrorCode != tt.code {
				t.Errorf("errors = %v, want exactly %s", err, tt.code)
			}
		})
	}
}

func TestRecoverySkipsToBlockCloser(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"while", "while x\n y = \nendwhile\nz = 1"},
		{"nested", "for i = 1 to 2\n if a\n  y =\n endif\nnext\nz = 1"},
		{"else branch", "if a\n b = 1\nelse\n y =\n c = 2\nendif\nz = 1"},
		{"inline if inside block", "do\n if a then b = 1\n y =\nloop\nz = 1"},
		{"inline if", "if a then y =\nz = 1"},
		{"select", "select x\ncase 1\n y =\nendcase\ncase 2\nendcase\nendselect\nz = 1"},
		{"repeat", "repeat\n y =\nuntil a > 1\nz = 1"},
		{"stray closer inside", "while x\n endif\nendwhile\nz = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := testCommands()
			tokens, err := lexer.Tokenize(tt.src, cmds)
			if err != nil {
				t.Fatal(err)
			}
			res, err := New(Options{Recover: true}).Run(NewStream(tokens), cmds)
			if res == nil {
				t.Fatal("recovering parse returned no result")
			}
			if errs := diag.Collect(err); len(errs) != 1 {
				t.Errorf("errors = %v, want exactly one", err)
			}
			prog := ast.Sprint(res.Program)
			if !strings.HasSuffix(prog, "\n(= z 1)") || strings.Count(prog, "\n") != 1 {
				t.Errorf("program =\n%s\nwant one error statement followed by (= z 1)", prog)
			}
		})
	}
}

func TestRecoveryMaxErrors(t *testing.T) {
	src := "endif\nendif\nendif"
	tokens, err := lexer.Tokenize(src, nil)
	if err != nil {
		t.Fatal(err)
	}

	prog, err := New(Options{Recover: true, MaxErrors: 2}).Parse(NewStream(tokens), nil)
	if errs := diag.Collect(err); len(errs) != 2 {
		t.Errorf("errors = %v, want 2", err)
	}
	if prog == nil || len(prog.Statements) != 2 {
		t.Errorf("program = %v, want 2 error statements", prog)
	}
}
