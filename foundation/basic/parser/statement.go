// File: statement.go
// Title: Statement Parser
// Description: Recursive descent over the statement forms. Each block form
//              owns the loop that scans for its closing keyword.
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
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
)

// statement dispatches on the leading token
func (st *state) statement() (ast.Statement, error) {
	tok := st.s.Peek()

	switch tok.Kind {
	case token.VariableGeneral, token.VariableString, token.VariableReal, token.OpMultiply:
		return st.identifierStatement()
	case token.CommandWord:
		return st.commandStatement()
	case token.If:
		return st.ifStatement()
	case token.While:
		return st.whileStatement()
	case token.Repeat:
		return st.repeatStatement()
	case token.Do:
		return st.doStatement()
	case token.For:
		return st.forStatement()
	case token.Select:
		return st.selectStatement()
	case token.Function:
		return st.functionStatement()
	case token.ExitFunction:
		return st.exitFunctionStatement()
	case token.Type:
		return st.typeStatement()
	case token.Dim:
		return st.dimStatement(ast.ScopeDefault, st.s.Advance())
	case token.Global, token.Local:
		return st.scopedStatement()
	case token.Goto, token.GoSub:
		return st.jumpStatement()
	case token.Return:
		st.s.Advance()
		return &ast.ReturnStatement{Span: ast.NewSpan(tok, tok)}, nil
	}

	return nil, diag.At(diag.UnknownStatement, tok,
		fmt.Sprintf("%s cannot start a statement", describe(tok)))
}

// identifierStatement resolves a leading reference into a label, an
// assignment, a declaration or a bare expression statement
func (st *state) identifierStatement() (ast.Statement, error) {
	first := st.s.Peek()

	if first.Kind == token.VariableGeneral {
		colon := st.s.PeekAt(1)
		if colon.Kind == token.EndStatement && colon.Raw == ":" {
			// the colon stays in the stream as the statement separator
			st.s.Advance()
			return &ast.LabelStatement{Span: ast.NewSpan(first, colon), Name: first.Text}, nil
		}
	}

	ref, err := st.reference()
	if err != nil {
		return nil, err
	}

	next := st.s.Peek()
	switch {
	case isStatementEnd(next.Kind):
		return &ast.ExpressionStatement{Span: spanOf(ref), Expression: ref}, nil

	case next.Kind == token.OpEqual:
		st.s.Advance()
		value, err := st.expression()
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentStatement{
			Span:       ast.NewSpan(first, value.Range().End),
			Variable:   ref,
			Expression: value,
		}, nil

	case next.Kind == token.As:
		v, ok := ref.(*ast.VariableRef)
		if !ok {
			return nil, diag.At(diag.AmbiguousDeclarationOrAssignment, next,
				"only a plain variable can be declared with AS")
		}
		return st.declaration(ast.ScopeDefault, first, v)
	}

	return nil, diag.At(diag.AmbiguousDeclarationOrAssignment, next,
		fmt.Sprintf("expected '=', AS, or the end of the statement, found %s", describe(next)))
}

// declaration parses "[AS type] [= value]" after a variable name
func (st *state) declaration(scope ast.Scope, start token.Token, v *ast.VariableRef) (ast.Statement, error) {
	decl := &ast.DeclarationStatement{
		Scope: scope,
		Name:  v.Name,
		Kind:  v.Kind,
	}

	if st.peekIs(token.As) {
		st.s.Advance()
		ref, err := st.typeReference()
		if err != nil {
			return nil, err
		}
		decl.Type = ref
	} else {
		decl.Type = ast.ImpliedType(v.Kind, v.StartToken)
	}

	if st.peekIs(token.OpEqual) {
		st.s.Advance()
		value, err := st.expression()
		if err != nil {
			return nil, err
		}
		decl.Initializer = value
	}

	decl.Span = ast.NewSpan(start, st.s.LastReal())
	return decl, nil
}

// typeReference parses a primitive type keyword or a TYPE name
func (st *state) typeReference() (*ast.TypeReference, error) {
	tok := st.s.Peek()
	if tok.Kind.IsPrimitiveType() {
		kind, _ := ast.TypeKindOf(tok.Kind)
		st.s.Advance()
		return &ast.TypeReference{Span: ast.NewSpan(tok, tok), Kind: kind}, nil
	}
	if tok.Kind == token.VariableGeneral {
		st.s.Advance()
		return &ast.TypeReference{Span: ast.NewSpan(tok, tok), Kind: ast.TypeStruct, Name: tok.Text}, nil
	}
	return nil, diag.At(diag.InvalidTypeReference, tok,
		fmt.Sprintf("expected a type name, found %s", describe(tok)))
}

// scopedStatement parses GLOBAL or LOCAL followed by a declaration or DIM
func (st *state) scopedStatement() (ast.Statement, error) {
	scopeTok := st.s.Advance()
	scope := ast.ScopeGlobal
	if scopeTok.Kind == token.Local {
		scope = ast.ScopeLocal
	}

	next := st.s.Peek()
	switch {
	case next.Kind == token.Dim:
		st.s.Advance()
		return st.dimStatement(scope, scopeTok)
	case next.Kind.IsVariable():
		st.s.Advance()
		v := &ast.VariableRef{Span: ast.NewSpan(next, next), Name: next.Text, Kind: next.Kind}
		if st.peekIs(token.ParenOpen) {
			return st.arrayDeclaration(scope, scopeTok, v)
		}
		return st.declaration(scope, scopeTok, v)
	}
	return nil, diag.At(diag.ScopeMissingDeclaration, next, "")
}

// dimStatement parses DIM name(rank, ...) [AS type]
func (st *state) dimStatement(scope ast.Scope, start token.Token) (ast.Statement, error) {
	name := st.s.Peek()
	if !name.Kind.IsVariable() {
		return nil, diag.At(diag.ExpectedVariable, name,
			fmt.Sprintf("DIM requires an array name, found %s", describe(name)))
	}
	st.s.Advance()
	v := &ast.VariableRef{Span: ast.NewSpan(name, name), Name: name.Text, Kind: name.Kind}
	return st.arrayDeclaration(scope, start, v)
}

func (st *state) arrayDeclaration(scope ast.Scope, start token.Token, v *ast.VariableRef) (ast.Statement, error) {
	if !st.peekIs(token.ParenOpen) {
		return nil, diag.At(diag.DimMissingRanks, st.s.Peek(), "")
	}
	open := st.s.Advance()

	var ranks []ast.Expression
	for {
		if len(ranks) > 0 {
			if st.peekIs(token.ParenClose) {
				break
			}
			if !st.peekIs(token.ArgSplitter) {
				return nil, diag.New(diag.ArrayMissingCloseParen, open, st.s.Peek(), "")
			}
			st.s.Advance()
		}
		if len(ranks) == MaxArrayRanks {
			return nil, diag.At(diag.ArrayRankLimitExceeded, st.s.Peek(),
				fmt.Sprintf("arrays have at most %d ranks", MaxArrayRanks))
		}
		rank, err := st.expression()
		if err != nil {
			return nil, err
		}
		ranks = append(ranks, rank)
	}
	st.s.Advance()

	decl := &ast.DeclarationStatement{
		Scope: scope,
		Name:  v.Name,
		Kind:  v.Kind,
		Ranks: ranks,
	}
	if st.peekIs(token.As) {
		st.s.Advance()
		ref, err := st.typeReference()
		if err != nil {
			return nil, err
		}
		decl.Type = ref
	} else {
		decl.Type = ast.ImpliedType(v.Kind, v.StartToken)
	}

	decl.Span = ast.NewSpan(start, st.s.LastReal())
	return decl, nil
}

// ifStatement parses the block form and, after THEN on the same line, the
// inline form
func (st *state) ifStatement() (ast.Statement, error) {
	ifTok := st.s.Advance()
	cond, err := st.expression()
	if err != nil {
		return nil, err
	}
	stmt := &ast.IfStatement{Condition: cond}

	if st.peekIs(token.Then) {
		st.s.Advance()
		if next := st.s.Peek(); !next.IsVirtual() && next.Kind != token.EOF {
			return st.inlineIf(ifTok, stmt)
		}
	}

	positive, closer, found, err := st.block(token.Else, token.EndIf)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, st.missingClose(diag.IfStatementMissingEndIf, ifTok)
	}
	stmt.Positive = positive

	if closer.Kind == token.Else {
		st.s.Advance()
		negative, _, found, err := st.block(token.EndIf)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, st.missingClose(diag.IfStatementMissingEndIf, ifTok)
		}
		stmt.Negative = negative
	}

	endTok := st.s.Advance()
	stmt.Span = ast.NewSpan(ifTok, endTok)
	return stmt, nil
}

func (st *state) inlineIf(ifTok token.Token, stmt *ast.IfStatement) (ast.Statement, error) {
	positive, err := st.inlineBody()
	if err != nil {
		return nil, err
	}
	stmt.Positive = positive
	stmt.Inline = true

	if st.peekIs(token.Else) {
		st.s.Advance()
		negative, err := st.inlineBody()
		if err != nil {
			return nil, err
		}
		stmt.Negative = negative
	}
	if st.peekIs(token.EndIf) {
		st.s.Advance()
	}

	stmt.Span = ast.NewSpan(ifTok, st.s.LastReal())
	return stmt, nil
}

// inlineBody collects statements up to the end of the line. A colon separates
// statements without ending the body.
func (st *state) inlineBody() ([]ast.Statement, error) {
	var list []ast.Statement
	for {
		next := st.s.Peek()
		switch {
		case next.Kind == token.ArgSplitter, next.Kind == token.EndStatement && !next.IsVirtual():
			st.s.Advance()
			continue
		case next.Kind == token.EOF, next.IsVirtual(), next.Kind == token.Else, next.Kind == token.EndIf:
			return list, nil
		}

		stmt, err := st.statement()
		if err != nil {
			return nil, err
		}
		list = append(list, stmt)

		if err := st.expectEnd(token.Else, token.EndIf); err != nil {
			return nil, err
		}
	}
}

func (st *state) whileStatement() (ast.Statement, error) {
	whileTok := st.s.Advance()
	cond, err := st.expression()
	if err != nil {
		return nil, err
	}

	body, _, found, err := st.block(token.EndWhile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, st.missingClose(diag.WhileStatementMissingEndWhile, whileTok)
	}
	endTok := st.s.Advance()

	return &ast.WhileStatement{Span: ast.NewSpan(whileTok, endTok), Condition: cond, Statements: body}, nil
}

func (st *state) repeatStatement() (ast.Statement, error) {
	repeatTok := st.s.Advance()

	body, _, found, err := st.block(token.Until)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, st.missingClose(diag.RepeatStatementMissingUntil, repeatTok)
	}
	st.s.Advance()

	cond, err := st.expression()
	if err != nil {
		return nil, err
	}
	return &ast.RepeatUntilStatement{Span: ast.NewSpan(repeatTok, cond.Range().End), Statements: body, Condition: cond}, nil
}

func (st *state) doStatement() (ast.Statement, error) {
	doTok := st.s.Advance()

	body, _, found, err := st.block(token.Loop)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, st.missingClose(diag.DoStatementMissingLoop, doTok)
	}
	endTok := st.s.Advance()

	return &ast.DoLoopStatement{Span: ast.NewSpan(doTok, endTok), Statements: body}, nil
}

// forStatement parses FOR v = start TO end [STEP step] ... NEXT [v]
func (st *state) forStatement() (ast.Statement, error) {
	forTok := st.s.Advance()

	variable, err := st.reference()
	if err != nil {
		return nil, err
	}
	if !st.peekIs(token.OpEqual) {
		return nil, diag.At(diag.ForStatementMissingEquals, st.s.Peek(), "")
	}
	st.s.Advance()

	start, err := st.expression()
	if err != nil {
		return nil, err
	}
	if !st.peekIs(token.To) {
		return nil, diag.At(diag.ForStatementMissingTo, st.s.Peek(), "")
	}
	st.s.Advance()

	end, err := st.expression()
	if err != nil {
		return nil, err
	}

	var step ast.Expression
	if st.peekIs(token.Step) {
		st.s.Advance()
		if step, err = st.expression(); err != nil {
			return nil, err
		}
	} else {
		r := end.Range()
		step = &ast.LiteralInt{Span: ast.NewSpan(r.Start, r.End), Value: 1}
	}

	body, _, found, err := st.block(token.Next)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, st.missingClose(diag.ForStatementMissingNext, forTok)
	}
	st.s.Advance()
	if st.s.Peek().Kind.IsVariable() {
		if _, err := st.reference(); err != nil {
			return nil, err
		}
		if err := st.rejectNextList(); err != nil {
			return nil, err
		}
	}

	return &ast.ForStatement{
		Span:       ast.NewSpan(forTok, st.s.LastReal()),
		Variable:   variable,
		Start:      start,
		End:        end,
		Step:       step,
		Statements: body,
	}, nil
}

// rejectNextList reports NEXT i, j. A comma followed by a statement such as
// NEXT i, y = 2 still separates statements.
func (st *state) rejectNextList() error {
	if !st.peekIs(token.ArgSplitter) || !st.s.PeekAt(1).Kind.IsVariable() {
		return nil
	}
	mark := st.s.Save()
	comma := st.s.Advance()
	ref, err := st.reference()
	if err == nil && isStatementEnd(st.s.Peek().Kind) {
		return diag.New(diag.ExpectedEndOfStatement, comma, ref.Range().End, "NEXT takes a single loop variable")
	}
	st.s.Restore(mark)
	return nil
}

// selectStatement parses SELECT expr, its CASE blocks and ENDSELECT
func (st *state) selectStatement() (ast.Statement, error) {
	selectTok := st.s.Advance()
	subject, err := st.expression()
	if err != nil {
		return nil, err
	}
	stmt := &ast.SwitchStatement{Expression: subject}

	for {
		st.skipSeparators()
		next := st.s.Peek()

		switch next.Kind {
		case token.EOF:
			return nil, st.missingClose(diag.SelectStatementMissingEndSelect, selectTok)

		case token.EndSelect:
			st.s.Advance()
			stmt.Span = ast.NewSpan(selectTok, next)
			return stmt, nil

		case token.Case:
			c, err := st.caseStatement()
			if err != nil {
				return nil, err
			}
			stmt.Cases = append(stmt.Cases, c)

		case token.CaseDefault:
			if stmt.Default != nil {
				return nil, diag.At(diag.MultipleDefaultCasesFound, next, "")
			}
			d, err := st.defaultCase()
			if err != nil {
				return nil, err
			}
			stmt.Default = d

		default:
			return nil, diag.At(diag.SelectExpectedCase, next,
				fmt.Sprintf("expected CASE or ENDSELECT, found %s", describe(next)))
		}
	}
}

func (st *state) caseStatement() (*ast.CaseStatement, error) {
	caseTok := st.s.Advance()

	var values []ast.Expression
	for {
		value, err := st.expression()
		if err != nil {
			return nil, err
		}
		values = append(values, value)
		if !st.peekIs(token.ArgSplitter) {
			break
		}
		st.s.Advance()
	}

	body, endTok, err := st.caseBody(caseTok)
	if err != nil {
		return nil, err
	}
	return &ast.CaseStatement{Span: ast.NewSpan(caseTok, endTok), Values: values, Statements: body}, nil
}

func (st *state) defaultCase() (*ast.DefaultCaseStatement, error) {
	defaultTok := st.s.Advance()
	body, endTok, err := st.caseBody(defaultTok)
	if err != nil {
		return nil, err
	}
	return &ast.DefaultCaseStatement{Span: ast.NewSpan(defaultTok, endTok), Statements: body}, nil
}

// caseBody parses statements up to ENDCASE. Reaching another CASE or
// ENDSELECT first means the ENDCASE is missing.
func (st *state) caseBody(opener token.Token) ([]ast.Statement, token.Token, error) {
	body, closer, found, err := st.block(token.EndCase, token.Case, token.CaseDefault, token.EndSelect)
	if err != nil {
		return nil, closer, err
	}
	if !found || closer.Kind != token.EndCase {
		return nil, closer, st.missingClose(diag.CaseStatementMissingEndCase, opener)
	}
	return body, st.s.Advance(), nil
}

// functionStatement parses FUNCTION name(params) ... ENDFUNCTION [value]
func (st *state) functionStatement() (ast.Statement, error) {
	fnTok := st.s.Advance()

	name := st.s.Peek()
	if !name.Kind.IsVariable() {
		return nil, diag.At(diag.FunctionMissingName, name, "")
	}
	st.s.Advance()

	if !st.peekIs(token.ParenOpen) {
		return nil, diag.At(diag.FunctionMissingOpenParen, st.s.Peek(), "")
	}
	st.s.Advance()

	var params []*ast.Parameter
	for !st.peekIs(token.ParenClose) {
		if len(params) > 0 {
			if !st.peekIs(token.ArgSplitter) {
				return nil, diag.At(diag.FunctionMissingCloseParen, st.s.Peek(), "")
			}
			st.s.Advance()
		}
		param, err := st.parameter()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	st.s.Advance()

	body, _, found, err := st.block(token.EndFunction)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, st.missingClose(diag.FunctionMissingEndFunction, fnTok)
	}
	st.s.Advance()

	fn := &ast.FunctionStatement{Name: name.Text, Parameters: params, Statements: body}
	if !isStatementEnd(st.s.Peek().Kind) {
		if fn.ReturnValue, err = st.expression(); err != nil {
			return nil, err
		}
	}
	fn.Span = ast.NewSpan(fnTok, st.s.LastReal())
	return fn, nil
}

func (st *state) parameter() (*ast.Parameter, error) {
	tok := st.s.Peek()
	if !tok.Kind.IsVariable() {
		return nil, diag.At(diag.ExpectedVariable, tok,
			fmt.Sprintf("expected a parameter name, found %s", describe(tok)))
	}
	st.s.Advance()

	param := &ast.Parameter{Name: tok.Text, Kind: tok.Kind}
	if st.peekIs(token.As) {
		st.s.Advance()
		ref, err := st.typeReference()
		if err != nil {
			return nil, err
		}
		param.Type = ref
	} else {
		param.Type = ast.ImpliedType(tok.Kind, tok)
	}
	param.Span = ast.NewSpan(tok, st.s.LastReal())
	return param, nil
}

func (st *state) exitFunctionStatement() (ast.Statement, error) {
	tok := st.s.Advance()
	stmt := &ast.FunctionReturnStatement{}
	if !isStatementEnd(st.s.Peek().Kind) {
		value, err := st.expression()
		if err != nil {
			return nil, err
		}
		stmt.Value = value
	}
	stmt.Span = ast.NewSpan(tok, st.s.LastReal())
	return stmt, nil
}

// typeStatement parses TYPE name, its "member [AS type]" lines and ENDTYPE
func (st *state) typeStatement() (ast.Statement, error) {
	typeTok := st.s.Advance()

	name := st.s.Peek()
	if name.Kind != token.VariableGeneral {
		return nil, diag.At(diag.TypeDefMissingName, name, "")
	}
	st.s.Advance()

	def := &ast.TypeDefinitionStatement{Name: name.Text}
	for {
		st.skipSeparators()
		next := st.s.Peek()

		switch {
		case next.Kind == token.EOF:
			return nil, st.missingClose(diag.TypeDefMissingEndType, typeTok)

		case next.Kind == token.EndType:
			st.s.Advance()
			def.Span = ast.NewSpan(typeTok, next)
			return def, nil

		case next.Kind.IsVariable():
			st.s.Advance()
			field := &ast.TypeField{Name: next.Text, Kind: next.Kind}
			if st.peekIs(token.As) {
				st.s.Advance()
				ref, err := st.typeReference()
				if err != nil {
					return nil, err
				}
				field.Type = ref
			} else {
				field.Type = ast.ImpliedType(next.Kind, next)
			}
			field.Span = ast.NewSpan(next, st.s.LastReal())
			def.Fields = append(def.Fields, field)

			if err := st.expectEnd(token.EndType); err != nil {
				return nil, diag.At(diag.TypeDefInvalidMember, st.s.Peek(), "")
			}

		default:
			return nil, diag.At(diag.TypeDefInvalidMember, next,
				fmt.Sprintf("expected a member name or ENDTYPE, found %s", describe(next)))
		}
	}
}

// jumpStatement parses GOTO label and GOSUB label
func (st *state) jumpStatement() (ast.Statement, error) {
	tok := st.s.Advance()
	label := st.s.Peek()
	if label.Kind != token.VariableGeneral {
		return nil, diag.At(diag.GotoMissingLabel, label, "")
	}
	st.s.Advance()

	span := ast.NewSpan(tok, label)
	if tok.Kind == token.GoSub {
		return &ast.GoSubStatement{Span: span, Label: label.Text}, nil
	}
	return &ast.GotoStatement{Span: span, Label: label.Text}, nil
}

func spanOf(n ast.Node) ast.Span {
	r := n.Range()
	return ast.NewSpan(r.Start, r.End)
}
