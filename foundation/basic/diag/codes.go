// File: codes.go
// Title: Error Code Catalog
// Description: The fixed catalog of diagnostic codes emitted by the lexer,
//              parser and validator.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial catalog

package diag

import "fmt"

// ErrorCode is the numeric, human-readable identity of a diagnostic
type ErrorCode struct {
	Code    int
	Name    string
	Message string
}

// Category classifies a code by its numeric range
type Category int

const (
	CategoryLexer Category = iota
	CategorySyntax
	CategorySemantic
	CategorySymbol
)

// String returns the category name
func (c Category) String() string {
	switch c {
	case CategoryLexer:
		return "lexer"
	case CategorySyntax:
		return "syntax"
	case CategorySemantic:
		return "semantic"
	case CategorySymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Category returns the producer class of the code
func (e ErrorCode) Category() Category {
	switch {
	case e.Code < 100:
		return CategoryLexer
	case e.Code < 200:
		return CategorySyntax
	case e.Code < 300:
		return CategorySemantic
	default:
		return CategorySymbol
	}
}

// ID returns the zero padded code, e.g. "0105"
func (e ErrorCode) ID() string {
	return fmt.Sprintf("%04d", e.Code)
}

// String returns "[0105] IfStatementMissingEndIf"
func (e ErrorCode) String() string {
	return fmt.Sprintf("[%s] %s", e.ID(), e.Name)
}

// Lexer codes
var (
	UnknownLexeme        = ErrorCode{1, "UnknownLexeme", "no token matches the input"}
	AmbiguousLexeme      = ErrorCode{2, "AmbiguousLexeme", "more than one token kind matches the input"}
	UnterminatedString   = ErrorCode{3, "UnterminatedString", "string literal is missing its closing quote"}
	ConstantRecursion    = ErrorCode{4, "ConstantRecursion", "constant expands into itself"}
	ConstantMissingValue = ErrorCode{5, "ConstantMissingValue", "#constant requires a name and a value"}
	SourceTooLong        = ErrorCode{6, "SourceTooLong", "source exceeds the configured maximum length"}
)

// Syntax codes
var (
	ExpressionMissing                = ErrorCode{100, "ExpressionMissing", "expected an expression"}
	ExpressionMissingAfterOpenParen  = ErrorCode{101, "ExpressionMissingAfterOpenParen", "expected an expression after '('"}
	ExpressionMissingCloseParen      = ErrorCode{102, "ExpressionMissingCloseParen", "expected ')'"}
	AmbiguousDeclarationOrAssignment = ErrorCode{103, "AmbiguousDeclarationOrAssignment", "expected '=', AS, or the end of the statement"}
	UnknownStatement                 = ErrorCode{104, "UnknownStatement", "token cannot start a statement"}
	IfStatementMissingEndIf          = ErrorCode{105, "IfStatementMissingEndIf", "IF is missing ENDIF"}
	WhileStatementMissingEndWhile    = ErrorCode{106, "WhileStatementMissingEndWhile", "WHILE is missing ENDWHILE"}
	RepeatStatementMissingUntil      = ErrorCode{107, "RepeatStatementMissingUntil", "REPEAT is missing UNTIL"}
	DoStatementMissingLoop           = ErrorCode{108, "DoStatementMissingLoop", "DO is missing LOOP"}
	ForStatementMissingNext          = ErrorCode{109, "ForStatementMissingNext", "FOR is missing NEXT"}
	SelectStatementMissingEndSelect  = ErrorCode{110, "SelectStatementMissingEndSelect", "SELECT is missing ENDSELECT"}
	CaseStatementMissingEndCase      = ErrorCode{111, "CaseStatementMissingEndCase", "CASE is missing ENDCASE"}
	FunctionMissingEndFunction       = ErrorCode{112, "FunctionMissingEndFunction", "FUNCTION is missing ENDFUNCTION"}
	TypeDefMissingEndType            = ErrorCode{113, "TypeDefMissingEndType", "TYPE is missing ENDTYPE"}
	MultipleDefaultCasesFound        = ErrorCode{114, "MultipleDefaultCasesFound", "SELECT has more than one CASE DEFAULT"}
	ArrayRankLimitExceeded           = ErrorCode{115, "ArrayRankLimitExceeded", "arrays have at most 5 ranks"}
	InvalidTypeReference             = ErrorCode{116, "InvalidTypeReference", "expected a type name"}
	UnknownCommand                   = ErrorCode{117, "UnknownCommand", "command is not registered"}
	CommandMissingArgument           = ErrorCode{118, "CommandMissingArgument", "command is missing a required argument"}
	ForStatementMissingEquals        = ErrorCode{119, "ForStatementMissingEquals", "FOR requires '=' after the loop variable"}
	ForStatementMissingTo            = ErrorCode{120, "ForStatementMissingTo", "FOR requires TO after the start value"}
	ExpectedVariable                 = ErrorCode{121, "ExpectedVariable", "expected a variable"}
	FunctionMissingName              = ErrorCode{122, "FunctionMissingName", "FUNCTION requires a name"}
	FunctionMissingOpenParen         = ErrorCode{123, "FunctionMissingOpenParen", "FUNCTION requires '(' after its name"}
	FunctionMissingCloseParen        = ErrorCode{124, "FunctionMissingCloseParen", "FUNCTION parameter list is missing ')'"}
	TypeDefMissingName               = ErrorCode{125, "TypeDefMissingName", "TYPE requires a name"}
	TypeDefInvalidMember             = ErrorCode{126, "TypeDefInvalidMember", "TYPE members are declared as 'name [AS type]'"}
	GotoMissingLabel                 = ErrorCode{127, "GotoMissingLabel", "expected a label name"}
	ArrayMissingCloseParen           = ErrorCode{128, "ArrayMissingCloseParen", "array index is missing ')'"}
	StructFieldMissingName           = ErrorCode{129, "StructFieldMissingName", "expected a field name after '.'"}
	ExpectedEndOfStatement           = ErrorCode{130, "ExpectedEndOfStatement", "expected the end of the statement"}
	SelectExpectedCase               = ErrorCode{131, "SelectExpectedCase", "SELECT bodies contain only CASE blocks"}
	DimMissingRanks                  = ErrorCode{132, "DimMissingRanks", "DIM requires a parenthesized rank list"}
	CommandExpectedArgSplitter       = ErrorCode{133, "CommandExpectedArgSplitter", "expected ',' between command arguments"}
	ScopeMissingDeclaration          = ErrorCode{134, "ScopeMissingDeclaration", "GLOBAL and LOCAL must be followed by a declaration"}
	RefArgumentRequiresVariable      = ErrorCode{135, "RefArgumentRequiresVariable", "a reference argument must be a variable"}
	InvalidLiteral                   = ErrorCode{136, "InvalidLiteral", "numeric literal cannot be represented"}
)

// Post-parse semantic codes
var (
	DuplicateLabel          = ErrorCode{200, "DuplicateLabel", "label is declared more than once"}
	DuplicateTypeDefinition = ErrorCode{201, "DuplicateTypeDefinition", "TYPE is declared more than once"}
	DuplicateFunction       = ErrorCode{202, "DuplicateFunction", "FUNCTION is declared more than once"}
	DuplicateTypeMember     = ErrorCode{203, "DuplicateTypeMember", "TYPE member is declared more than once"}
	DuplicateParameter      = ErrorCode{204, "DuplicateParameter", "FUNCTION parameter is declared more than once"}
)

// Symbol codes
var (
	UnknownLabel = ErrorCode{300, "UnknownLabel", "label is not declared"}
	UnknownType  = ErrorCode{301, "UnknownType", "TYPE is not declared"}
)

// Catalog returns every known code in ascending order
func Catalog() []ErrorCode {
	return []ErrorCode{
		UnknownLexeme, AmbiguousLexeme, UnterminatedString, ConstantRecursion,
		ConstantMissingValue, SourceTooLong,

		ExpressionMissing, ExpressionMissingAfterOpenParen, ExpressionMissingCloseParen,
		AmbiguousDeclarationOrAssignment, UnknownStatement, IfStatementMissingEndIf,
		WhileStatementMissingEndWhile, RepeatStatementMissingUntil, DoStatementMissingLoop,
		ForStatementMissingNext, SelectStatementMissingEndSelect, CaseStatementMissingEndCase,
		FunctionMissingEndFunction, TypeDefMissingEndType, MultipleDefaultCasesFound,
		ArrayRankLimitExceeded, InvalidTypeReference, UnknownCommand, CommandMissingArgument,
		ForStatementMissingEquals, ForStatementMissingTo, ExpectedVariable, FunctionMissingName,
		FunctionMissingOpenParen, FunctionMissingCloseParen, TypeDefMissingName,
		TypeDefInvalidMember, GotoMissingLabel, ArrayMissingCloseParen, StructFieldMissingName,
		ExpectedEndOfStatement, SelectExpectedCase, DimMissingRanks, CommandExpectedArgSplitter,
		ScopeMissingDeclaration, RefArgumentRequiresVariable, InvalidLiteral,

		DuplicateLabel, DuplicateTypeDefinition, DuplicateFunction, DuplicateTypeMember,
		DuplicateParameter,

		UnknownLabel, UnknownType,
	}
}
