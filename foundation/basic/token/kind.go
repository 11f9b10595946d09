// File: kind.go
// Title: Token Kinds
// Description: Enumerates every token kind the lexer can emit together with
//              display names and keyword classification helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package token

// Kind represents the type of a lexical token
type Kind int

const (
	// Structural tokens
	EOF           Kind = iota
	EndStatement       // newline (virtual) or ':'
	ArgSplitter        // ,
	FieldSplitter      // .
	ParenOpen          // (
	ParenClose         // )

	// Operators
	OpPlus     // +
	OpMinus    // -
	OpMultiply // *
	OpDivide   // /
	OpPower    // ^
	OpMod      // MOD
	OpEqual    // =
	OpNotEqual // <>
	OpGt       // >
	OpGte      // >=
	OpLt       // <
	OpLte      // <=
	OpAnd      // AND
	OpOr       // OR
	OpNot      // NOT

	// Literals
	LiteralInt
	LiteralReal
	LiteralString

	// Identifiers
	VariableGeneral // score
	VariableString  // name$
	VariableReal    // speed#
	CommandWord     // any name from the command collection

	// Control flow keywords
	If
	Then
	Else
	EndIf
	For
	To
	Step
	Next
	While
	EndWhile
	Repeat
	Until
	Do
	Loop
	Select
	EndSelect
	Case
	CaseDefault // CASE DEFAULT
	EndCase
	Function
	EndFunction
	ExitFunction
	Goto
	GoSub
	Return

	// Declaration keywords
	Type
	EndType
	As
	Dim
	Global
	Local

	// Primitive type keywords
	TypeInteger
	TypeFloat
	TypeString
	TypeBoolean
	TypeByte
	TypeWord
	TypeDWord
	TypeDoubleInteger
	TypeDoubleFloat

	kindCount
)

var kindNames = [...]string{
	EOF:               "EOF",
	EndStatement:      "END_STATEMENT",
	ArgSplitter:       "ARG_SPLITTER",
	FieldSplitter:     "FIELD_SPLITTER",
	ParenOpen:         "PAREN_OPEN",
	ParenClose:        "PAREN_CLOSE",
	OpPlus:            "OP_PLUS",
	OpMinus:           "OP_MINUS",
	OpMultiply:        "OP_MULTIPLY",
	OpDivide:          "OP_DIVIDE",
	OpPower:           "OP_POWER",
	OpMod:             "OP_MOD",
	OpEqual:           "OP_EQUAL",
	OpNotEqual:        "OP_NOT_EQUAL",
	OpGt:              "OP_GT",
	OpGte:             "OP_GTE",
	OpLt:              "OP_LT",
	OpLte:             "OP_LTE",
	OpAnd:             "OP_AND",
	OpOr:              "OP_OR",
	OpNot:             "OP_NOT",
	LiteralInt:        "LITERAL_INT",
	LiteralReal:       "LITERAL_REAL",
	LiteralString:     "LITERAL_STRING",
	VariableGeneral:   "VARIABLE_GENERAL",
	VariableString:    "VARIABLE_STRING",
	VariableReal:      "VARIABLE_REAL",
	CommandWord:       "COMMAND_WORD",
	If:                "IF",
	Then:              "THEN",
	Else:              "ELSE",
	EndIf:             "ENDIF",
	For:               "FOR",
	To:                "TO",
	Step:              "STEP",
	Next:              "NEXT",
	While:             "WHILE",
	EndWhile:          "ENDWHILE",
	Repeat:            "REPEAT",
	Until:             "UNTIL",
	Do:                "DO",
	Loop:              "LOOP",
	Select:            "SELECT",
	EndSelect:         "ENDSELECT",
	Case:              "CASE",
	CaseDefault:       "CASE_DEFAULT",
	EndCase:           "ENDCASE",
	Function:          "FUNCTION",
	EndFunction:       "ENDFUNCTION",
	ExitFunction:      "EXITFUNCTION",
	Goto:              "GOTO",
	GoSub:             "GOSUB",
	Return:            "RETURN",
	Type:              "TYPE",
	EndType:           "ENDTYPE",
	As:                "AS",
	Dim:               "DIM",
	Global:            "GLOBAL",
	Local:             "LOCAL",
	TypeInteger:       "TYPE_INTEGER",
	TypeFloat:         "TYPE_FLOAT",
	TypeString:        "TYPE_STRING",
	TypeBoolean:       "TYPE_BOOLEAN",
	TypeByte:          "TYPE_BYTE",
	TypeWord:          "TYPE_WORD",
	TypeDWord:         "TYPE_DWORD",
	TypeDoubleInteger: "TYPE_DOUBLE_INTEGER",
	TypeDoubleFloat:   "TYPE_DOUBLE_FLOAT",
}

// String returns the display name of the kind
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// IsBinaryOperator reports whether the kind can join two expressions
func (k Kind) IsBinaryOperator() bool {
	return k >= OpPlus && k <= OpOr
}

// IsVariable reports whether the kind names a variable
func (k Kind) IsVariable() bool {
	return k == VariableGeneral || k == VariableString || k == VariableReal
}

// IsLiteral reports whether the kind is a literal value
func (k Kind) IsLiteral() bool {
	return k == LiteralInt || k == LiteralReal || k == LiteralString
}

// IsPrimitiveType reports whether the kind is a built-in type keyword
func (k Kind) IsPrimitiveType() bool {
	return k >= TypeInteger && k <= TypeDoubleFloat
}

// IsStatementTerminator reports whether the kind ends a statement
func (k Kind) IsStatementTerminator() bool {
	return k == EndStatement || k == EOF
}
