// File: diag.go
// Title: Parse Errors and Token Ranges
// Description: TokenRange anchors diagnostics and AST nodes to source spans.
//              ParseError is the unit of reported failure; ErrorList aggregates
//              several of them; ProgramRecovery records a resynchronization.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package diag

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/token"
)

// TokenRange is an inclusive span from the Start token to the End token
type TokenRange struct {
	Start token.Token
	End   token.Token
}

// RangeOf returns a range covering a single token
func RangeOf(tok token.Token) TokenRange {
	return TokenRange{Start: tok, End: tok}
}

// Span returns a range from start to end
func Span(start, end token.Token) TokenRange {
	return TokenRange{Start: start, End: end}
}

// String returns "line:char-line:char"
func (r TokenRange) String() string {
	if r.Start.LineNumber == 0 {
		return "EOF"
	}
	end := r.End
	if end.LineNumber == 0 {
		end = r.Start
	}
	return fmt.Sprintf("%d:%d-%d:%d", r.Start.LineNumber, r.Start.CharNumber, end.LineNumber, end.EndChar())
}

// ParseError is a coded diagnostic anchored to a token range
type ParseError struct {
	Location  TokenRange
	ErrorCode ErrorCode
	Message   string
}

// New creates a diagnostic spanning start..end. An empty detail uses the code's
// catalog message.
func New(code ErrorCode, start, end token.Token, detail string) *ParseError {
	return newError(code, Span(start, end), detail)
}

// At creates a diagnostic anchored to a single token
func At(code ErrorCode, tok token.Token, detail string) *ParseError {
	return newError(code, RangeOf(tok), detail)
}

func newError(code ErrorCode, loc TokenRange, detail string) *ParseError {
	msg := code.Message
	if detail != "" {
		msg = detail
	}
	return &ParseError{Location: loc, ErrorCode: code, Message: msg}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.ErrorCode, e.Location, e.Message)
}

// Line returns the 1-based source line of the diagnostic start
func (e *ParseError) Line() int {
	return e.Location.Start.LineNumber
}

// Char returns the 1-based source column of the diagnostic start
func (e *ParseError) Char() int {
	return e.Location.Start.CharNumber
}

// ErrorList is an ordered collection of diagnostics
type ErrorList []*ParseError

// Add appends a diagnostic
func (l *ErrorList) Add(err *ParseError) {
	*l = append(*l, err)
}

// Len returns the number of diagnostics
func (l ErrorList) Len() int {
	return len(l)
}

// Sort orders diagnostics by source position, then by code
func (l ErrorList) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		a, b := l[i].Location.Start, l[j].Location.Start
		if a.LineNumber != b.LineNumber {
			return a.LineNumber < b.LineNumber
		}
		if a.CharNumber != b.CharNumber {
			return a.CharNumber < b.CharNumber
		}
		return l[i].ErrorCode.Code < l[j].ErrorCode.Code
	})
}

// Error implements the error interface
func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d errors:", len(l))
	for _, e := range l {
		b.WriteString("\n  ")
		b.WriteString(e.Error())
	}
	return b.String()
}

// Err returns nil for an empty list and the list otherwise
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// Has reports whether any diagnostic carries code
func (l ErrorList) Has(code ErrorCode) bool {
	for _, e := range l {
		if e.ErrorCode.Code == code.Code {
			return true
		}
	}
	return false
}

// Unwrap exposes the individual diagnostics to errors.Is and errors.As
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// Collect flattens err into diagnostics. It accepts a *ParseError, an ErrorList,
// or any error wrapping one of them.
func Collect(err error) ErrorList {
	if err == nil {
		return nil
	}
	var list ErrorList
	if errors.As(err, &list) {
		return list
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return ErrorList{pe}
	}
	return nil
}

// ProgramRecovery records that the parser skipped tokens after an error. Index is
// the position in the program's statement list where the error statement sits,
// and CorrectiveTokens are the tokens that were discarded to resynchronize.
type ProgramRecovery struct {
	Index            int
	Error            *ParseError
	CorrectiveTokens []token.Token
}
