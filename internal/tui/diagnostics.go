// ============================================================================
// FadeBasic toolchain
// ============================================================================
//
// Package:     tui
// Description: Renders parse diagnostics with the offending source line and
//              a caret span underneath
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
	mdwstringx "github.com/cdhanna/fadebasic-sub000/foundation/utils/stringx"
)

// Source holds a file name and its lines for diagnostic rendering
type Source struct {
	Name  string
	Lines []string
}

// NewSource splits text into lines the way the lexer counts them
func NewSource(name, text string) Source {
	return Source{Name: name, Lines: mdwstringx.SplitLines(text)}
}

// Line returns the 1-based line, or false when out of range
func (s Source) Line(n int) (string, bool) {
	if n < 1 || n > len(s.Lines) {
		return "", false
	}
	return s.Lines[n-1], true
}

// RenderDiagnostic renders one diagnostic as
//
//	file:line:char: error[0104] Name: message
//	   3 | if x then
//	     |    ^^^^
func RenderDiagnostic(src Source, d *diag.ParseError) string {
	var b strings.Builder

	loc := fmt.Sprintf("%s:%d:%d", src.Name, d.Line(), d.Char())
	if d.Line() == 0 {
		loc = src.Name + ":EOF"
	}
	b.WriteString(LocationStyle.Render(loc))
	b.WriteString(": ")
	b.WriteString(ErrorLabelStyle.Render(fmt.Sprintf("error[%s]", d.ErrorCode.ID())))
	b.WriteString(" ")
	b.WriteString(MessageStyle.Render(d.ErrorCode.Name + ": " + d.Message))

	line, ok := src.Line(d.Line())
	if !ok {
		return b.String()
	}

	start, width := caretSpan(line, d)
	gutter := mdwstringx.PadLeft(strconv.Itoa(d.Line()), 4, ' ') + " | "
	blank := strings.Repeat(" ", len(gutter)-2) + "| "

	b.WriteString("\n")
	b.WriteString(GutterStyle.Render(gutter))
	b.WriteString(SourceStyle.Render(line))
	b.WriteString("\n")
	b.WriteString(GutterStyle.Render(blank))
	b.WriteString(caretPrefix(line, start))
	b.WriteString(CaretStyle.Render(strings.Repeat("^", width)))

	return b.String()
}

// RenderDiagnostics renders every diagnostic followed by a summary line
func RenderDiagnostics(src Source, list diag.ErrorList) string {
	if len(list) == 0 {
		return SummaryOKStyle.Render(fmt.Sprintf("%s: no problems found", src.Name))
	}

	parts := make([]string, 0, len(list)+1)
	for _, d := range list {
		parts = append(parts, RenderDiagnostic(src, d))
	}
	parts = append(parts, Summary(len(list)))
	return strings.Join(parts, "\n\n")
}

// Summary returns the trailing "N error(s)" line
func Summary(n int) string {
	if n == 0 {
		return SummaryOKStyle.Render("no problems found")
	}
	noun := "errors"
	if n == 1 {
		noun = "error"
	}
	return SummaryErrorStyle.Render(fmt.Sprintf("%d %s", n, noun))
}

// caretSpan returns the 0-based start offset and caret width within line.
// Spans that continue past the line are cut at its end.
func caretSpan(line string, d *diag.ParseError) (int, int) {
	start := d.Char() - 1
	if start < 0 {
		start = 0
	}
	if start > len(line) {
		start = len(line)
	}

	end := len(line)
	r := d.Location
	if r.End.LineNumber == r.Start.LineNumber && r.End.EndChar() > r.Start.CharNumber {
		end = r.End.EndChar() - 1
	}
	if end > len(line) {
		end = len(line)
	}

	width := end - start
	if width < 1 {
		width = 1
	}
	return start, width
}

// caretPrefix keeps tabs from the source so carets line up under them
func caretPrefix(line string, n int) string {
	var b strings.Builder
	for i := 0; i < n && i < len(line); i++ {
		if line[i] == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
