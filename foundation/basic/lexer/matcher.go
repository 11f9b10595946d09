// File: matcher.go
// Title: Lexeme Matchers
// Description: Hand-rolled prefix matchers used by lexemes. Every matcher works
//              on ASCII-lowercased input and returns the byte length of the
//              prefix it accepts, or 0.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import "strings"

// Matcher recognizes a prefix of its input
type Matcher interface {
	// Match returns the length of the accepted prefix of s, 0 for no match
	Match(s string) int
	// CanStart reports whether a match may begin with b
	CanStart(b byte) bool
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b == '_'
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

// lowerASCII lowercases ASCII letters only, so byte offsets stay aligned with
// the original line
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// phraseMatcher matches words separated by whitespace. Each gap between words
// accepts one or more whitespace characters; with optional set the gap may also
// be empty, so "endif" and "end if" both match.
type phraseMatcher struct {
	words    []string
	optional bool
}

func phrase(text string) *phraseMatcher {
	return &phraseMatcher{words: strings.Fields(lowerASCII(text))}
}

func compound(words ...string) *phraseMatcher {
	return &phraseMatcher{words: words, optional: true}
}

func (m *phraseMatcher) Match(s string) int {
	pos := 0
	for i, w := range m.words {
		if i > 0 {
			gap := 0
			for pos+gap < len(s) && isSpace(s[pos+gap]) {
				gap++
			}
			if gap == 0 && !m.optional {
				return 0
			}
			pos += gap
		}
		if !strings.HasPrefix(s[pos:], w) {
			return 0
		}
		pos += len(w)
	}
	if pos == 0 {
		return 0
	}
	// a phrase ending in a word character must not run into another one
	if pos < len(s) && isIdentPart(s[pos-1]) && isIdentPart(s[pos]) {
		return 0
	}
	return pos
}

func (m *phraseMatcher) CanStart(b byte) bool {
	return len(m.words) > 0 && len(m.words[0]) > 0 && m.words[0][0] == b
}

// identMatcher matches identifiers with an optional type suffix
type identMatcher struct {
	suffix byte // 0 for none
}

func (m identMatcher) Match(s string) int {
	if len(s) == 0 || !isIdentStart(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && isIdentPart(s[n]) {
		n++
	}
	if m.suffix == 0 {
		return n
	}
	if n < len(s) && s[n] == m.suffix {
		return n + 1
	}
	return 0
}

func (m identMatcher) CanStart(b byte) bool {
	return isIdentStart(b)
}

// intMatcher matches decimal digits
type intMatcher struct{}

func (intMatcher) Match(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func (intMatcher) CanStart(b byte) bool {
	return isDigit(b)
}

// realMatcher matches digits '.' digits, or '.' digits
type realMatcher struct{}

func (realMatcher) Match(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	if n >= len(s) || s[n] != '.' {
		return 0
	}
	frac := n + 1
	for frac < len(s) && isDigit(s[frac]) {
		frac++
	}
	if frac == n+1 {
		return 0
	}
	return frac
}

func (realMatcher) CanStart(b byte) bool {
	return isDigit(b) || b == '.'
}

// stringMatcher matches a double quoted literal without escapes
type stringMatcher struct{}

func (stringMatcher) Match(s string) int {
	if len(s) == 0 || s[0] != '"' {
		return 0
	}
	end := strings.IndexByte(s[1:], '"')
	if end < 0 {
		return 0
	}
	return end + 2
}

func (stringMatcher) CanStart(b byte) bool {
	return b == '"'
}

// spaceMatcher matches a whitespace run
type spaceMatcher struct{}

func (spaceMatcher) Match(s string) int {
	n := 0
	for n < len(s) && isSpace(s[n]) {
		n++
	}
	return n
}

func (spaceMatcher) CanStart(b byte) bool {
	return isSpace(b)
}

// restOfLineMatcher matches a marker and everything after it. When word is set
// the marker must be followed by whitespace or the end of the line.
type restOfLineMatcher struct {
	marker string
	word   bool
}

func (m restOfLineMatcher) Match(s string) int {
	if !strings.HasPrefix(s, m.marker) {
		return 0
	}
	if m.word && len(s) > len(m.marker) && !isSpace(s[len(m.marker)]) {
		return 0
	}
	return len(s)
}

func (m restOfLineMatcher) CanStart(b byte) bool {
	return m.marker[0] == b
}
