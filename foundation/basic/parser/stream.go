// File: stream.go
// Title: Token Stream
// Description: Cursor over a token slice with lookahead, consumption and
//              checkpoint/rewind. Reading past the end yields a synthesized
//              EOF token.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import "github.com/cdhanna/fadebasic-sub000/foundation/basic/token"

// Stream is a cursor over a token sequence. The slice is shared, not copied.
// A stream belongs to a single parse and is not safe for concurrent use.
type Stream struct {
	tokens []token.Token
	index  int
}

// NewStream creates a stream positioned at the first token
func NewStream(tokens []token.Token) *Stream {
	return &Stream{tokens: tokens}
}

// Len returns the number of tokens in the stream
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Index returns the cursor position
func (s *Stream) Index() int {
	return s.index
}

// IsEof reports whether every token has been consumed
func (s *Stream) IsEof() bool {
	return s.index >= len(s.tokens)
}

// Peek returns the next unconsumed token without advancing
func (s *Stream) Peek() token.Token {
	return s.PeekAt(0)
}

// PeekAt returns the token offset positions past the cursor
func (s *Stream) PeekAt(offset int) token.Token {
	i := s.index + offset
	if i < 0 || i >= len(s.tokens) {
		return token.EOFToken()
	}
	return s.tokens[i]
}

// Advance consumes and returns the next token
func (s *Stream) Advance() token.Token {
	tok := s.Peek()
	if s.index < len(s.tokens) {
		s.index++
	}
	return tok
}

// Current returns the most recently consumed token, or EOF before the first
// Advance
func (s *Stream) Current() token.Token {
	return s.PeekAt(-1)
}

// LastReal returns the most recently consumed token that was written in the
// source, skipping virtual end-of-statement tokens
func (s *Stream) LastReal() token.Token {
	for i := s.index - 1; i >= 0; i-- {
		if !s.tokens[i].IsVirtual() {
			return s.tokens[i]
		}
	}
	return token.EOFToken()
}

// PeekUntil returns the tokens from the cursor up to, but excluding, the next
// token of kind. Without such a token the rest of the stream is returned.
func (s *Stream) PeekUntil(kind token.Kind) []token.Token {
	for i := s.index; i < len(s.tokens); i++ {
		if s.tokens[i].Kind == kind {
			return s.tokens[s.index:i]
		}
	}
	return s.tokens[s.index:]
}

// Slice returns the tokens between two cursor positions
func (s *Stream) Slice(from, to int) []token.Token {
	if from < 0 {
		from = 0
	}
	if to > len(s.tokens) {
		to = len(s.tokens)
	}
	if from >= to {
		return nil
	}
	return s.tokens[from:to]
}

// Save returns a checkpoint for Restore
func (s *Stream) Save() int {
	return s.index
}

// Restore rewinds (or fast-forwards) the cursor to a checkpoint
func (s *Stream) Restore(index int) {
	switch {
	case index < 0:
		s.index = 0
	case index > len(s.tokens):
		s.index = len(s.tokens)
	default:
		s.index = index
	}
}
