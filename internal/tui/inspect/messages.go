// ============================================================================
// FadeBasic toolchain
// ============================================================================
//
// Package:     inspect
// Description: Message and document types for the inspector
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package inspect

import (
	"github.com/cdhanna/fadebasic-sub000/foundation/basic"
)

// Document is one loaded source file and the front end result for it
type Document struct {
	Name   string
	Source string
	Result *basic.Result
}

// LoadFunc reads and parses the inspected file. The error is reserved for
// failures that produced no result at all, such as an unreadable file.
type LoadFunc func() (*Document, error)

// Message types for tea.Cmd async operations

// loadedMsg is sent when the document was (re)loaded
type loadedMsg struct {
	doc *Document
	err error
}

// reloadMsg signals a reload request
type reloadMsg struct{}
