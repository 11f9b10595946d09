// ============================================================================
// FadeBasic toolchain
// ============================================================================
//
// Package:     inspect
// Description: Bubbletea model that browses the tokens, syntax tree and
//              diagnostics of a FadeBasic source file
// Author:      msto63
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package inspect

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/ast"
	mdwstringx "github.com/cdhanna/fadebasic-sub000/foundation/utils/stringx"
	"github.com/cdhanna/fadebasic-sub000/internal/tui"
)

// commentWidth caps the text shown per comment, block comments can span pages
const commentWidth = 60

// Tab identifies one inspector pane
type Tab int

const (
	TabTokens Tab = iota
	TabAST
	TabDiagnostics
	TabComments
	tabCount
)

var tabNames = [...]string{
	TabTokens:      "Tokens",
	TabAST:         "AST",
	TabDiagnostics: "Diagnostics",
	TabComments:    "Comments",
}

// String returns the tab title
func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "?"
	}
	return tabNames[t]
}

// Model is the main Bubbletea model for the inspector
type Model struct {
	// State
	width  int
	height int
	ready  bool
	tab    Tab
	err    error

	// Components
	viewport viewport.Model

	doc  *Document
	load LoadFunc
}

// New creates an inspector model. The document is loaded by Init.
func New(load LoadFunc) Model {
	return Model{load: load}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.loadDocument
}

func (m Model) loadDocument() tea.Msg {
	doc, err := m.load()
	return loadedMsg{doc: doc, err: err}
}

// Tab returns the active tab
func (m Model) Tab() Tab {
	return m.tab
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKeyPress(msg); handled {
			return next, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Title + tabs
		footerHeight := 2 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case loadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.doc = msg.doc
		}
		m.updateViewportContent()
		m.viewport.GotoTop()

	case reloadMsg:
		return m, m.loadDocument
	}

	// Update viewport
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input. Unhandled keys fall through to the
// viewport for scrolling.
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit, true

	case tea.KeyTab, tea.KeyRight:
		m.setTab((m.tab + 1) % tabCount)
		return m, nil, true

	case tea.KeyShiftTab, tea.KeyLeft:
		m.setTab((m.tab + tabCount - 1) % tabCount)
		return m, nil, true

	case tea.KeyRunes:
		switch key := string(msg.Runes); key {
		case "q":
			return m, tea.Quit, true
		case "r":
			return m, func() tea.Msg { return reloadMsg{} }, true
		case "1", "2", "3", "4":
			m.setTab(Tab(key[0] - '1'))
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m *Model) setTab(t Tab) {
	m.tab = t
	m.updateViewportContent()
	m.viewport.GotoTop()
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.content())
}

// content renders the body of the active tab
func (m Model) content() string {
	if m.err != nil {
		return tui.ErrorLabelStyle.Render("load failed: ") + m.err.Error()
	}
	if m.doc == nil || m.doc.Result == nil {
		return tui.HelpStyle.Render("loading...")
	}
	res := m.doc.Result

	switch m.tab {
	case TabTokens:
		var b strings.Builder
		for i, tok := range res.Tokens {
			fmt.Fprintf(&b, "%5d  %s\n", i, tok)
		}
		return b.String()

	case TabAST:
		if res.Program == nil {
			return tui.HelpStyle.Render("no syntax tree, see diagnostics")
		}
		return ast.Sprint(res.Program)

	case TabDiagnostics:
		return tui.RenderDiagnostics(tui.NewSource(m.doc.Name, m.doc.Source), res.Diagnostics)

	case TabComments:
		if len(res.Comments) == 0 {
			return tui.HelpStyle.Render("no comments")
		}
		var b strings.Builder
		for _, c := range res.Comments {
			kind := "line"
			if c.Block {
				kind = "block"
			}
			fmt.Fprintf(&b, "%d:%d %s %q\n", c.Line, c.Char, kind, mdwstringx.Truncate(c.Text, commentWidth, "..."))
		}
		return b.String()
	}
	return ""
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading inspector..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(tui.PanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(tui.HelpStyle.Render("tab/←/→ switch  1-4 jump  ↑/↓ pgup/pgdn scroll  r reload  q quit"))

	return b.String()
}

// renderHeader renders the title and tab row
func (m Model) renderHeader() string {
	name := "fadebasic inspect"
	if m.doc != nil {
		name += " " + m.doc.Name
	}

	tabs := make([]string, 0, tabCount)
	for t := Tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", t+1, t)
		if t == m.tab {
			tabs = append(tabs, tui.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, tui.TabStyle.Render(label))
		}
	}

	return tui.TitleStyle.Render(name) + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderStatusBar renders token, statement and diagnostic counts
func (m Model) renderStatusBar() string {
	status := "no document"
	if m.doc != nil && m.doc.Result != nil {
		res := m.doc.Result
		statements := 0
		if res.Program != nil {
			statements = len(res.Program.Statements)
		}
		status = fmt.Sprintf("tokens %d  statements %d  %s  run %s",
			len(res.Tokens), statements, tui.Summary(len(res.Diagnostics)), res.RunID)
	}
	return tui.StatusBarStyle.Width(m.width).Render(status)
}
