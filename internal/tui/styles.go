// ============================================================================
// FadeBasic toolchain
// ============================================================================
//
// Package:     tui
// Description: Shared lipgloss palette for diagnostics and the inspector
// Author:      msto63
// Created:     2025-12-07
// Modified:    2026-10-19
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorBgPanel   = lipgloss.Color("#1E293B") // Slate 800
)

// Diagnostic styles
var (
	ErrorLabelStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	LocationStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	GutterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SourceStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	CaretStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	SummaryErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	SummaryOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// Inspector styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorPrimary).
			Bold(true).
			Underline(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
