// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui implements the terminal front end: list, filter, and
// bookmark papers from a loaded catalog.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorAccent  = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWhite   = lipgloss.Color("#FFFFFF")

	styleApp = lipgloss.NewStyle().
			Padding(1, 2)

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleCounts = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleSelected = lipgloss.NewStyle().
			Background(colorPrimary).
			Foreground(colorWhite).
			Bold(true)

	styleBookmark = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleVenue = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleTag = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFacetOn = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMuted)
)
