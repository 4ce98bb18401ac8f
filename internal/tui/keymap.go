// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines key bindings for the browser.
type KeyMap struct {
	Up            key.Binding
	Down          key.Binding
	Search        key.Binding
	Bookmark      key.Binding
	BookmarksOnly key.Binding
	Sort          key.Binding
	Refresh       key.Binding
	Facets        key.Binding
	NextDim       key.Binding
	Toggle        key.Binding
	Detail        key.Binding
	Back          key.Binding
	Quit          key.Binding
}

var keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Bookmark: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "bookmark"),
	),
	BookmarksOnly: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "bookmarks only"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload dataset"),
	),
	Facets: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "facets"),
	),
	NextDim: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next dimension"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle value"),
	),
	Detail: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "detail"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
