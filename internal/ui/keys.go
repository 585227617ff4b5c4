package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding

	// Filters
	CycleFilter     key.Binding
	FilterPopular   key.Binding
	FilterNew       key.Binding
	FilterDiscussed key.Binding

	// Grid navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Open     key.Binding

	// Gallery
	Close key.Binding
	Prev  key.Binding
	Next  key.Binding
	Like  key.Binding
	Play  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),

		CycleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle filter"),
		),
		FilterPopular: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Popular"),
		),
		FilterNew: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "New"),
		),
		FilterDiscussed: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Discussed"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Move right"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open gallery"),
		),

		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close gallery"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("left", "Previous photo"),
		),
		Next: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("right", "Next photo"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Like/dislike"),
		),
		Play: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "Play/pause video"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.CycleFilter, k.CycleTheme, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.PageUp, k.PageDown},
		{k.Open, k.CycleFilter, k.FilterPopular, k.FilterNew, k.FilterDiscussed},
		{k.Close, k.Prev, k.Next, k.Like, k.Play},
		{k.CycleTheme, k.Help, k.Quit},
	}
}

// galleryHelp lists the bindings shown in the gallery footer.
func (k keyMap) galleryHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Like, k.Play, k.Close}
}
