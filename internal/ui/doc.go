// Package ui is pixwall's terminal photo wall, built on Bubble Tea.
//
// # Structure
//
//   - app.go: Model, message loop, keyboard and mouse handling, Run
//   - board.go: the tile board, which is both the grid's renderer and its viewport
//   - board_view.go: tile and panel rendering
//   - gallery_view.go: the gallery overlay and its click geometry
//   - header.go: status line, filter bar and footer help
//   - help.go, keys.go: key bindings and the help overlay
//   - theme.go, style_helpers.go: color themes and lipgloss helpers
//
// # Layout Units
//
// The grid package reasons in layout units rather than terminal cells. The
// board multiplies its cell size by the configured cell width and height, so
// a 138 column terminal sits on the default 1380 unit breakpoint and a tile
// row of six cells is 120 units tall.
//
// # Event Flow
//
// The feed is loaded by a goroutine outside this package and published to a
// state.Store. The model polls the store until the snapshot settles, then
// dispatches grid.Load. The controller is created on the first window size
// message so its resize tracker starts from the real terminal width.
//
// Scroll and resize events are debounced with tea.Tick and a sequence token;
// when a tick arrives carrying anything but the latest token it is dropped,
// so a burst of events produces one grid.Scrolled or grid.Resized command.
// Filter changes dispatch grid.SetFilter immediately and persist the choice
// to the preferences file.
//
// # Image Probes
//
// Materializing a tile starts an image probe as a tea.Cmd bound to a
// per-tile context. Evicting the tile cancels that context, and a result
// that arrives for a handle no longer on the board is ignored. Tiles without
// a URL, or whose probe fails or times out, are shown as unavailable and do
// not open the gallery.
package ui
