package ui

import "time"

// Screen chrome around the board, in terminal rows.
const (
	headerRows = 2
	footerRows = 1
	chromeRows = headerRows + footerRows
)

// Tile geometry, in terminal cells.
const (
	// TileRows is the height of one tile including its border.
	TileRows = 6

	// WheelStep is how many rows a single mouse wheel notch scrolls.
	WheelStep = 3
)

// Default conversion from terminal cells to layout units.
const (
	DefaultCellWidth  = 10
	DefaultCellHeight = 20
)

// Timing constants.
const (
	// SnapshotPoll is how often the UI checks the store until the feed settles.
	SnapshotPoll = 150 * time.Millisecond

	// OverlayMaxWidth bounds the gallery overlay on wide terminals.
	OverlayMaxWidth = 72
)
