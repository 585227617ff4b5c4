package ui

import (
	"context"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pixwall/internal/feed"
	"github.com/five82/pixwall/internal/grid"
	"github.com/five82/pixwall/internal/photo"
)

// tileStatus is the load state of a single tile.
type tileStatus int

const (
	tileLoading tileStatus = iota
	tileReady
	tileFailed
)

func (s tileStatus) String() string {
	switch s {
	case tileReady:
		return "ready"
	case tileFailed:
		return "failed"
	default:
		return "loading"
	}
}

type tile struct {
	handle grid.Handle
	record photo.Record
	status tileStatus
	info   feed.ImageInfo
	err    error
	cancel context.CancelFunc
}

// probeMsg carries the outcome of an image probe back to the update loop.
type probeMsg struct {
	handle grid.Handle
	info   feed.ImageInfo
	err    error
}

// board is the tile grid. It is the grid's renderer and viewport at once:
// tiles are materialized into rows of columns() tiles and measured in layout
// units derived from the terminal cell size.
type board struct {
	ctx     context.Context
	source  feed.Source
	columns func() int

	next     grid.Handle
	tiles    []*tile
	byHandle map[grid.Handle]*tile
	pending  []tea.Cmd

	cols, rows            int // terminal cells available to the board
	cellWidth, cellHeight int
	offset                int // first visible board row
}

var (
	_ grid.Renderer = (*board)(nil)
	_ grid.Viewport = (*board)(nil)
)

func newBoard(ctx context.Context, source feed.Source, cellWidth, cellHeight int) *board {
	if ctx == nil {
		ctx = context.Background()
	}
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	return &board{
		ctx:        ctx,
		source:     source,
		byHandle:   make(map[grid.Handle]*tile),
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
	}
}

// Materialize appends a tile for rec and queues its image probe. Records
// without media fail immediately.
func (b *board) Materialize(rec photo.Record) grid.Handle {
	b.next++
	t := &tile{handle: b.next, record: rec}
	switch {
	case !rec.Available():
		t.status = tileFailed
		t.err = feed.ErrUnavailable
	case b.source == nil:
		t.status = tileReady
	default:
		ctx, cancel := context.WithCancel(b.ctx)
		t.cancel = cancel
		b.pending = append(b.pending, probeCmd(ctx, b.source, t.handle, rec.ThumbnailURL()))
	}
	b.tiles = append(b.tiles, t)
	b.byHandle[t.handle] = t
	return t.handle
}

// Evict removes the tile and cancels its probe. A probe result that arrives
// afterwards no longer finds the handle and is dropped.
func (b *board) Evict(h grid.Handle) {
	t, ok := b.byHandle[h]
	if !ok {
		return
	}
	if t.cancel != nil {
		t.cancel()
	}
	delete(b.byHandle, h)
	b.tiles = slices.DeleteFunc(b.tiles, func(x *tile) bool { return x.handle == h })
}

// resolve applies a probe result. It reports false for evicted tiles.
func (b *board) resolve(msg probeMsg) bool {
	t, ok := b.byHandle[msg.handle]
	if !ok {
		return false
	}
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	if msg.err != nil {
		t.status = tileFailed
		t.err = msg.err
		return true
	}
	t.status = tileReady
	t.info = msg.info
	return true
}

// drain returns the probes queued since the last call.
func (b *board) drain() tea.Cmd {
	if len(b.pending) == 0 {
		return nil
	}
	cmd := tea.Batch(b.pending...)
	b.pending = nil
	return cmd
}

func probeCmd(ctx context.Context, source feed.Source, h grid.Handle, ref string) tea.Cmd {
	return func() tea.Msg {
		info, err := source.ProbeImage(ctx, ref)
		return probeMsg{handle: h, info: info, err: err}
	}
}

// Width implements grid.Viewport.
func (b *board) Width() int { return b.cols * b.cellWidth }

// Height implements grid.Viewport.
func (b *board) Height() int { return b.rows * b.cellHeight }

// ContentBottom implements grid.Viewport.
func (b *board) ContentBottom() int {
	return (b.contentRows() - b.offset) * b.cellHeight
}

func (b *board) resize(cols, rows int) {
	b.cols = max(cols, 0)
	b.rows = max(rows, 0)
	b.clampOffset()
}

func (b *board) columnCount() int {
	n := 1
	if b.columns != nil {
		n = b.columns()
	}
	return max(n, 1)
}

func (b *board) tileWidth() int {
	return max(b.cols/b.columnCount(), 1)
}

func (b *board) tileRowCount() int {
	n := b.columnCount()
	return (len(b.tiles) + n - 1) / n
}

func (b *board) contentRows() int {
	return b.tileRowCount() * TileRows
}

func (b *board) maxOffset() int {
	return max(b.contentRows()-b.rows, 0)
}

func (b *board) clampOffset() {
	b.offset = min(max(b.offset, 0), b.maxOffset())
}

// atBottom reports whether the last content row is on screen.
func (b *board) atBottom() bool {
	return b.offset >= b.maxOffset()
}

// scrollBy moves the visible window and reports whether it moved.
func (b *board) scrollBy(delta int) bool {
	return b.scrollTo(b.offset + delta)
}

func (b *board) scrollTo(offset int) bool {
	prev := b.offset
	b.offset = offset
	b.clampOffset()
	return b.offset != prev
}

// ensureVisible scrolls so the tile at index is fully on screen.
func (b *board) ensureVisible(index int) bool {
	if index < 0 || index >= len(b.tiles) {
		return false
	}
	top := (index / b.columnCount()) * TileRows
	bottom := top + TileRows
	offset := b.offset
	if bottom > offset+b.rows {
		offset = bottom - b.rows
	}
	if top < offset {
		offset = top
	}
	return b.scrollTo(offset)
}

// tileAt maps a board-relative cell to a tile index.
func (b *board) tileAt(x, y int) (int, bool) {
	if x < 0 || y < 0 || y >= b.rows {
		return 0, false
	}
	n := b.columnCount()
	col := x / b.tileWidth()
	if col >= n {
		return 0, false
	}
	idx := ((y+b.offset)/TileRows)*n + col
	if idx >= len(b.tiles) {
		return 0, false
	}
	return idx, true
}

// visibleRows is how many tile rows fit on screen, at least one.
func (b *board) visibleRows() int {
	return max(b.rows/TileRows, 1)
}
