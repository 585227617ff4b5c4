package grid

import "github.com/five82/pixwall/internal/photo"

// Handle identifies a materialized tile. Handles are opaque to the cursor.
type Handle int

// Renderer materializes records into tiles and removes them again. Load
// failures are the renderer's concern and never fail a batch.
type Renderer interface {
	Materialize(rec photo.Record) Handle
	// Evict removes the tile and releases everything it subscribed to.
	Evict(h Handle)
}

// State is the cursor's position relative to the filtered items.
type State int

const (
	StateIdle State = iota
	StateRendering
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateRendering:
		return "rendering"
	case StateExhausted:
		return "exhausted"
	default:
		return "idle"
	}
}

// Cursor owns the render state: the filtered items, the handles rendered so
// far and the state machine over them. Rendered() never exceeds len(Items()).
type Cursor struct {
	renderer Renderer
	items    []photo.Record
	handles  []Handle
	state    State
}

// NewCursor returns an idle cursor with no items.
func NewCursor(r Renderer) *Cursor {
	return &Cursor{renderer: r}
}

// State returns the current state.
func (c *Cursor) State() State { return c.state }

// Rendered is the number of materialized items.
func (c *Cursor) Rendered() int { return len(c.handles) }

// Remaining is the number of filtered items not yet materialized.
func (c *Cursor) Remaining() int { return len(c.items) - len(c.handles) }

// Items returns the filtered items. The slice must not be modified.
func (c *Cursor) Items() []photo.Record { return c.items }

// Handles returns a copy of the rendered handles in insertion order.
func (c *Cursor) Handles() []Handle {
	out := make([]Handle, len(c.handles))
	copy(out, c.handles)
	return out
}

// Reset evicts every tile and installs items as the new filtered list.
func (c *Cursor) Reset(items []photo.Record) {
	c.evictAll()
	c.items = items
	c.state = StateIdle
}

// RenderBatch materializes up to count further items and returns how many it
// rendered. With appendMode false the current tiles are evicted first and
// rendering restarts from the first item.
func (c *Cursor) RenderBatch(count int, appendMode bool) int {
	if !appendMode {
		c.evictAll()
	}
	start := len(c.handles)
	end := min(start+max(count, 0), len(c.items))
	for _, rec := range c.items[start:end] {
		c.handles = append(c.handles, c.renderer.Materialize(rec))
	}
	if len(c.handles) == len(c.items) {
		c.state = StateExhausted
	} else {
		c.state = StateRendering
	}
	return end - start
}

// FillViewport renders batches of size(remaining) until the gate reports no
// empty space or nothing is left. It returns the number of batches rendered.
func (c *Cursor) FillViewport(gate Gate, size func(remaining int) int) int {
	batches := 0
	for c.state != StateExhausted && gate.EmptySpaceBelow() {
		if c.RenderBatch(size(c.Remaining()), true) == 0 {
			break
		}
		batches++
	}
	return batches
}

func (c *Cursor) evictAll() {
	for _, h := range c.handles {
		c.renderer.Evict(h)
	}
	c.handles = c.handles[:0]
}
