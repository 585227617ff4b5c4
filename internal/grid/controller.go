package grid

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/pixwall/internal/photo"
)

// Command is a request processed synchronously by the Controller.
type Command interface {
	command()
}

// Load hands the fetched feed to the controller. Only the first Load counts.
type Load struct {
	Records []photo.Record
}

// SetFilter switches the filter mode and rebuilds the grid.
type SetFilter struct {
	Mode photo.FilterMode
}

// Scrolled is sent once a burst of scroll events has settled.
type Scrolled struct{}

// Resized is sent once a burst of resize events has settled.
type Resized struct{}

func (Load) command()      {}
func (SetFilter) command() {}
func (Scrolled) command()  {}
func (Resized) command()   {}

// Result describes what a command did.
type Result struct {
	Rendered   int
	Batches    int
	Transition Transition
}

// Options configure a Controller.
type Options struct {
	Renderer        Renderer
	Viewport        Viewport
	Device          Device
	BreakpointWidth int
	Gap             int
	Mode            photo.FilterMode
	Now             func() time.Time
	Logger          zerolog.Logger
}

// Controller drives the grid: it owns the cursor and the resize tracker and
// turns commands into render batches.
type Controller struct {
	cursor   *Cursor
	tracker  *Tracker
	policy   Policy
	gate     Gate
	viewport Viewport
	device   Device
	mode     photo.FilterMode
	now      func() time.Time
	log      zerolog.Logger

	raw    []photo.Record
	loaded bool
}

// NewController builds a controller over the renderer and viewport in opts.
func NewController(opts Options) *Controller {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	gap := opts.Gap
	if gap <= 0 {
		gap = DefaultGap
	}
	width := 0
	if opts.Viewport != nil {
		width = opts.Viewport.Width()
	}
	return &Controller{
		cursor:   NewCursor(opts.Renderer),
		tracker:  NewTracker(opts.BreakpointWidth, width),
		gate:     Gate{Viewport: opts.Viewport, Gap: gap},
		viewport: opts.Viewport,
		device:   opts.Device,
		mode:     opts.Mode,
		now:      now,
		log:      opts.Logger,
	}
}

// Mode returns the active filter mode.
func (c *Controller) Mode() photo.FilterMode { return c.mode }

// Loaded reports whether the feed has arrived.
func (c *Controller) Loaded() bool { return c.loaded }

// Device returns the probed device class.
func (c *Controller) Device() Device { return c.device }

// State returns the cursor state.
func (c *Controller) State() State { return c.cursor.State() }

// Rendered is the number of tiles currently on the board.
func (c *Controller) Rendered() int { return c.cursor.Rendered() }

// Remaining is the number of filtered items still to render.
func (c *Controller) Remaining() int { return c.cursor.Remaining() }

// Photos returns the filtered list the grid is rendering from.
func (c *Controller) Photos() []photo.Record { return c.cursor.Items() }

// Handles returns the rendered handles in board order.
func (c *Controller) Handles() []Handle { return c.cursor.Handles() }

// Breakpoint classifies the current viewport width.
func (c *Controller) Breakpoint() Breakpoint {
	if c.viewport == nil {
		return Narrow
	}
	return c.tracker.Current(c.viewport.Width())
}

// RowSize is the number of tiles per row at the current breakpoint.
func (c *Controller) RowSize() int {
	return c.policy.RowSize(c.device, c.Breakpoint())
}

// Dispatch processes cmd against the current state.
func (c *Controller) Dispatch(cmd Command) Result {
	var res Result
	switch cmd := cmd.(type) {
	case Load:
		if c.loaded {
			return res
		}
		c.raw = cmd.Records
		c.loaded = true
		res = c.applyFilter()
	case SetFilter:
		c.mode = cmd.Mode
		if !c.loaded {
			return res
		}
		res = c.applyFilter()
	case Scrolled:
		res = c.onScroll()
	case Resized:
		res = c.onResize()
	}
	c.log.Debug().
		Str("command", commandName(cmd)).
		Int("rendered", res.Rendered).
		Int("batches", res.Batches).
		Str("transition", res.Transition.String()).
		Int("total", c.cursor.Rendered()).
		Str("state", c.cursor.State().String()).
		Msg("grid command")
	return res
}

func (c *Controller) applyFilter() Result {
	items := photo.Filter(c.raw, c.mode, c.now())
	c.cursor.Reset(items)

	var res Result
	size := c.policy.PageSize(FullPage, c.device, c.Breakpoint(), c.cursor.Remaining())
	res.add(c.cursor.RenderBatch(size, false), 1)
	c.fill(&res)
	return res
}

func (c *Controller) onScroll() Result {
	var res Result
	if c.cursor.Remaining() <= 0 || !c.gate.NearBottom() {
		return res
	}
	size := c.policy.PageSize(IncrementalRow, c.device, c.Breakpoint(), c.cursor.Remaining())
	res.add(c.cursor.RenderBatch(size, true), 1)
	return res
}

func (c *Controller) onResize() Result {
	var res Result
	if c.viewport == nil {
		return res
	}
	res.Transition = c.tracker.Observe(
		c.viewport.Width(),
		c.cursor.Remaining() > 0,
		c.gate.EmptySpaceBelow(),
	)
	switch res.Transition {
	case TransitionToWide, TransitionToNarrow:
		bp := c.Breakpoint()
		deficit := Deficit(
			c.policy.Base(FullPage, c.device, bp),
			c.policy.Base(IncrementalRow, c.device, bp),
			c.cursor.Rendered(),
		)
		deficit = min(deficit, c.cursor.Remaining())
		if deficit > 0 {
			res.add(c.cursor.RenderBatch(deficit, true), 1)
			c.fill(&res)
		}
	case TransitionHeightOnly:
		c.fill(&res)
	}
	return res
}

func (c *Controller) fill(res *Result) {
	before := c.cursor.Rendered()
	batches := c.cursor.FillViewport(c.gate, func(remaining int) int {
		return c.policy.PageSize(IncrementalRow, c.device, c.Breakpoint(), remaining)
	})
	res.add(c.cursor.Rendered()-before, batches)
}

func (r *Result) add(rendered, batches int) {
	r.Rendered += rendered
	r.Batches += batches
}

func commandName(cmd Command) string {
	switch cmd.(type) {
	case Load:
		return "load"
	case SetFilter:
		return "set-filter"
	case Scrolled:
		return "scrolled"
	case Resized:
		return "resized"
	default:
		return "unknown"
	}
}
