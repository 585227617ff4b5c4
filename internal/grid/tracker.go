package grid

import "time"

// Debounce windows for host events. Only the last event of a burst acts.
const (
	ResizeDebounce = 66 * time.Millisecond
	ScrollDebounce = 100 * time.Millisecond
)

// Transition is the outcome of a settled resize.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionToWide
	TransitionToNarrow
	// TransitionHeightOnly means the breakpoint held but vertical space opened up.
	TransitionHeightOnly
)

func (t Transition) String() string {
	switch t {
	case TransitionToWide:
		return "to-wide"
	case TransitionToNarrow:
		return "to-narrow"
	case TransitionHeightOnly:
		return "height-only"
	default:
		return "none"
	}
}

// Tracker watches the viewport width across the breakpoint. It remembers the
// width seen at the last breakpoint transition.
type Tracker struct {
	threshold int
	width     int
}

// NewTracker starts tracking from width.
func NewTracker(threshold, width int) *Tracker {
	if threshold <= 0 {
		threshold = DefaultBreakpointWidth
	}
	return &Tracker{threshold: threshold, width: width}
}

// Threshold returns the breakpoint width.
func (t *Tracker) Threshold() int { return t.threshold }

// Previous is the breakpoint recorded at the last transition.
func (t *Tracker) Previous() Breakpoint {
	return BreakpointFor(t.width, t.threshold)
}

// Current classifies width against the tracker's threshold.
func (t *Tracker) Current(width int) Breakpoint {
	return BreakpointFor(width, t.threshold)
}

// Observe is called once per settled resize. It stays silent when nothing is
// left to render; otherwise it reports at most one transition.
func (t *Tracker) Observe(width int, hasRemaining, emptySpace bool) Transition {
	if !hasRemaining {
		return TransitionNone
	}
	prev, cur := t.Previous(), t.Current(width)
	switch {
	case prev == Narrow && cur == Wide:
		t.width = width
		return TransitionToWide
	case prev == Wide && cur == Narrow:
		t.width = width
		return TransitionToNarrow
	case emptySpace:
		return TransitionHeightOnly
	}
	return TransitionNone
}
