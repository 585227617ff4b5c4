package grid

// DefaultGap is how close, in layout units, the content bottom must come to
// the viewport bottom before the user counts as being near the end.
const DefaultGap = 100

// Viewport reports the host's current geometry in layout units. Values are
// sampled on every call; implementations must not cache them across renders.
type Viewport interface {
	Width() int
	Height() int
	// ContentBottom is the bottom edge of the rendered tiles relative to the
	// top of the viewport.
	ContentBottom() int
}

// Gate answers layout questions about the current viewport.
type Gate struct {
	Viewport Viewport
	Gap      int
}

// NearBottom reports whether the content bottom, less the gap, is within the viewport.
func (g Gate) NearBottom() bool {
	if g.Viewport == nil {
		return false
	}
	return g.Viewport.ContentBottom()-g.Gap <= g.Viewport.Height()
}

// EmptySpaceBelow reports whether the viewport extends past the rendered content.
func (g Gate) EmptySpaceBelow() bool {
	if g.Viewport == nil {
		return false
	}
	return g.Viewport.Height() > g.Viewport.ContentBottom()
}
