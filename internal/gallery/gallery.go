// Package gallery implements the full-size overlay opened from the photo grid.
package gallery

import "github.com/five82/pixwall/internal/photo"

// Key is a navigation key understood by the overlay.
type Key int

const (
	KeyEsc Key = iota
	KeyLeft
	KeyRight
)

// Gallery is the overlay state: the photo list it cycles through, the current
// index and the preview for the current record.
type Gallery struct {
	photos  []photo.Record
	current int
	visible bool
	likes   *Likes
	preview Preview
}

// New returns a hidden, empty gallery.
func New() *Gallery {
	return &Gallery{likes: NewLikes()}
}

// SetPhotos replaces the list the overlay cycles through.
func (g *Gallery) SetPhotos(photos []photo.Record) {
	g.destroyPreview()
	g.photos = append([]photo.Record(nil), photos...)
	g.current = 0
}

// Len is the number of photos in the overlay.
func (g *Gallery) Len() int { return len(g.photos) }

// Index returns the current photo index.
func (g *Gallery) Index() int { return g.current }

// SetCurrentIndex moves to index. One step past either end wraps to the
// opposite end.
func (g *Gallery) SetCurrentIndex(index int) {
	if len(g.photos) == 0 {
		g.destroyPreview()
		g.current = 0
		return
	}
	last := len(g.photos) - 1
	switch {
	case index > last:
		index = 0
	case index < 0:
		index = last
	}
	g.destroyPreview()
	g.current = index
	g.preview = NewPreview(g.photos[index], g.likes)
}

// Next shows the following photo.
func (g *Gallery) Next() { g.SetCurrentIndex(g.current + 1) }

// Prev shows the previous photo.
func (g *Gallery) Prev() { g.SetCurrentIndex(g.current - 1) }

// Show makes the overlay visible.
func (g *Gallery) Show() { g.visible = true }

// Hide closes the overlay and releases the current preview.
func (g *Gallery) Hide() {
	g.visible = false
	g.destroyPreview()
}

// Visible reports whether the overlay is open.
func (g *Gallery) Visible() bool { return g.visible }

// Preview returns the current preview, or nil when nothing is selected.
func (g *Gallery) Preview() Preview { return g.preview }

// Likes exposes the like side table.
func (g *Gallery) Likes() *Likes { return g.likes }

// HandleKey applies a navigation key while the overlay is visible.
func (g *Gallery) HandleKey(k Key) {
	if !g.visible {
		return
	}
	switch k {
	case KeyEsc:
		g.Hide()
	case KeyLeft:
		g.Prev()
	case KeyRight:
		g.Next()
	}
}

// HandleImageClick navigates by the half of the image that was clicked:
// the left half (including the middle) goes back, the right half forward.
func (g *Gallery) HandleImageClick(x, left, width int) {
	if !g.visible {
		return
	}
	if 2*x <= 2*left+width {
		g.Prev()
		return
	}
	g.Next()
}

// HandleClick forwards a click on a preview target.
func (g *Gallery) HandleClick(target Target) {
	if !g.visible || g.preview == nil {
		return
	}
	g.preview.HandleClick(target)
}

func (g *Gallery) destroyPreview() {
	if g.preview != nil {
		g.preview.Destroy()
		g.preview = nil
	}
}
