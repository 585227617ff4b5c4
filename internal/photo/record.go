// Package photo defines the photo feed record and the filters applied to it.
package photo

import (
	"strings"
	"time"
)

// Record is a single entry of the photo feed. Records are values and are
// never mutated after the feed is decoded.
type Record struct {
	ID         int // position in the raw feed
	URL        string
	PreviewURL string
	Likes      int
	Comments   int
	CreatedAt  time.Time
	IsVideo    bool
}

// Available reports whether the record points at any media at all. Records
// without a URL are permanently failed.
func (r Record) Available() bool {
	return strings.TrimSpace(r.URL) != ""
}

// ThumbnailURL returns the URL used for grid tiles: the preview when present,
// the full URL otherwise.
func (r Record) ThumbnailURL() string {
	if p := strings.TrimSpace(r.PreviewURL); p != "" {
		return p
	}
	return strings.TrimSpace(r.URL)
}

var videoExtensions = []string{".mp4", ".webm", ".mov", ".m4v"}

// LooksLikeVideo reports whether url names a video file.
func LooksLikeVideo(url string) bool {
	lower := strings.ToLower(strings.TrimSpace(url))
	if i := strings.IndexAny(lower, "?#"); i >= 0 {
		lower = lower[:i]
	}
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
