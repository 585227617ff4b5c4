package feed

import (
	"strings"
	"time"

	"github.com/five82/pixwall/internal/photo"
)

// Entry mirrors a single object of the feed's JSON array.
type Entry struct {
	URL      string `json:"url"`
	Preview  string `json:"preview"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Date     string `json:"date"`
	Video    *bool  `json:"video,omitempty"`
}

// Record converts the entry at position id of the feed.
func (e Entry) Record(id int) photo.Record {
	url := strings.TrimSpace(e.URL)
	isVideo := photo.LooksLikeVideo(url)
	if e.Video != nil {
		isVideo = *e.Video
	}
	return photo.Record{
		ID:         id,
		URL:        url,
		PreviewURL: strings.TrimSpace(e.Preview),
		Likes:      max(e.Likes, 0),
		Comments:   max(e.Comments, 0),
		CreatedAt:  parseTime(e.Date),
		IsVideo:    isVideo,
	}
}

// Records converts a decoded feed, assigning IDs by position.
func Records(entries []Entry) []photo.Record {
	out := make([]photo.Record, len(entries))
	for i, e := range entries {
		out[i] = e.Record(i)
	}
	return out
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	time.DateOnly,
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
