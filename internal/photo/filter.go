package photo

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"
)

// FilterMode selects the order and subset of the feed shown in the grid.
type FilterMode int

const (
	FilterPopular FilterMode = iota
	FilterNew
	FilterDiscussed
)

// NewWindowDays is the maximum age, in whole days, of a record shown by FilterNew.
const NewWindowDays = 30

var filterNames = map[FilterMode]string{
	FilterPopular:   "popular",
	FilterNew:       "new",
	FilterDiscussed: "discussed",
}

// FilterModes lists every mode in cycle order.
func FilterModes() []FilterMode {
	return []FilterMode{FilterPopular, FilterNew, FilterDiscussed}
}

func (m FilterMode) String() string {
	if name, ok := filterNames[m]; ok {
		return name
	}
	return filterNames[FilterPopular]
}

// Label is the human readable name of the mode.
func (m FilterMode) Label() string {
	switch m {
	case FilterNew:
		return "New"
	case FilterDiscussed:
		return "Discussed"
	default:
		return "Popular"
	}
}

// Next returns the following mode in cycle order.
func (m FilterMode) Next() FilterMode {
	modes := FilterModes()
	for i, mode := range modes {
		if mode == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return FilterPopular
}

// ParseFilterMode maps a stored or user supplied name to a mode. Unknown and
// empty names fall back to FilterPopular.
func ParseFilterMode(value string) FilterMode {
	v := strings.ToLower(strings.TrimSpace(value))
	for mode, name := range filterNames {
		if name == v {
			return mode
		}
	}
	return FilterPopular
}

// Filter returns a new slice holding raw ordered according to mode. raw is
// left untouched. The New window is measured against now, so callers pass the
// current time on every call and the set shrinks as records age.
func Filter(raw []Record, mode FilterMode, now time.Time) []Record {
	out := make([]Record, 0, len(raw))
	switch mode {
	case FilterNew:
		for _, r := range raw {
			if age := AgeInDays(r.CreatedAt, now); age > 0 && age <= NewWindowDays {
				out = append(out, r)
			}
		}
		slices.SortStableFunc(out, func(a, b Record) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case FilterDiscussed:
		out = append(out, raw...)
		slices.SortStableFunc(out, func(a, b Record) int {
			return cmp.Compare(b.Comments, a.Comments)
		})
	default:
		out = append(out, raw...)
	}
	return out
}

// AgeInDays is the distance from created to now rounded to the nearest day.
// Future timestamps give zero or negative ages.
func AgeInDays(created, now time.Time) int {
	if created.IsZero() {
		return 0
	}
	days := now.Sub(created).Hours() / 24
	return int(math.Round(days))
}
