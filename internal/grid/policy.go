package grid

import "os"

// Device is the input class of the host, probed once per session.
type Device int

const (
	DevicePointer Device = iota
	DeviceTouch
)

func (d Device) String() string {
	if d == DeviceTouch {
		return "touch"
	}
	return "pointer"
}

// ParseDevice resolves the configured device class. "auto" (or anything
// unrecognised) probes the host through lookupEnv.
func ParseDevice(value string, lookupEnv func(string) (string, bool)) Device {
	switch value {
	case "touch":
		return DeviceTouch
	case "pointer":
		return DevicePointer
	}
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	if _, ok := lookupEnv("TERMUX_VERSION"); ok {
		return DeviceTouch
	}
	return DevicePointer
}

// Breakpoint separates the two layout densities.
type Breakpoint int

const (
	Narrow Breakpoint = iota
	Wide
)

// DefaultBreakpointWidth is the width, in layout units, at which the grid
// switches to the wide layout.
const DefaultBreakpointWidth = 1380

func (b Breakpoint) String() string {
	if b == Wide {
		return "wide"
	}
	return "narrow"
}

// BreakpointFor classifies width against threshold.
func BreakpointFor(width, threshold int) Breakpoint {
	if width >= threshold {
		return Wide
	}
	return Narrow
}

// Purpose tells the policy what a batch is for.
type Purpose int

const (
	// FullPage is the first batch after a filter change.
	FullPage Purpose = iota
	// IncrementalRow tops the grid up by a single row.
	IncrementalRow
)

// Base sizes. They match the visual column counts of the grid.
const (
	pageWide   = 12
	pageNarrow = 11
	rowWide    = 7
	rowNarrow  = 5
	pageTouch  = pageNarrow
	rowTouch   = rowNarrow
)

// Policy computes batch sizes. The zero value is ready to use.
type Policy struct{}

// Base returns the unclamped batch size for purpose.
func (Policy) Base(purpose Purpose, device Device, bp Breakpoint) int {
	if device == DeviceTouch {
		if purpose == FullPage {
			return pageTouch
		}
		return rowTouch
	}
	if purpose == FullPage {
		if bp == Wide {
			return pageWide
		}
		return pageNarrow
	}
	if bp == Wide {
		return rowWide
	}
	return rowNarrow
}

// RowSize is the number of tiles per visual row.
func (p Policy) RowSize(device Device, bp Breakpoint) int {
	return p.Base(IncrementalRow, device, bp)
}

// PageSize is Base clamped to remaining. It is never negative.
func (p Policy) PageSize(purpose Purpose, device Device, bp Breakpoint, remaining int) int {
	if remaining <= 0 {
		return 0
	}
	return min(remaining, p.Base(purpose, device, bp))
}

// Deficit is the number of tiles needed after a breakpoint change so the grid
// holds at least a full page and ends on a complete row. It is zero when the
// grid is already row aligned.
func Deficit(fullPage, rowSize, placed int) int {
	if placed < fullPage {
		return fullPage - placed
	}
	if rowSize <= 0 {
		return 0
	}
	return (rowSize - (placed-fullPage)%rowSize) % rowSize
}
