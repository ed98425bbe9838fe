// Package placement holds the rules for where epics sit on the grid and how
// they may be moved or resized. Everything here is pure.
package placement

import (
	"math"
	"time"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/datemath"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

const (
	DefaultColor = "#7ed6df"

	// DefaultExtendThreshold is the day gap to the window end at which the
	// window is asked to grow.
	DefaultExtendThreshold = 1

	handleDivisor = 5
)

// Span is a start/end date pair, end exclusive.
type Span struct {
	StartDate time.Time
	EndDate   time.Time
}

func spanOf(e model.Epic) Span { return Span{StartDate: e.StartDate, EndDate: e.EndDate} }

// CreateEpic builds a one-day epic at the cell under pos. It reports false
// when either date cannot be mapped; no partial epic is ever returned. The
// id is left zero for the caller to assign.
func CreateEpic(pos grid.Vec, ref time.Time, canvas grid.Size, ext grid.Extent) (model.Epic, bool) {
	cell := grid.PixelToGrid(pos, canvas, ext)

	start, ok := grid.ColumnToDate(ref, cell.X)
	if !ok {
		return model.Epic{}, false
	}
	end, ok := grid.ColumnToDate(ref, cell.X+1)
	if !ok {
		return model.Epic{}, false
	}
	return model.Epic{
		StartDate: start,
		EndDate:   end,
		Row:       cell.Y,
		Color:     DefaultColor,
	}, true
}

// MoveEpic translates the epic so it starts at target, keeping its duration.
// Moving onto the current start day returns the epic's span unchanged.
func MoveEpic(e model.Epic, target time.Time) Span {
	if datemath.SameDay(target, e.StartDate) {
		return spanOf(e)
	}
	width := datemath.DayDifference(e.EndDate, e.StartDate)
	start := datemath.Normalize(target)
	return Span{StartDate: start, EndDate: datemath.AddDays(start, width)}
}

// ResizeEpic moves one face of the epic to target. Targeting the face's
// current date returns the span unchanged. Callers check CanResize first;
// this function does not reject inverting resizes.
func ResizeEpic(e model.Epic, face model.Face, target time.Time) Span {
	s := spanOf(e)
	switch face {
	case model.FaceStart:
		if datemath.SameDay(target, e.StartDate) {
			return s
		}
		s.StartDate = datemath.Normalize(target)
	case model.FaceEnd:
		if datemath.SameDay(target, e.EndDate) {
			return s
		}
		s.EndDate = datemath.Normalize(target)
	}
	return s
}

// ResizeBounds returns the inclusive range of dates the given face may be
// moved to. An unbounded side is the zero time.
func ResizeBounds(e model.Epic, face model.Face) (lo, hi time.Time) {
	switch face {
	case model.FaceStart:
		return time.Time{}, datemath.AddDays(e.EndDate, -1)
	case model.FaceEnd:
		return datemath.AddDays(e.StartDate, 1), time.Time{}
	}
	return time.Time{}, time.Time{}
}

// CanResize reports whether moving face to target keeps start < end.
func CanResize(e model.Epic, face model.Face, target time.Time) bool {
	switch face {
	case model.FaceStart:
		return datemath.DayDifference(e.EndDate, target) > 0
	case model.FaceEnd:
		return datemath.DayDifference(target, e.StartDate) > 0
	}
	return false
}

// ShouldExtendWindow reports whether candidate is within threshold days of
// the window end (or past it).
func ShouldExtendWindow(candidate, windowEnd time.Time, threshold int) bool {
	return datemath.DayDifference(windowEnd, candidate) <= threshold
}

// GrowthFor is the number of days the window must grow so that candidate
// ends up more than threshold days away from the window end. It is at least
// one whenever ShouldExtendWindow holds, and zero otherwise.
func GrowthFor(candidate, windowEnd time.Time, threshold int) int {
	gap := datemath.DayDifference(windowEnd, candidate)
	if gap > threshold {
		return 0
	}
	return threshold + 1 - gap
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

func (r Rect) Contains(p grid.Vec) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Bounds is the pixel rectangle the epic occupies on a canvas starting at
// windowStart.
func Bounds(e model.Epic, windowStart time.Time, cell grid.Size) Rect {
	origin := grid.GridToPixel(model.Point{
		X: grid.DateToColumn(e.StartDate, windowStart),
		Y: e.Row,
	}, cell)
	return Rect{
		X:      origin.X,
		Y:      origin.Y,
		Width:  float64(datemath.DayDifference(e.EndDate, e.StartDate)) * cell.Width,
		Height: cell.Height,
	}
}

// Zone is the part of an epic under the pointer; it decides which gesture a
// drag starting there performs.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneStartTip
	ZoneStartHandle
	ZoneBody
	ZoneEndHandle
	ZoneEndTip
)

func (z Zone) String() string {
	switch z {
	case ZoneStartTip:
		return "start-tip"
	case ZoneStartHandle:
		return "start-handle"
	case ZoneBody:
		return "body"
	case ZoneEndHandle:
		return "end-handle"
	case ZoneEndTip:
		return "end-tip"
	default:
		return "none"
	}
}

// HandleWidth is the pixel width of a tip or resize handle on an epic of the
// given pixel width.
func HandleWidth(epicWidth float64, cell grid.Size) float64 {
	return math.Min(epicWidth/handleDivisor, cell.Width/handleDivisor)
}

// HitZone classifies pos against the epic's rectangle. Tips sit at the
// extreme edges, resize handles just inside them, the rest is body.
func HitZone(e model.Epic, pos grid.Vec, windowStart time.Time, cell grid.Size) Zone {
	r := Bounds(e, windowStart, cell)
	if !r.Contains(pos) {
		return ZoneNone
	}
	hw := HandleWidth(r.Width, cell)
	dx := pos.X - r.X
	switch {
	case dx < hw:
		return ZoneStartTip
	case dx < 2*hw:
		return ZoneStartHandle
	case dx >= r.Width-hw:
		return ZoneEndTip
	case dx >= r.Width-2*hw:
		return ZoneEndHandle
	default:
		return ZoneBody
	}
}
