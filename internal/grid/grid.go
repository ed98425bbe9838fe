// Package grid converts between pixel space, grid cells and calendar days.
//
// Pixel coordinates are relative to the top-left of the canvas surface. One
// grid column is one day counted from the window start; one grid row is one
// lane.
package grid

import (
	"math"
	"time"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/datemath"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

// Vec is a position in pixel space.
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

// Size is a width/height pair in pixels (a canvas or a single cell).
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Extent is the number of columns (days) and rows (lanes) on the canvas.
type Extent struct {
	Columns int `json:"columns"`
	Rows    int `json:"rows"`
}

// WindowExtent derives the grid extent of a visible window.
func WindowExtent(w model.Window) Extent {
	return Extent{
		Columns: datemath.DayDifference(w.End, w.Start),
		Rows:    w.Rows,
	}
}

// CanvasSize is the pixel size of an extent drawn with the given cell size.
func CanvasSize(ext Extent, cell Size) Size {
	return Size{
		Width:  float64(ext.Columns) * cell.Width,
		Height: float64(ext.Rows) * cell.Height,
	}
}

// PixelToGrid maps a pixel position to the cell containing it. Boundaries
// belong to the cell to their right/below. Results are not clamped; a
// degenerate canvas size maps everything to the origin cell.
func PixelToGrid(pos Vec, canvas Size, ext Extent) model.Point {
	var p model.Point
	if canvas.Width > 0 {
		p.X = int(math.Floor(pos.X / canvas.Width * float64(ext.Columns)))
	}
	if canvas.Height > 0 {
		p.Y = int(math.Floor(pos.Y / canvas.Height * float64(ext.Rows)))
	}
	return p
}

// GridToPixel returns the top-left pixel of a cell.
func GridToPixel(p model.Point, cell Size) Vec {
	return Vec{
		X: float64(p.X) * cell.Width,
		Y: float64(p.Y) * cell.Height,
	}
}

// CellCenter returns the pixel centre of a cell.
func CellCenter(p model.Point, cell Size) Vec {
	return GridToPixel(p, cell).Add(Vec{X: cell.Width / 2, Y: cell.Height / 2})
}

// ColumnToDate adds offset days to ref. It reports false when ref is not a
// usable date; callers must then leave state unchanged.
func ColumnToDate(ref time.Time, offset int) (time.Time, bool) {
	if ref.IsZero() {
		return time.Time{}, false
	}
	return datemath.AddDays(ref, offset), true
}

// DateToColumn is the whole-day offset of date from ref. It may be negative.
func DateToColumn(date, ref time.Time) int {
	return datemath.DayDifference(date, ref)
}

// Contains reports whether p lies inside the extent.
func (e Extent) Contains(p model.Point) bool {
	return p.X >= 0 && p.X < e.Columns && p.Y >= 0 && p.Y < e.Rows
}
