package controller

import (
	"time"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/datemath"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

// WindowOwner owns the visible window. The controller only reads it and asks
// for growth; it never shrinks it.
type WindowOwner interface {
	Window() model.Window
	// RequestWindowGrowth is fire-and-forget: the controller does not wait
	// for, or check, the result.
	RequestWindowGrowth(extraDays int)
}

// MemoryWindow is an in-memory WindowOwner.
type MemoryWindow struct {
	w model.Window
}

func NewMemoryWindow(start time.Time, days, rows int) *MemoryWindow {
	if days < 1 {
		days = 1
	}
	if rows < 1 {
		rows = 1
	}
	start = datemath.Normalize(start)
	return &MemoryWindow{w: model.Window{
		Start: start,
		End:   datemath.AddDays(start, days),
		Rows:  rows,
	}}
}

func (m *MemoryWindow) Window() model.Window { return m.w }

func (m *MemoryWindow) RequestWindowGrowth(extraDays int) {
	if extraDays <= 0 {
		return
	}
	m.w.End = datemath.AddDays(m.w.End, extraDays)
}

// AddRow appends one lane.
func (m *MemoryWindow) AddRow() { m.w.Rows++ }

// Days is the number of day columns in the window.
func (m *MemoryWindow) Days() int { return datemath.DayDifference(m.w.End, m.w.Start) }
