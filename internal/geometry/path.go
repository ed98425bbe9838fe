// Package geometry computes the connector curves drawn between epics.
package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

// Curve is a cubic Bézier from P0 to P3 with control points C1 and C2.
type Curve struct {
	P0 grid.Vec `json:"p0"`
	C1 grid.Vec `json:"c1"`
	C2 grid.Vec `json:"c2"`
	P3 grid.Vec `json:"p3"`
}

// CubicConnector builds an S-curve between two pixel points. The control
// points are pushed horizontally away from each end by offset.X; the
// vertical offset is always zero.
func CubicConnector(from, to grid.Vec, offset grid.Vec) Curve {
	c := grid.Vec{X: offset.X}
	return Curve{
		P0: from,
		C1: from.Add(c),
		C2: to.Sub(c),
		P3: to,
	}
}

// Anchor converts a grid anchor to the pixel point a connector attaches to:
// the left edge of the column at the vertical centre of the lane.
func Anchor(p model.Point, cell grid.Size) grid.Vec {
	v := grid.GridToPixel(p, cell)
	v.Y += cell.Height / 2
	return v
}

// Connector is the curve between two grid anchors, with a control offset of
// one cell width.
func Connector(from, to model.Point, cell grid.Size) Curve {
	return CubicConnector(Anchor(from, cell), Anchor(to, cell), grid.Vec{X: cell.Width})
}

// PathCurve resolves a committed path against the epics it joins. It runs
// from the end of the predecessor to the start of the successor. ok is false
// when either epic is missing; such paths are skipped, not failed.
func PathCurve(p model.Path, lookup func(id int) (model.Epic, bool), windowStart time.Time, cell grid.Size) (Curve, bool) {
	from, ok := lookup(p.From)
	if !ok {
		return Curve{}, false
	}
	to, ok := lookup(p.To)
	if !ok {
		return Curve{}, false
	}
	return Connector(
		model.Point{X: grid.DateToColumn(from.EndDate, windowStart), Y: from.Row},
		model.Point{X: grid.DateToColumn(to.StartDate, windowStart), Y: to.Row},
		cell,
	), true
}

// IntermediateCurve is the curve of an in-progress path, head to tail.
func IntermediateCurve(p model.IntermediatePath, cell grid.Size) Curve {
	return Connector(p.Head, p.Tail, cell)
}

// At evaluates the curve at t in [0, 1].
func (c Curve) At(t float64) grid.Vec {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	d := 3 * u * t * t
	e := t * t * t
	return grid.Vec{
		X: a*c.P0.X + b*c.C1.X + d*c.C2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.C1.Y + d*c.C2.Y + e*c.P3.Y,
	}
}

// Sample returns n+1 evenly spaced points along the curve, ends included.
func (c Curve) Sample(n int) []grid.Vec {
	if n < 1 {
		n = 1
	}
	out := make([]grid.Vec, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, c.At(float64(i)/float64(n)))
	}
	return out
}

// ChordLength is the polyline length through the control points, an upper
// bound on the arc length. Useful to pick a sample count.
func (c Curve) ChordLength() float64 {
	return dist(c.P0, c.C1) + dist(c.C1, c.C2) + dist(c.C2, c.P3)
}

// SVGPath renders the curve as an SVG path "d" attribute.
func (c Curve) SVGPath() string {
	var b strings.Builder
	fmt.Fprintf(&b, "M%s %s C%s %s %s %s %s %s",
		num(c.P0.X), num(c.P0.Y),
		num(c.C1.X), num(c.C1.Y),
		num(c.C2.X), num(c.C2.Y),
		num(c.P3.X), num(c.P3.Y),
	)
	return b.String()
}

func dist(a, b grid.Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
