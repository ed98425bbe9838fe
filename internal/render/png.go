package render

import (
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/fogleman/gg"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/canvas"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

// WritePNG draws the same scene as WriteSVG into a PNG image.
func WritePNG(w io.Writer, s *canvas.State, win model.Window, cell grid.Size) error {
	sc := buildScene(s, win, cell)

	width := int(sc.size.Width) + 1
	height := int(sc.size.Height) + 1
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetColor(parseHex(GridlineColor))
	dc.SetLineWidth(1)
	for c := 0; c <= sc.ext.Columns; c++ {
		x := float64(c) * cell.Width
		dc.DrawLine(x, 0, x, sc.size.Height)
	}
	for r := 0; r <= sc.ext.Rows; r++ {
		y := float64(r) * cell.Height
		dc.DrawLine(0, y, sc.size.Width, y)
	}
	dc.Stroke()

	for _, e := range sc.epics {
		dc.SetColor(parseHex(e.epic.Color))
		dc.DrawRectangle(e.rect.X, e.rect.Y, e.rect.Width, e.rect.Height)
		dc.Fill()
	}

	dc.SetColor(parseHex(PathColor))
	dc.SetLineWidth(PathWidth)
	for _, c := range sc.curves {
		dc.MoveTo(c.P0.X, c.P0.Y)
		dc.CubicTo(c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.P3.X, c.P3.Y)
		dc.Stroke()
	}
	if c := sc.intermediate; c != nil {
		dc.SetDash(4, 3)
		dc.MoveTo(c.P0.X, c.P0.Y)
		dc.CubicTo(c.C1.X, c.C1.Y, c.C2.X, c.C2.Y, c.P3.X, c.P3.Y)
		dc.Stroke()
		dc.SetDash()
	}

	return dc.EncodePNG(w)
}

// parseHex accepts #rgb and #rrggbb. Anything else renders as mid gray.
func parseHex(s string) color.Color {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.Gray{Y: 128}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.Gray{Y: 128}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
