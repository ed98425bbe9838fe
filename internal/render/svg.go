package render

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/canvas"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

// WriteSVG draws the canvas as a standalone SVG document.
func WriteSVG(w io.Writer, s *canvas.State, win model.Window, cell grid.Size) error {
	sc := buildScene(s, win, cell)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		f(sc.size.Width), f(sc.size.Height), f(sc.size.Width), f(sc.size.Height))
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>` + "\n")

	b.WriteString(`<g stroke="` + GridlineColor + `" stroke-width="1">` + "\n")
	for c := 0; c <= sc.ext.Columns; c++ {
		x := float64(c) * cell.Width
		fmt.Fprintf(&b, `<line x1="%s" y1="0" x2="%s" y2="%s"/>`+"\n", f(x), f(x), f(sc.size.Height))
	}
	for r := 0; r <= sc.ext.Rows; r++ {
		y := float64(r) * cell.Height
		fmt.Fprintf(&b, `<line x1="0" y1="%s" x2="%s" y2="%s"/>`+"\n", f(y), f(sc.size.Width), f(y))
	}
	b.WriteString("</g>\n")

	for _, e := range sc.epics {
		fmt.Fprintf(&b, `<rect data-epic="%d" x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			e.epic.ID, f(e.rect.X), f(e.rect.Y), f(e.rect.Width), f(e.rect.Height), html.EscapeString(e.epic.Color))
	}

	for _, c := range sc.curves {
		fmt.Fprintf(&b, `<path d="%s" stroke="%s" stroke-width="%s" fill="transparent"/>`+"\n", c.SVGPath(), PathColor, f(PathWidth))
	}
	if sc.intermediate != nil {
		fmt.Fprintf(&b, `<path d="%s" stroke="%s" stroke-width="%s" stroke-dasharray="4 3" fill="transparent"/>`+"\n",
			sc.intermediate.SVGPath(), PathColor, f(PathWidth))
	}
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func f(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
