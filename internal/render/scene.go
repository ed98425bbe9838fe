package render

import (
	"github.com/mahisnghrwt/canvas-m-react-2/internal/canvas"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/geometry"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/placement"
)

const (
	GridlineColor = "#bdc3c7"
	PathColor     = "#34495e"
	PathWidth     = 2.0
)

type sceneEpic struct {
	epic model.Epic
	rect placement.Rect
}

// scene is the resolved drawable content shared by the SVG and PNG writers.
type scene struct {
	size         grid.Size
	cell         grid.Size
	ext          grid.Extent
	epics        []sceneEpic
	curves       []geometry.Curve
	intermediate *geometry.Curve
}

func buildScene(s *canvas.State, w model.Window, cell grid.Size) scene {
	ext := grid.WindowExtent(w)
	sc := scene{
		size: grid.CanvasSize(ext, cell),
		cell: cell,
		ext:  ext,
	}
	for _, e := range s.Epics() {
		sc.epics = append(sc.epics, sceneEpic{epic: e, rect: placement.Bounds(e, w.Start, cell)})
	}
	for _, p := range s.Paths() {
		c, ok := geometry.PathCurve(p, s.Epic, w.Start, cell)
		if !ok {
			continue
		}
		sc.curves = append(sc.curves, c)
	}
	if p, ok := s.Intermediate(); ok {
		c := geometry.IntermediateCurve(p, cell)
		sc.intermediate = &c
	}
	return sc
}
