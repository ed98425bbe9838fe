// Package render draws a canvas state for consumers outside the terminal:
// a JSON/EDN friendly snapshot, SVG and PNG. Rendering only reads state.
package render

import (
	"github.com/mahisnghrwt/canvas-m-react-2/internal/canvas"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/datemath"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

type WindowView struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int    `json:"days"`
	Rows      int    `json:"rows"`
}

type EpicView struct {
	ID        int    `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int    `json:"days"`
	Row       int    `json:"row"`
	Color     string `json:"color"`
}

type PathView struct {
	ID   int `json:"id"`
	From int `json:"from"`
	To   int `json:"to"`
	// Dangling is set when either end no longer resolves to an epic.
	Dangling bool `json:"dangling,omitempty"`
}

type Snapshot struct {
	Window       WindowView              `json:"window"`
	Epics        []EpicView              `json:"epics"`
	Paths        []PathView              `json:"paths"`
	Intermediate *model.IntermediatePath `json:"intermediatePath,omitempty"`
}

func NewSnapshot(s *canvas.State, w model.Window) Snapshot {
	out := Snapshot{
		Window: WindowView{
			StartDate: datemath.Format(w.Start),
			EndDate:   datemath.Format(w.End),
			Days:      datemath.DayDifference(w.End, w.Start),
			Rows:      w.Rows,
		},
		Epics: []EpicView{},
		Paths: []PathView{},
	}
	for _, e := range s.Epics() {
		out.Epics = append(out.Epics, EpicView{
			ID:        e.ID,
			StartDate: datemath.Format(e.StartDate),
			EndDate:   datemath.Format(e.EndDate),
			Days:      datemath.DayDifference(e.EndDate, e.StartDate),
			Row:       e.Row,
			Color:     e.Color,
		})
	}
	for _, p := range s.Paths() {
		_, fromOK := s.Epic(p.From)
		_, toOK := s.Epic(p.To)
		out.Paths = append(out.Paths, PathView{ID: p.ID, From: p.From, To: p.To, Dangling: !fromOK || !toOK})
	}
	if p, ok := s.Intermediate(); ok {
		out.Intermediate = &p
	}
	return out
}
