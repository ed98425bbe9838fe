package model

import "time"

type Face string

const (
	FaceStart Face = "START"
	FaceEnd   Face = "END"
)

// Endpoint tags which end of an in-progress path follows the pointer.
// HEAD is the start-side end, TAIL the end-side end.
type Endpoint string

const (
	EndpointHead Endpoint = "HEAD"
	EndpointTail Endpoint = "TAIL"
)

// Point is a grid position: X is a day column relative to the window start,
// Y is a lane row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Epic struct {
	ID        int       `json:"id"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Row       int       `json:"row"`
	Color     string    `json:"color"`
}

// Valid reports whether the epic spans at least one day and sits on a lane.
func (e Epic) Valid() bool {
	return e.StartDate.Before(e.EndDate) && e.Row >= 0
}

// EpicPatch carries the fields of an update. Nil fields are left untouched.
type EpicPatch struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Row       *int       `json:"row,omitempty"`
	Color     *string    `json:"color,omitempty"`
}

// Apply returns e with the non-nil patch fields merged in.
func (p EpicPatch) Apply(e Epic) Epic {
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		e.EndDate = *p.EndDate
	}
	if p.Row != nil {
		e.Row = *p.Row
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	return e
}

// Path is a committed dependency: From must finish before To starts.
type Path struct {
	ID   int `json:"id"`
	From int `json:"from"`
	To   int `json:"to"`
}

type IntermediatePath struct {
	ID           int      `json:"id"`
	OriginEpicID int      `json:"originEpicId"`
	RawEndpoint  Endpoint `json:"rawEndpoint"`
	Head         Point    `json:"head"`
	Tail         Point    `json:"tail"`
}

// Free returns the endpoint currently following the pointer.
func (p IntermediatePath) Free() Point {
	if p.RawEndpoint == EndpointHead {
		return p.Head
	}
	return p.Tail
}

// Window is the visible calendar range [Start, End) and its lane count.
type Window struct {
	Start time.Time `json:"startDate"`
	End   time.Time `json:"endDate"`
	Rows  int       `json:"numberOfRows"`
}
