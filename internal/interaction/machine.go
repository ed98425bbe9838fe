// Package interaction tracks the single drag gesture in flight on a canvas.
//
// A gesture start always replaces the previous session wholesale and a
// gesture end always returns the machine to Idle, whether or not the
// gesture changed anything.
package interaction

import (
	"fmt"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

type State int

const (
	Idle State = iota
	DrawingPath
	MovingEpic
	ResizingEpic
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case DrawingPath:
		return "DRAWING_PATH"
	case MovingEpic:
		return "MOVING_EPIC"
	case ResizingEpic:
		return "RESIZING_EPIC"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is the drag payload. Only the fields relevant to State are set.
type Session struct {
	State       State          `json:"state"`
	EpicID      int            `json:"epicId,omitempty"`
	Face        model.Face     `json:"face,omitempty"`
	RawEndpoint model.Endpoint `json:"rawEndpoint,omitempty"`
}

func (s Session) Active() bool { return s.State != Idle }

type Machine struct {
	session Session
}

func New() *Machine { return &Machine{} }

func (m *Machine) Session() Session { return m.session }
func (m *Machine) State() State     { return m.session.State }
func (m *Machine) Active() bool     { return m.session.Active() }

func (m *Machine) BeginMove(epicID int) {
	m.session = Session{State: MovingEpic, EpicID: epicID}
}

func (m *Machine) BeginResize(epicID int, face model.Face) {
	m.session = Session{State: ResizingEpic, EpicID: epicID, Face: face}
}

// BeginDrawPath starts a path from the origin epic. A start-side tip frees
// the HEAD endpoint, an end-side tip the TAIL.
func (m *Machine) BeginDrawPath(originEpicID int, raw model.Endpoint) {
	m.session = Session{State: DrawingPath, EpicID: originEpicID, RawEndpoint: raw}
}

// End clears the session and returns the one that was active.
func (m *Machine) End() Session {
	s := m.session
	m.session = Session{}
	return s
}
