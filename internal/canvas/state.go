// Package canvas is the committed state of the canvas: epics, paths and the
// single in-progress path. State values are immutable snapshots; every
// change goes through Reduce, which returns a new snapshot (or the same one
// when nothing changed).
package canvas

import (
	"fmt"
	"sort"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

type State struct {
	epics        map[int]model.Epic
	paths        map[int]model.Path
	intermediate *model.IntermediatePath
}

// Empty returns a state with no epics, no paths and no intermediate path.
func Empty() *State {
	return &State{
		epics: map[int]model.Epic{},
		paths: map[int]model.Path{},
	}
}

func (s *State) Epic(id int) (model.Epic, bool) {
	e, ok := s.epics[id]
	return e, ok
}

// Epics returns all epics ordered by id.
func (s *State) Epics() []model.Epic {
	out := make([]model.Epic, 0, len(s.epics))
	for _, e := range s.epics {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *State) Path(id int) (model.Path, bool) {
	p, ok := s.paths[id]
	return p, ok
}

// Paths returns all committed paths ordered by id.
func (s *State) Paths() []model.Path {
	out := make([]model.Path, 0, len(s.paths))
	for _, p := range s.paths {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *State) Intermediate() (model.IntermediatePath, bool) {
	if s.intermediate == nil {
		return model.IntermediatePath{}, false
	}
	return *s.intermediate, true
}

// Equal reports structural equality of two snapshots.
func (s *State) Equal(o *State) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if len(s.epics) != len(o.epics) || len(s.paths) != len(o.paths) {
		return false
	}
	for id, e := range s.epics {
		oe, ok := o.epics[id]
		if !ok || !epicEqual(e, oe) {
			return false
		}
	}
	for id, p := range s.paths {
		if o.paths[id] != p {
			return false
		}
	}
	switch {
	case s.intermediate == nil && o.intermediate == nil:
		return true
	case s.intermediate == nil || o.intermediate == nil:
		return false
	default:
		return *s.intermediate == *o.intermediate
	}
}

func epicEqual(a, b model.Epic) bool {
	return a.ID == b.ID && a.Row == b.Row && a.Color == b.Color &&
		a.StartDate.Equal(b.StartDate) && a.EndDate.Equal(b.EndDate)
}

func (s *State) withEpic(e model.Epic) *State {
	epics := make(map[int]model.Epic, len(s.epics)+1)
	for id, v := range s.epics {
		epics[id] = v
	}
	epics[e.ID] = e
	return &State{epics: epics, paths: s.paths, intermediate: s.intermediate}
}

func (s *State) withIntermediate(p *model.IntermediatePath) *State {
	return &State{epics: s.epics, paths: s.paths, intermediate: p}
}

func (s *State) withPath(p model.Path) *State {
	paths := make(map[int]model.Path, len(s.paths)+1)
	for id, v := range s.paths {
		paths[id] = v
	}
	paths[p.ID] = p
	return &State{epics: s.epics, paths: paths, intermediate: s.intermediate}
}

// Reduce applies one action. Preconditions that do not hold (unknown epic,
// no intermediate path, an epic whose dates would invert) leave the state
// untouched and return the same pointer. An action of unknown kind is a
// programming error and panics.
func Reduce(s *State, a Action) *State {
	switch a := a.(type) {
	case AddEpic:
		if !a.Epic.Valid() {
			return s
		}
		return s.withEpic(a.Epic)

	case UpdateEpic:
		cur, ok := s.epics[a.ID]
		if !ok {
			return s
		}
		next := a.Patch.Apply(cur)
		next.ID = cur.ID
		if !next.Valid() || epicEqual(cur, next) {
			return s
		}
		return s.withEpic(next)

	case CreateIntermediatePath:
		p := a.Path
		return s.withIntermediate(&p)

	case PatchIntermediatePath:
		if s.intermediate == nil {
			return s
		}
		p := *s.intermediate
		switch a.Endpoint {
		case model.EndpointHead:
			p.Head = a.Value
		case model.EndpointTail:
			p.Tail = a.Value
		default:
			panic(fmt.Sprintf("canvas: unknown endpoint %q", a.Endpoint))
		}
		if p == *s.intermediate {
			return s
		}
		return s.withIntermediate(&p)

	case RemoveIntermediatePath:
		if s.intermediate == nil {
			return s
		}
		return s.withIntermediate(nil)

	case CreateNewPath:
		// Both effects land in one snapshot.
		return s.withPath(a.Path).withIntermediate(nil)

	default:
		panic(fmt.Sprintf("canvas: unknown action %T", a))
	}
}
