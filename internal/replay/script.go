// Package replay drives a canvas controller from a YAML gesture script, so
// interactions can be reproduced without a terminal.
//
//	window: {start: 2024-01-01, days: 30, rows: 3}
//	cell: {width: 10, height: 10}
//	steps:
//	  - dblclick: {col: 2, row: 0}
//	  - press: {col: 2, row: 0}
//	  - drag: {col: 5, row: 1}
//	  - drop: {col: 5, row: 1}
//	  - cancel
package replay

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

var ErrUnknownStep = errors.New("unknown step")

const (
	DefaultDays       = 30
	DefaultRows       = 3
	DefaultCellWidth  = 10.0
	DefaultCellHeight = 10.0
)

type Op string

const (
	OpDoubleClick Op = "dblclick"
	OpPress       Op = "press"
	OpDrag        Op = "drag"
	OpDrop        Op = "drop"
	OpCancel      Op = "cancel"
)

type WindowSpec struct {
	Start string `yaml:"start"`
	Days  int    `yaml:"days"`
	Rows  int    `yaml:"rows"`
}

type CellSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Target is where a step happens: a raw pixel position, a cell (its centre
// is used) or, for drop only, an epic id.
type Target struct {
	X    *float64 `yaml:"x"`
	Y    *float64 `yaml:"y"`
	Col  *int     `yaml:"col"`
	Row  *int     `yaml:"row"`
	Epic *int     `yaml:"epic"`
}

func (t Target) empty() bool {
	return t.X == nil && t.Y == nil && t.Col == nil && t.Row == nil && t.Epic == nil
}

// Pixel resolves the target to a canvas pixel position.
func (t Target) Pixel(cell grid.Size) (grid.Vec, error) {
	switch {
	case t.X != nil && t.Y != nil:
		return grid.Vec{X: *t.X, Y: *t.Y}, nil
	case t.Col != nil && t.Row != nil:
		return grid.CellCenter(model.Point{X: *t.Col, Y: *t.Row}, cell), nil
	default:
		return grid.Vec{}, fmt.Errorf("target needs {x, y} or {col, row}")
	}
}

type Step struct {
	Op     Op
	Target Target
	// Line is the source line, for error messages.
	Line int
}

// UnmarshalYAML accepts either a bare op name ("cancel") or a single-key
// mapping from op name to target.
func (s *Step) UnmarshalYAML(n *yaml.Node) error {
	s.Line = n.Line
	switch n.Kind {
	case yaml.ScalarNode:
		s.Op = Op(strings.ToLower(strings.TrimSpace(n.Value)))
		return nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return fmt.Errorf("line %d: step must have exactly one op", n.Line)
		}
		s.Op = Op(strings.ToLower(strings.TrimSpace(n.Content[0].Value)))
		v := n.Content[1]
		if v.Kind == yaml.ScalarNode && (v.Tag == "!!null" || v.Value == "") {
			return nil
		}
		if err := v.Decode(&s.Target); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		return nil
	default:
		return fmt.Errorf("line %d: step must be a name or a mapping", n.Line)
	}
}

type Script struct {
	Window WindowSpec `yaml:"window"`
	Cell   CellSpec   `yaml:"cell"`
	// Growth is "overflow" or "fixed"; empty means overflow.
	Growth          string `yaml:"growth"`
	ExtendThreshold *int   `yaml:"extendThreshold"`
	Steps           []Step `yaml:"steps"`
}

func Parse(b []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	s.applyDefaults()
	return &s, nil
}

func Load(path string) (*Script, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func (s *Script) applyDefaults() {
	if s.Window.Days <= 0 {
		s.Window.Days = DefaultDays
	}
	if s.Window.Rows <= 0 {
		s.Window.Rows = DefaultRows
	}
	if s.Cell.Width <= 0 {
		s.Cell.Width = DefaultCellWidth
	}
	if s.Cell.Height <= 0 {
		s.Cell.Height = DefaultCellHeight
	}
	if strings.TrimSpace(s.Window.Start) == "" {
		s.Window.Start = "today"
	}
}

func (s *Script) CellSize() grid.Size {
	return grid.Size{Width: s.Cell.Width, Height: s.Cell.Height}
}
