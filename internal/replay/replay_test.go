package replay

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/controller"
)

const fullScript = `
window: {start: 2024-01-01, days: 10, rows: 2}
cell: {width: 10, height: 10}
steps:
  - dblclick: {col: 1, row: 0}
  - dblclick: {col: 5, row: 1}
  - press: {x: 19, y: 5}
  - drag: {col: 5, row: 1}
  - drop: {col: 5, row: 1}
  - press: {x: 55, y: 15}
  - drag: {col: 9, row: 1}
  - drop: {col: 9, row: 1}
`

func TestRun_FullSession(t *testing.T) {
	s, err := Parse([]byte(fullScript))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := s.Run(Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if n := len(res.State.Epics()); n != 2 {
		t.Fatalf("epics = %d", n)
	}
	paths := res.State.Paths()
	if len(paths) != 1 || paths[0].ID != 3 || paths[0].From != 1 || paths[0].To != 2 {
		t.Fatalf("paths = %+v", paths)
	}
	if _, ok := res.State.Intermediate(); ok {
		t.Fatalf("intermediate path left behind")
	}

	moved, _ := res.State.Epic(2)
	if got := moved.StartDate.Format("2006-01-02"); got != "2024-01-10" {
		t.Fatalf("moved start = %s", got)
	}
	// Moving the epic flush against the window end grows it by two days.
	if got := res.Window.End.Format("2006-01-02"); got != "2024-01-13" {
		t.Fatalf("window end = %s", got)
	}

	kinds := make([]string, 0, len(res.Notifications))
	for _, n := range res.Notifications {
		kinds = append(kinds, string(n.Kind))
	}
	want := "epic.created,epic.created,path.created,epic.updated"
	if strings.Join(kinds, ",") != want {
		t.Fatalf("notifications = %v, want %s", kinds, want)
	}

	if len(res.Trace) != 8 {
		t.Fatalf("trace length = %d", len(res.Trace))
	}
	if res.Trace[2].Zone != "end-tip" || res.Trace[2].Session != "DRAWING_PATH" {
		t.Fatalf("press trace = %+v", res.Trace[2])
	}
	if res.Trace[5].Zone != "body" {
		t.Fatalf("body press trace = %+v", res.Trace[5])
	}
	if res.Trace[7].Session != "IDLE" {
		t.Fatalf("drop should end session: %+v", res.Trace[7])
	}
}

func TestRun_UnknownStep(t *testing.T) {
	s, err := Parse([]byte("window: {start: 2024-01-01}\nsteps:\n  - cancel\n  - jump: {col: 1, row: 1}\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = s.Run(Options{})
	if !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
	if !strings.Contains(err.Error(), "step 2") {
		t.Fatalf("error should name the step: %v", err)
	}
}

func TestRun_MissingTarget(t *testing.T) {
	s, err := Parse([]byte("window: {start: 2024-01-01}\nsteps:\n  - press: {col: 1}\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := s.Run(Options{}); err == nil {
		t.Fatalf("expected error for incomplete target")
	}
}

func TestRun_DropOnEpicAndBareDrop(t *testing.T) {
	script := `
window: {start: 2024-01-01, days: 10, rows: 1}
steps:
  - dblclick: {col: 0, row: 0}
  - dblclick: {col: 4, row: 0}
  - press: {x: 1, y: 5}
  - drag: {col: 2, row: 0}
  - drop:
  - press: {x: 1, y: 5}
  - drop: {epic: 2}
`
	s, err := Parse([]byte(script))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := s.Run(Options{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	paths := res.State.Paths()
	// Drawn from epic 1's start tip, so epic 2 is the predecessor.
	if len(paths) != 1 || paths[0].From != 2 || paths[0].To != 1 {
		t.Fatalf("paths = %+v", paths)
	}
	if res.Trace[4].Changed != true {
		t.Fatalf("bare drop should discard the intermediate path")
	}
}

func TestRun_DefaultsAndToday(t *testing.T) {
	s, err := Parse([]byte("steps: []\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	now := time.Date(2025, 3, 4, 15, 0, 0, 0, time.UTC)
	res, err := s.Run(Options{Now: now})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := res.Window.Start.Format("2006-01-02"); got != "2025-03-04" {
		t.Fatalf("start = %s", got)
	}
	if res.Window.Rows != DefaultRows || res.Cell.Width != DefaultCellWidth {
		t.Fatalf("defaults not applied: %+v %+v", res.Window, res.Cell)
	}
}

func TestRun_FixedGrowthAndPalette(t *testing.T) {
	script := `
window: {start: 2024-01-01, days: 4, rows: 1}
growth: fixed
steps:
  - dblclick: {col: 0, row: 0}
  - press: {x: 5, y: 5}
  - drag: {col: 3, row: 0}
  - drop: {col: 3, row: 0}
`
	s, err := Parse([]byte(script))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	res, err := s.Run(Options{Palette: []string{"#abcdef"}})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := res.Window.End.Format("2006-01-02"); got != "2024-01-06" {
		t.Fatalf("window end = %s", got)
	}
	e, _ := res.State.Epic(1)
	if e.Color != "#abcdef" {
		t.Fatalf("color = %q", e.Color)
	}
	if res.Notifications[len(res.Notifications)-1].Kind != controller.EpicUpdated {
		t.Fatalf("last notification = %+v", res.Notifications)
	}
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "s.yaml")
	if err := os.WriteFile(p, []byte("window: {start: 2024-02-01, rows: 4}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Window.Rows != 4 || s.Window.Days != DefaultDays || s.Window.Start != "2024-02-01" {
		t.Fatalf("script = %+v", s.Window)
	}
}

func TestParse_StepWithTwoOps(t *testing.T) {
	if _, err := Parse([]byte("steps:\n  - {press: {col: 1, row: 0}, drop: {col: 1, row: 0}}\n")); err == nil {
		t.Fatalf("expected error")
	}
}
