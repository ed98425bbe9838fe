package replay

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/canvas"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/controller"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/datemath"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
)

// TraceEntry records what one step did.
type TraceEntry struct {
	Step    int    `json:"step"`
	Op      Op     `json:"op"`
	Zone    string `json:"zone,omitempty"`
	Session string `json:"session"`
	Changed bool   `json:"changed"`
}

type Result struct {
	State         *canvas.State             `json:"-"`
	Window        model.Window              `json:"-"`
	Cell          grid.Size                 `json:"-"`
	Notifications []controller.Notification `json:"notifications"`
	Trace         []TraceEntry              `json:"trace"`
}

type Options struct {
	Logger *slog.Logger
	// Now resolves a "today" window start. Zero means time.Now.
	Now time.Time
	// Palette, when set, is cycled through by created epics.
	Palette []string
}

// Run plays the script against a fresh canvas. It stops at the first step it
// cannot interpret.
func (s *Script) Run(opts Options) (*Result, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	start, err := datemath.ParseDate(s.Window.Start, now)
	if err != nil {
		return nil, fmt.Errorf("window start: %w", err)
	}

	mode := controller.GrowthOverflow
	if s.Growth != "" {
		m, ok := controller.ParseGrowthMode(s.Growth)
		if !ok {
			return nil, fmt.Errorf("unknown growth mode %q", s.Growth)
		}
		mode = m
	}

	win := controller.NewMemoryWindow(start, s.Window.Days, s.Window.Rows)
	rec := &controller.RecordingNotifier{}
	cell := s.CellSize()
	copts := []controller.Option{
		controller.WithNotifier(rec),
		controller.WithGrowthMode(mode),
	}
	if opts.Logger != nil {
		copts = append(copts, controller.WithLogger(opts.Logger))
	}
	if s.ExtendThreshold != nil {
		copts = append(copts, controller.WithExtendThreshold(*s.ExtendThreshold))
	}
	if len(opts.Palette) > 0 {
		copts = append(copts, controller.WithPalette(opts.Palette))
	}
	c := controller.New(win, cell, copts...)

	res := &Result{Cell: cell}
	for i, st := range s.Steps {
		before := c.State()
		entry := TraceEntry{Step: i + 1, Op: st.Op}
		if err := apply(c, st, cell, &entry); err != nil {
			return nil, fmt.Errorf("step %d (line %d): %w", i+1, st.Line, err)
		}
		entry.Session = c.Session().State.String()
		entry.Changed = c.State() != before
		res.Trace = append(res.Trace, entry)
	}
	res.State = c.State()
	res.Window = win.Window()
	res.Notifications = rec.Got
	return res, nil
}

func apply(c *controller.Controller, st Step, cell grid.Size, entry *TraceEntry) error {
	switch st.Op {
	case OpCancel:
		c.Cancel()
		return nil
	case OpDrop:
		if st.Target.Epic != nil {
			c.DropOn(*st.Target.Epic)
			return nil
		}
		if st.Target.empty() {
			c.Cancel()
			return nil
		}
	case OpDoubleClick, OpPress, OpDrag:
	default:
		return fmt.Errorf("%w %q", ErrUnknownStep, st.Op)
	}

	pos, err := st.Target.Pixel(cell)
	if err != nil {
		return err
	}
	switch st.Op {
	case OpDoubleClick:
		c.DoubleActivate(pos)
	case OpPress:
		entry.Zone = c.PointerDown(pos).String()
	case OpDrag:
		c.DragOver(pos)
	case OpDrop:
		c.Drop(pos)
	}
	return nil
}
