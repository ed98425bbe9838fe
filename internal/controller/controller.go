// Package controller turns pointer gestures into canvas transitions.
//
// A host forwards pointer positions (pixels relative to the canvas surface)
// and the controller decides which gesture is in flight, computes the new
// dates or path endpoints and dispatches the transition. All calls are
// expected on one goroutine, in event order.
package controller

import (
	"io"
	"log/slog"
	"time"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/canvas"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/datemath"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/interaction"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/placement"
)

// GrowthMode selects how far the window grows once an epic nears its end.
type GrowthMode string

const (
	// GrowthOverflow grows by exactly enough to clear the threshold again.
	GrowthOverflow GrowthMode = "overflow"
	// GrowthFixed always grows by one day.
	GrowthFixed GrowthMode = "fixed"
)

func ParseGrowthMode(s string) (GrowthMode, bool) {
	switch GrowthMode(s) {
	case GrowthOverflow, "":
		return GrowthOverflow, true
	case GrowthFixed:
		return GrowthFixed, true
	}
	return "", false
}

type Controller struct {
	container *canvas.Container
	machine   *interaction.Machine
	ids       *IDAllocator
	window    WindowOwner
	cell      grid.Size

	threshold int
	growth    GrowthMode
	notifier  Notifier
	logger    *slog.Logger
	palette   []string
	created   int

	// sessionChanged is set once the active move/resize session committed a
	// change, so the drop can emit a single update notification.
	sessionChanged bool
}

type Option func(*Controller)

func WithIDAllocator(a *IDAllocator) Option { return func(c *Controller) { c.ids = a } }
func WithNotifier(n Notifier) Option       { return func(c *Controller) { c.notifier = n } }
func WithLogger(l *slog.Logger) Option      { return func(c *Controller) { c.logger = l } }
func WithGrowthMode(m GrowthMode) Option    { return func(c *Controller) { c.growth = m } }
func WithState(s *canvas.State) Option {
	return func(c *Controller) { c.container = canvas.NewContainer(s) }
}

// WithPalette makes new epics cycle through colors instead of using the
// single default color.
func WithPalette(colors []string) Option {
	return func(c *Controller) { c.palette = append([]string(nil), colors...) }
}

// WithExtendThreshold sets the day gap to the window end that triggers growth.
func WithExtendThreshold(days int) Option {
	return func(c *Controller) {
		if days >= 0 {
			c.threshold = days
		}
	}
}

// New creates a controller for a canvas whose cells are cell pixels large.
func New(window WindowOwner, cell grid.Size, opts ...Option) *Controller {
	c := &Controller{
		machine:   interaction.New(),
		window:    window,
		cell:      cell,
		threshold: placement.DefaultExtendThreshold,
		growth:    GrowthOverflow,
		notifier:  NopNotifier{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.container == nil {
		c.container = canvas.NewContainer(nil)
	}
	if c.ids == nil {
		c.ids = NewIDAllocator(1)
	}
	return c
}

func (c *Controller) State() *canvas.State         { return c.container.State() }
func (c *Controller) Container() *canvas.Container { return c.container }
func (c *Controller) Session() interaction.Session { return c.machine.Session() }
func (c *Controller) Cell() grid.Size              { return c.cell }
func (c *Controller) Window() model.Window         { return c.window.Window() }
func (c *Controller) Extent() grid.Extent          { return grid.WindowExtent(c.window.Window()) }
func (c *Controller) CanvasSize() grid.Size        { return grid.CanvasSize(c.Extent(), c.cell) }

// Observe registers fn to run after every transition that changed the state.
func (c *Controller) Observe(fn func(prev, next *canvas.State, a canvas.Action)) {
	c.container.Observe(fn)
}

func (c *Controller) dispatch(a canvas.Action) *canvas.State {
	c.logger.Debug("dispatch", "action", a.Kind())
	return c.container.Dispatch(a)
}

// cellAt maps a pixel position to its grid cell and that column's date. It
// reports false for positions outside the window's extent; growth past the
// right edge comes from the extend threshold, not from the pointer.
func (c *Controller) cellAt(pos grid.Vec) (model.Point, time.Time, bool) {
	w := c.window.Window()
	ext := grid.WindowExtent(w)
	p := grid.PixelToGrid(pos, grid.CanvasSize(ext, c.cell), ext)
	if !ext.Contains(p) {
		return p, time.Time{}, false
	}
	d, ok := grid.ColumnToDate(w.Start, p.X)
	return p, d, ok
}

// EpicAt returns the epic under pos. When epics overlap the most recently
// created one wins.
func (c *Controller) EpicAt(pos grid.Vec) (model.Epic, bool) {
	start := c.window.Window().Start
	epics := c.State().Epics()
	for i := len(epics) - 1; i >= 0; i-- {
		if placement.Bounds(epics[i], start, c.cell).Contains(pos) {
			return epics[i], true
		}
	}
	return model.Epic{}, false
}

// ZoneAt returns the epic under pos and which part of it is hit.
func (c *Controller) ZoneAt(pos grid.Vec) (model.Epic, placement.Zone) {
	e, ok := c.EpicAt(pos)
	if !ok {
		return model.Epic{}, placement.ZoneNone
	}
	return e, placement.HitZone(e, pos, c.window.Window().Start, c.cell)
}

// DoubleActivate creates a one-day epic under pos when pos is on empty
// canvas surface.
func (c *Controller) DoubleActivate(pos grid.Vec) (model.Epic, bool) {
	if _, hit := c.EpicAt(pos); hit {
		return model.Epic{}, false
	}
	w := c.window.Window()
	ext := grid.WindowExtent(w)
	if !ext.Contains(grid.PixelToGrid(pos, grid.CanvasSize(ext, c.cell), ext)) {
		return model.Epic{}, false
	}
	e, ok := placement.CreateEpic(pos, w.Start, grid.CanvasSize(ext, c.cell), ext)
	if !ok {
		c.logger.Debug("create rejected: date mapping failed", "x", pos.X, "y", pos.Y)
		return model.Epic{}, false
	}
	e.ID = c.ids.Next()
	if len(c.palette) > 0 {
		e.Color = c.palette[c.created%len(c.palette)]
	}
	c.created++
	c.dispatch(canvas.AddEpic{Epic: e})

	n := newNotification(EpicCreated)
	n.Epic = &e
	c.notifier.Notify(n)
	return e, true
}

// PointerDown starts the gesture implied by the part of the epic under pos.
// It returns ZoneNone, and starts nothing, on empty surface.
func (c *Controller) PointerDown(pos grid.Vec) placement.Zone {
	e, zone := c.ZoneAt(pos)
	switch zone {
	case placement.ZoneStartTip:
		c.BeginDrawPath(e.ID, model.EndpointHead)
	case placement.ZoneEndTip:
		c.BeginDrawPath(e.ID, model.EndpointTail)
	case placement.ZoneStartHandle:
		c.BeginResize(e.ID, model.FaceStart)
	case placement.ZoneEndHandle:
		c.BeginResize(e.ID, model.FaceEnd)
	case placement.ZoneBody:
		c.BeginMove(e.ID)
	}
	return zone
}

func (c *Controller) BeginMove(epicID int) bool {
	if _, ok := c.State().Epic(epicID); !ok {
		return false
	}
	c.startSession()
	c.machine.BeginMove(epicID)
	return true
}

func (c *Controller) BeginResize(epicID int, face model.Face) bool {
	if _, ok := c.State().Epic(epicID); !ok {
		return false
	}
	c.startSession()
	c.machine.BeginResize(epicID, face)
	return true
}

// BeginDrawPath starts a dependency path from one tip of the origin epic.
// The in-progress path starts with both ends on the tip.
func (c *Controller) BeginDrawPath(originEpicID int, raw model.Endpoint) bool {
	origin, ok := c.State().Epic(originEpicID)
	if !ok {
		return false
	}
	ref := origin.EndDate
	if raw == model.EndpointHead {
		ref = origin.StartDate
	}
	anchor := model.Point{
		X: grid.DateToColumn(ref, c.window.Window().Start),
		Y: origin.Row,
	}

	c.startSession()
	c.machine.BeginDrawPath(originEpicID, raw)
	c.dispatch(canvas.CreateIntermediatePath{Path: model.IntermediatePath{
		ID:           c.ids.Next(),
		OriginEpicID: originEpicID,
		RawEndpoint:  raw,
		Head:         anchor,
		Tail:         anchor,
	}})
	return true
}

func (c *Controller) startSession() {
	if c.machine.Active() {
		// A new gesture replaces the old one; an abandoned path draw must not
		// leave its in-progress path behind.
		c.finishSession(c.machine.End(), 0, false)
	}
	c.sessionChanged = false
}

// DragOver routes a pointer move to the active gesture. It is ignored when
// no gesture is in flight.
func (c *Controller) DragOver(pos grid.Vec) {
	s := c.machine.Session()
	if !s.Active() {
		return
	}
	cell, date, ok := c.cellAt(pos)
	if !ok {
		c.logger.Debug("drag outside canvas ignored", "x", pos.X, "y", pos.Y, "col", cell.X, "row", cell.Y)
		return
	}
	switch s.State {
	case interaction.DrawingPath:
		c.drawPath(cell)
	case interaction.MovingEpic:
		c.moveEpic(s.EpicID, date)
	case interaction.ResizingEpic:
		c.resizeEpic(s.EpicID, s.Face, date)
	}
}

func (c *Controller) drawPath(cell model.Point) {
	p, ok := c.State().Intermediate()
	if !ok {
		return
	}
	if p.Free().X == cell.X {
		return
	}
	c.dispatch(canvas.PatchIntermediatePath{Endpoint: p.RawEndpoint, Value: cell})
}

func (c *Controller) moveEpic(epicID int, target time.Time) {
	e, ok := c.State().Epic(epicID)
	if !ok {
		return
	}
	if datemath.SameDay(target, e.StartDate) {
		return
	}
	span := placement.MoveEpic(e, target)
	c.growFor(span.EndDate)
	c.dispatch(canvas.UpdateEpic{ID: epicID, Patch: model.EpicPatch{
		StartDate: &span.StartDate,
		EndDate:   &span.EndDate,
	}})
	c.sessionChanged = true
}

// resizeEpic moves one face to the pointer's column. For the end face the
// column under the pointer becomes the last day covered, so the exclusive
// end date is the following day.
func (c *Controller) resizeEpic(epicID int, face model.Face, column time.Time) {
	e, ok := c.State().Epic(epicID)
	if !ok {
		return
	}
	target := column
	if face == model.FaceEnd {
		target = datemath.AddDays(column, 1)
	}
	if !placement.CanResize(e, face, target) {
		lo, hi := placement.ResizeBounds(e, face)
		c.logger.Debug("resize rejected", "epic_id", epicID, "face", string(face),
			"target", datemath.Format(target), "min", boundString(lo), "max", boundString(hi))
		return
	}
	span := placement.ResizeEpic(e, face, target)
	if span.StartDate.Equal(e.StartDate) && span.EndDate.Equal(e.EndDate) {
		return
	}
	c.growFor(target)

	var patch model.EpicPatch
	if face == model.FaceStart {
		patch.StartDate = &span.StartDate
	} else {
		patch.EndDate = &span.EndDate
	}
	c.dispatch(canvas.UpdateEpic{ID: epicID, Patch: patch})
	c.sessionChanged = true
}

func boundString(t time.Time) string {
	if t.IsZero() {
		return "none"
	}
	return datemath.Format(t)
}

// growFor asks the window owner for more days when candidate is near or past
// the window end. The request goes out before the caller commits its update.
func (c *Controller) growFor(candidate time.Time) {
	w := c.window.Window()
	if !placement.ShouldExtendWindow(candidate, w.End, c.threshold) {
		return
	}
	n := 1
	if c.growth == GrowthOverflow {
		n = placement.GrowthFor(candidate, w.End, c.threshold)
	}
	c.logger.Debug("window growth requested", "days", n, "candidate", datemath.Format(candidate), "window_end", datemath.Format(w.End))
	c.window.RequestWindowGrowth(n)
}

// Drop ends the gesture with the pointer at pos. A path draw dropped on an
// epic other than its origin is committed; otherwise it is discarded.
func (c *Controller) Drop(pos grid.Vec) {
	target, ok := c.EpicAt(pos)
	c.finishSession(c.machine.End(), target.ID, ok)
}

// DropOn ends the gesture over a known epic. Hosts that resolve drop
// targets themselves use this instead of Drop.
func (c *Controller) DropOn(targetEpicID int) {
	_, ok := c.State().Epic(targetEpicID)
	c.finishSession(c.machine.End(), targetEpicID, ok)
}

// Cancel ends the gesture without a target. Changes already committed by a
// move or resize stay committed.
func (c *Controller) Cancel() {
	c.finishSession(c.machine.End(), 0, false)
}

func (c *Controller) finishSession(s interaction.Session, targetID int, hasTarget bool) {
	switch s.State {
	case interaction.DrawingPath:
		c.finalisePath(targetID, hasTarget)
	case interaction.MovingEpic, interaction.ResizingEpic:
		if c.sessionChanged {
			if e, ok := c.State().Epic(s.EpicID); ok {
				n := newNotification(EpicUpdated)
				n.Epic = &e
				c.notifier.Notify(n)
			}
		}
	}
	c.sessionChanged = false
}

// finalisePath commits the in-progress path onto targetID, or discards it
// when there is no target or the target is the origin. The committed path
// keeps the in-progress path's id; no new id is allocated at commit.
func (c *Controller) finalisePath(targetID int, hasTarget bool) {
	p, ok := c.State().Intermediate()
	if !ok {
		return
	}
	if !hasTarget || targetID == p.OriginEpicID {
		c.dispatch(canvas.RemoveIntermediatePath{})
		return
	}

	// The tip the drag started from decides direction: from a start tip
	// the target is the predecessor, from an end tip the successor.
	path := model.Path{ID: p.ID, From: p.OriginEpicID, To: targetID}
	if p.RawEndpoint == model.EndpointHead {
		path.From, path.To = targetID, p.OriginEpicID
	}
	c.dispatch(canvas.CreateNewPath{Path: path})

	n := newNotification(PathCreated)
	n.Path = &path
	c.notifier.Notify(n)
}
