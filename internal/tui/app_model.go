package tui

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/config"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/controller"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/datemath"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/placement"
)

const (
	// labelWidth is the lane label gutter left of the canvas.
	labelWidth = 5
	// statusLines and scaleLines sit above the canvas.
	statusLines = 1
	scaleLines  = 2
)

type appModel struct {
	ctrl   *controller.Controller
	window *controller.MemoryWindow
	cfg    config.Config
	logger *slog.Logger
	feed   *noteFeed

	width  int
	height int
	// scroll is the first visible day, as an offset from the window start.
	scroll int

	dragging    bool
	lastPress   time.Time
	lastCell    model.Point
	doubleClick time.Duration
	now         func() time.Time

	showHelp bool
	keys     keyMap
	help     help.Model

	debugOverlay bool
	lastMouse    tea.MouseMsg
	lastZone     placement.Zone
}

// noteFeed remembers the latest notification for the status line and
// forwards every notification to next.
type noteFeed struct {
	last *controller.Notification
	next []controller.Notifier
}

func (f *noteFeed) Notify(n controller.Notification) {
	f.last = &n
	for _, nx := range f.next {
		nx.Notify(n)
	}
}

func newAppModel(opts Options) appModel {
	cfg := opts.Config.Resolved()
	if cfg.CellWidth < config.MinCellWidth {
		// Narrower days lose the body or the handles of a one-day epic.
		cfg.CellWidth = config.MinCellWidth
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	start := opts.Start
	if start.IsZero() {
		start = time.Now()
	}
	start = datemath.Normalize(start)

	feed := &noteFeed{next: []controller.Notifier{controller.LogNotifier{Logger: logger}}}
	if opts.Notifier != nil {
		feed.next = append(feed.next, opts.Notifier)
	}

	growth, ok := controller.ParseGrowthMode(cfg.Growth)
	if !ok {
		growth = controller.GrowthOverflow
	}
	threshold := placement.DefaultExtendThreshold
	if cfg.ExtendThreshold != nil {
		threshold = *cfg.ExtendThreshold
	}

	win := controller.NewMemoryWindow(start, cfg.Days, cfg.Rows)
	ctrl := controller.New(win,
		grid.Size{Width: float64(cfg.CellWidth), Height: float64(cfg.RowHeight)},
		controller.WithLogger(logger),
		controller.WithNotifier(feed),
		controller.WithGrowthMode(growth),
		controller.WithExtendThreshold(threshold),
		controller.WithPalette(cfg.Colors),
	)

	m := appModel{
		ctrl:        ctrl,
		window:      win,
		cfg:         cfg,
		logger:      logger,
		feed:        feed,
		width:       80,
		height:      24,
		doubleClick: time.Duration(cfg.DoubleClickMs) * time.Millisecond,
		now:         time.Now,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	if strings.TrimSpace(os.Getenv("EPICCANVAS_DEBUG")) != "" {
		m.debugOverlay = true
	}
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) cellWidth() int { return m.cfg.CellWidth }
func (m appModel) rowHeight() int { return m.cfg.RowHeight }

// canvasTop is the terminal line of the first canvas row.
func (m appModel) canvasTop() int { return statusLines + scaleLines }

// areaWidth is the number of terminal columns available to the canvas.
func (m appModel) areaWidth() int {
	if w := m.width - labelWidth; w > 0 {
		return w
	}
	return 0
}

func (m appModel) maxScroll() int {
	if n := m.window.Days() - 1; n > 0 {
		return n
	}
	return 0
}

// canvasPos maps a terminal cell to a canvas position. Positions are in
// terminal-cell units with the point at the centre of the cell. inside is
// false when the cell is not over a day of the window.
func (m appModel) canvasPos(x, y int) (grid.Vec, bool) {
	cx := x - labelWidth
	cy := y - m.canvasTop()
	size := m.ctrl.CanvasSize()
	pos := grid.Vec{
		X: float64(m.scroll*m.cellWidth()+cx) + 0.5,
		Y: float64(cy) + 0.5,
	}
	inside := cx >= 0 && cy >= 0 && cx < m.areaWidth() &&
		pos.X < size.Width && pos.Y < size.Height
	return pos, inside
}
