package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/model"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/placement"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Cancel):
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		m.cancelGesture()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.AddRow):
		m.window.AddRow()
		m.logger.Debug("lane added", "rows", m.window.Window().Rows)

	case key.Matches(msg, m.keys.Left):
		m.scrollBy(-1)

	case key.Matches(msg, m.keys.Right):
		m.scrollBy(1)
	}
	return m, nil
}

func (m *appModel) scrollBy(days int) {
	m.scroll += days
	if m.scroll < 0 {
		m.scroll = 0
	}
	if hi := m.maxScroll(); m.scroll > hi {
		m.scroll = hi
	}
}

func (m *appModel) cancelGesture() {
	if !m.dragging && !m.ctrl.Session().Active() {
		return
	}
	m.dragging = false
	m.ctrl.Cancel()
	m.logger.Debug("gesture cancelled")
}

// handleMouse turns raw mouse events into controller gestures: a left press
// starts one, motion with the button held drags, and the release drops.
// Releasing outside the canvas cancels.
func (m *appModel) handleMouse(msg tea.MouseMsg) {
	m.lastMouse = msg
	if m.showHelp {
		return
	}
	pos, inside := m.canvasPos(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		m.scrollBy(-1)
		return
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		m.scrollBy(1)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return
		}
		m.press(pos)

	case tea.MouseActionMotion:
		if !m.dragging || !inside {
			return
		}
		m.ctrl.DragOver(pos)

	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		m.dragging = false
		if inside {
			m.ctrl.Drop(pos)
		} else {
			m.ctrl.Cancel()
			m.logger.Debug("released outside canvas", "x", msg.X, "y", msg.Y)
		}
	}
}

func (m *appModel) press(pos grid.Vec) {
	now := m.now()
	cell := model.Point{
		X: int(pos.X) / m.cellWidth(),
		Y: int(pos.Y) / m.rowHeight(),
	}

	if !m.lastPress.IsZero() && cell == m.lastCell && now.Sub(m.lastPress) <= m.doubleClick {
		// A third press starts a new click sequence.
		m.lastPress = time.Time{}
		if e, ok := m.ctrl.DoubleActivate(pos); ok {
			m.logger.Debug("epic created", "epic_id", e.ID, "col", cell.X, "row", cell.Y)
			return
		}
	} else {
		m.lastPress = now
		m.lastCell = cell
	}

	m.lastZone = m.ctrl.PointerDown(pos)
	m.dragging = m.lastZone != placement.ZoneNone
}
