package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/mahisnghrwt/canvas-m-react-2/internal/datemath"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/docs"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/geometry"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/grid"
	"github.com/mahisnghrwt/canvas-m-react-2/internal/placement"
)

func (m appModel) View() string {
	var parts []string
	parts = append(parts, m.viewStatus())
	if m.showHelp {
		body, _ := docs.Get("gestures")
		parts = append(parts, renderMarkdown(body, m.width-2))
	} else {
		parts = append(parts, m.viewScale()...)
		parts = append(parts, m.viewCanvas()...)
	}
	if m.debugOverlay {
		parts = append(parts, m.viewDebug())
	}

	body := normalizePane(strings.Join(parts, "\n"), m.width, 0)
	footer := m.help.View(m.keys)

	// Pin the footer to the last line when there is room.
	used := strings.Count(body, "\n") + 1
	if gap := m.height - used - 1; gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return body + "\n" + footer
}

func (m appModel) viewStatus() string {
	w := m.ctrl.Window()
	s := m.ctrl.State()
	text := fmt.Sprintf(" epiccanvas  %s %s %s  lanes %d  epics %d  paths %d",
		datemath.Format(w.Start), glyphArrow(), datemath.Format(datemath.AddDays(w.End, -1)),
		w.Rows, len(s.Epics()), len(s.Paths()))
	if sess := m.ctrl.Session(); sess.Active() {
		text += "  [" + sess.State.String() + "]"
	}
	if n := m.feed.last; n != nil {
		text += "  " + describeNotification(*n)
	}
	st := styleStatus()
	if m.width > 0 {
		st = st.Width(m.width)
	}
	return st.Render(xansi.Truncate(text, max(m.width, 0), "…"))
}

// viewScale renders the two header lines: month labels above day numbers.
func (m appModel) viewScale() []string {
	w := m.ctrl.Window()
	cw := m.cellWidth()
	area := m.areaWidth()
	months := []rune(strings.Repeat(" ", area))
	days := []rune(strings.Repeat(" ", area))

	for i := 0; i*cw < area; i++ {
		d := m.scroll + i
		if d >= m.window.Days() {
			break
		}
		date := datemath.AddDays(w.Start, d)
		if i == 0 || date.Day() == 1 {
			overlay(months, i*cw, date.Format("Jan 2006"))
		}
		overlay(days, i*cw, fmt.Sprintf("%-*d", cw, date.Day()))
	}

	gutter := strings.Repeat(" ", labelWidth)
	return []string{
		gutter + lipgloss.NewStyle().Bold(true).Render(string(months)),
		gutter + styleMuted().Render(string(days)),
	}
}

type cellKind int

const (
	kindBlank cellKind = iota
	kindGrid
	kindPath
	kindDraft
	kindEpic
)

type rasterCell struct {
	glyph string
	kind  cellKind
	color string
}

// raster draws the visible part of the canvas into a cell buffer: grid ticks
// first, then paths, then epics on top.
func (m appModel) raster() [][]rasterCell {
	cw := m.cellWidth()
	area := m.areaWidth()
	win := m.ctrl.Window()
	cell := m.ctrl.Cell()
	size := m.ctrl.CanvasSize()
	height := int(size.Height)
	offset := m.scroll * cw

	buf := make([][]rasterCell, height)
	for y := range buf {
		buf[y] = make([]rasterCell, area)
		for x := range buf[y] {
			px := offset + x
			switch {
			case float64(px) >= size.Width:
				buf[y][x] = rasterCell{glyph: " "}
			case px%cw == 0:
				buf[y][x] = rasterCell{glyph: glyphGridTick(), kind: kindGrid}
			default:
				buf[y][x] = rasterCell{glyph: " "}
			}
		}
	}

	set := func(px, y int, c rasterCell) {
		x := px - offset
		if y < 0 || y >= height || x < 0 || x >= area {
			return
		}
		if buf[y][x].kind > c.kind {
			return
		}
		buf[y][x] = c
	}
	plot := func(c geometry.Curve, rc rasterCell) {
		n := int(c.ChordLength())*2 + 8
		for _, p := range c.Sample(n) {
			set(int(math.Floor(p.X)), int(math.Floor(p.Y)), rc)
		}
	}

	s := m.ctrl.State()
	for _, p := range s.Paths() {
		if c, ok := geometry.PathCurve(p, s.Epic, win.Start, cell); ok {
			plot(c, rasterCell{glyph: glyphPath(), kind: kindPath})
		}
	}
	if p, ok := s.Intermediate(); ok {
		plot(geometry.IntermediateCurve(p, cell), rasterCell{glyph: glyphDraft(), kind: kindDraft})
	}

	for _, e := range s.Epics() {
		r := placement.Bounds(e, win.Start, cell)
		for y := int(r.Y); y < int(r.Y+r.Height); y++ {
			for px := int(r.X); px < int(r.X+r.Width); px++ {
				centre := grid.Vec{X: float64(px) + 0.5, Y: float64(y) + 0.5}
				set(px, y, rasterCell{
					glyph: epicGlyph(placement.HitZone(e, centre, win.Start, cell)),
					kind:  kindEpic,
					color: e.Color,
				})
			}
		}
	}
	return buf
}

func epicGlyph(z placement.Zone) string {
	switch z {
	case placement.ZoneStartTip:
		return glyphStartTip()
	case placement.ZoneStartHandle:
		return glyphStartHandle()
	case placement.ZoneEndHandle:
		return glyphEndHandle()
	case placement.ZoneEndTip:
		return glyphEndTip()
	default:
		return glyphEpicBody()
	}
}

func (m appModel) viewCanvas() []string {
	buf := m.raster()
	rh := m.rowHeight()
	lines := make([]string, 0, len(buf))
	for y, row := range buf {
		label := strings.Repeat(" ", labelWidth-1)
		if y%rh == 0 {
			label = fmt.Sprintf("%-*s", labelWidth-1, fmt.Sprintf("L%d", y/rh+1))
		}
		lines = append(lines, styleMuted().Render(label+glyphLaneDivider())+renderRow(row))
	}
	return lines
}

// renderRow styles runs of cells that share a kind and color together.
func renderRow(row []rasterCell) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		var run strings.Builder
		for j < len(row) && row[j].kind == row[i].kind && row[j].color == row[i].color {
			run.WriteString(row[j].glyph)
			j++
		}
		b.WriteString(styleFor(row[i]).Render(run.String()))
		i = j
	}
	return b.String()
}

func styleFor(c rasterCell) lipgloss.Style {
	switch c.kind {
	case kindGrid:
		return styleGrid()
	case kindPath:
		return stylePath()
	case kindDraft:
		return styleDraft()
	case kindEpic:
		return styleEpic(c.color)
	default:
		return lipgloss.NewStyle()
	}
}

func (m appModel) viewDebug() string {
	ms := m.lastMouse
	sess := m.ctrl.Session()
	return lipgloss.NewStyle().Foreground(colorWarn).Render(fmt.Sprintf(
		"debug mouse=(%d,%d) %s zone=%s session=%s epic=%d dragging=%v scroll=%d",
		ms.X, ms.Y, ms.String(), m.lastZone, sess.State, sess.EpicID, m.dragging, m.scroll,
	))
}
