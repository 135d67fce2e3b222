// Package tui is the interactive terminal map screen.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/archaeoscan/fieldmap/internal/render"
	"github.com/archaeoscan/fieldmap/internal/session"
	"github.com/archaeoscan/fieldmap/pkg/core"
)

const (
	sidebarWidth = 36
	// status line plus help line
	chromeRows = 2
	// pan step in surface pixels
	panStep = 50
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	dimFg     = lipgloss.Color("#6B7280")
	borderCol = lipgloss.Color("#1e293b")

	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(baseFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(dimFg)
)

// Model is the bubbletea model for the map screen.
type Model struct {
	ctx  context.Context
	sess *session.Session
	log  *slog.Logger

	keys keyMap
	help help.Model

	width  int
	height int
	canvas *render.Cells
	status string
}

// New creates the screen over an existing session.
func New(ctx context.Context, sess *session.Session, log *slog.Logger) Model {
	if log == nil {
		log = slog.Default()
	}
	return Model{
		ctx:    ctx,
		sess:   sess,
		log:    log,
		keys:   defaultKeyMap(),
		help:   help.New(),
		status: "fieldmap ready",
	}
}

// Run starts the program with mouse support on the alternate screen.
func Run(ctx context.Context, sess *session.Session, log *slog.Logger) error {
	p := tea.NewProgram(New(ctx, sess, log), tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) mapSize() (int, int) {
	return max(m.width-sidebarWidth, 1), max(m.height-chromeRows, 1)
}

func (m *Model) redraw() {
	if m.canvas == nil {
		return
	}
	m.sess.Draw(m.ctx, m.canvas)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		cols, rows := m.mapSize()
		m.canvas = render.NewCells(cols, rows)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft || m.canvas == nil {
			return m, nil
		}
		cols, rows := m.mapSize()
		if msg.X >= cols || msg.Y >= rows {
			return m, nil
		}
		x, y := m.canvas.PixelAt(msg.X, msg.Y)
		if obj, ok := m.sess.Click(m.ctx, x, y); ok {
			m.status = fmt.Sprintf("selected %s %s", obj.ID, obj.Name)
		} else {
			m.status = "no object here"
		}
	case tea.KeyMsg:
		ctrl := m.sess.Controller()
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.ZoomIn):
			ctrl.ZoomIn()
			m.status = fmt.Sprintf("zoom: %d", ctrl.State().Zoom)
		case key.Matches(msg, m.keys.ZoomOut):
			ctrl.ZoomOut()
			m.status = fmt.Sprintf("zoom: %d", ctrl.State().Zoom)
		case key.Matches(msg, m.keys.Up):
			ctrl.Pan(0, -panStep)
		case key.Matches(msg, m.keys.Down):
			ctrl.Pan(0, panStep)
		case key.Matches(msg, m.keys.Left):
			ctrl.Pan(-panStep, 0)
		case key.Matches(msg, m.keys.Right):
			ctrl.Pan(panStep, 0)
		case key.Matches(msg, m.keys.Grid):
			ctrl.ToggleGrid()
			m.status = fmt.Sprintf("grid: %v", ctrl.State().ShowGrid)
		case key.Matches(msg, m.keys.Center):
			ctrl.ResetCenter()
			m.status = "recentered"
		case key.Matches(msg, m.keys.Filter):
			m.status = "filter: " + m.sess.NextFilter()
		case key.Matches(msg, m.keys.Layer):
			m.status = "layer: " + string(m.sess.NextLayer())
		case key.Matches(msg, m.keys.Close):
			m.sess.CloseDetail()
			m.status = "detail closed"
		default:
			return m, nil
		}
	default:
		return m, nil
	}
	m.log.Debug("TUI update", "status", m.status)
	m.redraw()
	return m, nil
}

func (m Model) View() string {
	if m.canvas == nil {
		return "loading..."
	}
	_, rows := m.mapSize()
	side := lipgloss.NewStyle().MaxHeight(rows).Render(m.sidebar())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.String(), " ", side)
	status := dimStyle.Render(m.status)
	return lipgloss.JoinVertical(lipgloss.Left, body, status, m.help.View(m.keys))
}

func (m Model) sidebar() string {
	st := m.sess.State()
	op := m.sess.Operator()

	var info strings.Builder
	fmt.Fprintf(&info, "%s\n", titleStyle.Render("Survey map"))
	fmt.Fprintf(&info, "Scale   1:%d\n", m.sess.Scale())
	fmt.Fprintf(&info, "Zoom    %d\n", st.Zoom)
	fmt.Fprintf(&info, "Layer   %s\n", m.sess.Layer())
	fmt.Fprintf(&info, "Filter  %s (%d)\n", m.sess.Filter(), len(m.sess.Visible()))
	fmt.Fprintf(&info, "GPS     %.4f, %.4f\n", op.Position.Lat, op.Position.Lng)
	fmt.Fprintf(&info, "        alt %.1f m ±%.1f m", op.Altitude, op.Accuracy)

	var legend strings.Builder
	legend.WriteString(titleStyle.Render("Legend"))
	for _, t := range core.AllObjectTypes() {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(render.TypeColor(t))).Render("●")
		fmt.Fprintf(&legend, "\n%s %s", dot, t)
	}

	box := boxStyle.Width(sidebarWidth - 4)
	blocks := []string{box.Render(info.String()), box.Render(legend.String())}
	if d, ok := m.sess.Detail(); ok {
		blocks = append(blocks, box.Render(detailView(d)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func detailView(d session.Detail) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Name))
	if d.Description != "" {
		b.WriteString("\n" + dimStyle.Render(d.Description))
	}
	tier := lipgloss.NewStyle().Foreground(lipgloss.Color(render.TierColor(d.Tier)))
	for _, f := range d.Fields() {
		v := f[1]
		if f[0] == "Confidence" {
			v = tier.Render(v)
		}
		fmt.Fprintf(&b, "\n%-11s %s", f[0], v)
	}
	return b.String()
}
