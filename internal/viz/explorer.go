package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/gallery"
	"github.com/san-kum/mandelscope/internal/metrics"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/render"
)

const (
	zoomStep  = 1.5
	panFrac   = 10 // pan by 1/10 of the view per keypress
	iterStep  = 50
	frameRate = 30
)

type TickMsg time.Time

type frameMsg struct {
	frame *fractal.Bitmap
	err   error
}

type savedMsg struct {
	id  string
	err error
}

// Model is the explorer's bubbletea state.
type Model struct {
	renderer *render.Renderer
	pal      *palette.Engine
	shots    *gallery.Store

	coverage   *metrics.SetCoverage
	renderTime *metrics.RenderTime

	frame    *fractal.Bitmap
	busy     bool
	pending  bool
	animate  bool
	showHelp bool
	status   string

	cols, rows int
}

// NewModel wires the explorer. galleryDir may be empty to disable
// snapshots.
func NewModel(r *render.Renderer, pal *palette.Engine, galleryDir string) Model {
	m := Model{
		renderer:   r,
		pal:        pal,
		coverage:   metrics.NewSetCoverage(),
		renderTime: metrics.NewRenderTime(),
		animate:    true,
	}
	r.AddObserver(m.coverage)
	r.AddObserver(m.renderTime)
	if galleryDir != "" {
		m.shots = gallery.New(galleryDir)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.renderCmd(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// renderCmd computes and colors the current frame off the update loop.
// The renderer's own locking keeps this safe even if two commands
// overlap during a resize.
func (m Model) renderCmd() tea.Cmd {
	r, pal := m.renderer, m.pal
	return func() tea.Msg {
		bm, err := r.Render(pal)
		return frameMsg{frame: bm, err: err}
	}
}

// requestRender starts a render unless one is already in flight, in
// which case the request collapses into the pending flag.
func (m *Model) requestRender() tea.Cmd {
	if m.busy {
		m.pending = true
		return nil
	}
	m.busy = true
	return m.renderCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height - 3 // status and help chrome
		if m.rows < 1 {
			m.rows = 1
		}
		if err := m.renderer.Resize(m.cols, m.rows*2); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.requestRender()

	case frameMsg:
		m.busy = false
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.frame = msg.frame
		if m.pending {
			m.pending = false
			m.busy = true
			return m, m.renderCmd()
		}
		return m, nil

	case TickMsg:
		var cmd tea.Cmd
		if m.animate && !m.busy {
			m.busy = true
			cmd = m.renderCmd()
		}
		return m, tea.Batch(tick(), cmd)

	case savedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.status = "saved " + msg.id
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.renderer.Viewport()
	panX := view.Width / panFrac
	panY := view.Height / panFrac

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.renderer.Pan(-panX, 0)
	case "right", "l":
		m.renderer.Pan(panX, 0)
	case "up", "k":
		m.renderer.Pan(0, -panY)
	case "down", "j":
		m.renderer.Pan(0, panY)

	case "+", "=", "z":
		m.renderer.ZoomCenter(zoomStep)
	case "-", "x":
		m.renderer.ZoomCenter(1 / zoomStep)

	case "c":
		m.pal.Next()
	case "i":
		m.renderer.SetIterations(iterStep)
	case "u":
		m.renderer.SetIterations(-iterStep)

	case "r":
		m.renderer.Reset()
	case "a":
		m.animate = !m.animate
	case "?":
		m.showHelp = !m.showHelp
		return m, nil

	case "s":
		return m, m.saveCmd()

	default:
		return m, nil
	}
	return m, m.requestRender()
}

func (m *Model) saveCmd() tea.Cmd {
	if m.shots == nil || m.frame == nil {
		m.status = "gallery disabled"
		return nil
	}
	shots, frame := m.shots, m.frame
	view := m.renderer.Viewport()
	name := m.pal.Current().String()
	return func() tea.Msg {
		if err := shots.Init(); err != nil {
			return savedMsg{err: err}
		}
		id, err := shots.Save(frame, view, name)
		return savedMsg{id: id, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder

	if m.frame != nil {
		b.WriteString(ansiFrame(m.frame))
	}
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(helpStyle.Render(
			"arrows/hjkl pan · +/- or z/x zoom · c palette · i/u iterations · " +
				"r reset · s snapshot · a animation · ? help · q quit"))
	} else {
		b.WriteString(helpStyle.Render("? for help"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine() string {
	info := m.renderer.Info()

	parts := []string{
		titleStyle.Render("mandelscope"),
		labelStyle.Render("zoom ") + valueStyle.Render(formatZoom(info.Zoom)),
		labelStyle.Render("iter ") + valueStyle.Render(fmt.Sprintf("%d", info.MaxIter)),
		labelStyle.Render("palette ") + accentStyle.Render(m.pal.Current().String()),
		labelStyle.Render("coverage ") + valueStyle.Render(fmt.Sprintf("%.0f%%", m.coverage.Value()*100)),
		labelStyle.Render("frame ") + valueStyle.Render(fmt.Sprintf("%.0fms", m.renderTime.Value())),
	}
	if m.busy {
		parts = append(parts, busyStyle.Render("rendering"))
	}
	if m.status != "" {
		parts = append(parts, errStyle.Render(m.status))
	}
	return strings.Join(parts, labelStyle.Render(" │ "))
}

func formatZoom(z float64) string {
	if z >= 1e6 {
		return fmt.Sprintf("%.1e", z)
	}
	return fmt.Sprintf("%.1fx", z)
}

// Run starts the explorer in the alternate screen.
func Run(r *render.Renderer, pal *palette.Engine, galleryDir string) error {
	_, err := tea.NewProgram(NewModel(r, pal, galleryDir), tea.WithAltScreen()).Run()
	return err
}
