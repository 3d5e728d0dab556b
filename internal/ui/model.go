package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/olivier-w/springcurve/internal/bezier"
	"github.com/olivier-w/springcurve/internal/canvas"
	"github.com/olivier-w/springcurve/internal/curve"
	"github.com/olivier-w/springcurve/internal/scene"
	"github.com/olivier-w/springcurve/internal/sim"
	"github.com/olivier-w/springcurve/internal/snapshot"
	"github.com/olivier-w/springcurve/internal/util"
)

// Screen layout around the canvas, in terminal cells.
const (
	canvasTop    = 3
	canvasLeft   = 2
	chromeBottom = 7
	minCols      = 20
	minRows      = 8
	statusTTL    = 5 * time.Second
)

// Parameter steps per key press.
const (
	stiffnessStep = 0.01
	dampingStep   = 0.05
	tangentStep   = 1
	sampleStep    = 10
)

// Config carries the settings the model is built with.
type Config struct {
	FPS      int
	Snapshot snapshot.Options
	Profile  canvas.Profile
	Logger   *slog.Logger
}

// Model is the Bubbletea model for the springcurve TUI. It is the render
// pipeline and the configuration and pointer surfaces of the simulation;
// every tick, input and draw goes through Update and View on one goroutine.
type Model struct {
	sim      *sim.Simulation
	keys     keyMap
	help     help.Model
	bar      progress.Model
	fps      fpsMeter
	interval time.Duration
	profile  canvas.Profile
	logger   *slog.Logger

	ring       harmonica.Spring
	ringIndex  int
	ringRadius float64
	ringVel    float64

	width     int
	height    int
	pointer   bezier.Point
	pointerIn bool
	quitting  bool

	snapOpts   snapshot.Options
	saving     bool
	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// New creates a Model driving s.
func New(s *sim.Simulation, cfg Config) Model {
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		sim:       s,
		keys:      defaultKeyMap(),
		help:      help.New(),
		bar:       newSliderBar(),
		fps:       newFPSMeter(cfg.FPS),
		interval:  time.Second / time.Duration(cfg.FPS),
		profile:   cfg.Profile,
		logger:    cfg.Logger,
		ring:      harmonica.NewSpring(harmonica.FPS(cfg.FPS), 8.0, 0.6),
		ringIndex: -1,
		width:     80,
		height:    24,
		snapOpts:  cfg.Snapshot,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(m.interval), tea.SetWindowTitle(windowTitle(m.sim.Params().Paused)))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.BlurMsg:
		m.sim.OnPointerLeave()
		m.pointerIn = false
		return m, nil

	case frameMsg:
		now := time.Time(msg)
		m.sim.TickAt(now)
		m.fps.frame(now, sim.MaxStep)
		m.stepRing()
		if m.statusMsg != "" && now.Sub(m.statusTime) > statusTTL {
			m.statusMsg = ""
		}
		return m, frameCmd(m.interval)

	case snapshotSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Export failed: %v", msg.err), true)
			m.logger.Warn("snapshot failed", "path", msg.path, "err", msg.err)
		} else {
			m.setStatus(fmt.Sprintf("Saved %s", msg.path), false)
			m.logger.Info("snapshot saved", "path", msg.path)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	p := m.sim.Params()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Pause):
		paused := m.sim.TogglePaused()
		return m, tea.SetWindowTitle(windowTitle(paused))
	case key.Matches(msg, m.keys.Reset):
		m.sim.Reset()
	case key.Matches(msg, m.keys.StiffnessDown):
		m.sim.SetStiffness(p.Stiffness - stiffnessStep)
	case key.Matches(msg, m.keys.StiffnessUp):
		m.sim.SetStiffness(p.Stiffness + stiffnessStep)
	case key.Matches(msg, m.keys.DampingDown):
		m.sim.SetDamping(p.Damping - dampingStep)
	case key.Matches(msg, m.keys.DampingUp):
		m.sim.SetDamping(p.Damping + dampingStep)
	case key.Matches(msg, m.keys.TangentsDown):
		m.sim.SetTangentCount(p.TangentCount - tangentStep)
	case key.Matches(msg, m.keys.TangentsUp):
		m.sim.SetTangentCount(p.TangentCount + tangentStep)
	case key.Matches(msg, m.keys.SamplesDown):
		m.sim.SetSampleCount(p.SampleCount - sampleStep)
	case key.Matches(msg, m.keys.SamplesUp):
		m.sim.SetSampleCount(p.SampleCount + sampleStep)
	case key.Matches(msg, m.keys.Snapshot):
		return m.beginSnapshot(time.Now())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse translates terminal cells into curve-local pointer events.
// Leaving the canvas area counts as pointer-leave.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	vp := m.viewport()
	col, row := msg.X-canvasLeft, msg.Y-canvasTop
	if !vp.contains(col, row) {
		if m.pointerIn {
			m.sim.OnPointerLeave()
			m.pointerIn = false
		}
		return m
	}
	m.pointerIn = true
	m.pointer = vp.world(col, row)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.sim.OnPointerDown(m.pointer.X, m.pointer.Y)
		}
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonNone {
			m.sim.OnPointerUp()
		}
	case tea.MouseActionMotion:
		m.sim.OnPointerMove(m.pointer.X, m.pointer.Y)
	}
	return m
}

// beginSnapshot exports the current curve to a PNG in the background. The
// export works on a copy, so ticks keep running meanwhile.
func (m Model) beginSnapshot(now time.Time) (Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	m.saving = true
	m.setStatus("Exporting...", false)

	p := m.sim.Params()
	opts := m.snapOpts
	opts.Samples = p.SampleCount
	opts.Tangents = p.TangentCount
	state := m.sim.Snapshot()
	path := snapshot.DefaultName(now)
	return m, func() tea.Msg {
		return snapshotSavedMsg{path: path, err: snapshot.SaveFile(path, state, opts)}
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.statusMsg = s
	m.statusErr = isErr
	m.statusTime = time.Now()
}

// focus returns the point the pointer is on: the dragged one, or the one a
// press would grab.
func (m Model) focus() (int, bool) {
	if i, ok := m.sim.Dragging(); ok {
		return i, true
	}
	if m.pointerIn {
		return m.sim.HitTest(m.pointer.X, m.pointer.Y)
	}
	return -1, false
}

// stepRing eases the focus ring open around the focused point and closed
// when focus is lost.
func (m *Model) stepRing() {
	target := 0.0
	if i, ok := m.focus(); ok {
		if i != m.ringIndex {
			m.ringRadius, m.ringVel = 0, 0
		}
		m.ringIndex = i
		target = m.sim.HitRadius()
	}
	m.ringRadius, m.ringVel = m.ring.Update(m.ringRadius, m.ringVel, target)
	if target == 0 && m.ringRadius < 0.5 {
		m.ringIndex = -1
	}
}

func (m Model) canvasSize() (int, int) {
	return max(m.width-2*canvasLeft, minCols), max(m.height-canvasTop-chromeBottom, minRows)
}

func (m Model) viewport() viewport {
	cols, rows := m.canvasSize()
	return newViewport(cols, rows, curve.Width, curve.Height)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	p := m.sim.Params()
	vp := m.viewport()
	c := canvas.New(vp.cols, vp.rows)
	c.SetProfile(m.profile)
	f := scene.Build(m.sim, curve.Width, curve.Height, p.SampleCount, p.TangentCount)
	drawFrame(c, vp, f, m.ringIndex, m.ringRadius)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + headerStyle.Render("springcurve") + "\n")
	b.WriteString("\n")
	for _, line := range strings.Split(c.String(), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	top, bottom := renderSliders(m.bar, p)
	b.WriteString("  " + top + "\n")
	b.WriteString("  " + bottom + "\n")

	b.WriteString("  " + m.statusLine(p) + "\n")
	switch {
	case m.statusMsg == "":
		b.WriteString("\n")
	case m.statusErr:
		b.WriteString("  " + errorStyle.Render(m.statusMsg) + "\n")
	default:
		b.WriteString("  " + helpStyle.Render(m.statusMsg) + "\n")
	}
	b.WriteString("  " + m.help.View(m.keys) + "\n")
	return b.String()
}

func (m Model) statusLine(p sim.Params) string {
	state := statusStyle.Render("▶  running")
	if p.Paused {
		state = pausedStyle.Render("❚❚ paused")
	}
	info := fmt.Sprintf("fps %3d  t %s  points %d  tangents %d  cursor %s",
		m.fps.display(), util.FormatSeconds(m.sim.Elapsed()), p.SampleCount+1, p.TangentCount, m.sim.Cursor())
	if i, ok := m.sim.Dragging(); ok {
		info += fmt.Sprintf("  dragging P%d", i)
	}
	return state + "  " + statusStyle.Render(info)
}

func windowTitle(paused bool) string {
	if paused {
		return "⏸ springcurve"
	}
	return "▶ springcurve"
}
