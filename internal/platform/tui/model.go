package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// statusLines is the height of the status line under the playfield.
const statusLines = 1

// Model is the Bubble Tea model for one player's game.
// All input and simulation happen inside Update, so the session is never
// touched concurrently.
type Model struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig
	logger  *log.Logger

	session *invaders.Session
	loop    *invaders.Loop
	frames  *invaders.FrameQueue
	canvas  *Canvas
	hold    *HoldTracker

	keys KeyMap
	help help.Model

	ticking  bool // A TickMsg is in flight
	quitting bool
}

// NewModel creates a model with a fresh session. A nil logger discards
// all output.
func NewModel(cfg config.InvadersConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	rt = rt.Normalized()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		cfg:     cfg,
		runtime: rt,
		logger:  logger,
		hold:    NewHoldTracker(cfg.Controls.HoldTicks),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	m.help.Width = rt.ScreenW
	m.canvas = NewCanvas(cfg.Surface.Width, cfg.Surface.Height, rt.ScreenW, m.playfieldRows())
	m.startSession()
	m.ticking = true // Init starts the clock

	logger.Info("session started",
		"surface", fmt.Sprintf("%dx%d", cfg.Surface.Width, cfg.Surface.Height),
		"terminal", fmt.Sprintf("%dx%d", rt.ScreenW, rt.ScreenH),
		"fps", rt.TickRate,
	)
	return m
}

// startSession replaces the current session with a new one and starts its loop.
func (m *Model) startSession() {
	if m.loop != nil {
		m.loop.Stop()
	}

	session := invaders.NewSession(m.cfg)
	logger := m.logger
	hold := m.hold
	m.session = session
	m.frames = invaders.NewFrameQueue()
	m.loop = invaders.NewLoop(session, m.canvas, m.frames)
	m.loop.OnHalt(func(st invaders.State) {
		hold.Release()
		session.Input().Reset()

		snap := session.Snapshot()
		logger.Info("session ended",
			"state", st,
			"tick", snap.Tick,
			"enemies", len(session.Enemies()),
			"hash", snap.Hash(),
		)
	})
	m.hold.Release()
	m.loop.Start()
}

// playfieldRows returns the terminal rows left for the canvas.
func (m Model) playfieldRows() int {
	rows := m.runtime.ScreenH - statusLines
	if m.help.ShowAll {
		rows -= len(m.keys.FullHelp()[0])
	} else {
		rows--
	}
	return core.Max(rows, 1)
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action)

	case core.ActionFire:
		m.session.Fire()

	case core.ActionRestart:
		if !m.session.State().Terminal() {
			return m, nil
		}
		m.logger.Info("session restarted", "previous", m.session.State())
		m.startSession()
		if !m.ticking {
			m.ticking = true
			return m, tickCmd(m.runtime.TickRate)
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout fits the canvas to the terminal and redraws the current frame.
func (m *Model) layout() {
	m.canvas.Resize(m.runtime.ScreenW, m.playfieldRows())
	m.session.Render(m.canvas)

	cw, ch := m.canvas.CellSize()
	m.logger.Debug("layout",
		"terminal", fmt.Sprintf("%dx%d", m.runtime.ScreenW, m.runtime.ScreenH),
		"cell", fmt.Sprintf("%dx%d", cw, ch),
	)
}

// handleTick runs one frame. Once the loop halts no further tick is issued.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.loop.Running() {
		m.ticking = false
		return m, nil
	}

	m.hold.Apply(m.session.Input())
	m.frames.RunPending()
	m.hold.Tick()

	// A running loop always leaves its next frame queued.
	if !m.loop.Running() || m.frames.Pending() == 0 {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.canvas.Screen()))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// statusLine summarizes the session under the playfield.
func (m Model) statusLine() string {
	msgs := m.session.Config().Messages

	var state string
	switch st := m.session.State(); st {
	case invaders.StateCleared:
		state = clearedStyle.Render(msgs.StageClear)
	case invaders.StateDefeated:
		state = defeatStyle.Render(msgs.GameOver)
	default:
		state = statusStyle.Render(st.String())
	}

	line := fmt.Sprintf("%s %s", state, statusStyle.Render(fmt.Sprintf(
		"enemies: %d  bullets: %d",
		len(m.session.Enemies()),
		len(m.session.Bullets()),
	)))
	if m.canvas.RestartShown() {
		line += "  " + promptStyle.Render("press r to play again")
	}
	return line
}

// Session returns the session currently being played.
func (m Model) Session() *invaders.Session {
	return m.session
}

// Canvas returns the drawing surface.
func (m Model) Canvas() *Canvas {
	return m.canvas
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.InvadersConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
