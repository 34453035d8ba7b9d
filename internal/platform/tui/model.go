package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/endless-runner/internal/config"
	"github.com/vovakirdan/endless-runner/internal/core"
	"github.com/vovakirdan/endless-runner/internal/games/runner"
	"github.com/vovakirdan/endless-runner/internal/replay"
	"github.com/vovakirdan/endless-runner/internal/storage"
)

// HostOptions carries what a terminal host needs besides the runtime config.
type HostOptions struct {
	Config     config.RunnerConfig
	Difficulty string         // Preset name recorded with each run
	Store      *storage.Store // Run journal; nil disables recording
	Logger     *log.Logger
}

// Model is the Bubble Tea model for playing the runner.
type Model struct {
	sim      *runner.Simulator
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	trace    *replay.Trace
	result   *replay.Result
	opts     HostOptions
	config   core.RuntimeConfig
	fixed    bool // Seed came from the command line; restarts reuse it
	quitting bool
}

// NewModel creates a Bubble Tea model running a fresh simulator.
func NewModel(rt core.RuntimeConfig, opts HostOptions) (Model, error) {
	fixed := rt.Seed != 0
	// Use time-based seed if not specified
	if !fixed {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	sim, err := runner.New(opts.Config, rt.Seed, runner.WithLogger(opts.Logger))
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		sim:    sim,
		screen: core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		keys:   DefaultKeyMap(),
		help:   h,
		held:   NewHeldKeys(defaultHoldTicks),
		trace:  &replay.Trace{},
		result: &replay.Result{},
		opts:   opts,
		config: rt,
		fixed:  fixed,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.restart()
	default:
		m.held.Press(a)
	}

	return m, nil
}

// handleResize reprojects onto the new terminal size. The world is unaffected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation tick with the currently held keys.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.sim.State().GameOver {
		m.held.Release()
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.held.Frame()
	m.trace.Record(frame)
	m.result.Observe(m.sim, m.sim.Tick(frame))

	return m, tickCmd(m.config.TickRate)
}

// restart records the current run and begins a new one.
func (m *Model) restart() {
	m.saveRun()

	if !m.fixed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.sim.Restart(m.config.Seed)
	m.trace.Reset()
	*m.result = replay.Result{}
	m.held.Release()
}

// saveRun writes the current run to the journal, once.
func (m *Model) saveRun() {
	if m.opts.Store == nil || m.trace.Len() == 0 {
		return
	}

	id, err := replay.Save(m.opts.Store, m.opts.Config, m.opts.Difficulty, m.sim.Seed(), m.trace, *m.result)
	if err != nil {
		m.opts.Logger.Warn("could not record run", "error", err)
		return
	}
	m.opts.Logger.Debug("run recorded", "id", id, "ticks", m.result.Ticks)
	m.trace.Reset()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawSnapshot(m.screen, m.sim.Snapshot())

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("runner_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.sim.Snapshot())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local run.
func Run(rt core.RuntimeConfig, opts HostOptions) error {
	model, err := NewModel(rt, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
