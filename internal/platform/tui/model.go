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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flapper/internal/config"
	"github.com/vovakirdan/flapper/internal/core"
	"github.com/vovakirdan/flapper/internal/game"
)

// footerHeight is the number of rows below the play field.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game Model.
type Options struct {
	Game    config.Config
	Runtime core.Runtime
	Deps    game.Collaborators
	Logger  *log.Logger

	// ScreenshotDir is where ctrl+s writes frames. Empty disables
	// screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that runs one flapper machine.
type Model struct {
	machine  *game.Machine
	screen   *core.Screen
	renderer *CellRenderer
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	runtime  core.Runtime
	logger   *log.Logger
	shotDir  string
	status   string
	quitting bool
}

// NewModel creates a model on the start screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime.Resolve(opts.Game.Screen.FPS)
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen := core.NewScreen(cfg.Cols, max(cfg.Rows-footerHeight, 1))
	h := help.New()
	h.Width = cfg.Cols

	return Model{
		machine:  game.NewMachine(opts.Game, cfg.Seed, opts.Deps),
		screen:   screen,
		renderer: NewCellRenderer(screen, opts.Game),
		keys:     DefaultKeyMap(),
		help:     h,
		input:    core.NewInputFrame(),
		runtime:  cfg,
		logger:   logger,
		shotDir:  opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("game started", "seed", m.runtime.Seed, "tps", m.runtime.TPS)
	return tickCmd(m.runtime.TPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.Set(mouseAction(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.runtime.Cols = msg.Width
		m.runtime.Rows = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick. Quit is forwarded
// to the machine at once so the program exits without waiting a frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		if res := m.machine.Step(core.InputOf(core.ActionQuit)); res.Quit {
			m.quitting = true
			return m, tea.Quit
		}
	}
	m.input.Set(action)
	return m, nil
}

// handleTick advances the machine by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.machine.State()
	res := m.machine.Step(m.input)
	m.input.Clear()

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	if res.State != prev {
		m.logger.Debug("state changed", "from", prev, "to", res.State, "score", res.Score)
		m.status = ""
	}

	return m, tickCmd(m.runtime.TPS)
}

// saveScreenshot writes the current frame as plain text and returns a
// status line for the footer.
func (m *Model) saveScreenshot() string {
	if m.shotDir == "" {
		return "screenshots disabled"
	}

	m.draw()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", m.shotDir, "err", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("flapper_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return "screenshot failed"
	}

	m.logger.Info("screenshot saved", "path", path)
	return "saved " + filepath.Base(path)
}

// draw renders the machine into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	m.machine.Render(m.renderer)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer += "  " + m.status
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Machine returns the machine driven by the model.
func (m Model) Machine() *game.Machine { return m.machine }

// Screen returns the cell buffer the model draws into.
func (m Model) Screen() *core.Screen { return m.screen }

// Run starts the Bubble Tea program in the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
