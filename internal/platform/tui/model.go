package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/machine"
)

// HelpRows is the number of terminal rows below the board used by the help line.
const HelpRows = 1

// maxQueued bounds the keys waiting for a tick.
const maxQueued = 16

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures the Bubble Tea backend.
type Options struct {
	TickRate      int
	ScreenshotDir string // empty means ~/.crossing/screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model around the state machine.
// Keys are queued as they arrive; every tick hands at most one to the machine.
type Model struct {
	machine  *machine.Machine
	mapper   *KeyMapper
	keys     KeyMap
	help     help.Model
	styles   Styles
	queue    []core.Input
	opts     Options
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given machine.
func NewModel(m *machine.Machine, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.ShowAll = false

	return Model{
		machine: m,
		mapper:  NewKeyMapper(keys),
		keys:    keys,
		help:    h,
		styles:  NewStyles(m.Palette()),
		opts:    opts,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.machine.Resize(msg.Width, msg.Height-HelpRows)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		if path, err := m.saveScreenshot(); err != nil {
			m.opts.Logger.Warn("screenshot failed", "error", err)
		} else {
			m.opts.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	in := m.mapper.MapKey(msg)
	switch {
	case in.IsNone():
	case in.Action == core.ActionQuit:
		// Quit is served on the very next tick.
		m.queue = []core.Input{in}
	case len(m.queue) < maxQueued:
		m.queue = append(m.queue, in)
	}
	return m, nil
}

// handleTick feeds one queued input, or none, to the machine.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var in core.Input
	if len(m.queue) > 0 {
		in = m.queue[0]
		m.queue = m.queue[1:]
	}

	m.machine.Step(in)
	if m.machine.State() == machine.StateExit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".crossing", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("crossing_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.machine.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// Pending returns the number of queued inputs.
func (m Model) Pending() int {
	return len(m.queue)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.machine.Screen(), m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the machine exits.
func Run(m *machine.Machine, opts Options) error {
	p := tea.NewProgram(NewModel(m, opts), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
