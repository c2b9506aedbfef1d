// Package machine drives the crossing game: it owns the three viewports,
// holds the current state and its context, and turns one input per tick into
// a state change plus the redraws and saves that change needs.
package machine

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/viewport"
)

// SeedCeiling is the largest seed buffer that still accepts another digit.
const SeedCeiling = (math.MaxInt64 - 9) / 10

// ErrTerminalTooSmall is returned when the board and bars do not fit the screen.
var ErrTerminalTooSmall = errors.New("machine: terminal too small for board")

// Options configures a Machine. Zero values select defaults.
type Options struct {
	ConfigPath string
	Theme      config.Theme
	Logger     *log.Logger
	Now        func() time.Time
}

// Machine is the game state machine. It is not safe for concurrent use;
// backends call Step from a single loop.
type Machine struct {
	screen *core.Screen
	cfg    config.GameConfig
	path   string
	theme  config.Theme
	logger *log.Logger
	now    func() time.Time

	palette core.Palette
	glyphs  crossing.Glyphs

	top    *viewport.Viewport
	main   *viewport.Viewport
	bottom *viewport.Viewport

	state    State
	ctx      Context
	record   int
	closed   bool
	tooSmall bool
}

// New creates the viewports for cfg on screen and draws the main menu.
func New(screen *core.Screen, cfg config.GameConfig, opts Options) (*Machine, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultPath
	}
	if opts.Theme.Title == "" && opts.Theme.Credit == "" {
		opts.Theme = config.DefaultTheme()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := &Machine{
		screen:  screen,
		cfg:     cfg.Validate(),
		path:    opts.ConfigPath,
		theme:   opts.Theme,
		logger:  opts.Logger,
		now:     opts.Now,
		palette: opts.Theme.Palette(),
		glyphs:  glyphsFromTheme(opts.Theme),
		state:   StateMenu,
		ctx:     &MenuContext{},
	}

	if err := m.createViewports(); err != nil {
		return nil, err
	}
	m.apply(EffectRedraw)
	return m, nil
}

func glyphsFromTheme(t config.Theme) crossing.Glyphs {
	def := crossing.DefaultGlyphs()
	return crossing.Glyphs{
		Player: config.Rune(t.Glyphs.Player, def.Player),
		Ground: config.Rune(t.Glyphs.Ground, def.Ground),
		Water:  config.Rune(t.Glyphs.Water, def.Water),
		Safe:   config.Rune(t.Glyphs.Safe, def.Safe),
	}
}

// createViewports allocates all three regions for the current config.
// On failure the previous viewports are kept.
func (m *Machine) createViewports() error {
	layout := viewport.ComputeLayout(m.cfg.Border, m.cfg.Width, m.cfg.Height)
	if !layout.Fits(m.screen.Width(), m.screen.Height()) {
		w, h := layout.Size()
		return fmt.Errorf("%w: need %dx%d, have %dx%d",
			ErrTerminalTooSmall, w, h, m.screen.Width(), m.screen.Height())
	}

	top, err := viewport.FromRect(m.screen, layout.Top)
	if err != nil {
		return fmt.Errorf("machine: top bar: %w", err)
	}
	board, err := viewport.FromRect(m.screen, layout.Main)
	if err != nil {
		return fmt.Errorf("machine: board: %w", err)
	}
	bottom, err := viewport.FromRect(m.screen, layout.Bottom)
	if err != nil {
		return fmt.Errorf("machine: bottom bar: %w", err)
	}

	m.releaseViewports()
	m.top, m.main, m.bottom = top, board, bottom
	return nil
}

// relayout repositions the viewports after a border change and recreates
// them after a size change.
func (m *Machine) relayout() error {
	layout := viewport.ComputeLayout(m.cfg.Border, m.cfg.Width, m.cfg.Height)
	sameSize := m.main != nil &&
		m.main.Rows() == layout.Main.H && m.main.Cols() == layout.Main.W

	if !sameSize {
		return m.createViewports()
	}

	for _, move := range []struct {
		v *viewport.Viewport
		r core.Rect
	}{
		{m.top, layout.Top},
		{m.main, layout.Main},
		{m.bottom, layout.Bottom},
	} {
		if err := move.v.MoveTo(move.r.Y, move.r.X); err != nil {
			return fmt.Errorf("machine: relayout: %w", err)
		}
	}
	return nil
}

func (m *Machine) releaseViewports() {
	for _, v := range []*viewport.Viewport{m.top, m.main, m.bottom} {
		if v != nil {
			v.Release()
		}
	}
}

// Step consumes one input and returns the effects it caused.
// An ActionNone input changes nothing.
func (m *Machine) Step(in core.Input) Effect {
	if m.state == StateExit {
		return EffectExit
	}

	prev := m.state
	eff := m.dispatch(in)
	if m.state != prev {
		m.logger.Debug("transition", "from", prev, "to", m.state, "input", in.Action)
	}
	m.apply(eff)
	return eff
}

// apply performs the IO an effect set asks for.
func (m *Machine) apply(eff Effect) {
	if eff.Has(EffectSaveConfig) {
		if err := config.Save(m.path, m.cfg); err != nil {
			m.logger.Warn("could not save config", "path", m.path, "error", err)
		} else {
			m.logger.Debug("config saved", "path", m.path,
				"border", m.cfg.Border, "width", m.cfg.Width, "height", m.cfg.Height, "seed", m.cfg.Seed)
		}
	}

	if eff.Has(EffectExit) {
		m.Close()
		return
	}

	if eff.Has(EffectRelayout) {
		m.screen.Clear()
		m.tooSmall = false
		if err := m.relayout(); err != nil {
			m.logger.Warn("could not lay out board", "error", err)
			m.tooSmall = true
		}
		eff |= EffectRedraw
	}

	// Until a resize makes room, the notice is all that is shown.
	if m.tooSmall {
		if eff.Has(EffectRelayout) {
			m.drawTooSmall()
		}
		return
	}

	if eff.Has(EffectRedrawBars) {
		m.drawBars()
	}
	if eff.Has(EffectRedrawMain) {
		m.drawMain()
	}
	if eff.Has(EffectRedrawHUD) || eff.Has(EffectRedrawBars) {
		m.drawStatus()
	}
}

// Resize adapts to a new terminal size and redraws everything.
func (m *Machine) Resize(width, height int) {
	if m.closed {
		return
	}
	m.screen.Resize(width, height)
	m.apply(EffectRelayout)
}

// Close releases the viewports and moves to Exit. Safe to call twice.
func (m *Machine) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.state = StateExit
	m.releaseViewports()
	m.logger.Debug("viewports released")
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Context returns the live context for the current state.
func (m *Machine) Context() Context { return m.ctx }

// Config returns the current settings.
func (m *Machine) Config() config.GameConfig { return m.cfg }

// Record returns the best progress reached in any session so far.
func (m *Machine) Record() int { return m.record }

// Screen returns the screen the machine draws on.
func (m *Machine) Screen() *core.Screen { return m.screen }

// Palette returns the resolved colors for each pair.
func (m *Machine) Palette() core.Palette { return m.palette }

// Viewports returns the top bar, board and bottom bar.
func (m *Machine) Viewports() (top, main, bottom *viewport.Viewport) {
	return m.top, m.main, m.bottom
}

// TooSmall reports whether the screen is currently too small for the board.
func (m *Machine) TooSmall() bool { return m.tooSmall }

// Closed reports whether the machine has been torn down.
func (m *Machine) Closed() bool { return m.closed }
