package machine

import (
	"fmt"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/viewport"
)

// Option counts per menu.
const (
	menuItems     = 3 // Play, Settings, Exit
	settingsItems = 4 // Border, Size, Seed, Back
)

// Main menu entries.
const (
	menuPlay = iota
	menuSettings
	menuExit
)

// settingsBack is the Settings entry that returns to the main menu.
const settingsBack = 3

// dispatch applies one input to the model and returns the effects to perform.
// It never touches the screen or the filesystem. While the screen is too small
// only quit is honored.
func (m *Machine) dispatch(in core.Input) Effect {
	if in.Action == core.ActionQuit {
		m.state = StateExit
		return EffectExit
	}
	if in.IsNone() || m.tooSmall {
		return EffectNone
	}

	switch ctx := m.ctx.(type) {
	case *MenuContext:
		switch m.state {
		case StateMenu:
			return m.handleMenu(ctx, in)
		case StateSettings:
			return m.handleSettings(ctx, in)
		case StateSettingsEdit:
			return m.handleEdit(ctx, in)
		}
	case *PlayContext:
		switch m.state {
		case StatePlaying:
			return m.handlePlaying(ctx, in)
		case StatePaused:
			return m.handlePaused(in)
		}
	}
	return EffectNone
}

// moveSelection steps the cursor for up/down, clamped to [0, count-1].
// Returns true if the input was a cursor key.
func moveSelection(selected *int, a core.Action, count int) bool {
	switch a {
	case core.ActionUp:
		*selected = core.Clamp(*selected-1, 0, count-1)
	case core.ActionDown:
		*selected = core.Clamp(*selected+1, 0, count-1)
	default:
		return false
	}
	return true
}

func (m *Machine) handleMenu(ctx *MenuContext, in core.Input) Effect {
	if moveSelection(&ctx.Selected, in.Action, menuItems) {
		return EffectRedrawMain
	}
	if in.Action != core.ActionConfirm {
		return EffectNone
	}

	switch ctx.Selected {
	case menuPlay:
		return m.startPlay()
	case menuSettings:
		m.enterSettings(0, "")
		return EffectRedrawMain
	case menuExit:
		m.state = StateExit
		return EffectExit
	}
	return EffectNone
}

func (m *Machine) handleSettings(ctx *MenuContext, in core.Input) Effect {
	if moveSelection(&ctx.Selected, in.Action, settingsItems) {
		ctx.Notice = ""
		return EffectRedrawMain
	}

	switch in.Action {
	case core.ActionBack:
		m.enterMenu()
		return EffectRedrawMain
	case core.ActionConfirm:
		if ctx.Selected == settingsBack {
			m.enterMenu()
			return EffectRedrawMain
		}
		m.state = StateSettingsEdit
		m.ctx = &MenuContext{Editing: Setting(ctx.Selected)}
		return EffectRedrawMain
	}
	return EffectNone
}

func (m *Machine) handleEdit(ctx *MenuContext, in core.Input) Effect {
	if in.Action == core.ActionBack {
		m.enterSettings(int(ctx.Editing), "")
		return EffectRedrawMain
	}

	switch ctx.Editing {
	case SettingBorder:
		return m.editBorder(ctx, in)
	case SettingSize:
		return m.editSize(ctx, in)
	case SettingSeed:
		return m.editSeed(ctx, in)
	}
	return EffectNone
}

// editBorder offers each border style plus "return without saving".
func (m *Machine) editBorder(ctx *MenuContext, in core.Input) Effect {
	styles := core.BorderStyles()
	if moveSelection(&ctx.Selected, in.Action, len(styles)+1) {
		return EffectRedrawMain
	}
	if in.Action != core.ActionConfirm {
		return EffectNone
	}
	if ctx.Selected == len(styles) {
		m.enterSettings(int(SettingBorder), "")
		return EffectRedrawMain
	}

	style := styles[ctx.Selected]
	if !m.fits(style, m.cfg.Width, m.cfg.Height) {
		m.enterSettings(int(SettingBorder), fmt.Sprintf("%s border does not fit", style))
		return EffectRedrawMain
	}
	m.cfg.Border = style
	m.enterSettings(int(SettingBorder), "")
	return EffectRelayout | EffectSaveConfig
}

// editSize offers each preset plus "return without saving".
func (m *Machine) editSize(ctx *MenuContext, in core.Input) Effect {
	if moveSelection(&ctx.Selected, in.Action, len(SizePresets)+1) {
		return EffectRedrawMain
	}
	if in.Action != core.ActionConfirm {
		return EffectNone
	}
	if ctx.Selected == len(SizePresets) {
		m.enterSettings(int(SettingSize), "")
		return EffectRedrawMain
	}

	size := SizePresets[ctx.Selected]
	if !m.fits(m.cfg.Border, size.Width, size.Height) {
		m.enterSettings(int(SettingSize),
			fmt.Sprintf("%dx%d does not fit", size.Width, size.Height))
		return EffectRedrawMain
	}
	m.cfg.Width, m.cfg.Height = size.Width, size.Height
	m.enterSettings(int(SettingSize), "")
	return EffectRelayout | EffectSaveConfig
}

// editSeed builds a seed from digit keys. Digits past SeedCeiling are ignored
// so the buffer never overflows.
func (m *Machine) editSeed(ctx *MenuContext, in core.Input) Effect {
	switch in.Action {
	case core.ActionDigit:
		if ctx.Seed > SeedCeiling {
			return EffectNone
		}
		ctx.Seed = ctx.Seed*10 + int64(in.Digit)
		return EffectRedrawMain
	case core.ActionBackspace:
		ctx.Seed /= 10
		return EffectRedrawMain
	case core.ActionConfirm:
		seed := ctx.Seed
		if seed == 0 {
			seed = m.now().Unix()
		}
		m.cfg.Seed = seed
		m.enterSettings(int(SettingSeed), "")
		return EffectRedrawMain | EffectSaveConfig
	}
	return EffectNone
}

func (m *Machine) handlePlaying(ctx *PlayContext, in core.Input) Effect {
	switch in.Action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		if !ctx.Field.Move(in.Action) {
			return EffectNone
		}
		m.record = max(m.record, ctx.Field.Player().AllTimeBest)
		return EffectRedrawMain | EffectRedrawHUD
	case core.ActionPause:
		m.state = StatePaused
		return EffectRedrawMain
	case core.ActionBack:
		m.enterMenu()
		return EffectRedrawMain | EffectRedrawBars
	}
	return EffectNone
}

func (m *Machine) handlePaused(in core.Input) Effect {
	switch in.Action {
	case core.ActionPause, core.ActionConfirm:
		m.state = StatePlaying
		return EffectRedrawMain
	case core.ActionBack:
		m.enterMenu()
		return EffectRedrawMain | EffectRedrawBars
	}
	return EffectNone
}

// startPlay spawns a fresh field. A zero seed means the current time.
func (m *Machine) startPlay() Effect {
	seed := m.cfg.Seed
	if seed == 0 {
		seed = m.now().Unix()
	}
	rows, cols := m.main.InteriorSize()

	m.state = StatePlaying
	m.ctx = &PlayContext{Field: crossing.NewField(cols, rows, seed, m.record)}
	m.logger.Debug("play started", "seed", seed, "cols", cols, "rows", rows)
	return EffectRedraw
}

func (m *Machine) enterMenu() {
	m.state = StateMenu
	m.ctx = &MenuContext{}
}

func (m *Machine) enterSettings(selected int, notice string) {
	m.state = StateSettings
	m.ctx = &MenuContext{Selected: selected, Notice: notice}
}

// fits reports whether a board of the given style and size fits the screen.
func (m *Machine) fits(style core.BorderStyle, width, height int) bool {
	return viewport.ComputeLayout(style, width, height).Fits(m.screen.Width(), m.screen.Height())
}
