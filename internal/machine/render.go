package machine

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/viewport"
)

const (
	returnLabel  = "Return without saving"
	pausedBanner = " PAUSED "
)

// drawBars redraws both bar borders and the title.
func (m *Machine) drawBars() {
	m.top.DrawBorder(m.cfg.Border)
	m.top.Clear()
	m.top.WriteCentered(0, m.theme.Title, core.PairTitle)
	m.top.Present()

	m.bottom.DrawBorder(m.cfg.Border)
}

// drawStatus fills the bottom bar: the score line while playing, the credit
// otherwise.
func (m *Machine) drawStatus() {
	m.bottom.Clear()
	if ctx, ok := m.ctx.(*PlayContext); ok {
		m.bottom.WriteCentered(0, HUDLine(ctx.Field.Player().Progress,
			ctx.Field.Player().SessionBest, ctx.Field.Player().AllTimeBest), core.PairHUD)
	} else {
		m.bottom.WriteCentered(0, m.theme.Credit, core.PairDefault)
	}
	m.bottom.Present()
}

// drawTooSmall replaces the game with a notice naming the size it needs.
func (m *Machine) drawTooSmall() {
	w, h := viewport.ComputeLayout(m.cfg.Border, m.cfg.Width, m.cfg.Height).Size()
	m.screen.DrawText(0, 0, "Terminal too small", core.PairTitle)
	m.screen.DrawText(0, 1, fmt.Sprintf("need %dx%d, have %dx%d",
		w, h, m.screen.Width(), m.screen.Height()), core.PairDefault)
}

// HUDLine formats the in-game score line.
func HUDLine(score, best, record int) string {
	return fmt.Sprintf("Score %d  Best %d  Record %d", score, best, record)
}

// drawMain redraws the board for the current state.
func (m *Machine) drawMain() {
	m.main.DrawBorder(m.cfg.Border)
	m.main.Clear()

	switch ctx := m.ctx.(type) {
	case *MenuContext:
		m.drawMenu(ctx)
	case *PlayContext:
		ctx.Field.Render(m.main, m.glyphs)
		if m.state == StatePaused {
			rows, _ := m.main.InteriorSize()
			m.main.WriteCentered(rows/2, pausedBanner, core.PairHighlight)
		}
	}

	m.main.Present()
}

func (m *Machine) drawMenu(ctx *MenuContext) {
	switch m.state {
	case StateMenu:
		m.drawOptions(ctx, []string{"Play", "Settings", "Exit"})
	case StateSettings:
		m.drawOptions(ctx, m.settingsLabels())
	case StateSettingsEdit:
		switch ctx.Editing {
		case SettingBorder:
			labels := make([]string, 0, 4)
			for _, s := range core.BorderStyles() {
				labels = append(labels, s.Title())
			}
			m.drawOptions(ctx, append(labels, returnLabel))
		case SettingSize:
			labels := make([]string, 0, len(SizePresets)+1)
			for _, s := range SizePresets {
				labels = append(labels, fmt.Sprintf("%d x %d", s.Width, s.Height))
			}
			m.drawOptions(ctx, append(labels, returnLabel))
		case SettingSeed:
			m.drawSeedEdit(ctx)
		}
	}
}

// settingsLabels shows each setting with its current value.
func (m *Machine) settingsLabels() []string {
	return []string{
		"Border: " + m.cfg.Border.String(),
		fmt.Sprintf("Size: %dx%d", m.cfg.Width, m.cfg.Height),
		"Seed: " + strconv.FormatInt(m.cfg.Seed, 10),
		"Back",
	}
}

// drawOptions centers a vertical option list, bracketing the selected entry.
func (m *Machine) drawOptions(ctx *MenuContext, labels []string) {
	rows, _ := m.main.InteriorSize()
	y := core.Max((rows-len(labels)*2)/2, 0)

	for i, label := range labels {
		if i == ctx.Selected {
			m.main.WriteCentered(y, "> "+label+" <", core.PairHighlight)
		} else {
			m.main.WriteCentered(y, label, core.PairDefault)
		}
		y += 2
	}

	if ctx.Notice != "" {
		m.main.WriteCentered(core.Min(y, rows-1), ctx.Notice, core.PairTitle)
	}
}

func (m *Machine) drawSeedEdit(ctx *MenuContext) {
	rows, _ := m.main.InteriorSize()
	y := rows/2 - 2

	digits := ""
	if ctx.Seed != 0 {
		digits = strconv.FormatInt(ctx.Seed, 10)
	}
	m.main.WriteCentered(y, "Enter seed", core.PairTitle)
	m.main.WriteCentered(y+2, "> "+digits+"_ <", core.PairHighlight)
	m.main.WriteCentered(y+4, "empty uses the clock", core.PairDefault)
}
