package machine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

var fixedNow = func() time.Time { return time.Unix(1700000000, 0) }

func defaultConfig() config.GameConfig {
	return config.GameConfig{Border: core.BorderSimple, Width: 31, Height: 21, Seed: 42}
}

func newTestMachine(t *testing.T, cfg config.GameConfig, screenW, screenH int) (*Machine, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.txt")
	m, err := New(core.NewScreen(screenW, screenH), cfg, Options{ConfigPath: path, Now: fixedNow})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return m, path
}

func press(m *Machine, actions ...core.Action) {
	for _, a := range actions {
		m.Step(core.Key(a))
	}
}

func typeDigits(m *Machine, digits string) {
	for _, d := range digits {
		m.Step(core.DigitKey(int(d - '0')))
	}
}

func menuCtx(t *testing.T, m *Machine) *MenuContext {
	t.Helper()
	ctx, ok := m.Context().(*MenuContext)
	if !ok {
		t.Fatalf("state %v: expected menu context, got %T", m.State(), m.Context())
	}
	return ctx
}

func playCtx(t *testing.T, m *Machine) *PlayContext {
	t.Helper()
	ctx, ok := m.Context().(*PlayContext)
	if !ok {
		t.Fatalf("state %v: expected play context, got %T", m.State(), m.Context())
	}
	return ctx
}

// Key sequences from the main menu.
var (
	toSettings   = []core.Action{core.ActionDown, core.ActionConfirm}
	toBorderEdit = []core.Action{core.ActionDown, core.ActionConfirm, core.ActionConfirm}
	toSizeEdit   = []core.Action{core.ActionDown, core.ActionConfirm, core.ActionDown, core.ActionConfirm}
	toSeedEdit   = []core.Action{core.ActionDown, core.ActionConfirm, core.ActionDown, core.ActionDown, core.ActionConfirm}
)

func TestNewDrawsMenu(t *testing.T) {
	m, _ := newTestMachine(t, defaultConfig(), 80, 40)

	if m.State() != StateMenu {
		t.Errorf("initial state = %v", m.State())
	}
	if ctx := menuCtx(t, m); ctx.Selected != 0 {
		t.Errorf("initial selection = %d", ctx.Selected)
	}

	out := m.Screen().String()
	for _, want := range []string{"> Play <", "Settings", "Exit", config.DefaultTheme().Title, config.DefaultTheme().Credit} {
		if !strings.Contains(out, want) {
			t.Errorf("screen is missing %q:\n%s", want, out)
		}
	}
}

func TestNewTerminalTooSmall(t *testing.T) {
	_, err := New(core.NewScreen(30, 20), defaultConfig(), Options{ConfigPath: filepath.Join(t.TempDir(), "c.txt")})
	if !errors.Is(err, ErrTerminalTooSmall) {
		t.Errorf("New() error = %v, expected ErrTerminalTooSmall", err)
	}
}

func TestNewHugeSizeFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.txt")
	if err := os.WriteFile(path, []byte("border simple\nsize 31 9223372036854775807\nseed 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path, fixedNow)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	m, err := New(core.NewScreen(80, 40), cfg, Options{ConfigPath: path, Now: fixedNow})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if got := m.Config(); got.Width != 31 || got.Height != 21 {
		t.Errorf("board = %dx%d, expected the default 31x21", got.Width, got.Height)
	}
}

func TestNewHugeSizeIsRefused(t *testing.T) {
	cfg := defaultConfig()
	cfg.Height = int(^uint(0) >> 1)

	_, err := New(core.NewScreen(80, 40), cfg, Options{ConfigPath: filepath.Join(t.TempDir(), "c.txt")})
	if !errors.Is(err, ErrTerminalTooSmall) {
		t.Errorf("New() error = %v, expected ErrTerminalTooSmall", err)
	}
}

func TestMenuIndexStaysInRange(t *testing.T) {
	tests := []struct {
		name  string
		setup []core.Action
		count int
	}{
		{"menu", nil, 3},
		{"settings", toSettings, 4},
		{"border edit", toBorderEdit, 4},
		{"size edit", toSizeEdit, len(SizePresets) + 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestMachine(t, defaultConfig(), 80, 40)
			press(m, tc.setup...)

			for range 10 {
				press(m, core.ActionUp)
				if sel := menuCtx(t, m).Selected; sel < 0 || sel >= tc.count {
					t.Fatalf("selection %d out of range", sel)
				}
			}
			if sel := menuCtx(t, m).Selected; sel != 0 {
				t.Errorf("after underflow selection = %d, expected 0", sel)
			}

			for range 10 {
				press(m, core.ActionDown)
				if sel := menuCtx(t, m).Selected; sel < 0 || sel >= tc.count {
					t.Fatalf("selection %d out of range", sel)
				}
			}
			if sel := menuCtx(t, m).Selected; sel != tc.count-1 {
				t.Errorf("after overflow selection = %d, expected %d", sel, tc.count-1)
			}
		})
	}
}

func TestConfirmPlayStartsSession(t *testing.T) {
	m, _ := newTestMachine(t, defaultConfig(), 80, 40)

	eff := m.Step(core.Key(core.ActionConfirm))
	if !eff.Has(EffectRedrawMain) {
		t.Errorf("entering play should redraw the board, effects = %b", eff)
	}
	if m.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing", m.State())
	}

	field := playCtx(t, m).Field
	p := field.Player()
	// 31x21 board has a 29x19 interior.
	if p.X != 14 || p.Y != 18 {
		t.Errorf("spawn = (%d,%d), expected (14,18)", p.X, p.Y)
	}
	lanes := field.Lanes()
	if len(lanes) != 18 {
		t.Errorf("lane map length = %d, expected 18", len(lanes))
	}
	if lanes[len(lanes)-1] != crossing.LaneSafe {
		t.Error("row above spawn must be safe")
	}
	if field.Seed() != 42 {
		t.Errorf("field seed = %d, expected the configured 42", field.Seed())
	}

	if !strings.Contains(m.Screen().String(), HUDLine(0, 0, 0)) {
		t.Error("HUD not drawn")
	}
}

func TestPlayWithZeroSeedUsesClock(t *testing.T) {
	cfg := defaultConfig()
	cfg.Seed = 0
	m, _ := newTestMachine(t, cfg, 80, 40)

	press(m, core.ActionConfirm)
	if got := playCtx(t, m).Field.Seed(); got != fixedNow().Unix() {
		t.Errorf("seed = %d, expected %d", got, fixedNow().Unix())
	}
}

func TestPlayingIsDeterministic(t *testing.T) {
	moves := []core.Action{
		core.ActionUp, core.ActionUp, core.ActionLeft, core.ActionUp,
		core.ActionDown, core.ActionRight, core.ActionRight, core.ActionUp,
	}

	run := func() (crossing.Snapshot, string) {
		m, _ := newTestMachine(t, defaultConfig(), 80, 40)
		press(m, core.ActionConfirm)
		press(m, moves...)
		return playCtx(t, m).Field.Snapshot(), m.Screen().String()
	}

	s1, screen1 := run()
	s2, screen2 := run()
	if s1.PlayerX != s2.PlayerX || s1.PlayerY != s2.PlayerY || s1.Progress != s2.Progress {
		t.Errorf("runs diverged: %+v vs %+v", s1, s2)
	}
	if screen1 != screen2 {
		t.Error("same seed and inputs should draw the same screen")
	}
	if s1.Progress != 3 || s1.SessionBest != 3 {
		t.Errorf("progress = %d best = %d, expected 3/3", s1.Progress, s1.SessionBest)
	}
}

func TestSeedEntry(t *testing.T) {
	m, path := newTestMachine(t, defaultConfig(), 80, 40)
	press(m, toSeedEdit...)

	if m.State() != StateSettingsEdit || menuCtx(t, m).Editing != SettingSeed {
		t.Fatalf("not editing the seed: %v %+v", m.State(), m.Context())
	}

	typeDigits(m, "12345")
	if !strings.Contains(m.Screen().String(), "12345_") {
		t.Error("digit buffer not shown")
	}
	press(m, core.ActionConfirm)

	if m.State() != StateSettings {
		t.Errorf("state = %v, expected settings", m.State())
	}
	if m.Config().Seed != 12345 {
		t.Errorf("seed = %d, expected 12345", m.Config().Seed)
	}

	loaded, err := config.Load(path, fixedNow)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Seed != 12345 {
		t.Errorf("persisted seed = %d, expected 12345", loaded.Seed)
	}
}

func TestSeedEntryEmptyUsesClock(t *testing.T) {
	m, _ := newTestMachine(t, defaultConfig(), 80, 40)
	press(m, toSeedEdit...)

	typeDigits(m, "7")
	press(m, core.ActionBackspace, core.ActionBackspace, core.ActionConfirm)

	if got := m.Config().Seed; got != fixedNow().Unix() || got == 0 {
		t.Errorf("seed = %d, expected the clock %d", got, fixedNow().Unix())
	}
}

func TestSeedCeiling(t *testing.T) {
	m, _ := newTestMachine(t, defaultConfig(), 80, 40)
	press(m, toSeedEdit...)

	typeDigits(m, strings.Repeat("9", 30))

	got := menuCtx(t, m).Seed
	if got <= 0 {
		t.Fatalf("seed buffer overflowed: %d", got)
	}
	if got != 999999999999999999 {
		t.Errorf("seed buffer = %d, expected 18 nines", got)
	}

	press(m, core.ActionBackspace)
	if got := menuCtx(t, m).Seed; got != 99999999999999999 {
		t.Errorf("after backspace = %d", got)
	}
}

func TestBorderChangePersistsAndRepositions(t *testing.T) {
	tests := []struct {
		option int
		style  core.BorderStyle
		mainY  int
		corner rune
	}{
		{1, core.BorderClean, 3, '┌'},
		{2, core.BorderWrapped, 2, '='},
		{0, core.BorderSimple, 2, '+'},
	}

	m, path := newTestMachine(t, defaultConfig(), 80, 40)
	for _, tc := range tests {
		t.Run(tc.style.String(), func(t *testing.T) {
			press(m, core.ActionBack, core.ActionBack, core.ActionBack)
			press(m, toBorderEdit...)
			for range tc.option {
				press(m, core.ActionDown)
			}
			eff := m.Step(core.Key(core.ActionConfirm))

			if !eff.Has(EffectRelayout | EffectSaveConfig) {
				t.Errorf("effects = %b, expected relayout and save", eff)
			}
			if m.State() != StateSettings {
				t.Errorf("state = %v, expected settings", m.State())
			}

			loaded, _ := config.Load(path, fixedNow)
			if loaded.Border != tc.style {
				t.Errorf("persisted border = %v, expected %v", loaded.Border, tc.style)
			}

			top, main, bottom := m.Viewports()
			if y, _ := top.Origin(); y != 0 {
				t.Errorf("top bar row = %d", y)
			}
			mainY, _ := main.Origin()
			if mainY != tc.mainY {
				t.Errorf("board row = %d, expected %d", mainY, tc.mainY)
			}
			if y, _ := bottom.Origin(); y != mainY+main.Rows() {
				t.Errorf("bottom bar row = %d, expected %d", y, mainY+main.Rows())
			}

			if got := m.Screen().Get(0, tc.mainY); got != tc.corner {
				t.Errorf("board corner on screen = %q, expected %q", got, tc.corner)
			}
		})
	}
}

func TestBorderReturnWithoutSaving(t *testing.T) {
	m, path := newTestMachine(t, defaultConfig(), 80, 40)
	press(m, toBorderEdit...)
	press(m, core.ActionDown, core.ActionDown, core.ActionDown)

	if !strings.Contains(m.Screen().String(), "> Return without saving <") {
		t.Error("return option not highlighted")
	}
	press(m, core.ActionConfirm)

	if m.State() != StateSettings || m.Config().Border != core.BorderSimple {
		t.Errorf("state = %v border = %v", m.State(), m.Config().Border)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("returning without saving must not write the config")
	}
}

func TestSizeChange(t *testing.T) {
	m, path := newTestMachine(t, defaultConfig(), 80, 40)
	press(m, toSizeEdit...)
	press(m, core.ActionDown, core.ActionConfirm)

	cfg := m.Config()
	if cfg.Width != 41 || cfg.Height != 25 {
		t.Errorf("size = %dx%d, expected 41x25", cfg.Width, cfg.Height)
	}
	_, main, _ := m.Viewports()
	if main.Cols() != 41 || main.Rows() != 25 {
		t.Errorf("board viewport = %dx%d", main.Cols(), main.Rows())
	}
	if loaded, _ := config.Load(path, fixedNow); loaded.Width != 41 || loaded.Height != 25 {
		t.Errorf("persisted size = %dx%d", loaded.Width, loaded.Height)
	}

	press(m, core.ActionBack, core.ActionConfirm)
	if rows := len(playCtx(t, m).Field.Lanes()); rows != 22 {
		t.Errorf("lane map length = %d, expected 22", rows)
	}
}

func TestSizeThatDoesNotFitIsRefused(t *testing.T) {
	m, path := newTestMachine(t, defaultConfig(), 60, 32)
	press(m, toSizeEdit...)
	press(m, core.ActionDown, core.ActionDown, core.ActionConfirm)

	if m.State() != StateSettings {
		t.Fatalf("state = %v", m.State())
	}
	if cfg := m.Config(); cfg.Width != 31 || cfg.Height != 21 {
		t.Errorf("size changed to %dx%d", cfg.Width, cfg.Height)
	}
	if menuCtx(t, m).Notice == "" {
		t.Error("expected a notice")
	}
	if !strings.Contains(m.Screen().String(), "51x31 does not fit") {
		t.Error("notice not drawn")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("refused change must not write the config")
	}

	press(m, core.ActionDown)
	if menuCtx(t, m).Notice != "" {
		t.Error("notice should clear on the next move")
	}
}

func TestPauseAndResume(t *testing.T) {
	m, _ := newTestMachine(t, defaultConfig(), 80, 40)
	press(m, core.ActionConfirm, core.ActionUp, core.ActionPause)

	if m.State() != StatePaused {
		t.Fatalf("state = %v, expected paused", m.State())
	}
	if !strings.Contains(m.Screen().String(), "PAUSED") {
		t.Error("pause banner not drawn")
	}

	press(m, core.ActionUp)
	if p := playCtx(t, m).Field.Player(); p.Progress != 1 {
		t.Errorf("moves while paused should be ignored, progress = %d", p.Progress)
	}

	press(m, core.ActionPause)
	if m.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing", m.State())
	}
	if strings.Contains(m.Screen().String(), "PAUSED") {
		t.Error("pause banner still drawn")
	}

	press(m, core.ActionPause, core.ActionConfirm)
	if m.State() != StatePlaying {
		t.Errorf("confirm should resume too, state = %v", m.State())
	}
}

func TestQuitFromAnyState(t *testing.T) {
	tests := []struct {
		name  string
		setup []core.Action
		want  State
	}{
		{"menu", nil, StateMenu},
		{"settings", toSettings, StateSettings},
		{"settings edit", toSeedEdit, StateSettingsEdit},
		{"playing", []core.Action{core.ActionConfirm}, StatePlaying},
		{"paused", []core.Action{core.ActionConfirm, core.ActionPause}, StatePaused},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestMachine(t, defaultConfig(), 80, 40)
			press(m, tc.setup...)
			if m.State() != tc.want {
				t.Fatalf("setup reached %v, expected %v", m.State(), tc.want)
			}

			if eff := m.Step(core.Key(core.ActionQuit)); !eff.Has(EffectExit) {
				t.Errorf("quit effects = %b", eff)
			}
			if m.State() != StateExit || !m.Closed() {
				t.Errorf("state = %v closed = %v", m.State(), m.Closed())
			}

			top, main, bottom := m.Viewports()
			if !top.Released() || !main.Released() || !bottom.Released() {
				t.Error("exit must release every viewport")
			}

			if eff := m.Step(core.Key(core.ActionConfirm)); eff != EffectExit {
				t.Errorf("exit is terminal, got effects %b", eff)
			}
			m.Close()
		})
	}
}

func TestMenuExit(t *testing.T) {
	m, _ := newTestMachine(t, defaultConfig(), 80, 40)
	press(m, core.ActionDown, core.ActionDown, core.ActionConfirm)
	if m.State() != StateExit {
		t.Errorf("state = %v, expected exit", m.State())
	}
}

func TestBackKeepsRecord(t *testing.T) {
	m, _ := newTestMachine(t, defaultConfig(), 80, 40)
	press(m, core.ActionConfirm, core.ActionUp, core.ActionUp, core.ActionUp, core.ActionDown)

	if !strings.Contains(m.Screen().String(), HUDLine(2, 3, 3)) {
		t.Errorf("HUD should read %q", HUDLine(2, 3, 3))
	}

	press(m, core.ActionBack)
	if m.State() != StateMenu {
		t.Fatalf("state = %v, expected menu", m.State())
	}
	if m.Record() != 3 {
		t.Errorf("record = %d, expected 3", m.Record())
	}
	if !strings.Contains(m.Screen().String(), config.DefaultTheme().Credit) {
		t.Error("bottom bar should show the credit again")
	}

	press(m, core.ActionConfirm, core.ActionUp)
	p := playCtx(t, m).Field.Player()
	if p.Progress != 1 || p.SessionBest != 1 || p.AllTimeBest != 3 {
		t.Errorf("new session = %+v, expected fresh scores and record 3", p)
	}
}

func TestNoInputChangesNothing(t *testing.T) {
	m, _ := newTestMachine(t, defaultConfig(), 80, 40)
	before := m.Screen().String()

	for range 5 {
		if eff := m.Step(core.Input{}); eff != EffectNone {
			t.Errorf("idle tick effects = %b", eff)
		}
	}
	if m.State() != StateMenu || m.Screen().String() != before {
		t.Error("idle ticks changed the game")
	}
}

func TestResize(t *testing.T) {
	m, _ := newTestMachine(t, defaultConfig(), 80, 40)
	press(m, core.ActionConfirm)

	m.Resize(100, 50)
	if m.Screen().Width() != 100 || m.Screen().Height() != 50 {
		t.Errorf("screen = %dx%d", m.Screen().Width(), m.Screen().Height())
	}
	if m.State() != StatePlaying {
		t.Errorf("resize changed state to %v", m.State())
	}
	if !strings.Contains(m.Screen().String(), HUDLine(0, 0, 0)) {
		t.Error("resize should redraw the HUD")
	}
}

func TestResizeTooSmallShowsNotice(t *testing.T) {
	m, _ := newTestMachine(t, defaultConfig(), 80, 40)
	press(m, core.ActionConfirm)

	m.Resize(40, 12)
	if !m.TooSmall() {
		t.Fatal("a 40x12 screen cannot hold a 31x21 board")
	}
	out := m.Screen().String()
	if !strings.Contains(out, "Terminal too small") || !strings.Contains(out, "need 31x26, have 40x12") {
		t.Errorf("notice missing:\n%s", out)
	}

	// Moves are ignored until there is room again.
	press(m, core.ActionUp)
	if got := playCtx(t, m).Field.Player().Progress; got != 0 {
		t.Errorf("progress = %d while too small", got)
	}
	if m.Screen().String() != out {
		t.Error("input redrew over the notice")
	}

	m.Resize(80, 40)
	if m.TooSmall() {
		t.Fatal("80x40 should fit again")
	}
	if m.State() != StatePlaying || !strings.Contains(m.Screen().String(), HUDLine(0, 0, 0)) {
		t.Error("growing the screen should restore the game")
	}

	m.Resize(10, 5)
	press(m, core.ActionQuit)
	if m.State() != StateExit {
		t.Errorf("quit while too small: state = %v", m.State())
	}
}

func TestEffectHas(t *testing.T) {
	e := EffectRedrawMain | EffectSaveConfig
	if !e.Has(EffectRedrawMain) || !e.Has(EffectSaveConfig) || e.Has(EffectExit) {
		t.Errorf("Has() wrong for %b", e)
	}
	if e.Has(EffectRedrawMain | EffectExit) {
		t.Error("Has() needs every bit")
	}
	if e.Has(EffectNone) {
		t.Error("Has(EffectNone) should be false")
	}
}

func TestStateString(t *testing.T) {
	names := map[State]string{
		StateMenu:         "menu",
		StateSettings:     "settings",
		StateSettingsEdit: "settings-edit",
		StatePlaying:      "playing",
		StatePaused:       "paused",
		StateExit:         "exit",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, expected %q", s, s.String(), want)
		}
	}
}
