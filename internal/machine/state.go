package machine

import (
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// State is the top-level screen the game is on.
type State int

const (
	StateMenu State = iota
	StateSettings
	StateSettingsEdit
	StatePlaying
	StatePaused
	StateExit
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateSettings:
		return "settings"
	case StateSettingsEdit:
		return "settings-edit"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Setting is the settings entry being edited.
type Setting int

const (
	SettingBorder Setting = iota
	SettingSize
	SettingSeed
)

// String returns the setting name.
func (s Setting) String() string {
	switch s {
	case SettingBorder:
		return "border"
	case SettingSize:
		return "size"
	case SettingSeed:
		return "seed"
	default:
		return "unknown"
	}
}

// Context is the per-state payload. It is either a *MenuContext or a
// *PlayContext, never both.
type Context interface {
	context()
}

// MenuContext is live in Menu, Settings and SettingsEdit.
type MenuContext struct {
	Selected int
	Editing  Setting // only meaningful in SettingsEdit
	Seed     int64   // digit buffer while editing the seed
	Notice   string  // one-line message shown under the options
}

// PlayContext is live in Playing and Paused.
type PlayContext struct {
	Field *crossing.Field
}

func (*MenuContext) context() {}
func (*PlayContext) context() {}

// Size is a board size preset.
type Size struct {
	Width, Height int
}

// SizePresets are the board sizes offered in settings.
var SizePresets = []Size{
	{31, 21},
	{41, 25},
	{51, 31},
}
