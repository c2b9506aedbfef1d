package core

import "strings"

// RuntimeConfig contains what a terminal backend needs to drive the game loop.
type RuntimeConfig struct {
	TickRate int // Input polls per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
	}
}

// BorderStyle selects the glyph set used to draw viewport edges.
type BorderStyle int

const (
	BorderSimple  BorderStyle = iota // ASCII | - +
	BorderClean                      // box-drawing lines
	BorderWrapped                    // [ ] =
)

// String returns the config keyword for the style.
func (b BorderStyle) String() string {
	switch b {
	case BorderSimple:
		return "simple"
	case BorderClean:
		return "clean"
	case BorderWrapped:
		return "wrapped"
	default:
		return "unknown"
	}
}

// ParseBorderStyle resolves a config keyword. ok is false for unknown names.
func ParseBorderStyle(s string) (style BorderStyle, ok bool) {
	switch strings.ToLower(s) {
	case "simple":
		return BorderSimple, true
	case "clean":
		return BorderClean, true
	case "wrapped":
		return BorderWrapped, true
	}
	return BorderSimple, false
}

// BorderStyles lists all styles in menu order.
func BorderStyles() []BorderStyle {
	return []BorderStyle{BorderSimple, BorderClean, BorderWrapped}
}

// Title returns the capitalized name shown in menus.
func (b BorderStyle) Title() string {
	s := b.String()
	return strings.ToUpper(s[:1]) + s[1:]
}
