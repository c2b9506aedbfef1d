package config

import (
	_ "embed"
)

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		Title:  "C R O S S I N G",
		Credit: "by the tui-arcade crew",
		Glyphs: ThemeGlyphs{
			Player: "@",
			Ground: ".",
			Water:  "~",
			Safe:   " ",
		},
		Pairs: map[string]PairSpec{},
	}
}

// DefaultThemeYAML returns the embedded default theme file.
func DefaultThemeYAML() []byte {
	return defaultThemeYAML
}
