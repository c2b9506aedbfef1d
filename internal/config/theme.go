package config

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Theme contains the cosmetic settings: bar text, glyphs and colors.
type Theme struct {
	Title  string              `yaml:"title"`
	Credit string              `yaml:"credit"`
	Glyphs ThemeGlyphs         `yaml:"glyphs"`
	Pairs  map[string]PairSpec `yaml:"pairs"`
}

// ThemeGlyphs defines the characters used on the play field.
type ThemeGlyphs struct {
	Player string `yaml:"player"`
	Ground string `yaml:"ground"`
	Water  string `yaml:"water"`
	Safe   string `yaml:"safe"`
}

// PairSpec defines one color pair by color names.
type PairSpec struct {
	Fg string `yaml:"fg"`
	Bg string `yaml:"bg"`
}

// Palette resolves the theme's pairs on top of core.DefaultPalette.
// Unknown pair or color names are skipped.
func (t Theme) Palette() core.Palette {
	pal := core.DefaultPalette()
	for name, spec := range t.Pairs {
		pair, ok := core.ParsePair(name)
		if !ok {
			continue
		}
		style := pal.Style(pair)
		if fg, ok := core.ParseColor(spec.Fg); ok {
			style.Fg = fg
		}
		if spec.Bg != "" {
			if bg, ok := core.ParseColor(spec.Bg); ok {
				style.Bg = bg
				style.HasBg = true
			}
		}
		pal[pair] = style
	}
	return pal
}

// Rune returns the first rune of a glyph string, or fallback when empty.
func Rune(glyph string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(glyph)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
