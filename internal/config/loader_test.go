package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

func TestLoadThemeEmbeddedDefault(t *testing.T) {
	// Isolate from any real user or local theme.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	theme, err := LoadTheme("")
	if err != nil {
		t.Fatalf("LoadTheme() failed: %v", err)
	}
	if theme.Title == "" || theme.Credit == "" {
		t.Errorf("embedded theme should set title and credit, got %+v", theme)
	}
	if Rune(theme.Glyphs.Water, '?') != '~' {
		t.Errorf("water glyph = %q", theme.Glyphs.Water)
	}

	pal := theme.Palette()
	if got := pal.Style(core.PairWater); got.Bg != core.ColorBlue || !got.HasBg {
		t.Errorf("water pair = %+v", got)
	}
}

func TestLoadThemeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	data := []byte(`
title: "FROGS"
glyphs:
  player: "F"
pairs:
  player: { fg: yellow, bg: black }
  bogus:  { fg: red }
  water:  { fg: not-a-color }
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() failed: %v", err)
	}
	if theme.Title != "FROGS" {
		t.Errorf("Title = %q", theme.Title)
	}
	if theme.Credit != DefaultTheme().Credit {
		t.Errorf("omitted keys should keep defaults, Credit = %q", theme.Credit)
	}
	if Rune(theme.Glyphs.Player, '@') != 'F' || Rune(theme.Glyphs.Ground, '?') != '.' {
		t.Errorf("glyphs = %+v", theme.Glyphs)
	}

	pal := theme.Palette()
	if got := pal.Style(core.PairPlayer); got.Fg != core.ColorYellow || got.Bg != core.ColorBlack {
		t.Errorf("player pair = %+v", got)
	}
	if got := pal.Style(core.PairWater); got != core.DefaultPalette().Style(core.PairWater) {
		t.Errorf("bad color names should keep the default, got %+v", got)
	}
}

func TestLoadThemeErrors(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom theme")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("title: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	theme, err := LoadTheme(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if theme.Title != DefaultTheme().Title {
		t.Error("failed load should still return a usable theme")
	}
}

func TestRuneFallback(t *testing.T) {
	if Rune("", 'x') != 'x' {
		t.Error("empty glyph should use fallback")
	}
	if Rune("~~", 'x') != '~' {
		t.Error("first rune should be used")
	}
}

func TestDefaultThemeYAMLMatchesBuiltin(t *testing.T) {
	theme, err := parseTheme(DefaultThemeYAML())
	if err != nil {
		t.Fatalf("embedded theme does not parse: %v", err)
	}
	def := DefaultTheme()
	if theme.Title != def.Title || theme.Credit != def.Credit || theme.Glyphs != def.Glyphs {
		t.Errorf("embedded theme = %+v, expected the built-in text and glyphs %+v", theme, def)
	}
	if len(theme.Pairs) != len(core.Pairs()) {
		t.Errorf("embedded theme defines %d pairs, expected %d", len(theme.Pairs), len(core.Pairs()))
	}
}
