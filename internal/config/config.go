// Package config provides the persisted game settings (a flat text file) and
// YAML-based theme loading for the crossing game.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Board size limits.
const (
	MinWidth  = 31
	MinHeight = 21
	MaxWidth  = 4096
	MaxHeight = 4096
)

// DefaultPath is where the game keeps its settings, relative to the working directory.
const DefaultPath = "config.txt"

// GameConfig holds the three persisted settings.
type GameConfig struct {
	Border core.BorderStyle
	Width  int
	Height int
	Seed   int64 // 0 means "use the current time when play starts"
}

// Default returns the settings used when the file is missing.
func Default(now func() time.Time) GameConfig {
	return GameConfig{
		Border: core.BorderSimple,
		Width:  MinWidth,
		Height: MinHeight,
		Seed:   now().Unix(),
	}
}

// Validate clamps the board to [Min, Max] on each axis.
func (c GameConfig) Validate() GameConfig {
	c.Width = core.Clamp(c.Width, MinWidth, MaxWidth)
	c.Height = core.Clamp(c.Height, MinHeight, MaxHeight)
	return c
}

// Parse reads settings line by line on top of defaults.
//
// Each line is a keyword followed by its values; '#' starts a comment.
// Policy for anything unexpected, so a damaged file never stops the game:
//   - unknown keywords are ignored;
//   - "border" with an unknown style selects simple;
//   - "size" below the minimum board is raised to it;
//   - "size" above MaxWidth or MaxHeight keeps the default for that axis;
//   - a malformed number keeps the default for that field only;
//   - later lines override earlier ones;
//   - a read error stops parsing; the lines before it still apply and the
//     error is returned alongside the config.
func Parse(r io.Reader, defaults GameConfig) (GameConfig, error) {
	cfg := defaults
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "border":
			style := core.BorderSimple
			if len(fields) > 1 {
				style, _ = core.ParseBorderStyle(fields[1])
			}
			cfg.Border = style
		case "size":
			if len(fields) > 1 {
				if w, err := strconv.Atoi(fields[1]); err == nil && w <= MaxWidth {
					cfg.Width = w
				}
			}
			if len(fields) > 2 {
				if h, err := strconv.Atoi(fields[2]); err == nil && h <= MaxHeight {
					cfg.Height = h
				}
			}
		case "seed":
			if len(fields) > 1 {
				if s, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
					cfg.Seed = s
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return cfg.Validate(), fmt.Errorf("config: parse stopped early: %w", err)
	}
	return cfg.Validate(), nil
}

// Format writes exactly the three recognized lines.
func Format(w io.Writer, cfg GameConfig) error {
	_, err := fmt.Fprintf(w, "border %s\nsize %d %d\nseed %d\n",
		cfg.Border, cfg.Width, cfg.Height, cfg.Seed)
	return err
}

// Load reads the settings file at path.
// A missing file is recreated with defaults. The returned config is always
// usable; the error only reports what went wrong on the way.
func Load(path string, now func() time.Time) (GameConfig, error) {
	defaults := Default(now)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if saveErr := Save(path, defaults); saveErr != nil {
			return defaults, saveErr
		}
		return defaults, nil
	}
	if err != nil {
		return defaults, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, defaults)
}

// Save overwrites path with cfg.
func Save(path string, cfg GameConfig) error {
	var sb strings.Builder
	//nolint:errcheck // strings.Builder never fails
	Format(&sb, cfg)

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}
