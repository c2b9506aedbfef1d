package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/machine"
	"github.com/vovakirdan/tui-crossing/internal/platform/tcellterm"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

// Terminal backends.
const (
	backendBubbleTea = "bubbletea"
	backendTcell     = "tcell"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the main menu.

Controls:
  Up/Down/Left/Right, WASD  - Move / pick a menu entry
  Enter/Space               - Select
  Esc/B                     - Back
  P                         - Pause / resume
  0-9, Backspace            - Edit the seed in settings
  Ctrl+S                    - Save a screenshot (bubbletea backend)
  Q/Ctrl+C                  - Quit

Settings are saved to ./config.txt (see --config) as soon as they change.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagFPS <= 0 {
		fatalf("--fps must be positive, got %d", flagFPS)
	}
	if flagBackend != backendBubbleTea && flagBackend != backendTcell {
		fatalf("unknown backend %q (want %s or %s)", flagBackend, backendBubbleTea, backendTcell)
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		fatalf("terminal unavailable: %v", err)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	cfg, err := config.Load(flagConfig, time.Now)
	if err != nil {
		logger.Warn("using default settings", "error", err)
	}
	theme, err := config.LoadTheme(flagTheme)
	if err != nil {
		logger.Warn("using default theme", "error", err)
	}

	screenH := height
	if flagBackend == backendBubbleTea {
		screenH -= tui.HelpRows
	}

	m, err := machine.New(core.NewScreen(width, screenH), cfg, machine.Options{
		ConfigPath: flagConfig,
		Theme:      theme,
		Logger:     logger,
		Now:        time.Now,
	})
	if err != nil {
		closeLog()
		fatalf("%v", err)
	}
	defer m.Close()

	logger.Info("starting", "backend", flagBackend, "width", width, "height", height,
		"border", cfg.Border, "size", [2]int{cfg.Width, cfg.Height})

	switch flagBackend {
	case backendTcell:
		err = tcellterm.Run(m, tcellterm.Options{TickRate: flagFPS, Logger: logger})
	default:
		err = tui.Run(m, tui.Options{TickRate: flagFPS, Logger: logger})
	}
	if err != nil {
		m.Close()
		closeLog()
		fatalf("%v", err)
	}
	logger.Info("bye", "record", m.Record())
}
