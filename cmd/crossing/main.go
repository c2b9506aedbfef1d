// crossing is a Frogger-style lane crossing game for the terminal.
//
// Usage:
//
//	crossing                 - Play (same as "crossing play")
//	crossing play            - Play the game
//	crossing config show     - Print the saved settings
//	crossing config reset    - Restore default settings
//	crossing lanes           - Preview the lane layout for a seed
//
// Global flags:
//
//	--config <path>     - Settings file (default: ./config.txt)
//	--theme <path>      - Theme YAML (default: ~/.crossing/theme.yaml, then built-in)
//	--fps <rate>        - Input polls per second (default: 60)
//	--backend <name>    - Terminal backend: bubbletea or tcell
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

var (
	// Global flags
	flagConfig  string
	flagTheme   string
	flagFPS     int
	flagBackend string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Crossing - get across the lanes in your terminal",
	Long: `Crossing is a terminal lane-crossing game. Move up through ground,
water and safe lanes; every row climbed scores a point.

Available commands:
  play     - Start the game (default)
  config   - Show or reset the saved settings
  lanes    - Preview the lane layout for a seed

Examples:
  crossing
  crossing --backend tcell
  crossing config show
  crossing lanes --seed 12345`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", config.DefaultPath, "Path to the settings file")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Path to a theme YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Input polls per second")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", backendBubbleTea, "Terminal backend: bubbletea or tcell")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(lanesCmd)
}

// warnf reports a problem the command can carry on from.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// fatalf reports an unrecoverable error and exits with status 1.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
