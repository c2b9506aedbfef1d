package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

var (
	colorKey   = color.New(color.FgCyan)
	colorValue = color.New(color.FgHiWhite, color.Bold)
	colorNote  = color.New(color.FgHiBlack)
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or reset the saved settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved settings",
	Long: `Print the border style, board size and seed from the settings file.
A missing file is created with defaults first, just as the game does.`,
	Args: cobra.NoArgs,
	Run:  runConfigShow,
}

var configThemeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the built-in theme",
	Long: `Print the default theme as YAML. Save it to ~/.crossing/theme.yaml or
./configs/theme.yaml, or pass it with --theme, to customise bar text, glyphs
and colors.`,
	Args: cobra.NoArgs,
	Run:  runConfigTheme,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Long:  `Overwrite the settings file with the defaults. The seed becomes the current time.`,
	Args:  cobra.NoArgs,
	Run:   runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configThemeCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig, time.Now)
	if err != nil {
		warnf("%v", err)
	}
	printConfig(cfg)
}

func runConfigTheme(cmd *cobra.Command, args []string) {
	fmt.Print(string(config.DefaultThemeYAML()))
}

func runConfigReset(cmd *cobra.Command, args []string) {
	cfg := config.Default(time.Now)
	if err := config.Save(flagConfig, cfg); err != nil {
		fatalf("%v", err)
	}
	fmt.Println("Settings reset.")
	printConfig(cfg)
}

func printConfig(cfg config.GameConfig) {
	colorNote.Printf("# %s\n", flagConfig)
	printSetting("border", cfg.Border.String())
	printSetting("size", fmt.Sprintf("%d %d", cfg.Width, cfg.Height))
	printSetting("seed", fmt.Sprintf("%d", cfg.Seed))
}

func printSetting(key, value string) {
	colorKey.Printf("%-7s", key)
	colorValue.Println(value)
}
