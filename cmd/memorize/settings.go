package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memorize/internal/config"
	"github.com/vovakirdan/tui-memorize/internal/platform/tui"
)

var flagPrintDefaults bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit the saved settings",
	Long: `Open the settings screen. Changes are saved when you leave it with Esc.

Settings:
  Figures  - Figure types per round (2-4)
  Time     - Round length in seconds (5-60)
  Speed    - Wave speed (1-4)
  Colors   - Easy: one color per figure, Medium: per wave, Hard: per figure shown
  Sound    - Beep on every wave
  Flame    - Dynamic mode draws solids as flickering fire

Examples:
  memorize settings
  memorize settings --config ./memorize.yaml
  memorize settings --defaults > memorize.yaml`,
	Run: runSettings,
}

func init() {
	settingsCmd.Flags().BoolVar(&flagPrintDefaults, "defaults", false, "Print the default settings file and exit")
}

func runSettings(_ *cobra.Command, _ []string) {
	if flagPrintDefaults {
		os.Stdout.Write(config.DefaultYAML()) //nolint:errcheck
		return
	}

	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	settings := loadSettings(logger)
	width := runtimeConfig().ScreenW

	saved, err := tui.RunSettings(settings, width, saveSettings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("settings saved", "figures", saved.Figures, "time", saved.Time, "speed", saved.Speed)
}
