package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memorize/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start MemorizeIT with its main menu.

From the menu you can start either mode, change the settings and open the
scoreboard. After a round you return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Esc/Q        - Quit

Examples:
  memorize menu
  memorize menu --fps 30
  memorize menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	settings := loadSettings(logger)
	player := newSound(logger)
	defer player.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close() //nolint:errcheck
	}

	err := tui.RunApp(runtimeConfig(), tui.AppOptions{
		Store:    store,
		Settings: settings,
		Save:     saveSettings,
		ImageDir: imageDir(settings),
		Sound:    player,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
