package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memorize/internal/games/memorize"
	"github.com/vovakirdan/tui-memorize/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <static|dynamic>",
	Short: "Play a game mode",
	Long: `Start a round of the given mode with the saved settings.

Modes:
  static (2d)   - Figures appear on a grid, one wave at a time
  dynamic (3d)  - Solids fly towards you

Controls:
  Esc/B         - End the round early
  Up/Down       - Pick a figure (summary)
  Left/Right    - Change its count (summary, also -/+)
  Enter         - Submit, then back
  R             - Play again (after submitting)
  Q/Ctrl+C      - Quit

Examples:
  memorize play static
  memorize play dynamic --seed 42
  memorize play static --images ./pictures`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID, ok := modeIDs[strings.ToLower(args[0])]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'memorize list' to see the modes.")
		os.Exit(1)
	}

	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	settings := loadSettings(logger)
	player := newSound(logger)
	defer player.Close()

	game, err := tui.NewGame(gameID, memorize.Setup{
		Settings: settings,
		ImageDir: imageDir(settings),
		Sound:    player,
		Logger:   logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close() //nolint:errcheck
	}

	if err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
