package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memorize/internal/platform/tui"
	"github.com/vovakirdan/tui-memorize/internal/registry"
	"github.com/vovakirdan/tui-memorize/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and figure accuracy",
	Long: `Display the top scores and how well each figure was counted.
Without a mode, a summary of every mode is shown.

Examples:
  memorize scores
  memorize scores static
  memorize scores dynamic --limit 20
  memorize scores --tui
  memorize scores static --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores and rounds of the mode")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		id, ok := modeIDs[strings.ToLower(args[0])]
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'memorize list' to see the modes.")
			os.Exit(1)
		}
		gameID = id
	}

	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close() //nolint:errcheck

	switch {
	case flagScoresClear:
		if gameID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
			os.Exit(1)
		}
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Printf("Cleared scores for %s.\n", title(gameID))

	case flagScoresTUI:
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case gameID == "":
		printOverview(store)

	default:
		printScores(store, gameID)
	}
}

func title(gameID string) string {
	if info, ok := registry.Lookup(gameID); ok {
		return info.Title
	}
	return gameID
}

func printOverview(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("MemorizeIT scores")
	fmt.Println()
	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, g := range registry.List() {
		s, ok := stats[g.ID]
		if !ok {
			fmt.Printf("  %-16s  %-6d  %-6s  %-8s  %s\n", g.Title, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-16s  %-6d  %-6d  %-8.1f  %s\n",
			g.Title, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func printScores(store *storage.Store, gameID string) {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Points", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Average: %.1f  Games: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
	}

	accuracy, err := store.FigureAccuracy(gameID)
	if err != nil || len(accuracy) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("  %-12s  %-6s  %-6s  %s\n", "Figure", "Rounds", "Exact", "Avg off")
	fmt.Printf("  %-12s  %-6s  %-6s  %s\n", "------", "------", "-----", "-------")
	for _, a := range accuracy {
		fmt.Printf("  %-12s  %-6d  %-6d  %.2f\n", a.Figure, a.Rounds, a.Exact, a.AvgError)
	}

	if recent, err := store.RecentRounds(gameID, 5); err == nil && len(recent) > 0 {
		fmt.Println()
		fmt.Println("Recent rounds:")
		for _, r := range recent {
			mark := "x"
			if r.Correct() {
				mark = "ok"
			}
			fmt.Printf("  %-12s  saw %-3d said %-3d %s\n", r.Figure, r.Expected, r.Guessed, mark)
		}
	}
}
