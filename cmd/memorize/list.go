package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memorize/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Long:  `Shows every registered game mode with the name used by 'memorize play'.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// CLI names per game ID, longest first.
	names := make(map[string][]string)
	for name, id := range modeIDs {
		names[id] = append(names[id], name)
	}
	for _, n := range names {
		sort.Slice(n, func(i, j int) bool {
			if len(n[i]) != len(n[j]) {
				return len(n[i]) > len(n[j])
			}
			return n[i] < n[j]
		})
	}

	fmt.Println("Game modes:")
	fmt.Println()
	fmt.Printf("  %-10s  %-16s  %s\n", "Mode", "Title", "Description")
	fmt.Printf("  %-10s  %-16s  %s\n", "----", "-----", "-----------")
	for _, g := range games {
		mode := g.ID
		if n := names[g.ID]; len(n) > 0 {
			mode = n[0]
		}
		fmt.Printf("  %-10s  %-16s  %s\n", mode, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'memorize play <mode>' to play.")
}
