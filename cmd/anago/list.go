package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anago-arcade/anago/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games index in lobby order.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Size")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %dx%d\n", maxIDLen, g.ID, maxTitleLen, g.Title, g.W, g.H)
		fmt.Printf("  %-*s  %s\n", maxIDLen, "", g.Subtitle)
	}

	fmt.Println()
	fmt.Println("Run 'anago play <id>' to play a game, or 'anago meme' for the meme maker.")
}
