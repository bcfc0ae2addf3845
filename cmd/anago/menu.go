package main

import (
	"github.com/spf13/cobra"

	"github.com/anago-arcade/anago/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the arcade lobby",
	Long: `Start the arcade in interactive lobby mode.

The lobby lists every game, the meme maker and the scoreboard. Leaving
a game returns to the lobby.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  M            - Meme maker
  Tab          - Scoreboard
  Q            - Quit

Examples:
  anago menu
  anago menu --fps 30
  anago menu --db ~/.anago/scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	loader := openAssets()
	configureGames("", "", loader)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.RunArcade(runtimeConfig(), tuiOptions(store, loader, ""))
}
