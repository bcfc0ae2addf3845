package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anago-arcade/anago/internal/platform/window"
	"github.com/anago-arcade/anago/internal/registry"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open the specified game in a desktop window.

The window shows the game at its logical size times --scale and can be
resized freely. Keyboard, mouse and touch work as on the web. Sound
effects are read from <assets>/sounds/*.wav when present.

Examples:
  anago window breakout
  anago window flappy --scale 1.5`,
	Args: cobra.ExactArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1.5, "Window pixels per game pixel")
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'anago list' to see available games", gameID)
	}

	loader := openAssets()
	configureGames(gameID, flagConfig, loader)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	cfg.ScreenW, cfg.ScreenH = 0, 0
	return window.Run(game, cfg, window.Options{
		Store:  store,
		Assets: loader,
		Logger: logger,
		Scale:  flagScale,
	})
}
