package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anago-arcade/anago/internal/platform/tui"
	"github.com/anago-arcade/anago/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game in the terminal.

Controls:
  Arrows/WASD  - Move
  Space/Enter  - Start, flap, fire, bomb, launch
  Mouse        - Drag the paddle or ship, click to act
  R            - Restart after game over
  Ctrl+S       - Screenshot (text and PNG)
  Esc/Q        - Quit

Examples:
  anago play snake
  anago play bomber --difficulty easy
  anago play flappy --config ./my-flappy.yaml
  anago play invaders --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config (YAML or TOML)")
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom game config (YAML or TOML)")
}

func runPlay(_ *cobra.Command, args []string) error {
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

	logger.Debug("starting game", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig(), tuiOptions(store, loader, "")); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
