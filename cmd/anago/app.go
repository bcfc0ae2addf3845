package main

import (
	"os"

	"golang.org/x/term"

	"github.com/anago-arcade/anago/internal/assets"
	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/core"
	"github.com/anago-arcade/anago/internal/games/bomber"
	"github.com/anago-arcade/anago/internal/games/breakout"
	"github.com/anago-arcade/anago/internal/games/flappy"
	"github.com/anago-arcade/anago/internal/games/invaders"
	"github.com/anago-arcade/anago/internal/games/snake"
	"github.com/anago-arcade/anago/internal/meme"
	"github.com/anago-arcade/anago/internal/platform/tui"
	"github.com/anago-arcade/anago/internal/storage"
)

// runtimeConfig builds the game config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	logger.Debug("scores database open", "path", flagDBPath)
	return store
}

// openAssets returns the image loader. A missing directory is only a
// warning: every image has a procedural fallback.
func openAssets() *assets.Loader {
	if flagAssets == "" {
		return assets.NewLoader("")
	}
	if st, err := os.Stat(flagAssets); err != nil || !st.IsDir() {
		logger.Warn("assets directory not found, drawing fallbacks", "path", flagAssets)
		return assets.NewLoader("")
	}
	return assets.NewLoader(flagAssets)
}

// configureGames applies the config file and difficulty to every game.
// path only applies to the game named gameID.
func configureGames(gameID, path string, loader *assets.Loader) {
	pathFor := func(id string) string {
		if id == gameID {
			return path
		}
		return ""
	}

	snake.SetConfigPath(pathFor("snake"))
	snake.SetDifficultyPreset(flagDifficulty)
	bomber.SetConfigPath(pathFor("bomber"))
	bomber.SetDifficultyPreset(flagDifficulty)
	breakout.SetConfigPath(pathFor("breakout"))
	breakout.SetDifficultyPreset(flagDifficulty)
	flappy.SetConfigPath(pathFor("flappy"))
	flappy.SetDifficultyPreset(flagDifficulty)
	flappy.SetAssets(loader)
	invaders.SetConfigPath(pathFor("invaders"))
	invaders.SetDifficultyPreset(flagDifficulty)
}

// memeConfig loads meme.yaml from the config search path.
func memeConfig(path string) config.MemeConfig {
	cfg, err := config.LoadMeme(path)
	if err != nil {
		logger.Warn("meme config fallback to defaults", "error", err)
	}
	return cfg
}

// tuiOptions assembles the services shared by the terminal screens.
func tuiOptions(store *storage.Store, loader *assets.Loader, memePath string) tui.Options {
	looks, err := meme.OpenLookStore("anago")
	if err != nil {
		logger.Warn("saved looks are kept for this session only", "error", err)
	}

	fd := int(os.Stdout.Fd())
	return tui.Options{
		Store:     store,
		Assets:    loader,
		Meme:      memeConfig(memePath),
		Looks:     looks,
		Clipboard: meme.NewOSC52Clipboard(os.Stdout, term.IsTerminal(fd), meme.InTmux(os.Environ())),
		ExportDir: ".",
		Logger:    logger,
	}
}
