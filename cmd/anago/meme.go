package main

import (
	"github.com/spf13/cobra"

	"github.com/anago-arcade/anago/internal/config"
	"github.com/anago-arcade/anago/internal/platform/tui"
)

var (
	flagMemeConfig string
	flagExportDir  string
)

var memeCmd = &cobra.Command{
	Use:   "meme",
	Short: "Open the Anago meme maker",
	Long: `Dress Anago with hats, eyes, glasses, mouths, neckwear and noses,
add top and bottom captions, then export a PNG or copy it to the
clipboard (terminals with OSC 52 support).

Trait images are read from --assets; without them every trait is drawn
as a placeholder shape. Extra traits can be declared in meme.yaml.

Controls:
  Left/Right/Tab  - Category
  Up/Down         - Trait
  Enter/Space     - Wear or remove
  T / B           - Edit top / bottom text
  R / X           - Randomize / reset
  E / C           - Export PNG / copy
  S / O           - Save / load a look

Examples:
  anago meme --assets ./public
  anago meme --export-dir ~/Pictures`,
	RunE: runMeme,
}

func init() {
	memeCmd.Flags().StringVar(&flagMemeConfig, "config", "", "Path to a custom meme config (YAML or TOML)")
	memeCmd.Flags().StringVar(&flagExportDir, "export-dir", ".", "Directory exported PNGs are written to")
}

func runMeme(_ *cobra.Command, _ []string) error {
	if flagMemeConfig != "" {
		if _, err := config.LoadMeme(flagMemeConfig); err != nil {
			return err
		}
	}
	opts := tuiOptions(nil, openAssets(), flagMemeConfig)
	opts.ExportDir = flagExportDir
	return tui.RunMeme(runtimeConfig(), opts)
}
