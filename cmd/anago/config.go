package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/anago-arcade/anago/internal/config"
)

var flagWriteConfig bool

var configCmd = &cobra.Command{
	Use:   "config [name]",
	Short: "Print or install default configs",
	Long: `Print the embedded default config for a game or the meme maker.
Without a name, lists the available configs and where they are searched.

With --write the default is copied into the user config directory so
it can be edited.

Examples:
  anago config
  anago config flappy
  anago config meme --write`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWriteConfig, "write", false, "Write the default into the user config directory")
}

func runConfig(_ *cobra.Command, args []string) error {
	dir := config.UserConfigDir()
	if len(args) == 0 {
		fmt.Println("Configs:")
		for _, name := range config.Names() {
			fmt.Printf("  %s\n", name)
		}
		fmt.Println()
		fmt.Printf("Searched in %s, then ./configs (.yaml, .yml or .toml).\n", dir)
		return nil
	}

	name := args[0]
	data := config.GetDefaultYAML(name)
	if data == nil {
		return fmt.Errorf("unknown config %q, run 'anago config' to list them", name)
	}

	if !flagWriteConfig {
		_, err := os.Stdout.Write(data)
		return err
	}

	if dir == "" {
		return fmt.Errorf("no user config directory, use --config-dir")
	}
	path := filepath.Join(dir, name+".yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("config written", "path", path)
	return nil
}
