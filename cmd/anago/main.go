// anago is the $ANAGO arcade: five small games and a meme maker, played
// in the terminal, over SSH or in a desktop window.
//
// Usage:
//
//	anago list              - List available games
//	anago play <game>       - Play a game in the terminal
//	anago window <game>     - Play a game in a desktop window
//	anago menu              - Open the arcade lobby
//	anago meme              - Open the meme maker
//	anago serve             - Start the SSH server
//	anago scores [game]     - Show high scores
//	anago config [name]     - Print a default config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Scores database (default: in memory)
//	--assets <dir>        - Directory holding meme-maker and sprite images
//	--config-dir <dir>    - Directory searched for user configs
//	--difficulty <preset> - easy, normal or hard
//	--verbose             - Debug logging
//	--profile <kind>      - Write a cpu, mem or trace profile
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/anago-arcade/anago/internal/config"

	// Import games to register them
	_ "github.com/anago-arcade/anago/internal/games/bomber"
	_ "github.com/anago-arcade/anago/internal/games/breakout"
	_ "github.com/anago-arcade/anago/internal/games/flappy"
	_ "github.com/anago-arcade/anago/internal/games/invaders"
	_ "github.com/anago-arcade/anago/internal/games/snake"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagAssets     string
	flagConfigDir  string
	flagDifficulty string
	flagVerbose    bool
	flagProfile    string

	logger   *log.Logger
	profiler interface{ Stop() }
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "anago",
	Short: "$ANAGO ARCADE - meme-token games in your terminal",
	Long: `$ANAGO ARCADE bundles five small games and a meme maker starring
Anago, the purple French bulldog.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a desktop window
  menu     - Arcade lobby with every game, the meme maker and scores
  meme     - Anago meme maker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print default configs

Examples:
  anago list
  anago play snake
  anago window flappy --difficulty hard
  anago menu
  anago serve --ssh :2222
  anago scores invaders`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if profiler != nil {
			profiler.Stop()
		}
	},
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "", "Path to scores database (empty = this session only)")
	flags.StringVar(&flagAssets, "assets", "", "Directory with meme-maker and sprite images")
	flags.StringVar(&flagConfigDir, "config-dir", "", "Directory searched for user configs (default ~/.anago/configs)")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
	flags.StringVar(&flagProfile, "profile", "", "Write a profile: cpu, mem or trace")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(memeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup runs before every command: .env defaults, logging, profiling and
// the shared game settings.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(); err != nil {
		return fmt.Errorf("read .env: %w", err)
	}
	flags := cmd.Flags()
	if !flags.Changed("db") {
		flagDBPath = config.EnvString(config.EnvDB, flagDBPath)
	}
	if !flags.Changed("assets") {
		flagAssets = config.EnvString(config.EnvAssets, flagAssets)
	}
	if !flags.Changed("fps") {
		flagFPS = config.EnvInt(config.EnvFPS, flagFPS)
	}
	if !flags.Changed("seed") {
		flagSeed = config.EnvInt64(config.EnvSeed, flagSeed)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "anago",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		return err
	}
	if flagConfigDir != "" {
		config.SetSearchDir(flagConfigDir)
	}

	switch flagProfile {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "trace":
		profiler = profile.Start(profile.TraceProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return fmt.Errorf("unknown profile %q (cpu, mem, trace)", flagProfile)
	}
	return nil
}
