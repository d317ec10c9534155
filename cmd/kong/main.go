// kong is a girder-climbing arcade game for the terminal.
//
// Usage:
//
//	kong list                - List available games
//	kong play <game>         - Play a game
//	kong menu                - Start menu to pick games interactively
//	kong scores <game>       - Show high scores for a game
//	kong simulate <game>     - Run a game headless with scripted input
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/kong.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--levels <path>       - Level set YAML replacing the built-in screens
//	--log <path>          - Write logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kong/internal/config"
	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/games/kong"
	"github.com/vovakirdan/tui-kong/internal/platform/tui"
	"github.com/vovakirdan/tui-kong/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLogPath    string
	flagLogLevel   string
)

var (
	// appLogger is shared by every command once the flags are parsed.
	appLogger = log.New(io.Discard)
	// logFile is the open --log target, closed on exit.
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kong",
	Short: "Kong - climb the girders in your terminal",
	Long: `Kong is a terminal arcade game: climb ladders, jump barrels and
fireballs, grab a hammer and reach the top of four different screens.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  scores    - View high scores
  simulate  - Run a game headless with scripted input

Examples:
  kong list
  kong play kong
  kong play kong_mini --difficulty hard
  kong menu
  kong scores kong
  kong simulate kong --ticks 18000 --seed 7`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/kong.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevels, "levels", "", "Path to a level set YAML")
	pf.StringVar(&flagLogPath, "log", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// interactive reports whether cmd takes over the terminal.
func interactive(cmd *cobra.Command) bool {
	return cmd == playCmd || cmd == menuCmd
}

// setupLogging builds the shared logger. Interactive commands log only to
// a --log file so the game screen stays clean.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("invalid --difficulty %q: want easy, normal, hard or fixed", flagDifficulty)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogPath != "":
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case interactive(cmd):
		w = io.Discard
	}

	appLogger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "kong",
		Level:           level,
	})
	kong.SetLogger(appLogger)
	tui.SetLogger(appLogger.WithPrefix("tui"))
	return nil
}

// configureGame applies the game flags before a game is created.
func configureGame(preset string) {
	kong.SetConfigPath(flagConfig)
	kong.SetLevelsPath(flagLevels)
	kong.SetDifficultyPreset(preset)
}

// openStore opens the score database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config for a screen of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
