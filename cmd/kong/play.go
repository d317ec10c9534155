package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-kong/internal/platform/tui"
	"github.com/vovakirdan/tui-kong/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Walk, climb ladders
  Space/X      - Jump
  Enter        - Start / continue
  P/Esc        - Pause
  B            - Back to menu
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options (asked for when --difficulty is not given):
  easy   - Hazards reach full speed after 8 loops
  normal - Hazards reach full speed after 4 loops
  hard   - Hazards reach full speed after 2 loops
  fixed  - No progression between loops
Every option plays the first loop with the same rules.

Examples:
  kong play kong
  kong play kong_mini --difficulty easy
  kong play kong --levels ./my-screens.yaml
  kong play kong --config ./my-kong.yaml --log kong.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'kong list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	preset := flagDifficulty
	if preset == "" {
		chosen, err := tui.RunDifficultySelector(registry.Title(gameID), cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// User pressed back or quit
		if chosen == "" {
			return
		}
		preset = string(chosen)
	}
	configureGame(preset)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
