package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-kong/internal/clock"
	"github.com/vovakirdan/tui-kong/internal/core"
	"github.com/vovakirdan/tui-kong/internal/games/kong"
	"github.com/vovakirdan/tui-kong/internal/registry"
)

var (
	flagSimTicks    uint64
	flagSimRealtime bool
	flagSimScript   string
	flagSimRender   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <game>",
	Short: "Run a game headless with scripted input",
	Long: `Run a game without a terminal UI and print where it ended up.

Scripts:
  idle  - Only presses Enter to get through the title and interludes
  auto  - Walks, climbs and jumps on a fixed pattern

The same seed and script always produce the same final state hash.
With --realtime the game runs at --fps and logs its progress every second.

Examples:
  kong simulate kong --seed 42
  kong simulate kong_mini --ticks 36000 --script idle
  kong simulate kong --realtime --ticks 600 --render`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.Uint64Var(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	f.BoolVar(&flagSimRealtime, "realtime", false, "Tick at --fps instead of as fast as possible")
	f.StringVar(&flagSimScript, "script", "auto", "Input script: idle, auto")
	f.BoolVar(&flagSimRender, "render", false, "Print the final screen")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q", gameID)
	}
	script, err := scriptByName(flagSimScript)
	if err != nil {
		return err
	}

	configureGame(flagDifficulty)
	created, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := created.(*kong.Game)
	if !ok {
		return fmt.Errorf("game %q cannot be simulated", gameID)
	}

	cfg := runtimeConfig(80, 24)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	board := &clock.Board[kong.Snapshot]{}
	step := func(tick uint64) bool {
		game.Step(script(tick))
		if flagSimRealtime {
			board.Publish(game.Snapshot())
		}
		return tick+1 < flagSimTicks
	}

	logger := appLogger.WithPrefix("simulate")
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	ran, err := runTicks(ctx, flagSimTicks, flagSimRealtime, flagFPS, step, board)
	if err != nil {
		return err
	}
	logger.Debug("done", "ticks", ran, "elapsed", time.Since(start))

	snap := game.Snapshot()
	fmt.Printf("game=%s seed=%d ticks=%d\n", gameID, cfg.Seed, ran)
	fmt.Printf("phase=%s level=%d stage=%s loops=%d\n", snap.Phase, snap.Level, snap.StageName, snap.Loops)
	fmt.Printf("score=%d bonus=%d lives=%d high=%d\n", snap.Score, snap.Bonus, snap.Lives, snap.HighScore)
	fmt.Printf("hash=%016x\n", snap.Hash())

	if flagSimRender {
		screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
		game.Render(screen)
		fmt.Println(screen.String())
	}
	return nil
}

// runTicks runs step at most ticks times, paced at fps in realtime mode.
// An interrupted realtime run is not an error.
func runTicks(ctx context.Context, ticks uint64, realtime bool, fps int, step clock.StepFunc, board *clock.Board[kong.Snapshot]) (uint64, error) {
	if ticks == 0 {
		return 0, nil
	}
	if !realtime {
		return clock.Drive(ticks, step), nil
	}
	ran, err := runRealtime(ctx, clock.New(fps), step, board)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return ran, err
}

// runRealtime ticks step on c and logs the published snapshot once a second.
func runRealtime(ctx context.Context, c *clock.Clock, step clock.StepFunc, board *clock.Board[kong.Snapshot]) (uint64, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		report := time.NewTicker(time.Second)
		defer report.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-report.C:
				if snap, n := board.Load(); n > 0 {
					appLogger.Info("progress", "tick", snap.Tick, "phase", snap.Phase, "score", snap.Score, "lives", snap.Lives)
				}
			}
		}
	}()

	ran, err := c.Run(ctx, step)
	cancel()
	<-done
	return ran, err
}
