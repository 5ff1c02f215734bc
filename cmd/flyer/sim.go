package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wasteland-flyer/internal/clock"
	"github.com/vovakirdan/wasteland-flyer/internal/core"
	"github.com/vovakirdan/wasteland-flyer/internal/game"
	"github.com/vovakirdan/wasteland-flyer/internal/storage"
)

var (
	flagSimTicks    int
	flagSimRealtime bool
	flagSimRecord   bool
	flagSimIdle     bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless round with the autopilot",
	Long: `Run one round without a screen. The autopilot steers toward the next gap;
the round stops on a crash or after --ticks ticks.

By default ticks run back to back. With --realtime they run at --fps.
The same --seed always produces the same round.

Examples:
  flyer sim
  flyer sim --seed 7 --ticks 10000
  flyer sim --idle            # never flap: free fall into the ground
  flyer sim --record          # save the round and best score to --db`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks to run")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Pace ticks at --fps instead of running flat out")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the result to the database")
	simCmd.Flags().BoolVar(&flagSimIdle, "idle", false, "Disable the autopilot")
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger := newLogger("flyer-sim")

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	opts := []game.Option{
		game.WithLogger(logger),
		// Writes finish before the command returns
		game.WithExecutor(func(f func()) { f() }),
		game.OnMilestone(func(score int) {
			fmt.Fprintf(cmd.OutOrStdout(), "milestone reached at score %d, code %s\n", score, cfg.Scoring.RewardCode)
		}),
	}
	if flagSeed != 0 {
		opts = append(opts, game.WithSeed(flagSeed))
	}

	var store *storage.Store
	if flagSimRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, game.WithStore(store))
	}

	engine := game.New(cfg, opts...)
	pilot := game.NewAutopilot(cfg)
	engine.Start()

	rate := 0
	if flagSimRealtime {
		rate = flagFPS
	}
	driver := clock.NewDriver(rate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var summary *game.RoundSummary
	ticks, err := driver.Run(ctx, func() bool {
		if !flagSimIdle && pilot.ShouldFlap(engine.Snapshot()) {
			engine.RequestImpulse(core.SourceKey)
		}
		res := engine.Tick()
		for _, id := range res.Passed {
			logger.Debug("obstacle passed", "id", id, "score", res.Score)
		}
		if res.Over != nil {
			summary = res.Over
			return false
		}
		return engine.Snapshot().Tick < flagSimTicks
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	snap := engine.Snapshot()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ticks:     %d\n", ticks)
	fmt.Fprintf(out, "score:     %d\n", snap.Score)
	fmt.Fprintf(out, "milestone: %t\n", snap.Milestone)
	if summary == nil {
		fmt.Fprintln(out, "outcome:   survived")
		return nil
	}

	fmt.Fprintln(out, "outcome:   crashed")
	if summary.NewBest {
		fmt.Fprintln(out, "NEW HIGH SCORE!")
	}
	if store != nil {
		if _, err := store.SaveRound(storage.RoundRecord{
			Score:     summary.Score,
			Ticks:     summary.Ticks,
			Milestone: summary.Milestone,
			Player:    "autopilot",
		}); err != nil {
			return err
		}
	}
	return nil
}
