// flyer-desktop opens the flyer in an 800x600 window.
//
// It shares the game constants, best score, and round history with the
// terminal build. It is a separate binary because the window backend needs
// cgo and a display, which the terminal and SSH builds do not.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wasteland-flyer/internal/config"
	"github.com/vovakirdan/wasteland-flyer/internal/platform/desktop"
	"github.com/vovakirdan/wasteland-flyer/internal/storage"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flyer-desktop",
	Short: "Wasteland Flyer in a window",
	Long: `Open Wasteland Flyer in a desktop window.

Controls:
  Click/Space - Fly (click also starts from the menu)
  Enter       - Start
  R           - Play again
  B/Esc       - Back to menu
  X           - Close the reward panel
  Q           - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.flyer/flyer.db", "Path to the scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a custom flyer config YAML")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")
}

func run(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flyer-desktop",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cfg.TunnelingRisk() {
		logger.Warn("obstacle speed exceeds body size; collisions may be missed between ticks")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return desktop.Run(desktop.Options{
		Config:   cfg,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Store:    store,
		Logger:   logger,
	})
}
