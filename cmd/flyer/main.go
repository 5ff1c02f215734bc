// flyer is a side-scrolling wasteland flyer for the terminal.
//
// Usage:
//
//	flyer play               - Play in the terminal
//	flyer sim                - Run a headless round with the autopilot
//	flyer serve              - Start SSH server for remote play
//	flyer scores             - Show the round history
//	flyer config             - Print the effective game constants
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gap placement
//	--db <path>      - Set database path (default: ~/.flyer/flyer.db)
//	--config <path>  - Load game constants from a YAML file
//	--verbose        - Log debug messages
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wasteland-flyer/internal/config"
)

var (
	// Global flags
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
	Use:   "flyer",
	Short: "Wasteland Flyer - fly through the radioactive wasteland",
	Long: `Wasteland Flyer is a side-scrolling obstacle game for the terminal.
Flap through the gaps, avoid the ground, and chase the high score.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless round with the autopilot
  serve    - Start SSH server for remote play
  scores   - View the round history
  config   - Print the effective game constants

Examples:
  flyer play
  flyer play --seed 42
  flyer sim --ticks 5000 --seed 7
  flyer serve --ssh :2222
  flyer scores --recent`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flyer/flyer.db", "Path to the scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom flyer config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the stderr logger shared by all commands.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the game constants and warns about settings that let
// the body skip through obstacles between ticks.
func loadConfig(logger *log.Logger) (config.FlyerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FlyerConfig{}, err
	}
	if cfg.TunnelingRisk() {
		logger.Warn("obstacle speed exceeds body size; collisions may be missed between ticks",
			"speed", cfg.Physics.ObstacleSpeed,
			"body", cfg.Body.Size,
		)
	}
	return cfg, nil
}
