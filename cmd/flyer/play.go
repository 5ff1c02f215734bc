package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wasteland-flyer/internal/core"
	"github.com/vovakirdan/wasteland-flyer/internal/platform/tui"
	"github.com/vovakirdan/wasteland-flyer/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the flyer in the terminal.

Controls:
  Space/Up/Click - Fly
  Enter          - Start
  R              - Play again (after game over)
  B/Esc          - Back to menu
  Tab            - Round history
  X              - Close the reward panel
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Examples:
  flyer play
  flyer play --seed 42
  flyer play --config ./my-flyer.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to a file (the terminal is taken by the game)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alternate screen owns stderr while playing
	logOut := io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{ReportTimestamp: true, Prefix: "flyer"})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := loadConfig(newLogger("flyer"))
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	player := "local"
	if u, err := user.Current(); err == nil && u.Username != "" {
		player = u.Username
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Player: player,
		Logger: logger,
	})
}
