package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wasteland-flyer/internal/platform/tui"
	"github.com/vovakirdan/wasteland-flyer/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
	flagScoresTUI    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the round history",
	Long: `Display the best rounds, or the most recent ones with --recent.

Examples:
  flyer scores
  flyer scores --recent --limit 20
  flyer scores --tui
  flyer scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recent rounds instead of the best")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the round history (the best score is kept)")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history interactively")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRounds(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Round history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	var rounds []storage.RoundRecord
	title := "High Scores"
	if flagScoresRecent {
		title = "Recent Rounds"
		rounds, err = store.RecentRounds(flagScoresLimit)
	} else {
		rounds, err = store.TopRounds(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s - Wasteland Flyer\n\n", title)

	if len(rounds) == 0 {
		fmt.Fprintln(out, "No rounds recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'flyer play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-7s  %-12s  %s\n", "Rank", "Score", "Ticks", "Pilot", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-7s  %-12s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, r := range rounds {
		score := fmt.Sprintf("%d", r.Score)
		if r.Milestone {
			score += "*"
		}
		fmt.Fprintf(out, "  %-4d  %-6s  %-7d  %-12s  %s\n",
			i+1, score, r.Ticks, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	if best, err := store.BestScore(); err == nil {
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	if stats, err := store.Stats(); err == nil && stats.Rounds > 0 {
		fmt.Fprintf(out, "Rounds: %d   Average: %.1f   Milestones: %d\n",
			stats.Rounds, stats.AvgScore, stats.Milestones)
	}
	return nil
}
