package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished games",
	Long: `Display the best recorded games from the scores database.

Examples:
  t2048 scores
  t2048 scores --limit 20
  t2048 scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of games to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games and reset the high score")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if flagClear {
		st, err := openStores(cfg, newLogger(cfg))
		if err != nil {
			return fmt.Errorf("open high score store: %w", err)
		}
		defer st.Close()

		if err := clearScores(st); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	store, err := storage.Open(cfg.HighScore.DBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(storage.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - 2048")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 't2048 play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-6s  %s\n", "Rank", "Score", "Max", "Rounds", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-6s  %s\n", "----", "-----", "---", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.MaxTile, entry.Rounds, dateStr)
	}

	stats, err := store.GetGameStats(storage.GameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Best: %d  Best tile: %d  Average: %.0f\n",
			stats.GamesCount, stats.BestScore, stats.BestTile, stats.AvgScore)
	}
	return nil
}

// clearScores deletes the game history and resets the high score of
// whichever backend holds it.
func clearScores(st stores) error {
	if st.db != nil {
		if err := st.db.ClearScores(storage.GameID); err != nil {
			return err
		}
	}
	return st.highScore.Save(0)
}
