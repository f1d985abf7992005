package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagReset bool

var highscoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "Show the stored high score",
	Long: `Print the high score from the configured backend.

Examples:
  t2048 highscore
  t2048 highscore --reset`,
	Args: cobra.NoArgs,
	RunE: runHighscore,
}

func init() {
	highscoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the high score to 0")
}

func runHighscore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	st, err := openStores(cfg, logger)
	if err != nil {
		return fmt.Errorf("open high score store: %w", err)
	}
	defer st.Close()

	out := cmd.OutOrStdout()

	if flagReset {
		if err := st.highScore.Save(0); err != nil {
			return err
		}
		fmt.Fprintln(out, "High score reset.")
		return nil
	}

	value, err := st.highScore.Load()
	if errors.Is(err, storage.ErrNoHighScore) {
		fmt.Fprintln(out, "No high score recorded yet.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High score (%s): %d\n", cfg.HighScore.Backend, value)
	return nil
}
