package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var (
	flagPersist bool
	flagVerbose bool
	flagBoard   string
)

var replayCmd = &cobra.Command{
	Use:   "replay <moves>...",
	Short: "Apply a move sequence and print the final board",
	Long: `Apply moves to a fresh game and print the resulting board.

Each argument is either a bound key name ("left", "up") or a run of
single-key moves ("wasd"). With the same --seed the result is always
the same. Moves that do not change the board are skipped, as in play.

Examples:
  t2048 replay --seed 1 wwaassdd
  t2048 replay --seed 7 left left up right
  t2048 replay --seed 7 --persist aaaa
  t2048 replay --board "2,2,0,0/0,0,0,0/0,0,4,4/0,0,0,0" a`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagPersist, "persist", false, "Save the high score and record the game")
	replayCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print the board after every move")
	replayCmd.Flags().StringVar(&flagBoard, "board", "", "Start from this board: rows split by '/', cells by ','")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	keymap, err := config.NewKeymap(cfg.Keys)
	if err != nil {
		return err
	}
	dirs, err := parseMoves(keymap, args)
	if err != nil {
		return err
	}

	st := stores{highScore: storage.NewMemoryStore(0)}
	if flagPersist {
		st, err = openStores(cfg, logger)
		if err != nil {
			return fmt.Errorf("open high score store: %w", err)
		}
	}
	defer st.Close()

	game := newGame(cfg, st.highScore, logger)
	if flagBoard != "" {
		grid, err := t2048.ParseGrid(flagBoard)
		if err != nil {
			return err
		}
		if err := game.Restore(grid, 0, 0); err != nil {
			return err
		}
	}
	out := cmd.OutOrStdout()

	for i, dir := range dirs {
		if game.IsFinished() {
			fmt.Fprintf(out, "Game finished after %d of %d moves.\n", i, len(dirs))
			break
		}
		moved, err := game.Move(dir)
		if err != nil {
			return err
		}
		if flagVerbose {
			fmt.Fprintf(out, "#%d %s moved=%v\n", i+1, dir, moved)
			printSnapshot(out, game.Snapshot())
		}
	}

	snap := game.Snapshot()
	if !flagVerbose {
		printSnapshot(out, snap)
	}

	if flagPersist {
		if st.db != nil && snap.Round > 0 {
			if _, err := st.db.SaveScore(storage.GameID, snap); err != nil {
				logger.Error("could not record score", "error", err)
			}
		}
		game.PersistHighScore()
	}
	return nil
}

// parseMoves resolves each argument as a key name, or else as a run of
// single-character keys.
func parseMoves(keymap *config.Keymap, args []string) ([]t2048.Direction, error) {
	var dirs []t2048.Direction
	for _, arg := range args {
		if dir, ok := keymap.Resolve(arg).Direction(); ok {
			dirs = append(dirs, dir)
			continue
		}
		for _, r := range arg {
			dir, ok := keymap.Resolve(string(r)).Direction()
			if !ok {
				return nil, fmt.Errorf("unknown move %q in %q", r, arg)
			}
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

func printSnapshot(w io.Writer, snap t2048.Snapshot) {
	fmt.Fprint(w, snap.Grid)
	fmt.Fprintf(w, "Score: %d  Round: %d  HighScore: %d  MaxTile: %d  Phase: %s\n",
		snap.Score, snap.Round, snap.HighScore, snap.MaxTile, snap.Phase)
}
