// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play               - Play interactively, one command per line
//	t2048 replay <moves>     - Apply a move sequence and print the result
//	t2048 highscore          - Show or reset the stored high score
//	t2048 scores             - Show finished games from the scores database
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Use a specific config file
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Override the scores database path
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide and merge tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle.

Slide every tile up, right, down or left. Equal tiles that meet merge
into one tile of double value and add that value to your score. After
every move that changes the board a new 2 (or sometimes a 4) appears.
The game ends when the board is full and no neighbours match.

Available commands:
  play       - Play interactively
  replay     - Apply a scripted move sequence
  highscore  - Show or reset the high score
  scores     - View finished games
  config     - Print the effective configuration

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 replay --seed 42 wasdwasd
  t2048 scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(highscoreCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.HighScore.DBPath = flagDBPath
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})
	logger.SetLevel(cfg.LogLevel())
	return logger
}

// stores bundles the high-score store with the optional scores database.
type stores struct {
	highScore t2048.HighScoreStore
	db        *storage.Store // nil when the database could not be opened
}

func (s stores) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// openStores opens the configured high-score backend. The scores database
// is best-effort unless it is the high-score backend itself.
func openStores(cfg config.Config, logger *log.Logger) (stores, error) {
	var s stores

	switch cfg.HighScore.Backend {
	case config.BackendSQLite:
		db, err := storage.Open(cfg.HighScore.DBPath)
		if err != nil {
			return s, err
		}
		s.db = db
		s.highScore = db.HighScores(storage.GameID)
		return s, nil

	case config.BackendMemory:
		s.highScore = storage.NewMemoryStore(0)

	default:
		fs, err := storage.NewFileStore(cfg.HighScore.Path)
		if err != nil {
			return s, err
		}
		s.highScore = fs
	}

	if cfg.HighScore.DBPath != "" {
		db, err := storage.Open(cfg.HighScore.DBPath)
		if err != nil {
			// Continue without history - the game still works
			logger.Warn("could not open scores database", "error", err)
		} else {
			s.db = db
		}
	}
	return s, nil
}

func newGame(cfg config.Config, store t2048.HighScoreStore, logger *log.Logger) *t2048.Game {
	return t2048.New(
		t2048.NewRandSource(flagSeed),
		store,
		t2048.WithSpawnFourPercent(cfg.Game.SpawnFourPercent),
		t2048.WithLogger(logger),
	)
}
