// Package config provides YAML-based configuration for the game and its
// presentation layer: spawn probability, high-score backend, key bindings,
// tile palette and log level.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Config is the complete configuration passed to the CLI and console.
type Config struct {
	Game      GameConfig      `yaml:"game"`
	HighScore HighScoreConfig `yaml:"highscore"`
	Keys      KeyConfig       `yaml:"keys"`
	Theme     ThemeConfig     `yaml:"theme"`
	Log       LogConfig       `yaml:"log"`
}

// GameConfig holds engine parameters.
type GameConfig struct {
	SpawnFourPercent int `yaml:"spawn_four_percent"` // 0..100
}

// Backend selects where the high score is persisted.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// HighScoreConfig selects and locates the high-score store.
type HighScoreConfig struct {
	Backend Backend `yaml:"backend"`
	Path    string  `yaml:"path"`    // plain-text file for BackendFile
	DBPath  string  `yaml:"db_path"` // database for BackendSQLite and score history
}

// KeyConfig lists the key names bound to each action.
type KeyConfig struct {
	Up      []string `yaml:"up"`
	Right   []string `yaml:"right"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	NewGame []string `yaml:"new_game"`
	Quit    []string `yaml:"quit"`
}

// ThemeConfig holds the colors used to print the board.
type ThemeConfig struct {
	Background string      `yaml:"background"`
	EndOfGame  string      `yaml:"end_of_game"`
	Accent     string      `yaml:"accent"`
	Tiles      []TileStyle `yaml:"tiles"`
}

// TileStyle colors the tile 2^Exponent. Exponent 0 is the empty cell.
type TileStyle struct {
	Exponent   int    `yaml:"exponent"`
	Foreground string `yaml:"fg"`
	Background string `yaml:"bg"`
}

// LogConfig sets the logger verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks ranges, enum values, colors and key collisions.
func (c Config) Validate() error {
	if p := c.Game.SpawnFourPercent; p < 0 || p > 100 {
		return fmt.Errorf("config: spawn_four_percent must be within 0..100, got %d", p)
	}

	switch c.HighScore.Backend {
	case BackendFile:
		if c.HighScore.Path == "" {
			return fmt.Errorf("config: highscore.path is required for the file backend")
		}
	case BackendSQLite:
		if c.HighScore.DBPath == "" {
			return fmt.Errorf("config: highscore.db_path is required for the sqlite backend")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("config: unknown highscore backend %q", c.HighScore.Backend)
	}

	if _, err := NewKeymap(c.Keys); err != nil {
		return err
	}

	if err := c.Theme.validate(); err != nil {
		return err
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}

	return nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	level, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return log.InfoLevel
	}
	return level
}
