package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration. It matches defaults/t2048.yaml.
func Default() Config {
	return Config{
		Game: GameConfig{
			SpawnFourPercent: 10,
		},
		HighScore: HighScoreConfig{
			Backend: BackendFile,
			Path:    "~/.t2048/2048highscore.txt",
			DBPath:  "~/.t2048/scores.db",
		},
		Keys: KeyConfig{
			Up:      []string{"w", "up"},
			Right:   []string{"d", "right"},
			Down:    []string{"s", "down"},
			Left:    []string{"a", "left"},
			NewGame: []string{"n"},
			Quit:    []string{"q"},
		},
		Theme: ThemeConfig{
			Background: "#776e65",
			EndOfGame:  "#edc22e",
			Accent:     "#50d1f5",
			Tiles: []TileStyle{
				{Exponent: 0, Foreground: "#000000", Background: "#aa9898"},
				{Exponent: 1, Foreground: "#776e65", Background: "#eee4da"},
				{Exponent: 2, Foreground: "#776e65", Background: "#ede0c8"},
				{Exponent: 3, Foreground: "#f9f6f2", Background: "#f2b179"},
				{Exponent: 4, Foreground: "#f9f6f2", Background: "#f59563"},
				{Exponent: 5, Foreground: "#f9f6f2", Background: "#f67c5f"},
				{Exponent: 6, Foreground: "#f9f6f2", Background: "#f65e3b"},
				{Exponent: 7, Foreground: "#f9f6f2", Background: "#edcf72"},
				{Exponent: 8, Foreground: "#f9f6f2", Background: "#edcc61"},
				{Exponent: 9, Foreground: "#f9f6f2", Background: "#edc850"},
				{Exponent: 10, Foreground: "#f9f6f2", Background: "#edc53f"},
				{Exponent: 11, Foreground: "#f9f6f2", Background: "#edc22e"},
				{Exponent: 12, Foreground: "#ffffff", Background: "#50d1f5"},
				{Exponent: 13, Foreground: "#ffffff", Background: "#7070ee"},
				{Exponent: 14, Foreground: "#ffffff", Background: "#4040ee"},
				{Exponent: 15, Foreground: "#ffffff", Background: "#484e4d"},
				{Exponent: 16, Foreground: "#ffffff", Background: "#403635"},
				{Exponent: 17, Foreground: "#ffffff", Background: "#201818"},
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
