package config

import (
	"fmt"
	"math/bits"
	"regexp"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Exponent returns k for a tile value 2^k, and 0 for an empty cell.
func Exponent(value int) int {
	if value <= 0 {
		return 0
	}
	return bits.Len(uint(value)) - 1
}

// Tile returns the style for value. Values past the palette reuse its
// highest entry.
func (t ThemeConfig) Tile(value int) TileStyle {
	exp := Exponent(value)

	var best TileStyle
	found := false
	for _, s := range t.Tiles {
		if s.Exponent == exp {
			return s
		}
		if s.Exponent < exp && (!found || s.Exponent > best.Exponent) {
			best = s
			found = true
		}
	}
	return best
}

func (t ThemeConfig) validate() error {
	for name, c := range map[string]string{
		"background":  t.Background,
		"end_of_game": t.EndOfGame,
		"accent":      t.Accent,
	} {
		if c != "" && !hexColor.MatchString(c) {
			return fmt.Errorf("config: theme.%s: malformed color %q", name, c)
		}
	}

	seen := make(map[int]bool, len(t.Tiles))
	for _, s := range t.Tiles {
		if s.Exponent < 0 {
			return fmt.Errorf("config: theme.tiles: negative exponent %d", s.Exponent)
		}
		if seen[s.Exponent] {
			return fmt.Errorf("config: theme.tiles: duplicate exponent %d", s.Exponent)
		}
		seen[s.Exponent] = true

		for _, c := range []string{s.Foreground, s.Background} {
			if !hexColor.MatchString(c) {
				return fmt.Errorf("config: theme.tiles[%d]: malformed color %q", s.Exponent, c)
			}
		}
	}
	return nil
}
