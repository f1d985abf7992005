package t2048

import (
	"errors"
	"math/rand"
	"time"
)

// DefaultSpawnFourPercent is the chance, in percent, that a spawned tile is a 4.
const DefaultSpawnFourPercent = 10

// ErrNoEmptyCell is returned by Spawn when the grid is full.
var ErrNoEmptyCell = errors.New("t2048: no empty cell")

// RandomSource supplies uniform integers in [low, high], both inclusive.
type RandomSource interface {
	UniformInt(low, high int) int
}

// RandSource is a RandomSource backed by math/rand.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a seeded source. Seed 0 uses the current time.
func NewRandSource(seed int64) *RandSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// UniformInt implements RandomSource.
func (s *RandSource) UniformInt(low, high int) int {
	return low + s.rng.Intn(high-low+1)
}

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

// Spawn writes a 2 or a 4 into a uniformly chosen empty cell of grid.
//
// Two draws are made, always in this order: the 1-indexed position r of the
// target among the empty cells in row-major order, then a value draw in
// [1, 100] that yields a 4 when it is <= fourPercent.
func Spawn(grid *Grid, rng RandomSource, fourPercent int) (Cell, error) {
	empty := grid.EmptyCount()
	if empty == 0 {
		return Cell{}, ErrNoEmptyCell
	}

	r := rng.UniformInt(1, empty)
	seen := 0
	for y := range Size {
		for x := range Size {
			if grid[y][x] != 0 {
				continue
			}
			seen++
			if seen != r {
				continue
			}

			value := 2
			if rng.UniformInt(1, 100) <= fourPercent {
				value = 4
			}
			grid[y][x] = value
			return Cell{Row: y, Col: x}, nil
		}
	}

	// Unreachable for a source honouring its bounds.
	return Cell{}, ErrNoEmptyCell
}
