// Package t2048 implements the 2048 game-state engine: the grid model, the
// slide/merge algorithm, tile spawning, scoring and end-of-game detection.
//
// The engine is synchronous and holds no locks. Callers sharing a Game
// between goroutines must serialize access themselves.
package t2048

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalidGrid is returned by Restore for boards the engine cannot produce.
var ErrInvalidGrid = errors.New("t2048: invalid grid")

// HighScoreStore loads and saves the single persisted high score.
// Load returns an error when nothing usable is stored.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Option configures a Game.
type Option func(*Game)

// WithSpawnFourPercent sets the chance, in percent, of spawning a 4.
func WithSpawnFourPercent(p int) Option {
	return func(g *Game) {
		g.spawnFour = p
	}
}

// WithLogger sets the logger used for non-fatal failures.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// Game owns the grid, score, round counter and high score.
type Game struct {
	grid      Grid
	score     int
	round     int
	highScore int
	spawnFour int

	rng    RandomSource
	store  HighScoreStore
	logger *log.Logger
}

// New creates a game and starts it with NewGame.
func New(rng RandomSource, store HighScoreStore, opts ...Option) *Game {
	g := &Game{
		spawnFour: DefaultSpawnFourPercent,
		rng:       rng,
		store:     store,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.NewGame()
	return g
}

// NewGame clears the board, spawns two tiles and reloads the high score.
// A failed load leaves the high score at 0.
func (g *Game) NewGame() {
	g.round = 0
	g.score = 0
	g.grid = Grid{}

	g.spawn()
	g.spawn()

	g.highScore = 0
	hs, err := g.store.Load()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		return
	}
	g.highScore = hs
}

// Move slides the board in dir. It returns false, leaving every field
// untouched, when the board would not change.
func (g *Game) Move(dir Direction) (bool, error) {
	res, err := ApplyMove(g.grid, dir)
	if err != nil {
		return false, err
	}
	if !res.Changed {
		return false, nil
	}

	g.grid = res.Grid
	g.score += res.ScoreDelta
	g.spawn()
	g.round++
	g.highScore = max(g.highScore, g.score)

	g.logger.Debug("move", "dir", dir, "delta", res.ScoreDelta, "score", g.score, "round", g.round)
	return true, nil
}

// Restore replaces the running game with grid, score and round. Every tile
// must be 0 or a power of two of at least 2. The high score is raised to
// score when needed.
func (g *Game) Restore(grid Grid, score, round int) error {
	if score < 0 || round < 0 {
		return fmt.Errorf("%w: negative score %d or round %d", ErrInvalidGrid, score, round)
	}
	for y := range Size {
		for x := range Size {
			if v := grid[y][x]; v != 0 && (v < 2 || v&(v-1) != 0) {
				return fmt.Errorf("%w: tile %d at row %d, col %d", ErrInvalidGrid, v, y, x)
			}
		}
	}

	g.grid = grid
	g.score = score
	g.round = round
	g.highScore = max(g.highScore, score)
	return nil
}

// spawn places a tile; a full board is logged, not returned.
func (g *Game) spawn() {
	if _, err := Spawn(&g.grid, g.rng, g.spawnFour); err != nil {
		g.logger.Warn("could not spawn tile", "round", g.round, "error", err)
	}
}

// IsFinished returns true when the board is full and no 4-adjacent tiles match.
func (g *Game) IsFinished() bool {
	return g.grid.EmptyCount() == 0 && !g.grid.HasPossibleMerge()
}

// PersistHighScore saves max(high score, score). Failures are logged.
func (g *Game) PersistHighScore() {
	g.highScore = max(g.highScore, g.score)
	if err := g.store.Save(g.highScore); err != nil {
		g.logger.Error("could not save high score", "score", g.highScore, "error", err)
	}
}

// Grid returns a copy of the current grid.
func (g *Game) Grid() Grid {
	return g.grid
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best known score, including the current game.
func (g *Game) HighScore() int {
	return g.highScore
}

// Round returns the number of successful moves in this game.
func (g *Game) Round() int {
	return g.round
}

// SpawnFourPercent returns the configured chance of spawning a 4.
func (g *Game) SpawnFourPercent() int {
	return g.spawnFour
}
