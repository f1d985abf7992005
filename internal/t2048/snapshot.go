package t2048

// Phase is the externally visible game phase.
type Phase string

const (
	PhaseActive   Phase = "active"
	PhaseFinished Phase = "finished"
)

// Snapshot is a read view of a Game for presentation and replay checks.
type Snapshot struct {
	Grid      Grid
	Score     int
	Round     int
	HighScore int
	MaxTile   int
	Phase     Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhaseActive
	if g.IsFinished() {
		phase = PhaseFinished
	}

	return Snapshot{
		Grid:      g.grid,
		Score:     g.score,
		Round:     g.round,
		HighScore: g.highScore,
		MaxTile:   g.grid.MaxTile(),
		Phase:     phase,
	}
}

// Finished reports whether the snapshot was taken in the finished phase.
func (s Snapshot) Finished() bool {
	return s.Phase == PhaseFinished
}
