// Package console plays 2048 in the terminal with Bubble Tea: full screen
// on a TTY, key by key from a pipe or script otherwise.
package console

import (
	"context"
	"errors"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Recorder stores finished games. *storage.Store satisfies it.
type Recorder interface {
	SaveScore(gameID string, snap t2048.Snapshot) (int64, error)
}

// SessionConfig holds everything a Session needs besides the game.
type SessionConfig struct {
	Config   config.Config
	In       io.Reader // ignored when Interactive
	Out      io.Writer
	Recorder Recorder // optional
	GameID   string   // key for Recorder
	Logger   *log.Logger

	// Interactive runs on the terminal's alternate screen with raw stdin.
	Interactive bool
	Color       bool
}

// Session runs one player's games until quit, end of input or cancellation.
type Session struct {
	model       *Model
	in          io.Reader
	out         io.Writer
	interactive bool
}

// NewSession wires a session around game.
func NewSession(game *t2048.Game, cfg SessionConfig) (*Session, error) {
	model, err := NewModel(game, cfg)
	if err != nil {
		return nil, err
	}
	return &Session{
		model:       model,
		in:          cfg.In,
		out:         cfg.Out,
		interactive: cfg.Interactive,
	}, nil
}

// Model returns the session's Bubble Tea model.
func (s *Session) Model() *Model {
	return s.model
}

// Run starts the Bubble Tea program. The high score is persisted whenever
// a game finishes or is left, including when ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
		tea.WithOutput(s.out),
	}

	var in *eofReader
	if s.interactive {
		opts = append(opts, tea.WithAltScreen())
	} else {
		in = &eofReader{r: s.in}
		opts = append(opts, tea.WithInput(in))
	}

	p := tea.NewProgram(s.model, opts...)
	if in != nil {
		in.onEOF = func() { p.Send(inputClosedMsg{}) }
	}

	_, err := p.Run()
	if !s.model.done {
		s.model.leave()
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// eofReader calls onEOF once when the underlying reader is exhausted.
// Bubble Tea stops reading at EOF without quitting.
type eofReader struct {
	r     io.Reader
	onEOF func()
	once  sync.Once
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if errors.Is(err, io.EOF) {
		if n > 0 {
			return n, nil
		}
		if e.onEOF != nil {
			e.once.Do(e.onEOF)
		}
	}
	return n, err
}
