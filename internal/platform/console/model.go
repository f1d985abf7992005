package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// inputClosedMsg is sent when scripted input runs out.
type inputClosedMsg struct{}

// Model is the Bubble Tea model for one player's 2048 games.
type Model struct {
	game     *t2048.Game
	keymap   *config.Keymap
	keys     KeyMap
	help     help.Model
	board    *BoardRenderer
	recorder Recorder
	gameID   string
	logger   *log.Logger

	pending  config.Action // quit or new game waiting for y/n
	status   string
	recorded bool // current game already written to recorder
	done     bool // left through quit or end of input
}

// NewModel creates a model driving game.
func NewModel(game *t2048.Game, cfg SessionConfig) (*Model, error) {
	keymap, err := config.NewKeymap(cfg.Config.Keys)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Model{
		game:     game,
		keymap:   keymap,
		keys:     NewKeyMap(keymap),
		help:     help.New(),
		board:    NewBoardRenderer(cfg.Out, cfg.Config.Theme, cfg.Color),
		recorder: cfg.Recorder,
		gameID:   cfg.GameID,
		logger:   logger,
	}, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case inputClosedMsg:
		return m.quit()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	// Piped input arrives as runs of runes
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		for _, r := range msg.Runes {
			if _, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}); cmd != nil {
				return m, cmd
			}
		}
		return m, nil
	}

	if m.pending != config.ActionNone {
		return m.handleConfirm(msg)
	}

	action := m.keymap.Resolve(msg.String())
	switch action {
	case config.ActionQuit, config.ActionNewGame:
		if m.game.IsFinished() {
			return m.perform(action)
		}
		m.pending = action
		m.status = ""

	case config.ActionNone:
		if msg.Type == tea.KeyRunes {
			m.status = fmt.Sprintf("Unknown key %q.", msg.String())
		}

	default:
		dir, _ := action.Direction()
		m.move(dir)
	}

	return m, nil
}

func (m *Model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		action := m.pending
		m.pending = config.ActionNone
		return m.perform(action)

	case key.Matches(msg, m.keys.No):
		m.pending = config.ActionNone
		m.status = "Cancelled."
	}
	return m, nil
}

func (m *Model) perform(action config.Action) (tea.Model, tea.Cmd) {
	if action == config.ActionQuit {
		return m.quit()
	}

	m.leave()
	m.game.NewGame()
	m.recorded = false
	m.status = ""
	return m, nil
}

func (m *Model) move(dir t2048.Direction) {
	moved, err := m.game.Move(dir)
	if err != nil {
		m.logger.Error("move rejected", "dir", dir, "error", err)
		return
	}
	if !moved {
		m.status = fmt.Sprintf("Cannot move %s.", dir)
		return
	}

	m.status = ""
	if m.game.IsFinished() {
		m.finish()
		m.status = fmt.Sprintf("Press %s for a new game or %s to quit.",
			m.keys.NewGame.Help().Key, m.keys.Quit.Help().Key)
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.leave()
	m.done = true
	return m, tea.Quit
}

// finish records a finished game once and persists the high score.
func (m *Model) finish() {
	if m.recorded {
		return
	}
	m.record()
	m.game.PersistHighScore()
}

// leave handles an abandoned or finished game before quitting or restarting.
func (m *Model) leave() {
	if !m.recorded && m.game.Round() > 0 {
		m.record()
	}
	m.game.PersistHighScore()
}

func (m *Model) record() {
	m.recorded = true
	if m.recorder == nil {
		return
	}
	snap := m.game.Snapshot()
	if _, err := m.recorder.SaveScore(m.gameID, snap); err != nil {
		m.logger.Error("could not record score", "score", snap.Score, "error", err)
	}
}

// View renders the board, the status line and the key help.
func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.board.Render(m.game.Snapshot()))
	sb.WriteString("\n")

	switch m.pending {
	case config.ActionQuit:
		sb.WriteString("Really quit? (y/n)")
	case config.ActionNewGame:
		sb.WriteString("Really start a new game? (y/n)")
	default:
		sb.WriteString(m.status)
	}

	if !m.done {
		sb.WriteString("\n")
		sb.WriteString(m.help.View(m.keys))
	}
	sb.WriteString("\n")
	return sb.String()
}
