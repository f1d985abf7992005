package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

const minCellWidth = 6

// BoardRenderer prints snapshots as a grid of colored tiles.
type BoardRenderer struct {
	renderer *lipgloss.Renderer
	theme    config.ThemeConfig
	color    bool
}

// NewBoardRenderer creates a renderer for out. With color false only the
// layout is applied.
func NewBoardRenderer(out io.Writer, theme config.ThemeConfig, color bool) *BoardRenderer {
	return &BoardRenderer{
		renderer: lipgloss.NewRenderer(out),
		theme:    theme,
		color:    color,
	}
}

// Render returns the HUD line followed by the board.
func (r *BoardRenderer) Render(snap t2048.Snapshot) string {
	width := max(minCellWidth, len(strconv.Itoa(snap.MaxTile))+2)

	rows := make([]string, 0, t2048.Size)
	for y := range t2048.Size {
		cells := make([]string, 0, t2048.Size)
		for x := range t2048.Size {
			cells = append(cells, r.cell(snap.Grid[y][x], width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	board := r.frame(lipgloss.JoinVertical(lipgloss.Left, rows...))

	hud := r.hud(snap)
	if snap.Finished() {
		return lipgloss.JoinVertical(lipgloss.Left, hud, board, r.banner("GAME OVER"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, hud, board)
}

func (r *BoardRenderer) cell(value, width int) string {
	style := r.renderer.NewStyle().
		Width(width).
		Align(lipgloss.Center)

	if r.color {
		tile := r.theme.Tile(value)
		style = style.
			Foreground(lipgloss.Color(tile.Foreground)).
			Background(lipgloss.Color(tile.Background))
	}

	label := "."
	if value != 0 {
		label = strconv.Itoa(value)
	}
	return style.Render(label)
}

// frame pads the board with the theme background.
func (r *BoardRenderer) frame(board string) string {
	if !r.color || r.theme.Background == "" {
		return board
	}
	return r.renderer.NewStyle().
		Background(lipgloss.Color(r.theme.Background)).
		Padding(0, 1).
		Render(board)
}

func (r *BoardRenderer) hud(snap t2048.Snapshot) string {
	text := fmt.Sprintf("Score: %d  Round: %d  Best: %d", snap.Score, snap.Round, snap.HighScore)
	style := r.renderer.NewStyle().Bold(true)
	if r.color && r.theme.Accent != "" {
		style = style.Foreground(lipgloss.Color(r.theme.Accent))
	}
	return style.Render(text)
}

func (r *BoardRenderer) banner(text string) string {
	style := r.renderer.NewStyle().Bold(true).Padding(0, 1)
	if r.color && r.theme.EndOfGame != "" {
		style = style.Background(lipgloss.Color(r.theme.EndOfGame))
	}
	return style.Render(text)
}
