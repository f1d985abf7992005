package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Size is the board dimension.
const Size = 4

// ErrInvalidDirection is returned when a Direction is outside North..West.
var ErrInvalidDirection = errors.New("t2048: invalid direction")

// Directions lists every valid direction in N, E, S, W order.
var Directions = [...]Direction{North, East, South, West}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// ParseDirection parses compass names, screen names and their initials.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "u", "up":
		return North, nil
	case "e", "east", "r", "right":
		return East, nil
	case "s", "south", "d", "down":
		return South, nil
	case "w", "west", "l", "left":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Grid is the 4x4 value model. 0 is an empty cell, tiles are powers of two.
// Grids are values: == compares every cell.
type Grid [Size][Size]int

// lineOrder describes how a direction walks each line: which axis the line
// runs along and whether the leading edge is index 0 or index Size-1.
type lineOrder struct {
	vertical bool // lines are columns
	reverse  bool // leading edge is Size-1
}

var lineOrders = map[Direction]lineOrder{
	North: {vertical: true},
	East:  {reverse: true},
	South: {vertical: true, reverse: true},
	West:  {},
}

// cell maps position i (counted from the leading edge) of line n to grid coordinates.
func (o lineOrder) cell(n, i int) (row, col int) {
	if o.reverse {
		i = Size - 1 - i
	}
	if o.vertical {
		return i, n
	}
	return n, i
}

// mergeLine packs the non-zero values toward index 0 and merges equal
// neighbours in a single pass. A merged tile is skipped so it cannot merge
// again in the same move.
func mergeLine(values []int) ([]int, int) {
	result := make([]int, 0, len(values))
	score := 0
	for i := 0; i < len(values); i++ {
		if i+1 < len(values) && values[i] == values[i+1] {
			merged := values[i] * 2
			result = append(result, merged)
			score += merged
			i++
			continue
		}
		result = append(result, values[i])
	}
	return result, score
}

// MoveResult is the outcome of ApplyMove.
type MoveResult struct {
	Grid       Grid
	ScoreDelta int
	Changed    bool
}

// ApplyMove slides and merges every line of grid toward dir's leading edge.
// The input grid is never modified.
func ApplyMove(grid Grid, dir Direction) (MoveResult, error) {
	order, ok := lineOrders[dir]
	if !ok {
		return MoveResult{Grid: grid}, fmt.Errorf("%w: %d", ErrInvalidDirection, int(dir))
	}

	var res MoveResult
	values := make([]int, 0, Size)
	for n := range Size {
		values = values[:0]
		for i := range Size {
			row, col := order.cell(n, i)
			if v := grid[row][col]; v != 0 {
				values = append(values, v)
			}
		}

		merged, score := mergeLine(values)
		res.ScoreDelta += score
		for i, v := range merged {
			row, col := order.cell(n, i)
			res.Grid[row][col] = v
		}
	}

	res.Changed = res.Grid != grid
	return res, nil
}

// EmptyCount returns the number of empty cells.
func (g Grid) EmptyCount() int {
	n := 0
	for y := range Size {
		for x := range Size {
			if g[y][x] == 0 {
				n++
			}
		}
	}
	return n
}

// HasPossibleMerge returns true if any 4-adjacent tiles hold equal values.
// Each adjacent pair is compared once: right and bottom neighbours only.
func (g Grid) HasPossibleMerge() bool {
	for y := range Size {
		for x := range Size {
			val := g[y][x]
			if val == 0 {
				continue
			}
			if x < Size-1 && g[y][x+1] == val {
				return true
			}
			if y < Size-1 && g[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if at least one direction would change the grid.
func (g Grid) CanMove() bool {
	return g.EmptyCount() > 0 || g.HasPossibleMerge()
}

// MaxTile returns the maximum tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for y := range Size {
		for x := range Size {
			maxVal = max(maxVal, g[y][x])
		}
	}
	return maxVal
}

// String prints one row per line with values right-aligned to the widest
// tile. Empty cells are blank.
func (g Grid) String() string {
	width := len(strconv.Itoa(g.MaxTile()))

	var sb strings.Builder
	for y := range Size {
		for x := range Size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v := g[y][x]; v != 0 {
				fmt.Fprintf(&sb, "%*d", width, v)
			} else {
				sb.WriteString(strings.Repeat(" ", width))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid reads a board written as rows separated by '/' and cells by
// ',', for example "2,0,0,0/0,4,0,0/0,0,0,0/0,0,0,8". Empty cells may be
// written as 0 or left blank. Values are not checked; see Game.Restore.
func ParseGrid(s string) (Grid, error) {
	var g Grid

	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != Size {
		return g, fmt.Errorf("t2048: grid needs %d rows, got %d", Size, len(rows))
	}
	for y, row := range rows {
		cells := strings.Split(row, ",")
		if len(cells) != Size {
			return g, fmt.Errorf("t2048: row %d needs %d cells, got %d", y, Size, len(cells))
		}
		for x, cell := range cells {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.Atoi(cell)
			if err != nil {
				return g, fmt.Errorf("t2048: row %d, col %d: %w", y, x, err)
			}
			g[y][x] = v
		}
	}
	return g, nil
}
