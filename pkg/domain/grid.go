package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MinSize is the smallest supported grid. Sizes must also be even so each line
// can hold exactly Size/2 of either symbol.
const MinSize = 4

// Coord identifies a cell on the grid. Coordinates are zero-indexed internally;
// human-readable output is 1-indexed via Display.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Display renders the coordinate 1-indexed for explanations, e.g. "(1, 3)".
func (c Coord) Display() string {
	return fmt.Sprintf("(%d, %d)", c.Row+1, c.Col+1)
}

// Grid is a square matrix of cells with value semantics: Clone before mutating
// shared instances. The size travels with the value, so callers never pass a
// separate size argument.
type Grid struct {
	size  int
	cells [][]Cell
}

// CheckSize validates a grid dimension: even and at least MinSize.
func CheckSize(size int) error {
	if size < MinSize {
		return fmt.Errorf("%w: size %d is below the minimum of %d", ErrInvalidInput, size, MinSize)
	}
	if size%2 != 0 {
		return fmt.Errorf("%w: size %d is odd", ErrInvalidInput, size)
	}
	return nil
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) (Grid, error) {
	if err := CheckSize(size); err != nil {
		return Grid{}, err
	}
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return Grid{size: size, cells: cells}, nil
}

// ParseGrid builds a grid from compact row strings ("S.M..." per row).
// All rows must have the same length as the row count.
func ParseGrid(rows []string) (Grid, error) {
	g, err := NewGrid(len(rows))
	if err != nil {
		return Grid{}, err
	}
	for r, row := range rows {
		runes := []rune(row)
		if len(runes) != g.size {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidInput, r+1, len(runes), g.size)
		}
		for c, ch := range runes {
			cell, err := CellFromRune(ch)
			if err != nil {
				return Grid{}, fmt.Errorf("row %d: %w", r+1, err)
			}
			g.cells[r][c] = cell
		}
	}
	return g, nil
}

// Size returns the grid dimension N.
func (g Grid) Size() int { return g.size }

// Zero reports whether the grid is the uninitialized zero value.
func (g Grid) Zero() bool { return g.size == 0 }

// At returns the cell at (row, col). Out-of-range access panics like a slice
// index would; callers validate coordinates at the boundary.
func (g Grid) At(row, col int) Cell { return g.cells[row][col] }

// Set writes a cell value in place. Use Clone first to preserve the original.
func (g Grid) Set(row, col int, v Cell) { g.cells[row][col] = v }

// InBounds reports whether the coordinate lies on the grid.
func (g Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Clone returns a deep copy sharing no storage with the receiver.
func (g Grid) Clone() Grid {
	cells := make([][]Cell, g.size)
	for i := range cells {
		cells[i] = make([]Cell, g.size)
		copy(cells[i], g.cells[i])
	}
	return Grid{size: g.size, cells: cells}
}

// Empties returns the number of empty cells.
func (g Grid) Empties() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c == Empty {
				n++
			}
		}
	}
	return n
}

// Complete reports whether every cell is filled. It is a fill-check only and
// does not re-verify legality.
func (g Grid) Complete() bool { return g.Empties() == 0 }

// CountRow returns how many cells of row hold v.
func (g Grid) CountRow(row int, v Cell) int {
	n := 0
	for _, c := range g.cells[row] {
		if c == v {
			n++
		}
	}
	return n
}

// CountCol returns how many cells of col hold v.
func (g Grid) CountCol(col int, v Cell) int {
	n := 0
	for r := 0; r < g.size; r++ {
		if g.cells[r][col] == v {
			n++
		}
	}
	return n
}

// Rows returns the compact row-string form, the inverse of ParseGrid.
func (g Grid) Rows() []string {
	rows := make([]string, g.size)
	for r, row := range g.cells {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteRune(c.Rune())
		}
		rows[r] = sb.String()
	}
	return rows
}

// String renders the grid one row per line, for logs and test failures.
func (g Grid) String() string { return strings.Join(g.Rows(), "\n") }

// Equal reports whether both grids have identical size and cells.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// gridJSON is the wire form: {"size": 6, "rows": ["S.M...", ...]}.
type gridJSON struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// MarshalJSON encodes the grid in its compact row-string form.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(gridJSON{Size: g.size, Rows: g.Rows()})
}

// UnmarshalJSON decodes the compact row-string form.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var wire gridJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	parsed, err := ParseGrid(wire.Rows)
	if err != nil {
		return err
	}
	if wire.Size != 0 && wire.Size != parsed.Size() {
		return fmt.Errorf("%w: declared size %d does not match %d rows", ErrInvalidInput, wire.Size, parsed.Size())
	}
	*g = parsed
	return nil
}
