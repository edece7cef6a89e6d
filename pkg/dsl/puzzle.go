package dsl

import (
	"fmt"
	"time"

	"github.com/aretw0/solstice/pkg/domain"
)

type placement struct {
	row, col int
	value    domain.Cell
}

// PuzzleBuilder provides a fluent API for configuring a single puzzle.
// Errors surface at Build time so chains stay clean.
type PuzzleBuilder struct {
	id         string
	name       string
	difficulty domain.Difficulty
	size       int
	rows       []string
	cells      []placement
	equals     []domain.Pair
	notEquals  []domain.Pair
	createdAt  time.Time
}

// New creates a standalone puzzle builder.
func New(id string) *PuzzleBuilder {
	return &PuzzleBuilder{id: id}
}

// Name sets the display name.
func (p *PuzzleBuilder) Name(name string) *PuzzleBuilder {
	p.name = name
	return p
}

// Difficulty grades the puzzle.
func (p *PuzzleBuilder) Difficulty(d domain.Difficulty) *PuzzleBuilder {
	p.difficulty = d
	return p
}

// Rows defines the starting board from row strings ('S', 'M' and '.').
// It replaces any board set by an earlier Rows or Size call.
func (p *PuzzleBuilder) Rows(rows ...string) *PuzzleBuilder {
	p.rows = rows
	p.size = 0
	return p
}

// Size defines an empty starting board of the given dimension.
// It replaces any board set by an earlier Rows or Size call.
func (p *PuzzleBuilder) Size(n int) *PuzzleBuilder {
	p.size = n
	p.rows = nil
	return p
}

// Sun places a Sun on the board.
func (p *PuzzleBuilder) Sun(row, col int) *PuzzleBuilder {
	p.cells = append(p.cells, placement{row: row, col: col, value: domain.Sun})
	return p
}

// Moon places a Moon on the board.
func (p *PuzzleBuilder) Moon(row, col int) *PuzzleBuilder {
	p.cells = append(p.cells, placement{row: row, col: col, value: domain.Moon})
	return p
}

// Equal requires the two cells to hold the same symbol.
func (p *PuzzleBuilder) Equal(row1, col1, row2, col2 int) *PuzzleBuilder {
	p.equals = append(p.equals, domain.Pair{Row1: row1, Col1: col1, Row2: row2, Col2: col2})
	return p
}

// NotEqual requires the two cells to hold different symbols.
func (p *PuzzleBuilder) NotEqual(row1, col1, row2, col2 int) *PuzzleBuilder {
	p.notEquals = append(p.notEquals, domain.Pair{Row1: row1, Col1: col1, Row2: row2, Col2: col2})
	return p
}

// Created stamps the puzzle's creation time.
func (p *PuzzleBuilder) Created(t time.Time) *PuzzleBuilder {
	p.createdAt = t
	return p
}

// Build assembles and validates the domain puzzle.
func (p *PuzzleBuilder) Build() (domain.Puzzle, error) {
	var grid domain.Grid
	var err error
	switch {
	case len(p.rows) > 0:
		grid, err = domain.ParseGrid(p.rows)
	case p.size > 0:
		grid, err = domain.NewGrid(p.size)
	default:
		return domain.Puzzle{}, fmt.Errorf("%w: puzzle %q has no board, call Rows or Size first",
			domain.ErrInvalidInput, p.id)
	}
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("puzzle %s: %w", p.id, err)
	}

	for _, c := range p.cells {
		if !grid.InBounds(domain.Coord{Row: c.row, Col: c.col}) {
			return domain.Puzzle{}, fmt.Errorf("%w: puzzle %s places a %s outside the board at (%d, %d)",
				domain.ErrInvalidInput, p.id, c.value, c.row, c.col)
		}
		grid.Set(c.row, c.col, c.value)
	}

	puzzle := domain.Puzzle{
		ID:         p.id,
		Name:       p.name,
		Difficulty: p.difficulty,
		Grid:       grid,
		Constraints: domain.ConstraintSet{
			Equals:    p.equals,
			NotEquals: p.notEquals,
		},
		CreatedAt: p.createdAt,
	}
	if err := puzzle.Validate(); err != nil {
		return domain.Puzzle{}, err
	}
	return puzzle, nil
}
