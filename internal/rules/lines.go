package rules

import (
	"fmt"

	"github.com/aretw0/solstice/pkg/domain"
)

// Line is a read-only view over one row or column, optionally mirrored.
// Several rules are defined from one end of a line; running the same scan
// over the mirrored view covers the other end without duplicating it.
type Line struct {
	g     domain.Grid
	row   bool
	index int
	rev   bool
}

// Lines returns all rows then all columns of g, each in forward orientation.
func Lines(g domain.Grid) []Line {
	n := g.Size()
	out := make([]Line, 0, 2*n)
	for r := 0; r < n; r++ {
		out = append(out, Line{g: g, row: true, index: r})
	}
	for c := 0; c < n; c++ {
		out = append(out, Line{g: g, row: false, index: c})
	}
	return out
}

// Reversed returns the mirrored view of the line.
func (l Line) Reversed() Line {
	l.rev = !l.rev
	return l
}

// Len returns the number of cells in the line.
func (l Line) Len() int { return l.g.Size() }

// pos maps a view position to the underlying line position.
func (l Line) pos(i int) int {
	if l.rev {
		return l.Len() - 1 - i
	}
	return i
}

// At returns the cell at view position i.
func (l Line) At(i int) domain.Cell {
	p := l.pos(i)
	if l.row {
		return l.g.At(l.index, p)
	}
	return l.g.At(p, l.index)
}

// Coord returns the grid coordinate of view position i.
func (l Line) Coord(i int) domain.Coord {
	p := l.pos(i)
	if l.row {
		return domain.Coord{Row: l.index, Col: p}
	}
	return domain.Coord{Row: p, Col: l.index}
}

// Count returns how many cells of the line hold v.
func (l Line) Count(v domain.Cell) int {
	if l.row {
		return l.g.CountRow(l.index, v)
	}
	return l.g.CountCol(l.index, v)
}

// Label names the line 1-indexed for explanations, e.g. "row 1".
func (l Line) Label() string {
	if l.row {
		return fmt.Sprintf("row %d", l.index+1)
	}
	return fmt.Sprintf("column %d", l.index+1)
}

// Contains reports whether the coordinate lies on this line, and if so at
// which view position.
func (l Line) Contains(c domain.Coord) (int, bool) {
	if l.row {
		if c.Row != l.index {
			return 0, false
		}
		if l.rev {
			return l.Len() - 1 - c.Col, true
		}
		return c.Col, true
	}
	if c.Col != l.index {
		return 0, false
	}
	if l.rev {
		return l.Len() - 1 - c.Row, true
	}
	return c.Row, true
}

// Same reports whether two views refer to the same underlying line,
// regardless of orientation.
func (l Line) Same(other Line) bool {
	return l.row == other.row && l.index == other.index
}
