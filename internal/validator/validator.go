// Package validator implements the legality checks for Solstice grids: the
// exhaustive pre-solve gate and the fast short-circuiting partial check.
package validator

import (
	"fmt"

	"github.com/aretw0/solstice/pkg/domain"
)

// lineLabel names a line 1-indexed for violation text.
func lineLabel(row bool, index int) string {
	if row {
		return fmt.Sprintf("row %d", index+1)
	}
	return fmt.Sprintf("column %d", index+1)
}

// ValidateStart runs the full pre-solve gate, accumulating every violation as
// display-ready text. Solving must not proceed when the report is not legal.
func ValidateStart(g domain.Grid, cs domain.ConstraintSet) domain.Report {
	var violations []string

	n := g.Size()
	for r := 0; r < n; r++ {
		violations = append(violations, lineViolations(g, true, r)...)
	}
	for c := 0; c < n; c++ {
		violations = append(violations, lineViolations(g, false, c)...)
	}
	violations = append(violations, constraintViolations(g, cs)...)

	if g.Empties() == n*n {
		violations = append(violations, "the grid is entirely empty")
	}

	return domain.Report{Legal: len(violations) == 0, Violations: violations}
}

// LegalPartial applies the same structural rules as ValidateStart but stops at
// the first violation. An entirely empty grid is legal here: emptiness only
// matters for the start gate.
func LegalPartial(g domain.Grid, cs domain.ConstraintSet) bool {
	n := g.Size()
	half := n / 2
	for r := 0; r < n; r++ {
		if g.CountRow(r, domain.Sun) > half || g.CountRow(r, domain.Moon) > half {
			return false
		}
		if hasRun(g, true, r) {
			return false
		}
	}
	for c := 0; c < n; c++ {
		if g.CountCol(c, domain.Sun) > half || g.CountCol(c, domain.Moon) > half {
			return false
		}
		if hasRun(g, false, c) {
			return false
		}
	}
	return constraintsHold(g, cs)
}

// CompleteLegal reports whether g is a finished, legal board: no empty cells,
// every line holding exactly half of each symbol, and every constraint met.
func CompleteLegal(g domain.Grid, cs domain.ConstraintSet) bool {
	if !g.Complete() {
		return false
	}
	n := g.Size()
	half := n / 2
	for r := 0; r < n; r++ {
		if g.CountRow(r, domain.Sun) != half || g.CountRow(r, domain.Moon) != half {
			return false
		}
	}
	for c := 0; c < n; c++ {
		if g.CountCol(c, domain.Sun) != half || g.CountCol(c, domain.Moon) != half {
			return false
		}
	}
	for r := 0; r < n; r++ {
		if hasRun(g, true, r) {
			return false
		}
	}
	for c := 0; c < n; c++ {
		if hasRun(g, false, c) {
			return false
		}
	}
	return constraintsHold(g, cs)
}

// lineAt returns the cell and coordinate at position i of a row or column.
func lineAt(g domain.Grid, row bool, index, i int) (domain.Cell, domain.Coord) {
	if row {
		return g.At(index, i), domain.Coord{Row: index, Col: i}
	}
	return g.At(i, index), domain.Coord{Row: i, Col: index}
}

// lineViolations collects count and run violations for one row or column.
func lineViolations(g domain.Grid, row bool, index int) []string {
	var out []string
	n := g.Size()
	half := n / 2
	label := lineLabel(row, index)

	for _, sym := range []domain.Cell{domain.Sun, domain.Moon} {
		count := 0
		if row {
			count = g.CountRow(index, sym)
		} else {
			count = g.CountCol(index, sym)
		}
		if count > half {
			out = append(out, fmt.Sprintf("%s has %d %ss but only %d are allowed", label, count, sym, half))
		}
	}

	for i := 0; i+2 < n; i++ {
		a, ca := lineAt(g, row, index, i)
		b, cb := lineAt(g, row, index, i+1)
		c, cc := lineAt(g, row, index, i+2)
		if a.Filled() && a == b && b == c {
			out = append(out, fmt.Sprintf("%s has three consecutive %ss at %s, %s and %s",
				label, a, ca.Display(), cb.Display(), cc.Display()))
		}
	}
	return out
}

// hasRun reports whether a row or column contains three consecutive identical
// filled cells.
func hasRun(g domain.Grid, row bool, index int) bool {
	n := g.Size()
	for i := 0; i+2 < n; i++ {
		a, _ := lineAt(g, row, index, i)
		b, _ := lineAt(g, row, index, i+1)
		c, _ := lineAt(g, row, index, i+2)
		if a.Filled() && a == b && b == c {
			return true
		}
	}
	return false
}

// constraintViolations collects every broken constraint whose endpoints are
// both filled.
func constraintViolations(g domain.Grid, cs domain.ConstraintSet) []string {
	var out []string
	for _, p := range cs.Equals {
		a, b := p.Cells()
		va, vb := g.At(a.Row, a.Col), g.At(b.Row, b.Col)
		if va.Filled() && vb.Filled() && va != vb {
			out = append(out, fmt.Sprintf("cells %s and %s must match but hold %s and %s",
				a.Display(), b.Display(), va, vb))
		}
	}
	for _, p := range cs.NotEquals {
		a, b := p.Cells()
		va, vb := g.At(a.Row, a.Col), g.At(b.Row, b.Col)
		if va.Filled() && vb.Filled() && va == vb {
			out = append(out, fmt.Sprintf("cells %s and %s must differ but both hold %s",
				a.Display(), b.Display(), va))
		}
	}
	return out
}

// constraintsHold is the short-circuiting form of constraintViolations.
func constraintsHold(g domain.Grid, cs domain.ConstraintSet) bool {
	for _, p := range cs.Equals {
		a, b := p.Cells()
		va, vb := g.At(a.Row, a.Col), g.At(b.Row, b.Col)
		if va.Filled() && vb.Filled() && va != vb {
			return false
		}
	}
	for _, p := range cs.NotEquals {
		a, b := p.Cells()
		va, vb := g.At(a.Row, a.Col), g.At(b.Row, b.Col)
		if va.Filled() && vb.Filled() && va == vb {
			return false
		}
	}
	return true
}
