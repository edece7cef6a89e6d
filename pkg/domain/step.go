package domain

import (
	"fmt"
	"strings"
)

// Step records one forced deduction: which rule fired, why, and the single
// cell it fills. Before and After are snapshots so a step can be replayed or
// audited without the grid it came from.
type Step struct {
	Rule        string  `json:"rule"`
	Explanation string  `json:"explanation"`
	Affected    []Coord `json:"affectedCells"`
	Target      Coord   `json:"resultCell"`
	Value       Cell    `json:"resultValue"`
	Before      Grid    `json:"gridBefore"`
	After       Grid    `json:"gridAfter"`
}

// String summarizes the step for logs: rule, target and value.
func (s Step) String() string {
	return fmt.Sprintf("%s: %s = %s", s.Rule, s.Target.Display(), s.Value)
}

// ApplyStep returns a copy of g with the step's cell filled in. The input grid
// is never mutated. It fails if the target is out of bounds, already filled,
// or the value is not a symbol.
func ApplyStep(g Grid, s Step) (Grid, error) {
	if !g.InBounds(s.Target) {
		return Grid{}, fmt.Errorf("%w: step targets cell %s outside the %dx%d grid",
			ErrInvalidInput, s.Target.Display(), g.Size(), g.Size())
	}
	if !s.Value.Filled() {
		return Grid{}, fmt.Errorf("%w: step for cell %s carries no symbol", ErrInvalidInput, s.Target.Display())
	}
	if g.At(s.Target.Row, s.Target.Col) != Empty {
		return Grid{}, fmt.Errorf("%w: cell %s is already filled", ErrInvalidInput, s.Target.Display())
	}
	next := g.Clone()
	next.Set(s.Target.Row, s.Target.Col, s.Value)
	return next, nil
}

// Report is the outcome of a full legality check. Legal is true only when
// Violations is empty; each violation is a standalone human-readable sentence.
type Report struct {
	Legal      bool     `json:"legal"`
	Violations []string `json:"violations,omitempty"`
}

// Summary joins the violations into one message, or "legal" when clean.
func (r Report) Summary() string {
	if r.Legal {
		return "legal"
	}
	return strings.Join(r.Violations, "; ")
}

// Solution is the result of running deductions to a fixpoint: every step taken
// in order, the resulting grid, and whether that grid is completely filled.
// Solved false with a legal grid means the rules found no further forced move.
type Solution struct {
	Steps  []Step `json:"steps"`
	Grid   Grid   `json:"grid"`
	Solved bool   `json:"solved"`
}
