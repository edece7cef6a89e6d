package domain

import (
	"fmt"
	"sort"
)

// Pair links two cells under an equality or inequality constraint.
type Pair struct {
	Row1 int `json:"row1"`
	Col1 int `json:"col1"`
	Row2 int `json:"row2"`
	Col2 int `json:"col2"`
}

// NewPair builds a pair from two coordinates.
func NewPair(a, b Coord) Pair {
	return Pair{Row1: a.Row, Col1: a.Col, Row2: b.Row, Col2: b.Col}
}

// Cells returns the two endpoints as coordinates.
func (p Pair) Cells() (Coord, Coord) {
	return Coord{Row: p.Row1, Col: p.Col1}, Coord{Row: p.Row2, Col: p.Col2}
}

// Canonical orders the endpoints so that the lower (row, col) comes first,
// making duplicate detection independent of declaration order.
func (p Pair) Canonical() Pair {
	if p.Row2 < p.Row1 || (p.Row2 == p.Row1 && p.Col2 < p.Col1) {
		return Pair{Row1: p.Row2, Col1: p.Col2, Row2: p.Row1, Col2: p.Col1}
	}
	return p
}

// Other returns the partner endpoint of c, and false if c is not an endpoint.
func (p Pair) Other(c Coord) (Coord, bool) {
	a, b := p.Cells()
	switch c {
	case a:
		return b, true
	case b:
		return a, true
	}
	return Coord{}, false
}

// String renders the pair with 1-indexed endpoints for explanations.
func (p Pair) String() string {
	a, b := p.Cells()
	return fmt.Sprintf("%s and %s", a.Display(), b.Display())
}

// ConstraintSet carries the puzzle's equality and inequality pairs.
type ConstraintSet struct {
	Equals    []Pair `json:"equals,omitempty"`
	NotEquals []Pair `json:"notEquals,omitempty"`
}

// Clone returns a deep copy of the set.
func (s ConstraintSet) Clone() ConstraintSet {
	out := ConstraintSet{}
	if len(s.Equals) > 0 {
		out.Equals = make([]Pair, len(s.Equals))
		copy(out.Equals, s.Equals)
	}
	if len(s.NotEquals) > 0 {
		out.NotEquals = make([]Pair, len(s.NotEquals))
		copy(out.NotEquals, s.NotEquals)
	}
	return out
}

// Canonical returns a copy with every pair canonicalized and each list sorted,
// so logically identical sets compare equal.
func (s ConstraintSet) Canonical() ConstraintSet {
	canon := func(pairs []Pair) []Pair {
		if len(pairs) == 0 {
			return nil
		}
		out := make([]Pair, len(pairs))
		for i, p := range pairs {
			out[i] = p.Canonical()
		}
		sort.Slice(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if a.Row1 != b.Row1 {
				return a.Row1 < b.Row1
			}
			if a.Col1 != b.Col1 {
				return a.Col1 < b.Col1
			}
			if a.Row2 != b.Row2 {
				return a.Row2 < b.Row2
			}
			return a.Col2 < b.Col2
		})
		return out
	}
	return ConstraintSet{Equals: canon(s.Equals), NotEquals: canon(s.NotEquals)}
}

// Validate checks every pair against the grid size: endpoints in bounds and
// distinct, and no pair present in both lists. It reports the first problem.
func (s ConstraintSet) Validate(size int) error {
	check := func(kind string, pairs []Pair) error {
		for i, p := range pairs {
			a, b := p.Cells()
			for _, c := range []Coord{a, b} {
				if c.Row < 0 || c.Row >= size || c.Col < 0 || c.Col >= size {
					return fmt.Errorf("%w: %s pair %d references cell %s outside the %dx%d grid",
						ErrInvalidInput, kind, i+1, c.Display(), size, size)
				}
			}
			if a == b {
				return fmt.Errorf("%w: %s pair %d links cell %s to itself", ErrInvalidInput, kind, i+1, a.Display())
			}
		}
		return nil
	}
	if err := check("equals", s.Equals); err != nil {
		return err
	}
	if err := check("not-equals", s.NotEquals); err != nil {
		return err
	}
	seen := make(map[Pair]struct{}, len(s.Equals))
	for _, p := range s.Equals {
		seen[p.Canonical()] = struct{}{}
	}
	for _, p := range s.NotEquals {
		if _, ok := seen[p.Canonical()]; ok {
			return fmt.Errorf("%w: cells %s are constrained both equal and not equal", ErrInvalidInput, p)
		}
	}
	return nil
}

// Empty reports whether the set carries no pairs.
func (s ConstraintSet) Empty() bool {
	return len(s.Equals) == 0 && len(s.NotEquals) == 0
}
