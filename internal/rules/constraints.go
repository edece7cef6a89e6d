package rules

import (
	"fmt"

	"github.com/aretw0/solstice/pkg/domain"
)

// FindConstraintPropagation fires on a constraint with exactly one filled
// endpoint: the open endpoint copies the value for an equals pair and takes
// the opposite for a not-equals pair. Equals pairs are scanned first.
func FindConstraintPropagation(g domain.Grid, cs domain.ConstraintSet) (domain.Step, bool) {
	propagate := func(pairs []domain.Pair, equal bool) (domain.Step, bool) {
		for _, p := range pairs {
			a, b := p.Cells()
			va, vb := g.At(a.Row, a.Col), g.At(b.Row, b.Col)
			known, open := a, b
			if !va.Filled() {
				known, open = b, a
				va, vb = vb, va
			}
			if !va.Filled() || vb != domain.Empty {
				continue
			}
			forced := va
			relation := "match"
			if !equal {
				forced = va.Opposite()
				relation = "differ from"
			}
			if !fits(g, open, forced) {
				continue
			}
			return domain.Step{
				Rule: NameConstraintPropagation,
				Explanation: fmt.Sprintf("Cell %s is %s and must %s %s, so %s must be %s.",
					known.Display(), va, relation, open.Display(), open.Display(), forced),
				Affected: []domain.Coord{known},
				Target:   open,
				Value:    forced,
			}, true
		}
		return domain.Step{}, false
	}

	if step, ok := propagate(cs.Equals, true); ok {
		return step, ok
	}
	return propagate(cs.NotEquals, false)
}

// FindEndWithEquals fires when one end of a line is filled and an equals pair
// occupies the two open cells at the far end. The pair cannot repeat the known
// symbol without forcing a run of three through the middle, so the nearer
// endpoint takes the opposite value; its partner follows later by propagation.
func FindEndWithEquals(g domain.Grid, cs domain.ConstraintSet) (domain.Step, bool) {
	for _, fwd := range Lines(g) {
		for _, l := range []Line{fwd, fwd.Reversed()} {
			n := l.Len()
			v := l.At(0)
			if !v.Filled() || l.At(n-2) != domain.Empty || l.At(n-1) != domain.Empty {
				continue
			}
			near, far := l.Coord(n-2), l.Coord(n-1)
			if !hasEquals(cs, near, far) {
				continue
			}
			forced := v.Opposite()
			if !fits(g, near, forced) {
				continue
			}
			return domain.Step{
				Rule: NameEndWithEquals,
				Explanation: fmt.Sprintf("Cell %s is %s and cells %s and %s must match, so %s must be %s.",
					l.Coord(0).Display(), v, near.Display(), far.Display(), near.Display(), forced),
				Affected: []domain.Coord{l.Coord(0), near, far},
				Target:   near,
				Value:    forced,
			}, true
		}
	}
	return domain.Step{}, false
}

// FindAdjacentEquals fires when a filled cell sits directly beside an equals
// pair of open cells in the same line. The pair cannot repeat the neighbor's
// symbol without forming a run of three, so the endpoint next to the neighbor
// takes the opposite value.
func FindAdjacentEquals(g domain.Grid, cs domain.ConstraintSet) (domain.Step, bool) {
	for _, fwd := range Lines(g) {
		for _, l := range []Line{fwd, fwd.Reversed()} {
			for i := 0; i+2 < l.Len(); i++ {
				v := l.At(i)
				if !v.Filled() || l.At(i+1) != domain.Empty || l.At(i+2) != domain.Empty {
					continue
				}
				near, far := l.Coord(i+1), l.Coord(i+2)
				if !hasEquals(cs, near, far) {
					continue
				}
				forced := v.Opposite()
				if !fits(g, near, forced) {
					continue
				}
				return domain.Step{
					Rule: NameAdjacentEquals,
					Explanation: fmt.Sprintf("Cell %s is %s and its neighbors %s and %s must match, so %s must be %s.",
						l.Coord(i).Display(), v, near.Display(), far.Display(), near.Display(), forced),
					Affected: []domain.Coord{l.Coord(i), near, far},
					Target:   near,
					Value:    forced,
				}, true
			}
		}
	}
	return domain.Step{}, false
}
