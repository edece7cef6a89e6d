package rules

import (
	"fmt"

	"github.com/aretw0/solstice/pkg/domain"
)

// FindEdgeCase fires when both end cells of a line are filled with the same
// symbol: the cell beside an end takes the opposite symbol. The cell after
// the first end is preferred, then the one before the last.
func FindEdgeCase(g domain.Grid, _ domain.ConstraintSet) (domain.Step, bool) {
	for _, l := range Lines(g) {
		n := l.Len()
		a := l.At(0)
		if !a.Filled() || a != l.At(n-1) {
			continue
		}
		forced := a.Opposite()
		for _, i := range []int{1, n - 2} {
			if l.At(i) != domain.Empty {
				continue
			}
			target := l.Coord(i)
			if !fits(g, target, forced) {
				continue
			}
			return domain.Step{
				Rule: NameEdgeCase,
				Explanation: fmt.Sprintf("Both ends of %s hold %s, so %s must be %s.",
					l.Label(), a, target.Display(), forced),
				Affected: []domain.Coord{l.Coord(0), l.Coord(n - 1)},
				Target:   target,
				Value:    forced,
			}, true
		}
	}
	return domain.Step{}, false
}

// FindTwoEqualsAtEnd fires when a line starts with two equal filled cells and
// the cell at the far end is open: that cell takes the opposite symbol. Both
// ends are covered by scanning the mirrored line too.
func FindTwoEqualsAtEnd(g domain.Grid, _ domain.ConstraintSet) (domain.Step, bool) {
	for _, fwd := range Lines(g) {
		for _, l := range []Line{fwd, fwd.Reversed()} {
			n := l.Len()
			a := l.At(0)
			if !a.Filled() || a != l.At(1) || l.At(n-1) != domain.Empty {
				continue
			}
			forced := a.Opposite()
			target := l.Coord(n - 1)
			if !fits(g, target, forced) {
				continue
			}
			return domain.Step{
				Rule: NameTwoEqualsAtEnd,
				Explanation: fmt.Sprintf("Cells %s and %s are both %s, so %s at the other end of %s must be %s.",
					l.Coord(0).Display(), l.Coord(1).Display(), a, target.Display(), l.Label(), forced),
				Affected: []domain.Coord{l.Coord(0), l.Coord(1)},
				Target:   target,
				Value:    forced,
			}, true
		}
	}
	return domain.Step{}, false
}

// FindSecondToLastEqualsFirst fires when a line's first cell matches its
// second-to-last cell and the last cell is open: the last cell takes the
// opposite symbol. Both orientations are scanned.
func FindSecondToLastEqualsFirst(g domain.Grid, _ domain.ConstraintSet) (domain.Step, bool) {
	for _, fwd := range Lines(g) {
		for _, l := range []Line{fwd, fwd.Reversed()} {
			n := l.Len()
			a := l.At(0)
			if !a.Filled() || a != l.At(n-2) || l.At(n-1) != domain.Empty {
				continue
			}
			forced := a.Opposite()
			target := l.Coord(n - 1)
			if !fits(g, target, forced) {
				continue
			}
			return domain.Step{
				Rule: NameSecondToLastEqualsFirst,
				Explanation: fmt.Sprintf("Cells %s and %s are both %s, so %s must be %s to keep %s balanced.",
					l.Coord(0).Display(), l.Coord(n-2).Display(), a, target.Display(), forced, l.Label()),
				Affected: []domain.Coord{l.Coord(0), l.Coord(n - 2)},
				Target:   target,
				Value:    forced,
			}, true
		}
	}
	return domain.Step{}, false
}
