package rules

import (
	"fmt"

	"github.com/aretw0/solstice/pkg/domain"
)

// FindNoThree fires when two adjacent equal filled cells have an open
// neighbor: that neighbor takes the opposite symbol to avoid a run of three.
// The neighbor before the pair is checked before the one after it.
func FindNoThree(g domain.Grid, _ domain.ConstraintSet) (domain.Step, bool) {
	for _, l := range Lines(g) {
		for i := 0; i+1 < l.Len(); i++ {
			a := l.At(i)
			if !a.Filled() || a != l.At(i+1) {
				continue
			}
			forced := a.Opposite()
			for _, j := range []int{i - 1, i + 2} {
				if j < 0 || j >= l.Len() || l.At(j) != domain.Empty {
					continue
				}
				target := l.Coord(j)
				if !fits(g, target, forced) {
					continue
				}
				return domain.Step{
					Rule: NameNoThree,
					Explanation: fmt.Sprintf("Cells %s and %s are both %s, so %s must be %s to avoid three in a row.",
						l.Coord(i).Display(), l.Coord(i+1).Display(), a, target.Display(), forced),
					Affected: []domain.Coord{l.Coord(i), l.Coord(i + 1)},
					Target:   target,
					Value:    forced,
				}, true
			}
		}
	}
	return domain.Step{}, false
}

// FindGap fires on the pattern value, gap, same value: the cell between two
// equal filled cells takes the opposite symbol.
func FindGap(g domain.Grid, _ domain.ConstraintSet) (domain.Step, bool) {
	for _, l := range Lines(g) {
		for i := 0; i+2 < l.Len(); i++ {
			a := l.At(i)
			if !a.Filled() || a != l.At(i+2) || l.At(i+1) != domain.Empty {
				continue
			}
			forced := a.Opposite()
			target := l.Coord(i + 1)
			if !fits(g, target, forced) {
				continue
			}
			return domain.Step{
				Rule: NameGap,
				Explanation: fmt.Sprintf("Cells %s and %s are both %s, so %s between them must be %s.",
					l.Coord(i).Display(), l.Coord(i+2).Display(), a, target.Display(), forced),
				Affected: []domain.Coord{l.Coord(i), l.Coord(i + 2)},
				Target:   target,
				Value:    forced,
			}, true
		}
	}
	return domain.Step{}, false
}
