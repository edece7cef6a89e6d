package rules

import (
	"fmt"

	"github.com/aretw0/solstice/pkg/domain"
)

var symbols = []domain.Cell{domain.Sun, domain.Moon}

// FindParity fires when a line already holds its full share (N/2) of one
// symbol: every remaining empty cell of the line must take the other symbol.
// One cell is proposed per call, the first open one in scan order.
func FindParity(g domain.Grid, _ domain.ConstraintSet) (domain.Step, bool) {
	half := g.Size() / 2
	for _, l := range Lines(g) {
		for _, sym := range symbols {
			if l.Count(sym) != half {
				continue
			}
			forced := sym.Opposite()
			for i := 0; i < l.Len(); i++ {
				if l.At(i) != domain.Empty {
					continue
				}
				target := l.Coord(i)
				if !fits(g, target, forced) {
					continue
				}
				var evidence []domain.Coord
				for j := 0; j < l.Len(); j++ {
					if l.At(j) == sym {
						evidence = append(evidence, l.Coord(j))
					}
				}
				return domain.Step{
					Rule: NameParity,
					Explanation: fmt.Sprintf("Because %s already has %d %ss, %s must be %s.",
						l.Label(), half, sym, target.Display(), forced),
					Affected: evidence,
					Target:   target,
					Value:    forced,
				}, true
			}
		}
	}
	return domain.Step{}, false
}

// FindModifierBalance combines line saturation with a not-equals constraint.
//
// Cross-line form: some line is one short of its cap for a symbol, and a
// not-equals pair inside a different, already capped line has one endpoint
// holding that symbol and one open; the open endpoint takes the opposite.
//
// Same-line form: a line one short of its cap for a symbol contains a
// not-equals pair with both endpoints open. Exactly one endpoint will supply
// the line's last copy of that symbol, so every other open cell of the line
// takes the opposite.
func FindModifierBalance(g domain.Grid, cs domain.ConstraintSet) (domain.Step, bool) {
	half := g.Size() / 2

	for _, sym := range symbols {
		var short []Line
		for _, l := range Lines(g) {
			if l.Count(sym) == half-1 {
				short = append(short, l)
			}
		}
		if len(short) == 0 {
			continue
		}
		for _, p := range cs.NotEquals {
			a, b := p.Cells()
			l2, ok := sharedLine(g, a, b)
			if !ok || l2.Count(sym) != half {
				continue
			}
			elsewhere := false
			for _, l := range short {
				if !l.Same(l2) {
					elsewhere = true
					break
				}
			}
			if !elsewhere {
				continue
			}
			known, open := a, b
			if g.At(known.Row, known.Col) != sym {
				known, open = b, a
			}
			if g.At(known.Row, known.Col) != sym || g.At(open.Row, open.Col) != domain.Empty {
				continue
			}
			forced := sym.Opposite()
			if !fits(g, open, forced) {
				continue
			}
			return domain.Step{
				Rule: NameModifierBalance,
				Explanation: fmt.Sprintf("Cell %s is %s and must differ from %s, so %s must be %s.",
					known.Display(), sym, open.Display(), open.Display(), forced),
				Affected: []domain.Coord{known},
				Target:   open,
				Value:    forced,
			}, true
		}
	}

	for _, l := range Lines(g) {
		for _, sym := range symbols {
			if l.Count(sym) != half-1 {
				continue
			}
			for _, p := range cs.NotEquals {
				a, b := p.Cells()
				i1, ok1 := l.Contains(a)
				i2, ok2 := l.Contains(b)
				if !ok1 || !ok2 || l.At(i1) != domain.Empty || l.At(i2) != domain.Empty {
					continue
				}
				forced := sym.Opposite()
				for i := 0; i < l.Len(); i++ {
					if i == i1 || i == i2 || l.At(i) != domain.Empty {
						continue
					}
					target := l.Coord(i)
					if !fits(g, target, forced) {
						continue
					}
					return domain.Step{
						Rule: NameModifierBalance,
						Explanation: fmt.Sprintf("Because %s needs one more %s and either %s or %s must supply it, %s must be %s.",
							l.Label(), sym, a.Display(), b.Display(), target.Display(), forced),
						Affected: []domain.Coord{a, b},
						Target:   target,
						Value:    forced,
					}, true
				}
			}
		}
	}

	return domain.Step{}, false
}

// sharedLine returns the line holding both coordinates: their row if they
// share one, else their column. It reports false when the cells share neither.
func sharedLine(g domain.Grid, a, b domain.Coord) (Line, bool) {
	if a.Row == b.Row {
		return Line{g: g, row: true, index: a.Row}, true
	}
	if a.Col == b.Col {
		return Line{g: g, row: false, index: a.Col}, true
	}
	return Line{}, false
}
