// Package rules implements the ten deduction rules of the Solstice engine.
//
// Each rule is a pure function over a grid snapshot and a constraint set. It
// either proposes exactly one new cell value, wrapped in a Step with its
// explanation, or reports that it does not apply. Rules never mutate the grid;
// applying a proposal is the engine's job.
//
// Dispatch order is fixed: the first applicable rule wins, which keeps traces
// reproducible when several rules could fire. Within a rule, lines are scanned
// rows first then columns, each line forward and then mirrored, so the first
// match is deterministic too.
package rules

import "github.com/aretw0/solstice/pkg/domain"

// Rule names, as shown to users in Step records.
const (
	NameNoThree                 = "No-Three Rule"
	NameParity                  = "Parity Rule"
	NameConstraintPropagation   = "Constraint Propagation Rule"
	NameEdgeCase                = "Edge Case Rule"
	NameGap                     = "Gap Rule"
	NameTwoEqualsAtEnd          = "Two-Equals-At-End Rule"
	NameSecondToLastEqualsFirst = "Second-To-Last-Equals-First Rule"
	NameModifierBalance         = "Modifier Balance Rule"
	NameEndWithEquals           = "End-With-Equals-Constraint Rule"
	NameAdjacentEquals          = "Adjacent-Equals-Constraint Rule"
)

// Func inspects a grid and proposes at most one move. The returned Step
// carries the rule name, explanation, justifying cells, target and value; the
// engine fills in the grid snapshots when it applies the proposal.
type Func func(domain.Grid, domain.ConstraintSet) (domain.Step, bool)

// Rule pairs a display name with its finder.
type Rule struct {
	Name string
	Find Func
}

// Ordered returns the ten rules in priority order.
func Ordered() []Rule {
	return []Rule{
		{Name: NameNoThree, Find: FindNoThree},
		{Name: NameParity, Find: FindParity},
		{Name: NameConstraintPropagation, Find: FindConstraintPropagation},
		{Name: NameEdgeCase, Find: FindEdgeCase},
		{Name: NameGap, Find: FindGap},
		{Name: NameTwoEqualsAtEnd, Find: FindTwoEqualsAtEnd},
		{Name: NameSecondToLastEqualsFirst, Find: FindSecondToLastEqualsFirst},
		{Name: NameModifierBalance, Find: FindModifierBalance},
		{Name: NameEndWithEquals, Find: FindEndWithEquals},
		{Name: NameAdjacentEquals, Find: FindAdjacentEquals},
	}
}

// fits reports whether placing v at c keeps both of the cell's lines at or
// under the N/2 symbol cap. A pattern whose conclusion overflows a cap is a
// contradiction for the validator to report, not a move, so every rule routes
// its proposal through this check.
func fits(g domain.Grid, c domain.Coord, v domain.Cell) bool {
	half := g.Size() / 2
	return g.CountRow(c.Row, v) < half && g.CountCol(c.Col, v) < half
}

// hasEquals reports whether the set links a and b with an Equals constraint.
func hasEquals(cs domain.ConstraintSet, a, b domain.Coord) bool {
	want := domain.NewPair(a, b).Canonical()
	for _, p := range cs.Equals {
		if p.Canonical() == want {
			return true
		}
	}
	return false
}
