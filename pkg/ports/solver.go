package ports

import "github.com/aretw0/solstice/pkg/domain"

// Solver defines the interface for the deduction core. It is stateless: every
// call is a pure function of the given grid and constraint set, so adapters
// (HTTP, MCP, CLI) can share one instance across requests without locking.
type Solver interface {
	// ValidateStart runs the full pre-solve gate and reports every violation.
	ValidateStart(g domain.Grid, cs domain.ConstraintSet) (domain.Report, error)

	// IsLegalPartial reports whether the position breaks any structural rule,
	// stopping at the first violation.
	IsLegalPartial(g domain.Grid, cs domain.ConstraintSet) (bool, error)

	// IsComplete reports whether the grid has no empty cells. It is a
	// fill-check only and does not re-verify legality.
	IsComplete(g domain.Grid) bool

	// NextStep returns the next forced move, or false when no rule applies.
	NextStep(g domain.Grid, cs domain.ConstraintSet) (domain.Step, bool, error)

	// Solve drives the rules to a fixpoint and returns the ordered steps.
	Solve(g domain.Grid, cs domain.ConstraintSet) (*domain.Solution, error)
}
