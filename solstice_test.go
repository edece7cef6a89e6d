package solstice_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/solstice"
	"github.com/aretw0/solstice/pkg/domain"
)

func mustGrid(t *testing.T, rows ...string) domain.Grid {
	t.Helper()
	g, err := domain.ParseGrid(rows)
	require.NoError(t, err)
	return g
}

func emptyGrid(t *testing.T, size int) domain.Grid {
	t.Helper()
	g, err := domain.NewGrid(size)
	require.NoError(t, err)
	return g
}

func TestSolverNextStep(t *testing.T) {
	solver := solstice.New()

	t.Run("no-three fires on an adjacent pair", func(t *testing.T) {
		g := mustGrid(t,
			"SS....",
			"......",
			"......",
			"......",
			"......",
			"......",
		)

		step, found, err := solver.NextStep(g, domain.ConstraintSet{})
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, "No-Three Rule", step.Rule)
		assert.Equal(t, domain.Coord{Row: 0, Col: 2}, step.Target)
		assert.Equal(t, domain.Moon, step.Value)
		assert.Contains(t, step.Explanation, "(1, 3)")
	})

	t.Run("parity fills a saturated row one cell at a time", func(t *testing.T) {
		g := mustGrid(t,
			"SSSM..",
			"......",
			"......",
			"......",
			"......",
			"......",
		)

		for _, want := range []domain.Coord{{Row: 0, Col: 4}, {Row: 0, Col: 5}} {
			step, found, err := solver.NextStep(g, domain.ConstraintSet{})
			require.NoError(t, err)
			require.True(t, found)

			assert.Equal(t, "Parity Rule", step.Rule)
			assert.Equal(t, want, step.Target)
			assert.Equal(t, domain.Moon, step.Value)

			g, err = domain.ApplyStep(g, step)
			require.NoError(t, err)
		}

		assert.Equal(t, "SSSMMM", g.Rows()[0])
	})

	t.Run("equals constraint propagates a filled endpoint", func(t *testing.T) {
		g := mustGrid(t,
			"S.....",
			"......",
			"......",
			"......",
			"......",
			"......",
		)
		cs := domain.ConstraintSet{
			Equals: []domain.Pair{
				domain.NewPair(domain.Coord{Row: 0, Col: 0}, domain.Coord{Row: 0, Col: 1}),
			},
		}

		step, found, err := solver.NextStep(g, cs)
		require.NoError(t, err)
		require.True(t, found)

		assert.Equal(t, "Constraint Propagation Rule", step.Rule)
		assert.Equal(t, domain.Coord{Row: 0, Col: 1}, step.Target)
		assert.Equal(t, domain.Sun, step.Value)
	})

	t.Run("empty grid has no forced move", func(t *testing.T) {
		g := emptyGrid(t, 6)

		_, found, err := solver.NextStep(g, domain.ConstraintSet{})
		require.NoError(t, err)
		assert.False(t, found)

		// Same position, same answer on a repeated call.
		_, found, err = solver.NextStep(g, domain.ConstraintSet{})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("odd grid size is rejected", func(t *testing.T) {
		_, err := domain.NewGrid(5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSolverValidateStart(t *testing.T) {
	solver := solstice.New()

	t.Run("prefilled conflict names both cells", func(t *testing.T) {
		g := mustGrid(t,
			"SS....",
			"......",
			"......",
			"......",
			"......",
			"......",
		)
		cs := domain.ConstraintSet{
			NotEquals: []domain.Pair{
				domain.NewPair(domain.Coord{Row: 0, Col: 0}, domain.Coord{Row: 0, Col: 1}),
			},
		}

		report, err := solver.ValidateStart(g, cs)
		require.NoError(t, err)

		assert.False(t, report.Legal)
		require.NotEmpty(t, report.Violations)
		joined := strings.Join(report.Violations, "\n")
		assert.Contains(t, joined, "(1, 1)")
		assert.Contains(t, joined, "(1, 2)")
	})

	t.Run("legal start has no violations", func(t *testing.T) {
		g := mustGrid(t,
			"S.....",
			"......",
			"..M...",
			"......",
			"....S.",
			"......",
		)

		report, err := solver.ValidateStart(g, domain.ConstraintSet{})
		require.NoError(t, err)
		assert.True(t, report.Legal)
		assert.Empty(t, report.Violations)
	})

	t.Run("constraint outside the grid is a malformed input", func(t *testing.T) {
		g := emptyGrid(t, 4)
		cs := domain.ConstraintSet{
			Equals: []domain.Pair{
				domain.NewPair(domain.Coord{Row: 0, Col: 0}, domain.Coord{Row: 0, Col: 9}),
			},
		}

		_, err := solver.ValidateStart(g, cs)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSolverIsLegalPartial(t *testing.T) {
	solver := solstice.New()

	t.Run("run of three is illegal", func(t *testing.T) {
		g := mustGrid(t,
			"SSS...",
			"......",
			"......",
			"......",
			"......",
			"......",
		)

		legal, err := solver.IsLegalPartial(g, domain.ConstraintSet{})
		require.NoError(t, err)
		assert.False(t, legal)
	})

	t.Run("empty grid is legal but incomplete", func(t *testing.T) {
		g := emptyGrid(t, 6)

		legal, err := solver.IsLegalPartial(g, domain.ConstraintSet{})
		require.NoError(t, err)
		assert.True(t, legal)
		assert.False(t, solver.IsComplete(g))
	})
}

func TestSolverSolve(t *testing.T) {
	solver := solstice.New()

	t.Run("drives a puzzle to completion", func(t *testing.T) {
		g := mustGrid(t,
			".M.M",
			"M.MS",
			"SMSM",
			"MSMS",
		)

		solution, err := solver.Solve(g, domain.ConstraintSet{})
		require.NoError(t, err)

		assert.True(t, solution.Solved)
		assert.True(t, solution.Grid.Complete())
		assert.Len(t, solution.Steps, 3)

		legal, err := solver.IsLegalPartial(solution.Grid, domain.ConstraintSet{})
		require.NoError(t, err)
		assert.True(t, legal)
	})

	t.Run("each step fills exactly one cell", func(t *testing.T) {
		g := mustGrid(t,
			".M.M",
			"M.MS",
			"SMSM",
			"MSMS",
		)

		solution, err := solver.Solve(g, domain.ConstraintSet{})
		require.NoError(t, err)

		empties := g.Empties()
		for _, step := range solution.Steps {
			assert.Equal(t, empties-1, step.After.Empties())
			empties--
		}
	})

	t.Run("illegal start is refused", func(t *testing.T) {
		g := mustGrid(t,
			"SSS...",
			"......",
			"......",
			"......",
			"......",
			"......",
		)

		_, err := solver.Solve(g, domain.ConstraintSet{})
		require.Error(t, err)

		var illegal *domain.IllegalStartError
		require.ErrorAs(t, err, &illegal)
		assert.NotEmpty(t, illegal.Violations)
	})

	t.Run("entirely empty grid is an illegal start", func(t *testing.T) {
		g := emptyGrid(t, 6)

		_, err := solver.Solve(g, domain.ConstraintSet{})
		require.Error(t, err)

		var illegal *domain.IllegalStartError
		require.ErrorAs(t, err, &illegal)
	})

	t.Run("stuck puzzle returns an unfinished trace without error", func(t *testing.T) {
		g := mustGrid(t,
			"S.....",
			"......",
			"......",
			"......",
			"......",
			"......",
		)

		solution, err := solver.Solve(g, domain.ConstraintSet{})
		require.NoError(t, err)

		assert.False(t, solution.Solved)
		assert.Empty(t, solution.Steps)
		assert.True(t, solution.Grid.Equal(g))
	})
}

func TestSolverLifecycleHooks(t *testing.T) {
	var steps, solves int
	solver := solstice.New(
		solstice.WithLifecycleHooks(domain.LifecycleHooks{
			OnStepFound: func(*domain.StepEvent) { steps++ },
			OnSolveEnd:  func(*domain.SolveEvent) { solves++ },
		}),
	)

	g := mustGrid(t,
		".M.M",
		"M.MS",
		"SMSM",
		"MSMS",
	)

	_, err := solver.Solve(g, domain.ConstraintSet{})
	require.NoError(t, err)

	assert.Equal(t, 3, steps)
	assert.Equal(t, 1, solves)
}

func TestRuleNames(t *testing.T) {
	names := solstice.New().RuleNames()

	require.Len(t, names, 10)
	assert.Equal(t, "No-Three Rule", names[0])
	for _, name := range names {
		assert.True(t, strings.HasSuffix(name, " Rule"), "rule %q should end in Rule", name)
	}
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(solstice.Version))
}

func TestSolveIsDeterministic(t *testing.T) {
	solver := solstice.New()
	g := mustGrid(t,
		".M.M",
		"M.MS",
		"SMSM",
		"MSMS",
	)

	first, err := solver.Solve(g, domain.ConstraintSet{})
	require.NoError(t, err)
	second, err := solver.Solve(g, domain.ConstraintSet{})
	require.NoError(t, err)

	require.Len(t, second.Steps, len(first.Steps))
	for i := range first.Steps {
		assert.Equal(t, first.Steps[i].Rule, second.Steps[i].Rule)
		assert.Equal(t, first.Steps[i].Target, second.Steps[i].Target)
		assert.Equal(t, first.Steps[i].Value, second.Steps[i].Value)
	}
}
