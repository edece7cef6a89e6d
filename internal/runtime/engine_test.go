package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/solstice/internal/rules"
	"github.com/aretw0/solstice/internal/runtime"
	"github.com/aretw0/solstice/internal/validator"
	"github.com/aretw0/solstice/pkg/domain"
)

func grid(t *testing.T, rows ...string) domain.Grid {
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

func TestEngine_NextStep(t *testing.T) {
	eng := runtime.NewEngine()

	t.Run("Adjacent Pair Forces Neighbor", func(t *testing.T) {
		g := grid(t, "SS....", "......", "......", "......", "......", "......")
		step, ok, err := eng.NextStep(g, domain.ConstraintSet{})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "No-Three Rule", step.Rule)
		assert.Equal(t, domain.Coord{Row: 0, Col: 2}, step.Target)
		assert.Equal(t, domain.Moon, step.Value)
	})

	t.Run("Input Grid Left Untouched", func(t *testing.T) {
		g := grid(t, "SS....", "......", "......", "......", "......", "......")
		step, ok, err := eng.NextStep(g, domain.ConstraintSet{})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, domain.Empty, g.At(0, 2))
		assert.Equal(t, domain.Empty, step.Before.At(0, 2))
		assert.Equal(t, domain.Moon, step.After.At(0, 2))
	})

	t.Run("Empty Grid Has No Forced Move", func(t *testing.T) {
		_, ok, err := eng.NextStep(emptyGrid(t, 6), domain.ConstraintSet{})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("No Move Is Stable Across Calls", func(t *testing.T) {
		g := emptyGrid(t, 6)
		for i := 0; i < 3; i++ {
			_, ok, err := eng.NextStep(g, domain.ConstraintSet{})
			require.NoError(t, err)
			assert.False(t, ok)
		}
	})

	t.Run("Odd Size Rejected", func(t *testing.T) {
		_, _, err := eng.NextStep(domain.Grid{}, domain.ConstraintSet{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Constraint Outside Grid Rejected", func(t *testing.T) {
		g := emptyGrid(t, 6)
		cs := domain.ConstraintSet{Equals: []domain.Pair{{Row1: 0, Col1: 0, Row2: 9, Col2: 0}}}
		_, _, err := eng.NextStep(g, cs)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestEngine_NextStep_SaturatedLine(t *testing.T) {
	eng := runtime.NewEngine()
	g := grid(t, "SSSM..", "......", "......", "......", "......", "......")

	first, ok, err := eng.NextStep(g, domain.ConstraintSet{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Parity Rule", first.Rule)
	assert.Equal(t, domain.Moon, first.Value)

	second, ok, err := eng.NextStep(first.After, domain.ConstraintSet{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.Moon, second.Value)

	// Both empties of the saturated row end up Moon.
	assert.Equal(t, domain.Moon, second.After.At(0, 4))
	assert.Equal(t, domain.Moon, second.After.At(0, 5))
}

func TestEngine_Solve(t *testing.T) {
	t.Run("Finishes A Nearly Complete Board", func(t *testing.T) {
		g := grid(t,
			".MSMSM",
			"M.MSMS",
			"SM.MSM",
			"MSM.MS",
			"SMSM.M",
			"MSMSM.",
		)
		eng := runtime.NewEngine()
		sol, err := eng.Solve(g, domain.ConstraintSet{})
		require.NoError(t, err)
		assert.True(t, sol.Solved)
		assert.Len(t, sol.Steps, 6)
		assert.True(t, sol.Grid.Complete())
		assert.True(t, validator.CompleteLegal(sol.Grid, domain.ConstraintSet{}))
	})

	t.Run("Illegal Start Is Gated", func(t *testing.T) {
		g := grid(t, "SSS...", "......", "......", "......", "......", "......")
		eng := runtime.NewEngine()
		_, err := eng.Solve(g, domain.ConstraintSet{})
		var illegal *domain.IllegalStartError
		require.ErrorAs(t, err, &illegal)
		assert.NotEmpty(t, illegal.Violations)
	})

	t.Run("Stuck Board Is A Soft Outcome", func(t *testing.T) {
		g := grid(t, "S....M", "......", "......", "......", "......", "M....S")
		eng := runtime.NewEngine()
		sol, err := eng.Solve(g, domain.ConstraintSet{})
		require.NoError(t, err)
		assert.False(t, sol.Solved)
		assert.False(t, sol.Grid.Complete())
	})

	t.Run("Solved Stuck Boundary Keeps Grid Legal", func(t *testing.T) {
		g := grid(t, "S....M", "......", "......", "......", "......", "M....S")
		eng := runtime.NewEngine()
		sol, err := eng.Solve(g, domain.ConstraintSet{})
		require.NoError(t, err)
		assert.True(t, validator.LegalPartial(sol.Grid, domain.ConstraintSet{}))
	})

	t.Run("Constraints Drive The Solve", func(t *testing.T) {
		g := grid(t, "S.....", "......", "......", "......", "......", "......")
		cs := domain.ConstraintSet{Equals: []domain.Pair{{Row1: 0, Col1: 0, Row2: 0, Col2: 1}}}
		eng := runtime.NewEngine()
		sol, err := eng.Solve(g, cs)
		require.NoError(t, err)
		require.NotEmpty(t, sol.Steps)
		assert.Equal(t, "Constraint Propagation Rule", sol.Steps[0].Rule)
		assert.Equal(t, domain.Sun, sol.Grid.At(0, 1))
	})
}

func TestEngine_WithRules(t *testing.T) {
	// Restricting the engine to the parity rule leaves pair patterns alone.
	eng := runtime.NewEngine(runtime.WithRules([]rules.Rule{
		{Name: rules.NameParity, Find: rules.FindParity},
	}))
	g := grid(t, "SS....", "......", "......", "......", "......", "......")
	_, ok, err := eng.NextStep(g, domain.ConstraintSet{})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, eng.Rules(), 1)
}

func BenchmarkSolve(b *testing.B) {
	g, err := domain.ParseGrid([]string{
		".MSMSM",
		"M.MSMS",
		"SM.MSM",
		"MSM.MS",
		"SMSM.M",
		"MSMSM.",
	})
	if err != nil {
		b.Fatal(err)
	}
	eng := runtime.NewEngine()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Solve(g, domain.ConstraintSet{}); err != nil {
			b.Fatal(err)
		}
	}
}

func TestEngine_StepRoundTrip(t *testing.T) {
	eng := runtime.NewEngine()
	g := grid(t, ".S.S..", "......", "......", "......", "......", "......")

	step, ok, err := eng.NextStep(g, domain.ConstraintSet{})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, domain.Empty, step.Before.At(step.Target.Row, step.Target.Col))
	assert.Equal(t, step.Value, step.After.At(step.Target.Row, step.Target.Col))

	// Exactly one cell differs between the snapshots.
	diff := 0
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			if step.Before.At(r, c) != step.After.At(r, c) {
				diff++
			}
		}
	}
	assert.Equal(t, 1, diff)

	replayed, err := domain.ApplyStep(step.Before, step)
	require.NoError(t, err)
	assert.True(t, replayed.Equal(step.After))
}
