package observability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/solstice"
	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/observability"
)

func TestCombine(t *testing.T) {
	t.Run("fans events out in order", func(t *testing.T) {
		var order []string
		first := domain.LifecycleHooks{
			OnStepFound: func(*domain.StepEvent) { order = append(order, "first") },
		}
		second := domain.LifecycleHooks{
			OnStepFound: func(*domain.StepEvent) { order = append(order, "second") },
		}

		combined := observability.Combine(first, second)
		combined.OnStepFound(&domain.StepEvent{})

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("skips nil callbacks", func(t *testing.T) {
		called := false
		combined := observability.Combine(
			domain.LifecycleHooks{},
			domain.LifecycleHooks{OnSolveEnd: func(*domain.SolveEvent) { called = true }},
		)

		combined.OnSolveStart(&domain.SolveEvent{})
		combined.OnNoMove(&domain.SolveEvent{})
		combined.OnSolveEnd(&domain.SolveEvent{})

		assert.True(t, called)
	})

	t.Run("later hooks see earlier mutations", func(t *testing.T) {
		tag := domain.LifecycleHooks{
			OnStepFound: func(e *domain.StepEvent) { e.Rule = "tagged" },
		}
		var seen string
		read := domain.LifecycleHooks{
			OnStepFound: func(e *domain.StepEvent) { seen = e.Rule },
		}

		observability.Combine(tag, read).OnStepFound(&domain.StepEvent{Rule: "original"})

		assert.Equal(t, "tagged", seen)
	})
}

func TestRecorder(t *testing.T) {
	grid, err := domain.ParseGrid([]string{
		".M.M",
		"M.MS",
		"SMSM",
		"MSMS",
	})
	require.NoError(t, err)

	rec := observability.NewRecorder()
	solver := solstice.New(solstice.WithLifecycleHooks(rec.Hooks()))

	_, err = solver.Solve(grid, domain.ConstraintSet{})
	require.NoError(t, err)

	steps := rec.Steps()
	require.Len(t, steps, 3)
	for _, e := range steps {
		assert.Equal(t, domain.EventStepFound, e.Type)
		assert.Equal(t, "Parity Rule", e.Rule)
		assert.False(t, e.Timestamp.IsZero())
	}

	solves := rec.Solves()
	require.Len(t, solves, 2)
	assert.Equal(t, domain.EventSolveStart, solves[0].Type)
	assert.Equal(t, domain.EventSolveEnd, solves[1].Type)
	assert.True(t, solves[1].Solved)
	assert.Equal(t, 3, solves[1].Steps)

	rec.Reset()
	assert.Empty(t, rec.Steps())
	assert.Empty(t, rec.Solves())
}
