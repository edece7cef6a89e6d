package runtime_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/solstice/internal/runtime"
	"github.com/aretw0/solstice/internal/validator"
	"github.com/aretw0/solstice/pkg/domain"
)

// Finished legal boards used as seeds: cells are removed from them to
// produce start positions that are legal by construction.
var completeBoards = [][]string{
	{
		"SMSMSM",
		"MSMSMS",
		"SMSMSM",
		"MSMSMS",
		"SMSMSM",
		"MSMSMS",
	},
	{
		"SSMMSM",
		"MSSMMS",
		"MMSSMS",
		"SMMSSM",
		"MSSMSM",
		"SMMSMS",
	},
}

func swapSymbols(g domain.Grid) domain.Grid {
	out := g.Clone()
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			if v := g.At(r, c); v.Filled() {
				out.Set(r, c, v.Opposite())
			}
		}
	}
	return out
}

func transpose(g domain.Grid) domain.Grid {
	out, _ := domain.NewGrid(g.Size())
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size(); c++ {
			out.Set(c, r, g.At(r, c))
		}
	}
	return out
}

func mirror(g domain.Grid) domain.Grid {
	n := g.Size()
	out, _ := domain.NewGrid(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out.Set(r, n-1-c, g.At(r, c))
		}
	}
	return out
}

func removeCells(g domain.Grid, k int, rng *rand.Rand) domain.Grid {
	out := g.Clone()
	n := g.Size()
	for _, idx := range rng.Perm(n * n)[:k] {
		out.Set(idx/n, idx%n, domain.Empty)
	}
	return out
}

// Every step taken from a legal start must keep the board legal, remove
// exactly one empty cell, and match its own snapshots.
func TestEngine_RuleSoundness(t *testing.T) {
	eng := runtime.NewEngine()
	rng := rand.New(rand.NewSource(11))

	variants := func(rows []string) []domain.Grid {
		g, err := domain.ParseGrid(rows)
		require.NoError(t, err)
		return []domain.Grid{g, swapSymbols(g), transpose(g), mirror(g)}
	}

	for bi, rows := range completeBoards {
		for vi, board := range variants(rows) {
			require.True(t, validator.CompleteLegal(board, domain.ConstraintSet{}),
				"seed board %d variant %d is not a legal finished board", bi, vi)

			for _, removed := range []int{8, 14, 20} {
				name := fmt.Sprintf("Board %d Variant %d Removed %d", bi, vi, removed)
				t.Run(name, func(t *testing.T) {
					start := removeCells(board, removed, rng)
					require.True(t, validator.ValidateStart(start, domain.ConstraintSet{}).Legal)

					sol, err := eng.Solve(start, domain.ConstraintSet{})
					require.NoError(t, err)

					current := start
					for i, step := range sol.Steps {
						next, err := domain.ApplyStep(current, step)
						require.NoError(t, err, "step %d not applicable", i)
						assert.True(t, next.Equal(step.After), "step %d snapshot mismatch", i)
						assert.Equal(t, current.Empties()-1, next.Empties(), "step %d must fill exactly one cell", i)
						assert.True(t, validator.LegalPartial(next, domain.ConstraintSet{}),
							"step %d (%s) broke legality:\n%s", i, step.Rule, next)
						current = next
					}
					assert.True(t, current.Equal(sol.Grid))
					if sol.Solved {
						assert.True(t, validator.CompleteLegal(sol.Grid, domain.ConstraintSet{}))
					}
				})
			}
		}
	}
}
