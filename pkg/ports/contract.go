package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/solstice/pkg/domain"
)

// RunPuzzleStoreContract runs a suite of tests to verify that a PuzzleStore
// implementation adheres to the defined interface contract.
func RunPuzzleStoreContract(t *testing.T, store PuzzleStore) {
	ctx := context.Background()
	id := "contract-test-puzzle-" + time.Now().Format("20060102150405")

	sample := func(id string) domain.Puzzle {
		grid, err := domain.ParseGrid([]string{
			"S.....",
			"......",
			"......",
			"......",
			"......",
			".....M",
		})
		require.NoError(t, err)
		return domain.Puzzle{
			ID:         id,
			Name:       "Contract Sample",
			Difficulty: domain.DifficultyEasy,
			Grid:       grid,
			Constraints: domain.ConstraintSet{
				Equals:    []domain.Pair{{Row1: 0, Col1: 0, Row2: 1, Col2: 0}},
				NotEquals: []domain.Pair{{Row1: 5, Col1: 4, Row2: 5, Col2: 5}},
			},
		}
	}

	t.Run("Save and Load", func(t *testing.T) {
		p := sample(id)
		require.NoError(t, store.Save(ctx, p), "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, p.ID, loaded.ID)
		assert.Equal(t, p.Name, loaded.Name)
		assert.Equal(t, p.Difficulty, loaded.Difficulty)
		assert.True(t, loaded.Grid.Equal(p.Grid), "grid must round trip")
		assert.Equal(t, p.Constraints.Canonical(), loaded.Constraints.Canonical())
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		p := sample(id)
		require.NoError(t, store.Save(ctx, p))

		p.Name = "Renamed"
		p.Grid.Set(2, 2, domain.Moon)
		require.NoError(t, store.Save(ctx, p))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", loaded.Name)
		assert.Equal(t, domain.Moon, loaded.Grid.At(2, 2))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)
	})

	t.Run("Loaded Puzzle Is Independent", func(t *testing.T) {
		p := sample(id)
		require.NoError(t, store.Save(ctx, p))

		first, err := store.Load(ctx, id)
		require.NoError(t, err)
		first.Grid.Set(3, 3, domain.Sun)

		second, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.Empty, second.Grid.At(3, 3),
			"mutating a loaded puzzle must not leak into the store")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, sample(id)))
		require.NoError(t, store.Delete(ctx, id), "Delete should not return error")

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrPuzzleNotFound, "Load after Delete should return ErrPuzzleNotFound")

		assert.NoError(t, store.Delete(ctx, id), "Delete should be idempotent")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-1"
		id2 := id + "-2"
		require.NoError(t, store.Save(ctx, sample(id1)))
		require.NoError(t, store.Save(ctx, sample(id2)))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
