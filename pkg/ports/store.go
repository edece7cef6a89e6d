package ports

import (
	"context"

	"github.com/aretw0/solstice/pkg/domain"
)

// PuzzleStore defines the interface for persisting editable puzzles.
// This backs the HTTP API's archive, enabling "draft now, solve later" flows.
type PuzzleStore interface {
	// Save persists the puzzle under its ID, overwriting any previous version.
	Save(ctx context.Context, p domain.Puzzle) error

	// Load retrieves a puzzle by ID.
	// Returns domain.ErrPuzzleNotFound if it does not exist.
	Load(ctx context.Context, id string) (domain.Puzzle, error)

	// Delete removes a puzzle by ID. Deleting an absent puzzle is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored puzzles.
	List(ctx context.Context) ([]string, error)
}
