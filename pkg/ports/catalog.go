package ports

import (
	"context"

	"github.com/aretw0/solstice/pkg/domain"
)

// PuzzleCatalog defines how curated puzzle libraries are read.
// This allows the catalog source (Loam, memory, embedded files) to be
// decoupled from the CLI and server.
type PuzzleCatalog interface {
	// Get retrieves one catalog puzzle by ID.
	// Returns domain.ErrPuzzleNotFound if it does not exist.
	Get(ctx context.Context, id string) (domain.Puzzle, error)

	// List returns all catalog puzzles, including their metadata.
	List(ctx context.Context) ([]domain.Puzzle, error)
}

// Watchable defines an interface for catalogs that can notify about backend
// changes. This is typically used for hot-reload or dev-mode functionality.
type Watchable interface {
	// Watch returns a channel carrying the ID of each changed puzzle.
	Watch(ctx context.Context) (<-chan string, error)
}
