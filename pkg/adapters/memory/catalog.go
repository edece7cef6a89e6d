package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/solstice/pkg/domain"
)

// Catalog implements ports.PuzzleCatalog over a fixed in-memory set.
type Catalog struct {
	puzzles map[string]domain.Puzzle
}

// NewCatalog creates a catalog from domain objects.
// Every puzzle must carry an ID and pass structural validation.
func NewCatalog(puzzles ...domain.Puzzle) (*Catalog, error) {
	data := make(map[string]domain.Puzzle, len(puzzles))
	for _, p := range puzzles {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: catalog puzzle missing ID", domain.ErrInvalidInput)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("catalog puzzle %s: %w", p.ID, err)
		}
		data[p.ID] = p.Clone()
	}
	return &Catalog{puzzles: data}, nil
}

// Get retrieves one catalog puzzle by ID.
func (c *Catalog) Get(ctx context.Context, id string) (domain.Puzzle, error) {
	p, ok := c.puzzles[id]
	if !ok {
		return domain.Puzzle{}, fmt.Errorf("puzzle %q: %w", id, domain.ErrPuzzleNotFound)
	}
	return p.Clone(), nil
}

// List returns all catalog puzzles sorted by ID.
func (c *Catalog) List(ctx context.Context) ([]domain.Puzzle, error) {
	out := make([]domain.Puzzle, 0, len(c.puzzles))
	for _, p := range c.puzzles {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
