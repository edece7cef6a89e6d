package dsl

import (
	"fmt"

	"github.com/aretw0/solstice/pkg/adapters/memory"
	"github.com/aretw0/solstice/pkg/domain"
)

// Builder manages the catalog construction.
type Builder struct {
	puzzles map[string]*PuzzleBuilder
}

// NewCatalog creates a new catalog builder.
func NewCatalog() *Builder {
	return &Builder{
		puzzles: make(map[string]*PuzzleBuilder),
	}
}

// Add creates a new puzzle in the catalog.
// If the puzzle already exists, it returns the existing builder.
func (b *Builder) Add(id string) *PuzzleBuilder {
	if pb, ok := b.puzzles[id]; ok {
		return pb
	}
	pb := New(id)
	b.puzzles[id] = pb
	return pb
}

// Build compiles the catalog into a memory Catalog.
func (b *Builder) Build() (*memory.Catalog, error) {
	puzzles := make([]domain.Puzzle, 0, len(b.puzzles))
	for _, pb := range b.puzzles {
		p, err := pb.Build()
		if err != nil {
			return nil, err
		}
		puzzles = append(puzzles, p)
	}

	catalog, err := memory.NewCatalog(puzzles...)
	if err != nil {
		return nil, fmt.Errorf("failed to build memory catalog: %w", err)
	}

	return catalog, nil
}
