// Package loam serves a read-only puzzle catalog from a loam document
// repository. Catalog puzzles are markdown files whose frontmatter carries
// the board and constraints; the markdown body is free-form notes for humans
// and is not interpreted.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/ports"
)

// Catalog implements ports.PuzzleCatalog over a loam repository.
type Catalog struct {
	Repo *loam.TypedRepository[PuzzleMetadata]
}

var (
	_ ports.PuzzleCatalog = (*Catalog)(nil)
	_ ports.Watchable     = (*Catalog)(nil)
)

// New creates a catalog over an already initialized typed repository.
func New(repo *loam.TypedRepository[PuzzleMetadata]) *Catalog {
	return &Catalog{Repo: repo}
}

// Open initializes a read-only loam repository at dir and wraps it in a
// Catalog. Strict mode surfaces malformed frontmatter instead of skipping it.
func Open(dir string) (*Catalog, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog directory: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog at %s: %w", absPath, err)
	}

	return New(loam.NewTypedRepository[PuzzleMetadata](repo)), nil
}

// Get retrieves one catalog puzzle by ID.
func (c *Catalog) Get(ctx context.Context, id string) (domain.Puzzle, error) {
	doc, err := c.Repo.Get(ctx, id)
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("puzzle %q: %w", id, domain.ErrPuzzleNotFound)
	}

	p, err := doc.Data.toPuzzle(trimExtension(doc.ID))
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("catalog document %s: %w", doc.ID, err)
	}
	return p, nil
}

// List returns every catalog puzzle. A malformed document fails the whole
// listing: catalogs are curated content, and silently hiding a broken puzzle
// would mask the curation error.
func (c *Catalog) List(ctx context.Context) ([]domain.Puzzle, error) {
	docs, err := c.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	seen := make(map[string]string)
	puzzles := make([]domain.Puzzle, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.Data.toPuzzle(trimExtension(doc.ID))
		if err != nil {
			return nil, fmt.Errorf("catalog document %s: %w", doc.ID, err)
		}
		if existing, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("collision detected: ID %q is defined in both %q and %q", p.ID, existing, doc.ID)
		}
		seen[p.ID] = doc.ID
		puzzles = append(puzzles, p)
	}
	return puzzles, nil
}

// Watch implements ports.Watchable, emitting the ID of each changed document.
func (c *Catalog) Watch(ctx context.Context) (<-chan string, error) {
	events, err := c.Repo.Watch(ctx, "**/*.{md,json,yaml,yml}")
	if err != nil {
		return nil, fmt.Errorf("failed to start loam watcher: %w", err)
	}

	ch := make(chan string, 1)
	go func() {
		defer close(ch)
		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-events:
				if !ok {
					return
				}
				select {
				case ch <- trimExtension(evt.ID):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
