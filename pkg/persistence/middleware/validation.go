package middleware

import (
	"context"
	"fmt"

	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/ports"
)

type validationMiddleware struct {
	next ports.PuzzleStore
}

// NewValidationMiddleware creates a middleware that keeps malformed puzzles
// out of the backing store. Saves are checked on the way in and loads on the
// way out, so corrupted backing data surfaces as an error instead of a panic
// further down the line.
func NewValidationMiddleware() Middleware {
	return func(next ports.PuzzleStore) ports.PuzzleStore {
		return &validationMiddleware{next: next}
	}
}

func (m *validationMiddleware) Save(ctx context.Context, p domain.Puzzle) error {
	if p.ID == "" {
		return fmt.Errorf("%w: puzzle ID cannot be empty", domain.ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("rejecting save of puzzle %s: %w", p.ID, err)
	}
	return m.next.Save(ctx, p)
}

func (m *validationMiddleware) Load(ctx context.Context, id string) (domain.Puzzle, error) {
	p, err := m.next.Load(ctx, id)
	if err != nil {
		return domain.Puzzle{}, err
	}
	if err := p.Validate(); err != nil {
		return domain.Puzzle{}, fmt.Errorf("stored puzzle %s is malformed: %w", id, err)
	}
	return p, nil
}

func (m *validationMiddleware) Delete(ctx context.Context, id string) error {
	return m.next.Delete(ctx, id)
}

func (m *validationMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}
