package domain

import (
	"fmt"
	"time"
)

// Difficulty grades a catalog puzzle. It is descriptive metadata only and
// never influences deduction.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalizes a difficulty label. The empty string is allowed
// and means ungraded.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, "":
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidInput, s)
}

// Puzzle bundles a starting grid with its constraints and catalog metadata.
type Puzzle struct {
	ID          string        `json:"id"`
	Name        string        `json:"name,omitempty"`
	Difficulty  Difficulty    `json:"difficulty,omitempty"`
	Grid        Grid          `json:"grid"`
	Constraints ConstraintSet `json:"constraints"`
	CreatedAt   time.Time     `json:"createdAt,omitempty"`
}

// PuzzleMeta is the listing view of a puzzle: identity and shape without the
// board itself.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Size       int        `json:"size"`
	CreatedAt  time.Time  `json:"createdAt,omitempty"`
}

// Meta returns the listing view of the puzzle.
func (p Puzzle) Meta() PuzzleMeta {
	return PuzzleMeta{
		ID:         p.ID,
		Name:       p.Name,
		Difficulty: p.Difficulty,
		Size:       p.Grid.Size(),
		CreatedAt:  p.CreatedAt,
	}
}

// Clone returns a deep copy sharing no mutable state with the receiver.
func (p Puzzle) Clone() Puzzle {
	out := p
	out.Grid = p.Grid.Clone()
	out.Constraints = p.Constraints.Clone()
	return out
}

// Validate checks structural well-formedness: a usable grid, constraints that
// reference it correctly, and a known difficulty label. Board legality is the
// solver's concern, not Validate's.
func (p Puzzle) Validate() error {
	if p.Grid.Zero() {
		return fmt.Errorf("%w: puzzle %q has no grid", ErrInvalidInput, p.ID)
	}
	if err := CheckSize(p.Grid.Size()); err != nil {
		return err
	}
	if err := p.Constraints.Validate(p.Grid.Size()); err != nil {
		return err
	}
	if _, err := ParseDifficulty(string(p.Difficulty)); err != nil {
		return err
	}
	return nil
}
