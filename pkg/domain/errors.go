package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned for malformed inputs (odd or too-small grid size,
// out-of-range or duplicate constraint endpoints). It is a precondition failure,
// distinct from a puzzle-legality violation.
var ErrInvalidInput = errors.New("invalid puzzle input")

// ErrPuzzleNotFound is returned when a puzzle ID cannot be found in a store or catalog.
var ErrPuzzleNotFound = errors.New("puzzle not found")

// ErrIterationLimit is returned when the fixpoint loop exhausts its iteration cap
// while the grid is still incomplete. Each applied step removes exactly one empty
// cell, so hitting the cap signals a broken engine invariant, never a normal outcome.
var ErrIterationLimit = errors.New("iteration limit reached with incomplete grid")

// IllegalStartError reports that a starting position failed the full legality gate.
// It carries every violation so callers can surface the complete list.
type IllegalStartError struct {
	Violations []string
}

func (e *IllegalStartError) Error() string {
	return fmt.Sprintf("illegal starting position: %s", strings.Join(e.Violations, "; "))
}
