package middleware

import "github.com/aretw0/solstice/pkg/ports"

// Middleware allows wrapping a PuzzleStore to add behavior.
type Middleware func(ports.PuzzleStore) ports.PuzzleStore
