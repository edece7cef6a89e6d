package runner

import (
	"context"

	"github.com/aretw0/solstice/pkg/domain"
)

// IOHandler defines the strategy for presenting deduction output.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// EmitStep presents one forced move. index is the 1-based position of
	// the step within the run.
	EmitStep(ctx context.Context, index int, step domain.Step) error

	// EmitReport presents a legality report.
	EmitReport(ctx context.Context, report domain.Report) error

	// EmitSolution presents the final outcome of a solve run.
	EmitSolution(ctx context.Context, solution *domain.Solution) error

	// Input reads a line of pacing input from the user. Only interactive
	// replays call it.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message to the user (e.g. status updates).
	// This is distinct from deduction content.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core
// package.
type ContentRenderer func(string) (string, error)

// GridPainter draws a grid for the terminal, optionally highlighting one
// cell. Handlers fall back to the plain row strings when unset.
type GridPainter func(g domain.Grid, highlight *domain.Coord) string
