package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/solstice/internal/presentation/tui"
	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/runner"
)

// RunOptions contains the shared configuration for puzzle-file commands.
type RunOptions struct {
	PuzzlePath  string
	JSON        bool
	Interactive bool
	Debug       bool
}

// RunSolve loads a puzzle and replays the full deduction run.
func RunSolve(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	if !opts.JSON {
		tui.PrintBanner()
	}

	puzzle, err := loadPuzzle(opts.PuzzlePath)
	if err != nil {
		return err
	}

	if !opts.JSON {
		size := puzzle.Grid.Size()
		printSystemMessage("Solving '%s' (%dx%d grid).", displayName(puzzle, opts.PuzzlePath), size, size)
	}

	solver := createSolver(opts, logger)
	r := runner.NewRunner(solver, createRunnerOptions(logger, opts)...)

	if _, err := r.Solve(context.Background(), puzzle.Grid, puzzle.Constraints); err != nil {
		var illegal *domain.IllegalStartError
		if errors.As(err, &illegal) {
			// The report was already presented through the handler.
			return fmt.Errorf("starting position is illegal")
		}
		return err
	}
	return nil
}

// RunStep loads a puzzle and presents the single next forced move, if any.
func RunStep(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	puzzle, err := loadPuzzle(opts.PuzzlePath)
	if err != nil {
		return err
	}

	solver := createSolver(opts, logger)
	r := runner.NewRunner(solver, createRunnerOptions(logger, opts)...)

	_, err = r.Step(context.Background(), puzzle.Grid, puzzle.Constraints)
	return err
}

// RunValidate checks the starting position and reports every violation. It
// returns an error when the position is illegal so callers can exit non-zero.
func RunValidate(opts RunOptions) error {
	logger := createLogger(opts.Debug)

	puzzle, err := loadPuzzle(opts.PuzzlePath)
	if err != nil {
		return err
	}

	solver := createSolver(opts, logger)
	r := runner.NewRunner(solver, createRunnerOptions(logger, opts)...)

	report, err := r.Validate(context.Background(), puzzle.Grid, puzzle.Constraints)
	if err != nil {
		return err
	}
	if !report.Legal {
		return fmt.Errorf("starting position is illegal")
	}
	return nil
}
