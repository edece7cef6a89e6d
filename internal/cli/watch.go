package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/solstice/internal/presentation/tui"
	"github.com/aretw0/solstice/pkg/adapters/loam"
	"github.com/aretw0/solstice/pkg/ports"
	"github.com/aretw0/solstice/pkg/runner"
)

// WatchOptions configures the re-solve-on-change mode.
type WatchOptions struct {
	CatalogDir string
	PuzzleID   string
	JSON       bool
	Debug      bool
}

// RunWatch solves a catalog puzzle and re-solves it whenever its source
// document changes. It blocks until the context is cancelled, which is a
// normal exit.
func RunWatch(ctx context.Context, opts WatchOptions) error {
	logger := createLogger(opts.Debug)

	if !opts.JSON {
		tui.PrintBanner()
	}

	catalog, err := loam.Open(opts.CatalogDir)
	if err != nil {
		return fmt.Errorf("error opening catalog: %w", err)
	}

	events, err := catalog.Watch(ctx)
	if err != nil {
		return fmt.Errorf("error starting watcher: %w", err)
	}

	runOpts := RunOptions{JSON: opts.JSON, Debug: opts.Debug}
	solver := createSolver(runOpts, logger)
	r := runner.NewRunner(solver, createRunnerOptions(logger, runOpts)...)

	if !opts.JSON {
		printSystemMessage("Watching '%s' in '%s'. Press Ctrl+C to stop.", opts.PuzzleID, opts.CatalogDir)
	}

	if err := solveFromCatalog(ctx, r, catalog, opts.PuzzleID); err != nil {
		logger.Warn("solve failed", "puzzle_id", opts.PuzzleID, "err", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case id, ok := <-events:
			if !ok {
				return nil
			}
			if id != opts.PuzzleID {
				logger.Debug("ignoring change", "puzzle_id", id)
				continue
			}
			if !opts.JSON {
				printSystemMessage("Change detected in '%s', re-solving.", id)
			}
			if err := solveFromCatalog(ctx, r, catalog, id); err != nil {
				logger.Warn("re-solve failed", "puzzle_id", id, "err", err)
			}
		}
	}
}

func solveFromCatalog(ctx context.Context, r *runner.Runner, catalog ports.PuzzleCatalog, id string) error {
	puzzle, err := catalog.Get(ctx, id)
	if err != nil {
		return err
	}
	_, err = r.Solve(ctx, puzzle.Grid, puzzle.Constraints)
	return err
}
