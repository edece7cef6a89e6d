package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/solstice"
	"github.com/aretw0/solstice/internal/adapters/file"
	"github.com/aretw0/solstice/internal/logging"
	"github.com/aretw0/solstice/internal/presentation/tui"
	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/runner"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout flow UI).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// serverLogger always logs; debug only raises the level. Server commands
// should not run silent.
func serverLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// printSystemMessage prints a standardized system message to stdout.
func printSystemMessage(format string, args ...any) {
	fmt.Printf(">>> %s\n", fmt.Sprintf(format, args...))
}

// loadPuzzle reads a puzzle document (YAML or JSON) from disk.
func loadPuzzle(path string) (domain.Puzzle, error) {
	p, err := file.ReadPuzzle(path)
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("error loading puzzle: %w", err)
	}
	return p, nil
}

// displayName picks the friendliest identifier a puzzle carries.
func displayName(p domain.Puzzle, fallback string) string {
	if p.Name != "" {
		return p.Name
	}
	if p.ID != "" {
		return p.ID
	}
	return fallback
}

// createSolver initializes a Solver with standard CLI conventions.
func createSolver(opts RunOptions, logger *slog.Logger) *solstice.Solver {
	solverOpts := []solstice.Option{
		solstice.WithLogger(logger),
	}
	if opts.Debug {
		solverOpts = append(solverOpts, solstice.WithLifecycleHooks(createDebugHooks(logger)))
	}
	return solstice.New(solverOpts...)
}

// createDebugHooks mirrors engine events into debug logs.
func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolveStart: func(e *domain.SolveEvent) {
			logger.Debug("Solve Start", "size", e.Size, "empties", e.Empties)
		},
		OnStepFound: func(e *domain.StepEvent) {
			logger.Debug("Step Found", "rule", e.Rule, "cell", e.Cell.Display(), "value", e.Value)
		},
		OnNoMove: func(e *domain.SolveEvent) {
			logger.Debug("No Move", "steps", e.Steps, "empties", e.Empties)
		},
		OnSolveEnd: func(e *domain.SolveEvent) {
			logger.Debug("Solve End", "solved", e.Solved, "steps", e.Steps, "duration", e.Duration)
		},
	}
}

// createRunnerOptions prepares the functional options for the Runner.
func createRunnerOptions(logger *slog.Logger, opts RunOptions) []runner.Option {
	runnerOpts := []runner.Option{
		runner.WithLogger(logger),
		runner.WithInteractive(opts.Interactive),
	}

	if opts.JSON {
		runnerOpts = append(runnerOpts, runner.WithHandler(runner.NewJSONHandler(os.Stdin, os.Stdout)))
		return runnerOpts
	}

	handlerOpts := []runner.TextHandlerOption{
		runner.WithTextHandlerPainter(tui.PaintGrid),
	}
	if tui.IsInteractive() {
		handlerOpts = append(handlerOpts, runner.WithTextHandlerRenderer(tui.NewRenderer()))
	}
	runnerOpts = append(runnerOpts, runner.WithHandler(runner.NewTextHandler(os.Stdin, os.Stdout, handlerOpts...)))

	return runnerOpts
}
