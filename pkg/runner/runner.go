package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/ports"
)

// Runner drives a solver and presents its output using provided IO.
// This allows for easy testing and integration with different frontends
// (CLI, scripts, supervisors) over the same deduction core.
// It uses an IOHandler strategy to abstract the interaction mode
// (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on
	// stdin/stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Interactive pauses the solve replay after each step and waits for a
	// line of input; "quit" (or EOF) stops the replay early.
	Interactive bool

	solver ports.Solver
}

// NewRunner creates a Runner bound to the given solver.
func NewRunner(solver ports.Solver, opts ...Option) *Runner {
	r := &Runner{
		solver: solver,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Validate runs the full start gate and presents the resulting report.
func (r *Runner) Validate(ctx context.Context, g domain.Grid, cs domain.ConstraintSet) (domain.Report, error) {
	handler := r.resolveHandler()

	report, err := r.solver.ValidateStart(g, cs)
	if err != nil {
		return domain.Report{}, err
	}
	if err := handler.EmitReport(ctx, report); err != nil {
		return domain.Report{}, err
	}
	return report, nil
}

// Step finds the next forced move and presents it. It returns nil without an
// error when no rule fires.
func (r *Runner) Step(ctx context.Context, g domain.Grid, cs domain.ConstraintSet) (*domain.Step, error) {
	handler := r.resolveHandler()

	step, found, err := r.solver.NextStep(g, cs)
	if err != nil {
		return nil, err
	}
	if !found {
		if err := handler.SystemOutput(ctx, "No rule forces a move from this position."); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := handler.EmitStep(ctx, 1, step); err != nil {
		return nil, err
	}
	return &step, nil
}

// Solve runs the solver to a fixpoint and replays every deduced step in
// order, ending with the solution summary. An illegal start is presented as
// a report and returned as the solver's *domain.IllegalStartError.
func (r *Runner) Solve(ctx context.Context, g domain.Grid, cs domain.ConstraintSet) (*domain.Solution, error) {
	handler := r.resolveHandler()

	solution, err := r.solver.Solve(g, cs)
	if err != nil {
		var illegal *domain.IllegalStartError
		if errors.As(err, &illegal) {
			if emitErr := handler.EmitReport(ctx, domain.Report{Violations: illegal.Violations}); emitErr != nil {
				return nil, emitErr
			}
		}
		return nil, err
	}

	if r.Interactive && len(solution.Steps) > 1 {
		if err := handler.SystemOutput(ctx, "Press Enter for the next step, or type 'quit' to stop."); err != nil {
			return nil, err
		}
	}

	for i, step := range solution.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := handler.EmitStep(ctx, i+1, step); err != nil {
			return nil, err
		}
		if !r.Interactive || i == len(solution.Steps)-1 {
			continue
		}
		stop, err := r.pause(ctx, handler)
		if err != nil {
			return nil, err
		}
		if stop {
			r.Logger.Debug("replay stopped early", "emitted", i+1, "total", len(solution.Steps))
			break
		}
	}

	if err := handler.EmitSolution(ctx, solution); err != nil {
		return nil, err
	}
	return solution, nil
}

// pause blocks for one line of pacing input. EOF and the quit words stop the
// replay; anything else continues it.
func (r *Runner) pause(ctx context.Context, handler IOHandler) (bool, error) {
	val, err := handler.Input(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, fmt.Errorf("input error: %w", err)
	}
	switch strings.ToLower(val) {
	case "q", "quit", "exit":
		return true, nil
	}
	return false, nil
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		r.Handler = NewTextHandler(nil, nil)
	}
	return r.Handler
}
