// Package runtime hosts the deduction engine: rule dispatch, the fixpoint
// driver, and the pre-solve legality gate.
package runtime

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/solstice/internal/rules"
	"github.com/aretw0/solstice/internal/validator"
	"github.com/aretw0/solstice/pkg/domain"
)

// Engine runs the deduction rules over grid snapshots. It holds no grid state
// between calls; every entry point works on a copy of its input.
type Engine struct {
	rules  []rules.Rule
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger used by the engine.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithRules overrides the rule list, preserving the given order. Useful for
// exercising a subset of rules in isolation.
func WithRules(rs []rules.Rule) EngineOption {
	return func(e *Engine) {
		if len(rs) > 0 {
			e.rules = rs
		}
	}
}

// NewEngine creates an engine with the full rule set in priority order.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		rules:  rules.Ordered(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the engine's rule list in dispatch order.
func (e *Engine) Rules() []rules.Rule { return e.rules }

// checkInput rejects malformed grids and constraint sets before any rule or
// legality logic runs.
func checkInput(g domain.Grid, cs domain.ConstraintSet) error {
	if err := domain.CheckSize(g.Size()); err != nil {
		return err
	}
	return cs.Validate(g.Size())
}

// NextStep dispatches the rules once against a snapshot of g and returns the
// first forced move found. The boolean is false when no rule applies, which
// is a normal outcome, not an error. The caller owns applying the step.
func (e *Engine) NextStep(g domain.Grid, cs domain.ConstraintSet) (domain.Step, bool, error) {
	if err := checkInput(g, cs); err != nil {
		return domain.Step{}, false, err
	}
	snapshot := g.Clone()
	step, ok, err := e.dispatch(snapshot, cs)
	if err != nil {
		return domain.Step{}, false, err
	}
	if !ok {
		e.logger.Debug("no forced move", "empties", snapshot.Empties())
		e.emitNoMove(snapshot, 0)
		return domain.Step{}, false, nil
	}
	return step, true, nil
}

// Solve drives the rules to a fixpoint on a working copy of g. It gates on
// the full start validation and then records one Step per firing until the
// board is complete or no rule applies. The returned Solution carries the
// ordered steps, the final grid, and whether the board was finished.
func (e *Engine) Solve(g domain.Grid, cs domain.ConstraintSet) (*domain.Solution, error) {
	if err := checkInput(g, cs); err != nil {
		return nil, err
	}
	if report := validator.ValidateStart(g, cs); !report.Legal {
		e.logger.Debug("start position rejected", "violations", len(report.Violations))
		return nil, &domain.IllegalStartError{Violations: report.Violations}
	}

	working := g.Clone()
	start := time.Now()
	e.emitSolve(domain.EventSolveStart, working, 0, false, 0)

	// Each firing fills exactly one cell, so the cap of two dispatches per
	// cell can only bind if an invariant is broken.
	limit := 2 * g.Size() * g.Size()
	var steps []domain.Step
	solved := false

	for i := 0; ; i++ {
		if validator.CompleteLegal(working, cs) {
			solved = true
			break
		}
		if i >= limit {
			e.logger.Error("iteration cap exhausted", "dispatches", i, "empties", working.Empties())
			return nil, fmt.Errorf("%w after %d dispatches with %d empty cells",
				domain.ErrIterationLimit, i, working.Empties())
		}
		step, ok, err := e.dispatch(working, cs)
		if err != nil {
			return nil, err
		}
		if !ok {
			e.logger.Debug("no forced move", "empties", working.Empties(), "steps", len(steps))
			e.emitNoMove(working, len(steps))
			break
		}
		working = step.After
		steps = append(steps, step)
	}

	e.logger.Debug("solve finished",
		"steps", len(steps),
		"solved", solved,
		"empties", working.Empties(),
		"duration", time.Since(start),
	)
	e.emitSolve(domain.EventSolveEnd, working, len(steps), solved, time.Since(start))

	return &domain.Solution{Steps: steps, Grid: working, Solved: solved}, nil
}

// dispatch tries each rule in order against g and applies the first proposal.
// The returned Step carries before and after snapshots.
func (e *Engine) dispatch(g domain.Grid, cs domain.ConstraintSet) (domain.Step, bool, error) {
	for _, r := range e.rules {
		step, ok := r.Find(g, cs)
		if !ok {
			continue
		}
		step.Before = g
		after, err := domain.ApplyStep(g, step)
		if err != nil {
			return domain.Step{}, false, fmt.Errorf("rule %q proposed an unusable step: %w", r.Name, err)
		}
		step.After = after

		e.logger.Debug("rule fired",
			"rule", step.Rule,
			"cell", step.Target.Display(),
			"value", step.Value.String(),
		)
		if e.hooks.OnStepFound != nil {
			e.hooks.OnStepFound(&domain.StepEvent{
				EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStepFound},
				Rule:      step.Rule,
				Cell:      step.Target,
				Value:     step.Value,
				Empties:   after.Empties(),
			})
		}
		return step, true, nil
	}
	return domain.Step{}, false, nil
}

func (e *Engine) emitNoMove(g domain.Grid, steps int) {
	if e.hooks.OnNoMove == nil {
		return
	}
	e.hooks.OnNoMove(&domain.SolveEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNoMove},
		Size:      g.Size(),
		Empties:   g.Empties(),
		Steps:     steps,
	})
}

func (e *Engine) emitSolve(t domain.EventType, g domain.Grid, steps int, solved bool, d time.Duration) {
	var hook func(*domain.SolveEvent)
	switch t {
	case domain.EventSolveStart:
		hook = e.hooks.OnSolveStart
	case domain.EventSolveEnd:
		hook = e.hooks.OnSolveEnd
	}
	if hook == nil {
		return
	}
	hook(&domain.SolveEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: t},
		Size:      g.Size(),
		Empties:   g.Empties(),
		Steps:     steps,
		Solved:    solved,
		Duration:  d,
	})
}
