package solstice

import (
	_ "embed"
	"log/slog"

	"github.com/aretw0/solstice/internal/runtime"
	"github.com/aretw0/solstice/internal/validator"
	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/ports"
)

// Version is the release version, stamped from the VERSION file at build
// time. Callers should trim whitespace before display.
//
//go:embed VERSION
var Version string

// Solver is the high-level deduction facade. The zero value is not usable;
// construct one with New. A Solver is stateless and safe for concurrent use:
// every method treats its arguments as read-only snapshots.
type Solver struct {
	engine *runtime.Engine
	logger *slog.Logger
}

var _ ports.Solver = (*Solver)(nil)

// Option configures a Solver during construction.
type Option func(*options)

type options struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// WithLogger sets the structured logger used for engine diagnostics.
// By default logs are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLifecycleHooks registers callbacks fired around solve runs and each
// deduced step. Hooks run synchronously on the calling goroutine.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// New creates a Solver with the full ordered rule set.
func New(opts ...Option) *Solver {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	engineOpts := []runtime.EngineOption{
		runtime.WithLifecycleHooks(o.hooks),
	}
	if o.logger != nil {
		engineOpts = append(engineOpts, runtime.WithLogger(o.logger))
	}

	return &Solver{
		engine: runtime.NewEngine(engineOpts...),
		logger: o.logger,
	}
}

// ValidateStart checks a starting position against the full-board legality
// rules and reports every violation it finds. It returns an error only when
// the input itself is malformed (bad grid size, out-of-range constraints);
// an illegal but well-formed position yields a Report with Legal=false.
func (s *Solver) ValidateStart(g domain.Grid, cs domain.ConstraintSet) (domain.Report, error) {
	if err := checkInput(g, cs); err != nil {
		return domain.Report{}, err
	}
	return validator.ValidateStart(g, cs), nil
}

// IsLegalPartial reports whether a partially filled grid is still legal:
// no symbol run of three, no over-quota line, and no decided constraint
// violated. Empty cells are ignored.
func (s *Solver) IsLegalPartial(g domain.Grid, cs domain.ConstraintSet) (bool, error) {
	if err := checkInput(g, cs); err != nil {
		return false, err
	}
	return validator.LegalPartial(g, cs), nil
}

// IsComplete reports whether every cell of the grid is filled. It says
// nothing about legality; pair it with IsLegalPartial for a solved check.
func (s *Solver) IsComplete(g domain.Grid) bool {
	return g.Complete()
}

// NextStep runs the ordered rules once and returns the single highest
// priority forced move, with found=false when no rule fires. The input
// grid is never mutated.
func (s *Solver) NextStep(g domain.Grid, cs domain.ConstraintSet) (domain.Step, bool, error) {
	return s.engine.NextStep(g, cs)
}

// Solve drives NextStep to a fixpoint and returns the full deduction trace.
// Solving an illegal start fails with a *domain.IllegalStartError; a legal
// puzzle that runs out of forced moves returns Solved=false with the steps
// found so far.
func (s *Solver) Solve(g domain.Grid, cs domain.ConstraintSet) (*domain.Solution, error) {
	return s.engine.Solve(g, cs)
}

// RuleNames returns the deduction rule names in dispatch order.
func (s *Solver) RuleNames() []string {
	rules := s.engine.Rules()
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}

func checkInput(g domain.Grid, cs domain.ConstraintSet) error {
	if err := domain.CheckSize(g.Size()); err != nil {
		return err
	}
	return cs.Validate(g.Size())
}
