package observability

import (
	"sync"

	"github.com/aretw0/solstice/pkg/domain"
)

// Combine merges several hook sets into one that fans every event out to all
// of them, in argument order. Nil callbacks are skipped, so partial hook sets
// compose cleanly. The engine delivers pointers; later hooks observe any
// mutation made by earlier ones.
func Combine(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolveStart: func(e *domain.SolveEvent) {
			for _, h := range hooks {
				if h.OnSolveStart != nil {
					h.OnSolveStart(e)
				}
			}
		},
		OnStepFound: func(e *domain.StepEvent) {
			for _, h := range hooks {
				if h.OnStepFound != nil {
					h.OnStepFound(e)
				}
			}
		},
		OnNoMove: func(e *domain.SolveEvent) {
			for _, h := range hooks {
				if h.OnNoMove != nil {
					h.OnNoMove(e)
				}
			}
		},
		OnSolveEnd: func(e *domain.SolveEvent) {
			for _, h := range hooks {
				if h.OnSolveEnd != nil {
					h.OnSolveEnd(e)
				}
			}
		},
	}
}

// Recorder captures lifecycle events in memory. It is safe for concurrent
// use and intended for tests and diagnostics, not long-running production
// solves: it retains every event until Reset.
type Recorder struct {
	mu     sync.Mutex
	steps  []domain.StepEvent
	solves []domain.SolveEvent
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Hooks returns the hook set that feeds this recorder. Events are copied at
// capture time, so later snapshots are stable.
func (r *Recorder) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSolveStart: r.recordSolve,
		OnStepFound:  r.recordStep,
		OnNoMove:     r.recordSolve,
		OnSolveEnd:   r.recordSolve,
	}
}

func (r *Recorder) recordStep(e *domain.StepEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = append(r.steps, *e)
}

func (r *Recorder) recordSolve(e *domain.SolveEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.solves = append(r.solves, *e)
}

// Steps returns a snapshot of the captured step events.
func (r *Recorder) Steps() []domain.StepEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.StepEvent, len(r.steps))
	copy(out, r.steps)
	return out
}

// Solves returns a snapshot of the captured solve lifecycle events.
func (r *Recorder) Solves() []domain.SolveEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.SolveEvent, len(r.solves))
	copy(out, r.solves)
	return out
}

// Reset discards everything captured so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.steps = nil
	r.solves = nil
}
