package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventSolveStart EventType = "solve_start"
	EventSolveEnd   EventType = "solve_end"
	EventStepFound  EventType = "step_found"
	EventNoMove     EventType = "no_move"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// StepEvent describes one forced move found during deduction.
type StepEvent struct {
	EventBase
	Rule    string `json:"rule"`
	Cell    Coord  `json:"cell"`
	Value   Cell   `json:"value"`
	Empties int    `json:"empties"`
}

// SolveEvent describes the start or end of a deduction run, or the point
// where the rules ran out of forced moves.
type SolveEvent struct {
	EventBase
	Size     int           `json:"size"`
	Empties  int           `json:"empties"`
	Steps    int           `json:"steps"`
	Solved   bool          `json:"solved,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability. All hooks are
// optional and run synchronously on the solving goroutine, so keep them cheap.
type LifecycleHooks struct {
	OnSolveStart func(*SolveEvent)
	OnStepFound  func(*StepEvent)
	OnNoMove     func(*SolveEvent)
	OnSolveEnd   func(*SolveEvent)
}
