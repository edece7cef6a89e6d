package domain

import (
	"errors"
	"testing"
)

func TestApplyStep(t *testing.T) {
	grid, _ := ParseGrid([]string{"S...", "....", "....", "...."})

	step := Step{
		Rule:   "Parity Rule",
		Target: Coord{Row: 0, Col: 1},
		Value:  Moon,
	}

	next, err := ApplyStep(grid, step)
	if err != nil {
		t.Fatalf("ApplyStep error: %v", err)
	}
	if got := next.At(0, 1); got != Moon {
		t.Errorf("target cell = %v, want Moon", got)
	}
	if grid.At(0, 1) != Empty {
		t.Error("ApplyStep mutated its input grid")
	}

	t.Run("Already Filled", func(t *testing.T) {
		s := step
		s.Target = Coord{Row: 0, Col: 0}
		if _, err := ApplyStep(grid, s); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("Out Of Bounds", func(t *testing.T) {
		s := step
		s.Target = Coord{Row: 4, Col: 0}
		if _, err := ApplyStep(grid, s); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("No Symbol", func(t *testing.T) {
		s := step
		s.Value = Empty
		if _, err := ApplyStep(grid, s); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestReportSummary(t *testing.T) {
	legal := Report{Legal: true}
	if got := legal.Summary(); got != "legal" {
		t.Errorf("Summary() = %q, want %q", got, "legal")
	}

	broken := Report{Violations: []string{"first problem", "second problem"}}
	if got := broken.Summary(); got != "first problem; second problem" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestIllegalStartError(t *testing.T) {
	err := &IllegalStartError{Violations: []string{"row 1 has three Suns in a row"}}
	if err.Error() == "" {
		t.Error("Error() returned an empty message")
	}

	var target *IllegalStartError
	wrapped := error(err)
	if !errors.As(wrapped, &target) {
		t.Error("errors.As failed to match IllegalStartError")
	}
}
