package runner

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aretw0/solstice/pkg/domain"
)

func sampleStep(t *testing.T) domain.Step {
	t.Helper()
	before, err := domain.ParseGrid([]string{".M.M", "M.MS", "SMSM", "MSMS"})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	step := domain.Step{
		Rule:        "Parity Rule",
		Explanation: "Because row 1 already has 2 Moons, (1, 1) must be Sun.",
		Target:      domain.Coord{Row: 0, Col: 0},
		Value:       domain.Sun,
		Before:      before,
	}
	after, err := domain.ApplyStep(before, step)
	if err != nil {
		t.Fatalf("ApplyStep failed: %v", err)
	}
	step.After = after
	return step
}

func TestTextHandler_EmitStep(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(nil, out)

	if err := handler.EmitStep(context.Background(), 1, sampleStep(t)); err != nil {
		t.Fatalf("EmitStep failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "1. Parity Rule: (1, 1) = Sun") {
		t.Errorf("expected step header, got %q", output)
	}
	if !strings.Contains(output, "Because row 1 already has 2 Moons") {
		t.Errorf("expected explanation, got %q", output)
	}
}

func TestTextHandler_EmitStep_Rendered(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(nil, out, WithTextHandlerRenderer(func(s string) (string, error) {
		return "Rendered: " + s, nil
	}))

	if err := handler.EmitStep(context.Background(), 2, sampleStep(t)); err != nil {
		t.Fatalf("EmitStep failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Rendered: 2. **Parity Rule**") {
		t.Errorf("expected rendered markdown, got %q", output)
	}
}

func TestTextHandler_EmitStep_PaintsGrid(t *testing.T) {
	out := &bytes.Buffer{}
	var highlighted *domain.Coord
	handler := NewTextHandler(nil, out, WithTextHandlerPainter(func(g domain.Grid, highlight *domain.Coord) string {
		highlighted = highlight
		return "painted " + g.Rows()[0]
	}))

	if err := handler.EmitStep(context.Background(), 1, sampleStep(t)); err != nil {
		t.Fatalf("EmitStep failed: %v", err)
	}

	if !strings.Contains(out.String(), "painted SM.M") {
		t.Errorf("expected the painted after-grid, got %q", out.String())
	}
	if highlighted == nil || highlighted.Row != 0 || highlighted.Col != 0 {
		t.Errorf("expected the target cell highlighted, got %+v", highlighted)
	}
}

func TestTextHandler_EmitReport(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(nil, out)

	if err := handler.EmitReport(context.Background(), domain.Report{Legal: true}); err != nil {
		t.Fatalf("EmitReport failed: %v", err)
	}
	if !strings.Contains(out.String(), "The starting position is legal.") {
		t.Errorf("expected legal verdict, got %q", out.String())
	}

	out.Reset()
	report := domain.Report{Violations: []string{
		"row 1 has three consecutive Suns",
		"column 2 has too many Suns",
	}}
	if err := handler.EmitReport(context.Background(), report); err != nil {
		t.Fatalf("EmitReport failed: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "illegal") {
		t.Errorf("expected illegal verdict, got %q", output)
	}
	if !strings.Contains(output, "- row 1 has three consecutive Suns") {
		t.Errorf("expected first violation listed, got %q", output)
	}
	if !strings.Contains(output, "- column 2 has too many Suns") {
		t.Errorf("expected second violation listed, got %q", output)
	}
}

func TestTextHandler_EmitSolution(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(nil, out)

	grid, err := domain.ParseGrid([]string{"SMSM", "MSMS", "SMSM", "MSMS"})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	solution := &domain.Solution{Steps: make([]domain.Step, 3), Grid: grid, Solved: true}

	if err := handler.EmitSolution(context.Background(), solution); err != nil {
		t.Fatalf("EmitSolution failed: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "Solved in 3 steps.") {
		t.Errorf("expected solved summary, got %q", output)
	}
	if !strings.Contains(output, "SMSM") {
		t.Errorf("expected final grid rows, got %q", output)
	}
}

func TestTextHandler_EmitSolution_Stuck(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(nil, out)

	grid, err := domain.NewGrid(6)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	grid.Set(0, 0, domain.Sun)
	solution := &domain.Solution{Grid: grid, Solved: false}

	if err := handler.EmitSolution(context.Background(), solution); err != nil {
		t.Fatalf("EmitSolution failed: %v", err)
	}
	output := out.String()
	if !strings.Contains(output, "Stuck after 0 steps") {
		t.Errorf("expected stuck summary, got %q", output)
	}
	if !strings.Contains(output, "35 cells remain empty") {
		t.Errorf("expected remaining cell count, got %q", output)
	}
}

func TestTextHandler_Input(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("  keep going  \n"), out)

	val, err := handler.Input(context.Background())
	if err != nil {
		t.Fatalf("Input failed: %v", err)
	}
	if val != "keep going" {
		t.Errorf("expected trimmed input, got %q", val)
	}
	if !strings.Contains(out.String(), "> ") {
		t.Errorf("expected prompt, got %q", out.String())
	}
}

func TestTextHandler_Input_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	handler := NewTextHandler(strings.NewReader("never read\n"), &bytes.Buffer{})
	if _, err := handler.Input(ctx); err == nil {
		t.Error("expected an error from the cancelled context")
	}
}

func TestTextHandler_SystemOutput(t *testing.T) {
	out := &bytes.Buffer{}
	handler := NewTextHandler(nil, out)

	if err := handler.SystemOutput(context.Background(), "halting"); err != nil {
		t.Fatalf("SystemOutput failed: %v", err)
	}
	if !strings.Contains(out.String(), "[System] halting") {
		t.Errorf("expected system prefix, got %q", out.String())
	}
}
