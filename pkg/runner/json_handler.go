package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/solstice/pkg/domain"
)

// Event types emitted by JSONHandler.
const (
	EventStep     = "step"
	EventReport   = "report"
	EventSolution = "solution"
	EventSystem   = "system"
)

// Event is one JSON-Lines record emitted by JSONHandler. Exactly one payload
// field is set, matching Type.
type Event struct {
	Type     string           `json:"type"`
	Index    int              `json:"index,omitempty"`
	Step     *domain.Step     `json:"step,omitempty"`
	Report   *domain.Report   `json:"report,omitempty"`
	Solution *domain.Solution `json:"solution,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines
// communication, one event object per line.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) EmitStep(ctx context.Context, index int, step domain.Step) error {
	return h.Encoder.Encode(Event{Type: EventStep, Index: index, Step: &step})
}

func (h *JSONHandler) EmitReport(ctx context.Context, report domain.Report) error {
	return h.Encoder.Encode(Event{Type: EventReport, Report: &report})
}

func (h *JSONHandler) EmitSolution(ctx context.Context, solution *domain.Solution) error {
	return h.Encoder.Encode(Event{Type: EventSolution, Solution: solution})
}

// Input reads a line and unquotes it when it is a JSON string, so callers
// can pace a replay from either a terminal or a JSON-speaking supervisor.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	text, err := h.Reader.ReadString('\n')
	if err != nil && text == "" {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		return val, nil
	}
	return text, nil
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Event{Type: EventSystem, Message: msg})
}
