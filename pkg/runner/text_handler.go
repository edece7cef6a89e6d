package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/solstice/pkg/domain"
)

// TextHandler implements the standard text-based interface for humans.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	Painter  GridPainter
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerPainter configures the grid painter.
func WithTextHandlerPainter(painter GridPainter) TextHandlerOption {
	return func(h *TextHandler) {
		h.Painter = painter
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) EmitStep(ctx context.Context, index int, step domain.Step) error {
	h.emit(
		fmt.Sprintf("%d. **%s**: %s = %s\n\n%s", index, step.Rule, step.Target.Display(), step.Value, step.Explanation),
		fmt.Sprintf("%d. %s\n   %s", index, step, step.Explanation),
	)
	if h.Painter != nil {
		target := step.Target
		fmt.Fprintln(h.Writer, h.Painter(step.After, &target))
	}
	return nil
}

func (h *TextHandler) EmitReport(ctx context.Context, report domain.Report) error {
	if report.Legal {
		h.emit("The starting position is **legal**.", "The starting position is legal.")
		return nil
	}
	var md, plain strings.Builder
	md.WriteString("The starting position is **illegal**:\n")
	plain.WriteString("The starting position is illegal:")
	for _, v := range report.Violations {
		fmt.Fprintf(&md, "\n- %s", v)
		fmt.Fprintf(&plain, "\n  - %s", v)
	}
	h.emit(md.String(), plain.String())
	return nil
}

func (h *TextHandler) EmitSolution(ctx context.Context, solution *domain.Solution) error {
	if solution.Solved {
		msg := fmt.Sprintf("Solved in %d steps.", len(solution.Steps))
		h.emit("**"+msg+"**", msg)
	} else {
		msg := fmt.Sprintf("Stuck after %d steps: no rule forces a move and %d cells remain empty.",
			len(solution.Steps), solution.Grid.Empties())
		h.emit(msg, msg)
	}
	if h.Painter != nil {
		fmt.Fprintln(h.Writer, h.Painter(solution.Grid, nil))
	} else {
		fmt.Fprintln(h.Writer, solution.Grid)
	}
	return nil
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	fmt.Fprint(h.Writer, "> ")
	text, err := h.Reader.ReadString('\n')
	if err != nil && text == "" {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	fmt.Fprintf(h.Writer, "\n[System] %s\n", msg)
	return nil
}

// emit writes the markdown form through the renderer when one is set, and
// the plain form otherwise. A renderer failure falls back to plain text.
func (h *TextHandler) emit(markdown, plain string) {
	if h.Renderer != nil {
		if rendered, err := h.Renderer(markdown); err == nil {
			fmt.Fprintln(h.Writer, strings.TrimSpace(rendered))
			return
		}
	}
	fmt.Fprintln(h.Writer, plain)
}
