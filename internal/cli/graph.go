package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/solstice/internal/presentation/graph"
)

// GraphOptions configures the deduction-trail export.
type GraphOptions struct {
	PuzzlePath string
	Output     string
	Debug      bool
}

// RunGraph solves the puzzle quietly and emits the deduction trail as a
// Mermaid diagram, to stdout or to the given output file.
func RunGraph(opts GraphOptions) error {
	logger := createLogger(opts.Debug)

	puzzle, err := loadPuzzle(opts.PuzzlePath)
	if err != nil {
		return err
	}

	solver := createSolver(RunOptions{Debug: opts.Debug}, logger)
	solution, err := solver.Solve(puzzle.Grid, puzzle.Constraints)
	if err != nil {
		return fmt.Errorf("error solving puzzle: %w", err)
	}

	id := puzzle.ID
	if id == "" {
		base := filepath.Base(opts.PuzzlePath)
		id = strings.TrimSuffix(base, filepath.Ext(base))
	}

	overlay := &graph.Overlay{AppliedSteps: len(solution.Steps), Solved: solution.Solved}
	out := graph.GenerateMermaid(id, solution.Steps, overlay)

	if opts.Output == "" || opts.Output == "-" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(opts.Output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("error writing diagram: %w", err)
	}
	printSystemMessage("Diagram written to '%s'.", opts.Output)
	return nil
}
