package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/solstice/pkg/domain"
)

// Overlay contains dynamic state data to visualize on the trail.
type Overlay struct {
	// AppliedSteps is how many steps of the trail have been applied so far.
	AppliedSteps int
	// Solved marks the terminal node as reached.
	Solved bool
}

// GenerateMermaid produces a Mermaid flowchart syntax string from a deduction
// trail. It applies semantic styling:
// - Start: ((Circle))
// - Counting rules (Parity, Balance): [/Parallelogram/]
// - Constraint propagation: [[Subroutine]]
// - Pattern rules (No-Three, Gap, Edge): [Rectangle]
// Consecutive steps on unrelated cells are linked with a dotted arrow, so
// jumps between distant parts of the board stand out. Overlay styles
// (Applied/Current) are added if provided.
func GenerateMermaid(puzzleID string, trail []domain.Step, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	startID := sanitizeMermaidID(puzzleID)
	if startID == "" {
		startID = "start"
	}
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", startID, escapeMermaidLabel(startLabel(puzzleID))))

	prev := startID
	prevStep := domain.Step{}
	for i, step := range trail {
		nodeID := fmt.Sprintf("s%d", i+1)
		opener, closer := shapeForRule(step.Rule)

		label := fmt.Sprintf("%d. %s<br/>%s = %s", i+1, step.Rule, step.Target.Display(), step.Value)
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID, opener, escapeMermaidLabel(label), closer))

		arrow := "-->"
		if i > 0 && isJump(prevStep, step) {
			arrow = "-.->"
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", prev, arrow, nodeID))

		prev = nodeID
		prevStep = step
	}

	if overlay != nil && overlay.Solved {
		sb.WriteString("    solved((\"solved\"))\n")
		sb.WriteString(fmt.Sprintf("    %s --> solved\n", prev))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef applied fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		applied := overlay.AppliedSteps
		if applied > len(trail) {
			applied = len(trail)
		}
		for i := 0; i < applied; i++ {
			sb.WriteString(fmt.Sprintf("    class s%d applied;\n", i+1))
		}
		if applied > 0 {
			sb.WriteString(fmt.Sprintf("    class s%d current;\n", applied))
		}
	}

	return sb.String()
}

func startLabel(puzzleID string) string {
	if puzzleID == "" {
		return "start"
	}
	return puzzleID
}

// shapeForRule picks a Mermaid node shape by rule family, so the diagram
// separates counting arguments from constraint propagation at a glance.
func shapeForRule(rule string) (string, string) {
	switch {
	case strings.Contains(rule, "Parity") || strings.Contains(rule, "Balance"):
		return "[/", "/]" // Parallelogram (counting)
	case strings.Contains(rule, "Constraint") || strings.Contains(rule, "Equals"):
		return "[[", "]]" // Subroutine (constraint propagation)
	default:
		return "[", "]" // Rectangle (pattern)
	}
}

// isJump reports whether two consecutive steps share neither a row nor a
// column, i.e. the deduction moved to an unrelated part of the board.
func isJump(a, b domain.Step) bool {
	return a.Target.Row != b.Target.Row && a.Target.Col != b.Target.Col
}

func escapeMermaidLabel(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
