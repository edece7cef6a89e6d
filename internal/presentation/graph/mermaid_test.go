package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/solstice/internal/presentation/graph"
	"github.com/aretw0/solstice/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		puzzleID string
		trail    []domain.Step
		overlay  *graph.Overlay
		contains []string
		excludes []string
	}{
		{
			name:     "Start Node Shape",
			puzzleID: "dawn-1",
			contains: []string{
				"graph TD",
				"dawn_1((\"dawn-1\"))",
			},
		},
		{
			name:     "Empty ID Falls Back",
			puzzleID: "",
			contains: []string{
				"start((\"start\"))",
			},
		},
		{
			name:     "Counting Rule Shape",
			puzzleID: "p",
			trail: []domain.Step{
				{Rule: "Parity Rule", Target: domain.Coord{Row: 0, Col: 3}, Value: domain.Moon},
			},
			contains: []string{
				"s1[/\"1. Parity Rule<br/>(1, 4) = Moon\"/]",
				"p --> s1",
			},
		},
		{
			name:     "Propagation Rule Shape",
			puzzleID: "p",
			trail: []domain.Step{
				{Rule: "Constraint Propagation Rule", Target: domain.Coord{Row: 1, Col: 1}, Value: domain.Sun},
			},
			contains: []string{
				"s1[[\"1. Constraint Propagation Rule<br/>(2, 2) = Sun\"]]",
			},
		},
		{
			name:     "Pattern Rule Shape",
			puzzleID: "p",
			trail: []domain.Step{
				{Rule: "No-Three Rule", Target: domain.Coord{Row: 2, Col: 0}, Value: domain.Sun},
			},
			contains: []string{
				"s1[\"1. No-Three Rule<br/>(3, 1) = Sun\"]",
			},
		},
		{
			name:     "Jump Arrow Between Unrelated Cells",
			puzzleID: "p",
			trail: []domain.Step{
				{Rule: "Parity Rule", Target: domain.Coord{Row: 0, Col: 0}, Value: domain.Sun},
				{Rule: "Parity Rule", Target: domain.Coord{Row: 0, Col: 2}, Value: domain.Sun},
				{Rule: "Parity Rule", Target: domain.Coord{Row: 3, Col: 1}, Value: domain.Moon},
			},
			contains: []string{
				"s1 --> s2",  // same row, solid
				"s2 -.-> s3", // different row and column, dotted
			},
		},
		{
			name:     "Overlay Marks Applied And Current",
			puzzleID: "p",
			trail: []domain.Step{
				{Rule: "Parity Rule", Target: domain.Coord{Row: 0, Col: 0}, Value: domain.Sun},
				{Rule: "Parity Rule", Target: domain.Coord{Row: 0, Col: 2}, Value: domain.Sun},
			},
			overlay: &graph.Overlay{AppliedSteps: 1},
			contains: []string{
				"classDef applied",
				"classDef current",
				"class s1 applied;",
				"class s1 current;",
			},
			excludes: []string{
				"class s2 applied;",
			},
		},
		{
			name:     "Solved Terminal Node",
			puzzleID: "p",
			trail: []domain.Step{
				{Rule: "Parity Rule", Target: domain.Coord{Row: 0, Col: 0}, Value: domain.Sun},
			},
			overlay: &graph.Overlay{AppliedSteps: 1, Solved: true},
			contains: []string{
				"solved((\"solved\"))",
				"s1 --> solved",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.puzzleID, tt.trail, tt.overlay)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("GenerateMermaid() = \n%v\nUnwanted substring: %v", got, unwanted)
				}
			}
		})
	}
}
