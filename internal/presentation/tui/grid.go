package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/aretw0/solstice/pkg/domain"
)

const (
	sunColor   = "#fbbf24"
	moonColor  = "#818cf8"
	faintColor = "#6b7280"
)

// PaintGrid renders the grid for terminal display: suns amber, moons indigo,
// empty cells as dim dots. Row and column headers are 1-indexed to line up
// with the coordinates used in explanations. When highlight is non-nil that
// cell is drawn in reverse video so the latest deduction stands out.
func PaintGrid(g domain.Grid, highlight *domain.Coord) string {
	p := termenv.ColorProfile()
	var sb strings.Builder

	sb.WriteString("    ")
	for col := 0; col < g.Size(); col++ {
		sb.WriteString(fmt.Sprintf(" %d", col+1))
	}
	sb.WriteString("\n")

	for row := 0; row < g.Size(); row++ {
		sb.WriteString(fmt.Sprintf(" %2d ", row+1))
		for col := 0; col < g.Size(); col++ {
			sb.WriteString(" ")
			sb.WriteString(paintCell(p, g.At(row, col), highlighted(highlight, row, col)))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func highlighted(h *domain.Coord, row, col int) bool {
	return h != nil && h.Row == row && h.Col == col
}

func paintCell(p termenv.Profile, c domain.Cell, highlight bool) string {
	var s termenv.Style
	switch c {
	case domain.Sun:
		s = termenv.String("S").Foreground(p.Color(sunColor)).Bold()
	case domain.Moon:
		s = termenv.String("M").Foreground(p.Color(moonColor)).Bold()
	default:
		s = termenv.String("·").Foreground(p.Color(faintColor)).Faint()
	}
	if highlight {
		s = s.Reverse()
	}
	return s.String()
}
