package loam

import (
	"fmt"

	"github.com/aretw0/solstice/pkg/domain"
)

// PuzzleMetadata is the frontmatter of a catalog puzzle document. It uses
// "mapstructure" tags to match the YAML keys loam decodes. Constraint pairs
// are flat [row1, col1, row2, col2] quads, the same shape the file codec uses.
type PuzzleMetadata struct {
	ID         string   `json:"id" mapstructure:"id"`
	Name       string   `json:"name" mapstructure:"name"`
	Difficulty string   `json:"difficulty" mapstructure:"difficulty"`
	Size       int      `json:"size" mapstructure:"size"`
	Rows       []string `json:"rows" mapstructure:"rows"`
	Equals     [][]int  `json:"equals" mapstructure:"equals"`
	NotEquals  [][]int  `json:"notEquals" mapstructure:"notEquals"`
}

// toPuzzle converts decoded frontmatter into a validated domain puzzle.
// docID supplies the ID when the frontmatter has none.
func (m PuzzleMetadata) toPuzzle(docID string) (domain.Puzzle, error) {
	grid, err := domain.ParseGrid(m.Rows)
	if err != nil {
		return domain.Puzzle{}, err
	}
	if m.Size != 0 && m.Size != grid.Size() {
		return domain.Puzzle{}, fmt.Errorf("%w: declared size %d does not match %d rows",
			domain.ErrInvalidInput, m.Size, grid.Size())
	}

	difficulty, err := domain.ParseDifficulty(m.Difficulty)
	if err != nil {
		return domain.Puzzle{}, err
	}

	equals, err := pairsFromQuads("equals", m.Equals)
	if err != nil {
		return domain.Puzzle{}, err
	}
	notEquals, err := pairsFromQuads("notEquals", m.NotEquals)
	if err != nil {
		return domain.Puzzle{}, err
	}

	id := m.ID
	if id == "" {
		id = docID
	}

	p := domain.Puzzle{
		ID:          id,
		Name:        m.Name,
		Difficulty:  difficulty,
		Grid:        grid,
		Constraints: domain.ConstraintSet{Equals: equals, NotEquals: notEquals},
	}
	if err := p.Constraints.Validate(grid.Size()); err != nil {
		return domain.Puzzle{}, err
	}
	return p, nil
}

func pairsFromQuads(kind string, quads [][]int) ([]domain.Pair, error) {
	if len(quads) == 0 {
		return nil, nil
	}
	out := make([]domain.Pair, len(quads))
	for i, q := range quads {
		if len(q) != 4 {
			return nil, fmt.Errorf("%w: %s pair %d has %d values, want [row1, col1, row2, col2]",
				domain.ErrInvalidInput, kind, i+1, len(q))
		}
		out[i] = domain.Pair{Row1: q[0], Col1: q[1], Row2: q[2], Col2: q[3]}
	}
	return out, nil
}
