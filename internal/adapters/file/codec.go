package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/solstice/pkg/domain"
)

// Format identifies a puzzle file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// puzzleFile is the on-disk shape of a puzzle document. Constraint pairs are
// flat [row1, col1, row2, col2] quads, which read naturally in YAML.
type puzzleFile struct {
	ID         string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	Difficulty string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Size       int      `json:"size,omitempty" yaml:"size,omitempty"`
	Rows       []string `json:"rows" yaml:"rows"`
	Equals     [][]int  `json:"equals,omitempty" yaml:"equals,omitempty"`
	NotEquals  [][]int  `json:"notEquals,omitempty" yaml:"notEquals,omitempty"`
}

// FormatForPath picks the encoding from a file extension. Unknown extensions
// default to YAML, the format the documentation leads with.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// ReadPuzzle loads and validates a puzzle file. When the document carries no
// ID, the file name (without extension) is used.
func ReadPuzzle(path string) (domain.Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	p, err := DecodePuzzle(data, FormatForPath(path))
	if err != nil {
		return domain.Puzzle{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.ID == "" {
		base := filepath.Base(path)
		p.ID = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return p, nil
}

// DecodePuzzle parses a puzzle document and validates its structure.
func DecodePuzzle(data []byte, format Format) (domain.Puzzle, error) {
	var doc puzzleFile
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return domain.Puzzle{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return domain.Puzzle{}, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	default:
		return domain.Puzzle{}, fmt.Errorf("%w: unknown puzzle format %q", domain.ErrInvalidInput, format)
	}
	return doc.toPuzzle()
}

// EncodePuzzle renders a puzzle in the requested format.
func EncodePuzzle(p domain.Puzzle, format Format) ([]byte, error) {
	doc := fromPuzzle(p)
	switch format {
	case FormatJSON:
		return json.MarshalIndent(doc, "", "  ")
	case FormatYAML:
		return yaml.Marshal(doc)
	}
	return nil, fmt.Errorf("%w: unknown puzzle format %q", domain.ErrInvalidInput, format)
}

// WritePuzzle stores a puzzle document at path, in the format implied by the
// extension.
func WritePuzzle(path string, p domain.Puzzle) error {
	data, err := EncodePuzzle(p, FormatForPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write puzzle file: %w", err)
	}
	return nil
}

func (f puzzleFile) toPuzzle() (domain.Puzzle, error) {
	grid, err := domain.ParseGrid(f.Rows)
	if err != nil {
		return domain.Puzzle{}, err
	}
	if f.Size != 0 && f.Size != grid.Size() {
		return domain.Puzzle{}, fmt.Errorf("%w: declared size %d does not match %d rows",
			domain.ErrInvalidInput, f.Size, grid.Size())
	}

	difficulty, err := domain.ParseDifficulty(f.Difficulty)
	if err != nil {
		return domain.Puzzle{}, err
	}

	equals, err := pairsFromQuads("equals", f.Equals)
	if err != nil {
		return domain.Puzzle{}, err
	}
	notEquals, err := pairsFromQuads("notEquals", f.NotEquals)
	if err != nil {
		return domain.Puzzle{}, err
	}

	p := domain.Puzzle{
		ID:          f.ID,
		Name:        f.Name,
		Difficulty:  difficulty,
		Grid:        grid,
		Constraints: domain.ConstraintSet{Equals: equals, NotEquals: notEquals},
	}
	if err := p.Constraints.Validate(grid.Size()); err != nil {
		return domain.Puzzle{}, err
	}
	return p, nil
}

func fromPuzzle(p domain.Puzzle) puzzleFile {
	return puzzleFile{
		ID:         p.ID,
		Name:       p.Name,
		Difficulty: string(p.Difficulty),
		Size:       p.Grid.Size(),
		Rows:       p.Grid.Rows(),
		Equals:     quadsFromPairs(p.Constraints.Equals),
		NotEquals:  quadsFromPairs(p.Constraints.NotEquals),
	}
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

func quadsFromPairs(pairs []domain.Pair) [][]int {
	if len(pairs) == 0 {
		return nil
	}
	out := make([][]int, len(pairs))
	for i, p := range pairs {
		out[i] = []int{p.Row1, p.Col1, p.Row2, p.Col2}
	}
	return out
}
