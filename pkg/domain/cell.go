package domain

import "fmt"

// Cell is the content of a single grid position.
type Cell uint8

const (
	// Empty marks a position with no symbol yet.
	Empty Cell = iota
	// Sun is one of the two symbols.
	Sun
	// Moon is the other symbol.
	Moon
)

// Opposite returns the other symbol. Empty has no opposite and maps to itself.
func (c Cell) Opposite() Cell {
	switch c {
	case Sun:
		return Moon
	case Moon:
		return Sun
	default:
		return Empty
	}
}

// Filled reports whether the cell holds a symbol.
func (c Cell) Filled() bool { return c == Sun || c == Moon }

// String returns the display name used in explanations ("Sun", "Moon", "Empty").
func (c Cell) String() string {
	switch c {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	default:
		return "Empty"
	}
}

// Rune returns the compact file-format character: 'S', 'M' or '.'.
func (c Cell) Rune() rune {
	switch c {
	case Sun:
		return 'S'
	case Moon:
		return 'M'
	default:
		return '.'
	}
}

// CellFromRune parses the compact file-format character.
// '.' and '_' both read as Empty so hand-written fixtures stay forgiving.
func CellFromRune(r rune) (Cell, error) {
	switch r {
	case 'S', 's':
		return Sun, nil
	case 'M', 'm':
		return Moon, nil
	case '.', '_':
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: unknown cell character %q", ErrInvalidInput, r)
	}
}

// MarshalText encodes the cell as its lowercase name so JSON and YAML
// payloads read naturally ("sun", "moon", "empty").
func (c Cell) MarshalText() ([]byte, error) {
	switch c {
	case Sun:
		return []byte("sun"), nil
	case Moon:
		return []byte("moon"), nil
	default:
		return []byte("empty"), nil
	}
}

// UnmarshalText decodes the lowercase name form.
func (c *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "sun":
		*c = Sun
	case "moon":
		*c = Moon
	case "empty", "":
		*c = Empty
	default:
		return fmt.Errorf("%w: unknown cell value %q", ErrInvalidInput, string(text))
	}
	return nil
}
