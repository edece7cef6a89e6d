// Package file persists puzzles on the local filesystem, one JSON document
// per puzzle, and provides the YAML/JSON codec the CLI uses for puzzle files.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/solstice/pkg/domain"
	"github.com/aretw0/solstice/pkg/ports"
)

// Store implements ports.PuzzleStore using the local filesystem.
// Each puzzle is a JSON file named <id>.json in a configured directory.
type Store struct {
	BasePath string
}

var _ ports.PuzzleStore = (*Store)(nil)

// New creates a Store rooted at basePath.
// If basePath is empty, it defaults to ".solstice/puzzles".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".solstice", "puzzles")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(id string) string {
	return filepath.Join(s.BasePath, id+".json")
}

// Save persists the puzzle atomically: write to a temp file in the same
// directory, fsync, close, then rename over the destination. A crash mid-save
// leaves either the old file or the new one, never a truncated mix.
func (s *Store) Save(ctx context.Context, p domain.Puzzle) error {
	if p.ID == "" {
		return fmt.Errorf("%w: puzzle ID cannot be empty", domain.ErrInvalidInput)
	}
	if strings.ContainsAny(p.ID, `/\`) {
		return fmt.Errorf("%w: puzzle ID %q must not contain path separators", domain.ErrInvalidInput, p.ID)
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure puzzle directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	// The temp file lives in the destination directory so the rename never
	// crosses filesystems.
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+p.ID+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // Gone already when the rename succeeded.
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	destPath := s.path(p.ID)

	// os.Rename does not replace existing files on Windows, so clear the
	// destination first. The brief gap beats serving a partial file.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing puzzle file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Load retrieves a puzzle by ID.
func (s *Store) Load(ctx context.Context, id string) (domain.Puzzle, error) {
	if id == "" {
		return domain.Puzzle{}, fmt.Errorf("%w: puzzle ID cannot be empty", domain.ErrInvalidInput)
	}

	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Puzzle{}, fmt.Errorf("puzzle %q: %w", id, domain.ErrPuzzleNotFound)
		}
		return domain.Puzzle{}, fmt.Errorf("failed to read puzzle file: %w", err)
	}

	var p domain.Puzzle
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Puzzle{}, fmt.Errorf("failed to unmarshal puzzle %q: %w", id, err)
	}
	return p, nil
}

// Delete removes the puzzle file. Deleting an absent puzzle is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: puzzle ID cannot be empty", domain.ErrInvalidInput)
	}

	err := os.Remove(s.path(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete puzzle file: %w", err)
	}
	return nil
}

// List returns all stored puzzle IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		if strings.HasPrefix(name, "tmp-") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}
