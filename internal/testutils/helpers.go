// Package testutils holds helpers shared by tests across packages.
package testutils

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/loam/pkg/core"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/solstice/pkg/domain"
)

// SetupTestRepo creates a temporary directory and initializes a loam
// repository in it. It returns the absolute path to the temp dir and the
// initialized repository, failing the test immediately on error.
func SetupTestRepo(t *testing.T, opts ...loam.Option) (string, core.Repository) {
	t.Helper()

	tmpDir := t.TempDir()

	// t.TempDir usually returns an absolute path already; making sure keeps
	// loam happy on every platform.
	absPath, err := filepath.Abs(tmpDir)
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	repo, err := loam.Init(absPath, opts...)
	require.NoError(t, err, "Failed to init loam repo")

	return absPath, repo
}

// SeedPuzzleDoc saves a catalog puzzle document with the given frontmatter
// fields and a short markdown body. Constraint quads use the catalog's flat
// [row1, col1, row2, col2] form.
func SeedPuzzleDoc(t *testing.T, repo core.Repository, docID string, p domain.Puzzle) {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("---\n")
	if p.ID != "" {
		fmt.Fprintf(&sb, "id: %s\n", p.ID)
	}
	if p.Name != "" {
		fmt.Fprintf(&sb, "name: %q\n", p.Name)
	}
	if p.Difficulty != "" {
		fmt.Fprintf(&sb, "difficulty: %s\n", p.Difficulty)
	}
	fmt.Fprintf(&sb, "size: %d\n", p.Grid.Size())
	sb.WriteString("rows:\n")
	for _, row := range p.Grid.Rows() {
		fmt.Fprintf(&sb, "  - %q\n", row)
	}
	writeQuads(&sb, "equals", p.Constraints.Equals)
	writeQuads(&sb, "notEquals", p.Constraints.NotEquals)
	sb.WriteString("---\n")
	if p.Name != "" {
		fmt.Fprintf(&sb, "%s.\n", p.Name)
	}

	err := repo.Save(context.Background(), core.Document{ID: docID, Content: sb.String()})
	require.NoError(t, err, "Failed to seed puzzle document")
}

func writeQuads(sb *strings.Builder, key string, pairs []domain.Pair) {
	if len(pairs) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s:\n", key)
	for _, p := range pairs {
		fmt.Fprintf(sb, "  - [%d, %d, %d, %d]\n", p.Row1, p.Col1, p.Row2, p.Col2)
	}
}
