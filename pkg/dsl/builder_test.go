package dsl

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/solstice/pkg/domain"
)

func TestBuilder_SimpleCatalog(t *testing.T) {
	// 1. Build the catalog using DSL
	b := NewCatalog()

	b.Add("warmup").
		Name("Warmup").
		Difficulty(domain.DifficultyEasy).
		Rows(".M.M", "M.MS", "SMSM", "MSMS")

	b.Add("open-field").
		Name("Open Field").
		Size(6)

	// 2. Compile to Catalog
	catalog, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	ctx := context.Background()

	// 3. Verify specific puzzles
	warmup, err := catalog.Get(ctx, "warmup")
	if err != nil {
		t.Fatalf("Get('warmup') failed: %v", err)
	}
	if warmup.Name != "Warmup" {
		t.Errorf("Expected name 'Warmup', got '%s'", warmup.Name)
	}
	if warmup.Difficulty != domain.DifficultyEasy {
		t.Errorf("Expected difficulty 'easy', got '%s'", warmup.Difficulty)
	}
	if warmup.Grid.Size() != 4 {
		t.Errorf("Expected a 4x4 grid, got %d", warmup.Grid.Size())
	}
	if warmup.Grid.At(0, 1) != domain.Moon {
		t.Errorf("Expected Moon at (0, 1), got %s", warmup.Grid.At(0, 1))
	}

	openField, err := catalog.Get(ctx, "open-field")
	if err != nil {
		t.Fatalf("Get('open-field') failed: %v", err)
	}
	if openField.Grid.Size() != 6 {
		t.Errorf("Expected a 6x6 grid, got %d", openField.Grid.Size())
	}
	if openField.Grid.Empties() != 36 {
		t.Errorf("Expected an empty board, got %d empties", openField.Grid.Empties())
	}

	// Check List
	puzzles, err := catalog.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(puzzles) != 2 {
		t.Errorf("Expected 2 puzzles, got %d", len(puzzles))
	}
}

func TestBuilder_PlacementsAndConstraints(t *testing.T) {
	b := NewCatalog()

	b.Add("crossed").
		Name("Crossed Wires").
		Difficulty(domain.DifficultyHard).
		Size(6).
		Sun(0, 0).Moon(0, 5).
		Equal(1, 1, 1, 2).
		NotEqual(4, 0, 5, 0)

	catalog, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	p, err := catalog.Get(context.Background(), "crossed")
	if err != nil {
		t.Fatalf("Get('crossed') failed: %v", err)
	}

	if p.Grid.At(0, 0) != domain.Sun {
		t.Errorf("Expected Sun at (0, 0), got %s", p.Grid.At(0, 0))
	}
	if p.Grid.At(0, 5) != domain.Moon {
		t.Errorf("Expected Moon at (0, 5), got %s", p.Grid.At(0, 5))
	}
	if len(p.Constraints.Equals) != 1 {
		t.Fatalf("Expected 1 equals constraint, got %d", len(p.Constraints.Equals))
	}
	if p.Constraints.Equals[0] != (domain.Pair{Row1: 1, Col1: 1, Row2: 1, Col2: 2}) {
		t.Errorf("Unexpected equals pair: %+v", p.Constraints.Equals[0])
	}
	if len(p.Constraints.NotEquals) != 1 {
		t.Fatalf("Expected 1 notEquals constraint, got %d", len(p.Constraints.NotEquals))
	}
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := NewCatalog()

	first := b.Add("daily")
	second := b.Add("daily")

	if first != second {
		t.Error("Expected Add to return the existing builder for a known ID")
	}
}

func TestPuzzleBuilder_Errors(t *testing.T) {
	t.Run("No Board", func(t *testing.T) {
		_, err := New("empty").Build()
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Placement Out Of Bounds", func(t *testing.T) {
		_, err := New("oob").Size(4).Sun(4, 0).Build()
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("Malformed Rows", func(t *testing.T) {
		_, err := New("bad").Rows("SX..", "....", "....", "....").Build()
		if err == nil {
			t.Error("Expected an error for an unknown symbol")
		}
	})

	t.Run("Constraint Out Of Bounds", func(t *testing.T) {
		_, err := New("bad-pair").Size(4).Equal(0, 0, 9, 9).Build()
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})
}
