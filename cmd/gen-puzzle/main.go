package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/loam"
	catalog "github.com/aretw0/solstice/pkg/adapters/loam"
)

func main() {
	targetDir := "examples/catalog"
	if len(os.Args) > 1 {
		targetDir = os.Args[1]
	}

	// Ensure dir exists
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		panic(err)
	}

	fmt.Printf("Generating sample catalog in: %s\n", targetDir)

	// Init Loam (No Versioning = pure file generation)
	// This acts as our puzzle editor saving to disk.
	repo, err := loam.Init(targetDir, loam.WithVersioning(false))
	if err != nil {
		panic(err)
	}

	typedRepo := loam.NewTypedRepository[catalog.PuzzleMetadata](repo)
	ctx := context.TODO()

	// 1. Warmup (clean, full frontmatter)
	// Three empty cells, each forced by row parity.
	warmup := catalog.PuzzleMetadata{
		ID:         "warmup",
		Name:       "Warmup",
		Difficulty: "easy",
		Size:       4,
		Rows:       []string{".M.M", "M.MS", "SMSM", "MSMS"},
	}
	err = typedRepo.Save(ctx, &loam.DocumentModel[catalog.PuzzleMetadata]{
		ID:      "warmup",
		Content: "Three cells are open and every one of them is forced.\nA first taste of the Parity Rule.",
		Data:    warmup,
	})
	check(err)

	// 2. Last Light (constraints, one empty row)
	// The bottom row falls to column parity; the equals constraint ties its
	// last cell back to row 2.
	lastLight := catalog.PuzzleMetadata{
		ID:         "last-light",
		Name:       "Last Light",
		Difficulty: "medium",
		Size:       4,
		Rows:       []string{"SMMS", "MSSM", "SMMS", "...."},
		Equals:     [][]int{{1, 3, 3, 3}},
		NotEquals:  [][]int{{0, 0, 1, 0}},
	}
	err = typedRepo.Save(ctx, &loam.DocumentModel[catalog.PuzzleMetadata]{
		ID:      "last-light",
		Content: "The whole bottom row is open.\nRead the columns, not the rows.",
		Data:    lastLight,
	})
	check(err)

	// 3. Dusk (sparse frontmatter)
	// No id and no size: the document name supplies the ID and the rows
	// supply the dimensions. Keeps the fallback paths honest.
	dusk := catalog.PuzzleMetadata{
		Name: "Dusk",
		Rows: []string{"SMMS", "MSSM", "SM.S", "MSSM"},
	}
	err = typedRepo.Save(ctx, &loam.DocumentModel[catalog.PuzzleMetadata]{
		ID:      "dusk",
		Content: "One cell left.",
		Data:    dusk,
	})
	check(err)

	fmt.Println("Done. Verify contents in", targetDir)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
