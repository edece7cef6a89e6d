/*
Package solstice is a deduction engine for binary-symbol logic grid puzzles:
square boards filled with two symbols (Sun and Moon) under balance, adjacency
and relational constraints.

It implements a "forced moves only" architecture: the engine never guesses or
backtracks. Every cell it fills is the conclusion of a named deduction rule,
and every step carries a human-readable justification, so the engine doubles
as a tutor that can explain why a move is the only legal one.

# Concept

Solstice treats solving as repeated application of an ordered rule set. Each
rule is a pure function over the current grid: it either finds a forced move
or reports that it does not apply. The driver dispatches the rules in a fixed
priority order, applies the first hit, and repeats until the board is full or
no rule fires. This Hexagonal Architecture keeps the deduction core free of
I/O; adapters (CLI, HTTP, MCP, storage) live at the edges.

# Key Features

  - Deterministic Deduction: the same position always yields the same next
    step, down to the scan order inside each rule.
  - Explained Steps: every move names its rule, the cells that forced it, and
    a sentence a player can follow.
  - Legality Gates: full-board validation before solving and a cheap partial
    check while stepping, so illegal positions fail loudly instead of
    producing garbage deductions.
  - Pluggable Edges: storage, transport and presentation are adapters over a
    stateless core that is safe for concurrent use.

# Usage

Construct a Solver and drive it with a grid and its constraint set.

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/solstice"
		"github.com/aretw0/solstice/pkg/domain"
	)

	func main() {
		grid, err := domain.ParseGrid([]string{
			"S.....",
			"......",
			"..M...",
			"......",
			"....S.",
			"......",
		})
		if err != nil {
			log.Fatal(err)
		}

		cs := domain.ConstraintSet{
			Equals: []domain.Pair{
				domain.NewPair(domain.Coord{Row: 0, Col: 1}, domain.Coord{Row: 0, Col: 2}),
			},
		}

		solver := solstice.New()

		solution, err := solver.Solve(grid, cs)
		if err != nil {
			log.Fatal(err)
		}

		for _, step := range solution.Steps {
			fmt.Printf("%s: %s\n", step.Rule, step.Explanation)
		}
		fmt.Println(solution.Grid)
	}

Solve returns the full deduction trace; call NextStep instead to advance one
forced move at a time, for hint-style interfaces.
*/
package solstice
