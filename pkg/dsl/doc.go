/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing puzzles.

It allows developers to define boards, constraints and whole catalogs using a type-safe,
fluent builder pattern instead of relying on external YAML or JSON files. This is
particularly useful for fixtures, unit testing, and leveraging IDE autocompletion.

Example usage:

	package main

	import (
		"github.com/aretw0/solstice/pkg/dsl"
		"github.com/aretw0/solstice/pkg/domain"
	)

	func main() {
		b := dsl.NewCatalog()

		b.Add("warmup").
			Name("Warmup").
			Difficulty(domain.DifficultyEasy).
			Rows(".M.M", "M.MS", "SMSM", "MSMS")

		b.Add("crossed").
			Name("Crossed Wires").
			Size(6).
			Sun(0, 0).Moon(0, 5).
			Equal(1, 1, 1, 2).
			NotEqual(4, 0, 5, 0)

		// The resulting catalog satisfies ports.PuzzleCatalog.
		catalog, err := b.Build()
		_ = catalog
		_ = err
	}
*/
package dsl
