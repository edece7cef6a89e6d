/*
Package domain contains the core domain models and business logic for the Solstice engine.

It defines the fundamental entities of a deduction puzzle, such as the Grid of
Sun and Moon cells, the constraint pairs between them, and the Step records
produced by the rules. This package is kept pure and free of external
dependencies like I/O or persistence, following Hexagonal Architecture
principles.

# Key Entities

  - Cell: One square of the board (Empty, Sun, or Moon).
  - Grid: A square board of cells with value semantics.
  - ConstraintSet: Equality and inequality pairs between cells.
  - Step: A single forced move with the rule that found it and its explanation.
  - Puzzle: A starting grid plus constraints and catalog metadata.
*/
package domain
