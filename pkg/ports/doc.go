/*
Package ports defines the driven ports (interfaces) for the Solstice engine.

These interfaces decouple the core logic from external implementations, allowing
the solver to work with various puzzle stores, catalog sources, and transports.

# Key Interfaces

  - Solver: The stateless deduction core consumed by HTTP, MCP and CLI adapters.
  - PuzzleStore: Responsible for persisting and loading editable puzzles.
  - PuzzleCatalog: Responsible for serving a read-only puzzle library.
*/
package ports
