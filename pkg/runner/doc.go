/*
Package runner drives the solver and presents its deductions through
pluggable handlers.

It acts as the bridge between the deduction core and the outside world.
Deduction is deterministic, so the Runner solves first and then replays
the recorded steps through an IOHandler; the replay is indistinguishable
from watching the run live, and in interactive mode it pauses for input
between steps.

# Key Components

  - Runner: orchestrates validate, step and solve runs over a ports.Solver.
  - IOHandler: decouples how results are presented (Text vs JSON modes).
  - TextHandler: terminal presentation with optional markdown rendering
    and grid painting.
  - JSONHandler: one JSON event per line, for scripts and supervisors.

# Usage

	r := runner.NewRunner(solver,
		runner.WithHandler(runner.NewTextHandler(nil, os.Stdout)),
	)

	if _, err := r.Solve(ctx, grid, constraints); err != nil {
		log.Fatal(err)
	}
*/
package runner
