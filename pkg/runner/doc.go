/*
Package runner implements the input side of the viewer: reading lines from the
terminal and turning them into decisions.

# Key Components

  - LineReader: reads sanitized lines through a pump goroutine so that a
    cancelled context unblocks a pending prompt.
  - Gate: the confirm-or-quit protocol shared by every prompt.
  - Classify: the pure mapping from one input line to a domain.Result.

# Usage

	lines := runner.NewLineReader(os.Stdin)
	gate := runner.NewGate(lines, os.Stdout, runner.WithCaseInsensitive(true))

	res, err := gate.Confirm(ctx, "Continue? (y/n): ")
*/
package runner
