// Package controller provides the output adapters of the ropetrail CLI.
package controller

import (
	m "github.com/mouse-blink/ropetrail/internal/model"
)

// UI defines how simulation progress and results reach the user.
// Results go to standard output; everything else is a diagnostic and goes to
// standard error so the answer line stays machine readable.
type UI interface {
	// DisplayCommand traces one parsed command line.
	DisplayCommand(cmd m.Command)
	// DisplayResult prints the number of distinct tail positions.
	DisplayResult(visited int) error
	// DisplayComparison prints one "<knots> <visited>" line per run.
	DisplayComparison(runs []m.Stats) error
	// DisplayReport renders a summary table of the runs.
	DisplayReport(runs []m.Stats) error
}
