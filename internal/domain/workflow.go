// Package domain implements the rope simulation and the workflow that feeds it.
package domain

import (
	"context"
	"fmt"

	"github.com/mouse-blink/ropetrail/internal/adapter"
	"github.com/mouse-blink/ropetrail/internal/controller"
	m "github.com/mouse-blink/ropetrail/internal/model"
	"golang.org/x/sync/errgroup"
)

// SolveArgs configures a single simulation run.
type SolveArgs struct {
	Path   m.Path
	Knots  int
	Trace  bool // echo every parsed command as a diagnostic
	Report bool // render a summary table after the result
}

// CompareArgs configures a run over every supported rope length.
type CompareArgs struct {
	Path   m.Path
	Report bool
}

// Workflow defines the operations exposed to the CLI.
type Workflow interface {
	Solve(args SolveArgs) (m.Stats, error)
	Compare(ctx context.Context, args CompareArgs) ([]m.Stats, error)
}

type workflow struct {
	source adapter.CommandSource
	ui     controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(source adapter.CommandSource, ui controller.UI) Workflow {
	return &workflow{
		source: source,
		ui:     ui,
	}
}

// Solve streams the commands of args.Path through a rope of args.Knots knots
// and displays the number of distinct tail positions.
func (w *workflow) Solve(args SolveArgs) (m.Stats, error) {
	sim, err := NewSimulation(args.Knots)
	if err != nil {
		return m.Stats{}, err
	}

	err = w.source.Scan(args.Path, func(cmd m.Command) error {
		if args.Trace {
			w.ui.DisplayCommand(cmd)
		}

		return sim.Apply(cmd)
	})
	if err != nil {
		return m.Stats{}, err
	}

	stats := sim.Stats()

	if err := w.ui.DisplayResult(stats.Visited); err != nil {
		return stats, fmt.Errorf("display result: %w", err)
	}

	if args.Report {
		if err := w.ui.DisplayReport([]m.Stats{stats}); err != nil {
			return stats, fmt.Errorf("display report: %w", err)
		}
	}

	return stats, nil
}

// Compare loads args.Path once and simulates every supported rope length on
// its own goroutine. Each simulation owns its rope and recorder. Results are
// returned in ascending knot order.
func (w *workflow) Compare(ctx context.Context, args CompareArgs) ([]m.Stats, error) {
	commands, err := w.source.Load(args.Path)
	if err != nil {
		return nil, err
	}

	runs := make([]m.Stats, len(m.RopeLengths))

	g, gctx := errgroup.WithContext(ctx)

	for i, knots := range m.RopeLengths {
		i, knots := i, knots
		g.Go(func() error {
			stats, err := Simulate(gctx, knots, commands)
			if err != nil {
				return fmt.Errorf("simulate %d knots: %w", knots, err)
			}

			runs[i] = stats

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := w.ui.DisplayComparison(runs); err != nil {
		return runs, fmt.Errorf("display comparison: %w", err)
	}

	if args.Report {
		if err := w.ui.DisplayReport(runs); err != nil {
			return runs, fmt.Errorf("display report: %w", err)
		}
	}

	return runs, nil
}
