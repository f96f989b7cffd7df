package domain

import (
	"context"
	"fmt"

	m "github.com/mouse-blink/ropetrail/internal/model"
)

// Simulation drives one rope and records where its tail goes.
type Simulation struct {
	rope     *Rope
	recorder *TailRecorder
	commands int
}

// NewSimulation creates a simulation for a rope of the given knot count.
func NewSimulation(knots int) (*Simulation, error) {
	rope, err := NewRope(knots)
	if err != nil {
		return nil, err
	}

	return &Simulation{rope: rope, recorder: NewTailRecorder()}, nil
}

// Apply runs one command to completion.
func (s *Simulation) Apply(c m.Command) error {
	if err := s.rope.Apply(c, s.recorder.Record); err != nil {
		if c.Line > 0 {
			return fmt.Errorf("line %d: %w", c.Line, err)
		}

		return err
	}

	s.commands++

	return nil
}

// Rope exposes the simulated rope.
func (s *Simulation) Rope() *Rope {
	return s.rope
}

// Recorder exposes the tail recorder.
func (s *Simulation) Recorder() *TailRecorder {
	return s.recorder
}

// Stats summarizes the simulation so far.
func (s *Simulation) Stats() m.Stats {
	lo, hi := s.recorder.Bounds()

	return m.Stats{
		Knots:    s.rope.Len(),
		Commands: s.commands,
		Steps:    s.recorder.Observations(),
		Visited:  s.recorder.Count(),
		Head:     s.rope.Head(),
		Tail:     s.rope.Tail(),
		Min:      lo,
		Max:      hi,
	}
}

// Simulate runs all commands on a fresh rope of the given length. The context
// is checked between commands.
func Simulate(ctx context.Context, knots int, commands []m.Command) (m.Stats, error) {
	sim, err := NewSimulation(knots)
	if err != nil {
		return m.Stats{}, err
	}

	for _, c := range commands {
		if err := ctx.Err(); err != nil {
			return m.Stats{}, err
		}

		if err := sim.Apply(c); err != nil {
			return m.Stats{}, err
		}
	}

	return sim.Stats(), nil
}
