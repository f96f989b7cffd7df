package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/ropetrail/internal/model"
)

// ErrUnsupportedKnots is returned when a rope is built with a knot count other
// than the short or long rope length.
var ErrUnsupportedKnots = errors.New("unsupported knot count")

// Rope is an ordered chain of knots. Index 0 is the head, the last index is the tail.
type Rope struct {
	knots []m.Position
}

// NewRope creates a rope with every knot at the origin.
func NewRope(knots int) (*Rope, error) {
	if !m.ValidKnots(knots) {
		return nil, fmt.Errorf("%w: %d (want %d or %d)", ErrUnsupportedKnots, knots, m.ShortRope, m.LongRope)
	}

	return &Rope{knots: make([]m.Position, knots)}, nil
}

// Follow returns where follower ends up after its leader moved. A touching
// follower stays put; otherwise it takes one step toward the leader on each
// axis where they differ, which is a straight step when they share a row or
// column and a diagonal step otherwise.
func Follow(leader, follower m.Position) m.Position {
	if follower.Touching(leader) {
		return follower
	}

	d := leader.Sub(follower)

	return follower.Add(m.Position{X: sign(d.X), Y: sign(d.Y)})
}

// Step moves the head one unit in d and pulls every follower along, head to tail.
func (r *Rope) Step(d m.Direction) error {
	delta := d.Delta()
	if delta == m.Origin {
		return fmt.Errorf("%w: %q", m.ErrInvalidDirection, string(d))
	}

	r.knots[0] = r.knots[0].Add(delta)

	for i := 1; i < len(r.knots); i++ {
		next := Follow(r.knots[i-1], r.knots[i])
		if next == r.knots[i] {
			// Knots behind a resting knot keep touching their leaders.
			break
		}

		r.knots[i] = next
	}

	return nil
}

// Apply performs c.Steps unit steps and calls observe with the tail position
// after each one.
func (r *Rope) Apply(c m.Command, observe func(tail m.Position)) error {
	for step := 0; step < c.Steps; step++ {
		if err := r.Step(c.Direction); err != nil {
			return err
		}

		if observe != nil {
			observe(r.Tail())
		}
	}

	return nil
}

// Head returns the position of the first knot.
func (r *Rope) Head() m.Position {
	return r.knots[0]
}

// Tail returns the position of the last knot.
func (r *Rope) Tail() m.Position {
	return r.knots[len(r.knots)-1]
}

// Len returns the number of knots.
func (r *Rope) Len() int {
	return len(r.knots)
}

// Knots returns a copy of all knot positions, head first.
func (r *Rope) Knots() []m.Position {
	out := make([]m.Position, len(r.knots))
	copy(out, r.knots)

	return out
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
