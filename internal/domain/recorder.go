package domain

import (
	m "github.com/mouse-blink/ropetrail/internal/model"
)

// TailRecorder collects the distinct positions visited by the tail.
type TailRecorder struct {
	visited      map[m.Position]struct{}
	observations int
	min          m.Position
	max          m.Position
}

// NewTailRecorder returns a recorder that already holds the origin.
func NewTailRecorder() *TailRecorder {
	return &TailRecorder{
		visited: map[m.Position]struct{}{m.Origin: {}},
	}
}

// Record adds p to the visited set. Recording a known position only bumps
// the observation counter.
func (r *TailRecorder) Record(p m.Position) {
	r.observations++
	r.visited[p] = struct{}{}

	r.min = m.Position{X: min(r.min.X, p.X), Y: min(r.min.Y, p.Y)}
	r.max = m.Position{X: max(r.max.X, p.X), Y: max(r.max.Y, p.Y)}
}

// Count returns the number of distinct visited positions.
func (r *TailRecorder) Count() int {
	return len(r.visited)
}

// Contains reports whether p has been visited.
func (r *TailRecorder) Contains(p m.Position) bool {
	_, ok := r.visited[p]

	return ok
}

// Observations returns how many times Record was called.
func (r *TailRecorder) Observations() int {
	return r.observations
}

// Bounds returns the corners of the smallest box holding every visited position.
func (r *TailRecorder) Bounds() (lo, hi m.Position) {
	return r.min, r.max
}
