// Package model defines the data structures shared by the rope simulator.
package model

import "fmt"

// Position is a point on the integer lattice. The zero value is the origin.
type Position struct {
	X int
	Y int
}

// Origin is the starting position of every knot.
var Origin = Position{}

// Add returns the component-wise sum of two positions.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the offset from o to p.
func (p Position) Sub(o Position) Position {
	return Position{X: p.X - o.X, Y: p.Y - o.Y}
}

// Chebyshev returns the king-move distance between two positions.
func (p Position) Chebyshev(o Position) int {
	d := p.Sub(o)

	return max(abs(d.X), abs(d.Y))
}

// Touching reports whether two positions overlap or are adjacent,
// orthogonally or diagonally.
func (p Position) Touching(o Position) bool {
	return p.Chebyshev(o) <= 1
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
