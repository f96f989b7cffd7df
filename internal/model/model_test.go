package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_Chebyshev(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{name: "overlap", a: Position{}, b: Position{}, want: 0},
		{name: "orthogonal", a: Position{X: 1}, b: Position{}, want: 1},
		{name: "diagonal", a: Position{X: -1, Y: 1}, b: Position{}, want: 1},
		{name: "knight", a: Position{X: 2, Y: 1}, b: Position{}, want: 2},
		{name: "negative", a: Position{X: -3, Y: -7}, b: Position{X: 1, Y: 1}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Chebyshev(tt.b))
			assert.Equal(t, tt.want, tt.b.Chebyshev(tt.a))
			assert.Equal(t, tt.want <= 1, tt.a.Touching(tt.b))
		})
	}
}

func TestPosition_AddSubString(t *testing.T) {
	p := Position{X: 3, Y: -2}
	q := Position{X: -1, Y: 5}

	assert.Equal(t, Position{X: 2, Y: 3}, p.Add(q))
	assert.Equal(t, Position{X: 4, Y: -7}, p.Sub(q))
	assert.Equal(t, "(3,-2)", p.String())
	assert.Equal(t, Origin, Position{})
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"U", "D", "L", "R"} {
		d, err := ParseDirection(s)
		require.NoError(t, err)
		assert.Equal(t, Direction(s), d)
	}

	for _, s := range []string{"", "u", "X", "UP", "RR"} {
		_, err := ParseDirection(s)
		require.ErrorIs(t, err, ErrInvalidDirection, "input %q", s)
	}
}

func TestDirection_DeltaAndOpposite(t *testing.T) {
	assert.Equal(t, Position{Y: 1}, Up.Delta())
	assert.Equal(t, Position{Y: -1}, Down.Delta())
	assert.Equal(t, Position{X: -1}, Left.Delta())
	assert.Equal(t, Position{X: 1}, Right.Delta())
	assert.Equal(t, Position{}, Direction("?").Delta())

	for _, d := range []Direction{Up, Down, Left, Right} {
		assert.Equal(t, Origin, d.Delta().Add(d.Opposite().Delta()), "direction %s", d)
		assert.Equal(t, d, d.Opposite().Opposite())
	}
}

func TestReverse(t *testing.T) {
	commands := []Command{
		{Direction: Right, Steps: 4, Line: 1},
		{Direction: Up, Steps: 2, Line: 2},
	}

	got := Reverse(commands)

	assert.Equal(t, []Command{
		{Direction: Down, Steps: 2},
		{Direction: Left, Steps: 4},
	}, got)
	assert.Equal(t, "D 2", got[0].String())
	assert.Empty(t, Reverse(nil))
}

func TestValidKnots(t *testing.T) {
	assert.True(t, ValidKnots(ShortRope))
	assert.True(t, ValidKnots(LongRope))

	for _, n := range []int{-1, 0, 1, 3, 9, 11} {
		assert.False(t, ValidKnots(n), "knots %d", n)
	}

	assert.Equal(t, []int{2, 10}, RopeLengths)
}
