package domain

import (
	"testing"

	m "github.com/mouse-blink/ropetrail/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	smallInput = []m.Command{
		{Direction: m.Right, Steps: 4},
		{Direction: m.Up, Steps: 4},
		{Direction: m.Left, Steps: 3},
		{Direction: m.Down, Steps: 1},
		{Direction: m.Right, Steps: 4},
		{Direction: m.Down, Steps: 1},
		{Direction: m.Left, Steps: 5},
		{Direction: m.Right, Steps: 2},
	}
	largeInput = []m.Command{
		{Direction: m.Right, Steps: 5},
		{Direction: m.Up, Steps: 8},
		{Direction: m.Left, Steps: 8},
		{Direction: m.Down, Steps: 3},
		{Direction: m.Right, Steps: 17},
		{Direction: m.Down, Steps: 10},
		{Direction: m.Left, Steps: 25},
		{Direction: m.Up, Steps: 20},
	}
)

func TestNewRope(t *testing.T) {
	for _, n := range m.RopeLengths {
		rope, err := NewRope(n)
		require.NoError(t, err)
		assert.Equal(t, n, rope.Len())
		assert.Equal(t, make([]m.Position, n), rope.Knots())
	}

	for _, n := range []int{0, 1, 3, 9, 11} {
		_, err := NewRope(n)
		require.ErrorIs(t, err, ErrUnsupportedKnots, "knots %d", n)
	}
}

func TestFollow(t *testing.T) {
	tests := []struct {
		name     string
		leader   m.Position
		follower m.Position
		want     m.Position
	}{
		{name: "overlap", leader: m.Position{}, follower: m.Position{}, want: m.Position{}},
		{name: "adjacent", leader: m.Position{X: 1}, follower: m.Position{}, want: m.Position{}},
		{name: "diagonal touch", leader: m.Position{X: -1, Y: -1}, follower: m.Position{}, want: m.Position{}},
		{name: "two right", leader: m.Position{X: 2}, follower: m.Position{}, want: m.Position{X: 1}},
		{name: "two left", leader: m.Position{X: -2}, follower: m.Position{}, want: m.Position{X: -1}},
		{name: "two up", leader: m.Position{Y: 2}, follower: m.Position{}, want: m.Position{Y: 1}},
		{name: "two down", leader: m.Position{Y: -2}, follower: m.Position{}, want: m.Position{Y: -1}},
		{name: "knight right", leader: m.Position{X: 2, Y: 1}, follower: m.Position{}, want: m.Position{X: 1, Y: 1}},
		{name: "knight down", leader: m.Position{X: -1, Y: -2}, follower: m.Position{}, want: m.Position{X: -1, Y: -1}},
		{name: "far diagonal", leader: m.Position{X: 2, Y: -2}, follower: m.Position{}, want: m.Position{X: 1, Y: -1}},
		{name: "offset origin", leader: m.Position{X: 5, Y: 7}, follower: m.Position{X: 3, Y: 6}, want: m.Position{X: 4, Y: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Follow(tt.leader, tt.follower)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, got.Chebyshev(tt.follower), 1)
		})
	}
}

func TestRope_Step_InvalidDirection(t *testing.T) {
	rope, err := NewRope(m.ShortRope)
	require.NoError(t, err)

	require.ErrorIs(t, rope.Step(m.Direction("X")), m.ErrInvalidDirection)
	assert.Equal(t, m.Origin, rope.Head())
}

func TestRope_Step_KeepsKnotsTouching(t *testing.T) {
	inputs := map[string][]m.Command{"small": smallInput, "large": largeInput}

	for name, commands := range inputs {
		for _, knots := range m.RopeLengths {
			rope, err := NewRope(knots)
			require.NoError(t, err)

			for _, c := range commands {
				for step := 0; step < c.Steps; step++ {
					before := rope.Knots()
					require.NoError(t, rope.Step(c.Direction))
					after := rope.Knots()

					assert.Equal(t, 1, after[0].Chebyshev(before[0]), "%s/%d: head moves one unit", name, knots)
					assert.Equal(t, c.Direction.Delta(), after[0].Sub(before[0]))

					for i := range after {
						assert.LessOrEqual(t, after[i].Chebyshev(before[i]), 1, "%s/%d: knot %d jumped", name, knots, i)
					}

					for i := 0; i+1 < len(after); i++ {
						assert.True(t, after[i].Touching(after[i+1]), "%s/%d: knots %d and %d apart", name, knots, i, i+1)
					}
				}
			}
		}
	}
}

func TestRope_Apply_ObservesEveryStep(t *testing.T) {
	rope, err := NewRope(m.LongRope)
	require.NoError(t, err)

	var tails []m.Position

	require.NoError(t, rope.Apply(m.Command{Direction: m.Up, Steps: 12}, func(p m.Position) {
		tails = append(tails, p)
	}))

	require.Len(t, tails, 12)
	assert.Equal(t, m.Position{Y: 12}, rope.Head())
	assert.Equal(t, m.Position{Y: 3}, rope.Tail())
	assert.Equal(t, rope.Tail(), tails[len(tails)-1])

	require.NoError(t, rope.Apply(m.Command{Direction: m.Up, Steps: 0}, func(m.Position) {
		t.Fatal("zero steps must not observe")
	}))
	require.NoError(t, rope.Apply(m.Command{Direction: m.Left, Steps: 1}, nil))
}

func TestRope_Knots_ReturnsCopy(t *testing.T) {
	rope, err := NewRope(m.ShortRope)
	require.NoError(t, err)

	knots := rope.Knots()
	knots[0] = m.Position{X: 99}

	assert.Equal(t, m.Origin, rope.Head())
}
