package model

// Rope lengths the simulator supports.
const (
	ShortRope = 2
	LongRope  = 10
)

// RopeLengths lists the supported knot counts in ascending order.
var RopeLengths = []int{ShortRope, LongRope}

// ValidKnots reports whether n is a supported knot count.
func ValidKnots(n int) bool {
	return n == ShortRope || n == LongRope
}

// Stats summarizes one simulation run.
type Stats struct {
	Knots    int
	Commands int
	Steps    int      // unit steps applied, equal to recorded tail observations
	Visited  int      // distinct tail positions, origin included
	Head     Position // final head position
	Tail     Position // final tail position
	Min      Position // lower-left corner of the tail's bounding box
	Max      Position // upper-right corner of the tail's bounding box
}
