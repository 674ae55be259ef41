package advanced

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. This is
// only used for presentation decisions (e.g. skipping circumcircles of
// slivers). The insertion algorithm itself uses exact comparisons.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func isFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
