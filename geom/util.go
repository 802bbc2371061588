package geom

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
// Without this, near-horizontal edges and near-coincident stitched endpoints
// misclassify in ways that are hopeless to debug.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat a slice as a circular buffer. This gives the modular
// index for length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
