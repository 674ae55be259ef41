package advanced

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// Ad hoc meshes shared by the tests.

// Unit square split along the (0,0)-(1,1) diagonal:
/*
	1--2
	| /|
	|/ |
	0--3
*/
// All four vertices are cocircular, so neither diagonal is strictly Delaunay.
func twoTriangles(t *testing.T, opts ...Option) *Triangulation {
	mesh, err := NewMesh(
		[]Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}},
		[]int{0, 1, 2, 2, 3, 0},
	)
	require.NoError(t, err)
	return NewTriangulation(mesh, opts...)
}

// The same topology with vertex 3 dragged far to the right, which makes the
// existing diagonal Delaunay.
func skewedTriangles(t *testing.T, opts ...Option) *Triangulation {
	tri := twoTriangles(t, opts...)
	tri.vertices[3] = Point{X: 1000, Y: 0}
	return tri
}

// Deterministic points strictly inside (margin, size-margin)²
func randomPoints(seed int64, n int, size, margin float64) []Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: margin + r.Float64()*(size-2*margin),
			Y: margin + r.Float64()*(size-2*margin),
		}
	}
	return points
}
