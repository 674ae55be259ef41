package advanced

import (
	"github.com/golang/geo/r2"
)

// Points are plain values here, unlike the pointer-keyed polygon code. Vertices
// are identified by their index in the mesh, so we never need pointer
// identity.
type Point = r2.Point

// Is p strictly to the left of the directed line a->b? This is the sign of the
// cross product (b-a) x (p-a).
//
// Collinear points (cross product exactly zero) are NOT a left turn. This
// tie-break matters: it decides which triangle owns a point lying exactly on an
// edge, so don't "fix" it without also looking at IsInTriangle.
func IsLeftTurn(a, b, p Point) bool {
	return b.Sub(a).Cross(p.Sub(a)) > 0
}

// The point equidistant from a, b and c. We work relative to a to keep the
// magnitudes small.
//
// For collinear points the denominator is zero and the result has infinite or
// NaN coordinates. We deliberately don't detect this; callers should never pass
// a degenerate triangle, and a NaN distance makes IsDelaunay report false.
func Circumcenter(a, b, c Point) Point {
	ab := b.Sub(a)
	ac := c.Sub(a)
	d := 2 * ab.Cross(ac)
	abSq := ab.Dot(ab)
	acSq := ac.Dot(ac)
	offset := Point{
		X: (ac.Y*abSq - ab.Y*acSq) / d,
		Y: (ab.X*acSq - ac.X*abSq) / d,
	}
	return a.Add(offset)
}

func Distance(a, b Point) float64 {
	return a.Sub(b).Norm()
}

// Signed area of the triangle abc. Positive when abc turns left (counter
// clockwise with the y axis pointing up).
func SignedArea(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a)) / 2
}
