// Incremental Delaunay triangulation for Go.
//
// This package maintains a 2D triangle mesh and inserts points into it one at a
// time, flipping edges as it goes so that no triangle's circumcircle ever
// contains another vertex. The mesh is stored as a compact corner table (three
// vertex ids per triangle) which a renderer can consume directly.
//
// The advanced package exposes the algorithm's individual steps. This package
// wraps it so that internal failures come back as errors instead of panics.
package delaunay

import "github.com/osuushi/delaunay/advanced"

type Point = advanced.Point
type Mesh = advanced.Mesh
type Option = advanced.Option
type Stats = advanced.Stats
type DrawOptions = advanced.DrawOptions

const Boundary = advanced.Boundary

var (
	ErrFlipLimit       = advanced.ErrFlipLimit
	DefaultDrawOptions = advanced.DefaultDrawOptions

	// Cap the flips per repair. Values of zero or less keep the default.
	WithMaxFlips = advanced.WithMaxFlips
)

type Triangulation struct {
	*advanced.Triangulation
}

// Create a triangulation of the square from (0,0) to (size,size). Points
// inserted later must fall inside it.
func New(size float64, opts ...Option) *Triangulation {
	return &Triangulation{advanced.NewSquare(size, opts...)}
}

// Wrap an existing mesh, such as one built with advanced.NewMesh. The mesh
// should already be a Delaunay triangulation.
func FromMesh(mesh *Mesh, opts ...Option) *Triangulation {
	return &Triangulation{advanced.NewTriangulation(mesh, opts...)}
}

// Insert a point. It returns false when the point lies outside the mesh; the
// vertex is still recorded, but no triangle uses it.
//
// If the edge flip repair runs away, the error wraps ErrFlipLimit. The point
// has been inserted at that point and the mesh is a valid triangulation, but it
// may not be Delaunay.
func (t *Triangulation) AddPoint(x, y float64) (inserted bool, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			inserted = true
			err = recoveredErr
		}
	}()
	return t.Triangulation.AddPoint(x, y), nil
}

// Insert points in order, stopping at the first error. Returns how many points
// were triangulated (as opposed to dropped).
func (t *Triangulation) AddPoints(points ...Point) (int, error) {
	count := 0
	for _, p := range points {
		inserted, err := t.AddPoint(p.X, p.Y)
		if inserted {
			count++
		}
		if err != nil {
			return count, err
		}
	}
	return count, nil
}
