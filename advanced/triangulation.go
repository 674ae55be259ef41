package advanced

// Incremental Delaunay triangulation on top of the corner table mesh.
//
// Points are inserted one at a time. We find the triangle containing the point,
// split it into three around the new vertex, and then repair the three outer
// edges of the split with Lawson flips. Each flip can make neighboring edges
// non-Delaunay, so repairs cascade outward until every touched edge is either
// locally Delaunay or on the boundary.

const DefaultMaxFlips = 100000

type Options struct {
	// Maximum number of flips performed by a single repair (one FixMesh or
	// FlipCorner call). Exceeding it panics with ErrFlipLimit.
	MaxFlips int
}

type Option func(*Options)

// Cap the flips per repair. A non-positive n means no cap was given, so
// DefaultMaxFlips applies.
func WithMaxFlips(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = DefaultMaxFlips
		}
		o.MaxFlips = n
	}
}

// Counters for everything the repair does. They are never reset by the
// triangulation itself.
type Stats struct {
	FlipCalls    int // corners examined by the flip procedure, including no-ops
	Flips        int // edge flips actually performed
	OTableBuilds int
	CyclesBroken int // flips skipped because they would restore a removed edge
	Dropped      int // inserted points that were outside every triangle
}

type Triangulation struct {
	*Mesh
	Stats   Stats
	options Options
}

func NewTriangulation(mesh *Mesh, setters ...Option) *Triangulation {
	opts := Options{MaxFlips: DefaultMaxFlips}
	for _, set := range setters {
		set(&opts)
	}
	t := &Triangulation{Mesh: mesh, options: opts}
	mesh.onBuild = func() { t.Stats.OTableBuilds++ }
	return t
}

// Start from a square with side length size, split along its (0,0)-(size,size)
// diagonal:
/*
	1-----2
	|    /|
	|  /  |
	|/    |
	0-----3
*/
// The corner table is [0 1 2 2 3 0]. Points outside the square are dropped. See
// IsInTriangle for what happens to points on its sides.
func NewSquare(size float64, setters ...Option) *Triangulation {
	mesh := &Mesh{
		vertices: []Point{
			{X: 0, Y: 0},
			{X: 0, Y: size},
			{X: size, Y: size},
			{X: size, Y: 0},
		},
		corners: []int{0, 1, 2, 2, 3, 0},
	}
	return NewTriangulation(mesh, setters...)
}

// Insert a point. The vertex is always appended, but the mesh only changes if
// some triangle contains the point. Points outside the mesh are dropped from
// the triangulation (though not from the vertex list) and we return false.
//
// Panics with ErrFlipLimit if the repair runs away. See FixMesh.
func (t *Triangulation) AddPoint(x, y float64) bool {
	p := Point{X: x, Y: y}
	t.vertices = append(t.vertices, p)

	triangleID := t.Locate(p)
	if triangleID == Boundary {
		t.Stats.Dropped++
		return false
	}

	dirtyCorners := t.Split(triangleID, len(t.vertices)-1)
	t.FixMesh(dirtyCorners[:])
	return true
}

// Find the first triangle, in id order, that contains p. Returns Boundary if
// there is none. Triangles don't overlap, so the first match is the only match
// except for points on a shared edge.
func (t *Triangulation) Locate(p Point) int {
	for triangleID := 0; triangleID < t.NumberOfTriangles(); triangleID++ {
		if t.IsInTriangle(triangleID, p) {
			return triangleID
		}
	}
	return Boundary
}

// A point is in a triangle if it's on the same side of all three edges. We
// compare sides instead of requiring left turns, so this works for either
// winding.
//
// Points exactly on an edge get the IsLeftTurn tie-break (not left) for that
// edge. So a point on an edge is inside a triangle whose other two tests are
// also "not left" (clockwise with y up), and outside one where they are "left".
//
// That includes the outer sides of the seed square. A point on one of them
// lands in the triangle along that side, and the split leaves a zero-area
// triangle on the hull. Nothing flips it away, because its only "wrong" edge is
// on the boundary.
func (t *Triangulation) IsInTriangle(triangleID int, p Point) bool {
	cornerID := triangleID * 3
	a := t.Geometry(cornerID)
	b := t.Geometry(t.NextCornerID(cornerID))
	c := t.Geometry(t.PreviousCornerID(cornerID))

	side := IsLeftTurn(a, b, p)
	return side == IsLeftTurn(b, c, p) && side == IsLeftTurn(c, a, p)
}

// Split a triangle into three around a vertex, which must lie inside it.
//
// With the triangle's corners A, B, C (holding vertices a, b, c) and new vertex
// p, we append triangles (b, c, p) and (c, a, p), and turn the original into
// (a, b, p) by overwriting C. All three keep the original winding.
//
// Returns the three corners holding p. Each faces one of the original
// triangle's edges, which are the only edges that might now violate the
// Delaunay condition.
func (t *Triangulation) Split(triangleID, vertexID int) [3]int {
	if triangleID < 0 || triangleID >= t.NumberOfTriangles() {
		fatalf("cannot split triangle %d of %d", triangleID, t.NumberOfTriangles())
	}
	if vertexID < 0 || vertexID >= t.NumberOfVertices() {
		fatalf("cannot split with vertex %d of %d", vertexID, t.NumberOfVertices())
	}

	a := triangleID * 3
	b := a + 1
	c := a + 2
	firstNew := len(t.corners)

	t.corners = append(t.corners,
		t.corners[b], t.corners[c], vertexID,
		t.corners[c], t.corners[a], vertexID,
	)
	t.corners[c] = vertexID

	return [3]int{c, firstNew + 2, firstNew + 5}
}

// Repair the mesh around a set of dirty corners, in order. Each corner is
// handed to the flip procedure once; any follow up work happens inside it.
//
// Panics with ErrFlipLimit if more than Options.MaxFlips flips are needed.
// Every flip leaves a valid triangulation, so the mesh is still usable after
// recovering, it just may not be Delaunay.
func (t *Triangulation) FixMesh(dirtyCorners []int) {
	t.BuildOTable()

	queue := append([]int(nil), dirtyCorners...)
	repair := t.newRepair()
	for len(queue) > 0 {
		repair.flipCorner(queue[0])
		queue = queue[1:]
	}
}

// Restore the Delaunay condition across the edge facing a corner, and then
// everything that flipping it disturbs. The boundary sentinel is a no-op.
func (t *Triangulation) FlipCorner(cornerID int) {
	t.newRepair().flipCorner(cornerID)
}

// Is the edge facing this corner locally Delaunay? That is, does the vertex
// across the edge lie strictly outside the circumcircle of the corner's
// triangle? A vertex exactly on the circle is not Delaunay.
//
// The opposite table must be current, and the corner must not face the
// boundary.
func (t *Triangulation) IsDelaunay(cornerID int) bool {
	a := t.Geometry(cornerID)
	b := t.Geometry(t.PreviousCornerID(cornerID))
	c := t.Geometry(t.NextCornerID(cornerID))

	center := Circumcenter(a, b, c)
	radius := Distance(a, center)
	opposite := t.Geometry(t.OppositeCornerID(cornerID))

	return Distance(opposite, center) > radius
}

// Like IsDelaunay, but a vertex on the circumcircle (to within Tolerance of the
// radius) passes. With four cocircular points both diagonals pass this test and
// fail the strict one. The repair only revisits edges it has just touched, so a
// finished triangulation can keep such ties. Degenerate triangles always fail.
func (t *Triangulation) IsWeaklyDelaunay(cornerID int) bool {
	a := t.Geometry(cornerID)
	b := t.Geometry(t.PreviousCornerID(cornerID))
	c := t.Geometry(t.NextCornerID(cornerID))

	center := Circumcenter(a, b, c)
	radius := Distance(a, center)
	opposite := t.Geometry(t.OppositeCornerID(cornerID))

	return Distance(opposite, center) >= radius-Tolerance*radius
}

// Rebuild the opposite table and list every interior corner whose edge fails
// IsWeaklyDelaunay. A Delaunay triangulation gives an empty list.
func (t *Triangulation) NonDelaunayCorners() []int {
	t.BuildOTable()
	var corners []int
	for c := 0; c < t.NumberOfCorners(); c++ {
		if t.OppositeCornerID(c) == Boundary {
			continue
		}
		if !t.IsWeaklyDelaunay(c) {
			corners = append(corners, c)
		}
	}
	return corners
}

// One circumcenter per triangle, in triangle order. Degenerate triangles give
// non-finite points.
func (t *Triangulation) Circumcenters() []Point {
	centers := make([]Point, t.NumberOfTriangles())
	for triangleID := range centers {
		c := triangleID * 3
		centers[triangleID] = Circumcenter(t.Geometry(c), t.Geometry(c+1), t.Geometry(c+2))
	}
	return centers
}

// State for a single repair. Flips cascade depth first, exactly like the
// obvious recursive formulation (re-check the flipped corner, then the edge the
// flip exposed), but with an explicit stack so that depth is bounded by memory
// rather than the goroutine stack.
type repair struct {
	*Triangulation
	flips int
	// Edges removed by flips during this repair. In exact arithmetic a removed
	// edge never comes back, so trying to restore one means floating point
	// error or cocircular points are making us go round in circles.
	removed map[edgeKey]struct{}
}

// Unordered vertex pair
type edgeKey struct {
	low, high int
}

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

func (t *Triangulation) newRepair() *repair {
	return &repair{
		Triangulation: t,
		removed:       make(map[edgeKey]struct{}),
	}
}

func (r *repair) flipCorner(cornerID int) {
	stack := []int{cornerID}
	for len(stack) > 0 {
		cornerID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r.Stats.FlipCalls++

		if cornerID == Boundary {
			continue
		}

		// Topology may have changed since the last build
		r.BuildOTable()

		opposite := r.OppositeCornerID(cornerID)
		if opposite == Boundary {
			continue
		}
		if r.IsDelaunay(cornerID) {
			continue
		}

		// The flip replaces the edge facing the corner with the edge between the
		// corner and its opposite.
		added := newEdgeKey(r.corners[cornerID], r.corners[opposite])
		if _, ok := r.removed[added]; ok {
			r.Stats.CyclesBroken++
			continue
		}
		if r.flips >= r.options.MaxFlips {
			fatalWrapf(ErrFlipLimit, "repairing corner %d after %d flips", cornerID, r.flips)
		}
		r.removed[newEdgeKey(r.corners[r.NextCornerID(cornerID)], r.corners[r.PreviousCornerID(cornerID)])] = struct{}{}

		// Rotate the shared diagonal. Each triangle keeps its own corner and the
		// one before it, and takes the other triangle's corner vertex in place of
		// the one after.
		r.corners[r.NextCornerID(cornerID)] = r.corners[opposite]
		r.corners[r.NextCornerID(opposite)] = r.corners[cornerID]
		r.flips++
		r.Stats.Flips++

		// The same corner now faces a new edge, so it gets checked again first.
		// Then the edge the flip exposed on the other triangle.
		stack = append(stack, r.NextCornerID(opposite), cornerID)
	}
}
