package advanced

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// This implements a corner table mesh. Everything is an integer index:
//
//   - A vertex id is an index into the vertex list.
//   - A corner id is an index into the corner table. Each corner stores the
//     vertex id at that corner of its triangle.
//   - Triangle t owns corners 3t, 3t+1 and 3t+2, listed with consistent winding.
//
// There are no links between triangles. Adjacency is derived on demand into the
// opposite table, which maps each corner to the corner across the edge it
// faces. Both lists only ever grow, so ids stay valid forever.
//
// The opposite table is a cache, not part of the mesh. Anything that changes
// the corner table must call BuildOTable before asking for opposites again.
// Nothing enforces this.

// Sentinel for "no corner": the opposite of a corner facing the mesh boundary.
const Boundary = -1

type Mesh struct {
	vertices  []Point
	corners   []int
	opposites []int
	// Called after every opposite table rebuild. Used for instrumentation.
	onBuild func()
}

// An edge as seen from one side: the vertex after the corner, then the vertex
// before it. The neighbor sees the same edge reversed.
type directedEdge struct {
	from, to int
}

// Create a mesh from existing vertex and corner lists. The lists are copied.
func NewMesh(vertices []Point, corners []int) (*Mesh, error) {
	m := &Mesh{
		vertices: append([]Point(nil), vertices...),
		corners:  append([]int(nil), corners...),
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid mesh")
	}
	return m, nil
}

// Check the structural invariants: whole triangles only, and every corner
// refers to an existing vertex. Geometric validity (no overlaps) is not
// checked.
func (m *Mesh) Validate() error {
	if len(m.corners)%3 != 0 {
		return errors.Errorf("corner table length %d is not a multiple of 3", len(m.corners))
	}
	for c, v := range m.corners {
		if v < 0 || v >= len(m.vertices) {
			return errors.Errorf("corner %d refers to vertex %d, but there are %d vertices", c, v, len(m.vertices))
		}
	}
	return nil
}

func (m *Mesh) NumberOfVertices() int {
	return len(m.vertices)
}

func (m *Mesh) NumberOfCorners() int {
	return len(m.corners)
}

func (m *Mesh) NumberOfTriangles() int {
	return len(m.corners) / 3
}

// The vertex list. This is the live backing slice, for read only consumers
// like renderers. Don't modify it.
func (m *Mesh) Vertices() []Point {
	return m.vertices
}

// The corner table. Same caveat as Vertices.
func (m *Mesh) Corners() []int {
	return m.corners
}

// A copy of the most recently built opposite table.
func (m *Mesh) OTable() []int {
	return append([]int(nil), m.opposites...)
}

func TriangleOf(cornerID int) int {
	if cornerID == Boundary {
		return Boundary
	}
	return cornerID / 3
}

func (m *Mesh) NextCornerID(cornerID int) int {
	if cornerID == Boundary {
		return Boundary
	}
	if cornerID%3 == 2 {
		return cornerID - 2
	}
	return cornerID + 1
}

func (m *Mesh) PreviousCornerID(cornerID int) int {
	if cornerID == Boundary {
		return Boundary
	}
	if cornerID%3 == 0 {
		return cornerID + 2
	}
	return cornerID - 1
}

// Look up the opposite corner in the last built table. Corners that were added
// since the last build, or that face the boundary, have no opposite.
func (m *Mesh) OppositeCornerID(cornerID int) int {
	if cornerID == Boundary || cornerID >= len(m.opposites) {
		return Boundary
	}
	return m.opposites[cornerID]
}

// The vertex id stored at a corner.
func (m *Mesh) VertexID(cornerID int) int {
	if cornerID == Boundary {
		return Boundary
	}
	return m.corners[cornerID]
}

// The position of the vertex at a corner. The boundary sentinel has no
// geometry, so it maps to the origin rather than crashing.
func (m *Mesh) Geometry(cornerID int) Point {
	if cornerID == Boundary {
		return Point{}
	}
	return m.vertices[m.corners[cornerID]]
}

// The three vertex ids of a triangle, in corner order. The boundary has no
// vertices, so it gives three Boundary ids.
func (m *Mesh) Triangle(triangleID int) [3]int {
	if triangleID == Boundary {
		return [3]int{Boundary, Boundary, Boundary}
	}
	c := triangleID * 3
	return [3]int{m.corners[c], m.corners[c+1], m.corners[c+2]}
}

// Rebuild the opposite table from scratch.
//
// A corner faces the edge formed by its next and previous corners. A neighbor
// sharing that edge lists the same two vertices in the opposite order, so we
// index every corner by the directed edge it faces and then look up the
// reversed edge. Anything without a match is on the boundary. This is linear in
// the number of corners.
//
// If the mesh is malformed so that two corners face the same directed edge,
// the later one wins. That can't happen in a valid triangulation.
func (m *Mesh) BuildOTable() {
	facing := make(map[directedEdge]int, len(m.corners))
	for c := range m.corners {
		facing[m.facingEdge(c)] = c
	}

	if cap(m.opposites) >= len(m.corners) {
		m.opposites = m.opposites[:len(m.corners)]
	} else {
		m.opposites = make([]int, len(m.corners))
	}
	for c := range m.corners {
		edge := m.facingEdge(c)
		if opposite, ok := facing[directedEdge{edge.to, edge.from}]; ok {
			m.opposites[c] = opposite
		} else {
			m.opposites[c] = Boundary
		}
	}

	if m.onBuild != nil {
		m.onBuild()
	}
}

func (m *Mesh) facingEdge(cornerID int) directedEdge {
	return directedEdge{
		from: m.corners[m.NextCornerID(cornerID)],
		to:   m.corners[m.PreviousCornerID(cornerID)],
	}
}

func (m *Mesh) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mesh <V: %d, T: %d, C: %d>", m.NumberOfVertices(), m.NumberOfTriangles(), m.NumberOfCorners())
	for t := 0; t < m.NumberOfTriangles(); t++ {
		fmt.Fprintf(&b, "\n  %d: %v", t, m.Triangle(t))
	}
	return b.String()
}
