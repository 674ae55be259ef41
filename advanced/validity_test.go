package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a mesh is a valid triangulation of a region with the
// given area. The rules are:
// 1. The corner table holds whole triangles of existing vertices.
// 2. Every triangle has the same winding as triangle 0.
// 3. No triangle has zero area.
// 4. The areas of the triangles sum to the area of the region.
// 5. The opposite table is symmetric, and opposite corners face the same edge.
func AssertValidTriangulation(t *testing.T, mesh *Mesh, area float64) {
	require.NoError(t, mesh.Validate())
	require.Equal(t, 3*mesh.NumberOfTriangles(), mesh.NumberOfCorners())

	mesh.BuildOTable()

	var sign float64
	var total float64
	for triangleID := 0; triangleID < mesh.NumberOfTriangles(); triangleID++ {
		c := triangleID * 3
		triangleArea := SignedArea(mesh.Geometry(c), mesh.Geometry(c+1), mesh.Geometry(c+2))
		require.NotZero(t, triangleArea, "triangle %d has zero area", triangleID)
		if triangleID == 0 {
			sign = math.Copysign(1, triangleArea)
		}
		require.Equal(t, sign, math.Copysign(1, triangleArea), "triangle %d has the wrong winding: %v", triangleID, mesh.Triangle(triangleID))
		total += math.Abs(triangleArea)
	}
	assert.InDelta(t, area, total, Tolerance*area, "triangle areas should sum to the area of the region")

	for c := 0; c < mesh.NumberOfCorners(); c++ {
		opposite := mesh.OppositeCornerID(c)
		if opposite == Boundary {
			continue
		}
		require.Equal(t, c, mesh.OppositeCornerID(opposite), "opposite table is not symmetric at corner %d", c)
		assert.Equal(t, mesh.VertexID(mesh.NextCornerID(c)), mesh.VertexID(mesh.PreviousCornerID(opposite)))
		assert.Equal(t, mesh.VertexID(mesh.PreviousCornerID(c)), mesh.VertexID(mesh.NextCornerID(opposite)))
	}
}

// Helper to check that every interior edge is locally Delaunay. Cocircular
// ties pass; see IsWeaklyDelaunay.
func AssertDelaunay(t *testing.T, tri *Triangulation) {
	for _, c := range tri.NonDelaunayCorners() {
		assert.Fail(t, "not Delaunay", "corner %d of triangle %v", c, tri.Triangle(TriangleOf(c)))
	}
}
