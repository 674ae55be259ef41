package delaunay

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/osuushi/delaunay/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are tested in the advanced package.

func TestAddPoint(t *testing.T) {
	tri := New(100)

	inserted, err := tri.AddPoint(50, 20)
	assert.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, 5, tri.NumberOfVertices())
	assert.Equal(t, 4, tri.NumberOfTriangles())
	assert.Equal(t, 12, tri.NumberOfCorners())

	inserted, err = tri.AddPoint(500, 500)
	assert.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, 6, tri.NumberOfVertices())
	assert.Equal(t, 4, tri.NumberOfTriangles())
}

func TestAddPoints_Fixtures(t *testing.T) {
	cases := []struct {
		name     string
		expected int
	}{
		{"scatter", 8},
		// The last circle is outside the square
		{"hexagon", 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			points := LoadFixture(c.name)
			tri := New(100)
			count, err := tri.AddPoints(points...)
			require.NoError(t, err)
			assert.Equal(t, c.expected, count)
			assert.Equal(t, len(points)-c.expected, tri.Stats.Dropped)
			assert.Len(t, tri.Circumcenters(), tri.NumberOfTriangles())
			assertDelaunay(t, tri)
		})
	}
}

// The hexagon and the seed square share a mirror axis, so some quads end up
// exactly cocircular. Insertion keeps whichever diagonal it made. The strict
// test rejects those ties, and the finished triangulation still passes.
func TestAddPoints_Cocircular(t *testing.T) {
	tri := New(100)
	_, err := tri.AddPoints(LoadFixture("hexagon")...)
	require.NoError(t, err)
	assert.Zero(t, tri.Stats.CyclesBroken)
	assert.Empty(t, tri.NonDelaunayCorners())

	ties := 0
	for c := 0; c < tri.NumberOfCorners(); c++ {
		if tri.OppositeCornerID(c) != Boundary && !tri.IsDelaunay(c) {
			ties++
		}
	}
	assert.Greater(t, ties, 0)
}

func TestWithMaxFlips(t *testing.T) {
	assert.NotPanics(t, func() {
		tri := New(100, WithMaxFlips(0))
		_, err := tri.AddPoint(50, 20)
		assert.NoError(t, err)
	})
}

func TestAddPoints_FlipLimit(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	points := make([]Point, 200)
	for i := range points {
		points[i] = Point{X: 1 + r.Float64()*998, Y: 1 + r.Float64()*998}
	}

	tri := New(1000, WithMaxFlips(1))
	count, err := tri.AddPoints(points...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFlipLimit), "unexpected error: %v", err)
	assert.Less(t, count, len(points))
	// The failed point was still inserted
	assert.Equal(t, 4+count, tri.NumberOfVertices())
}

func TestFromMesh(t *testing.T) {
	mesh, err := advanced.NewMesh(
		[]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 4}},
		[]int{0, 1, 2},
	)
	require.NoError(t, err)

	tri := FromMesh(mesh)
	inserted, err := tri.AddPoint(1, 1)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, 3, tri.NumberOfTriangles())
	assertDelaunay(t, tri)
}

func assertDelaunay(t *testing.T, tri *Triangulation) {
	assert.Empty(t, tri.NonDelaunayCorners(), "corners should all be Delaunay")
}
