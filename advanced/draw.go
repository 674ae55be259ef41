package advanced

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

type DrawOptions struct {
	// Pixels per unit
	Scale float64
	// Pixels of empty space around the mesh
	Padding int
	// Also draw each triangle's circumcircle
	Circumcircles bool
	// Radius in pixels of the dot drawn at each vertex. Zero skips vertices.
	VertexRadius float64
}

var DefaultDrawOptions = DrawOptions{
	Scale:        1,
	Padding:      20,
	VertexRadius: 2,
}

// Render the mesh. Only triangulated area is framed, so dropped vertices far
// outside the mesh don't blow up the image size.
func (t *Triangulation) Draw(opts DrawOptions) *gg.Context {
	bounds := t.triangulatedBounds()
	size := bounds.Size()

	width := int(math.Ceil(opts.Scale*size.X)) + opts.Padding*2
	height := int(math.Ceil(opts.Scale*size.Y)) + opts.Padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(float64(opts.Padding), float64(opts.Padding))
	// Scale
	c.Scale(opts.Scale, opts.Scale)
	// Translate to min
	lo := bounds.Lo()
	c.Translate(-lo.X, -lo.Y)

	c.SetLineWidth(1)
	for triangleID := 0; triangleID < t.NumberOfTriangles(); triangleID++ {
		first := triangleID * 3
		a := t.Geometry(first)
		c.MoveTo(a.X, a.Y)
		for _, cornerID := range []int{first + 1, first + 2} {
			p := t.Geometry(cornerID)
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(1, 1, 1)
	c.Stroke()

	if opts.Circumcircles {
		for triangleID, center := range t.Circumcenters() {
			// Slivers have enormous (or infinite) circles that just paint over
			// everything.
			first := triangleID * 3
			if Equal(SignedArea(t.Geometry(first), t.Geometry(first+1), t.Geometry(first+2)), 0) || !isFinite(center) {
				continue
			}
			c.DrawCircle(center.X, center.Y, Distance(center, t.Geometry(first)))
		}
		c.SetRGBA(0, 1, 1, 0.5)
		c.Stroke()
	}

	if opts.VertexRadius > 0 {
		for _, cornerVertex := range t.usedVertices() {
			p := t.vertices[cornerVertex]
			c.DrawCircle(p.X, p.Y, opts.VertexRadius/opts.Scale)
		}
		c.SetRGB(1, 0.5, 0)
		c.Fill()
	}

	return c
}

func (t *Triangulation) SavePNG(path string, opts DrawOptions) error {
	if err := t.Draw(opts).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

func (t *Triangulation) triangulatedBounds() r2.Rect {
	used := t.usedVertices()
	points := make([]Point, len(used))
	for i, v := range used {
		points[i] = t.vertices[v]
	}
	return r2.RectFromPoints(points...)
}

// Vertex ids referenced by at least one corner, ascending.
func (t *Triangulation) usedVertices() []int {
	used := make([]bool, len(t.vertices))
	for _, v := range t.corners {
		used[v] = true
	}
	var ids []int
	for v, ok := range used {
		if ok {
			ids = append(ids, v)
		}
	}
	return ids
}
