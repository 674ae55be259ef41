package advanced

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/dbg"
)

// Name used for a triangle in debug output. The key type keeps triangle names
// separate from anything else named by integer.
type triangleKey int

func TriangleDbgName(triangleID int) string {
	return dbg.Name(triangleKey(triangleID))
}

// Dump every triangle with its corners, coloring each corner by the state of
// the edge it faces: cyan on the boundary, green if locally Delaunay, red if it
// needs a flip. This rebuilds the opposite table.
func (t *Triangulation) DebugString() string {
	t.BuildOTable()

	var b strings.Builder
	fmt.Fprintf(&b, "Triangulation <V: %d, T: %d, C: %d> %+v\n",
		t.NumberOfVertices(), t.NumberOfTriangles(), t.NumberOfCorners(), t.Stats)
	for triangleID := 0; triangleID < t.NumberOfTriangles(); triangleID++ {
		var parts []string
		for cornerID := triangleID * 3; cornerID < triangleID*3+3; cornerID++ {
			parts = append(parts, t.cornerDbgString(cornerID))
		}
		fmt.Fprintf(&b, "%s [%s]\n", TriangleDbgName(triangleID), strings.Join(parts, ", "))
	}
	return b.String()
}

func (t *Triangulation) cornerDbgString(cornerID int) string {
	opposite := t.OppositeCornerID(cornerID)
	s := fmt.Sprintf("%d:v%d", cornerID, t.VertexID(cornerID))
	switch {
	case opposite == Boundary:
		return aurora.Cyan(s).String()
	case t.IsDelaunay(cornerID):
		return aurora.Green(fmt.Sprintf("%s|%s", s, TriangleDbgName(TriangleOf(opposite)))).String()
	default:
		return aurora.Red(fmt.Sprintf("%s|%s", s, TriangleDbgName(TriangleOf(opposite)))).String()
	}
}
