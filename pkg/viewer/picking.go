package viewer

import (
	"math"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// Projector maps world points to screen coordinates for a viewport size
type Projector struct {
	Camera        *Camera
	Width, Height float64
}

func (p Projector) project(point geometry.Vector3) (float64, float64, bool) {
	x, y, z := p.Camera.Project(point, p.Width, p.Height)
	return x, y, z > 0.01
}

// PickVertex returns the vertex whose projection lies closest to the screen
// position within radius pixels, or -1. Among coincident vertices the lowest
// index wins.
func (p Projector) PickVertex(buf mesh.PositionReader, world geometry.Matrix4, sx, sy, radius float64) int {
	best := -1
	bestDist := radius
	for i := 0; i < buf.VertexCount(); i++ {
		x, y, ok := p.project(world.TransformPoint(buf.Position(i)))
		if !ok {
			continue
		}
		if d := math.Hypot(x-sx, y-sy); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// PickEdge returns the slot of the edge whose projected segment lies closest
// to the screen position within radius pixels, or -1
func (p Projector) PickEdge(buf mesh.PositionReader, world geometry.Matrix4, edges []mesh.Edge, sx, sy, radius float64) int {
	n := buf.VertexCount()
	best := -1
	bestDist := radius
	for slot, e := range edges {
		if e[0] < 0 || e[1] >= n {
			continue
		}
		x1, y1, ok1 := p.project(world.TransformPoint(buf.Position(e[0])))
		x2, y2, ok2 := p.project(world.TransformPoint(buf.Position(e[1])))
		if !ok1 || !ok2 {
			continue
		}
		if d := pointSegmentDistance(sx, sy, x1, y1, x2, y2); d < bestDist {
			best, bestDist = slot, d
		}
	}
	return best
}

// EdgeMidpoint returns the local-space midpoint of an edge
func EdgeMidpoint(buf mesh.PositionReader, e mesh.Edge) geometry.Vector3 {
	return buf.Position(e[0]).Add(buf.Position(e[1])).Mul(0.5)
}

func pointSegmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	lengthSq := dx*dx + dy*dy
	t := 0.0
	if lengthSq > 0 {
		t = math.Max(0, math.Min(1, ((px-x1)*dx+(py-y1)*dy)/lengthSq))
	}
	return math.Hypot(px-(x1+t*dx), py-(y1+t*dy))
}
