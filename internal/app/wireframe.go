package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshedit/internal/overlay"
	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// drawWireframe renders the derived edges of an object using thin cylinders
func (app *App) drawWireframe(o *scene.Object) {
	m := o.Mesh()
	if m == nil {
		return
	}

	wireframeColor := rl.NewColor(100, 100, 100, 200)
	wireframeThickness := app.Camera.distance * 0.0005 // Scale with camera distance for constant screen thickness
	cylinderSegments := int32(6)

	// The target's edges are already derived by the engine
	edges := app.engine.Edges()
	if app.target() != o || !m.IsIndexed() {
		indices := m.Indices()
		if !m.IsIndexed() {
			indices = mesh.SequentialIndices(m.VertexCount())
		}
		edges = mesh.DeriveEdges(indices)
	}

	world := o.WorldMatrix()
	n := m.VertexCount()
	for _, e := range edges {
		if e.B() >= n {
			continue
		}
		a := overlay.ToRL(world.TransformPoint(m.Position(e.A())))
		b := overlay.ToRL(world.TransformPoint(m.Position(e.B())))
		rl.DrawCylinderEx(a, b, wireframeThickness, wireframeThickness, cylinderSegments, wireframeColor)
	}
}
