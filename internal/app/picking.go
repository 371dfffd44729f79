package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshedit/internal/overlay"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// projectFunc maps a world point to the screen; ok is false behind the camera
type projectFunc func(p geometry.Vector3) (screen rl.Vector2, ok bool)

func (app *App) project(p geometry.Vector3) (rl.Vector2, bool) {
	if !overlay.InFront(app.Camera.camera, p) {
		return rl.Vector2{}, false
	}
	return rl.GetWorldToScreen(overlay.ToRL(p), app.Camera.camera), true
}

// pickVertex returns the vertex drawn closest to mouse within radius pixels,
// or -1. Coincident vertices resolve to the lowest index.
func pickVertex(buf mesh.PositionReader, world geometry.Matrix4, project projectFunc, mouse rl.Vector2, radius float32) int {
	best := -1
	bestDist := radius
	for i := 0; i < buf.VertexCount(); i++ {
		s, ok := project(world.TransformPoint(buf.Position(i)))
		if !ok {
			continue
		}
		if d := rl.Vector2Distance(s, mouse); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// pickEdge returns the slot of the edge passing closest to the pick ray
// within threshold world units, or -1
func pickEdge(buf mesh.PositionReader, world geometry.Matrix4, edges []mesh.Edge, ray geometry.Ray, threshold float64) int {
	n := buf.VertexCount()
	best := -1
	bestDist := threshold * threshold
	for slot, e := range edges {
		if e.B() >= n {
			continue
		}
		a := world.TransformPoint(buf.Position(e.A()))
		b := world.TransformPoint(buf.Position(e.B()))
		if d := ray.DistanceSqToSegment(a, b); d < bestDist {
			best, bestDist = slot, d
		}
	}
	return best
}

// verticesInRect lists the vertices drawn inside the rectangle
func verticesInRect(buf mesh.PositionReader, world geometry.Matrix4, project projectFunc, rect SelectionRect) []int {
	var out []int
	for i := 0; i < buf.VertexCount(); i++ {
		if s, ok := project(world.TransformPoint(buf.Position(i))); ok && rect.Contains(s) {
			out = append(out, i)
		}
	}
	return out
}

// edgesInRect lists the slots of edges with both endpoints inside the rectangle
func edgesInRect(buf mesh.PositionReader, world geometry.Matrix4, edges []mesh.Edge, project projectFunc, rect SelectionRect) []int {
	n := buf.VertexCount()
	var out []int
	for slot, e := range edges {
		if e.B() >= n {
			continue
		}
		sa, okA := project(world.TransformPoint(buf.Position(e.A())))
		sb, okB := project(world.TransformPoint(buf.Position(e.B())))
		if okA && okB && rect.Contains(sa) && rect.Contains(sb) {
			out = append(out, slot)
		}
	}
	return out
}

// worldPerPixel is the size of one screen pixel at the camera target
func (app *App) worldPerPixel() float64 {
	h := float64(rl.GetScreenHeight())
	if h <= 0 {
		return 0
	}
	fovy := float64(app.Camera.camera.Fovy) * math.Pi / 180
	return 2 * float64(app.Camera.distance) * math.Tan(fovy/2) / h
}

// updateHover finds the handle under the mouse for the current mode
func (app *App) updateHover(mouse rl.Vector2) {
	app.Interaction.hovered = overlay.NoHandle
	t := app.target()
	if t == nil || t.Mesh() == nil || !app.View.showHandles {
		return
	}
	m := t.Mesh()
	world := t.WorldMatrix()

	switch app.engine.Mode() {
	case edit.ModeVertex:
		if v := pickVertex(m, world, app.project, mouse, float32(app.cfg.PickRadius)); v >= 0 {
			app.Interaction.hovered = overlay.Handle{Kind: edit.ElementVertex, Index: v}
		}
	case edit.ModeEdge:
		ray := overlay.RayFromRL(rl.GetScreenToWorldRay(mouse, app.Camera.camera))
		threshold := app.cfg.PickRadius * app.worldPerPixel()
		if slot := pickEdge(m, world, app.engine.Edges(), ray, threshold); slot >= 0 {
			app.Interaction.hovered = overlay.Handle{Kind: edit.ElementEdge, Index: slot}
		}
	}
}

// beginHandleDrag starts an engine drag session on the hovered handle.
// Edges are grabbed where the pointer touches them; the offset to the first
// endpoint, which the engine moves to the drag point, is kept for the drag.
func (app *App) beginHandleDrag(mouse rl.Vector2) bool {
	h := app.Interaction.hovered
	t := app.target()
	if !h.Valid() || t == nil || t.Mesh() == nil {
		return false
	}
	m := t.Mesh()
	world := t.WorldMatrix()
	app.Interaction.grabOffset = geometry.Vector3{}

	var anchor geometry.Vector3
	switch h.Kind {
	case edit.ElementVertex:
		anchor = world.TransformPoint(m.Position(h.Index))
	case edit.ElementEdge:
		e := app.engine.Edges()[h.Index]
		ray := overlay.RayFromRL(rl.GetScreenToWorldRay(mouse, app.Camera.camera))
		anchor = ray.ClosestPointOnSegment(world.TransformPoint(m.Position(e.A())), world.TransformPoint(m.Position(e.B())))
		if inv, ok := world.Inverse(); ok {
			app.Interaction.grabOffset = m.Position(e.A()).Sub(inv.TransformPoint(anchor))
		}
	}
	return app.engine.OnHandleInteractionStart(h.Kind, h.Index, anchor)
}

// dragHandle feeds the pointer ray to the open drag session
func (app *App) dragHandle(mouse rl.Vector2) {
	ray := overlay.RayFromRL(rl.GetScreenToWorldRay(mouse, app.Camera.camera))
	cam := editCamera{camera: app.Camera.camera}
	if app.engine.DragState() != edit.StateEdgeDragging {
		app.engine.OnPointerMoved(cam, ray)
		return
	}

	anchor, ok := app.engine.DragAnchor()
	t := app.target()
	if !ok || t == nil {
		return
	}
	if local, ok := edit.ResolveDragPoint(cam.Forward(), ray, anchor, t.WorldMatrix()); ok {
		app.engine.ApplyDragTarget(local.Add(app.Interaction.grabOffset))
	}
}
