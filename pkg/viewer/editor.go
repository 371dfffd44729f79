package viewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// MeshNode is an edit target that exposes its mesh for drawing
type MeshNode interface {
	edit.Node
	Mesh() *mesh.Mesh
}

// MeshEditor is a fyne widget that shows the engine's target and turns
// pointer input into handle drags. Dragging empty space orbits the camera.
type MeshEditor struct {
	widget.BaseWidget

	engine *edit.Engine
	camera *Camera
	raster *canvas.Raster

	// PickRadius is the handle hit distance in pixels
	PickRadius float64

	handleDrag bool
	grabOffset geometry.Vector3
}

var (
	_ fyne.Draggable    = (*MeshEditor)(nil)
	_ fyne.Scrollable   = (*MeshEditor)(nil)
	_ desktop.Mouseable = (*MeshEditor)(nil)
)

// NewMeshEditor creates an editor view for engine. The view refreshes on
// every engine event.
func NewMeshEditor(engine *edit.Engine) *MeshEditor {
	e := &MeshEditor{
		engine:     engine,
		camera:     NewCamera(geometry.NewBoundingBox()),
		PickRadius: 8,
	}
	e.raster = canvas.NewRaster(e.draw)
	e.ExtendBaseWidget(e)

	engine.Subscribe(func(ev edit.Event) {
		if ev.Kind == edit.EventTargetChanged {
			e.frameTarget()
		}
		e.raster.Refresh()
	})
	e.frameTarget()
	return e
}

// Camera returns the view camera
func (e *MeshEditor) Camera() *Camera {
	return e.camera
}

// CreateRenderer implements fyne.Widget
func (e *MeshEditor) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(e.raster)
}

// MinSize keeps the view usable in tight layouts
func (e *MeshEditor) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (e *MeshEditor) node() MeshNode {
	n, _ := e.engine.Target().(MeshNode)
	return n
}

func (e *MeshEditor) frameTarget() {
	if n := e.node(); n != nil && n.Mesh() != nil {
		e.camera.Frame(n.Mesh().BoundingBox().Transform(n.WorldMatrix()))
	}
}

func (e *MeshEditor) draw(w, h int) image.Image {
	n := e.node()
	if n == nil || n.Mesh() == nil || w <= 0 || h <= 0 {
		return image.NewUniform(backgroundColor)
	}
	return RenderImage(n.Mesh(), n.WorldMatrix(), e.camera, OverlayFor(e.engine), w, h)
}

func (e *MeshEditor) projector() Projector {
	size := e.Size()
	return Projector{Camera: e.camera, Width: float64(size.Width), Height: float64(size.Height)}
}

// MouseDown picks the handle under the pointer and starts a drag on it
func (e *MeshEditor) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	n := e.node()
	if n == nil || n.Mesh() == nil {
		return
	}

	m := n.Mesh()
	world := n.WorldMatrix()
	p := e.projector()
	sx, sy := float64(ev.Position.X), float64(ev.Position.Y)

	switch e.engine.Mode() {
	case edit.ModeVertex:
		if v := p.PickVertex(m, world, sx, sy, e.PickRadius); v >= 0 {
			e.grabOffset = geometry.Vector3{}
			e.handleDrag = e.engine.OnHandleInteractionStart(edit.ElementVertex, v, world.TransformPoint(m.Position(v)))
			return
		}
	case edit.ModeEdge:
		edges := e.engine.Edges()
		if slot := p.PickEdge(m, world, edges, sx, sy, e.PickRadius); slot >= 0 {
			mid := EdgeMidpoint(m, edges[slot])
			// the engine moves the edge by its first endpoint, the handle sits at the midpoint
			e.grabOffset = m.Position(edges[slot].A()).Sub(mid)
			e.handleDrag = e.engine.OnHandleInteractionStart(edit.ElementEdge, slot, world.TransformPoint(mid))
			return
		}
	}

	if e.engine.Mode() != edit.ModeNone {
		e.engine.ClearSelection()
	}
}

// MouseUp ends a handle drag
func (e *MeshEditor) MouseUp(*desktop.MouseEvent) {
	e.endDrag()
}

// Dragged moves the grabbed handle or orbits the camera
func (e *MeshEditor) Dragged(ev *fyne.DragEvent) {
	if !e.handleDrag {
		e.camera.Rotate(float64(-ev.Dragged.DY)*0.01, float64(ev.Dragged.DX)*0.01)
		e.raster.Refresh()
		return
	}

	n := e.node()
	anchor, ok := e.engine.DragAnchor()
	if n == nil || !ok {
		return
	}
	p := e.projector()
	ray := e.camera.Unproject(float64(ev.Position.X), float64(ev.Position.Y), p.Width, p.Height)
	if e.grabOffset == (geometry.Vector3{}) {
		e.engine.OnPointerMoved(e.camera, ray)
		return
	}
	if local, ok := edit.ResolveDragPoint(e.camera.Forward(), ray, anchor, n.WorldMatrix()); ok {
		e.engine.ApplyDragTarget(local.Add(e.grabOffset))
	}
}

// DragEnd ends a handle drag
func (e *MeshEditor) DragEnd() {
	e.endDrag()
}

func (e *MeshEditor) endDrag() {
	if e.handleDrag {
		e.handleDrag = false
		e.engine.OnInteractionEnd()
	}
}

// Scrolled zooms the camera
func (e *MeshEditor) Scrolled(ev *fyne.ScrollEvent) {
	e.camera.Zoom(-float64(ev.Scrolled.DY) * 0.001)
	e.raster.Refresh()
}
