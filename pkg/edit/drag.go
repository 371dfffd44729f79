package edit

import (
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// session is an in-progress drag. All positions are in the target's local space
// except anchor, which is in world space.
type session struct {
	state    DragState
	target   Node
	geometry Geometry

	vertices []int    // vertex drag participants
	pairs    [][2]int // edge drag participants
	initial  []geometry.Vector3
	live     geometry.Vector3
	offset   geometry.Vector3
	anchor   geometry.Vector3
}

// OnHandleInteractionStart opens a drag session on the vertex or edge handle
// at index. anchor is the handle's world position. It returns false, leaving
// everything unchanged, when a drag is already open, the mode does not allow
// the handle kind, the target has no geometry or index is out of range.
func (e *Engine) OnHandleInteractionStart(kind ElementKind, index int, anchor geometry.Vector3) bool {
	if e.session != nil || !e.mode.Allows(kind) {
		return false
	}
	g := e.geometry()
	if g == nil {
		return false
	}

	s := &session{target: e.target, geometry: g, anchor: anchor}
	n := g.VertexCount()

	switch kind {
	case ElementVertex:
		if index < 0 || index >= n {
			return false
		}
		s.state = StateVertexDragging
		s.vertices = mesh.GroupVertex(g, index, e.tolerance)
		s.live = g.Position(index)
		s.initial = make([]geometry.Vector3, len(s.vertices))
		for i, v := range s.vertices {
			s.initial[i] = g.Position(v)
		}
		e.selection.Vertices = append(e.selection.Vertices[:0], s.vertices...)

	case ElementEdge:
		if index < 0 || index >= len(e.edges) {
			return false
		}
		edge := e.edges[index]
		if edge[0] >= n || edge[1] >= n || edge[0] < 0 {
			return false
		}
		endpoints := [2]geometry.Vector3{g.Position(edge[0]), g.Position(edge[1])}
		group := mesh.GroupEdge(g, g.Indices(), edge, endpoints, e.tolerance)
		s.state = StateEdgeDragging
		s.pairs = group.Pairs
		s.initial = group.Positions
		e.selection.Edges = append(e.selection.Edges[:0], group.Slots(e.edges)...)

	default:
		return false
	}

	e.session = s
	e.emit(Event{Kind: EventDragStarted})
	e.emit(Event{Kind: EventSelectionChanged})
	return true
}

// OnPointerMoved resolves the pointer ray against a camera-facing plane
// through the drag anchor and applies the resulting local point. It returns
// false when there is no live session or the ray misses the plane.
func (e *Engine) OnPointerMoved(cam Camera, ray geometry.Ray) bool {
	s := e.session
	if s == nil || !e.sessionLive() {
		return false
	}

	forward := cam.Forward()
	if forward.Length() == 0 {
		forward = s.anchor.Sub(cam.WorldPosition())
	}

	world := e.target.WorldMatrix()
	local, ok := ResolveDragPoint(forward, ray, s.anchor, world)
	if !ok {
		return false
	}
	if !e.ApplyDragTarget(local) {
		return false
	}
	s.anchor = world.TransformPoint(local)
	return true
}

// ApplyDragTarget moves the drag participants for a local-space target
// point. A vertex drag puts every grouped vertex exactly on p. An edge drag
// translates every grouped edge by p minus the first initial endpoint, so
// repeating the same p gives the same result. Normals are recomputed and the
// geometry marked dirty. Without a live session it returns false and leaves
// the buffer untouched.
func (e *Engine) ApplyDragTarget(p geometry.Vector3) bool {
	s := e.session
	if s == nil || !e.sessionLive() {
		return false
	}
	g := s.geometry

	switch s.state {
	case StateVertexDragging:
		for _, v := range s.vertices {
			g.SetPosition(v, p)
		}
		s.live = p

	case StateEdgeDragging:
		s.offset = p.Sub(s.initial[0])
		for i, pair := range s.pairs {
			g.SetPosition(pair[0], s.initial[2*i].Add(s.offset))
			g.SetPosition(pair[1], s.initial[2*i+1].Add(s.offset))
		}

	default:
		return false
	}

	g.ComputeNormals()
	g.MarkDirty()
	e.emit(Event{Kind: EventGeometryChanged})
	return true
}

// OnInteractionEnd discards the drag session. Moved vertices keep their
// positions.
func (e *Engine) OnInteractionEnd() {
	if e.session == nil {
		return
	}
	e.session = nil
	e.emit(Event{Kind: EventDragEnded})
}

// sessionLive reports whether the session still belongs to the active target
// and its geometry
func (e *Engine) sessionLive() bool {
	s := e.session
	if s.target != e.target || e.target == nil {
		return false
	}
	return e.target.Geometry() == s.geometry
}
