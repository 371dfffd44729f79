// Package edit implements sub-element mesh editing: deriving vertex and edge
// handles from a triangle mesh, grouping coincident elements and dragging
// them in the mesh's local space.
//
// The engine is synchronous and not safe for concurrent use. Hosts call it
// from their event loop and redraw from the state it exposes.
package edit

import (
	"errors"
	"fmt"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/philipparndt/meshedit/pkg/primitive"
)

// ErrNoTarget is returned by operations that need an edit target
var ErrNoTarget = errors.New("no edit target selected")

// Geometry is the mutable vertex buffer of a scene node. The triangle index
// list must stay fixed while the node is the edit target.
type Geometry interface {
	VertexCount() int
	Position(i int) geometry.Vector3
	SetPosition(i int, p geometry.Vector3)
	Indices() []int
	ComputeNormals()
	MarkDirty()
}

// Node is a scene object that can be edited. Implementations must be
// comparable (usually a pointer) since the engine tracks its target by
// identity. Geometry returns nil for nodes that are not mesh-shaped.
type Node interface {
	WorldMatrix() geometry.Matrix4
	Geometry() Geometry
}

// Resizer is implemented by nodes backed by a parametric primitive whose
// mesh can be regenerated at another resolution
type Resizer interface {
	SetResolution(count int) error
}

// Camera exposes the view direction used to orient drag planes
type Camera interface {
	WorldPosition() geometry.Vector3
	Forward() geometry.Vector3
}

// Engine holds the edit mode, the edit target, its derived edges, the
// selection and at most one drag session
type Engine struct {
	mode      Mode
	target    Node
	edges     []mesh.Edge
	selection Selection
	session   *session

	tolerance   float64
	subscribers []func(Event)
}

// Option configures an Engine
type Option func(*Engine)

// WithTolerance sets the coincidence tolerance used for grouping
func WithTolerance(tolerance float64) Option {
	return func(e *Engine) {
		if tolerance > 0 {
			e.tolerance = tolerance
		}
	}
}

// NewEngine creates an idle engine without a target
func NewEngine(opts ...Option) *Engine {
	e := &Engine{tolerance: mesh.DefaultTolerance}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mode returns the current edit mode
func (e *Engine) Mode() Mode { return e.mode }

// Target returns the node under edit, or nil
func (e *Engine) Target() Node { return e.target }

// Tolerance returns the coincidence tolerance
func (e *Engine) Tolerance() float64 { return e.tolerance }

// Edges returns the derived edge list of the target. Edge selection slots
// index into this slice.
func (e *Engine) Edges() []mesh.Edge { return e.edges }

// Selection returns a copy of the current selection
func (e *Engine) Selection() Selection { return e.selection.Clone() }

// DragState returns the state of the drag session state machine
func (e *Engine) DragState() DragState {
	if e.session == nil {
		return StateIdle
	}
	return e.session.state
}

// DragAnchor returns the world-space point the drag plane passes through
func (e *Engine) DragAnchor() (geometry.Vector3, bool) {
	if e.session == nil {
		return geometry.Vector3{}, false
	}
	return e.session.anchor, true
}

// EnterEditMode switches the edit mode. Any open drag ends, the selection is
// cleared and the target's edges are derived again.
func (e *Engine) EnterEditMode(m Mode) error {
	if !m.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	e.reset()
	e.mode = m
	e.RefreshTopology()
	e.emit(Event{Kind: EventModeChanged})
	return nil
}

// ExitEditMode returns to ModeNone, ending any drag and clearing the selection
func (e *Engine) ExitEditMode() {
	e.reset()
	e.mode = ModeNone
	e.emit(Event{Kind: EventModeChanged})
}

// SelectTarget makes n the edit target. Passing nil clears the target.
// An open drag on the previous target is discarded.
func (e *Engine) SelectTarget(n Node) {
	e.reset()
	e.target = n
	e.RefreshTopology()
	e.emit(Event{Kind: EventTargetChanged})
}

// RefreshTopology derives the edge list from the target's current index
// list. Hosts call it after replacing a node's geometry behind the engine's
// back.
func (e *Engine) RefreshTopology() {
	e.edges = nil
	if g := e.geometry(); g != nil {
		e.edges = mesh.DeriveEdges(g.Indices())
	}
	e.emit(Event{Kind: EventTopologyChanged})
}

// SelectVertices replaces the vertex selection
func (e *Engine) SelectVertices(indices []int) {
	e.selection.Vertices = append(e.selection.Vertices[:0], indices...)
	e.emit(Event{Kind: EventSelectionChanged})
}

// SelectEdges replaces the edge selection with the given edge slots
func (e *Engine) SelectEdges(slots []int) {
	e.selection.Edges = append(e.selection.Edges[:0], slots...)
	e.emit(Event{Kind: EventSelectionChanged})
}

// ClearSelection empties every selection list
func (e *Engine) ClearSelection() {
	e.selection.Clear()
	e.emit(Event{Kind: EventSelectionChanged})
}

// SetPrimitiveResolution regenerates the target's mesh with count segments.
// Targets that are not parametric primitives return an error wrapping
// primitive.ErrResolutionNotSupported and keep their geometry.
func (e *Engine) SetPrimitiveResolution(count int) error {
	if e.target == nil {
		return ErrNoTarget
	}
	resizer, ok := e.target.(Resizer)
	if !ok {
		return fmt.Errorf("set resolution: %w", primitive.ErrResolutionNotSupported)
	}
	if err := resizer.SetResolution(count); err != nil {
		return fmt.Errorf("set resolution: %w", err)
	}

	e.reset()
	e.RefreshTopology()
	return nil
}

// geometry returns the target's vertex buffer or nil
func (e *Engine) geometry() Geometry {
	if e.target == nil {
		return nil
	}
	return e.target.Geometry()
}

// reset ends the drag session and clears the selection
func (e *Engine) reset() {
	if e.session != nil {
		e.session = nil
		e.emit(Event{Kind: EventDragEnded})
	}
	if !e.selection.IsEmpty() {
		e.selection.Clear()
		e.emit(Event{Kind: EventSelectionChanged})
	}
}
