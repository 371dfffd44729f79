package overlay

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// Handle identifies a vertex or an edge slot under the pointer
type Handle struct {
	Kind  edit.ElementKind
	Index int
}

// NoHandle is the zero-value stand-in for "nothing hovered"
var NoHandle = Handle{Index: -1}

// Valid reports whether h points at an element
func (h Handle) Valid() bool {
	return h.Index >= 0
}

// RenderContext holds everything needed to draw the edit handles of one mesh
type RenderContext struct {
	Camera    rl.Camera3D
	Font      rl.Font
	Mode      edit.Mode
	Mesh      *mesh.Mesh
	World     geometry.Matrix4
	Edges     []mesh.Edge
	Selection edit.Selection
	Hovered   Handle

	// Dragging is set while a drag session is open; Anchor is its world point
	Dragging bool
	Anchor   geometry.Vector3
}

// ToRL converts a vector for raylib
func ToRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// FromRL converts a raylib vector
func FromRL(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

// RayFromRL converts a raylib pick ray
func RayFromRL(r rl.Ray) geometry.Ray {
	return geometry.NewRay(FromRL(r.Position), FromRL(r.Direction))
}

// InFront reports whether a world point lies in front of the camera
func InFront(cam rl.Camera3D, p geometry.Vector3) bool {
	eye := FromRL(cam.Position)
	forward := FromRL(cam.Target).Sub(eye)
	return p.Sub(eye).Dot(forward) > 0
}
