package edit

import (
	"github.com/philipparndt/meshedit/pkg/geometry"
)

// ResolveDragPoint intersects the pointer ray with the plane through
// anchorWorld facing the camera and returns the hit in the local space of
// an object with the given world matrix. ok is false when the ray misses the
// plane or the world matrix cannot be inverted; callers skip the frame.
func ResolveDragPoint(forward geometry.Vector3, ray geometry.Ray, anchorWorld geometry.Vector3, world geometry.Matrix4) (geometry.Vector3, bool) {
	if forward.Length() == 0 {
		return geometry.Vector3{}, false
	}

	plane := geometry.NewPlaneFromNormalAndPoint(forward, anchorWorld)
	hit, ok := ray.IntersectPlane(plane)
	if !ok {
		return geometry.Vector3{}, false
	}

	inverse, ok := world.Inverse()
	if !ok {
		return geometry.Vector3{}, false
	}
	return inverse.TransformPoint(hit), true
}
