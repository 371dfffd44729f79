package viewer

import (
	"math"
	"testing"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func frontCamera() *Camera {
	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(-1, -1, -1))
	bbox.Extend(geometry.NewVector3(1, 1, 1))

	c := NewCamera(bbox)
	c.RotationX, c.RotationY = 0, 0
	c.UpdatePosition()
	return c
}

func TestCameraLooksAtTarget(t *testing.T) {
	c := frontCamera()

	assert.InDelta(t, 0, c.Forward().Distance(geometry.NewVector3(0, 0, -1)), 1e-12)
	assert.Equal(t, geometry.NewVector3(0, 0, 4), c.WorldPosition())
}

func TestProjectCentre(t *testing.T) {
	c := frontCamera()

	x, y, depth := c.Project(geometry.Vector3{}, 800, 600)
	assert.InDelta(t, 400, x, 1e-9)
	assert.InDelta(t, 300, y, 1e-9)
	assert.InDelta(t, 4, depth, 1e-9)
}

func TestUnprojectInvertsProject(t *testing.T) {
	c := frontCamera()
	c.Rotate(0.3, -0.7)
	point := geometry.NewVector3(0.4, -0.2, 0.6)

	x, y, depth := c.Project(point, 640, 480)
	ray := c.Unproject(x, y, 640, 480)

	hit := ray.At(depth / ray.Direction.Dot(c.Forward()))
	assert.InDelta(t, 0, hit.Distance(point), 1e-9)
}

func TestRotateClampsPitch(t *testing.T) {
	c := frontCamera()
	c.Rotate(10, 0)

	assert.InDelta(t, math.Pi/2-0.1, c.RotationX, 1e-12)
}
