// Package scene holds the objects the editor works on and persists them as
// YAML scene files.
package scene

import (
	"fmt"

	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/philipparndt/meshedit/pkg/primitive"
)

// Transform places an object in the world. Rotation is in radians.
type Transform struct {
	Position geometry.Vector3
	Rotation geometry.Vector3
	Scale    geometry.Vector3
}

// IdentityTransform has unit scale and no offset
func IdentityTransform() Transform {
	return Transform{Scale: geometry.NewVector3(1, 1, 1)}
}

// Matrix returns translation * rotation * scale
func (t Transform) Matrix() geometry.Matrix4 {
	return geometry.Compose(t.Position, t.Rotation, t.Scale)
}

// Object is a named mesh in the scene. Objects created from a primitive
// remember the shape so their resolution can be changed.
type Object struct {
	Name      string
	Shape     primitive.Shape
	Transform Transform
	Visible   bool

	mesh *mesh.Mesh
}

var (
	_ edit.Node    = (*Object)(nil)
	_ edit.Resizer = (*Object)(nil)
)

// NewPrimitiveObject generates the shape's mesh
func NewPrimitiveObject(name string, shape primitive.Shape) *Object {
	m := shape.Generate()
	m.Name = name
	return &Object{
		Name:      name,
		Shape:     shape,
		Transform: IdentityTransform(),
		Visible:   true,
		mesh:      m,
	}
}

// NewMeshObject wraps an existing mesh, for example an imported STL
func NewMeshObject(name string, m *mesh.Mesh) *Object {
	return &Object{
		Name:      name,
		Transform: IdentityTransform(),
		Visible:   true,
		mesh:      m,
	}
}

// Mesh returns the object's mesh, nil for an empty object
func (o *Object) Mesh() *mesh.Mesh {
	if o == nil {
		return nil
	}
	return o.mesh
}

// SetMesh replaces the vertex buffer, for example after a file reload.
// The object no longer counts as a primitive.
func (o *Object) SetMesh(m *mesh.Mesh) {
	o.mesh = m
	o.Shape = nil
}

// WorldMatrix implements edit.Node
func (o *Object) WorldMatrix() geometry.Matrix4 {
	return o.Transform.Matrix()
}

// Geometry implements edit.Node
func (o *Object) Geometry() edit.Geometry {
	if o == nil || o.mesh == nil {
		return nil
	}
	return o.mesh
}

// SetResolution regenerates a primitive with count segments. Edited vertex
// positions are lost.
func (o *Object) SetResolution(count int) error {
	if o.Shape == nil {
		return fmt.Errorf("%s: %w", o.Name, primitive.ErrResolutionNotSupported)
	}
	resized, err := o.Shape.WithResolution(count)
	if err != nil {
		return err
	}

	m := resized.Generate()
	m.Name = o.Name
	if o.mesh != nil {
		m.NormalMode = o.mesh.NormalMode
		m.ComputeNormals()
	}
	o.Shape = resized
	o.mesh = m
	return nil
}

// WorldBounds returns the bounding box of the transformed mesh
func (o *Object) WorldBounds() geometry.BoundingBox {
	if o.mesh == nil {
		return geometry.NewBoundingBox()
	}
	return o.mesh.BoundingBox().Transform(o.WorldMatrix())
}
