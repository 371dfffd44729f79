package scene

import "github.com/philipparndt/meshedit/pkg/geometry"

// Scene is an ordered list of objects
type Scene struct {
	Objects []*Object
}

// New creates an empty scene
func New() *Scene {
	return &Scene{}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...*Object) {
	s.Objects = append(s.Objects, objects...)
}

// Find returns the first object with the given name
func (s *Scene) Find(name string) (*Object, bool) {
	for _, o := range s.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// Remove deletes o from the scene and reports whether it was present
func (s *Scene) Remove(o *Object) bool {
	for i, candidate := range s.Objects {
		if candidate == o {
			s.Objects = append(s.Objects[:i], s.Objects[i+1:]...)
			return true
		}
	}
	return false
}

// Bounds returns the world bounding box of all visible objects
func (s *Scene) Bounds() geometry.BoundingBox {
	bounds := geometry.NewBoundingBox()
	for _, o := range s.Objects {
		if !o.Visible || o.mesh == nil || o.mesh.VertexCount() == 0 {
			continue
		}
		b := o.WorldBounds()
		bounds.Extend(b.Min)
		bounds.Extend(b.Max)
	}
	return bounds
}
