package stl

import (
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, triangle := range m.Triangles {
		totalArea += triangle.Area()
	}
	return totalArea
}

// ToMesh converts the triangle soup into an editable mesh. Every triangle
// keeps its own three vertices with indices 0..3n-1, so corners shared by
// several facets are coincident duplicates and move together when dragged.
func (m *Model) ToMesh() *mesh.Mesh {
	positions := make([]geometry.Vector3, 0, 3*len(m.Triangles))
	for _, t := range m.Triangles {
		positions = append(positions, t.V1, t.V2, t.V3)
	}
	return mesh.New(m.Name, positions, mesh.SequentialIndices(len(positions)))
}

// FromMesh builds a model with one facet per mesh triangle and freshly
// computed facet normals. Triangles referencing missing vertices are skipped.
func FromMesh(src *mesh.Mesh) *Model {
	model := NewModel(src.Name)
	n := src.VertexCount()
	for t := 0; t < src.TriangleCount(); t++ {
		a, b, c := src.TriangleIndices(t)
		if a < 0 || b < 0 || c < 0 || a >= n || b >= n || c >= n {
			continue
		}
		model.AddTriangle(src.Triangle(t))
	}
	return model
}
