package mesh

import (
	"github.com/philipparndt/meshedit/pkg/geometry"
)

// NormalMode selects how vertex normals are derived from the faces
type NormalMode int

const (
	// NormalsFlat gives every vertex the normal of the last face that uses it.
	// Meshes that want hard edges keep one vertex per face corner.
	NormalsFlat NormalMode = iota
	// NormalsSmooth averages the area-weighted normals of all faces using a vertex
	NormalsSmooth
)

// String returns the lowercase name of the mode
func (m NormalMode) String() string {
	if m == NormalsSmooth {
		return "smooth"
	}
	return "flat"
}

// Mesh is a vertex position buffer with a fixed triangle index list.
// Positions are mutated in place by the editor; the index list never changes
// once the mesh is built.
type Mesh struct {
	Name       string
	NormalMode NormalMode

	positions []geometry.Vector3
	normals   []geometry.Vector3
	indices   []int // nil for non-indexed geometry

	dirty    bool
	revision uint64
}

// New creates a mesh from positions and a triangle index list and computes
// its normals. Pass nil indices for non-indexed geometry.
func New(name string, positions []geometry.Vector3, indices []int) *Mesh {
	m := &Mesh{
		Name:      name,
		positions: positions,
		indices:   indices,
		normals:   make([]geometry.Vector3, len(positions)),
	}
	m.ComputeNormals()
	return m
}

// VertexCount returns the number of vertices in the position buffer
func (m *Mesh) VertexCount() int {
	return len(m.positions)
}

// Position returns the local-space position of vertex i
func (m *Mesh) Position(i int) geometry.Vector3 {
	return m.positions[i]
}

// SetPosition overwrites the position of vertex i
func (m *Mesh) SetPosition(i int, p geometry.Vector3) {
	m.positions[i] = p
}

// Positions returns the position buffer. The slice is shared with the mesh.
func (m *Mesh) Positions() []geometry.Vector3 {
	return m.positions
}

// Normals returns the per-vertex normals
func (m *Mesh) Normals() []geometry.Vector3 {
	return m.normals
}

// Indices returns the triangle index list, nil for non-indexed meshes
func (m *Mesh) Indices() []int {
	return m.indices
}

// IsIndexed reports whether the mesh carries a triangle index list
func (m *Mesh) IsIndexed() bool {
	return m.indices != nil
}

// TriangleCount returns the number of full triangles. Non-indexed meshes are
// read as consecutive position triples.
func (m *Mesh) TriangleCount() int {
	if m.indices == nil {
		return len(m.positions) / 3
	}
	return len(m.indices) / 3
}

// TriangleIndices returns the three vertex indices of triangle t
func (m *Mesh) TriangleIndices(t int) (int, int, int) {
	if m.indices == nil {
		return 3 * t, 3*t + 1, 3*t + 2
	}
	return m.indices[3*t], m.indices[3*t+1], m.indices[3*t+2]
}

// Triangle returns triangle t with its face normal
func (m *Mesh) Triangle(t int) geometry.Triangle {
	a, b, c := m.TriangleIndices(t)
	v1, v2, v3 := m.positions[a], m.positions[b], m.positions[c]
	return geometry.NewTriangle(geometry.FaceNormal(v1, v2, v3), v1, v2, v3)
}

// ComputeNormals recomputes the vertex normals using the mesh's NormalMode
func (m *Mesh) ComputeNormals() {
	if len(m.normals) != len(m.positions) {
		m.normals = make([]geometry.Vector3, len(m.positions))
	}
	for i := range m.normals {
		m.normals[i] = geometry.Vector3{}
	}

	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.TriangleIndices(t)
		if !m.inRange(a, b, c) {
			continue
		}
		pa, pb, pc := m.positions[a], m.positions[b], m.positions[c]

		switch m.NormalMode {
		case NormalsSmooth:
			// unnormalised cross product weights by face area
			weighted := pb.Sub(pa).Cross(pc.Sub(pa))
			m.normals[a] = m.normals[a].Add(weighted)
			m.normals[b] = m.normals[b].Add(weighted)
			m.normals[c] = m.normals[c].Add(weighted)
		default:
			n := geometry.FaceNormal(pa, pb, pc)
			m.normals[a] = n
			m.normals[b] = n
			m.normals[c] = n
		}
	}

	if m.NormalMode == NormalsSmooth {
		for i, n := range m.normals {
			m.normals[i] = n.Normalize()
		}
	}
}

func (m *Mesh) inRange(idx ...int) bool {
	for _, i := range idx {
		if i < 0 || i >= len(m.positions) {
			return false
		}
	}
	return true
}

// MarkDirty flags the mesh for re-upload and bumps its revision
func (m *Mesh) MarkDirty() {
	m.dirty = true
	m.revision++
}

// Dirty reports whether the mesh changed since the last ClearDirty
func (m *Mesh) Dirty() bool {
	return m.dirty
}

// ClearDirty resets the dirty flag after the renderer has consumed the change
func (m *Mesh) ClearDirty() {
	m.dirty = false
}

// Revision returns a counter incremented on every MarkDirty
func (m *Mesh) Revision() uint64 {
	return m.revision
}

// Clone returns a deep copy of the mesh
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Name:       m.Name,
		NormalMode: m.NormalMode,
		positions:  append([]geometry.Vector3(nil), m.positions...),
		normals:    append([]geometry.Vector3(nil), m.normals...),
		revision:   m.revision,
	}
	if m.indices != nil {
		c.indices = append([]int(nil), m.indices...)
	}
	return c
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range m.positions {
		bbox.Extend(p)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.TriangleIndices(t)
		if !m.inRange(a, b, c) {
			continue
		}
		total += m.Triangle(t).Area()
	}
	return total
}
