package edit

import "slices"

// Selection holds the highlighted elements per type. Vertices are vertex
// indices, Edges are indices into the engine's derived edge list. Faces is
// part of the model but no operation fills it.
type Selection struct {
	Vertices []int
	Edges    []int
	Faces    []int
}

// Clear empties all lists
func (s *Selection) Clear() {
	s.Vertices = s.Vertices[:0]
	s.Edges = s.Edges[:0]
	s.Faces = s.Faces[:0]
}

// IsEmpty reports whether nothing is selected
func (s Selection) IsEmpty() bool {
	return len(s.Vertices) == 0 && len(s.Edges) == 0 && len(s.Faces) == 0
}

// HasVertex reports whether vertex i is selected
func (s Selection) HasVertex(i int) bool {
	return slices.Contains(s.Vertices, i)
}

// HasEdge reports whether edge slot i is selected
func (s Selection) HasEdge(i int) bool {
	return slices.Contains(s.Edges, i)
}

// Clone returns a copy that does not share backing arrays
func (s Selection) Clone() Selection {
	return Selection{
		Vertices: slices.Clone(s.Vertices),
		Edges:    slices.Clone(s.Edges),
		Faces:    slices.Clone(s.Faces),
	}
}
