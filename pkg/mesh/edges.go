package mesh

// Edge is an undirected mesh edge stored in canonical (min, max) order
type Edge [2]int

// NewEdge returns the canonical edge between vertices a and b
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// A returns the lower vertex index
func (e Edge) A() int { return e[0] }

// B returns the higher vertex index
func (e Edge) B() int { return e[1] }

// Contains reports whether v is one of the edge's endpoints
func (e Edge) Contains(v int) bool {
	return e[0] == v || e[1] == v
}

// DeriveEdges returns the unique canonical edges of a triangle index list in
// first-seen order. Sides joining a vertex to itself and a trailing partial
// triangle are ignored. A nil or empty list yields no edges.
func DeriveEdges(indices []int) []Edge {
	edges := make([]Edge, 0, len(indices))
	seen := make(map[Edge]struct{}, len(indices))

	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		for _, side := range [3][2]int{{a, b}, {b, c}, {c, a}} {
			if side[0] == side[1] {
				continue
			}
			e := NewEdge(side[0], side[1])
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// SequentialIndices returns 0..n-1 truncated to whole triangles, the implicit
// index list of a non-indexed triangle soup
func SequentialIndices(n int) []int {
	n -= n % 3
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
