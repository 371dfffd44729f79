package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveEdgesQuad(t *testing.T) {
	// two triangles sharing the 0-2 diagonal
	edges := DeriveEdges([]int{0, 1, 2, 0, 2, 3})

	assert.Len(t, edges, 5)
	assert.ElementsMatch(t, []Edge{{0, 1}, {1, 2}, {0, 2}, {2, 3}, {0, 3}}, edges)
}

func TestDeriveEdgesCanonicalAndUnique(t *testing.T) {
	indices := []int{5, 3, 1, 1, 3, 7, 7, 3, 5, 9, 8, 7}
	edges := DeriveEdges(indices)

	seen := map[Edge]bool{}
	for _, e := range edges {
		assert.Less(t, e[0], e[1], "edge %v is not canonical", e)
		assert.False(t, seen[e], "edge %v emitted twice", e)
		seen[e] = true
	}
}

func TestDeriveEdgesIndependentOfTriangleOrder(t *testing.T) {
	forward := DeriveEdges([]int{0, 1, 2, 2, 1, 3, 3, 1, 4})
	reversed := DeriveEdges([]int{3, 1, 4, 2, 1, 3, 0, 1, 2})

	assert.ElementsMatch(t, forward, reversed)
}

func TestDeriveEdgesEmpty(t *testing.T) {
	assert.Empty(t, DeriveEdges(nil))
	assert.Empty(t, DeriveEdges([]int{}))
}

func TestDeriveEdgesSkipsDegenerateAndPartial(t *testing.T) {
	// 0,0,1 only contributes 0-1; the trailing 4,5 is ignored
	edges := DeriveEdges([]int{0, 0, 1, 4, 5})

	assert.Equal(t, []Edge{{0, 1}}, edges)
}

func TestNewEdge(t *testing.T) {
	assert.Equal(t, Edge{2, 7}, NewEdge(7, 2))
	assert.Equal(t, Edge{2, 7}, NewEdge(2, 7))
	assert.True(t, NewEdge(7, 2).Contains(7))
	assert.False(t, NewEdge(7, 2).Contains(3))
}

func TestSequentialIndices(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, SequentialIndices(7))
	assert.Empty(t, SequentialIndices(2))
}
