package mesh

import (
	"testing"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func v(x, y, z float64) geometry.Vector3 {
	return geometry.NewVector3(x, y, z)
}

func TestGroupVertexIncludesDuplicates(t *testing.T) {
	m := New("dups", []geometry.Vector3{
		v(0, 0, 0),
		v(1, 0, 0),
		v(0, 0, 0.00005),
		v(0, 1, 0),
		v(0, 0, 0),
	}, nil)

	assert.Equal(t, []int{0, 2, 4}, GroupVertex(m, 0, DefaultTolerance))
	assert.Equal(t, []int{0, 2, 4}, GroupVertex(m, 4, DefaultTolerance))
	assert.Equal(t, []int{1}, GroupVertex(m, 1, DefaultTolerance))
}

func TestGroupVertexIsDirectDistance(t *testing.T) {
	// 0 and 2 are chained through 1 but too far apart themselves
	m := New("chain", []geometry.Vector3{
		v(0, 0, 0),
		v(0.00007, 0, 0),
		v(0.00014, 0, 0),
	}, nil)

	assert.Equal(t, []int{0, 1}, GroupVertex(m, 0, DefaultTolerance))
	assert.Equal(t, []int{0, 1, 2}, GroupVertex(m, 1, DefaultTolerance))
	assert.Equal(t, []int{1, 2}, GroupVertex(m, 2, DefaultTolerance))
}

func TestGroupVertexWithinTolerance(t *testing.T) {
	positions := []geometry.Vector3{
		v(0, 0, 0), v(0.00003, 0, 0), v(0, 0.0002, 0), v(1, 1, 1), v(0, 0, -0.00009),
	}
	m := New("mixed", positions, nil)

	for i := range positions {
		group := GroupVertex(m, i, DefaultTolerance)
		assert.Contains(t, group, i)
		for j := range positions {
			within := positions[i].Distance(positions[j]) < DefaultTolerance
			assert.Equal(t, within, contains(group, j), "vertex %d in group of %d", j, i)
		}
	}
}

func TestGroupVertexOutOfRange(t *testing.T) {
	m := New("one", []geometry.Vector3{v(0, 0, 0)}, nil)

	assert.Nil(t, GroupVertex(m, -1, DefaultTolerance))
	assert.Nil(t, GroupVertex(m, 1, DefaultTolerance))
}

// seamStrip is two quads whose shared border is duplicated: vertices 1/4 and
// 2/5 sit on the same positions but belong to different triangles.
func seamStrip() *Mesh {
	positions := []geometry.Vector3{
		v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), // left quad
		v(0, 1, 0),
		v(1, 0, 0), v(1, 1, 0), // seam duplicates
		v(2, 0, 0), v(2, 1, 0),
	}
	indices := []int{
		0, 1, 2, 0, 2, 3,
		4, 6, 7, 4, 7, 5,
	}
	return New("seam", positions, indices)
}

func TestGroupEdgeMatchesSeamByPosition(t *testing.T) {
	m := seamStrip()

	group := GroupEdge(m, m.Indices(), [2]int{1, 2}, [2]geometry.Vector3{m.Position(1), m.Position(2)}, DefaultTolerance)

	require.Equal(t, 2, group.Len())
	assert.Equal(t, [2]int{1, 2}, group.Pairs[0])
	assert.Equal(t, [2]int{5, 4}, group.Pairs[1])
	require.Len(t, group.Positions, 4)
	assert.Equal(t, v(1, 0, 0), group.Positions[0])
	assert.Equal(t, v(1, 1, 0), group.Positions[1])
	assert.Equal(t, v(1, 1, 0), group.Positions[2])
	assert.Equal(t, v(1, 0, 0), group.Positions[3])
}

func TestGroupEdgeMatchesByIndex(t *testing.T) {
	// the positions passed in match nothing, only the index pair does
	m := seamStrip()
	far := [2]geometry.Vector3{v(9, 9, 9), v(8, 8, 8)}

	group := GroupEdge(m, m.Indices(), [2]int{0, 2}, far, DefaultTolerance)

	assert.Equal(t, [][2]int{{0, 2}}, group.Pairs)
}

func TestGroupEdgeSlots(t *testing.T) {
	m := seamStrip()
	edges := DeriveEdges(m.Indices())

	group := GroupEdge(m, m.Indices(), [2]int{1, 2}, [2]geometry.Vector3{m.Position(1), m.Position(2)}, DefaultTolerance)
	slots := group.Slots(edges)

	require.Len(t, slots, 2)
	assert.Equal(t, Edge{1, 2}, edges[slots[0]])
	assert.Equal(t, Edge{4, 5}, edges[slots[1]])
}

func TestGroupEdgeSkipsOutOfRange(t *testing.T) {
	m := New("short", []geometry.Vector3{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)}, nil)

	group := GroupEdge(m, []int{0, 1, 2, 0, 1, 9}, [2]int{0, 1}, [2]geometry.Vector3{m.Position(0), m.Position(1)}, DefaultTolerance)

	assert.Equal(t, [][2]int{{0, 1}}, group.Pairs)
}

func contains(values []int, x int) bool {
	for _, value := range values {
		if value == x {
			return true
		}
	}
	return false
}
