package mesh

import (
	"math"
	"testing"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() *Mesh {
	return New("quad", []geometry.Vector3{
		v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0),
	}, []int{0, 1, 2, 0, 2, 3})
}

func TestNewComputesFlatNormals(t *testing.T) {
	m := quad()

	require.Len(t, m.Normals(), 4)
	for i, n := range m.Normals() {
		assert.Equal(t, v(0, 0, 1), n, "normal %d", i)
	}
}

func TestSmoothNormalsAverageFaces(t *testing.T) {
	// two faces folded 90 degrees along the shared 1-2 side
	m := New("fold", []geometry.Vector3{
		v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(1, 0, -1),
	}, []int{0, 1, 2, 1, 3, 2})
	m.NormalMode = NormalsSmooth
	m.ComputeNormals()

	shared := m.Normals()[1]
	assert.InDelta(t, 1.0, shared.Length(), 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), shared.X, 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), shared.Z, 1e-9)
}

func TestNonIndexedMeshUsesTriples(t *testing.T) {
	m := New("soup", []geometry.Vector3{
		v(0, 0, 0), v(1, 0, 0), v(0, 1, 0),
		v(0, 0, 1),
	}, nil)

	assert.False(t, m.IsIndexed())
	assert.Equal(t, 1, m.TriangleCount())
	assert.InDelta(t, 0.5, m.SurfaceArea(), 1e-12)
}

func TestMarkDirtyBumpsRevision(t *testing.T) {
	m := quad()
	assert.False(t, m.Dirty())

	m.MarkDirty()
	m.MarkDirty()
	assert.True(t, m.Dirty())
	assert.Equal(t, uint64(2), m.Revision())

	m.ClearDirty()
	assert.False(t, m.Dirty())
	assert.Equal(t, uint64(2), m.Revision())
}

func TestCloneIsIndependent(t *testing.T) {
	m := quad()
	c := m.Clone()

	c.SetPosition(0, v(5, 5, 5))

	assert.Equal(t, v(0, 0, 0), m.Position(0))
	assert.Equal(t, v(5, 5, 5), c.Position(0))
	assert.Equal(t, m.Indices(), c.Indices())
}

func TestBoundingBoxAndArea(t *testing.T) {
	m := quad()

	bbox := m.BoundingBox()
	assert.Equal(t, v(0, 0, 0), bbox.Min)
	assert.Equal(t, v(1, 1, 0), bbox.Max)
	assert.InDelta(t, 1.0, m.SurfaceArea(), 1e-12)
}
