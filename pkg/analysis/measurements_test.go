package analysis

import (
	"testing"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/philipparndt/meshedit/pkg/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBox(t *testing.T) {
	result := AnalyzeMesh(primitive.NewBox(2, 2, 2).Generate(), mesh.DefaultTolerance)

	assert.Equal(t, 24, result.VertexCount)
	assert.Equal(t, 8, result.LogicalVertices)
	assert.Equal(t, 12, result.TriangleCount)
	assert.Equal(t, 30, result.EdgeCount)
	assert.InDelta(t, 24.0, result.SurfaceArea, 1e-9)
	assert.InDelta(t, 2.0, result.MinEdgeLength, 1e-9)
	assert.InDelta(t, 2*1.4142135623730951, result.MaxEdgeLength, 1e-9)
	assert.Equal(t, geometry.NewVector3(2, 2, 2), result.Dimensions)
}

func TestLongestAndShortestEdges(t *testing.T) {
	result := AnalyzeMesh(primitive.NewPlane(3, 4).Generate(), mesh.DefaultTolerance)

	longest := FindLongestEdges(result, 1)
	require.Len(t, longest, 1)
	assert.InDelta(t, 5.0, longest[0].Length, 1e-9)

	shortest := FindShortestEdges(result, 10)
	require.Len(t, shortest, 5)
	assert.InDelta(t, 3.0, shortest[0].Length, 1e-9)

	assert.Len(t, FindEdgesByLength(result, 3.5, 4.5), 2)
}

func TestCoincidenceClustersMatchGroupVertex(t *testing.T) {
	m := primitive.NewSphere(1, 8, 4).Generate()

	clusters := CoincidenceClusters(m, mesh.DefaultTolerance)
	covered := 0
	for _, cluster := range clusters {
		covered += len(cluster)
		assert.Equal(t, mesh.GroupVertex(m, cluster[0], mesh.DefaultTolerance), cluster)
	}
	assert.Equal(t, m.VertexCount(), covered)
	// 8 columns per ring on 3 rings plus the two poles
	assert.Len(t, clusters, 8*3+2)
}

func TestFindNearestVertex(t *testing.T) {
	m := primitive.NewPlane(2, 2).Generate()

	index, distance := FindNearestVertex(m, geometry.NewVector3(0.9, 0.9, 0))
	assert.Equal(t, geometry.NewVector3(1, 1, 0), m.Position(index))
	assert.InDelta(t, 0.1414213562, distance, 1e-9)

	empty := mesh.New("empty", nil, nil)
	index, _ = FindNearestVertex(empty, geometry.Vector3{})
	assert.Equal(t, -1, index)
}
