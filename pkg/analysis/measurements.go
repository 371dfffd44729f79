package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
)

// EdgeInfo contains information about a derived edge of a mesh
type EdgeInfo struct {
	Slot   int
	Edge   mesh.Edge
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox     geometry.BoundingBox
	Dimensions      geometry.Vector3
	SurfaceArea     float64
	VertexCount     int
	LogicalVertices int
	TriangleCount   int
	EdgeCount       int
	MinEdgeLength   float64
	MaxEdgeLength   float64
	AvgEdgeLength   float64
	AllEdges        []EdgeInfo
}

// AnalyzeMesh measures a mesh. Edges are the deduplicated index edges the
// editor shows as handles; LogicalVertices counts coincidence clusters.
func AnalyzeMesh(m *mesh.Mesh, tolerance float64) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   m.BoundingBox(),
		SurfaceArea:   m.SurfaceArea(),
		VertexCount:   m.VertexCount(),
		TriangleCount: m.TriangleCount(),
		AllEdges:      make([]EdgeInfo, 0),
	}
	result.Dimensions = result.BoundingBox.Size()
	result.LogicalVertices = len(CoincidenceClusters(m, tolerance))

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	n := m.VertexCount()
	for slot, edge := range mesh.DeriveEdges(m.Indices()) {
		if edge[0] < 0 || edge[1] >= n {
			continue
		}
		start, end := m.Position(edge[0]), m.Position(edge[1])
		length := start.Distance(end)

		result.AllEdges = append(result.AllEdges, EdgeInfo{
			Slot:   slot,
			Edge:   edge,
			Start:  start,
			End:    end,
			Length: length,
		})

		totalLength += length
		minLength = math.Min(minLength, length)
		maxLength = math.Max(maxLength, length)
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	return edges[:count]
}

// FindNearestVertex returns the index of the vertex nearest to point and its
// distance, or -1 for an empty mesh
func FindNearestVertex(buf mesh.PositionReader, point geometry.Vector3) (int, float64) {
	nearest := -1
	minDistance := math.MaxFloat64

	for i := 0; i < buf.VertexCount(); i++ {
		distance := point.Distance(buf.Position(i))
		if distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}

	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
