package analysis

import (
	"math"
	"slices"

	"github.com/philipparndt/meshedit/pkg/mesh"
)

type cellKey [3]int64

// CoincidenceClusters partitions the vertices into groups of coincident
// points. Vertices are visited in ascending order; each unassigned vertex
// starts a cluster holding every unassigned vertex closer than tolerance to
// it. Candidates are looked up in a hash grid with cells one tolerance wide,
// so the result matches mesh.GroupVertex without scanning the whole buffer
// per vertex.
func CoincidenceClusters(buf mesh.PositionReader, tolerance float64) [][]int {
	n := buf.VertexCount()
	if n == 0 || tolerance <= 0 {
		return nil
	}

	cellOf := func(i int) cellKey {
		p := buf.Position(i)
		return cellKey{
			int64(math.Floor(p.X / tolerance)),
			int64(math.Floor(p.Y / tolerance)),
			int64(math.Floor(p.Z / tolerance)),
		}
	}

	grid := make(map[cellKey][]int, n)
	for i := 0; i < n; i++ {
		key := cellOf(i)
		grid[key] = append(grid[key], i)
	}

	assigned := make([]bool, n)
	var clusters [][]int
	for i := 0; i < n; i++ {
		if assigned[i] {
			continue
		}
		origin := buf.Position(i)
		center := cellOf(i)
		cluster := []int{i}
		assigned[i] = true

		for dx := int64(-1); dx <= 1; dx++ {
			for dy := int64(-1); dy <= 1; dy++ {
				for dz := int64(-1); dz <= 1; dz++ {
					for _, j := range grid[cellKey{center[0] + dx, center[1] + dy, center[2] + dz}] {
						if !assigned[j] && buf.Position(j).Near(origin, tolerance) {
							assigned[j] = true
							cluster = append(cluster, j)
						}
					}
				}
			}
		}

		slices.Sort(cluster)
		clusters = append(clusters, cluster)
	}
	return clusters
}
