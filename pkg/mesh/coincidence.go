package mesh

import (
	"github.com/philipparndt/meshedit/pkg/geometry"
)

// DefaultTolerance is the distance under which two vertices count as the same point
const DefaultTolerance = 1e-4

// PositionReader gives indexed read access to a vertex position buffer
type PositionReader interface {
	VertexCount() int
	Position(i int) geometry.Vector3
}

// GroupVertex returns, in ascending order, every vertex closer than tolerance
// to the clicked vertex. The test is a direct distance to the clicked
// position, so chains of nearby vertices are not merged. Returns nil when
// clicked is out of range.
func GroupVertex(buf PositionReader, clicked int, tolerance float64) []int {
	n := buf.VertexCount()
	if clicked < 0 || clicked >= n {
		return nil
	}

	origin := buf.Position(clicked)
	var group []int
	for j := 0; j < n; j++ {
		if j == clicked || buf.Position(j).Near(origin, tolerance) {
			group = append(group, j)
		}
	}
	return group
}

// EdgeGroup is the set of triangle sides that move together with a clicked edge
type EdgeGroup struct {
	// Pairs holds vertex index pairs, the clicked pair first
	Pairs [][2]int
	// Positions holds two endpoint positions per pair, in pair order
	Positions []geometry.Vector3
}

// Len returns the number of pairs in the group
func (g EdgeGroup) Len() int {
	return len(g.Pairs)
}

// Slots maps the group's pairs to their index in a derived edge list.
// Pairs that are not in the list are skipped.
func (g EdgeGroup) Slots(edges []Edge) []int {
	lookup := make(map[Edge]int, len(edges))
	for i, e := range edges {
		if _, ok := lookup[e]; !ok {
			lookup[e] = i
		}
	}

	var slots []int
	added := make(map[int]bool)
	for _, p := range g.Pairs {
		slot, ok := lookup[NewEdge(p[0], p[1])]
		if !ok || added[slot] {
			continue
		}
		added[slot] = true
		slots = append(slots, slot)
	}
	return slots
}

// GroupEdge collects every triangle side that shares the clicked edge's
// vertex indices, or whose endpoints sit on the clicked edge's endpoint
// positions in either order. Sides are scanned in triangle order and matched
// sides are deduplicated by canonical pair. Sides referencing vertices outside
// the buffer are skipped.
func GroupEdge(buf PositionReader, indices []int, edge [2]int, endpoints [2]geometry.Vector3, tolerance float64) EdgeGroup {
	group := EdgeGroup{
		Pairs:     [][2]int{edge},
		Positions: []geometry.Vector3{endpoints[0], endpoints[1]},
	}
	seen := map[Edge]bool{NewEdge(edge[0], edge[1]): true}

	n := buf.VertexCount()
	member := func(v int) bool { return v == edge[0] || v == edge[1] }

	for t := 0; t+2 < len(indices); t += 3 {
		a, b, c := indices[t], indices[t+1], indices[t+2]
		for _, side := range [3][2]int{{a, b}, {b, c}, {c, a}} {
			v1, v2 := side[0], side[1]
			if v1 == v2 || v1 < 0 || v2 < 0 || v1 >= n || v2 >= n {
				continue
			}
			key := NewEdge(v1, v2)
			if seen[key] {
				continue
			}

			p1, p2 := buf.Position(v1), buf.Position(v2)
			match := member(v1) && member(v2)
			if !match {
				forward := p1.Near(endpoints[0], tolerance) && p2.Near(endpoints[1], tolerance)
				reverse := p1.Near(endpoints[1], tolerance) && p2.Near(endpoints[0], tolerance)
				match = forward || reverse
			}
			if !match {
				continue
			}

			seen[key] = true
			group.Pairs = append(group.Pairs, [2]int{v1, v2})
			group.Positions = append(group.Positions, p1, p2)
		}
	}
	return group
}
