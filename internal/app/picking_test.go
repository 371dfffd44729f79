package app

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/stretchr/testify/assert"
)

// topDown projects onto the XY plane at 100 pixels per unit
func topDown(p geometry.Vector3) (rl.Vector2, bool) {
	return rl.Vector2{X: float32(p.X * 100), Y: float32(-p.Y * 100)}, true
}

// quad is two triangles with duplicated shared corners
func quad() *mesh.Mesh {
	return mesh.New("quad", []geometry.Vector3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}, []int{0, 1, 2, 3, 4, 5})
}

func TestPickVertexPrefersLowestCoincidentIndex(t *testing.T) {
	m := quad()

	assert.Equal(t, 0, pickVertex(m, geometry.Identity(), topDown, rl.Vector2{X: 3, Y: -2}, 10))
	assert.Equal(t, 2, pickVertex(m, geometry.Identity(), topDown, rl.Vector2{X: 98, Y: -97}, 10))
	assert.Equal(t, -1, pickVertex(m, geometry.Identity(), topDown, rl.Vector2{X: 50, Y: -50}, 10))
}

func TestPickVertexUsesWorldMatrix(t *testing.T) {
	world := geometry.Translation(geometry.NewVector3(2, 0, 0))

	assert.Equal(t, 1, pickVertex(quad(), world, topDown, rl.Vector2{X: 300, Y: 0}, 10))
}

func TestPickEdge(t *testing.T) {
	m := quad()
	edges := mesh.DeriveEdges(m.Indices())

	// straight down onto the bottom side
	ray := geometry.NewRay(geometry.NewVector3(0.5, 0.01, 5), geometry.NewVector3(0, 0, -1))
	slot := pickEdge(m, geometry.Identity(), edges, ray, 0.05)
	if assert.GreaterOrEqual(t, slot, 0) {
		assert.Equal(t, mesh.NewEdge(0, 1), edges[slot])
	}

	far := geometry.NewRay(geometry.NewVector3(0.3, 0.6, 5), geometry.NewVector3(0, 0, -1))
	assert.Equal(t, -1, pickEdge(m, geometry.Identity(), edges, far, 0.05))
}

func TestRectangleSelection(t *testing.T) {
	m := quad()
	edges := mesh.DeriveEdges(m.Indices())

	// right column: x = 1, dragged from bottom-right to top-left
	rect := NewSelectionRect(rl.Vector2{X: 110, Y: 10}, rl.Vector2{X: 90, Y: -110})
	assert.Equal(t, []int{1, 2, 4}, verticesInRect(m, geometry.Identity(), topDown, rect))

	for _, slot := range edgesInRect(m, geometry.Identity(), edges, topDown, rect) {
		e := edges[slot]
		assert.Equal(t, 1.0, m.Position(e.A()).X)
		assert.Equal(t, 1.0, m.Position(e.B()).X)
	}
	assert.Len(t, edgesInRect(m, geometry.Identity(), edges, topDown, rect), 1)
}

func TestSelectionRectBounds(t *testing.T) {
	rect := NewSelectionRect(rl.Vector2{X: 50, Y: 40}, rl.Vector2{X: 10, Y: 20})

	assert.Equal(t, rl.Rectangle{X: 10, Y: 20, Width: 40, Height: 20}, rect.Bounds())
	assert.True(t, rect.Contains(rl.Vector2{X: 30, Y: 30}))
	assert.False(t, rect.Contains(rl.Vector2{X: 60, Y: 30}))
}
