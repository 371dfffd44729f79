package edit

import (
	"testing"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertNear(t *testing.T, expected, actual geometry.Vector3) {
	t.Helper()
	assert.InDelta(t, 0, expected.Distance(actual), 1e-9, "expected %v, got %v", expected, actual)
}

func TestResolveDragPointIdentity(t *testing.T) {
	ray := geometry.NewRay(vec(3, 4, 10), vec(0, 0, -1))

	local, ok := ResolveDragPoint(vec(0, 0, -1), ray, vec(0, 0, 2), geometry.Identity())

	require.True(t, ok)
	assertNear(t, vec(3, 4, 2), local)
}

func TestResolveDragPointToLocalSpace(t *testing.T) {
	world := geometry.Compose(vec(10, 0, 0), vec(0, 0, 0), vec(2, 2, 2))
	ray := geometry.NewRay(vec(12, 2, 10), vec(0, 0, -1))

	local, ok := ResolveDragPoint(vec(0, 0, -1), ray, vec(10, 0, 0), world)

	require.True(t, ok)
	assertNear(t, vec(1, 1, 0), local)
}

func TestResolveDragPointMisses(t *testing.T) {
	// ray runs inside a plane it never crosses
	parallel := geometry.NewRay(vec(0, 0, 10), vec(1, 0, 0))
	_, ok := ResolveDragPoint(vec(0, 0, -1), parallel, vec(0, 0, 0), geometry.Identity())
	assert.False(t, ok)

	// plane behind the ray origin
	away := geometry.NewRay(vec(0, 0, 10), vec(0, 0, 1))
	_, ok = ResolveDragPoint(vec(0, 0, -1), away, vec(0, 0, 0), geometry.Identity())
	assert.False(t, ok)

	// zero scale cannot be inverted
	flat := geometry.Scaling(vec(1, 1, 0))
	ray := geometry.NewRay(vec(0, 0, 10), vec(0, 0, -1))
	_, ok = ResolveDragPoint(vec(0, 0, -1), ray, vec(0, 0, 0), flat)
	assert.False(t, ok)

	_, ok = ResolveDragPoint(geometry.Vector3{}, ray, vec(0, 0, 0), geometry.Identity())
	assert.False(t, ok)
}

func TestPointerMovedDragsInLocalSpace(t *testing.T) {
	m := quadMesh()
	node := newTestNode(m)
	node.world = geometry.Compose(vec(10, 0, 0), vec(0, 0, 0), vec(2, 2, 2))
	e := editing(t, node, ModeVertex)

	anchor := node.world.TransformPoint(m.Position(0))
	require.True(t, e.OnHandleInteractionStart(ElementVertex, 0, anchor))

	cam := testCamera{position: vec(10, 0, 10), forward: vec(0, 0, -1)}
	require.True(t, e.OnPointerMoved(cam, geometry.NewRay(vec(12, 2, 10), vec(0, 0, -1))))

	assertNear(t, vec(1, 1, 0), m.Position(0))
	worldAnchor, ok := e.DragAnchor()
	require.True(t, ok)
	assertNear(t, vec(12, 2, 0), worldAnchor)

	// a ray that misses leaves the buffer alone
	assert.False(t, e.OnPointerMoved(cam, geometry.NewRay(vec(12, 2, 10), vec(0, 0, 1))))
	assertNear(t, vec(1, 1, 0), m.Position(0))
}

func TestPointerMovedFallsBackToCameraPosition(t *testing.T) {
	m := quadMesh()
	e := editing(t, newTestNode(m), ModeVertex)
	require.True(t, e.OnHandleInteractionStart(ElementVertex, 2, m.Position(2)))

	// no forward vector: the plane faces from the camera to the anchor
	cam := testCamera{position: vec(1, 1, 5)}
	require.True(t, e.OnPointerMoved(cam, geometry.NewRay(vec(3, 1, 5), vec(0, 0, -1))))

	assertNear(t, vec(3, 1, 0), m.Position(2))
}

func TestModeAllows(t *testing.T) {
	assert.True(t, ModeVertex.Allows(ElementVertex))
	assert.False(t, ModeVertex.Allows(ElementEdge))
	assert.True(t, ModeEdge.Allows(ElementEdge))
	for _, m := range []Mode{ModeNone, ModeFace, ModeNormal} {
		assert.False(t, m.Allows(ElementVertex), m.String())
		assert.False(t, m.Allows(ElementEdge), m.String())
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Edge")
	require.NoError(t, err)
	assert.Equal(t, ModeEdge, m)

	_, err = ParseMode("object")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
