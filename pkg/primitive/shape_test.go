package primitive

import (
	"testing"

	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMatchesN(t *testing.T) {
	shapes := []Shape{
		NewBox(1, 2, 3),
		NewPlane(2, 1),
		NewCylinder(0.5, 1, 2, 8),
		NewSphere(1, 12, 6),
	}

	for _, s := range shapes {
		t.Run(s.Kind().String(), func(t *testing.T) {
			nv, ni := s.N()
			m := s.Generate()

			assert.Equal(t, nv, m.VertexCount())
			assert.Len(t, m.Indices(), ni)
			for _, idx := range m.Indices() {
				assert.True(t, idx >= 0 && idx < nv, "index %d out of range", idx)
			}
		})
	}
}

func TestBoxCornersAreTripled(t *testing.T) {
	m := NewBox(1, 1, 1).Generate()

	require.Equal(t, 24, m.VertexCount())
	for i := 0; i < m.VertexCount(); i++ {
		group := mesh.GroupVertex(m, i, mesh.DefaultTolerance)
		assert.Len(t, group, 3, "corner of vertex %d", i)
	}
	assert.Len(t, mesh.DeriveEdges(m.Indices()), 30)
}

func TestBoxFacesPointOutward(t *testing.T) {
	m := NewBox(2, 2, 2).Generate()

	for tri := 0; tri < m.TriangleCount(); tri++ {
		triangle := m.Triangle(tri)
		assert.Greater(t, triangle.Normal.Dot(triangle.Center()), 0.0, "triangle %d faces inward", tri)
	}
}

func TestPlaneFacesPositiveZ(t *testing.T) {
	m := NewPlane(1, 1).Generate()

	for i, n := range m.Normals() {
		assert.Equal(t, geometry.NewVector3(0, 0, 1), n, "normal %d", i)
	}
	assert.Len(t, mesh.DeriveEdges(m.Indices()), 5)
}

func TestCylinderSeamIsDuplicated(t *testing.T) {
	c := NewCylinder(1, 1, 2, 6)
	m := c.Generate()

	// first and last torso vertices share a position
	assert.InDelta(t, 0, m.Position(0).Distance(m.Position(6)), 1e-9)
	assert.Equal(t, mesh.NormalsSmooth, m.NormalMode)
}

func TestSphereResolution(t *testing.T) {
	s, err := NewSphere(1, 8, 4).WithResolution(12)
	require.NoError(t, err)

	sphere := s.(Sphere)
	assert.Equal(t, 12, sphere.WidthSegments)
	assert.Equal(t, 6, sphere.HeightSegments)
	assert.Equal(t, 12, s.Resolution())

	s, err = NewSphere(1, 8, 4).WithResolution(3)
	require.NoError(t, err)
	assert.Equal(t, 2, s.(Sphere).HeightSegments)
}

func TestSpherePointsOnRadius(t *testing.T) {
	m := NewSphere(2, 10, 5).Generate()

	for i, p := range m.Positions() {
		assert.InDelta(t, 2.0, p.Length(), 1e-9, "vertex %d", i)
	}
}

func TestCylinderResolution(t *testing.T) {
	s, err := NewCylinder(1, 1, 1, 8).WithResolution(16)
	require.NoError(t, err)
	assert.Equal(t, 16, s.Resolution())

	nv, _ := s.N()
	assert.Equal(t, nv, s.Generate().VertexCount())
}

func TestInvalidResolution(t *testing.T) {
	_, err := NewCylinder(1, 1, 1, 8).WithResolution(2)
	assert.ErrorIs(t, err, ErrInvalidResolution)

	_, err = NewSphere(1, 8, 4).WithResolution(0)
	assert.ErrorIs(t, err, ErrInvalidResolution)
}

func TestResolutionNotSupported(t *testing.T) {
	_, err := NewBox(1, 1, 1).WithResolution(8)
	assert.ErrorIs(t, err, ErrResolutionNotSupported)

	_, err = NewPlane(1, 1).WithResolution(8)
	assert.ErrorIs(t, err, ErrResolutionNotSupported)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	parsed, err := ParseKind("Sphere")
	require.NoError(t, err)
	assert.Equal(t, KindSphere, parsed)

	_, err = ParseKind("torus")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSpecKeepsParameters(t *testing.T) {
	original := NewCylinder(0.25, 0.75, 3, 9)

	restored, err := FromSpec(ToSpec(original))
	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestFromSpecDefaults(t *testing.T) {
	s, err := FromSpec(Spec{Kind: "sphere", Segments: 10})
	require.NoError(t, err)

	sphere := s.(Sphere)
	assert.Equal(t, 0.5, sphere.Radius)
	assert.Equal(t, 10, sphere.WidthSegments)
	assert.Equal(t, 5, sphere.HeightSegments)

	_, err = FromSpec(Spec{Kind: "cylinder", Segments: 1})
	assert.ErrorIs(t, err, ErrInvalidResolution)
}
