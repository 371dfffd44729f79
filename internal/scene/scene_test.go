package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/philipparndt/meshedit/pkg/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangleMesh() *mesh.Mesh {
	return mesh.New("tri", []geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(1, 0, 0),
		geometry.NewVector3(0, 1, 0),
	}, []int{0, 1, 2})
}

func TestGeometryIsNilSafe(t *testing.T) {
	var missing *Object
	assert.Nil(t, missing.Geometry())
	assert.Nil(t, missing.Mesh())

	empty := &Object{Name: "empty"}
	assert.Nil(t, empty.Geometry())

	o := NewMeshObject("tri", triangleMesh())
	assert.Same(t, o.Mesh(), o.Geometry())
}

func TestSetResolutionRegenerates(t *testing.T) {
	o := NewPrimitiveObject("sphere", primitive.NewSphere(1, 8, 4))
	before := o.Mesh()

	require.NoError(t, o.SetResolution(16))

	assert.NotSame(t, before, o.Mesh())
	assert.Equal(t, 16, o.Shape.Resolution())
	numVertex, numIndex := o.Shape.N()
	assert.Equal(t, numVertex, o.Mesh().VertexCount())
	assert.Len(t, o.Mesh().Indices(), numIndex)
	assert.Equal(t, "sphere", o.Mesh().Name)
}

func TestSetResolutionKeepsMeshOnError(t *testing.T) {
	sphere := NewPrimitiveObject("sphere", primitive.NewSphere(1, 8, 4))
	before := sphere.Mesh()
	assert.ErrorIs(t, sphere.SetResolution(2), primitive.ErrInvalidResolution)
	assert.Same(t, before, sphere.Mesh())

	box := NewPrimitiveObject("box", primitive.NewBox(1, 1, 1))
	assert.ErrorIs(t, box.SetResolution(8), primitive.ErrResolutionNotSupported)

	imported := NewMeshObject("tri", triangleMesh())
	assert.ErrorIs(t, imported.SetResolution(8), primitive.ErrResolutionNotSupported)
}

func TestEngineResolutionThroughObject(t *testing.T) {
	o := NewPrimitiveObject("cyl", primitive.NewCylinder(1, 1, 2, 8))
	e := edit.NewEngine()
	e.SelectTarget(o)
	require.NoError(t, e.EnterEditMode(edit.ModeVertex))

	require.NoError(t, e.SetPrimitiveResolution(12))

	assert.Len(t, e.Edges(), len(mesh.DeriveEdges(o.Mesh().Indices())))
	assert.Same(t, o.Mesh(), o.Geometry())
}

func TestWorldMatrixFollowsTransform(t *testing.T) {
	o := NewMeshObject("tri", triangleMesh())
	o.Transform.Position = geometry.NewVector3(5, 0, 0)
	o.Transform.Scale = geometry.NewVector3(2, 2, 2)

	p := o.WorldMatrix().TransformPoint(geometry.NewVector3(1, 0, 0))
	assert.InDelta(t, 7.0, p.X, 1e-12)

	bounds := o.WorldBounds()
	assert.InDelta(t, 5.0, bounds.Min.X, 1e-12)
	assert.InDelta(t, 7.0, bounds.Max.X, 1e-12)
}

func TestSceneFindAndRemove(t *testing.T) {
	s := New()
	a := NewMeshObject("a", triangleMesh())
	b := NewPrimitiveObject("b", primitive.NewBox(1, 1, 1))
	s.Add(a, b)

	found, ok := s.Find("b")
	require.True(t, ok)
	assert.Same(t, b, found)

	assert.True(t, s.Remove(a))
	assert.False(t, s.Remove(a))
	_, ok = s.Find("a")
	assert.False(t, ok)
}

func TestSceneBoundsSkipsHidden(t *testing.T) {
	s := New()
	box := NewPrimitiveObject("box", primitive.NewBox(2, 2, 2))
	far := NewPrimitiveObject("far", primitive.NewBox(1, 1, 1))
	far.Transform.Position = geometry.NewVector3(100, 0, 0)
	far.Visible = false
	s.Add(box, far)

	bounds := s.Bounds()
	assert.InDelta(t, 1.0, bounds.Max.X, 1e-12)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	box := NewPrimitiveObject("box", primitive.NewBox(2, 1, 1))
	box.Transform.Position = geometry.NewVector3(1, 2, 3)
	box.Transform.Rotation = geometry.NewVector3(0, 0.5, 0)
	for _, v := range mesh.GroupVertex(box.Mesh(), 0, mesh.DefaultTolerance) {
		box.Mesh().SetPosition(v, geometry.NewVector3(-2, -1, -1))
	}

	tri := NewMeshObject("tri", triangleMesh())
	tri.Visible = false

	s := New()
	s.Add(box, tri)
	path := filepath.Join(t.TempDir(), "scenes", "demo.yaml")
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Objects, 2)

	gotBox := loaded.Objects[0]
	assert.Equal(t, "box", gotBox.Name)
	assert.Equal(t, primitive.NewBox(2, 1, 1), gotBox.Shape)
	assert.Equal(t, box.Transform, gotBox.Transform)
	assert.Equal(t, box.Mesh().Positions(), gotBox.Mesh().Positions())
	assert.True(t, gotBox.Visible)

	gotTri := loaded.Objects[1]
	assert.Nil(t, gotTri.Shape)
	assert.False(t, gotTri.Visible)
	assert.Equal(t, []int{0, 1, 2}, gotTri.Mesh().Indices())
	assert.Equal(t, tri.Mesh().Positions(), gotTri.Mesh().Positions())
	assert.Equal(t, tri.Mesh().NormalMode, gotTri.Mesh().NormalMode)
}

func TestSavedPrimitiveStoresOnlyEditedVertices(t *testing.T) {
	plane := NewPrimitiveObject("plane", primitive.NewPlane(1, 1))
	plane.Mesh().SetPosition(3, geometry.NewVector3(1, 1, 1))

	doc := (&Scene{Objects: []*Object{plane}}).document()

	require.Len(t, doc.Objects, 1)
	assert.Empty(t, doc.Objects[0].Positions)
	assert.Equal(t, []editedVertex{{Index: 3, Position: vec3{1, 1, 1}}}, doc.Objects[0].Edited)
}

func TestLoadRejectsBadIndices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := `objects:
  - name: broken
    positions:
      - [0, 0, 0]
    indices: [0, 1, 2]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "out of range")
}

func TestLoadDefaultsScale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.yaml")
	content := `objects:
  - name: ball
    primitive:
      kind: sphere
      segments: 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	require.Len(t, s.Objects, 1)
	assert.Equal(t, geometry.NewVector3(1, 1, 1), s.Objects[0].Transform.Scale)
	assert.Equal(t, 6, s.Objects[0].Shape.Resolution())
}
