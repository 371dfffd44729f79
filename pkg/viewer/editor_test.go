package viewer

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/philipparndt/meshedit/pkg/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T, m *mesh.Mesh, mode edit.Mode) (*MeshEditor, *edit.Engine) {
	t.Helper()
	test.NewTempApp(t)

	engine := edit.NewEngine()
	editor := NewMeshEditor(engine)
	engine.SelectTarget(&meshNode{mesh: m})
	require.NoError(t, engine.EnterEditMode(mode))

	cam := editor.Camera()
	cam.RotationX, cam.RotationY = 0, 0
	cam.UpdatePosition()
	editor.Resize(fyne.NewSize(800, 600))
	return editor, engine
}

func screenPos(editor *MeshEditor, p geometry.Vector3) fyne.Position {
	x, y, _ := editor.Camera().Project(p, 800, 600)
	return fyne.NewPos(float32(x), float32(y))
}

func press(editor *MeshEditor, pos fyne.Position) {
	editor.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:     desktop.MouseButtonPrimary,
	})
}

func TestEditorDragsVertexGroup(t *testing.T) {
	m := primitive.NewBox(2, 2, 2).Generate()
	editor, engine := newTestEditor(t, m, edit.ModeVertex)

	// front face corner, closest to the camera
	corner := geometry.NewVector3(-1, -1, 1)
	press(editor, screenPos(editor, corner))
	require.Equal(t, edit.StateVertexDragging, engine.DragState())
	assert.Len(t, engine.Selection().Vertices, 3)

	target := geometry.NewVector3(-1.5, -1.25, 1)
	editor.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: screenPos(editor, target)}})
	editor.DragEnd()

	assert.Equal(t, edit.StateIdle, engine.DragState())
	for _, v := range engine.Selection().Vertices {
		assert.InDelta(t, 0, m.Position(v).Distance(target), 1e-3)
	}
}

func TestEditorEdgeDragKeepsGrabPoint(t *testing.T) {
	m := primitive.NewPlane(2, 2).Generate()
	editor, engine := newTestEditor(t, m, edit.ModeEdge)

	a, b := m.Position(0), m.Position(1)
	mid := a.Add(b).Mul(0.5)
	press(editor, screenPos(editor, mid))
	require.Equal(t, edit.StateEdgeDragging, engine.DragState())

	shift := geometry.NewVector3(0, 0.5, 0)
	editor.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: screenPos(editor, mid.Add(shift))}})
	editor.MouseUp(&desktop.MouseEvent{})

	assert.InDelta(t, 0, m.Position(0).Distance(a.Add(shift)), 1e-3)
	assert.InDelta(t, 0, m.Position(1).Distance(b.Add(shift)), 1e-3)
	assert.Equal(t, edit.StateIdle, engine.DragState())
}

func TestEditorDragOnEmptySpaceOrbits(t *testing.T) {
	m := primitive.NewPlane(2, 2).Generate()
	editor, engine := newTestEditor(t, m, edit.ModeVertex)
	before := m.Positions()[0]

	press(editor, fyne.NewPos(5, 5))
	editor.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(20, 0)})

	assert.Equal(t, edit.StateIdle, engine.DragState())
	assert.InDelta(t, 0.2, editor.Camera().RotationY, 1e-6)
	assert.Equal(t, before, m.Position(0))
}
