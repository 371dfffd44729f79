package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
}

func TestGenerateThenMoveVertexGroup(t *testing.T) {
	dir := t.TempDir()
	box := filepath.Join(dir, "box.yaml")
	edited := filepath.Join(dir, "edited.yaml")

	run(t, "generate", "box", "--output", box)
	run(t, "move", box, "--vertex", "0", "--by", "1,0,0", "--output", edited)

	s, err := scene.Load(edited)
	require.NoError(t, err)
	require.Len(t, s.Objects, 1)

	m := s.Objects[0].Mesh()
	moved := 0
	for i := 0; i < m.VertexCount(); i++ {
		if m.Position(i) == geometry.NewVector3(1.5, -0.5, 0.5) {
			moved++
		}
	}
	assert.Equal(t, 3, moved)
}

func TestStartSessionGroupsEdges(t *testing.T) {
	dir := t.TempDir()
	box := filepath.Join(dir, "box.stl")
	run(t, "generate", "box", "--output", box)

	_, o, err := openObject(context.Background(), box)
	require.NoError(t, err)

	engine, err := startSession(o, edit.ModeEdge, edit.ElementEdge, 0)
	require.NoError(t, err)
	defer engine.OnInteractionEnd()

	assert.Equal(t, edit.StateEdgeDragging, engine.DragState())
	// every side of a closed box is shared by exactly two triangles
	assert.Len(t, engine.Selection().Edges, 2)

	_, err = startSession(o, edit.ModeVertex, edit.ElementVertex, o.Mesh().VertexCount())
	assert.Error(t, err)
}

func TestVectorFlag(t *testing.T) {
	v, err := vectorFlag("to", []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, geometry.NewVector3(1, 2, 3), v)

	_, err = vectorFlag("to", []float64{1, 2})
	assert.Error(t, err)
}
