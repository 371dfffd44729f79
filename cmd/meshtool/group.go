package main

import (
	"errors"
	"fmt"

	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/analysis"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	groupVertex int
	groupEdge   int
)

var groupCmd = &cobra.Command{
	Use:   "group [file]",
	Short: "Show which vertices or edges move together with a handle",
	Long: `Print the coincidence group of a vertex (--vertex) or an edge slot (--edge):
everything a drag of that handle in the editor would move.`,
	Args: cobra.ExactArgs(1),
	RunE: runGroup,
}

func init() {
	rootCmd.AddCommand(groupCmd)

	groupCmd.Flags().IntVarP(&groupVertex, "vertex", "v", -1, "Vertex index")
	groupCmd.Flags().IntVarP(&groupEdge, "edge", "e", -1, "Edge slot (see the edges command)")
	groupCmd.MarkFlagsMutuallyExclusive("vertex", "edge")
	groupCmd.MarkFlagsOneRequired("vertex", "edge")
}

// handleFlags turns the --vertex/--edge pair into an edit mode and handle
func handleFlags(vertex, edge int) (edit.Mode, edit.ElementKind, int) {
	if vertex >= 0 {
		return edit.ModeVertex, edit.ElementVertex, vertex
	}
	return edit.ModeEdge, edit.ElementEdge, edge
}

// startSession opens a drag session on a handle of o the way the editor
// does when a handle is pressed
func startSession(o *scene.Object, mode edit.Mode, kind edit.ElementKind, index int) (*edit.Engine, error) {
	engine := edit.NewEngine(edit.WithTolerance(tolerance))
	engine.SelectTarget(o)
	if err := engine.EnterEditMode(mode); err != nil {
		return nil, err
	}

	m := o.Mesh()
	var anchor geometry.Vector3
	switch kind {
	case edit.ElementVertex:
		if index < 0 || index >= m.VertexCount() {
			return nil, fmt.Errorf("vertex %d out of range (0-%d)", index, m.VertexCount()-1)
		}
		anchor = m.Position(index)
	case edit.ElementEdge:
		edges := engine.Edges()
		if index < 0 || index >= len(edges) {
			return nil, fmt.Errorf("edge %d out of range (0-%d)", index, len(edges)-1)
		}
		anchor = m.Position(edges[index].A())
	}

	if !engine.OnHandleInteractionStart(kind, index, o.WorldMatrix().TransformPoint(anchor)) {
		return nil, errors.New("could not start an edit on that handle")
	}
	return engine, nil
}

func runGroup(cmd *cobra.Command, args []string) error {
	_, o, err := openObject(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if o.Mesh() == nil {
		return fmt.Errorf("object %q has no mesh", o.Name)
	}

	mode, kind, index := handleFlags(groupVertex, groupEdge)
	engine, err := startSession(o, mode, kind, index)
	if err != nil {
		return err
	}
	defer engine.OnInteractionEnd()

	m := o.Mesh()
	sel := engine.Selection()

	switch kind {
	case edit.ElementVertex:
		fmt.Printf("Vertex %d of %s at %s\n", index, o.Name, analysis.FormatVector(m.Position(index)))
		fmt.Printf("Coincident vertices (tolerance %g): %d\n", tolerance, len(sel.Vertices))
		for _, v := range sel.Vertices {
			fmt.Printf("  %-6d %s\n", v, analysis.FormatVector(m.Position(v)))
		}

	case edit.ElementEdge:
		edges := engine.Edges()
		e := edges[index]
		fmt.Printf("Edge %d of %s: %s -> %s\n", index, o.Name,
			analysis.FormatVector(m.Position(e.A())), analysis.FormatVector(m.Position(e.B())))
		fmt.Printf("Coincident edges (tolerance %g): %d\n", tolerance, len(sel.Edges))
		for _, slot := range sel.Edges {
			g := edges[slot]
			fmt.Printf("  %-6d %d-%d\n", slot, g.A(), g.B())
		}
	}
	return nil
}
