package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/meshedit/pkg/analysis"
	"github.com/philipparndt/meshedit/pkg/edit"
	"github.com/philipparndt/meshedit/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	moveVertex int
	moveEdge   int
	moveTo     []float64
	moveBy     []float64
	moveOutput string
)

var moveCmd = &cobra.Command{
	Use:   "move [file]",
	Short: "Move a vertex or edge together with everything coincident",
	Long: `Move a vertex (--vertex) or an edge slot (--edge) and write the result.
--to gives the new local position of the vertex, or of the edge's first
endpoint; --by gives an offset instead. The output format follows the
extension of --output: .yaml keeps the scene, .stl exports the visible objects.`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)

	moveCmd.Flags().IntVarP(&moveVertex, "vertex", "v", -1, "Vertex index")
	moveCmd.Flags().IntVarP(&moveEdge, "edge", "e", -1, "Edge slot (see the edges command)")
	moveCmd.Flags().Float64SliceVar(&moveTo, "to", nil, "Target position x,y,z in object space")
	moveCmd.Flags().Float64SliceVar(&moveBy, "by", nil, "Offset x,y,z in object space")
	moveCmd.Flags().StringVar(&moveOutput, "output", "", "Output file (default: <file>-edited.stl)")

	moveCmd.MarkFlagsMutuallyExclusive("vertex", "edge")
	moveCmd.MarkFlagsOneRequired("vertex", "edge")
	moveCmd.MarkFlagsMutuallyExclusive("to", "by")
	moveCmd.MarkFlagsOneRequired("to", "by")
}

func vectorFlag(name string, values []float64) (geometry.Vector3, error) {
	if len(values) != 3 {
		return geometry.Vector3{}, fmt.Errorf("--%s needs three comma separated values, got %d", name, len(values))
	}
	return geometry.NewVector3(values[0], values[1], values[2]), nil
}

func runMove(cmd *cobra.Command, args []string) error {
	filename := args[0]
	s, o, err := openObject(cmd.Context(), filename)
	if err != nil {
		return err
	}
	if o.Mesh() == nil {
		return fmt.Errorf("object %q has no mesh", o.Name)
	}

	mode, kind, index := handleFlags(moveVertex, moveEdge)
	engine, err := startSession(o, mode, kind, index)
	if err != nil {
		return err
	}

	m := o.Mesh()
	var start geometry.Vector3
	if kind == edit.ElementEdge {
		start = m.Position(engine.Edges()[index].A())
	} else {
		start = m.Position(index)
	}

	var target geometry.Vector3
	if moveTo != nil {
		target, err = vectorFlag("to", moveTo)
	} else {
		var offset geometry.Vector3
		offset, err = vectorFlag("by", moveBy)
		target = start.Add(offset)
	}
	if err != nil {
		return err
	}

	moved := len(engine.Selection().Vertices)
	if kind == edit.ElementEdge {
		moved = len(engine.Selection().Edges)
	}
	if !engine.ApplyDragTarget(target) {
		return fmt.Errorf("could not move %s %d", kind, index)
	}
	engine.OnInteractionEnd()

	output := moveOutput
	if output == "" {
		output = strings.TrimSuffix(filename, filepath.Ext(filename)) + "-edited.stl"
	}
	if err := s.WriteFile(output); err != nil {
		return err
	}

	fmt.Printf("Moved %s %d of %s (%d coincident) from %s to %s\n",
		kind, index, o.Name, moved, analysis.FormatVector(start), analysis.FormatVector(target))
	fmt.Printf("Saved: %s\n", output)
	return nil
}
