package main

import (
	"fmt"

	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about every object in a file",
	Long:  "Show vertex, logical vertex, triangle and edge counts together with surface area, bounds and edge statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	s, err := scene.Open(cmd.Context(), filename)
	if err != nil {
		return err
	}

	fmt.Println("Mesh Information")
	fmt.Println("================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Objects: %d\n", len(s.Objects))

	for _, o := range s.Objects {
		m := o.Mesh()
		if m == nil {
			continue
		}
		result := analysis.AnalyzeMesh(m, tolerance)

		fmt.Printf("\nObject: %s\n", o.Name)
		if o.Shape != nil {
			fmt.Printf("  Primitive: %s (resolution %d)\n", o.Shape.Kind(), o.Shape.Resolution())
		}
		if !o.Visible {
			fmt.Println("  Hidden")
		}

		fmt.Println("  Statistics:")
		fmt.Printf("    Vertices: %d (%d logical)\n", result.VertexCount, result.LogicalVertices)
		fmt.Printf("    Triangles: %d\n", result.TriangleCount)
		fmt.Printf("    Edges: %d\n", result.EdgeCount)
		fmt.Printf("    Surface Area: %.6f square units\n", result.SurfaceArea)

		fmt.Println("  Bounding Box (local):")
		fmt.Printf("    Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("    Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("    Size: %s\n", analysis.FormatVector(result.Dimensions))
		fmt.Printf("  Position: %s\n", analysis.FormatVector(o.Transform.Position))

		fmt.Println("  Edge Lengths:")
		fmt.Printf("    Minimum: %.6f units\n", result.MinEdgeLength)
		fmt.Printf("    Maximum: %.6f units\n", result.MaxEdgeLength)
		fmt.Printf("    Average: %.6f units\n", result.AvgEdgeLength)
	}
	return nil
}
