package main

import (
	"fmt"

	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/primitive"
	"github.com/spf13/cobra"
)

var (
	generateSegments int
	generateOutput   string
)

var generateCmd = &cobra.Command{
	Use:       "generate [box|plane|cylinder|sphere]",
	Short:     "Write a primitive to an STL or scene file",
	Long:      "Generate a primitive, optionally at another resolution, and save it. A .yaml output keeps it parametric.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"box", "plane", "cylinder", "sphere"},
	RunE:      runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&generateSegments, "segments", "s", 0, "Segment count of round primitives")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", "Output file (default: <kind>.stl)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	kind, err := primitive.ParseKind(args[0])
	if err != nil {
		return err
	}
	shape, err := primitive.New(kind)
	if err != nil {
		return err
	}
	if generateSegments > 0 {
		if shape, err = shape.WithResolution(generateSegments); err != nil {
			return err
		}
	}

	output := generateOutput
	if output == "" {
		output = kind.String() + ".stl"
	}

	s := scene.New()
	o := scene.NewPrimitiveObject(kind.String(), shape)
	s.Add(o)
	if err := s.WriteFile(output); err != nil {
		return err
	}

	numVertex, numIndex := shape.N()
	fmt.Printf("Generated %s: %d vertices, %d triangles\n", kind, numVertex, numIndex/3)
	fmt.Printf("Saved: %s\n", output)
	return nil
}
