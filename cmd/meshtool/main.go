package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philipparndt/meshedit/internal/scene"
	"github.com/philipparndt/meshedit/pkg/mesh"
	"github.com/philipparndt/meshedit/version"
	"github.com/spf13/cobra"
)

var (
	objectName string
	tolerance  float64
)

var rootCmd = &cobra.Command{
	Use:   "meshtool",
	Short: "Headless inspection and editing of meshes",
	Long: `meshtool inspects and edits STL, OpenSCAD and meshedit scene files without
opening a window. Vertices and edges are addressed by index; edits move every
coincident vertex or edge along with the addressed one, exactly as dragging a
handle in the editor does.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&objectName, "object", "o", "", "Name of the scene object to use (default: first object)")
	rootCmd.PersistentFlags().Float64Var(&tolerance, "tolerance", mesh.DefaultTolerance, "Coincidence tolerance for grouping vertices")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openObject loads a file and picks the object named by --object
func openObject(ctx context.Context, path string) (*scene.Scene, *scene.Object, error) {
	s, err := scene.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	if len(s.Objects) == 0 {
		return nil, nil, fmt.Errorf("%s contains no objects", path)
	}
	if objectName == "" {
		return s, s.Objects[0], nil
	}
	o, ok := s.Find(objectName)
	if !ok {
		return nil, nil, fmt.Errorf("object %q not found in %s", objectName, path)
	}
	return s, o, nil
}
