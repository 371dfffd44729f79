package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/meshedit/internal/app"
	"github.com/philipparndt/meshedit/internal/config"
	"github.com/philipparndt/meshedit/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	flags      config.Flags
)

var rootCmd = &cobra.Command{
	Use:   "meshedit [file]",
	Short: "Interactive vertex and edge editor for meshes",
	Long: `meshedit opens STL, OpenSCAD or meshedit scene files and lets you drag
vertices and edges of the selected object. Without a file it starts with a
single primitive.`,
	Version: version.GetFullVersion(),
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}
		cfg.Resolve(flags)

		opts := app.Options{Config: cfg}
		if len(args) == 1 {
			opts.File = args[0]
		}
		return app.Run(opts)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "meshedit.yaml", "Path to the config file")
	rootCmd.Flags().IntVar(&flags.Width, "width", 0, "Window width")
	rootCmd.Flags().IntVar(&flags.Height, "height", 0, "Window height")
	rootCmd.Flags().Float64Var(&flags.Tolerance, "tolerance", 0, "Coincidence tolerance for grouping vertices")
	rootCmd.Flags().StringVarP(&flags.Primitive, "primitive", "p", "", "Primitive to start with when no file is given (box, plane, cylinder, sphere)")
	rootCmd.Flags().IntVarP(&flags.Segments, "segments", "s", 0, "Segment count of round primitives")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
