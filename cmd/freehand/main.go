// Command freehand renders hand-drawn-looking strokes from a TOML scene
// description to a PNG image.
package main

import (
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "freehand",
		Short:        "freehand renders sketchy, hand-drawn strokes",
		Long:         `freehand reads a TOML scene of geometric primitives and a stroke style, synthesizes wobbly variable-width outlines for each shape, and writes the filled result as a PNG.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("freehand %s (%s)\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd(&verbose))

	return root.Execute()
}

func newRenderCmd(verbose *bool) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Render a scene file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if *verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})

			scene, err := loadScene(args[0])
			if err != nil {
				return err
			}
			logger.Info("scene loaded", "path", args[0], "shapes", len(scene.Shape))

			img, err := renderScene(scene, logger)
			if err != nil {
				return err
			}
			if err := savePNG(output, img); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("rendered", "output", output, "width", scene.Width, "height", scene.Height)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "out.png", "output PNG file")
	return cmd
}
