package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sofmeright/goaround-icons/src/icons"
)

var (
	rnType      string
	rnCategory  string
	rnColor     string
	rnRotation  float64
	rnNormalize bool
	rnOutput    string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one icon as SVG",
	Long: `Render the icon for a type designator and/or emitter category.

Writes to stdout unless --output is given. Color and rotation default to the
render section of the config file.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&rnType, "type", "t", "", "aircraft type designator (e.g. B738)")
	renderCmd.Flags().StringVarP(&rnCategory, "category", "c", "", "ICAO emitter category (e.g. A3)")
	renderCmd.Flags().StringVar(&rnColor, "color", "", "fill color (default: render.color)")
	renderCmd.Flags().Float64Var(&rnRotation, "rotation", 0, "heading in degrees (default: render.rotation)")
	renderCmd.Flags().BoolVar(&rnNormalize, "normalize", false, "fold rotation into [0, 360)")
	renderCmd.Flags().StringVarP(&rnOutput, "output", "o", "", "output file path")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	rotation := cfg.Render.Rotation
	if cmd.Flags().Changed("rotation") {
		rotation = rnRotation
	}
	if rnNormalize {
		rotation = icons.NormalizeHeading(rotation)
	}

	svg, err := icons.NewRenderer(cfg.Render.Options()).Render(rnType, rnCategory, rnColor, rotation)
	if err != nil {
		return fmt.Errorf("rendering icon: %w", err)
	}

	if rnOutput == "" {
		fmt.Fprintln(cmd.OutOrStdout(), svg)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(rnOutput), 0o755); err != nil {
		return fmt.Errorf("creating icon directory: %w", err)
	}
	if err := os.WriteFile(rnOutput, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("writing icon: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  icon %s → %s\n", icons.Resolve(rnType, rnCategory).ID, rnOutput)
	return nil
}
