package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/goaround-icons/src/output"
)

var resolveCategory string

var resolveCmd = &cobra.Command{
	Use:   "resolve [type]",
	Short: "Show which icon an aircraft resolves to",
	Long: `Resolve a type designator and/or emitter category to a catalog icon.

The type designator wins when known; otherwise the category is used;
otherwise the default icon.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var typeCode string
		if len(args) == 1 {
			typeCode = args[0]
		}
		out := cmd.OutOrStdout()
		output.Resolution(out, typeCode, resolveCategory, output.UseColor(out))
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveCategory, "category", "c", "", "ICAO emitter category (e.g. A3)")

	rootCmd.AddCommand(resolveCmd)
}
