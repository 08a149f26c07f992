package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofmeright/goaround-icons/src/icons"
	"github.com/sofmeright/goaround-icons/src/output"
)

var (
	ctFormat string
	ctOutput string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the icon catalog or export it as a legend",
	Long: `Without --format, print the icon catalog and the codes mapped to each icon.

With --format json|yaml|toml, export the catalog and both indexes for hosts
that draw a legend.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&ctFormat, "format", "f", "", "export format: json, yaml, toml")
	catalogCmd.Flags().StringVarP(&ctOutput, "output", "o", "", "export file path (default: stdout)")

	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	if ctFormat == "" {
		if ctOutput != "" {
			return fmt.Errorf("--output requires --format")
		}
		out := cmd.OutOrStdout()
		output.CatalogTable(out, output.UseColor(out))
		return nil
	}

	format, err := icons.ParseFormat(ctFormat)
	if err != nil {
		return err
	}

	if ctOutput == "" {
		return icons.Export(cmd.OutOrStdout(), format)
	}

	f, err := os.Create(ctOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", ctOutput, err)
	}
	if err := icons.Export(f, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", ctOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  legend → %s\n", ctOutput)
	return nil
}
