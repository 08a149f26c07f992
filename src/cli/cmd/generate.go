package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sofmeright/goaround-icons/src/config"
	"github.com/sofmeright/goaround-icons/src/generate"
	"github.com/sofmeright/goaround-icons/src/output"
)

var generateCmd = &cobra.Command{
	Use:   "generate [name...]",
	Short: "Generate SVG icons from config",
	Long: `Generate the icons listed under generate.items in the config file.

With names, only the matching items are generated. Files whose content is
already up to date are left untouched.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	items := cfg.Generate.Items
	if len(items) == 0 {
		return fmt.Errorf("no icon items configured in generate.items")
	}

	// Filter to named items if specified
	if len(args) > 0 {
		nameSet := make(map[string]bool, len(args))
		for _, n := range args {
			nameSet[n] = true
		}
		var filtered []config.IconItem
		for _, item := range items {
			if nameSet[item.Name] {
				filtered = append(filtered, item)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no matching icon items for: %v", args)
		}
		items = filtered
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	start := time.Now()
	results, err := generate.New(cfg, logger).Run(cmd.Context(), items)
	out := cmd.OutOrStdout()
	failed := output.GenerateResults(out, results, time.Since(start), output.UseColor(out))
	if err != nil {
		return fmt.Errorf("%d of %d icons failed: %w", failed, len(items), err)
	}
	return nil
}
