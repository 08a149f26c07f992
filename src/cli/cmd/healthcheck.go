package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofmeright/goaround-icons/src/server"
)

var healthURL string

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Probe a running icon server",
	Long: `Query /api/health on a running server and exit non-zero unless it reports healthy.

The port comes from HEALTHCHECK_PORT, falling back to server.listen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url := healthURL
		if url == "" {
			url = cfg.Server.HealthURL()
		}

		health, err := server.CheckHealth(cmd.Context(), url)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Service is healthy: %s\n", health.Message)
		return nil
	},
}

func init() {
	healthcheckCmd.Flags().StringVar(&healthURL, "url", "", "health endpoint URL (overrides HEALTHCHECK_PORT)")

	rootCmd.AddCommand(healthcheckCmd)
}
