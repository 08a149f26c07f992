package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sofmeright/goaround-icons/src/server"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve icons over HTTP",
	Long: `Serve rendered icons, the catalog legend and a health probe.

  GET /icons/svg?type=B738&category=A3&color=%23ff0000&rotation=45
  GET /icons/{type}.svg
  GET /api/icons
  GET /api/health`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveListen != "" {
			cfg.Server.Listen = serveListen
		}

		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return server.New(cfg, logger).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "listen address (default: server.listen)")

	rootCmd.AddCommand(serveCmd)
}
