package main

import (
	"github.com/aretw0/numeral/internal/cli"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Starts the calculator as a JSON API over HTTP.

Endpoints: POST/GET /evaluate, GET /health, GET /info and, unless disabled
in the configuration, GET /metrics in Prometheus format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")

		ctx, stop := cli.NewSignalContext(cmd.Context())
		defer stop()

		return cli.RunServe(ctx, cli.ServeOptions{
			Options: commonOptions(cmd),
			Port:    port,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (overrides configuration)")
}
