package cmd

import (
	"github.com/spf13/cobra"

	"github.com/curaious/linkfinder/internal/api"
	"github.com/curaious/linkfinder/internal/config"
	"github.com/curaious/linkfinder/internal/services"
	"github.com/curaious/linkfinder/internal/telemetry"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		conf := config.ReadConfig()

		shutdownTelemetry := telemetry.NewProvider(telemetry.Options{
			ServiceName: conf.OTEL_SERVICE_NAME,
			Endpoint:    conf.OTEL_EXPORTER_OTLP_ENDPOINT,
			TracesFile:  conf.TRACES_FILE,
		})
		defer shutdownTelemetry()

		s := api.New(conf, services.NewServices(conf))
		s.Start()
	},
}

// Register the "server" command
func init() {
	rootCmd.AddCommand(serverCmd)
}
