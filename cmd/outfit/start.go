package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Outfit Advisor services",
	Long:  `Starts every enabled transport (CLI, Telegram, HTTP API) on top of one shared advisor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting outfit advisor")

		services := NewServices(ctx, stop)

		srv.StartServices(ctx, services)

		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("outfit advisor has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
