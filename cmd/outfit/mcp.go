package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/transport/mcpsrv"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/srv"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the advisor as MCP tools over stdio",
	Long:  `Exposes weather, outfit, safety and preference tools to MCP clients. Logs go to stderr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		app := newApp(ctx)
		defer srv.ShutdownServices(ctx, app.cleanup)

		return mcpsrv.NewServer(app.advisor, os.Stdin, os.Stdout).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
