package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/core"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/ui"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

var (
	debug    bool
	flushLog = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "outfit",
	Short: "Outfit Advisor: what to wear for the weather",
	Long:  `Outfit Advisor suggests clothing from live weather, your preferences and planned activities.`,
	// every subcommand logs through the context set here
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		out := os.Stdout
		if cmd == mcpCmd {
			// stdout carries the protocol
			out = os.Stderr
		}
		ctx, flush := log.NewContextWithWriter(cmd.Context(), debug, out)
		flushLog = flush
		cmd.SetContext(ctx)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		flushLog()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		flushLog()
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = core.AppVersion
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging (or OUTFIT_DEBUG=1)")
}

func CustomizeHelp(rootCmd *cobra.Command) {
	cobra.AddTemplateFuncs(map[string]any{
		"StyleTitle": ui.TitleStyle.Render,
		"StyleUsage": ui.UsageStyle.Render,
		"StyleFlag":  ui.FlagStyle.Render,
		"StyleDesc":  ui.DescStyle.Render,
	})

	rootCmd.SetHelpTemplate(`
{{StyleTitle "USAGE"}}
  {{StyleUsage .UseLine}}
{{if gt (len .Commands) 0}}{{StyleTitle "COMMANDS"}}
{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding}} {{StyleDesc .Short}}{{end}}
{{end}}{{end}}
{{if .HasAvailableLocalFlags}}{{StyleTitle "FLAGS"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}{{if .HasAvailableInheritedFlags}}{{StyleTitle "GLOBAL FLAGS"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}
{{end}}
`)
}
