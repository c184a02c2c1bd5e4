package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	"github.com/tabitha-dev/weather-outfit-advisor/internal/service/installer"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

var installCmd = &cobra.Command{
	Use:           "install",
	Short:         "Configure the advisor and create its runtime directory",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting installation process")

		// the wizard saves .env and creates the database
		if _, err := installer.RunWizard(); err != nil {
			return err
		}

		envPath := config.GetEnvPath()
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		logger.Info().Msgf("initialized runtime directory at: %s", config.GetRuntimePath())
		logger.Info().Msg("Installation complete! You can now run 'outfit start'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
