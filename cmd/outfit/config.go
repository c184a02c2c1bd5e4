package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tabitha-dev/weather-outfit-advisor/internal/config"
	envfile "github.com/tabitha-dev/weather-outfit-advisor/pkg/env"
	"github.com/tabitha-dev/weather-outfit-advisor/pkg/log"
)

var saveConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings as .env lines",
	Long:  `Prints the app, weather and HTTP settings after defaults are applied. With --save they are merged into the runtime .env file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := initEnv(ctx, config.GetEnvPath()); err != nil {
			return err
		}

		sections := []any{
			config.NewAppConfig(ctx),
			config.NewWeatherConfig(ctx),
			config.NewHTTPConfig(ctx),
		}

		for _, c := range sections {
			content, err := envfile.MarshalEnv(c)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), content)

			if saveConfig {
				if err := envfile.MergeStruct(config.GetEnvPath(), c); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
			}
		}

		if saveConfig {
			log.FromCtx(ctx).Info().Str("path", config.GetEnvPath()).Msg("settings saved")
		}
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&saveConfig, "save", false, "merge the settings into the runtime .env file")
	rootCmd.AddCommand(configCmd)
}
