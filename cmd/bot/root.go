package main

import (
	"github.com/diegoclair/mensa-bot/internal/config"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:          "mensabot",
		Short:        "Slack bot for daily canteen menus from OpenMensa",
		Long:         "mensabot lets Slack users browse canteen menus by city, step through the coming days and subscribe to a weekday reminder.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional config file (toml, yaml or json)")

	rootCmd.AddCommand(
		newCitiesCmd(&configFile),
		newMenuCmd(&configFile),
	)

	return rootCmd
}
