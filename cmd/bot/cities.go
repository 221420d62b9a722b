package main

import (
	"fmt"
	"strings"

	"github.com/diegoclair/mensa-bot/internal/config"
	"github.com/diegoclair/mensa-bot/internal/domain/service"
	"github.com/diegoclair/mensa-bot/internal/openmensa"
	"github.com/spf13/cobra"
)

func newCitiesCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "cities [substring]",
		Short: "List catalog cities matching a substring",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}

			directory, err := service.LoadDirectory(cmd.Context(), openmensa.New(cfg.OpenMensaURL, cfg.HTTPTimeout))
			if err != nil {
				return err
			}

			cities := directory.CitiesMatching(strings.Join(args, " "))
			if len(cities) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No cities found.")
				return nil
			}

			for _, city := range cities {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d canteens)\n", city, len(directory.ByCity(city)))
			}
			return nil
		},
	}
}
