package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/diegoclair/mensa-bot/internal/config"
	"github.com/diegoclair/mensa-bot/internal/domain"
	"github.com/diegoclair/mensa-bot/internal/domain/service"
	"github.com/diegoclair/mensa-bot/internal/openmensa"
	"github.com/spf13/cobra"
)

func newMenuCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "menu <canteen_id> [YYYY-MM-DD]",
		Short: "Print the rendered menu of a canteen",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			canteenID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid canteen id %q", args[0])
			}

			cfg, err := config.Load(*configFile)
			if err != nil {
				return err
			}

			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			date := domain.DateOf(time.Now(), loc)
			if len(args) == 2 {
				date, err = time.ParseInLocation(domain.DateLayout, args[1], loc)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", args[1], err)
				}
			}

			client := openmensa.New(cfg.OpenMensaURL, cfg.HTTPTimeout)
			directory, err := service.LoadDirectory(cmd.Context(), client)
			if err != nil {
				return err
			}

			menu := service.NewMenu(directory, client)
			fmt.Fprintln(cmd.OutOrStdout(), menu.Fetch(cmd.Context(), canteenID, date))
			return nil
		},
	}
}
