package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/config"
	"github.com/camelranchentertainment/Booking-Platform-sub000/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back the database schema",
	ValidArgs: []string{database.Up, database.Down},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Database.Driver != config.DriverPostgres {
			return fmt.Errorf("migrate needs STORE_DRIVER=%s, got %q", config.DriverPostgres, cfg.Database.Driver)
		}

		db, err := database.Open(context.Background(), database.DriverPQ, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Migrate(db, cfg.Database.MigrationsPath, args[0], logger); err != nil {
			return err
		}
		color.Green("Migrations %s complete", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
