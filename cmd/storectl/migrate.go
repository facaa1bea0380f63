package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := connectDB(); err != nil {
				return err
			}
			defer config.CloseDB()

			ctx, cancel := config.WithCustomTimeout(2 * time.Minute)
			defer cancel()
			if err := config.AutoMigrate(ctx); err != nil {
				return err
			}
			log.Info().Str("op", "storectl.migrate").Msg("schema up to date")
			return nil
		},
	}
}
