// Command storectl is the operator CLI for the storefront backend.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/config"
	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "storectl",
		Short:         "Lumière storefront operator tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := config.Load()
			logger.Init(cfg.Log.Level, cfg.Server.Env, cfg.Log.File)
		},
	}

	root.AddCommand(
		newHashSecretCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newProfitReportCmd(os.Stdout),
	)

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("storectl failed")
		os.Exit(1)
	}
}

func connectDB() error {
	return config.InitDB(config.Load())
}
