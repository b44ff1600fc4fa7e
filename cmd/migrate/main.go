package main

import (
	"os"
	"pureheart/config"
	"pureheart/helper"
	"pureheart/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	logger.InitLogger()

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
		PersistentPreRun: func(*cobra.Command, []string) {
			logger.Configure(config.Get())
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		actionCmd(helper.ActionUp, "Apply every pending migration"),
		actionCmd(helper.ActionDown, "Roll back the latest migration"),
		actionCmd(helper.ActionStepUp, "Apply the next pending migration"),
		actionCmd(helper.ActionDrop, "Roll back every migration"),
		actionCmd(helper.ActionVersion, "Print the current schema version"),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Migration failed")
		os.Exit(1)
	}
}

func actionCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return helper.Runner(config.Get(), action)
		},
	}
}
