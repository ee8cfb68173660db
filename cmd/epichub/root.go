package main

import (
	"github.com/spf13/cobra"

	"epichub/internal/config"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	var jsonOutput bool
	var logLevel string

	cmd := &cobra.Command{
		Use:   "epichub",
		Short: "EPIC Hub is a minimal project-management backend",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogger(logLevel, cfg.LogLevel)
		},
	}

	cmd.Version = version
	cmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newSrvCmd(cfg),
		newProjectCmd(cfg, &jsonOutput),
		newTaskCmd(cfg, &jsonOutput),
		newFileCmd(cfg, &jsonOutput),
	)

	return cmd
}
