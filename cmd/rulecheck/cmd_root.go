package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/rulecheck/pkg/config"
)

var rootCmd = &cobra.Command{
	Use:   appName + " [command]",
	Short: "Validate records against declarative rule sets",
	Long: "Validate JSON or YAML records against declarative rule sets.\n\n" +
		"Configuration is read from RULECHECK_* environment variables and an optional .env file.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if len(flagEnvFiles) == 0 {
			return nil
		}
		return config.LoadEnv(flagEnvFiles...)
	},
}
