package cmd

import (
	"github.com/spf13/cobra"

	"github.com/robowhales/reefscout/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize reefscout configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to pick an LLM provider, quality tier, port, and database path, then writes reefscout.yml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
