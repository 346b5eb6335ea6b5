package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/robowhales/reefscout/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "reefscout",
	Short: "Match scouting server for FRC REEFSCAPE",
	Long: `Reefscout collects match scouting records for FRC REEFSCAPE events and
serves an AI strategy assistant over them. Scouts submit records from the
stands, and drive teams ask questions like "who should we pick for our
alliance?" backed by aggregated team statistics and the game manual.`,
}

func Execute() error {
	// API keys commonly live in a .env next to the binary at events.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
}
