package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robowhales/reefscout/internal/config"
	"github.com/robowhales/reefscout/internal/db"
	"github.com/robowhales/reefscout/internal/scouting"
)

var importCmd = &cobra.Command{
	Use:   "import <records.json>",
	Short: "Bulk import scouting records from a JSON file",
	Long: `Imports a JSON array of scouting records, for example an export from
another scouting system or a backup. Scores are recomputed from the raw
counts on the way in, so stale totals in the file are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		var records []scouting.MatchRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("parsing %s: %w", args[0], err)
		}

		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		store := scouting.NewStore(database)
		bar := progressbar.Default(int64(len(records)), "importing")

		imported, skipped := 0, 0
		for _, rec := range records {
			bar.Add(1)
			if rec.MatchInfo.TeamNumber == "" || rec.MatchInfo.MatchNumber == "" {
				skipped++
				continue
			}
			rec.Scores = scouting.ComputeScores(&rec)
			if _, err := store.Insert(cmd.Context(), rec); err != nil {
				return fmt.Errorf("inserting record for team %s match %s: %w",
					rec.MatchInfo.TeamNumber, rec.MatchInfo.MatchNumber, err)
			}
			imported++
		}

		fmt.Printf("Imported %d records (%d skipped)\n", imported, skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
