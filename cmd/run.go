package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"turkeybowl/internal/report"
	"turkeybowl/internal/service"
)

var flagRosters bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Pull stats, score rosters, and print the leaderboard",
	Long: `Run one full pipeline pass: pull projected and live stats for the
Thanksgiving week, score every drafted roster, print the leaderboard, and
archive the results as CSV under the season directory.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		pipeline, err := newPipeline()
		if err != nil {
			return err
		}

		results, err := pipeline.Run()
		if err != nil {
			if errors.Is(err, service.ErrNothingDrafted) {
				fmt.Println("The draft sheet is still blank. Fill it in and run again.")
				return nil
			}
			return err
		}

		if err := report.WriteLeaderboard(os.Stdout, results, !flagNoColor); err != nil {
			return err
		}

		if flagRosters {
			for _, participant := range results.Participants {
				fmt.Println()
				if err := report.WriteRoster(os.Stdout, results.Rosters[participant]); err != nil {
					return err
				}
			}
		}

		return report.Archive(cfg.Season.DataDir, results)
	},
}

func init() {
	runCmd.Flags().BoolVar(&flagRosters, "rosters", false, "also print every merged roster")
	rootCmd.AddCommand(runCmd)
}
