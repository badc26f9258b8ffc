package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"turkeybowl/internal/season"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the resolved pull week for the season",
	RunE: func(_ *cobra.Command, _ []string) error {
		resolver := newResolver()
		year := resolver.Year()

		fmt.Printf("Season %d\n", year)
		fmt.Printf("  Season start: %s\n", season.SeasonStart(year).Format("Mon Jan 2"))
		fmt.Printf("  Thanksgiving: %s\n", season.Thanksgiving(year).Format("Mon Jan 2"))
		fmt.Printf("  Pull week:    %d\n", resolver.Week())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(weekCmd)
}
