package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the cached projected snapshot for the pull week",
	Long: `Remove the projected points cache for the resolved week so the next
run pulls fresh projections. Draft artifacts and archived results are left
alone.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		resolver := newResolver()
		year, week := resolver.Year(), resolver.Week()

		path := filepath.Join(cfg.Season.DataDir, fmt.Sprintf("%d", year),
			fmt.Sprintf("%d_%d_projected_player_pts.json", year, week))

		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				fmt.Printf("No projected cache at %s\n", path)
				return nil
			}
			return fmt.Errorf("removing projected cache: %w", err)
		}
		fmt.Printf("Removed %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
