package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagParticipants string

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the season directory, draft order, and blank draft sheet",
	Long: `Prepare a new season: create the season directory, randomize and
persist the draft order, and write a blank draft sheet for the participants
to fill in. Existing files are never overwritten, so re-running is safe.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		var participants []string
		for _, p := range strings.Split(flagParticipants, ",") {
			if p = strings.TrimSpace(p); p != "" {
				participants = append(participants, p)
			}
		}

		d := newDraft()
		order, err := d.Setup(participants)
		if err != nil {
			return err
		}

		fmt.Println("Draft order:")
		for i, participant := range order {
			fmt.Printf("  %d. %s\n", i+1, participant)
		}
		fmt.Printf("\nDraft sheet: %s\n", d.SheetPath())
		return nil
	},
}

func init() {
	setupCmd.Flags().StringVar(&flagParticipants, "participants", "", "comma-separated participant names")
	rootCmd.AddCommand(setupCmd)
}
