// Package report renders pipeline results: terminal tables, Telegram
// messages, and CSV archives.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"turkeybowl/internal/models"
)

// WriteLeaderboard renders the ranked standings as a table. The leader's row
// is green when colors are enabled.
func WriteLeaderboard(w io.Writer, results *models.Results, useColors bool) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	table.Header([]string{"Rank", "Participant", "PTS", "Margin", "Pts Back"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	green := fmt.Sprint
	if useColors {
		green = color.New(color.FgGreen).SprintFunc()
	}

	var data [][]string
	for _, row := range results.Board {
		margin := "-"
		if row.Margin != nil {
			margin = formatPoints(*row.Margin)
		}
		cells := []string{
			strconv.Itoa(row.Rank),
			row.Participant,
			formatPoints(row.Points),
			margin,
			formatPoints(row.PointsBack),
		}
		if row.Rank == 1 {
			for i, cell := range cells {
				cells[i] = green(cell)
			}
		}
		data = append(data, cells)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Week %d, %d\n", results.Week.Week, results.Week.Year)
	return err
}

// WriteRoster renders one participant's merged roster with its interleaved
// stat columns.
func WriteRoster(w io.Writer, mr *models.MergedRoster) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	headers := append([]string{"Slot", "Player", "Team"}, mr.Columns...)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, slot := range mr.Slots {
		row := []string{slot.Position, slot.Player, slot.Team}
		for _, col := range mr.Columns {
			row = append(row, formatPoints(slot.Points[col]))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", mr.Participant)
	return err
}

// LeaderboardMessage formats the standings for a Telegram chat.
func LeaderboardMessage(results *models.Results) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🦃 *Turkey Bowl Leaderboard* (Week %d, %d)\n\n",
		results.Week.Week, results.Week.Year))

	for _, row := range results.Board {
		switch row.Rank {
		case 1:
			sb.WriteString("🥇 ")
		case 2:
			sb.WriteString("🥈 ")
		case 3:
			sb.WriteString("🥉 ")
		default:
			sb.WriteString(fmt.Sprintf("%d. ", row.Rank))
		}
		sb.WriteString(fmt.Sprintf("*%s* - %s pts", row.Participant, formatPoints(row.Points)))
		if row.Rank > 1 {
			sb.WriteString(fmt.Sprintf(" (%s back)", formatPoints(row.PointsBack)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RosterMessage formats one participant's roster for a Telegram chat,
// points-only so the message stays readable on a phone.
func RosterMessage(mr *models.MergedRoster) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s's Roster*\n\n", mr.Participant))

	for _, slot := range mr.Slots {
		actual := formatPoints(slot.Points[models.ActualPointsColumn])
		projected := formatPoints(slot.Points[models.ProjectedPointsColumn])
		sb.WriteString(fmt.Sprintf("▫️ %s: %s (%s) - %s pts (proj %s)\n",
			slot.Position, slot.Player, slot.Team, actual, projected))
	}
	return sb.String()
}

// formatPoints trims trailing zeros so whole numbers read as "45" and
// fractional scores keep their precision.
func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
