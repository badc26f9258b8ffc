package leaderboard

import (
	"math"
	"sort"

	"turkeybowl/internal/models"
)

// Compute reduces each participant's merged roster to a ranked leaderboard.
// A participant's total is the sum of ACTUAL_pts over every non-bench slot,
// rounded to three decimals. Ordering is descending by points with ties
// broken by ascending participant name, so identical inputs always rank
// identically. Margin is the gap to the next-ranked participant (nil for the
// last), PointsBack the gap to the leader.
func Compute(rosters map[string]*models.MergedRoster) []models.LeaderboardRow {
	rows := make([]models.LeaderboardRow, 0, len(rosters))
	for participant, roster := range rosters {
		rows = append(rows, models.LeaderboardRow{
			Participant: participant,
			Points:      scoredPoints(roster),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		return rows[i].Participant < rows[j].Participant
	})

	for i := range rows {
		rows[i].Rank = i + 1
		if i+1 < len(rows) {
			margin := round3(rows[i].Points - rows[i+1].Points)
			rows[i].Margin = &margin
		}
		if len(rows) > 0 {
			rows[i].PointsBack = round3(rows[0].Points - rows[i].Points)
		}
	}
	return rows
}

// scoredPoints sums ACTUAL_pts over non-bench slots. The bench slot is
// displayed elsewhere but never scores; that is a fixed league rule.
func scoredPoints(roster *models.MergedRoster) float64 {
	total := 0.0
	for i := range roster.Slots {
		slot := &roster.Slots[i]
		if slot.Bench {
			continue
		}
		total += slot.Points[models.ActualPointsColumn]
	}
	return round3(total)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
