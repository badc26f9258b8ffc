package aggregate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"turkeybowl/internal/models"
)

// NewMergedRoster wraps a loaded roster so stats tables can be merged onto
// it. Slot count and order are fixed from here on.
func NewMergedRoster(participant string, roster models.Roster) *models.MergedRoster {
	slots := make([]models.MergedSlot, len(roster))
	for i, slot := range roster {
		slots[i] = models.MergedSlot{
			RosterSlot: slot,
			Points:     make(map[string]float64),
			Matched:    make(map[models.StatKind]bool),
		}
	}
	return &models.MergedRoster{Participant: participant, Slots: slots}
}

// Merge left-joins a points table onto the roster. The join key is
// (Player, Team), extended by the stats-side position when both the slot and
// the candidate row carry one. Columns whose values sum to zero across all
// slots are pruned afterwards, except ACTUAL_pts which always survives.
//
// In verbose mode every non-bench slot left with neither a projected nor an
// actual points match is reported in a single warning per participant; the
// returned slice lists those player names. Aggregation still proceeds,
// treating the gaps as zero.
func Merge(mr *models.MergedRoster, table *models.PointsTable, verbose bool) []string {
	byKey := make(map[string][]*models.PlayerRow, len(table.Rows))
	for i := range table.Rows {
		row := &table.Rows[i]
		key := joinKey(row.Player, row.Team)
		byKey[key] = append(byKey[key], row)
	}

	for i := range mr.Slots {
		slot := &mr.Slots[i]
		row := matchRow(slot, byKey[joinKey(slot.Player, slot.Team)])
		if row == nil {
			continue
		}
		slot.Matched[table.Kind] = true
		if row.Position != "" {
			slot.StatsPosition = row.Position
		}
		for _, col := range table.Columns {
			slot.Points[col] = row.Points[col]
		}
	}

	for _, col := range table.Columns {
		if !containsColumn(mr.Columns, col) {
			mr.Columns = append(mr.Columns, col)
		}
	}

	pruneZeroColumns(mr)

	if verbose {
		return reportUnmatched(mr, table)
	}
	return nil
}

// matchRow picks the joined row for a slot. When the slot already carries a
// stats position and candidate rows expose one, the position must agree.
func matchRow(slot *models.MergedSlot, candidates []*models.PlayerRow) *models.PlayerRow {
	for _, row := range candidates {
		if slot.StatsPosition != "" && row.Position != "" && row.Position != slot.StatsPosition {
			continue
		}
		return row
	}
	return nil
}

// pruneZeroColumns drops columns summing to exactly zero across all slots.
// ACTUAL_pts is kept even when all zero: before any games it is a real state,
// not absent data.
func pruneZeroColumns(mr *models.MergedRoster) {
	kept := mr.Columns[:0]
	for _, col := range mr.Columns {
		sum := 0.0
		for i := range mr.Slots {
			sum += mr.Slots[i].Points[col]
		}
		if sum == 0 && col != models.ActualPointsColumn {
			for i := range mr.Slots {
				delete(mr.Slots[i].Points, col)
			}
			continue
		}
		kept = append(kept, col)
	}
	mr.Columns = kept
}

func reportUnmatched(mr *models.MergedRoster, table *models.PointsTable) []string {
	var unmatched []string
	var details []string
	for i := range mr.Slots {
		slot := &mr.Slots[i]
		if slot.Bench {
			continue
		}
		if slot.Matched[models.StatKindProjected] || slot.Matched[models.StatKindActual] {
			continue
		}
		unmatched = append(unmatched, slot.Player)
		if suggestion, ok := nearestPlayer(slot.Player, table); ok {
			details = append(details, fmt.Sprintf("%s (closest: %s)", slot.Player, suggestion))
		} else {
			details = append(details, slot.Player)
		}
	}
	if len(unmatched) > 0 {
		slog.Warn("Roster players have no stats after merge",
			"participant", mr.Participant, "players", strings.Join(details, ", "))
	}
	return unmatched
}

// nearestPlayer finds the closest stats-table player name by Levenshtein
// similarity, so typos in the draft sheet are easy to spot in the warning.
func nearestPlayer(name string, table *models.PointsTable) (string, bool) {
	best := ""
	bestSimilarity := 0.0
	threshold := 0.7

	for i := range table.Rows {
		candidate := table.Rows[i].Player
		distance := fuzzy.LevenshteinDistance(strings.ToLower(name), strings.ToLower(candidate))
		maxLen := float64(max(len(name), len(candidate)))
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/maxLen
		if similarity > threshold && similarity > bestSimilarity {
			bestSimilarity = similarity
			best = candidate
		}
	}
	return best, best != ""
}

func joinKey(player, team string) string {
	return player + "|" + team
}

func containsColumn(columns []string, col string) bool {
	for _, c := range columns {
		if c == col {
			return true
		}
	}
	return false
}
