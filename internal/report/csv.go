package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"turkeybowl/internal/models"
)

// WriteLeaderboardCSV writes the standings as CSV.
func WriteLeaderboardCSV(w io.Writer, results *models.Results) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"rank", "participant", "pts", "margin", "pts_back"}); err != nil {
		return err
	}
	for _, row := range results.Board {
		margin := ""
		if row.Margin != nil {
			margin = formatPoints(*row.Margin)
		}
		record := []string{
			strconv.Itoa(row.Rank),
			row.Participant,
			formatPoints(row.Points),
			margin,
			formatPoints(row.PointsBack),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRosterCSV writes one merged roster as CSV, stat columns in their
// interleaved order.
func WriteRosterCSV(w io.Writer, mr *models.MergedRoster) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{"slot", "player", "team"}, mr.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, slot := range mr.Slots {
		record := []string{slot.Position, slot.Player, slot.Team}
		for _, col := range mr.Columns {
			record = append(record, formatPoints(slot.Points[col]))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Archive writes the leaderboard and every merged roster under the season
// directory, named by year and week so repeated runs overwrite in place.
func Archive(dataDir string, results *models.Results) error {
	dir := filepath.Join(dataDir, strconv.Itoa(results.Week.Year))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating archive dir: %w", err)
	}

	prefix := fmt.Sprintf("%d_%d", results.Week.Year, results.Week.Week)

	boardPath := filepath.Join(dir, prefix+"_leader_board.csv")
	if err := writeFileCSV(boardPath, func(w io.Writer) error {
		return WriteLeaderboardCSV(w, results)
	}); err != nil {
		return err
	}

	for participant, mr := range results.Rosters {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s_roster.csv", prefix, slugify(participant)))
		if err := writeFileCSV(path, func(w io.Writer) error {
			return WriteRosterCSV(w, mr)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFileCSV(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}
