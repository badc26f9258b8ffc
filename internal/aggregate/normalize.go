package aggregate

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"turkeybowl/internal/catalog"
	"turkeybowl/internal/models"
)

// Normalizer flattens raw provider batches into points tables using the stat
// and player catalogs. The player catalog must already be repaired (see
// catalog.Repair); ids still missing here are dropped row-by-row.
type Normalizer struct {
	Stats   *catalog.StatCatalog
	Players *catalog.PlayerCatalog
}

// BatchKind returns the uniform stat kind of a raw batch. A batch mixing
// kinds, carrying an unrecognized kind, or empty is a data-integrity error
// and must not be retried.
func BatchKind(raw models.RawPlayerStats) (models.StatKind, error) {
	kinds := make(map[string]struct{})
	for _, rec := range raw {
		kinds[rec.Kind] = struct{}{}
	}
	if len(kinds) == 0 {
		return "", errors.New("empty stats batch")
	}
	if len(kinds) > 1 {
		names := make([]string, 0, len(kinds))
		for k := range kinds {
			names = append(names, k)
		}
		sort.Strings(names)
		return "", fmt.Errorf("more than one stat kind in batch: %s", strings.Join(names, ", "))
	}
	for k := range kinds {
		kind := models.StatKind(k)
		if !kind.Valid() {
			return "", fmt.Errorf("unrecognized stat kind %q: expected %q or %q",
				k, models.StatKindProjected, models.StatKindActual)
		}
		return kind, nil
	}
	return "", errors.New("empty stats batch")
}

// Normalize converts one raw batch for (year, week) into a flat table.
//
// Projected batches require a cache path: projected points are immutable once
// first observed, so an existing cache short-circuits the computation and a
// fresh result is written before being returned. Actual batches ignore
// cachePath entirely.
func (n *Normalizer) Normalize(year, week int, raw models.RawPlayerStats, cachePath string) (*models.PointsTable, error) {
	kind, err := BatchKind(raw)
	if err != nil {
		return nil, err
	}

	if kind == models.StatKindProjected {
		if cachePath == "" {
			return nil, errors.New("cache path is required when normalizing projected stats")
		}
		cached, err := LoadPointsTable(cachePath)
		if err == nil {
			slog.Info("Projected points already pulled", "path", cachePath)
			return cached, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	prefix := kind.Prefix()
	ptsCol := prefix + "pts"
	columns := []string{ptsCol}
	seen := map[string]bool{ptsCol: true}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sortNumeric(ids)

	rows := make([]models.PlayerRow, 0, len(ids))
	var dropped []string
	for _, id := range ids {
		info, ok := n.Players.Lookup(id)
		if !ok {
			dropped = append(dropped, id)
			continue
		}

		rec := raw[id]
		points := make(map[string]float64)
		for statID, v := range rec.WeekValues(year, week) {
			col := prefix + n.Stats.ColumnName(statID)
			if !seen[col] {
				seen[col] = true
				columns = append(columns, col)
			}
			points[col] = float64(v)
		}

		row := models.PlayerRow{Player: info.Name, Team: info.Team, Points: points}
		if kind == models.StatKindProjected {
			row.Position = info.Position
		}
		rows = append(rows, row)
	}
	if len(dropped) > 0 {
		slog.Warn("Dropped players with no catalog entry", "kind", kind, "ids", dropped)
	}

	// Every row carries every column; absent values become zero.
	for _, row := range rows {
		for _, col := range columns {
			if _, ok := row.Points[col]; !ok {
				row.Points[col] = 0.0
			}
		}
	}

	table := &models.PointsTable{Kind: kind, Columns: columns, Rows: rows}

	if kind == models.StatKindProjected {
		if err := SavePointsTable(table, cachePath); err != nil {
			return nil, err
		}
		slog.Info("Wrote projected points cache", "path", cachePath)
	}
	return table, nil
}

// PlayerIDs returns the batch's player ids in numeric order.
func PlayerIDs(raw models.RawPlayerStats) []string {
	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sortNumeric(ids)
	return ids
}

// ZeroActualTable builds an all-zero ACTUAL_pts table from the projected
// table's identity columns. It is the fallback for a provider response with
// no actual stats at all, which is valid before any games have started.
func ZeroActualTable(projected *models.PointsTable) *models.PointsTable {
	rows := make([]models.PlayerRow, len(projected.Rows))
	for i, row := range projected.Rows {
		rows[i] = models.PlayerRow{
			Player: row.Player,
			Team:   row.Team,
			Points: map[string]float64{models.ActualPointsColumn: 0.0},
		}
	}
	return &models.PointsTable{
		Kind:    models.StatKindActual,
		Columns: []string{models.ActualPointsColumn},
		Rows:    rows,
	}
}

func sortNumeric(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, aerr := strconv.Atoi(ids[i])
		b, berr := strconv.Atoi(ids[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		if aerr == nil {
			return true
		}
		if berr == nil {
			return false
		}
		return ids[i] < ids[j]
	})
}
