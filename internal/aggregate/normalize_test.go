package aggregate

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turkeybowl/internal/catalog"
	"turkeybowl/internal/models"
)

func record(kind string, year, week int, vals map[string]models.StatValue) models.RawStatRecord {
	return models.RawStatRecord{
		Kind: kind,
		Weeks: map[string]map[string]map[string]models.StatValue{
			strconv.Itoa(year): {strconv.Itoa(week): vals},
		},
	}
}

func testNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	stats := catalog.NewStatCatalog(map[string]models.StatDefinition{
		"1": {ID: 1, Name: "Games Played"},
		"5": {ID: 5, Name: "Passing Yards"},
	})
	players := catalog.NewPlayerCatalog(filepath.Join(t.TempDir(), "player_ids.json"))
	players.Insert("100", models.PlayerInfo{Name: "Josh Allen", Position: "QB", Team: "BUF"})
	players.Insert("200", models.PlayerInfo{Name: "David Montgomery", Position: "RB", Team: "CHI"})
	return &Normalizer{Stats: stats, Players: players}
}

func TestBatchKind(t *testing.T) {
	t.Run("projected", func(t *testing.T) {
		kind, err := BatchKind(models.RawPlayerStats{
			"100": {Kind: "projectedStats"},
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatKindProjected, kind)
	})

	t.Run("actual", func(t *testing.T) {
		kind, err := BatchKind(models.RawPlayerStats{
			"100": {Kind: "stats"},
		})
		require.NoError(t, err)
		assert.Equal(t, models.StatKindActual, kind)
	})

	t.Run("mixed kinds fail naming both", func(t *testing.T) {
		_, err := BatchKind(models.RawPlayerStats{
			"100": {Kind: "projectedStats"},
			"200": {Kind: "stats"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "projectedStats")
		assert.Contains(t, err.Error(), "stats")
	})

	t.Run("unrecognized kind fails naming it", func(t *testing.T) {
		_, err := BatchKind(models.RawPlayerStats{
			"100": {Kind: "bogusStats"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bogusStats")
	})

	t.Run("empty batch fails", func(t *testing.T) {
		_, err := BatchKind(models.RawPlayerStats{})
		assert.Error(t, err)
	})
}

func TestNormalizeProjected(t *testing.T) {
	n := testNormalizer(t)
	cachePath := filepath.Join(t.TempDir(), "2020_12_projected_player_pts.json")
	raw := models.RawPlayerStats{
		"100": record("projectedStats", 2020, 12, map[string]models.StatValue{"pts": 22.5, "5": 240.3}),
		"200": record("projectedStats", 2020, 12, map[string]models.StatValue{"pts": 14.1, "1": 1}),
	}

	table, err := n.Normalize(2020, 12, raw, cachePath)
	require.NoError(t, err)

	assert.Equal(t, models.StatKindProjected, table.Kind)
	assert.Equal(t, "PROJ_pts", table.Columns[0])
	assert.Contains(t, table.Columns, "PROJ_Passing_Yards")
	assert.Contains(t, table.Columns, "PROJ_Games_Played")

	require.Len(t, table.Rows, 2)
	allen := table.Rows[0]
	assert.Equal(t, "Josh Allen", allen.Player)
	assert.Equal(t, "BUF", allen.Team)
	assert.Equal(t, "QB", allen.Position)
	assert.Equal(t, 22.5, allen.Points["PROJ_pts"])
	assert.Equal(t, 240.3, allen.Points["PROJ_Passing_Yards"])

	// Absent stats are zero-filled, never null.
	assert.Equal(t, 0.0, allen.Points["PROJ_Games_Played"])
	for _, row := range table.Rows {
		for _, col := range table.Columns {
			_, ok := row.Points[col]
			assert.True(t, ok, "row %s missing %s", row.Player, col)
		}
	}

	_, err = os.Stat(cachePath)
	assert.NoError(t, err, "projected cache should be written")
}

func TestNormalizeProjectedCacheShortCircuit(t *testing.T) {
	n := testNormalizer(t)
	cachePath := filepath.Join(t.TempDir(), "2020_12_projected_player_pts.json")

	first, err := n.Normalize(2020, 12, models.RawPlayerStats{
		"100": record("projectedStats", 2020, 12, map[string]models.StatValue{"pts": 22.5}),
	}, cachePath)
	require.NoError(t, err)

	// A later pull with different values must return the cached table
	// untouched: projected points are immutable once first observed.
	second, err := n.Normalize(2020, 12, models.RawPlayerStats{
		"100": record("projectedStats", 2020, 12, map[string]models.StatValue{"pts": 99.9}),
	}, cachePath)
	require.NoError(t, err)

	assert.Equal(t, first.Columns, second.Columns)
	assert.Equal(t, first.Rows, second.Rows)
}

func TestNormalizeProjectedRequiresCachePath(t *testing.T) {
	n := testNormalizer(t)
	_, err := n.Normalize(2020, 12, models.RawPlayerStats{
		"100": record("projectedStats", 2020, 12, map[string]models.StatValue{"pts": 22.5}),
	}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache path")
}

func TestNormalizeActual(t *testing.T) {
	n := testNormalizer(t)
	raw := models.RawPlayerStats{
		"100": record("stats", 2020, 12, map[string]models.StatValue{"pts": 31.2, "5": 312}),
	}

	table, err := n.Normalize(2020, 12, raw, "")
	require.NoError(t, err)

	assert.Equal(t, models.StatKindActual, table.Kind)
	assert.Equal(t, "ACTUAL_pts", table.Columns[0])
	require.Len(t, table.Rows, 1)
	assert.Empty(t, table.Rows[0].Position, "actual rows carry no position")
	assert.Equal(t, 31.2, table.Rows[0].Points["ACTUAL_pts"])
}

func TestNormalizeMissingWeekYieldsZeroRow(t *testing.T) {
	n := testNormalizer(t)
	raw := models.RawPlayerStats{
		"100": record("stats", 2020, 11, map[string]models.StatValue{"pts": 18.0}),
	}

	table, err := n.Normalize(2020, 12, raw, "")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, 0.0, table.Rows[0].Points["ACTUAL_pts"])
}

func TestNormalizeDropsPlayersMissingFromCatalog(t *testing.T) {
	n := testNormalizer(t)
	raw := models.RawPlayerStats{
		"100": record("stats", 2020, 12, map[string]models.StatValue{"pts": 10}),
		"999": record("stats", 2020, 12, map[string]models.StatValue{"pts": 5}),
	}

	table, err := n.Normalize(2020, 12, raw, "")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Josh Allen", table.Rows[0].Player)
}

func TestPointsTableRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	table := &models.PointsTable{
		Kind:    models.StatKindProjected,
		Columns: []string{"PROJ_pts", "PROJ_Passing_Yards"},
		Rows: []models.PlayerRow{
			{Player: "Josh Allen", Team: "BUF", Position: "QB",
				Points: map[string]float64{"PROJ_pts": 22.5, "PROJ_Passing_Yards": 240.3}},
			{Player: "David Montgomery", Team: "CHI", Position: "RB",
				Points: map[string]float64{"PROJ_pts": 14.1, "PROJ_Passing_Yards": 0}},
		},
	}

	require.NoError(t, SavePointsTable(table, path))
	loaded, err := LoadPointsTable(path)
	require.NoError(t, err)

	assert.Equal(t, table.Kind, loaded.Kind)
	assert.ElementsMatch(t, table.Columns, loaded.Columns)

	byPlayer := make(map[string]models.PlayerRow)
	for _, row := range loaded.Rows {
		byPlayer[row.Player] = row
	}
	for _, row := range table.Rows {
		got, ok := byPlayer[row.Player]
		require.True(t, ok)
		assert.Equal(t, row.Team, got.Team)
		assert.Equal(t, row.Position, got.Position)
		assert.Equal(t, row.Points, got.Points)
	}
}

func TestZeroActualTable(t *testing.T) {
	projected := &models.PointsTable{
		Kind:    models.StatKindProjected,
		Columns: []string{"PROJ_pts"},
		Rows: []models.PlayerRow{
			{Player: "Josh Allen", Team: "BUF", Position: "QB", Points: map[string]float64{"PROJ_pts": 22.5}},
			{Player: "David Montgomery", Team: "CHI", Position: "RB", Points: map[string]float64{"PROJ_pts": 14.1}},
		},
	}

	actual := ZeroActualTable(projected)
	assert.Equal(t, models.StatKindActual, actual.Kind)
	assert.Equal(t, []string{"ACTUAL_pts"}, actual.Columns)
	require.Len(t, actual.Rows, 2)
	for i, row := range actual.Rows {
		assert.Equal(t, projected.Rows[i].Player, row.Player)
		assert.Equal(t, projected.Rows[i].Team, row.Team)
		assert.Empty(t, row.Position)
		assert.Equal(t, 0.0, row.Points["ACTUAL_pts"])
	}
}
