package leaderboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turkeybowl/internal/models"
)

func rosterWith(points []float64, benchPoints float64) *models.MergedRoster {
	slots := make([]models.MergedSlot, 0, len(points)+1)
	for _, p := range points {
		slots = append(slots, models.MergedSlot{
			Points: map[string]float64{models.ActualPointsColumn: p},
		})
	}
	bench := models.MergedSlot{
		Points: map[string]float64{models.ActualPointsColumn: benchPoints},
	}
	bench.Bench = true
	slots = append(slots, bench)
	return &models.MergedRoster{Slots: slots}
}

func TestComputeRanksAndMargins(t *testing.T) {
	rosters := map[string]*models.MergedRoster{
		"Cindy": rosterWith([]float64{20, 25}, 50),
		"Dodd":  rosterWith([]float64{21, 25}, 50),
		"Logan": rosterWith([]float64{63, 63}, 50),
	}

	rows := Compute(rosters)
	require.Len(t, rows, 3)

	assert.Equal(t, "Logan", rows[0].Participant)
	assert.Equal(t, "Dodd", rows[1].Participant)
	assert.Equal(t, "Cindy", rows[2].Participant)

	assert.Equal(t, []int{1, 2, 3}, []int{rows[0].Rank, rows[1].Rank, rows[2].Rank})
	assert.Equal(t, 126.0, rows[0].Points)
	assert.Equal(t, 46.0, rows[1].Points)
	assert.Equal(t, 45.0, rows[2].Points)

	require.NotNil(t, rows[0].Margin)
	assert.Equal(t, 80.0, *rows[0].Margin)
	require.NotNil(t, rows[1].Margin)
	assert.Equal(t, 1.0, *rows[1].Margin)
	assert.Nil(t, rows[2].Margin)

	assert.Equal(t, 0.0, rows[0].PointsBack)
	assert.Equal(t, 80.0, rows[1].PointsBack)
	assert.Equal(t, 81.0, rows[2].PointsBack)
}

func TestComputeExcludesBench(t *testing.T) {
	rosters := map[string]*models.MergedRoster{
		"Dodd": rosterWith([]float64{10}, 99),
	}
	rows := Compute(rosters)
	require.Len(t, rows, 1)
	assert.Equal(t, 10.0, rows[0].Points)
}

func TestComputeTieBreaksByName(t *testing.T) {
	rosters := map[string]*models.MergedRoster{
		"Zed":  rosterWith([]float64{30}, 0),
		"Abby": rosterWith([]float64{30}, 0),
	}
	rows := Compute(rosters)
	require.Len(t, rows, 2)
	assert.Equal(t, "Abby", rows[0].Participant)
	assert.Equal(t, "Zed", rows[1].Participant)
	require.NotNil(t, rows[0].Margin)
	assert.Equal(t, 0.0, *rows[0].Margin)
}

func TestComputeRoundsToThreeDecimals(t *testing.T) {
	rosters := map[string]*models.MergedRoster{
		"Dodd": rosterWith([]float64{0.1, 0.2}, 0),
	}
	rows := Compute(rosters)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.3, rows[0].Points)
}

func TestComputeEmpty(t *testing.T) {
	assert.Empty(t, Compute(nil))
}
