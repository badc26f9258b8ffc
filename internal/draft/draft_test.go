package draft

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"turkeybowl/internal/models"
)

func TestSetupCreatesOrderAndSheet(t *testing.T) {
	d := New(2020, t.TempDir())
	participants := []string{"Dodd", "Becca", "Logan", "Cindy"}

	order, err := d.Setup(participants)
	require.NoError(t, err)
	assert.ElementsMatch(t, participants, order)

	_, err = os.Stat(d.OrderPath())
	assert.NoError(t, err)
	_, err = os.Stat(d.SheetPath())
	assert.NoError(t, err)

	sheet, err := d.Load()
	require.NoError(t, err)
	require.Len(t, sheet, len(participants))
	for _, roster := range sheet {
		require.Len(t, roster, len(SlotPositions))
		for i, slot := range roster {
			assert.Equal(t, SlotPositions[i], slot.Position)
			assert.Empty(t, slot.Player)
		}
		assert.True(t, roster[len(roster)-1].Bench)
	}
}

func TestSetupIsIdempotent(t *testing.T) {
	d := New(2020, t.TempDir())

	first, err := d.Setup([]string{"Dodd", "Becca"})
	require.NoError(t, err)

	// A second setup with different participants keeps the saved order.
	second, err := d.Setup([]string{"Logan", "Cindy"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSetupRequiresParticipantsWhenNoOrderExists(t *testing.T) {
	d := New(2020, t.TempDir())
	_, err := d.Setup(nil)
	assert.Error(t, err)
}

func TestLoadTrimsWhitespaceAndFlagsBench(t *testing.T) {
	d := New(2020, t.TempDir())
	_, err := d.Setup([]string{"Dodd"})
	require.NoError(t, err)

	roster := make(models.Roster, len(SlotPositions))
	for i, pos := range SlotPositions {
		roster[i] = models.RosterSlot{Position: pos, Player: "  Josh Allen  ", Team: " BUF "}
	}
	writeSheet(t, d, map[string]models.Roster{"Dodd": roster})

	sheet, err := d.Load()
	require.NoError(t, err)
	loaded := sheet["Dodd"]
	require.Len(t, loaded, len(SlotPositions))
	assert.Equal(t, "Josh Allen", loaded[0].Player)
	assert.Equal(t, "BUF", loaded[0].Team)
	assert.False(t, loaded[0].Bench)
	assert.True(t, loaded[len(loaded)-1].Bench)
}

func TestLoadRejectsWrongSlotCount(t *testing.T) {
	d := New(2020, t.TempDir())
	_, err := d.Setup([]string{"Dodd"})
	require.NoError(t, err)

	writeSheet(t, d, map[string]models.Roster{
		"Dodd": {{Position: "QB", Player: "Josh Allen", Team: "BUF"}},
	})

	_, err = d.Load()
	assert.Error(t, err)
}

func TestLoadRejectsReorderedSlots(t *testing.T) {
	d := New(2020, t.TempDir())
	_, err := d.Setup([]string{"Dodd"})
	require.NoError(t, err)

	roster := make(models.Roster, len(SlotPositions))
	for i, pos := range SlotPositions {
		roster[i] = models.RosterSlot{Position: pos}
	}
	roster[0], roster[1] = roster[1], roster[0]
	writeSheet(t, d, map[string]models.Roster{"Dodd": roster})

	_, err = d.Load()
	assert.Error(t, err)
}

func TestAllDrafted(t *testing.T) {
	full := make(models.Roster, len(SlotPositions))
	for i, pos := range SlotPositions {
		full[i] = models.RosterSlot{Position: pos, Player: "Someone", Team: "CHI"}
	}
	partial := make(models.Roster, len(SlotPositions))
	copy(partial, full)
	partial[3].Player = ""

	assert.True(t, AllDrafted(map[string]models.Roster{"Dodd": full}))
	assert.False(t, AllDrafted(map[string]models.Roster{"Dodd": full, "Becca": partial}))
	assert.False(t, AllDrafted(nil))
}

func writeSheet(t *testing.T, d *Draft, sheet map[string]models.Roster) {
	t.Helper()
	data, err := json.MarshalIndent(sheet, "", "  ")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(d.SheetPath(), data, 0o644))
}
