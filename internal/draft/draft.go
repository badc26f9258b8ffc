// Package draft manages the pre-game artifacts: a randomized draft order and
// the shared draft sheet every participant fills in before kickoff.
package draft

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"turkeybowl/internal/models"
)

// SlotPositions is the fixed roster shape in draft order. The last slot is
// the bench and never scores.
var SlotPositions = []string{
	"QB",
	"RB_1",
	"RB_2",
	"WR_1",
	"WR_2",
	"TE",
	"Flex (RB/WR/TE)",
	"K",
	"Defense (Team Name)",
	"Bench (RB/WR/TE)",
}

// Draft owns the on-disk draft artifacts for a single season year.
type Draft struct {
	year    int
	dataDir string
}

func New(year int, dataDir string) *Draft {
	return &Draft{year: year, dataDir: dataDir}
}

func (d *Draft) OutputDir() string {
	return filepath.Join(d.dataDir, fmt.Sprintf("%d", d.year))
}

func (d *Draft) OrderPath() string {
	return filepath.Join(d.OutputDir(), fmt.Sprintf("%d_draft_order.json", d.year))
}

func (d *Draft) SheetPath() string {
	return filepath.Join(d.OutputDir(), fmt.Sprintf("%d_draft_sheet.json", d.year))
}

// Setup creates the season directory, a randomized draft order, and a blank
// draft sheet. Existing files are left alone so a re-run never clobbers a
// draft in progress.
func (d *Draft) Setup(participants []string) ([]string, error) {
	if err := os.MkdirAll(d.OutputDir(), 0o755); err != nil {
		return nil, fmt.Errorf("creating draft directory: %w", err)
	}

	order, err := d.ensureOrder(participants)
	if err != nil {
		return nil, err
	}
	if err := d.ensureSheet(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (d *Draft) ensureOrder(participants []string) ([]string, error) {
	if existing, err := d.LoadOrder(); err == nil {
		slog.Info("draft order already exists", "path", d.OrderPath(), "order", existing)
		return existing, nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if len(participants) == 0 {
		return nil, fmt.Errorf("no participants provided and no draft order at %s", d.OrderPath())
	}

	order := make([]string, len(participants))
	copy(order, participants)
	for i := range order {
		order[i] = strings.TrimSpace(order[i])
	}
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	data, err := json.MarshalIndent(order, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding draft order: %w", err)
	}
	if err := os.WriteFile(d.OrderPath(), data, 0o644); err != nil {
		return nil, fmt.Errorf("writing draft order: %w", err)
	}
	slog.Info("saved draft order", "path", d.OrderPath(), "order", order)
	return order, nil
}

// LoadOrder reads the persisted draft order. The error preserves
// os.IsNotExist so callers can distinguish a missing file.
func (d *Draft) LoadOrder() ([]string, error) {
	data, err := os.ReadFile(d.OrderPath())
	if err != nil {
		return nil, err
	}
	var order []string
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("parsing draft order %s: %w", d.OrderPath(), err)
	}
	return order, nil
}

func (d *Draft) ensureSheet(order []string) error {
	if _, err := os.Stat(d.SheetPath()); err == nil {
		slog.Info("draft sheet already exists", "path", d.SheetPath())
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking draft sheet: %w", err)
	}

	sheet := make(map[string]models.Roster, len(order))
	for _, participant := range order {
		roster := make(models.Roster, len(SlotPositions))
		for i, pos := range SlotPositions {
			roster[i] = models.RosterSlot{Position: pos}
		}
		sheet[participant] = roster
	}

	data, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding draft sheet: %w", err)
	}
	if err := os.WriteFile(d.SheetPath(), data, 0o644); err != nil {
		return fmt.Errorf("writing draft sheet: %w", err)
	}
	slog.Info("created blank draft sheet", "path", d.SheetPath())
	return nil
}

// Load parses the draft sheet into per-participant rosters. Player and team
// values are whitespace-trimmed, every roster must carry the ten slots in
// draft order, and the final slot is flagged as the bench.
func (d *Draft) Load() (map[string]models.Roster, error) {
	data, err := os.ReadFile(d.SheetPath())
	if err != nil {
		return nil, fmt.Errorf("reading draft sheet: %w", err)
	}

	var sheet map[string]models.Roster
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("parsing draft sheet %s: %w", d.SheetPath(), err)
	}

	for participant, roster := range sheet {
		if len(roster) != len(SlotPositions) {
			return nil, fmt.Errorf("roster for %s has %d slots, want %d", participant, len(roster), len(SlotPositions))
		}
		for i := range roster {
			if roster[i].Position != SlotPositions[i] {
				return nil, fmt.Errorf("roster for %s has slot %q at position %d, want %q",
					participant, roster[i].Position, i, SlotPositions[i])
			}
			roster[i].Player = strings.TrimSpace(roster[i].Player)
			roster[i].Team = strings.TrimSpace(roster[i].Team)
			roster[i].Bench = i == len(SlotPositions)-1
		}
		sheet[participant] = roster
	}
	return sheet, nil
}

// AllDrafted reports whether every slot on every roster names a player. The
// weekly pipeline exits early when the sheet is still blank.
func AllDrafted(rosters map[string]models.Roster) bool {
	if len(rosters) == 0 {
		return false
	}
	for _, roster := range rosters {
		for _, slot := range roster {
			if slot.Player == "" {
				return false
			}
		}
	}
	return true
}
