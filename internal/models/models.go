package models

import "time"

// SeasonWeek identifies a season year and the 1-indexed week pulled from the
// stats provider.
type SeasonWeek struct {
	Year int
	Week int
}

// StatKind discriminates the two record families the provider returns.
type StatKind string

const (
	StatKindProjected StatKind = "projectedStats"
	StatKindActual    StatKind = "stats"
)

func (k StatKind) Valid() bool {
	return k == StatKindProjected || k == StatKindActual
}

// Prefix returns the column prefix used for this kind's stat columns.
func (k StatKind) Prefix() string {
	if k == StatKindProjected {
		return "PROJ_"
	}
	return "ACTUAL_"
}

// Canonical points columns. ActualPointsColumn survives pruning even when all
// zero: it is the "no games played yet" state, not absent data.
const (
	ProjectedPointsColumn = "PROJ_pts"
	ActualPointsColumn    = "ACTUAL_pts"
)

// StatDefinition translates a numeric stat id to its semantic name.
type StatDefinition struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbr"`
	ShortName    string `json:"shortName"`
}

// PlayerInfo is one player catalog entry keyed by provider player id.
type PlayerInfo struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Team         string `json:"team"`
	InjuryStatus string `json:"injury,omitempty"`
}

// RosterSlot is one drafted row. Bench is set by the roster loader on the
// fixed 10th slot; bench points are displayed but never scored.
type RosterSlot struct {
	Position string `json:"Position"`
	Player   string `json:"Player"`
	Team     string `json:"Team"`
	Bench    bool   `json:"-"`
}

// Roster is one participant's drafted team, bench slot last.
type Roster []RosterSlot

// PlayerRow is one row of a normalized points table.
type PlayerRow struct {
	Player   string             `json:"player"`
	Team     string             `json:"team"`
	Position string             `json:"position,omitempty"`
	Points   map[string]float64 `json:"points"`
}

// PointsTable is the flat numeric table produced by normalization. Columns
// holds the numeric column order; every row carries a value for every column.
type PointsTable struct {
	Kind    StatKind    `json:"kind"`
	Columns []string    `json:"columns"`
	Rows    []PlayerRow `json:"rows"`
}

// MergedSlot is a roster slot with stats joined on. Matched records which
// kinds found a stats row for this slot, so validation can tell a zero score
// from a failed join.
type MergedSlot struct {
	RosterSlot
	// StatsPosition is the player position carried by a joined projected
	// row. Once set it participates in later join keys, disambiguating
	// players who changed teams between catalog refreshes.
	StatsPosition string
	Points        map[string]float64
	Matched       map[StatKind]bool
}

// MergedRoster is a participant's roster left-joined with normalized stats.
// Merging never changes slot count or order; it only accumulates columns.
type MergedRoster struct {
	Participant string
	Columns     []string
	Slots       []MergedSlot
}

// LeaderboardRow ranks one participant. Margin is nil for the last-ranked
// participant only.
type LeaderboardRow struct {
	Rank        int
	Participant string
	Points      float64
	Margin      *float64
	PointsBack  float64
}

// Results is the output of one full pipeline run.
type Results struct {
	Week         SeasonWeek
	Board        []LeaderboardRow
	Rosters      map[string]*MergedRoster
	Participants []string
	ComputedAt   time.Time
}
