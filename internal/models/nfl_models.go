package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// StatValue decodes the provider's loosely typed stat values: quoted numeric
// strings, bare numbers, or null, all coerced to float64 (null becomes 0).
type StatValue float64

func (v *StatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*v = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parsing stat value %q: %w", s, err)
		}
		*v = StatValue(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = StatValue(f)
	return nil
}

// RawStatRecord is one player's nested record from the provider. The single
// top-level key names the stat kind; the union is resolved once at decode so
// the rest of the pipeline never touches untyped maps.
type RawStatRecord struct {
	Kind  string
	Weeks map[string]map[string]map[string]StatValue
}

func (r *RawStatRecord) UnmarshalJSON(data []byte) error {
	var outer map[string]struct {
		Week map[string]map[string]map[string]StatValue `json:"week"`
	}
	if err := json.Unmarshal(data, &outer); err != nil {
		return err
	}
	if len(outer) != 1 {
		return fmt.Errorf("expected one stat kind per player record, got %d", len(outer))
	}
	for kind, inner := range outer {
		r.Kind = kind
		r.Weeks = inner.Week
	}
	return nil
}

// WeekValues returns the statId->value map for the given year and week, or
// nil when the record carries nothing for that week.
func (r *RawStatRecord) WeekValues(year, week int) map[string]StatValue {
	return r.Weeks[strconv.Itoa(year)][strconv.Itoa(week)]
}

// RawPlayerStats maps provider player id to that player's raw record.
type RawPlayerStats map[string]RawStatRecord

// WeekStatsResponse wraps the weekstats/weekprojectedstats payloads. The game
// id under systemConfig is a payload identifier, not an actual game.
type WeekStatsResponse struct {
	SystemConfig struct {
		CurrentGameID string `json:"currentGameId"`
	} `json:"systemConfig"`
	Games map[string]struct {
		Players RawPlayerStats `json:"players"`
	} `json:"games"`
}

// PlayerStats extracts the per-player records from the response.
func (r *WeekStatsResponse) PlayerStats() RawPlayerStats {
	return r.Games[r.SystemConfig.CurrentGameID].Players
}

// NGSContentResponse wraps the per-player metadata payload.
type NGSContentResponse struct {
	Games map[string]struct {
		Players map[string]NGSPlayer `json:"players"`
	} `json:"games"`
}

type NGSPlayer struct {
	Name             string `json:"name"`
	Position         string `json:"position"`
	NFLTeamAbbr      string `json:"nflTeamAbbr"`
	InjuryGameStatus string `json:"injuryGameStatus"`
}

// Player finds the requested player id under whichever game key the payload
// uses.
func (r *NGSContentResponse) Player(id string) (NGSPlayer, bool) {
	for _, game := range r.Games {
		if p, ok := game.Players[id]; ok {
			return p, true
		}
	}
	return NGSPlayer{}, false
}
