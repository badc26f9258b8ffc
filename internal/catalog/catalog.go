package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"turkeybowl/internal/models"
)

// StatCatalog translates numeric stat ids to semantic column names. It is
// read-only within a run; the file is maintained alongside the other season
// assets.
type StatCatalog struct {
	defs map[string]models.StatDefinition
}

func LoadStatCatalog(path string) (*StatCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stat catalog: %w", err)
	}
	defs := make(map[string]models.StatDefinition)
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parsing stat catalog %s: %w", path, err)
	}
	return &StatCatalog{defs: defs}, nil
}

func NewStatCatalog(defs map[string]models.StatDefinition) *StatCatalog {
	if defs == nil {
		defs = make(map[string]models.StatDefinition)
	}
	return &StatCatalog{defs: defs}
}

func (c *StatCatalog) Lookup(statID string) (models.StatDefinition, bool) {
	def, ok := c.defs[statID]
	return def, ok
}

// ColumnName returns the stat's name with spaces replaced by underscores.
// Unmapped ids keep the raw id as their column name.
func (c *StatCatalog) ColumnName(statID string) string {
	def, ok := c.defs[statID]
	if !ok || def.Name == "" {
		return statID
	}
	return strings.ReplaceAll(def.Name, " ", "_")
}

func (c *StatCatalog) Len() int { return len(c.defs) }

// PlayerCatalog maps provider player ids to identity metadata. The persisted
// file carries a "year" sentinel entry used for staleness checks; the catalog
// may be appended to during a run and is written back via Save.
type PlayerCatalog struct {
	path    string
	year    int
	players map[string]models.PlayerInfo
}

func NewPlayerCatalog(path string) *PlayerCatalog {
	return &PlayerCatalog{path: path, players: make(map[string]models.PlayerInfo)}
}

// LoadPlayerCatalog reads the catalog file. A missing file yields an empty
// catalog, which the year sentinel then reports as stale.
func LoadPlayerCatalog(path string) (*PlayerCatalog, error) {
	c := NewPlayerCatalog(path)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading player catalog: %w", err)
	}

	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing player catalog %s: %w", path, err)
	}
	for key, msg := range raw {
		if key == "year" {
			if err := json.Unmarshal(msg, &c.year); err != nil {
				return nil, fmt.Errorf("parsing player catalog year: %w", err)
			}
			continue
		}
		var info models.PlayerInfo
		if err := json.Unmarshal(msg, &info); err != nil {
			return nil, fmt.Errorf("parsing player catalog entry %s: %w", key, err)
		}
		c.players[key] = info
	}
	return c, nil
}

func (c *PlayerCatalog) Path() string { return c.path }
func (c *PlayerCatalog) Year() int    { return c.year }
func (c *PlayerCatalog) Len() int     { return len(c.players) }

// Stale reports whether the catalog was built for a different season.
func (c *PlayerCatalog) Stale(year int) bool { return c.year != year }

func (c *PlayerCatalog) Lookup(id string) (models.PlayerInfo, bool) {
	info, ok := c.players[id]
	return info, ok
}

func (c *PlayerCatalog) Insert(id string, info models.PlayerInfo) {
	c.players[id] = info
}

// MissingIDs returns the given ids that have no catalog entry, sorted
// numerically the way the provider keys them.
func (c *PlayerCatalog) MissingIDs(ids []string) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := c.players[id]; !ok {
			missing = append(missing, id)
		}
	}
	sortPlayerIDs(missing)
	return missing
}

// Save writes the catalog, year sentinel included, back to its file.
func (c *PlayerCatalog) Save() error {
	out := make(map[string]any, len(c.players)+1)
	out["year"] = c.year
	for id, info := range c.players {
		out[id] = info
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding player catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating catalog dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("writing player catalog: %w", err)
	}
	return nil
}

// sortPlayerIDs orders ids by numeric value; non-numeric ids sort last,
// lexically.
func sortPlayerIDs(ids []string) {
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
