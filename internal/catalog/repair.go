package catalog

import (
	"log/slog"

	"turkeybowl/internal/models"
)

// MetadataFetcher resolves a single player id to identity metadata. The NFL
// API client implements it; tests inject fakes.
type MetadataFetcher interface {
	PlayerMetadata(id string) (models.PlayerInfo, error)
}

// Refresh rebuilds the catalog from the ids of a pulled projected batch when
// the year sentinel says it was built for a different season. Ids whose
// metadata lookup fails are skipped and logged; the refresh itself proceeds.
func (c *PlayerCatalog) Refresh(year int, raw models.RawPlayerStats, fetcher MetadataFetcher) error {
	if !c.Stale(year) {
		slog.Info("Player catalog up to date", "path", c.path, "year", c.year)
		return nil
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sortPlayerIDs(ids)

	slog.Info("Rebuilding player catalog", "year", year, "players", len(ids))
	players := make(map[string]models.PlayerInfo, len(ids))
	for _, id := range ids {
		info, err := fetcher.PlayerMetadata(id)
		if err != nil {
			slog.Warn("Skipping player during catalog refresh", "id", id, "error", err)
			continue
		}
		players[id] = info
	}

	c.players = players
	c.year = year
	return c.Save()
}

// Repair resolves ids that are missing from the catalog via on-demand
// lookups and persists the catalog when anything was added. It returns the
// ids that stayed unresolved; per the error policy those are a recoverable
// anomaly, so failures are logged rather than propagated.
func (c *PlayerCatalog) Repair(ids []string, fetcher MetadataFetcher) []string {
	var unresolved []string
	added := false

	for _, id := range ids {
		if _, ok := c.players[id]; ok {
			continue
		}
		info, err := fetcher.PlayerMetadata(id)
		if err != nil {
			slog.Warn("Could not resolve undocumented player", "id", id, "error", err)
			unresolved = append(unresolved, id)
			continue
		}
		slog.Info("Resolved undocumented player", "id", id, "name", info.Name)
		c.players[id] = info
		added = true
	}

	if added {
		if err := c.Save(); err != nil {
			slog.Error("Saving player catalog after repair", "error", err)
		}
	}
	return unresolved
}
