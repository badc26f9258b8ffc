package aggregate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"turkeybowl/internal/models"
)

// SavePointsTable writes a points table as an indented JSON document. The
// format round-trips: loading yields a table with the same columns and
// values.
func SavePointsTable(table *models.PointsTable, path string) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding points table: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating cache dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing points table: %w", err)
	}
	return nil
}

// LoadPointsTable reads a cached points table. The wrapped error preserves
// os.ErrNotExist so callers can distinguish a cache miss from a corrupt file.
func LoadPointsTable(path string) (*models.PointsTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading points table: %w", err)
	}
	var table models.PointsTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parsing points table %s: %w", path, err)
	}
	return &table, nil
}
