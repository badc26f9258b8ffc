// Package service orchestrates the weekly pull: resolve the week, load
// rosters, normalize both stat batches, merge, and rank.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"turkeybowl/internal/aggregate"
	"turkeybowl/internal/catalog"
	"turkeybowl/internal/draft"
	"turkeybowl/internal/leaderboard"
	"turkeybowl/internal/models"
	"turkeybowl/internal/repository/memory"
	"turkeybowl/internal/season"
)

// ErrNothingDrafted signals that the draft sheet is still blank; a run before
// the draft has happened is an early exit, not a failure.
var ErrNothingDrafted = errors.New("no players drafted yet")

// StatsProvider is the remote stats source. The NFL API client implements it.
type StatsProvider interface {
	ProjectedPlayerStats(year, week int) (models.RawPlayerStats, error)
	ActualPlayerStats(year, week int) (models.RawPlayerStats, error)
	catalog.MetadataFetcher
}

// RosterLoader supplies the drafted rosters. The draft sheet loader
// implements it.
type RosterLoader interface {
	Load() (map[string]models.Roster, error)
}

type PipelineService struct {
	provider StatsProvider
	rosters  RosterLoader
	stats    *catalog.StatCatalog
	players  *catalog.PlayerCatalog
	resolver *season.Resolver
	repo     *memory.Repository
	dataDir  string
}

func NewPipelineService(
	provider StatsProvider,
	rosters RosterLoader,
	stats *catalog.StatCatalog,
	players *catalog.PlayerCatalog,
	resolver *season.Resolver,
	repo *memory.Repository,
	dataDir string,
) *PipelineService {
	return &PipelineService{
		provider: provider,
		rosters:  rosters,
		stats:    stats,
		players:  players,
		resolver: resolver,
		repo:     repo,
		dataDir:  dataDir,
	}
}

func (s *PipelineService) Week() models.SeasonWeek {
	return s.resolver.SeasonWeek()
}

// LatestResults returns the most recent run's output, or nil before the
// first run.
func (s *PipelineService) LatestResults() *models.Results {
	return s.repo.GetResults()
}

// Run executes one full pipeline pass and stores the results.
func (s *PipelineService) Run() (*models.Results, error) {
	year, week := s.resolver.Year(), s.resolver.Week()
	slog.Info("Running weekly pull", "year", year, "week", week)

	rosters, err := s.rosters.Load()
	if err != nil {
		return nil, fmt.Errorf("loading rosters: %w", err)
	}
	if !draft.AllDrafted(rosters) {
		return nil, ErrNothingDrafted
	}

	projected, err := s.projectedTable(year, week)
	if err != nil {
		return nil, err
	}
	actual, err := s.actualTable(year, week, projected)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]*models.MergedRoster, len(rosters))
	participants := make([]string, 0, len(rosters))
	for participant, roster := range rosters {
		mr := aggregate.NewMergedRoster(participant, roster)
		aggregate.Merge(mr, projected, false)
		aggregate.Merge(mr, actual, true)
		aggregate.Interleave(mr)
		merged[participant] = mr
		participants = append(participants, participant)
	}
	sort.Strings(participants)

	results := &models.Results{
		Week:         models.SeasonWeek{Year: year, Week: week},
		Board:        leaderboard.Compute(merged),
		Rosters:      merged,
		Participants: participants,
		ComputedAt:   time.Now(),
	}
	s.repo.SaveResults(results)
	return results, nil
}

// projectedTable pulls the projected batch, reconciles the player catalog
// against it, and normalizes. The projected pull anchors the catalog: a stale
// catalog is rebuilt from this batch, and any ids it still misses are
// repaired on demand before normalization drops the rest.
func (s *PipelineService) projectedTable(year, week int) (*models.PointsTable, error) {
	raw, err := s.provider.ProjectedPlayerStats(year, week)
	if err != nil {
		return nil, fmt.Errorf("pulling projected stats: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("projected stats response is empty for %d week %d", year, week)
	}

	if err := s.players.Refresh(year, raw, s.provider); err != nil {
		return nil, fmt.Errorf("refreshing player catalog: %w", err)
	}
	s.repairCatalog(raw)

	normalizer := &aggregate.Normalizer{Stats: s.stats, Players: s.players}
	table, err := normalizer.Normalize(year, week, raw, s.projectedCachePath(year, week))
	if err != nil {
		return nil, fmt.Errorf("normalizing projected stats: %w", err)
	}
	return table, nil
}

func (s *PipelineService) actualTable(year, week int, projected *models.PointsTable) (*models.PointsTable, error) {
	raw, err := s.provider.ActualPlayerStats(year, week)
	if err != nil {
		return nil, fmt.Errorf("pulling actual stats: %w", err)
	}
	if len(raw) == 0 {
		slog.Info("No actual stats yet, scoring zeros", "year", year, "week", week)
		return aggregate.ZeroActualTable(projected), nil
	}

	s.repairCatalog(raw)

	normalizer := &aggregate.Normalizer{Stats: s.stats, Players: s.players}
	table, err := normalizer.Normalize(year, week, raw, "")
	if err != nil {
		return nil, fmt.Errorf("normalizing actual stats: %w", err)
	}
	return table, nil
}

func (s *PipelineService) repairCatalog(raw models.RawPlayerStats) {
	missing := s.players.MissingIDs(aggregate.PlayerIDs(raw))
	if len(missing) == 0 {
		return
	}
	if unresolved := s.players.Repair(missing, s.provider); len(unresolved) > 0 {
		slog.Warn("Players left unresolved after catalog repair", "ids", unresolved)
	}
}

// projectedCachePath names the immutable projected snapshot for a week.
func (s *PipelineService) projectedCachePath(year, week int) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("%d", year),
		fmt.Sprintf("%d_%d_projected_player_pts.json", year, week))
}
