package nfl

import (
	"fmt"
	"strconv"

	"turkeybowl/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// ProjectedPlayerStats pulls the raw projected stat records for every player
// in the given season week.
func (a *API) ProjectedPlayerStats(year, week int) (models.RawPlayerStats, error) {
	return a.weekStats("/players/weekprojectedstats", year, week)
}

// ActualPlayerStats pulls the raw live stat records for every player in the
// given season week. An empty map means the provider has no live stats yet.
func (a *API) ActualPlayerStats(year, week int) (models.RawPlayerStats, error) {
	return a.weekStats("/players/weekstats", year, week)
}

func (a *API) weekStats(endpoint string, year, week int) (models.RawPlayerStats, error) {
	var response models.WeekStatsResponse
	params := map[string]string{
		"season": strconv.Itoa(year),
		"week":   strconv.Itoa(week),
	}

	if err := a.client.Get(endpoint, params, &response); err != nil {
		return nil, fmt.Errorf("fetching week stats: %w", err)
	}

	return response.PlayerStats(), nil
}

// PlayerMetadata resolves one player id to name, position, and team via the
// ngs-content endpoint. Used to backfill the player catalog.
func (a *API) PlayerMetadata(id string) (models.PlayerInfo, error) {
	var response models.NGSContentResponse
	params := map[string]string{"playerId": id}

	if err := a.client.Get("/player/ngs-content", params, &response); err != nil {
		return models.PlayerInfo{}, fmt.Errorf("fetching player metadata: %w", err)
	}

	player, ok := response.Player(id)
	if !ok {
		return models.PlayerInfo{}, fmt.Errorf("player %s not present in metadata response", id)
	}

	return models.PlayerInfo{
		Name:         player.Name,
		Position:     player.Position,
		Team:         player.NFLTeamAbbr,
		InjuryStatus: player.InjuryGameStatus,
	}, nil
}
