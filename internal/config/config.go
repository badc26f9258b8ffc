package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Season   Season
	NFLAPI   NFLAPI
	Telegram Telegram
	Watch    Watch
}

type Season struct {
	// Year 0 means the current calendar year.
	Year         int    `envconfig:"SEASON_YEAR"`
	WeekOverride int    `envconfig:"WEEK_OVERRIDE"`
	DataDir      string `envconfig:"DATA_DIR" default:"archive"`
	StatsFile    string `envconfig:"STAT_IDS_FILE" default:"stat_ids.json"`
}

type NFLAPI struct {
	BaseURL string        `envconfig:"NFL_API_BASE_URL" default:"https://api.fantasy.nfl.com/v2"`
	Timeout time.Duration `envconfig:"NFL_API_TIMEOUT" default:"30s"`
}

// Telegram is optional: leaderboard notifications are skipped when the token
// or chat is unset.
type Telegram struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

func (t Telegram) Enabled() bool {
	return t.Token != "" && t.ChatID != 0
}

type Watch struct {
	Cron string `envconfig:"WATCH_CRON" default:"*/20 * * * *"`
}

func New() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	if _, err := cron.ParseStandard(c.Watch.Cron); err != nil {
		return nil, fmt.Errorf("invalid WATCH_CRON %q: %w", c.Watch.Cron, err)
	}
	return &c, nil
}
