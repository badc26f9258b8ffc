// Package cmd is the command-line entrypoint for the Turkey Bowl pipeline.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"turkeybowl/internal/api/nfl"
	"turkeybowl/internal/catalog"
	"turkeybowl/internal/config"
	"turkeybowl/internal/draft"
	"turkeybowl/internal/repository/memory"
	"turkeybowl/internal/season"
	"turkeybowl/internal/service"
)

var cfg *config.Config

var (
	flagWeek    int
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:           "turkeybowl",
	Short:         "Thanksgiving fantasy football leaderboard pipeline.",
	Long:          `Turkey Bowl pulls projected and live NFL player stats for the Thanksgiving week, scores each participant's drafted roster, and ranks the field.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			slog.Debug("No .env file loaded", "error", err)
		}
		var err error
		cfg, err = config.New()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagWeek, "week", 0, "override the computed pull week")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

// seasonYear resolves the configured season year, defaulting to the current
// calendar year.
func seasonYear() int {
	if cfg.Season.Year != 0 {
		return cfg.Season.Year
	}
	return time.Now().Year()
}

func newResolver() *season.Resolver {
	resolver := season.NewResolver(seasonYear())
	if flagWeek > 0 {
		resolver.SetWeek(flagWeek)
	} else if cfg.Season.WeekOverride > 0 {
		resolver.SetWeek(cfg.Season.WeekOverride)
	}
	return resolver
}

func newDraft() *draft.Draft {
	return draft.New(seasonYear(), cfg.Season.DataDir)
}

// newPipeline wires the pipeline from configuration: the stats client, the
// season catalogs, the draft sheet loader, and the week resolver.
func newPipeline() (*service.PipelineService, error) {
	stats, err := catalog.LoadStatCatalog(cfg.Season.StatsFile)
	if err != nil {
		return nil, fmt.Errorf("loading stat catalog: %w", err)
	}

	players, err := catalog.LoadPlayerCatalog(filepath.Join(cfg.Season.DataDir, "player_ids.json"))
	if err != nil {
		return nil, fmt.Errorf("loading player catalog: %w", err)
	}

	api := nfl.NewAPI(nfl.NewClient(cfg.NFLAPI))

	return service.NewPipelineService(
		api,
		newDraft(),
		stats,
		players,
		newResolver(),
		memory.NewRepository(),
		cfg.Season.DataDir,
	), nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Error running command", "error", err)
		os.Exit(1)
	}
}
