// Package scheduler drives the watch mode: re-run the pipeline on a cron
// cadence during game day and push standings to the chat.
package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"turkeybowl/internal/report"
	"turkeybowl/internal/service"
)

type Scheduler struct {
	s           gocron.Scheduler
	pipeline    *service.PipelineService
	sendMessage func(string) error
}

// NewScheduler builds a watcher that runs the pipeline on the given cron
// expression. Times are interpreted in US Central, where the bowl is played.
// sendMessage may be nil when no chat is configured.
func NewScheduler(pipeline *service.PipelineService, cronExpr string, sendMessage func(string) error) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago")
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	sched := &Scheduler{
		s:           s,
		pipeline:    pipeline,
		sendMessage: sendMessage,
	}

	_, err = s.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(sched.runAndNotify),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create watch job: %w", err)
	}

	return sched, nil
}

func (s *Scheduler) Start() {
	s.s.Start()
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) runAndNotify() {
	results, err := s.pipeline.Run()
	if err != nil {
		if errors.Is(err, service.ErrNothingDrafted) {
			slog.Info("Draft sheet still blank, skipping run")
			return
		}
		slog.Error("Failed to run weekly pull", "error", err)
		return
	}

	if s.sendMessage == nil {
		return
	}
	if err := s.sendMessage(report.LeaderboardMessage(results)); err != nil {
		slog.Error("Failed to send leaderboard", "error", err)
	}
}
