package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"turkeybowl/internal/bot"
	"turkeybowl/internal/scheduler"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the pipeline on a schedule and serve chat commands",
	Long: `Run the pipeline on the configured cron cadence, pushing the updated
leaderboard to the Telegram chat after each pass. When a bot token is
configured the chat can also query results on demand with /board, /roster,
/week, and /refresh.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		pipeline, err := newPipeline()
		if err != nil {
			return err
		}

		var sendMessage func(string) error
		var telegramBot *bot.TelegramBot
		if cfg.Telegram.Enabled() {
			telegramBot, err = bot.NewTelegramBot(cfg.Telegram.Token, cfg.Telegram.ChatID, pipeline)
			if err != nil {
				return err
			}
			sendMessage = telegramBot.SendMessage
		} else {
			slog.Info("Telegram not configured, running watch without notifications")
		}

		sched, err := scheduler.NewScheduler(pipeline, cfg.Watch.Cron, sendMessage)
		if err != nil {
			return err
		}

		sched.Start()
		defer func() {
			if err := sched.Stop(); err != nil {
				slog.Error("Error stopping scheduler", "error", err)
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if telegramBot != nil {
			go func() {
				if err := telegramBot.Start(ctx); err != nil {
					slog.Error("Error running telegram bot", "error", err)
				}
			}()
		}

		<-ctx.Done()
		slog.Info("Shutting down gracefully...")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
