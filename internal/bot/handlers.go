package bot

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"turkeybowl/internal/report"
	"turkeybowl/internal/service"
)

type Handler struct {
	pipeline *service.PipelineService
}

func NewHandler(pipeline *service.PipelineService) *Handler {
	return &Handler{pipeline: pipeline}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to the Turkey Bowl! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/board - Current leaderboard\n/roster <participant> - View a participant's roster\n/week - Show the season week being scored\n/refresh - Re-pull stats and recompute the leaderboard"
	case "board":
		h.handleBoard(&msg)
	case "roster":
		h.handleRoster(&msg, args)
	case "week":
		h.handleWeek(&msg)
	case "refresh":
		h.handleRefresh(&msg)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleBoard(msg *tgbotapi.MessageConfig) {
	results := h.pipeline.LatestResults()
	if results == nil {
		msg.Text = "No results yet. Use /refresh to run the first pull."
		return
	}
	msg.Text = report.LeaderboardMessage(results)
}

func (h *Handler) handleRoster(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Please provide a participant name. Usage: /roster <participant>"
		return
	}
	results := h.pipeline.LatestResults()
	if results == nil {
		msg.Text = "No results yet. Use /refresh to run the first pull."
		return
	}

	participant, ok := matchParticipant(args, results.Participants)
	if !ok {
		msg.Text = fmt.Sprintf("🔍 No participant found matching '%s'.", args)
		return
	}
	msg.Text = report.RosterMessage(results.Rosters[participant])
}

func (h *Handler) handleWeek(msg *tgbotapi.MessageConfig) {
	week := h.pipeline.Week()
	msg.Text = fmt.Sprintf("Scoring week %d of the %d season.", week.Week, week.Year)
}

func (h *Handler) handleRefresh(msg *tgbotapi.MessageConfig) {
	results, err := h.pipeline.Run()
	if err != nil {
		if errors.Is(err, service.ErrNothingDrafted) {
			msg.Text = "The draft sheet is still blank. Draft first!"
			return
		}
		msg.Text = fmt.Sprintf("Error running weekly pull: %v", err)
		return
	}
	msg.Text = report.LeaderboardMessage(results)
}

// matchParticipant finds the best fuzzy match for a typed name.
func matchParticipant(query string, participants []string) (string, bool) {
	best := ""
	bestScore := 0.0
	threshold := 0.6

	for _, participant := range participants {
		candidate := strings.ToLower(participant)
		distance := fuzzy.LevenshteinDistance(strings.ToLower(query), candidate)
		maxLen := float64(max(len(query), len(candidate)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			best = participant
		}
	}

	return best, best != ""
}
