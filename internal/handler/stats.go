package handler

import (
	"fmt"
	"log"

	"github.com/artur/thor-downloader/internal/database/repository"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// StatsHandler answers the admin-only /stats command with ledger totals.
type StatsHandler struct {
	userRepo     *repository.UserRepository
	downloadRepo *repository.DownloadRepository
	adminChatID  int64
}

func NewStatsHandler(userRepo *repository.UserRepository, downloadRepo *repository.DownloadRepository, adminChatID int64) *StatsHandler {
	return &StatsHandler{
		userRepo:     userRepo,
		downloadRepo: downloadRepo,
		adminChatID:  adminChatID,
	}
}

func (h *StatsHandler) CanHandle(update tgbotapi.Update) bool {
	return update.Message != nil && update.Message.IsCommand() && update.Message.Command() == "stats"
}

func (h *StatsHandler) Handle(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	chatID := update.Message.Chat.ID

	if h.adminChatID == 0 || update.Message.From.ID != h.adminChatID {
		bot.Send(tgbotapi.NewMessage(chatID, "This command is not available."))
		return
	}

	users, err := h.userRepo.CountUsers()
	if err != nil {
		log.Printf("[STATS] Failed to count users: %v", err)
		return
	}
	downloads, err := h.downloadRepo.CountAll()
	if err != nil {
		log.Printf("[STATS] Failed to count downloads: %v", err)
		return
	}

	text := fmt.Sprintf("📊 Stats\n\nUsers: %d\nDownloads: %d", users, downloads)

	popular, err := h.downloadRepo.PopularPlatforms(3)
	if err != nil {
		log.Printf("[STATS] Failed to get popular platforms: %v", err)
	} else if len(popular) > 0 {
		text += "\n\nTop platforms:"
		for _, p := range popular {
			text += fmt.Sprintf("\n- %s: %d", p.Platform, p.Count)
		}
	}

	if _, err := bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("[STATS] Failed to send stats: %v", err)
	}
}
