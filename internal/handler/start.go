package handler

import (
	"log"

	"github.com/artur/thor-downloader/internal/database/repository"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type StartHandler struct {
	userRepo *repository.UserRepository
}

func NewStartHandler(userRepo *repository.UserRepository) *StartHandler {
	return &StartHandler{
		userRepo: userRepo,
	}
}

func (h *StartHandler) CanHandle(update tgbotapi.Update) bool {
	if update.Message == nil || !update.Message.IsCommand() {
		return false
	}
	cmd := update.Message.Command()
	return cmd == "start" || cmd == "help"
}

func (h *StartHandler) Handle(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	if update.Message.Command() == "help" {
		msg := tgbotapi.NewMessage(update.Message.Chat.ID, helpText())
		if _, err := bot.Send(msg); err != nil {
			log.Printf("[START] Failed to send help: %v", err)
		}
		return
	}

	from := update.Message.From
	userName := getUserName(from.FirstName, from.UserName)

	log.Printf("[START] Greeting user: %s", userName)

	if _, err := h.userRepo.Upsert(from.ID, from.UserName); err != nil {
		log.Printf("[START] Failed to upsert user: %v", err)
	}

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, formatGreeting(userName))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💎 Upgrade to VIP", callbackUpgrade),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛠 Help", callbackHelp),
		),
	)
	if _, err := bot.Send(msg); err != nil {
		log.Printf("[START] Failed to send message: %v", err)
	}
}

func getUserName(firstName, userName string) string {
	if firstName != "" {
		return firstName
	}
	return userName
}

func formatGreeting(userName string) string {
	return "⚡ Welcome to THOR DOWNLOADER, " + userName + "!\n\n" +
		"Send me a video link from:\n" +
		"- YouTube\n- TikTok\n- Instagram\n- Twitter\n\n" +
		"and I'll fetch it for you in the best quality!"
}

func helpText() string {
	return "🛠 How to use:\n\n" +
		"1. Send a video link from:\n" +
		"- YouTube\n- TikTok\n- Instagram\n- Twitter\n\n" +
		"2. Pick a download quality\n\n" +
		"3. Wait for the file\n\n" +
		"💎 VIP perks:\n" +
		"- 4K quality\n- Unlimited downloads\n- Blazing speeds"
}
