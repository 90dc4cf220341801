package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/artur/thor-downloader/internal/database/repository"
	"github.com/artur/thor-downloader/internal/downloader"
	"github.com/artur/thor-downloader/internal/platform"
	"github.com/artur/thor-downloader/internal/quota"
	"github.com/artur/thor-downloader/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// probeTimeout bounds the metadata lookup that decorates the quality
// menu; the menu is shown without a title when it expires.
const probeTimeout = 10 * time.Second

// DownloadHandler turns submitted links into quality menus and button
// presses into download requests.
type DownloadHandler struct {
	orchestrator  *service.Orchestrator
	userRepo      *repository.UserRepository
	probe         downloader.Probe
	pending       *pendingLinks
	paymentNumber string
	vipPrice      string
}

func NewDownloadHandler(orchestrator *service.Orchestrator, userRepo *repository.UserRepository, probe downloader.Probe, paymentNumber, vipPrice string) *DownloadHandler {
	return &DownloadHandler{
		orchestrator:  orchestrator,
		userRepo:      userRepo,
		probe:         probe,
		pending:       newPendingLinks(),
		paymentNumber: paymentNumber,
		vipPrice:      vipPrice,
	}
}

func (h *DownloadHandler) CanHandle(update tgbotapi.Update) bool {
	if update.Message != nil {
		return !update.Message.IsCommand() && strings.TrimSpace(update.Message.Text) != ""
	}
	if update.CallbackQuery != nil {
		data := update.CallbackQuery.Data
		return strings.HasPrefix(data, downloadPrefix+":") || data == callbackUpgrade || data == callbackHelp
	}
	return false
}

func (h *DownloadHandler) Handle(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallback(bot, update)
		return
	}
	h.handleLink(bot, update)
}

// handleLink classifies the submitted text and answers with either the
// quality menu or the unrecognized-platform notice.
func (h *DownloadHandler) handleLink(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	url := strings.TrimSpace(update.Message.Text)
	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	p, ok := platform.Classify(url)
	if !ok {
		msg := tgbotapi.NewMessage(chatID,
			"⚠️ Platform not recognized! Please send a link from:\n"+
				"- YouTube\n- TikTok\n- Instagram\n- Twitter")
		if _, err := bot.Send(msg); err != nil {
			log.Printf("[DL] Failed to send notice: %v", err)
		}
		return
	}

	bot.Send(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))

	// Not everyone arrives via /start; the user row must exist before
	// any of their downloads are counted.
	if _, err := h.userRepo.Upsert(userID, update.Message.From.UserName); err != nil {
		log.Printf("[DL] Failed to upsert user %d: %v", userID, err)
	}

	vip, err := h.userRepo.IsVIP(userID)
	if err != nil {
		log.Printf("[DL] Failed to check vip for user %d: %v", userID, err)
	}

	token := h.pending.Add(pendingLink{URL: url, Platform: p, UserID: userID})

	text := fmt.Sprintf("🔍 Link recognized: %s %s\n", p.Icon, p.Name)
	if title := h.probeTitle(p, url); title != "" {
		text += "🎞 " + title + "\n"
	}
	text += "Choose download quality:"

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = h.qualityKeyboard(p, token, vip)
	if _, err := bot.Send(msg); err != nil {
		log.Printf("[DL] Failed to send quality menu: %v", err)
	}
}

func (h *DownloadHandler) probeTitle(p platform.Platform, url string) string {
	if h.probe == nil || p.Key != "youtube" {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	title, err := h.probe.Title(ctx, url)
	if err != nil {
		log.Printf("[DL] Probe failed for %s: %v", url, err)
		return ""
	}
	return title
}

func (h *DownloadHandler) qualityKeyboard(p platform.Platform, token string, vip bool) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, q := range platform.MenuFor(p, vip) {
		btn := tgbotapi.NewInlineKeyboardButtonData(
			q.Emoji+" "+q.Label,
			encodeDownloadCallback(token, q.Token),
		)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
	}
	if !vip {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💎 Upgrade to VIP", callbackUpgrade),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (h *DownloadHandler) handleCallback(bot *tgbotapi.BotAPI, update tgbotapi.Update) {
	callback := update.CallbackQuery
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID

	switch {
	case callback.Data == callbackUpgrade:
		bot.Send(tgbotapi.NewCallback(callback.ID, ""))
		edit := tgbotapi.NewEditMessageText(chatID, messageID, h.upgradeText())
		if _, err := bot.Send(edit); err != nil {
			log.Printf("[DL] Failed to send upgrade info: %v", err)
		}

	case callback.Data == callbackHelp:
		bot.Send(tgbotapi.NewCallback(callback.ID, ""))
		if _, err := bot.Send(tgbotapi.NewMessage(chatID, helpText())); err != nil {
			log.Printf("[DL] Failed to send help: %v", err)
		}

	default:
		h.handleDownloadCallback(bot, callback)
	}
}

func (h *DownloadHandler) handleDownloadCallback(bot *tgbotapi.BotAPI, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID

	dl, err := parseDownloadCallback(callback.Data)
	if err != nil {
		log.Printf("[DL] Bad callback payload: %v", err)
		bot.Send(tgbotapi.NewCallback(callback.ID, ""))
		return
	}

	link, ok := h.pending.Get(dl.Token)
	if !ok {
		bot.Send(tgbotapi.NewCallback(callback.ID, ""))
		edit := tgbotapi.NewEditMessageText(chatID, messageID,
			"⌛ This menu has expired. Please send the link again.")
		bot.Send(edit)
		return
	}

	// The token is bound to whoever submitted the link; in group chats
	// other members can press the buttons too.
	if link.UserID != callback.From.ID {
		bot.Send(tgbotapi.NewCallback(callback.ID, "This menu belongs to another user."))
		return
	}

	if _, err := h.userRepo.Upsert(callback.From.ID, callback.From.UserName); err != nil {
		log.Printf("[DL] Failed to upsert user %d: %v", callback.From.ID, err)
	}

	// The payload is client-controlled, so the menu filter is applied
	// again before the job starts.
	vip, err := h.userRepo.IsVIP(callback.From.ID)
	if err != nil {
		log.Printf("[DL] Failed to check vip for user %d: %v", callback.From.ID, err)
	}
	if !platform.AllowedQuality(link.Platform, dl.Quality, vip) {
		bot.Send(tgbotapi.NewCallback(callback.ID, ""))
		bot.Send(tgbotapi.NewEditMessageText(chatID, messageID,
			"❌ "+dl.Quality+" is not available for you here. Send the link again to pick a quality."))
		return
	}

	bot.Send(tgbotapi.NewCallback(callback.ID, "Downloading "+dl.Quality+"..."))
	bot.Send(tgbotapi.NewEditMessageText(chatID, messageID,
		"⚡ Downloading in "+dl.Quality+"..."))
	bot.Send(tgbotapi.NewChatAction(chatID, tgbotapi.ChatUploadVideo))

	filePath, err := h.orchestrator.Request(context.Background(), link.URL, dl.Quality, callback.From.ID)
	if err != nil {
		bot.Send(tgbotapi.NewEditMessageText(chatID, messageID, failureText(err)))
		return
	}

	h.deliver(bot, chatID, messageID, filePath, dl.Quality)
}

// deliver sends the artifact and removes the local file afterwards.
func (h *DownloadHandler) deliver(bot *tgbotapi.BotAPI, chatID int64, messageID int, filePath, quality string) {
	defer os.Remove(filePath)

	var msg tgbotapi.Chattable
	if quality == downloader.QualityMP3 {
		audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(filePath))
		audio.Title = filepath.Base(filePath)
		audio.Caption = "🎵 Converted to MP3!"
		msg = audio
	} else {
		video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(filePath))
		video.Caption = "🎬 Downloaded in " + quality + "!"
		msg = video
	}

	if _, err := bot.Send(msg); err != nil {
		log.Printf("[DL] Failed to send file: %v", err)
		bot.Send(tgbotapi.NewEditMessageText(chatID, messageID,
			"❌ Something went wrong while sending the file!"))
		return
	}

	bot.Send(tgbotapi.NewDeleteMessage(chatID, messageID))
}

func (h *DownloadHandler) upgradeText() string {
	return "💎 Upgrade to VIP\n\n" +
		"Price: " + h.vipPrice + "\n" +
		"Payment: Vodafone Cash\n\n" +
		"1. Send the amount to: " + h.paymentNumber + "\n" +
		"2. Send a photo of the receipt\n" +
		"3. Activation within 24 hours\n\n" +
		"VIP perks:\n" +
		"- 4K quality\n- Unlimited downloads\n- Blazing speeds"
}

// failureText maps the error taxonomy to user-facing messages.
func failureText(err error) string {
	var exceeded *quota.ExceededError
	if errors.As(err, &exceeded) {
		return fmt.Sprintf("❌ You've used your free downloads for today (%d per day). Upgrade to VIP to keep going!", exceeded.Limit)
	}

	var transcode *downloader.TranscodeError
	if errors.As(err, &transcode) {
		return "❌ Audio conversion failed: " + transcode.Err.Error()
	}

	var retrieval *downloader.RetrievalError
	if errors.As(err, &retrieval) {
		return "❌ Download failed: " + retrieval.Err.Error()
	}

	return "❌ " + err.Error()
}
