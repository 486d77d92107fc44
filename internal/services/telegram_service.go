package services

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pereval/internal/models"
)

type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramService пишет модераторам в общий чат о новых перевалах.
type TelegramService struct {
	bot    botSender
	chatID int64
}

// NewTelegramService проверяет токен запросом getMe. timeout ограничивает каждый запрос к API,
// включая getMe на старте.
func NewTelegramService(botToken string, chatID int64, timeout time.Duration) (*TelegramService, error) {
	return newTelegramService(botToken, tgbotapi.APIEndpoint, chatID, timeout)
}

func newTelegramService(botToken, endpoint string, chatID int64, timeout time.Duration) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(botToken, endpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return &TelegramService{bot: bot, chatID: chatID}, nil
}

func (t *TelegramService) NotifySubmitted(ctx context.Context, p *models.Pereval) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return t.NotifyModerators(p)
}

func (t *TelegramService) NotifyModerators(p *models.Pereval) error {
	if t == nil || t.bot == nil || t.chatID == 0 {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, moderatorText(p))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage failed: %w", err)
	}
	return nil
}

func moderatorText(p *models.Pereval) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Новый перевал №%d</b>\n", p.ID)
	fmt.Fprintf(&b, "%s\n", html.EscapeString(p.Title))
	fmt.Fprintf(&b, "Координаты: %.4f, %.4f, %d м\n", p.Coords.Latitude, p.Coords.Longitude, p.Coords.Height)
	fmt.Fprintf(&b, "Автор: %s %s &lt;%s&gt;\n", html.EscapeString(p.User.Fam), html.EscapeString(p.User.Name), html.EscapeString(p.User.Email))
	fmt.Fprintf(&b, "Фото: %d", len(p.Images))
	return b.String()
}
