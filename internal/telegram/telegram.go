// Package telegram sends run reports to a Telegram chat.
package telegram

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/pkg/errors"

	"github.com/dkerobean/WoocommerceOrders/internal/config"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

type Notifier interface {
	Notify(text string) error
}

// Bot posts messages to one chat.
type Bot struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func New(token string, chatID int64) (*Bot, error) {
	return NewWithClient(token, chatID, &http.Client{})
}

func NewWithClient(token string, chatID int64, client *http.Client) (*Bot, error) {
	api, err := tgbotapi.NewBotAPIWithClient(token, client)
	if err != nil {
		return nil, errors.Wrap(err, "failed tgbotapi.NewBotAPIWithClient()")
	}
	return &Bot{api: api, chatID: chatID}, nil
}

func (b *Bot) Notify(text string) error {
	msg := tgbotapi.NewMessage(b.chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		return errors.Wrapf(err, "failed bot.Send(chat:%d)", b.chatID)
	}
	return nil
}

// Noop drops every message. It is used when no bot is configured.
type Noop struct{}

func (Noop) Notify(string) error {
	return nil
}

// NewFromConfig returns the bot configured in [TELEGRAM], or Noop when the
// section is empty or the bot cannot be reached.
func NewFromConfig(cfg *config.Config, logger *logging.Logger) Notifier {
	if cfg.TELEGRAM.BotToken == "" || cfg.TELEGRAM.ChatID == 0 {
		logger.Debug("telegram not configured, reports are not sent")
		return Noop{}
	}
	bot, err := New(cfg.TELEGRAM.BotToken, cfg.TELEGRAM.ChatID)
	if err != nil {
		logger.Errorf("telegram disabled: %v", err)
		return Noop{}
	}
	return bot
}

// SendMessageWithLogError sends text and only logs a failure.
func SendMessageWithLogError(n Notifier, logger *logging.Logger, text string) {
	if err := n.Notify(text); err != nil {
		logger.Errorf("failed send message to telegram: %v", err)
	}
}
