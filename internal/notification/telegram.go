package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramMirror copies staff decisions to a Telegram chat so staff
// who live outside Discord still see the audit trail. Disabled when no
// token is configured.
type TelegramMirror struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramMirror(token string, chatID int64, logger logger.Logger) (*TelegramMirror, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, decision mirror disabled")
		return &TelegramMirror{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramMirror{bot: bot, chatID: chatID, logger: logger}, nil
}

func (m *TelegramMirror) MirrorDecision(ctx context.Context, text string) {
	if m.bot == nil {
		m.logger.Debug("decision mirror skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		m.logger.Debug("decision mirror skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(m.chatID, text)
	if _, err := m.bot.Send(msg); err != nil {
		m.logger.Error("failed to mirror decision to telegram",
			logger.Int64("chat_id", m.chatID),
			logger.String("error", err.Error()),
		)
	}
}
