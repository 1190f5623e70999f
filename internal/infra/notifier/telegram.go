package notifier

import (
	"context"
	"log/slog"

	"event-registration/internal/pkg/config"
	"event-registration/internal/pkg/errs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier posts operator alerts to one chat. With no token or chat it is a no-op.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramNotifier(cfg config.TelegramConfig) (*TelegramNotifier, error) {
	if cfg.Token == "" || cfg.ChatID == 0 {
		slog.Warn("telegram bot token or chat id is empty, chat alerts disabled")
		return &TelegramNotifier{}, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, errs.Wrap(err, "create telegram bot")
	}

	return &TelegramNotifier{bot: bot, chatID: cfg.ChatID}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	if n.bot == nil {
		slog.Debug("chat alert skipped (bot disabled)", "text", text)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "chat alert")
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return errs.Wrap(err, "send telegram message")
	}
	return nil
}
