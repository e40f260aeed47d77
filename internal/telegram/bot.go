package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
)

type Bot struct {
	bot *tb.Bot

	log *slog.Logger
}

func NewBot(token string, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd // it's ok
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		log: log.With("component", "bot"),
	}, nil
}

// Sender returns the outbound messenger backed by the same bot connection.
func (b *Bot) Sender() *Sender {
	return NewSender(b.bot)
}

func (b *Bot) Start(ctx context.Context, handler *Handler) error {
	// Register command handlers
	b.bot.Handle("/start", handler.Start)
	b.bot.Handle("/stop", handler.Stop)
	b.bot.Handle("/resume", handler.Resume)
	b.bot.Handle("/broadcast", handler.Broadcast)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}
