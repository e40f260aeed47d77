package telegram

import (
	"context"
	"errors"
	"fmt"

	tb "gopkg.in/telebot.v3"

	"github.com/hanumanji/chalisa-bot/internal/service"
)

// Sender adapts the telebot client to the service.Messenger interface.
type Sender struct {
	bot *tb.Bot
}

func NewSender(bot *tb.Bot) *Sender {
	return &Sender{bot: bot}
}

func (s *Sender) SendMessage(_ context.Context, chatID int64, text string) error {
	_, err := s.bot.Send(tb.ChatID(chatID), text)
	if errors.Is(err, tb.ErrBlockedByUser) {
		// Return custom error to not depend on bot framework in other places
		return fmt.Errorf("send to %d: %w", chatID, service.ErrBlocked)
	}
	if err != nil {
		return fmt.Errorf("send to %d: %w", chatID, err)
	}
	return nil
}
