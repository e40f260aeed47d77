package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tb "gopkg.in/telebot.v3"

	"github.com/hanumanji/chalisa-bot/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/telebot.go -mock_names Context=MockTelebotContext gopkg.in/telebot.v3/ Context

//go:generate mockgen -package mocks -destination mocks/services.go . SubscriberService,DeliveryService,BroadcastService

const (
	// referralPayload marks deep links shared from the /start button.
	referralPayload = "join"

	btnTextShare = "🔗 Share this bot"

	msgPaused         = "⏸️ You've paused daily verses. Type /resume anytime to continue."
	msgResumed        = "✅ Resumed daily verses. Jai Hanuman! 🙏"
	msgBroadcastUsage = "Usage: /broadcast <message>"
	msgNotAuthorized  = "❌ You are not authorized."
	msgBroadcastSent  = "✅ Broadcast sent."
	msgErrorGeneric   = "Something went wrong. Please try again later."
)

type SubscriberService interface {
	Register(chatID int64) (bool, error)
	Pause(chatID int64) error
	Resume(chatID int64) (bool, error)
}

type DeliveryService interface {
	DeliverNext(ctx context.Context, chatID int64) error
}

type BroadcastService interface {
	Authorized(requesterID int64) bool
	Send(ctx context.Context, requesterID int64, text string) (service.BroadcastReport, error)
}

type Handler struct {
	subscribers SubscriberService
	delivery    DeliveryService
	broadcast   BroadcastService

	log *slog.Logger
}

func NewHandler(subscribers SubscriberService, delivery DeliveryService, broadcast BroadcastService, log *slog.Logger) *Handler {
	return &Handler{
		subscribers: subscribers,
		delivery:    delivery,
		broadcast:   broadcast,
		log:         log,
	}
}

func (h *Handler) Start(c tb.Context) error {
	chatID := c.Sender().ID

	created, err := h.subscribers.Register(chatID)
	if err != nil {
		h.log.Error("failed to register subscriber",
			"error", err,
			"chatID", chatID)
		return c.Send(msgErrorGeneric)
	}

	h.log.Debug("start handler called",
		"chatID", chatID,
		"created", created)

	if err := c.Send(service.IntroMessage, shareMarkup(c.Bot().Me.Username)); err != nil {
		return err
	}

	// Deep links shared via the button deliver the first verse right away.
	if c.Message().Payload == referralPayload {
		if err := h.delivery.DeliverNext(context.Background(), chatID); err != nil {
			h.log.Error("failed to deliver verse on join",
				"error", err,
				"chatID", chatID)
			return c.Send(msgErrorGeneric)
		}
	}

	return nil
}

func (h *Handler) Stop(c tb.Context) error {
	chatID := c.Sender().ID

	if err := h.subscribers.Pause(chatID); err != nil {
		h.log.Error("failed to pause subscriber",
			"error", err,
			"chatID", chatID)
		return c.Send(msgErrorGeneric)
	}

	h.log.Info("subscriber paused", "chatID", chatID)
	return c.Send(msgPaused)
}

func (h *Handler) Resume(c tb.Context) error {
	chatID := c.Sender().ID

	resumed, err := h.subscribers.Resume(chatID)
	if err != nil {
		h.log.Error("failed to resume subscriber",
			"error", err,
			"chatID", chatID)
		return c.Send(msgErrorGeneric)
	}

	h.log.Info("resume handler called",
		"chatID", chatID,
		"resumed", resumed)

	if err := c.Send(msgResumed); err != nil {
		return err
	}

	if err := h.delivery.DeliverNext(context.Background(), chatID); err != nil {
		h.log.Error("failed to deliver verse on resume",
			"error", err,
			"chatID", chatID)
		return c.Send(msgErrorGeneric)
	}

	return nil
}

func (h *Handler) Broadcast(c tb.Context) error {
	chatID := c.Sender().ID

	// Identity first: a non-admin gets the rejection, not the usage hint.
	if !h.broadcast.Authorized(chatID) {
		h.log.Warn("broadcast rejected", "chatID", chatID)
		return c.Send(msgNotAuthorized)
	}

	text := strings.TrimSpace(c.Message().Payload)
	if text == "" {
		return c.Send(msgBroadcastUsage)
	}

	report, err := h.broadcast.Send(context.Background(), chatID, text)
	if errors.Is(err, service.ErrNotAuthorized) {
		return c.Send(msgNotAuthorized)
	}
	if err != nil {
		h.log.Error("failed to broadcast",
			"error", err,
			"chatID", chatID)
		return c.Send(msgErrorGeneric)
	}

	h.log.Info("broadcast sent",
		"chatID", chatID,
		"sent", report.Sent,
		"skipped", report.Skipped,
		"failures", len(report.Failures))

	reply := msgBroadcastSent
	if len(report.Failures) > 0 {
		reply = fmt.Sprintf("%s %d recipient(s) failed.", msgBroadcastSent, len(report.Failures))
	}
	return c.Send(reply)
}

// shareMarkup builds the inline keyboard with a deep link inviting others to join.
func shareMarkup(botName string) *tb.ReplyMarkup {
	markup := &tb.ReplyMarkup{}
	share := markup.URL(btnTextShare, fmt.Sprintf("https://t.me/%s?start=%s", botName, referralPayload))
	markup.Inline(markup.Row(share))
	return markup
}
