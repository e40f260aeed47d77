package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/time/rate"

	"github.com/hanumanji/chalisa-bot/internal/dal"
)

// ErrBlocked is reported by the messenger when the recipient blocked the bot.
var ErrBlocked = errors.New("recipient blocked the bot")

type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type (
	SendFailure struct {
		ChatID int64
		Err    error
	}

	// FanoutReport sums up one daily fan-out run.
	FanoutReport struct {
		Delivered int
		Completed int
		Skipped   int
		Failures  []SendFailure
	}
)

// Delivery sends verses: on demand for a single chat, or as the daily fan-out
// over all subscribers.
type Delivery struct {
	engine    *Engine
	store     SubscribersStore
	messenger Messenger
	limiter   *rate.Limiter

	log *slog.Logger
	mx  *sync.Mutex
}

func NewDelivery(engine *Engine, store SubscribersStore, messenger Messenger, limiter *rate.Limiter, log *slog.Logger) *Delivery {
	return &Delivery{
		engine:    engine,
		store:     store,
		messenger: messenger,
		limiter:   limiter,

		log: log.With("component", "service").With("service", "delivery"),
		mx:  &sync.Mutex{},
	}
}

// DeliverNext advances the chat and sends the resulting verse or completion
// notice. Paused subscribers get nothing. The progress write commits before
// the send, so a send failure never rewinds the day counter.
func (s *Delivery) DeliverNext(ctx context.Context, chatID int64) error {
	step, err := s.engine.Advance(chatID)
	if err != nil {
		return fmt.Errorf("advance: %w", err)
	}

	text, ok := RenderStep(step)
	if !ok {
		return nil
	}

	return s.send(ctx, chatID, text)
}

// RunDailyFanout advances and delivers to every non-paused subscriber known at
// the start of the run. Per-subscriber failures are collected into the report
// and never halt the loop; only the initial subscriber listing is fatal.
func (s *Delivery) RunDailyFanout(ctx context.Context) (FanoutReport, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	s.log.InfoContext(ctx, "Starting daily fanout")

	subs, err := s.store.ListSubscribers()
	if err != nil {
		return FanoutReport{}, fmt.Errorf("list subscribers: %w", err)
	}

	var report FanoutReport
	for _, sub := range subs {
		if sub.Day == dal.Paused {
			report.Skipped++
			continue
		}

		step, err := s.engine.Advance(sub.ChatID)
		if err != nil {
			s.log.ErrorContext(ctx, "failed to advance subscriber", "chatID", sub.ChatID, "error", err)
			report.Failures = append(report.Failures, SendFailure{ChatID: sub.ChatID, Err: err})
			continue
		}

		text, ok := RenderStep(step)
		if !ok {
			// paused between listing and advance
			report.Skipped++
			continue
		}

		if err := s.send(ctx, sub.ChatID, text); err != nil {
			s.log.WarnContext(ctx, "failed to deliver verse", "chatID", sub.ChatID, "error", err)
			report.Failures = append(report.Failures, SendFailure{ChatID: sub.ChatID, Err: err})
			continue
		}

		if step.Kind == StepCompleted {
			report.Completed++
		} else {
			report.Delivered++
		}
	}

	s.log.InfoContext(ctx, "Daily fanout finished",
		"delivered", report.Delivered,
		"completed", report.Completed,
		"skipped", report.Skipped,
		"failed", len(report.Failures))

	return report, nil
}

// pauseBlocked writes the paused sentinel under the same per-chat lock the
// engine advances with, so it cannot interleave with a concurrent advance.
func (s *Delivery) pauseBlocked(chatID int64) error {
	lock := s.engine.locks.Get(chatID)
	lock.Lock()
	defer lock.Unlock()

	return s.store.PutProgress(chatID, dal.Paused)
}

func (s *Delivery) send(ctx context.Context, chatID int64, text string) error {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for send slot: %w", err)
		}
	}

	if err := s.messenger.SendMessage(ctx, chatID, text); err != nil {
		if errors.Is(err, ErrBlocked) {
			s.log.Info("bot is blocked by user, pausing subscription", "chatID", chatID)
			if perr := s.pauseBlocked(chatID); perr != nil {
				s.log.Error("failed to pause blocked subscriber", "chatID", chatID, "error", perr)
			}
		}
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
