package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/hanumanji/chalisa-bot/internal/dal"
)

// ErrNotAuthorized is returned when a non-admin requests a broadcast.
var ErrNotAuthorized = errors.New("not authorized")

// BroadcastReport sums up one broadcast fan-out.
type BroadcastReport struct {
	Sent     int
	Skipped  int
	Failures []SendFailure
}

// Broadcast fans an administrator message out to all non-paused subscribers.
type Broadcast struct {
	store     SubscribersStore
	messenger Messenger
	limiter   *rate.Limiter
	adminID   int64

	log *slog.Logger
}

func NewBroadcast(store SubscribersStore, messenger Messenger, limiter *rate.Limiter, adminID int64, log *slog.Logger) *Broadcast {
	return &Broadcast{
		store:     store,
		messenger: messenger,
		limiter:   limiter,
		adminID:   adminID,

		log: log.With("component", "service").With("service", "broadcast"),
	}
}

// Authorized reports whether the requester may broadcast.
func (s *Broadcast) Authorized(requesterID int64) bool {
	return requesterID == s.adminID
}

// Send delivers a prefixed copy of text to every subscriber with progress
// other than the paused sentinel. A requester other than the configured admin
// gets ErrNotAuthorized and nothing is sent. Per-recipient failures are
// collected into the report, not propagated.
func (s *Broadcast) Send(ctx context.Context, requesterID int64, text string) (BroadcastReport, error) {
	if !s.Authorized(requesterID) {
		return BroadcastReport{}, fmt.Errorf("requester %d: %w", requesterID, ErrNotAuthorized)
	}

	subs, err := s.store.ListSubscribers()
	if err != nil {
		return BroadcastReport{}, fmt.Errorf("list subscribers: %w", err)
	}

	msg := BroadcastPrefix + text

	var report BroadcastReport
	for _, sub := range subs {
		if sub.Day == dal.Paused {
			report.Skipped++
			continue
		}

		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return report, fmt.Errorf("wait for send slot: %w", err)
			}
		}

		if err := s.messenger.SendMessage(ctx, sub.ChatID, msg); err != nil {
			s.log.WarnContext(ctx, "failed to send broadcast", "chatID", sub.ChatID, "error", err)
			report.Failures = append(report.Failures, SendFailure{ChatID: sub.ChatID, Err: err})
			continue
		}
		report.Sent++
	}

	s.log.InfoContext(ctx, "Broadcast finished",
		"sent", report.Sent,
		"skipped", report.Skipped,
		"failed", len(report.Failures))

	return report, nil
}
