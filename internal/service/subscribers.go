package service

import (
	"fmt"
	"log/slog"

	"github.com/hanumanji/chalisa-bot/internal/dal"
)

// Subscribers manages registration and the pause/resume transitions. All
// writes go through the shared ChatLocks so they serialize with advances for
// the same chat.
type Subscribers struct {
	store SubscribersStore
	locks *ChatLocks

	log *slog.Logger
}

func NewSubscribers(store SubscribersStore, locks *ChatLocks, log *slog.Logger) *Subscribers {
	return &Subscribers{
		store: store,
		locks: locks,

		log: log.With("component", "service").With("service", "subscribers"),
	}
}

// Register creates a progress record at day 0 if the chat has none yet.
// Returns true for a new subscriber.
func (s *Subscribers) Register(chatID int64) (bool, error) {
	lock := s.locks.Get(chatID)
	lock.Lock()
	defer lock.Unlock()

	exists, err := s.store.ExistsSubscriber(chatID)
	if err != nil {
		return false, fmt.Errorf("check if subscriber exists: %w", err)
	}
	if exists {
		return false, nil
	}

	if err := s.store.PutProgress(chatID, 0); err != nil {
		return false, fmt.Errorf("put progress: %w", err)
	}

	s.log.Info("new subscriber", "chatID", chatID)
	return true, nil
}

// Pause suspends automatic delivery for the chat.
func (s *Subscribers) Pause(chatID int64) error {
	lock := s.locks.Get(chatID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.store.PutProgress(chatID, dal.Paused); err != nil {
		return fmt.Errorf("put progress: %w", err)
	}

	s.log.Info("subscriber paused", "chatID", chatID)
	return nil
}

// Resume restarts a paused subscriber from the beginning: progress goes back
// to day 0, not to the pre-pause position. Returns true if the chat was
// actually paused; a non-paused chat is left untouched.
func (s *Subscribers) Resume(chatID int64) (bool, error) {
	lock := s.locks.Get(chatID)
	lock.Lock()
	defer lock.Unlock()

	current, err := s.store.GetProgress(chatID)
	if err != nil {
		return false, fmt.Errorf("get progress: %w", err)
	}
	if current != dal.Paused {
		return false, nil
	}

	if err := s.store.PutProgress(chatID, 0); err != nil {
		return false, fmt.Errorf("put progress: %w", err)
	}

	s.log.Info("subscriber resumed", "chatID", chatID)
	return true, nil
}
