package service

import (
	"fmt"
	"log/slog"

	"github.com/hanumanji/chalisa-bot/internal/catalog"
	"github.com/hanumanji/chalisa-bot/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/store.go . SubscribersStore

//go:generate mockgen -package mocks -destination mocks/messenger.go . Messenger

type SubscribersStore interface {
	GetProgress(chatID int64) (int, error)
	PutProgress(chatID int64, day int) error
	ExistsSubscriber(chatID int64) (bool, error)
	ListSubscribers() ([]dal.Subscriber, error)
}

type Catalog interface {
	Get(day int) (catalog.Unit, bool)
	Size() int
}

type StepKind int

const (
	// StepPaused: subscriber is paused, nothing to deliver, no state change.
	StepPaused StepKind = iota
	// StepVerse: the next day's verse; progress was persisted before returning.
	StepVerse
	// StepCompleted: catalog exhausted. Not persisted, so every call past the
	// end re-derives the same terminal answer.
	StepCompleted
)

// Step is the outcome of a single advance.
type Step struct {
	Kind StepKind
	Day  int
	Unit catalog.Unit
}

// Engine drives the per-subscriber day counter.
type Engine struct {
	store   SubscribersStore
	catalog Catalog
	locks   *ChatLocks

	log *slog.Logger
}

func NewEngine(store SubscribersStore, catalog Catalog, locks *ChatLocks, log *slog.Logger) *Engine {
	return &Engine{
		store:   store,
		catalog: catalog,
		locks:   locks,

		log: log.With("component", "service").With("service", "progress"),
	}
}

// Advance moves a subscriber to the next day and persists the new position
// before the verse is handed to the caller. The write is the commit point:
// once it lands, the day counts as delivered even if the send later fails.
// Calls for the same chat are serialized with every other progress write
// through the shared ChatLocks, so a daily fan-out racing an on-demand
// delivery or a /stop cannot interleave with the read-modify-write.
func (e *Engine) Advance(chatID int64) (Step, error) {
	lock := e.locks.Get(chatID)
	lock.Lock()
	defer lock.Unlock()

	current, err := e.store.GetProgress(chatID)
	if err != nil {
		return Step{}, fmt.Errorf("get progress: %w", err)
	}

	if current == dal.Paused {
		return Step{Kind: StepPaused}, nil
	}

	next := current + 1
	unit, ok := e.catalog.Get(next)
	if !ok {
		e.log.Debug("catalog exhausted", "chatID", chatID, "day", current)
		return Step{Kind: StepCompleted}, nil
	}

	if err := e.store.PutProgress(chatID, next); err != nil {
		return Step{}, fmt.Errorf("put progress: %w", err)
	}

	e.log.Debug("advanced subscriber", "chatID", chatID, "day", next)
	return Step{Kind: StepVerse, Day: next, Unit: unit}, nil
}
