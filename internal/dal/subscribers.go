package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Paused is the progress sentinel meaning "no automatic delivery".
const Paused = -1

// Subscriber is one progress record. Day semantics: 0 — registered, nothing
// sent yet; n > 0 — content delivered through day n; Paused — suspended.
type Subscriber struct {
	ChatID    int64     `json:"chat_id"`
	Day       int       `json:"day"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetProgress returns the stored day for a chat. A missing record reads as 0:
// absence is "registered at day 0", not an error.
func (s *BoltDB) GetProgress(chatID int64) (int, error) {
	var res int

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(subscribersBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		var sub Subscriber
		if err := json.Unmarshal(data, &sub); err != nil {
			return fmt.Errorf("unmarshal subscriber: %w", err)
		}
		res = sub.Day
		return nil
	})

	return res, err
}

// PutProgress upserts the progress record for a chat. The whole
// read-modify-write runs in a single bbolt update transaction, so no partial
// write is ever visible. CreatedAt survives overwrites.
func (s *BoltDB) PutProgress(chatID int64, day int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))
		key := i64tob(chatID)

		now := s.clock.Now()
		sub := Subscriber{ChatID: chatID, Day: day, CreatedAt: now, UpdatedAt: now}

		if data := b.Get(key); data != nil {
			var existing Subscriber
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("unmarshal existing subscriber: %w", err)
			}
			sub.CreatedAt = existing.CreatedAt
		}

		data, err := json.Marshal(&sub)
		if err != nil {
			return fmt.Errorf("marshal subscriber for chatID=%d: %w", chatID, err)
		}
		if err := b.Put(key, data); err != nil {
			return fmt.Errorf("put subscriber for chatID=%d: %w", chatID, err)
		}

		return nil
	})
}

func (s *BoltDB) ExistsSubscriber(chatID int64) (bool, error) {
	res := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(subscribersBucket)).Get(i64tob(chatID)) != nil {
			res = true
		}
		return nil
	})

	return res, err
}

func (s *BoltDB) ListSubscribers() ([]Subscriber, error) {
	var res []Subscriber

	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(subscribersBucket)).Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var sub Subscriber
			if err := json.Unmarshal(v, &sub); err != nil {
				return fmt.Errorf("unmarshal subscriber: %w", err)
			}
			res = append(res, sub)
		}

		return nil
	})

	return res, err
}

func (s *BoltDB) CountSubscribers() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		res = tx.Bucket([]byte(subscribersBucket)).Stats().KeyN
		return nil
	})
	return res, err
}
