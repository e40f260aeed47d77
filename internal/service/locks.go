package service

import "sync"

// ChatLocks serializes read-modify-write cycles on a single subscriber's
// record. One instance is shared by every service that writes progress, so an
// advance racing a pause for the same chat can never interleave.
type ChatLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewChatLocks() *ChatLocks {
	return &ChatLocks{locks: make(map[int64]*sync.Mutex)}
}

func (l *ChatLocks) Get(chatID int64) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[chatID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[chatID] = lock
	}
	return lock
}
