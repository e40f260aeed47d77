package dal

import (
	"time"
)

func (s *BoltDBTestSuite) TestBoltDB_GetProgress() {
	// missing record reads as day 0
	day, err := s.store.GetProgress(1)
	s.Require().NoError(err, "error getting progress")
	s.Require().Equal(0, day)

	s.Require().NoError(s.store.PutProgress(1, 7))
	day, err = s.store.GetProgress(1)
	s.Require().NoError(err, "error getting progress")
	s.Require().Equal(7, day)

	s.Require().NoError(s.store.PutProgress(1, Paused))
	day, err = s.store.GetProgress(1)
	s.Require().NoError(err, "error getting progress")
	s.Require().Equal(Paused, day)
}

func (s *BoltDBTestSuite) TestBoltDB_PutProgress() {
	createdAt := time.Date(2026, time.March, 3, 7, 0, 0, 0, time.UTC)
	s.now.Set(createdAt)

	s.Require().NoError(s.store.PutProgress(1, 0))
	sub := s.mustGetSubscriber(1)
	s.Equal(int64(1), sub.ChatID)
	s.Equal(0, sub.Day)
	s.Equal(createdAt, sub.CreatedAt)
	s.Equal(createdAt, sub.UpdatedAt)

	// overwrite bumps UpdatedAt but keeps CreatedAt
	s.now.Set(createdAt.Add(24 * time.Hour))
	s.Require().NoError(s.store.PutProgress(1, 1))
	sub = s.mustGetSubscriber(1)
	s.Equal(1, sub.Day)
	s.Equal(createdAt, sub.CreatedAt)
	s.Equal(createdAt.Add(24*time.Hour), sub.UpdatedAt)
}

func (s *BoltDBTestSuite) TestBoltDB_ExistsSubscriber() {
	ok, err := s.store.ExistsSubscriber(1)
	s.Require().NoError(err, "error checking subscriber")
	s.Require().False(ok)

	s.Require().NoError(s.store.PutProgress(1, 0))
	ok, err = s.store.ExistsSubscriber(1)
	s.Require().NoError(err, "error checking subscriber")
	s.Require().True(ok)

	// a record at day 0 still counts as a subscriber
	day, err := s.store.GetProgress(1)
	s.Require().NoError(err)
	s.Require().Equal(0, day)
}

func (s *BoltDBTestSuite) TestBoltDB_ListSubscribers() {
	subs, err := s.store.ListSubscribers()
	s.Require().NoError(err, "error listing subscribers")
	s.Require().Empty(subs)

	s.Require().NoError(s.store.PutProgress(1, 3))
	s.Require().NoError(s.store.PutProgress(2, Paused))
	s.Require().NoError(s.store.PutProgress(3, 0))

	subs, err = s.store.ListSubscribers()
	s.Require().NoError(err, "error listing subscribers")

	if s.Len(subs, 3) {
		byID := make(map[int64]Subscriber, len(subs))
		for _, sub := range subs {
			byID[sub.ChatID] = sub
		}
		s.Equal(3, byID[1].Day)
		s.Equal(Paused, byID[2].Day)
		s.Equal(0, byID[3].Day)
	}
}

func (s *BoltDBTestSuite) TestBoltDB_CountSubscribers() {
	count, err := s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Require().Equal(0, count)

	s.Require().NoError(s.store.PutProgress(1, 0))
	s.Require().NoError(s.store.PutProgress(2, 5))
	s.Require().NoError(s.store.PutProgress(1, 1)) // same chat ID

	count, err = s.store.CountSubscribers()
	s.Require().NoError(err, "error counting subscribers")
	s.Require().Equal(2, count)
}

func (s *BoltDBTestSuite) mustGetSubscriber(chatID int64) Subscriber {
	subs, err := s.store.ListSubscribers()
	s.Require().NoError(err, "error listing subscribers")
	for _, sub := range subs {
		if sub.ChatID == chatID {
			return sub
		}
	}
	s.Require().Failf("subscriber not found", "chatID=%d", chatID)
	return Subscriber{}
}
