package dal

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.etcd.io/bbolt"

	"github.com/hanumanji/chalisa-bot/internal/dal/migrations"
	"github.com/hanumanji/chalisa-bot/pkg/clock"
)

type BoltDBTestSuite struct {
	suite.Suite
	db    *bbolt.DB
	store *BoltDB
	now   *clock.Mock
}

// SetupSuite runs ONCE before all tests in the suite
func (s *BoltDBTestSuite) SetupSuite() {
	dbPath := filepath.Join(s.T().TempDir(), "test.db")
	db, err := bbolt.Open(dbPath, 0600, nil)
	s.Require().NoError(err)

	err = migrations.RunMigrations(db, slog.New(slog.DiscardHandler))
	s.Require().NoError(err)

	s.db = db
	s.now = clock.NewMock(time.Now())
	s.now.SetF(time.Now)
	s.store, err = NewBoltDB(db, s.now)
	s.Require().NoError(err)
}

// TearDownSuite runs ONCE after all tests
func (s *BoltDBTestSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
}

// TearDownTest runs after EACH test (cleanup data, not DB)
func (s *BoltDBTestSuite) TearDownTest() {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(subscribersBucket))
		s.Require().NotNil(b)
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			s.Require().NoError(b.Delete(k))
		}
		return nil
	})
	s.Require().NoError(err)

	s.now.SetF(time.Now)
}

func TestBoltDBTestSuite(t *testing.T) {
	suite.Run(t, new(BoltDBTestSuite))
}

func TestNewBoltDB_MissingBucket(t *testing.T) {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := NewBoltDB(db, clock.New()); err == nil {
		t.Fatal("expected error for store without migrations")
	}
}
