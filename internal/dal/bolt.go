package dal

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const subscribersBucket = "subscribers"

type Clock interface {
	Now() time.Time
}

// BoltDB is the bbolt-backed store. Buckets are created by migrations before
// the store is constructed.
type BoltDB struct {
	db *bbolt.DB

	clock Clock
}

func NewBoltDB(db *bbolt.DB, clock Clock) (*BoltDB, error) {
	if err := db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(subscribersBucket)) == nil {
			return fmt.Errorf("bucket %q not found, run migrations first", subscribersBucket)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &BoltDB{db: db, clock: clock}, nil
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func i64tob(id int64) []byte {
	return []byte(fmt.Sprintf("%d", id))
}
