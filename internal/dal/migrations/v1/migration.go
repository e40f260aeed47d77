package v1

import (
	"go.etcd.io/bbolt"
)

// MigrationV1 creates the subscribers bucket.
type MigrationV1 struct{}

func New() *MigrationV1 {
	return &MigrationV1{}
}

func (m *MigrationV1) Version() int {
	return 1
}

func (m *MigrationV1) Description() string {
	return "Create subscribers bucket"
}

func (m *MigrationV1) Up(db *bbolt.DB) error {
	return db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte("subscribers"))
		return err
	})
}
