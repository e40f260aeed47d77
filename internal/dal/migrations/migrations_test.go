package migrations_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/hanumanji/chalisa-bot/internal/dal/migrations"
)

func TestRunMigrations(t *testing.T) {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
	require.NoError(t, err)
	defer db.Close()

	log := slog.New(slog.DiscardHandler)

	require.NoError(t, migrations.RunMigrations(db, log))

	err = db.View(func(tx *bbolt.Tx) error {
		require.NotNil(t, tx.Bucket([]byte("migrations")))
		require.NotNil(t, tx.Bucket([]byte("subscribers")))
		return nil
	})
	require.NoError(t, err)

	// applied migrations are skipped on a second run
	require.NoError(t, migrations.RunMigrations(db, log))
}
