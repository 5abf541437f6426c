package repository

import (
	"path/filepath"
	"testing"

	"github.com/mobileshop/pos/pkg/sqlite"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens a throwaway store in a temp dir with the real migrations
// applied, so repository tests run against the exact production schema.
func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.Open(sqlite.Config{Path: filepath.Join(t.TempDir(), "pos_test.db")}, false)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
