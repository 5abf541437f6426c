package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertProduct(t *testing.T, db *DB, name string, stock int) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (name, purchase_price, selling_price, stock_quantity) VALUES (?, 1, 2, ?)",
		name, stock)
	require.NoError(t, err)
}

func productNames(t *testing.T, db *DB) []string {
	t.Helper()
	rows, err := db.Query(context.Background(), "SELECT name FROM products ORDER BY id")
	require.NoError(t, err)
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row["name"].(string))
	}
	return names
}

func TestCheckpoint(t *testing.T) {
	db := openTestStore(t)
	insertProduct(t, db, "Galaxy A15", 5)

	assert.NoError(t, db.Checkpoint(context.Background()))
}

func TestBackupWritesTimestampedCopy(t *testing.T) {
	db := openTestStore(t)
	ctx := context.Background()
	insertProduct(t, db, "Galaxy A15", 5)

	backupPath, err := db.Backup(ctx)

	require.NoError(t, err)
	assert.Equal(t, filepath.Dir(db.Path()), filepath.Dir(backupPath))
	base := filepath.Base(backupPath)
	assert.True(t, strings.HasPrefix(base, "backup_"), "unexpected backup name %q", base)
	assert.True(t, strings.HasSuffix(base, ".db"), "unexpected backup name %q", base)
	assert.FileExists(t, backupPath)
}

func TestBackupThenRestoreRoundTrip(t *testing.T) {
	db := openTestStore(t)
	ctx := context.Background()

	insertProduct(t, db, "Galaxy A15", 5)
	insertProduct(t, db, "USB-C Charger", 40)

	backupPath, err := db.Backup(ctx)
	require.NoError(t, err)

	// Diverge from the backup, then restore over the divergence.
	insertProduct(t, db, "Impulse Buy", 1)
	_, err = db.Exec(ctx, "UPDATE products SET stock_quantity = 0 WHERE name = ?", "Galaxy A15")
	require.NoError(t, err)

	require.NoError(t, db.Restore(ctx, backupPath))

	assert.Equal(t, StateReady, db.State())
	assert.Equal(t, []string{"Galaxy A15", "USB-C Charger"}, productNames(t, db))

	rows, err := db.Query(ctx, "SELECT stock_quantity FROM products WHERE name = ?", "Galaxy A15")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 5, rows[0]["stock_quantity"])
}

func TestRestoreMissingBackupLeavesStoreUsable(t *testing.T) {
	db := openTestStore(t)
	ctx := context.Background()
	insertProduct(t, db, "Galaxy A15", 5)

	err := db.Restore(ctx, filepath.Join(t.TempDir(), "missing.db"))

	assert.Error(t, err)
	assert.Equal(t, []string{"Galaxy A15"}, productNames(t, db))
}

func TestStartCheckpointLoopStopsOnCancel(t *testing.T) {
	db := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	db.StartCheckpointLoop(ctx, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	// The store stays usable throughout.
	insertProduct(t, db, "Galaxy A15", 5)
	assert.Equal(t, []string{"Galaxy A15"}, productNames(t, db))
}
