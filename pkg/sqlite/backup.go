package sqlite

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mobileshop/pos/pkg/logger"
	"github.com/mobileshop/pos/pkg/prom"
	"github.com/pkg/errors"
)

// Checkpoint truncates the WAL back into the main file so a whole-file copy
// captures everything committed so far.
func (d *DB) Checkpoint(ctx context.Context) error {
	orm, err := d.Acquire(ctx)
	if err != nil {
		return err
	}
	if err := orm.WithContext(ctx).Exec("PRAGMA wal_checkpoint(TRUNCATE)").Error; err != nil {
		return err
	}
	prom.IncCounter(prom.SystemStore, prom.MetricCheckpointsTotal)
	return nil
}

// StartCheckpointLoop checkpoints on a fixed interval until ctx is canceled.
// This bounds the window a crash can lose relative to the main store file.
func (d *DB) StartCheckpointLoop(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = d.Checkpoint(ctx)
			}
		}
	}()
}

// Backup copies the store file to a timestamped sibling and returns its path.
func (d *DB) Backup(ctx context.Context) (string, error) {
	if err := d.Checkpoint(ctx); err != nil {
		return "", errors.Wrap(err, "backup: checkpoint")
	}

	dir := filepath.Dir(d.path)
	dst := filepath.Join(dir, fmt.Sprintf("backup_%d.db", time.Now().UnixMilli()))

	if err := copyFile(d.path, dst); err != nil {
		return "", errors.Wrap(err, "backup: copy store file")
	}
	prom.IncCounter(prom.SystemStore, prom.MetricBackupsTotal)
	logger.Info("store backup written", "path", dst)
	return dst, nil
}

// Restore replaces the store file with the given backup and reopens the
// store. On copy failure the old file is left in place and the store is
// reopened from it.
func (d *DB) Restore(ctx context.Context, backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return errors.Wrap(err, "restore: backup file")
	}

	if err := d.Close(); err != nil {
		return errors.Wrap(err, "restore: close store")
	}

	copyErr := copyFile(backupPath, d.path)
	// WAL and shm sidecars belong to the replaced file.
	_ = os.Remove(d.path + "-wal")
	_ = os.Remove(d.path + "-shm")

	if err := d.open(); err != nil {
		d.setState(StateFailed)
		return errors.Wrap(err, "restore: reopen store")
	}
	if copyErr != nil {
		return errors.Wrap(copyErr, "restore: copy backup over store")
	}
	logger.Info("store restored from backup", "path", backupPath)
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
