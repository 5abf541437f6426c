// Package sqlite owns the single-file store used by the POS. The file is
// opened and written by exactly one process; every other layer goes through
// the typed operations exposed here.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type txContextKey string

const txKey txContextKey = "trx"

// State tracks the store lifecycle so callers can retry while the file is
// still being opened instead of failing hard.
type State int32

const (
	StateUninitialized State = iota
	StateReady
	StateFailed
)

type Config struct {
	Path        string `env:"PATH"`
	BusyTimeout int    `env:"BUSY_TIMEOUT_MS" default:"5000"`
}

type DB struct {
	mu    sync.RWMutex
	orm   *gorm.DB
	state State
	path  string
	cfg   Config
	debug bool
}

// Open creates or opens the store file and runs pending migrations.
// A failure here leaves the DB in StateFailed; callers treat that as fatal
// at startup per the store ownership contract.
func Open(cfg Config, withDebug bool) (*DB, error) {
	db := &DB{state: StateUninitialized, path: cfg.Path, cfg: cfg, debug: withDebug}
	if err := db.open(); err != nil {
		db.setState(StateFailed)
		return nil, err
	}
	return db, nil
}

func (d *DB) open() error {
	if d.cfg.Path == "" {
		return errors.New("sqlite: store path is empty")
	}

	orm, err := gorm.Open(sqlite.Open(dsn(d.cfg)), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return errors.Wrap(err, "sqlite: open store")
	}
	if d.debug {
		orm = orm.Debug()
	}

	raw, err := orm.DB()
	if err != nil {
		return errors.Wrap(err, "sqlite: raw handle")
	}
	// One writer, one file. A larger pool would only trade SQLITE_BUSY
	// errors for lock contention.
	raw.SetMaxOpenConns(1)

	if err := migrate(raw); err != nil {
		return errors.Wrap(err, "sqlite: migrate")
	}

	d.mu.Lock()
	d.orm = orm
	d.mu.Unlock()
	d.setState(StateReady)
	return nil
}

func dsn(cfg Config) string {
	busy := cfg.BusyTimeout
	if busy <= 0 {
		busy = 5000
	}
	// Foreign keys stay declarative only: products and customers are
	// deletable even when historical sales reference them.
	return fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d", cfg.Path, busy)
}

func (d *DB) setState(s State) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()
}

func (d *DB) State() State {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state
}

func (d *DB) Path() string {
	return d.path
}

var ErrNotReady = errors.New("sqlite: store not ready")

// Acquire returns the gorm handle once the store is ready, retrying with
// backoff while it is still opening. StateFailed is permanent.
func (d *DB) Acquire(ctx context.Context) (*gorm.DB, error) {
	const maxAttempts = 5
	delay := 50 * time.Millisecond

	for attempt := 0; attempt < maxAttempts; attempt++ {
		switch d.State() {
		case StateReady:
			d.mu.RLock()
			orm := d.orm
			d.mu.RUnlock()
			return orm, nil
		case StateFailed:
			return nil, ErrNotReady
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
	return nil, ErrNotReady
}

// WithinTransaction runs fn inside a single transaction. The transaction
// handle travels in the context so nested repository calls join it.
func (d *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	d.mu.RLock()
	orm := d.orm
	d.mu.RUnlock()
	if orm == nil {
		return ErrNotReady
	}
	return orm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ctx = context.WithValue(ctx, txKey, tx)
		return fn(ctx)
	})
}

// Write returns the handle to mutate through, honoring an in-flight
// transaction carried in ctx.
func (d *DB) Write(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.orm.WithContext(ctx)
}

// Read is an alias for the same handle; the store has a single file and a
// single connection, but keeping the read/write split makes the repository
// layer explicit about intent.
func (d *DB) Read(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.orm.WithContext(ctx)
}

func (d *DB) raw() (*sql.DB, error) {
	d.mu.RLock()
	orm := d.orm
	d.mu.RUnlock()
	if orm == nil {
		return nil, ErrNotReady
	}
	return orm.DB()
}

func (d *DB) Close() error {
	d.mu.Lock()
	orm := d.orm
	d.orm = nil
	d.state = StateUninitialized
	d.mu.Unlock()
	if orm == nil {
		return nil
	}
	raw, err := orm.DB()
	if err != nil {
		return err
	}
	return raw.Close()
}
