// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"slices"
	"sync"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

var _ database.Database = (*Database)(nil)

// Database wraps a pebble store behind avalanchego's database interface so
// it can serve as a persistent ledger.
type Database struct {
	db      *pebble.DB
	metrics *metrics
	closing chan struct{}

	writeOpts *pebble.WriteOptions

	lock   sync.RWMutex
	closed bool
}

type Config struct {
	CacheSize    int // B
	BytesPerSync int // B
	Sync         bool
}

func NewDefaultConfig() *Config {
	return &Config{
		CacheSize:    512 * 1024 * 1024,
		BytesPerSync: 512 * 1024,
		Sync:         false,
	}
}

func New(dir string, cfg *Config) (database.Database, *prometheus.Registry, error) {
	registry, m, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	d := &Database{
		metrics:   m,
		closing:   make(chan struct{}),
		writeOpts: pebble.NoSync,
	}
	if cfg.Sync {
		d.writeOpts = pebble.Sync
	}

	cache := pebble.NewCache(int64(cfg.CacheSize))
	defer cache.Unref()
	db, err := pebble.Open(dir, &pebble.Options{
		Cache:        cache,
		BytesPerSync: cfg.BytesPerSync,
	})
	if err != nil {
		return nil, nil, err
	}
	d.db = db
	go d.collectMetrics()
	return d, registry, nil
}

func (db *Database) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.closed {
		return database.ErrClosed
	}
	db.closed = true
	close(db.closing)
	return db.db.Close()
}

func (db *Database) HealthCheck(context.Context) (interface{}, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return nil, database.ErrClosed
	}
	return nil, nil
}

func (db *Database) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return false, database.ErrClosed
	}
	_, closer, err := db.db.Get(key)
	if err == pebble.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return nil, database.ErrClosed
	}
	data, closer, err := db.db.Get(key)
	if err == pebble.ErrNotFound {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// [data] is only valid until the closer is released.
	value := slices.Clone(data)
	return value, closer.Close()
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Set(key, value, db.writeOpts)
}

func (db *Database) Delete(key []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Delete(key, db.writeOpts)
}

func (db *Database) Compact(start []byte, limit []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Compact(start, limit, true)
}
