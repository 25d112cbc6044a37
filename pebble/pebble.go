// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/assetvault/state"
)

var _ state.Database = (*Database)(nil)

type Config struct {
	CacheSize                   int  `json:"cacheSize"`
	BytesPerSync                int  `json:"bytesPerSync"`
	WALBytesPerSync             int  `json:"walBytesPerSync"`
	MemTableStopWritesThreshold int  `json:"memTableStopWritesThreshold"`
	MemTableSize                int  `json:"memTableSize"`
	MaxOpenFiles                int  `json:"maxOpenFiles"`
	Sync                        bool `json:"sync"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   64 * units.MiB,
		BytesPerSync:                units.MiB,
		WALBytesPerSync:             units.MiB,
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * units.MiB,
		MaxOpenFiles:                4_096,
		Sync:                        true,
	}
}

// Database is the persistent store committed transactions are written to.
type Database struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions

	metrics   *metrics
	closing   chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func New(file string, cfg Config) (*Database, *prometheus.Registry, error) {
	registry, metrics, err := newMetrics()
	if err != nil {
		return nil, nil, err
	}
	d := &Database{
		writeOpts: &pebble.WriteOptions{Sync: cfg.Sync},
		metrics:   metrics,
		closing:   make(chan struct{}),
	}
	cache := pebble.NewCache(int64(cfg.CacheSize))
	defer cache.Unref()
	opts := &pebble.Options{
		Cache:                       cache,
		BytesPerSync:                cfg.BytesPerSync,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                uint64(cfg.MemTableSize),
		MaxOpenFiles:                cfg.MaxOpenFiles,
	}
	opts.EventListener = &pebble.EventListener{
		CompactionBegin: d.onCompactionBegin,
		CompactionEnd:   d.onCompactionEnd,
		WriteStallBegin: d.onWriteStallBegin,
		WriteStallEnd:   d.onWriteStallEnd,
	}
	d.db, err = pebble.Open(file, opts)
	if err != nil {
		return nil, nil, err
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.collectMetrics()
	}()
	return d, registry, nil
}

// GetValue returns a copy of the value stored at [key] or
// [database.ErrNotFound].
func (db *Database) GetValue(_ context.Context, key []byte) ([]byte, error) {
	start := time.Now()
	defer func() {
		db.metrics.getLatency.Observe(float64(time.Since(start)))
	}()
	db.metrics.gets.Inc()

	data, closer, err := db.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		db.metrics.misses.Inc()
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return append([]byte(nil), data...), nil
}

// Commit writes [changes] in a single batch.
func (db *Database) Commit(_ context.Context, changes map[string]maybe.Maybe[[]byte]) error {
	batch := db.db.NewBatch()
	defer batch.Close()

	var puts, deletes int
	for k, v := range changes {
		if v.IsNothing() {
			if err := batch.Delete([]byte(k), nil); err != nil {
				return err
			}
			deletes++
			continue
		}
		if err := batch.Set([]byte(k), v.Value(), nil); err != nil {
			return err
		}
		puts++
	}
	if err := batch.Commit(db.writeOpts); err != nil {
		return err
	}
	db.metrics.commits.Inc()
	db.metrics.puts.Add(float64(puts))
	db.metrics.deletes.Add(float64(deletes))
	return nil
}

func (db *Database) Close() error {
	var err error
	db.closeOnce.Do(func() {
		close(db.closing)
		db.wg.Wait()
		err = db.db.Close()
	})
	return err
}
