// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/maybe"
	"github.com/stretchr/testify/require"
)

const batchSize = 10_000

func randBytes() []byte {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

func TestCommitAndReopen(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	db, registry, err := New(dir, NewDefaultConfig())
	require.NoError(err)

	_, err = db.GetValue(ctx, []byte("vault"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Commit(ctx, map[string]maybe.Maybe[[]byte]{
		"vault":   maybe.Some([]byte("manager")),
		"account": maybe.Some([]byte("balance")),
	}))
	require.NoError(db.Commit(ctx, map[string]maybe.Maybe[[]byte]{
		"account": maybe.Nothing[[]byte](),
	}))

	v, err := db.GetValue(ctx, []byte("vault"))
	require.NoError(err)
	require.Equal([]byte("manager"), v)
	_, err = db.GetValue(ctx, []byte("account"))
	require.ErrorIs(err, database.ErrNotFound)

	families, err := registry.Gather()
	require.NoError(err)
	counts := map[string]float64{}
	for _, mf := range families {
		if len(mf.GetMetric()) > 0 && mf.GetMetric()[0].GetCounter() != nil {
			counts[mf.GetName()] = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	require.Equal(float64(2), counts["pebble_commits"])
	require.Equal(float64(2), counts["pebble_puts"])
	require.Equal(float64(1), counts["pebble_deletes"])
	require.Equal(float64(2), counts["pebble_misses"])

	require.NoError(db.Close())
	require.NoError(db.Close())

	db, _, err = New(dir, NewDefaultConfig())
	require.NoError(err)
	v, err = db.GetValue(ctx, []byte("vault"))
	require.NoError(err)
	require.Equal([]byte("manager"), v)
	require.NoError(db.Close())
}

func BenchmarkCommit(b *testing.B) {
	ctx := context.Background()
	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%t", sync), func(b *testing.B) {
			// Setup DB
			b.StopTimer()
			cfg := NewDefaultConfig()
			cfg.Sync = sync
			db, _, err := New(b.TempDir(), cfg)
			if err != nil {
				b.Fatal(err)
			}

			// Setup keys
			changes := make(map[string]maybe.Maybe[[]byte], batchSize)
			for i := 0; i < batchSize; i++ {
				changes[string(randBytes())] = maybe.Some(randBytes())
			}

			b.StartTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := db.Commit(ctx, changes); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			if err := db.Close(); err != nil {
				b.Fatal(err)
			}
		})
	}
}
