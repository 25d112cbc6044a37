// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tstate

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetvault/keys"
	"github.com/ava-labs/assetvault/state"
)

var (
	testVal = []byte("value")

	key1    = keys.EncodeChunks([]byte("key1"), 1)
	key1str = string(key1)
	key2    = keys.EncodeChunks([]byte("key2"), 2)
	key2str = string(key2)
)

func TestScope(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	// No Scope
	tsv := ts.NewView(state.Keys{}, map[string][]byte{})
	val, err := tsv.GetValue(ctx, key1)
	require.ErrorIs(err, ErrInvalidKeyOrPermission)
	require.Nil(val)
	require.ErrorIs(tsv.Insert(ctx, key1, testVal), ErrInvalidKeyOrPermission)
	require.ErrorIs(tsv.Remove(ctx, key1), ErrInvalidKeyOrPermission)
}

func TestGetValue(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{key1str: state.Read}, map[string][]byte{key1str: testVal})
	val, err := tsv.GetValue(ctx, key1)
	require.NoError(err, "unable to get value")
	require.Equal(testVal, val, "value was not saved correctly")

	tsv = ts.NewView(state.Keys{key1str: state.Read}, map[string][]byte{})
	_, err = tsv.GetValue(ctx, key1)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestInsertPermissions(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	// Creating a key requires allocate
	tsv := ts.NewView(state.Keys{key1str: state.Write}, map[string][]byte{})
	require.ErrorIs(tsv.Insert(ctx, key1, testVal), ErrInvalidKeyOrPermission)

	// Updating a key only requires write
	tsv = ts.NewView(state.Keys{key1str: state.Write}, map[string][]byte{key1str: testVal})
	require.NoError(tsv.Insert(ctx, key1, []byte("new")))

	// Read-only keys cannot be written
	tsv = ts.NewView(state.Keys{key1str: state.Read}, map[string][]byte{key1str: testVal})
	require.ErrorIs(tsv.Insert(ctx, key1, []byte("new")), ErrInvalidKeyOrPermission)
}

func TestInsertInvalidValue(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{key1str: state.All}, map[string][]byte{})
	require.ErrorIs(tsv.Insert(ctx, key1, make([]byte, 65)), ErrInvalidKeyValue)
	require.Equal(0, tsv.OpIndex())
}

func TestRollback(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(
		state.Keys{key1str: state.All, key2str: state.All},
		map[string][]byte{key2str: testVal},
	)
	require.NoError(tsv.Insert(ctx, key1, testVal))
	restore := tsv.OpIndex()
	require.NoError(tsv.Insert(ctx, key1, []byte("changed")))
	require.NoError(tsv.Remove(ctx, key2))
	require.Equal(3, tsv.OpIndex())

	tsv.Rollback(ctx, restore)
	require.Equal(restore, tsv.OpIndex())
	val, err := tsv.GetValue(ctx, key1)
	require.NoError(err)
	require.Equal(testVal, val)
	val, err = tsv.GetValue(ctx, key2)
	require.NoError(err)
	require.Equal(testVal, val)

	tsv.Rollback(ctx, 0)
	_, err = tsv.GetValue(ctx, key1)
	require.ErrorIs(err, database.ErrNotFound)
	require.Equal(0, tsv.PendingChanges())
}

func TestDeleteCommitGet(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{key1str: state.All}, map[string][]byte{key1str: testVal})
	require.NoError(tsv.Remove(ctx, key1))
	tsv.Commit()
	require.Equal(1, ts.OpIndex())

	changes := ts.ChangedKeys()
	require.Len(changes, 1)
	require.True(changes[key1str].IsNothing())

	// Later views observe the committed deletion
	tsv = ts.NewView(state.Keys{key1str: state.All}, map[string][]byte{key1str: testVal})
	_, err := tsv.GetValue(ctx, key1)
	require.ErrorIs(err, database.ErrNotFound)
}

func TestRemoveMissingKey(t *testing.T) {
	require := require.New(t)
	ctx := context.TODO()
	ts := New(10)

	tsv := ts.NewView(state.Keys{key1str: state.All}, map[string][]byte{})
	require.NoError(tsv.Remove(ctx, key1))
	require.Equal(0, tsv.OpIndex())
	tsv.Commit()
	require.Equal(0, ts.PendingChanges())
}
