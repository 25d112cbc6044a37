// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/storage"
	"github.com/ava-labs/assetvault/tstate"
)

// Processor executes transactions against [state.Database]. Every
// transaction runs in its own view: either all of its actions succeed and
// the view is committed, or none of its writes are kept.
//
// Processor is not safe for concurrent use. Callers serialize access.
type Processor struct {
	r  Rules
	db state.Database
}

func NewProcessor(r Rules, db state.Database) *Processor {
	return &Processor{r: r, db: db}
}

func (p *Processor) Execute(ctx context.Context, tx *Transaction, timestamp int64) (*Result, error) {
	if tx.Auth == nil {
		return nil, ErrNotSigned
	}
	if err := tx.Base.Execute(p.r, timestamp); err != nil {
		return nil, err
	}
	msg, err := tx.Digest()
	if err != nil {
		return nil, err
	}
	if err := tx.Auth.Verify(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	if tx.ID() == ids.Empty {
		return nil, ErrInvalidObject
	}

	stateKeys := tx.StateKeys(p.r)
	values, err := p.fetch(ctx, stateKeys)
	if err != nil {
		return nil, err
	}
	ts := tstate.New(len(stateKeys))
	view := ts.NewView(stateKeys, values)

	seen, err := storage.HasTx(ctx, view, tx.ID())
	if err != nil {
		return nil, err
	}
	if seen {
		return nil, ErrDuplicateTx
	}

	actor := tx.Auth.Actor()
	outputs := make([]codec.Typed, 0, len(tx.Actions))
	for i, action := range tx.Actions {
		output, err := action.Execute(ctx, p.r, view, actor)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		outputs = append(outputs, output)
	}
	if err := storage.StoreTx(ctx, view, tx.ID()); err != nil {
		return nil, err
	}
	view.Commit()
	if err := p.db.Commit(ctx, ts.ChangedKeys()); err != nil {
		return nil, err
	}
	return &Result{
		TxID:    tx.ID(),
		Actor:   actor,
		Outputs: outputs,
	}, nil
}

func (p *Processor) fetch(ctx context.Context, stateKeys state.Keys) (map[string][]byte, error) {
	values := make(map[string][]byte, len(stateKeys))
	for k := range stateKeys {
		v, err := p.db.GetValue(ctx, []byte(k))
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		values[k] = v
	}
	return values, nil
}
