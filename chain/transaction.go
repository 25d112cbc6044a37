// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/consts"
	"github.com/ava-labs/assetvault/state"
	"github.com/ava-labs/assetvault/storage"
	"github.com/ava-labs/assetvault/utils"
)

const MaxActions = 16

type Transaction struct {
	Base    *Base    `json:"base"`
	Actions []Action `json:"actions"`
	Auth    Auth     `json:"auth"`

	digest []byte
	bytes  []byte
	id     ids.ID
}

func NewTx(base *Base, actions []Action) *Transaction {
	return &Transaction{
		Base:    base,
		Actions: actions,
	}
}

// Digest is the message signed by [Auth].
func (t *Transaction) Digest() ([]byte, error) {
	if len(t.digest) > 0 {
		return t.digest, nil
	}
	if len(t.Actions) > MaxActions {
		return nil, ErrTooManyActions
	}
	p := codec.NewWriter(BaseSize, consts.NetworkSizeLimit)
	t.Base.Marshal(p)
	p.PackByte(uint8(len(t.Actions)))
	for _, action := range t.Actions {
		p.PackByte(action.GetTypeID())
		action.Marshal(p)
	}
	return p.Bytes(), p.Err()
}

func (t *Transaction) Sign(
	factory AuthFactory,
	actionRegistry ActionRegistry,
	authRegistry AuthRegistry,
) (*Transaction, error) {
	msg, err := t.Digest()
	if err != nil {
		return nil, err
	}
	auth, err := factory.Sign(msg)
	if err != nil {
		return nil, err
	}
	t.Auth = auth

	// Ensure transaction is fully initialized and correct by reloading it from
	// bytes
	p := codec.NewWriter(len(msg), consts.NetworkSizeLimit)
	if err := t.Marshal(p); err != nil {
		return nil, err
	}
	p = codec.NewReader(p.Bytes(), consts.NetworkSizeLimit)
	return UnmarshalTx(p, actionRegistry, authRegistry)
}

func (t *Transaction) Bytes() []byte { return t.bytes }

// ID hashes the signed bytes of the transaction. A transaction that was
// signed but never packed is packed on first use; an unsigned one has
// [ids.Empty].
func (t *Transaction) ID() ids.ID {
	if t.id != ids.Empty || t.Auth == nil {
		return t.id
	}
	p := codec.NewWriter(BaseSize, consts.NetworkSizeLimit)
	if err := t.Marshal(p); err != nil {
		return ids.Empty
	}
	t.bytes = p.Bytes()
	t.id = utils.ToID(t.bytes)
	return t.id
}

func (t *Transaction) Expiry() int64 { return t.Base.Timestamp }

// StateKeys is the union of the keys of every action plus the replay guard
// of the transaction.
func (t *Transaction) StateKeys(r Rules) state.Keys {
	actor := t.Auth.Actor()
	stateKeys := state.Keys{
		string(storage.TxKey(t.ID())): state.Allocate | state.Write,
	}
	for _, action := range t.Actions {
		for k, v := range action.StateKeys(actor, r) {
			stateKeys.Add(k, v)
		}
	}
	return stateKeys
}

func (t *Transaction) Marshal(p *codec.Packer) error {
	if t.Auth == nil {
		return ErrNotSigned
	}
	if len(t.bytes) > 0 {
		p.PackFixedBytes(t.bytes)
		return p.Err()
	}
	msg, err := t.Digest()
	if err != nil {
		return err
	}
	p.PackFixedBytes(msg)
	p.PackByte(t.Auth.GetTypeID())
	t.Auth.Marshal(p)
	return p.Err()
}

func UnmarshalTx(
	p *codec.Packer,
	actionRegistry ActionRegistry,
	authRegistry AuthRegistry,
) (*Transaction, error) {
	start := p.Offset()
	base, err := UnmarshalBase(p)
	if err != nil {
		return nil, fmt.Errorf("%w: could not unmarshal base", err)
	}
	actions, err := unmarshalActions(p, actionRegistry)
	if err != nil {
		return nil, fmt.Errorf("%w: could not unmarshal actions", err)
	}
	digest := p.Offset()
	authType := p.UnpackByte()
	unmarshalAuth, ok := authRegistry.LookupIndex(authType)
	if !ok {
		return nil, fmt.Errorf("%w: %d is unknown auth type", ErrInvalidObject, authType)
	}
	auth, err := unmarshalAuth(p)
	if err != nil {
		return nil, fmt.Errorf("%w: could not unmarshal auth", err)
	}
	if err := p.Err(); err != nil {
		return nil, err
	}

	var tx Transaction
	tx.Base = base
	tx.Actions = actions
	tx.Auth = auth
	codecBytes := p.Bytes()
	tx.digest = codecBytes[start:digest]
	tx.bytes = codecBytes[start:p.Offset()]
	tx.id = utils.ToID(tx.bytes)
	return &tx, nil
}

func unmarshalActions(
	p *codec.Packer,
	actionRegistry ActionRegistry,
) ([]Action, error) {
	actionCount := p.UnpackByte()
	if actionCount == 0 {
		return nil, ErrNoActions
	}
	if actionCount > MaxActions {
		return nil, ErrTooManyActions
	}
	actions := []Action{}
	for i := uint8(0); i < actionCount; i++ {
		actionType := p.UnpackByte()
		unmarshalAction, ok := actionRegistry.LookupIndex(actionType)
		if !ok {
			return nil, fmt.Errorf("%w: %d is unknown action type", ErrInvalidObject, actionType)
		}
		action, err := unmarshalAction(p)
		if err != nil {
			return nil, fmt.Errorf("%w: could not unmarshal action", err)
		}
		actions = append(actions, action)
	}
	return actions, p.Err()
}

// UnmarshalTxBytes decodes a single transaction and rejects trailing bytes.
func UnmarshalTxBytes(
	b []byte,
	actionRegistry ActionRegistry,
	authRegistry AuthRegistry,
) (*Transaction, error) {
	p := codec.NewReader(b, consts.NetworkSizeLimit)
	tx, err := UnmarshalTx(p, actionRegistry, authRegistry)
	if err != nil {
		return nil, err
	}
	if !p.Empty() {
		return nil, ErrInvalidObject
	}
	return tx, nil
}
