// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "github.com/ava-labs/assetvault/consts"

// TypeParser maps the type prefix of a serialized item to the decoder that
// can read the rest of it.
type TypeParser[T any] struct {
	indexToDecoder map[uint8]func(*Packer) (T, error)
}

func NewTypeParser[T any]() *TypeParser[T] {
	return &TypeParser[T]{
		indexToDecoder: map[uint8]func(*Packer) (T, error){},
	}
}

// Register adds a decoder for [typeID]. Each type ID can only be registered
// once.
func (p *TypeParser[T]) Register(typeID uint8, f func(*Packer) (T, error)) error {
	if len(p.indexToDecoder) > int(consts.MaxUint8) {
		return ErrTooManyItems
	}
	if _, ok := p.indexToDecoder[typeID]; ok {
		return ErrDuplicateItem
	}
	p.indexToDecoder[typeID] = f
	return nil
}

func (p *TypeParser[T]) LookupIndex(typeID uint8) (func(*Packer) (T, error), bool) {
	f, ok := p.indexToDecoder[typeID]
	return f, ok
}
