// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/assetvault/codec"
	"github.com/ava-labs/assetvault/codec/codectest"
)

func TestAddressText(t *testing.T) {
	require := require.New(t)
	addr := codectest.NewRandomAddress()

	addrStr, err := addr.MarshalText()
	require.NoError(err)

	var parsedAddr codec.Address
	require.NoError(parsedAddr.UnmarshalText(addrStr))
	require.Equal(addr, parsedAddr)
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)
	addr := codectest.NewRandomAddress()

	addrJSONBytes, err := json.Marshal(addr)
	require.NoError(err)

	var parsedAddr codec.Address
	require.NoError(json.Unmarshal(addrJSONBytes, &parsedAddr))
	require.Equal(addr, parsedAddr)
}

func TestParseKnownAddress(t *testing.T) {
	require := require.New(t)

	addr, err := codec.ParseAddress("11111111111111111111111111111111")
	require.NoError(err)
	require.Equal(codec.EmptyAddress, addr)
	require.Equal("11111111111111111111111111111111", codec.EmptyAddress.String())

	_, err = codec.ParseAddress("1111")
	require.ErrorIs(err, codec.ErrInvalidSize)
}

func TestToAddress(t *testing.T) {
	require := require.New(t)

	_, err := codec.ToAddress(make([]byte, codec.AddressLen-1))
	require.ErrorIs(err, codec.ErrInvalidSize)

	b := make([]byte, codec.AddressLen)
	b[0] = 1
	addr, err := codec.ToAddress(b)
	require.NoError(err)
	require.Equal(byte(1), addr[0])
}
