// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/antelope-types/codectest"
)

func TestParseExtendedAsset(t *testing.T) {
	require := require.New(t)
	e, err := ParseExtendedAsset("1.0000 EOS@eosio.token")
	require.NoError(err)
	require.Equal(MustAsset("1.0000 EOS"), e.Quantity)
	require.Equal(MustName("eosio.token"), e.Contract)
	require.Equal("1.0000 EOS@eosio.token", e.String())
	require.Equal("4,EOS@eosio.token", e.ExtendedSymbol().String())
	require.True(e.IsValid())

	b := codectest.RequireRoundTrip(t, e, UnmarshalExtendedAsset)
	require.Equal("102700000000000004454f530000000000a6823403ea3055", hex.EncodeToString(b))
}

func TestParseExtendedAssetErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{in: "1.0000 EOS", err: ErrMalformedAsset},
		{in: "1.0000 EOS@", err: nil},
		{in: "1.0000 EOS@EOSIO", err: ErrInvalidCharacter},
		{in: "1.0000 eos@eosio.token", err: ErrInvalidSymbol},
		{in: "1.0000 EOS@waytoolongaccount", err: ErrNameTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseExtendedAsset(tt.in)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestExtendedAssetArithmetic(t *testing.T) {
	require := require.New(t)
	a, err := ParseExtendedAsset("1.0000 EOS@eosio.token")
	require.NoError(err)
	b, err := ParseExtendedAsset("0.5000 EOS@eosio.token")
	require.NoError(err)

	sum, err := a.Add(b)
	require.NoError(err)
	require.Equal("1.5000 EOS@eosio.token", sum.String())

	diff, err := b.Sub(a)
	require.NoError(err)
	require.Equal("-0.5000 EOS@eosio.token", diff.String())
	require.Equal("-1.0000 EOS@eosio.token", a.Neg().String())

	c, err := a.Compare(b)
	require.NoError(err)
	require.Equal(1, c)

	other, err := ParseExtendedAsset("1.0000 EOS@fake.token")
	require.NoError(err)
	_, err = a.Add(other)
	require.ErrorIs(err, ErrContractMismatch)
	_, err = a.Sub(other)
	require.ErrorIs(err, ErrContractMismatch)
	_, err = a.Compare(other)
	require.ErrorIs(err, ErrContractMismatch)

	sys, err := ParseExtendedAsset("1 SYS@eosio.token")
	require.NoError(err)
	_, err = a.Add(sys)
	require.ErrorIs(err, ErrSymbolMismatch)
}
