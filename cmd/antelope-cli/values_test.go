// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/types"
)

func TestTypeNamesSorted(t *testing.T) {
	require := require.New(t)

	names := typeNames()
	require.Len(names, len(valueTypes))
	require.IsNonDecreasing(names)
	require.Contains(names, "extended_asset")
}

func TestPackUnpack(t *testing.T) {
	tests := []struct {
		typ   string
		value string
		hex   string
	}{
		{
			typ:   "name",
			value: "eosio",
			hex:   "0000000000ea3055",
		},
		{
			typ:   "symbol",
			value: "4,EOS",
			hex:   "04454f5300000000",
		},
		{
			typ:   "asset",
			value: "1.0000 EOS",
			hex:   "102700000000000004454f5300000000",
		},
		{
			typ:   "extended_asset",
			value: "1.0000 EOS@eosio.token",
			hex:   "102700000000000004454f530000000000a6823403ea3055",
		},
		{
			typ:   "checksum160",
			value: "0102030405060708090a0b0c0d0e0f1011121314",
			hex:   "0102030405060708090a0b0c0d0e0f1011121314",
		},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			require := require.New(t)

			v, err := parseValue(tt.typ, tt.value)
			require.NoError(err)
			resp, err := newPackCmdResponse(tt.typ, v)
			require.NoError(err)
			require.Equal(tt.hex, resp.Hex.String())
			require.Equal(tt.value, resp.Value)
			require.Equal(len(tt.hex)/2, resp.Size)

			b, err := codec.LoadHex(tt.hex, -1)
			require.NoError(err)
			decoded, err := unpackValue(tt.typ, b)
			require.NoError(err)
			require.Equal(tt.value, decoded.String())
		})
	}
}

func TestUnpackRejectsTrailingBytes(t *testing.T) {
	require := require.New(t)

	_, err := unpackValue("name", []byte{0, 0, 0, 0, 0, 0xea, 0x30, 0x55, 0x00})
	require.ErrorIs(err, codec.ErrTrailingBytes)
}

func TestUnknownType(t *testing.T) {
	require := require.New(t)

	_, err := parseValue("uint128", "1")
	require.ErrorContains(err, "unknown type")
	_, err = unpackValue("uint128", nil)
	require.ErrorContains(err, "unknown type")
}

func TestValidateLines(t *testing.T) {
	require := require.New(t)

	lines := []string{
		"# comment",
		"name:eosio.token",
		"",
		"asset: 1.0000 EOS",
		"name:UPPER",
		"not a pair",
		"symbol:4,EOS",
		"public_key:PUB_K1_bogus",
	}
	results, err := validateLines(context.Background(), lines)
	require.NoError(err)
	require.Len(results, 6)

	lineNumbers := make([]int, len(results))
	for i, r := range results {
		lineNumbers[i] = r.Line
	}
	require.Equal([]int{2, 4, 5, 6, 7, 8}, lineNumbers)

	require.NoError(results[0].Err)
	require.Equal("name", results[0].Type)
	require.Equal("eosio.token", results[0].Value)
	require.NoError(results[1].Err)
	require.Equal("1.0000 EOS", results[1].Value)
	require.ErrorIs(results[2].Err, types.ErrInvalidCharacter)
	require.ErrorIs(results[3].Err, errMalformedLine)
	require.NoError(results[4].Err)
	require.Error(results[5].Err)
}

func TestValidateLinesCanceled(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := validateLines(ctx, []string{"name:eosio"})
	require.ErrorIs(err, context.Canceled)
}

func TestPackResponseJSON(t *testing.T) {
	require := require.New(t)

	v, err := parseValue("name", "eosio")
	require.NoError(err)
	resp, err := newPackCmdResponse("name", v)
	require.NoError(err)

	b, err := json.Marshal(resp)
	require.NoError(err)
	require.JSONEq(`{"type":"name","value":"eosio","hex":"0000000000ea3055","size":8}`, string(b))
}
