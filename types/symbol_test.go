// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/codectest"
)

func TestSymbolCode(t *testing.T) {
	r := require.New(t)
	c, err := NewSymbolCode("EOS")
	r.NoError(err)
	r.Equal(uint64(0x534f45), c.Raw())
	r.Equal("EOS", c.String())
	r.Equal(3, c.Length())
	r.True(c.IsValid())

	tests := []struct {
		name string
		raw  SymbolCode
		want bool
	}{
		{name: "empty", raw: 0, want: false},
		{name: "gap", raw: 0x45004f, want: false},
		{name: "lower case", raw: 0x61, want: false},
		{name: "eight bytes", raw: 0x4141414141414141, want: false},
		{name: "seven letters", raw: 0x41414141414141, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			require.Equal(tt.want, tt.raw.IsValid())
		})
	}
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		in        string
		raw       uint64
		precision uint8
		code      string
		err       error
	}{
		{in: "4,EOS", raw: 1397703940, precision: 4, code: "EOS"},
		{in: "0,SYS", raw: 1398362880, precision: 0, code: "SYS"},
		{in: "18,ABCDEFG", precision: 18, code: "ABCDEFG"},
		{in: "19,EOS", err: ErrInvalidSymbol},
		{in: "4,eos", err: ErrInvalidSymbol},
		{in: "4,ABCDEFGH", err: ErrInvalidSymbol},
		{in: "4,", err: ErrInvalidSymbol},
		{in: "EOS", err: ErrInvalidSymbol},
		{in: "-1,EOS", err: ErrInvalidSymbol},
		{in: "256,EOS", err: ErrInvalidSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require := require.New(t)
			s, err := ParseSymbol(tt.in)
			require.ErrorIs(err, tt.err)
			if tt.err != nil {
				return
			}
			if tt.raw != 0 {
				require.Equal(tt.raw, s.Raw())
			}
			require.Equal(tt.precision, s.Precision())
			require.Equal(tt.code, s.Code().String())
			require.Equal(tt.in, s.String())
			require.True(s.IsValid())

			codectest.RequireRoundTrip(t, s, UnmarshalSymbol)
		})
	}
}

func TestUnmarshalInvalidSymbol(t *testing.T) {
	// precision 19
	_, err := codec.Unmarshal([]byte{0x13, 0x45, 0x4f, 0x53, 0, 0, 0, 0}, UnmarshalSymbol)
	require.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestExtendedSymbol(t *testing.T) {
	require := require.New(t)
	e, err := ParseExtendedSymbol("4,EOS@eosio.token")
	require.NoError(err)
	require.Equal(MustSymbol(4, "EOS"), e.Symbol)
	require.Equal(MustName("eosio.token"), e.Contract)
	require.Equal("4,EOS@eosio.token", e.String())

	codectest.RequireRoundTrip(t, e, UnmarshalExtendedSymbol)

	_, err = ParseExtendedSymbol("4,EOS")
	require.ErrorIs(err, ErrInvalidSymbol)
	_, err = ParseExtendedSymbol("4,EOS@EOSIO")
	require.ErrorIs(err, ErrInvalidCharacter)
}
