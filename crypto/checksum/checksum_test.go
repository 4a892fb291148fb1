// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package checksum

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/antelope-types/codectest"
)

type digestVector struct {
	Input     string `yaml:"input"`
	Ripemd160 string `yaml:"ripemd160"`
	Sha256    string `yaml:"sha256"`
	Sha512    string `yaml:"sha512"`
}

func TestDigestVectors(t *testing.T) {
	var vectors []digestVector
	codectest.LoadVectors(t, "testdata/digests.yaml", &vectors)
	require.NotEmpty(t, vectors)

	for _, v := range vectors {
		t.Run(v.Input, func(t *testing.T) {
			require := require.New(t)
			require.Equal(v.Ripemd160, Hash160([]byte(v.Input)).String())
			require.Equal(v.Sha256, Hash256([]byte(v.Input)).String())
			require.Equal(v.Sha512, Hash512([]byte(v.Input)).String())
		})
	}
}

func TestHash160Concatenates(t *testing.T) {
	require := require.New(t)
	require.Equal(Hash160([]byte("eosio")), Hash160([]byte("eo"), []byte("sio")))
}

func TestFromBytes(t *testing.T) {
	require := require.New(t)

	b := codectest.RandomBytes(t, Checksum256Len)
	c, err := Checksum256FromBytes(b)
	require.NoError(err)
	require.Equal(b, c.Bytes())

	_, err = Checksum256FromBytes(b[:31])
	require.ErrorIs(err, ErrWrongLength)
	_, err = Checksum160FromBytes(b)
	require.ErrorIs(err, ErrWrongLength)
	_, err = Checksum512FromBytes(append(b, b...)[:63])
	require.ErrorIs(err, ErrWrongLength)
}

func TestHexRoundTrip(t *testing.T) {
	require := require.New(t)

	for i := 0; i < 50; i++ {
		c160, err := Checksum160FromBytes(codectest.RandomBytes(t, Checksum160Len))
		require.NoError(err)
		parsed160, err := Checksum160FromHex(c160.String())
		require.NoError(err)
		require.Equal(c160, parsed160)
		require.Len(c160.String(), 2*Checksum160Len)

		c256, err := Checksum256FromBytes(codectest.RandomBytes(t, Checksum256Len))
		require.NoError(err)
		parsed256, err := Checksum256FromHex(c256.String())
		require.NoError(err)
		require.Equal(c256, parsed256)

		c512, err := Checksum512FromBytes(codectest.RandomBytes(t, Checksum512Len))
		require.NoError(err)
		parsed512, err := Checksum512FromHex(c512.String())
		require.NoError(err)
		require.Equal(c512, parsed512)
		require.Equal(strings.ToLower(c512.String()), c512.String())
	}
}

func TestFromHexInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"short", "00"},
		{"long", strings.Repeat("0", 66)},
		{"non-hex", strings.Repeat("g", 64)},
		{"prefixed", "0x" + strings.Repeat("0", 62)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Checksum256FromHex(tt.input)
			require.ErrorIs(t, err, ErrInvalidHex)
		})
	}
}

func TestCompare(t *testing.T) {
	require := require.New(t)

	a := Checksum160{0x01}
	b := Checksum160{0x01, 0x02}
	c := Checksum160{0x02}
	require.Negative(a.Compare(b))
	require.Negative(b.Compare(c))
	require.Positive(c.Compare(a))
	require.Zero(a.Compare(a))
	require.True(EmptyChecksum160.IsEmpty())
	require.False(a.IsEmpty())
}

func TestBinaryRoundTrip(t *testing.T) {
	c160, err := Checksum160FromBytes(codectest.RandomBytes(t, Checksum160Len))
	require.NoError(t, err)
	codectest.RequireRoundTrip(t, c160, UnmarshalChecksum160)

	c256 := Hash256([]byte("eosio"))
	b := codectest.RequireRoundTrip(t, c256, UnmarshalChecksum256)
	require.Equal(t, c256.Bytes(), b)

	codectest.RequireRoundTrip(t, Hash512([]byte("eosio")), UnmarshalChecksum512)
}

func TestJSON(t *testing.T) {
	require := require.New(t)

	c := Hash256([]byte("abc"))
	b, err := json.Marshal(c)
	require.NoError(err)
	require.Equal(`"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"`, string(b))

	var parsed Checksum256
	require.NoError(json.Unmarshal(b, &parsed))
	require.Equal(c, parsed)
}
