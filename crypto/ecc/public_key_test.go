// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/codec/base58"
	"github.com/ava-labs/antelope-types/codectest"
	"github.com/ava-labs/antelope-types/crypto"
)

func TestPublicKeyVectors(t *testing.T) {
	for _, v := range loadKeyVectors(t).PublicKeys {
		t.Run(v.Name, func(t *testing.T) {
			require := require.New(t)
			pub, err := ParsePublicKey(v.Tagged)
			require.NoError(err)
			require.Equal(v.Type, pub.Type().String())
			require.Equal(v.Hex, hex.EncodeToString(pub.Bytes()))
			require.Equal(v.Tagged, pub.String())

			b := codectest.RequireRoundTrip(t, pub, UnmarshalPublicKey)
			require.Equal(byte(pub.Type()), b[0])

			if len(v.Legacy) == 0 {
				_, err := pub.LegacyString(LegacyPublicKeyPrefix)
				require.ErrorIs(err, ErrUnsupportedKeyType)
				return
			}
			legacy, err := pub.LegacyString(LegacyPublicKeyPrefix)
			require.NoError(err)
			require.Equal(v.Legacy, legacy)

			fromLegacy, err := ParsePublicKey(v.Legacy)
			require.NoError(err)
			require.True(pub.Equal(fromLegacy))
		})
	}
}

func TestPublicKeyCustomPrefix(t *testing.T) {
	require := require.New(t)
	pub, err := ParsePublicKey("EOS6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV")
	require.NoError(err)

	legacy, err := pub.LegacyString("FIO")
	require.NoError(err)
	require.Equal("FIO6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV", legacy)

	parsed, err := ParsePublicKeyWithPrefix(legacy, "FIO")
	require.NoError(err)
	require.True(pub.Equal(parsed))

	_, err = ParsePublicKey(legacy)
	require.ErrorIs(err, ErrUnknownFormat)
}

func TestParsePublicKeyErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{
			name: "unknown tag",
			in:   "PUB_XX_6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq63",
			err:  ErrUnknownFormat,
		},
		{
			name: "lowercase tag",
			in:   "PUB_k1_6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq63",
			err:  ErrUnknownFormat,
		},
		{
			name: "missing tag separator",
			in:   "PUB_K16MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq63",
			err:  ErrUnknownFormat,
		},
		{
			name: "unknown prefix",
			in:   "ABC6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV",
			err:  ErrUnknownFormat,
		},
		{
			name: "tagged checksum",
			in:   "PUB_K1_6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq64",
			err:  base58.ErrChecksumMismatch,
		},
		{
			name: "wrong curve tag",
			in:   "PUB_R1_6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq63",
			err:  base58.ErrChecksumMismatch,
		},
		{
			name: "legacy checksum",
			in:   "EOS6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CW",
			err:  base58.ErrChecksumMismatch,
		},
		{
			name: "legacy wrong length",
			in:   "EOS" + base58.EncodeCheck([]byte{1, 2, 3}, ""),
			err:  ErrUnknownFormat,
		},
		{
			name: "legacy short body",
			in:   "EOSabc",
			err:  ErrUnknownFormat,
		},
		{
			name: "legacy invalid character",
			in:   "EOS0MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV",
			err:  ErrUnknownFormat,
		},
		{
			name: "garbage",
			in:   "garbage",
			err:  ErrUnknownFormat,
		},
		{
			name: "invalid character",
			in:   "PUB_K1_0MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq63",
			err:  base58.ErrInvalidCharacter,
		},
		{
			name: "not on curve",
			in:   "PUB_K1_" + base58.EncodeCheck(append([]byte{0x05}, make([]byte, 32)...), "K1"),
			err:  crypto.ErrInvalidPublicKey,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePublicKey(tt.in)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestUnmarshalPublicKeyErrors(t *testing.T) {
	pub, err := ParsePublicKey("PUB_K1_6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq63")
	require.NoError(t, err)
	encoded, err := codec.Marshal(pub)
	require.NoError(t, err)

	tests := []struct {
		name string
		in   []byte
		err  error
	}{
		{
			name: "empty",
			in:   nil,
			err:  codec.ErrInsufficientLength,
		},
		{
			name: "unknown curve tag",
			in:   []byte{0x03, 0x02},
			err:  ErrUnsupportedKeyType,
		},
		{
			name: "tag overflows 32 bits",
			in:   []byte{0x80, 0x80, 0x80, 0x80, 0x10},
			err:  codec.ErrMalformedVarint,
		},
		{
			name: "truncated tag",
			in:   []byte{0x80},
			err:  codec.ErrInsufficientLength,
		},
		{
			name: "truncated K1",
			in:   []byte{0x00, 0x02, 0x01},
			err:  codec.ErrInsufficientLength,
		},
		{
			name: "truncated R1",
			in:   append([]byte{0x01}, encoded[1:20]...),
			err:  codec.ErrInsufficientLength,
		},
		{
			name: "truncated WA",
			in:   append([]byte{0x02}, make([]byte, 10)...),
			err:  codec.ErrInsufficientLength,
		},
		{
			name: "trailing byte",
			in:   append(append([]byte{}, encoded...), 0x00),
			err:  codec.ErrTrailingBytes,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Unmarshal(tt.in, UnmarshalPublicKey)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestMarshalEmptyValues(t *testing.T) {
	tests := []struct {
		name  string
		value codec.Value
		err   error
	}{
		{
			name:  "public key",
			value: PublicKey{},
			err:   crypto.ErrInvalidPublicKey,
		},
		{
			name:  "private key",
			value: PrivateKey{},
			err:   crypto.ErrInvalidPrivateKey,
		},
		{
			name:  "signature",
			value: Signature{},
			err:   crypto.ErrInvalidSignature,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Marshal(tt.value)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPublicKeyCompare(t *testing.T) {
	require := require.New(t)
	k1, err := ParsePublicKey("PUB_K1_6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq63")
	require.NoError(err)
	r1, err := ParsePublicKey("PUB_R1_5WKbPCbDSvpmYEKzxnZXLVpcVVxWHZDWDNdhUapQwTUDsb5GBV")
	require.NoError(err)

	require.Equal(-1, k1.Compare(r1))
	require.Equal(1, r1.Compare(k1))
	require.Zero(k1.Compare(k1))
	require.False(k1.Equal(r1))
}

func TestPublicKeyWebAuthn(t *testing.T) {
	require := require.New(t)
	pub, err := ParsePublicKey("PUB_WA_2f55a1yh5XUAPc7sFE4KK9TRU6cpYyo7k3GUrQvigxDQsrHN1nh2A83suXWu5XkExhQW")
	require.NoError(err)

	w, err := pub.WebAuthn()
	require.NoError(err)
	require.Equal(UserPresencePresent, w.UserPresence)
	require.Equal("example.com", w.RPID)
	require.Equal("02515c3d6eb9e396b904d3feca7f54fdcd0cc1e997bf375dca515ad0a6c3b4035f", hex.EncodeToString(w.Key[:]))

	w.UserPresence = UserPresence(3)
	raw, err := marshalPayload(w.size(), w.marshal)
	require.NoError(err)
	_, err = NewPublicKey(WA, raw)
	require.ErrorIs(err, ErrInvalidUserPresence)
}

func TestPublicKeyJSON(t *testing.T) {
	require := require.New(t)
	type account struct {
		Owner PublicKey `json:"owner"`
	}
	in := `{"owner":"PUB_K1_6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5BoDq63"}`

	// legacy keys are accepted and re-emitted tagged
	var a account
	require.NoError(json.Unmarshal([]byte(`{"owner":"EOS6MRyAjQq8ud7hVNYcfnVPJqcVpscN5So8BhtHuGYqET5GDW5CV"}`), &a))
	out, err := json.Marshal(a)
	require.NoError(err)
	require.JSONEq(in, string(out))
}
