// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/codectest"
	"github.com/ava-labs/antelope-types/consts"
	"github.com/ava-labs/antelope-types/crypto"
	"github.com/ava-labs/antelope-types/crypto/checksum"
	"github.com/ava-labs/antelope-types/crypto/secp256r1"
)

type assertion struct {
	typ    string
	origin string
	rpid   string
	flags  byte
}

// sign builds the assertion an authenticator would produce for [digest].
func (a assertion) sign(t *testing.T, priv secp256r1.PrivateKey, digest checksum.Checksum256) Signature {
	rpidHash := checksum.Hash256([]byte(a.rpid))
	authData := append(rpidHash[:], a.flags, 0, 0, 0, 1)
	clientJSON := fmt.Sprintf(
		`{"type":%q,"challenge":%q,"origin":%q}`,
		a.typ,
		base64.RawURLEncoding.EncodeToString(digest[:]),
		a.origin,
	)
	clientHash := checksum.Hash256([]byte(clientJSON))
	signed := checksum.Hash256(append(append([]byte{}, authData...), clientHash[:]...))

	compact, err := priv.Sign(signed[:])
	require.NoError(t, err)
	sig, err := NewWebAuthnSignature(WebAuthnSignature{
		Compact:    compact,
		AuthData:   authData,
		ClientJSON: clientJSON,
	})
	require.NoError(t, err)
	return sig
}

func TestWebAuthnRecover(t *testing.T) {
	tests := []struct {
		name     string
		a        assertion
		presence UserPresence
		rpid     string
	}{
		{
			name:     "verified",
			a:        assertion{typ: webAuthnGet, origin: "https://example.com", rpid: "example.com", flags: 0x05},
			presence: UserPresenceVerified,
			rpid:     "example.com",
		},
		{
			name:     "present with port",
			a:        assertion{typ: webAuthnGet, origin: "https://wallet.example:8443", rpid: "wallet.example", flags: 0x01},
			presence: UserPresencePresent,
			rpid:     "wallet.example",
		},
		{
			name:     "no interaction",
			a:        assertion{typ: webAuthnGet, origin: "https://example.com", rpid: "example.com", flags: 0x00},
			presence: UserPresenceNone,
			rpid:     "example.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			priv, err := secp256r1.GeneratePrivateKey()
			require.NoError(err)
			digest := checksum.Hash256(codectest.RandomBytes(t, 32))

			sig := tt.a.sign(t, priv, digest)
			codectest.RequireRoundTrip(t, sig, UnmarshalSignature)

			recovered, err := sig.RecoverPublicKey(digest)
			require.NoError(err)
			want, err := NewWebAuthnPublicKey(WebAuthnPublicKey{
				Key:          priv.PublicKey(),
				UserPresence: tt.presence,
				RPID:         tt.rpid,
			})
			require.NoError(err)
			require.True(want.Equal(recovered))
			require.True(sig.Verify(digest, want))

			parsed, err := ParsePublicKey(want.String())
			require.NoError(err)
			require.True(want.Equal(parsed))
		})
	}
}

func TestWebAuthnRecoverErrors(t *testing.T) {
	tests := []struct {
		name string
		a    assertion
	}{
		{
			name: "wrong type",
			a:    assertion{typ: "webauthn.create", origin: "https://example.com", rpid: "example.com", flags: 0x01},
		},
		{
			name: "insecure origin",
			a:    assertion{typ: webAuthnGet, origin: "http://example.com", rpid: "example.com", flags: 0x01},
		},
		{
			name: "rpid mismatch",
			a:    assertion{typ: webAuthnGet, origin: "https://example.com", rpid: "example.org", flags: 0x01},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			priv, err := secp256r1.GeneratePrivateKey()
			require.NoError(err)
			digest := checksum.Hash256([]byte(tt.name))

			sig := tt.a.sign(t, priv, digest)
			_, err = sig.RecoverPublicKey(digest)
			require.ErrorIs(err, ErrInvalidWebAuthn)
		})
	}
}

func TestWebAuthnChallengeMismatch(t *testing.T) {
	require := require.New(t)
	priv, err := secp256r1.GeneratePrivateKey()
	require.NoError(err)

	a := assertion{typ: webAuthnGet, origin: "https://example.com", rpid: "example.com", flags: 0x01}
	sig := a.sign(t, priv, checksum.Hash256([]byte("signed")))
	_, err = sig.RecoverPublicKey(checksum.Hash256([]byte("other")))
	require.ErrorIs(err, ErrInvalidWebAuthn)

	bad, err := NewWebAuthnSignature(WebAuthnSignature{ClientJSON: "{"})
	require.NoError(err)
	_, err = bad.RecoverPublicKey(helloDigest())
	require.ErrorIs(err, ErrInvalidWebAuthn)
}

func TestWebAuthnOversize(t *testing.T) {
	priv, err := secp256r1.GeneratePrivateKey()
	require.NoError(t, err)
	pub := priv.PublicKey()

	sigTests := []struct {
		name string
		sig  WebAuthnSignature
	}{
		{
			name: "client json",
			sig:  WebAuthnSignature{ClientJSON: string(make([]byte, 3_000_000))},
		},
		{
			name: "auth data",
			sig:  WebAuthnSignature{AuthData: make([]byte, MaxWebAuthnPayloadLen)},
		},
	}
	for _, tt := range sigTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWebAuthnSignature(tt.sig)
			require.ErrorIs(t, err, codec.ErrTooLarge)
		})
	}

	keyTests := []struct {
		name    string
		key     WebAuthnPublicKey
		wantErr error
	}{
		{
			name:    "rpid",
			key:     WebAuthnPublicKey{Key: pub, RPID: strings.Repeat("a", maxRPIDLength+1)},
			wantErr: codec.ErrTooLarge,
		},
		{
			name:    "presence",
			key:     WebAuthnPublicKey{Key: pub, UserPresence: UserPresenceVerified + 1, RPID: "example.com"},
			wantErr: ErrInvalidUserPresence,
		},
		{
			name:    "empty curve point",
			key:     WebAuthnPublicKey{RPID: "example.com"},
			wantErr: crypto.ErrInvalidPublicKey,
		},
	}
	for _, tt := range keyTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewWebAuthnPublicKey(tt.key)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWebAuthnLongRPIDRejectedOnDecode(t *testing.T) {
	require := require.New(t)
	priv, err := secp256r1.GeneratePrivateKey()
	require.NoError(err)
	pub := priv.PublicKey()

	p := codec.NewWriter(0, consts.NetworkSizeLimit)
	p.PackVarUint32(uint32(WA))
	p.PackFixedBytes(pub[:])
	p.PackByte(byte(UserPresencePresent))
	p.PackString(strings.Repeat("a", maxRPIDLength+1))
	require.NoError(p.Err())

	_, err = codec.Unmarshal(p.Bytes(), UnmarshalPublicKey)
	require.ErrorIs(err, codec.ErrTooLarge)
}
