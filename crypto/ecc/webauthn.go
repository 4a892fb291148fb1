// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/consts"
	"github.com/ava-labs/antelope-types/crypto/checksum"
	"github.com/ava-labs/antelope-types/crypto/secp256r1"
)

// UserPresence is the level of user interaction an authenticator attests to.
type UserPresence uint8

const (
	UserPresenceNone UserPresence = iota
	UserPresencePresent
	UserPresenceVerified
)

const (
	// authenticator data flags
	flagUserPresent  = 0x01
	flagUserVerified = 0x04

	// rpid hash || flags || signature counter
	minAuthDataLen = checksum.Checksum256Len + 1 + consts.Uint32Len

	webAuthnGet   = "webauthn.get"
	httpsScheme   = "https://"
	maxRPIDLength = 256

	// MaxWebAuthnPayloadLen leaves room for the variant tag so a tagged
	// WA key or signature always fits in NetworkSizeLimit.
	MaxWebAuthnPayloadLen = consts.NetworkSizeLimit - consts.MaxVarUint32Len
)

func (u UserPresence) String() string {
	switch u {
	case UserPresenceNone:
		return "none"
	case UserPresencePresent:
		return "present"
	case UserPresenceVerified:
		return "verified"
	default:
		return fmt.Sprintf("UserPresence(%d)", uint8(u))
	}
}

// WebAuthnPublicKey is an R1 key bound to a relying party.
type WebAuthnPublicKey struct {
	Key          secp256r1.PublicKey
	UserPresence UserPresence
	RPID         string
}

func (w WebAuthnPublicKey) size() int {
	return secp256r1.PublicKeyLen + consts.ByteLen + codec.StringLen(w.RPID)
}

func (w WebAuthnPublicKey) marshal(p *codec.Packer) {
	p.PackFixedBytes(w.Key[:])
	p.PackByte(byte(w.UserPresence))
	p.PackString(w.RPID)
}

func (w WebAuthnPublicKey) bytes() ([]byte, error) {
	if len(w.RPID) > maxRPIDLength {
		return nil, fmt.Errorf("%w: rpid of %d bytes", codec.ErrTooLarge, len(w.RPID))
	}
	if w.UserPresence > UserPresenceVerified {
		return nil, fmt.Errorf("%w: %d", ErrInvalidUserPresence, w.UserPresence)
	}
	if _, err := secp256r1.PublicKeyFromBytes(w.Key[:]); err != nil {
		return nil, err
	}
	return marshalPayload(w.size(), w.marshal)
}

func unpackWebAuthnPublicKey(p *codec.Packer) (WebAuthnPublicKey, error) {
	var key []byte
	p.UnpackFixedBytes(secp256r1.PublicKeyLen, &key)
	presence := UserPresence(p.UnpackByte())
	var rpid []byte
	p.UnpackBytes(maxRPIDLength, false, &rpid)
	if err := p.Err(); err != nil {
		return WebAuthnPublicKey{}, err
	}
	if presence > UserPresenceVerified {
		return WebAuthnPublicKey{}, fmt.Errorf("%w: %d", ErrInvalidUserPresence, presence)
	}
	pub, err := secp256r1.PublicKeyFromBytes(key)
	if err != nil {
		return WebAuthnPublicKey{}, err
	}
	return WebAuthnPublicKey{Key: pub, UserPresence: presence, RPID: string(rpid)}, nil
}

// WebAuthnSignature is an R1 signature over the authenticator data and
// the hash of the client data JSON.
type WebAuthnSignature struct {
	Compact    secp256r1.Signature
	AuthData   []byte
	ClientJSON string
}

func (w WebAuthnSignature) size() int {
	return secp256r1.SignatureLen + codec.BytesLen(w.AuthData) + codec.StringLen(w.ClientJSON)
}

func (w WebAuthnSignature) marshal(p *codec.Packer) {
	p.PackFixedBytes(w.Compact[:])
	p.PackBytes(w.AuthData)
	p.PackString(w.ClientJSON)
}

func (w WebAuthnSignature) bytes() ([]byte, error) {
	return marshalPayload(w.size(), w.marshal)
}

func marshalPayload(size int, marshal func(*codec.Packer)) ([]byte, error) {
	if size > MaxWebAuthnPayloadLen {
		return nil, fmt.Errorf("%w: WebAuthn payload of %d bytes", codec.ErrTooLarge, size)
	}
	p := codec.NewWriter(size, MaxWebAuthnPayloadLen)
	marshal(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

func unpackWebAuthnSignature(p *codec.Packer) (WebAuthnSignature, error) {
	var (
		compact  []byte
		authData []byte
	)
	p.UnpackFixedBytes(secp256r1.SignatureLen, &compact)
	p.UnpackBytes(-1, false, &authData)
	clientJSON := p.UnpackString(false)
	if err := p.Err(); err != nil {
		return WebAuthnSignature{}, err
	}
	return WebAuthnSignature{
		Compact:    secp256r1.Signature(compact),
		AuthData:   authData,
		ClientJSON: clientJSON,
	}, nil
}

type clientData struct {
	Type      string `json:"type"`
	Challenge string `json:"challenge"`
	Origin    string `json:"origin"`
}

// Recover checks the assertion against [digest] and returns the key that
// signed it. The relying party is taken from the https origin and must
// match the rpid hash at the start of the authenticator data.
func (w WebAuthnSignature) Recover(digest checksum.Checksum256) (WebAuthnPublicKey, error) {
	var cd clientData
	if err := json.Unmarshal([]byte(w.ClientJSON), &cd); err != nil {
		return WebAuthnPublicKey{}, fmt.Errorf("%w: client data: %w", ErrInvalidWebAuthn, err)
	}
	if cd.Type != webAuthnGet {
		return WebAuthnPublicKey{}, fmt.Errorf("%w: type %q", ErrInvalidWebAuthn, cd.Type)
	}
	challenge, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(cd.Challenge, "="))
	if err != nil {
		return WebAuthnPublicKey{}, fmt.Errorf("%w: challenge: %w", ErrInvalidWebAuthn, err)
	}
	if !bytes.Equal(challenge, digest[:]) {
		return WebAuthnPublicKey{}, fmt.Errorf("%w: challenge does not match digest", ErrInvalidWebAuthn)
	}

	host, ok := strings.CutPrefix(cd.Origin, httpsScheme)
	if !ok {
		return WebAuthnPublicKey{}, fmt.Errorf("%w: origin %q is not https", ErrInvalidWebAuthn, cd.Origin)
	}
	rpid, _, _ := strings.Cut(host, ":")
	if len(rpid) == 0 || len(rpid) > maxRPIDLength {
		return WebAuthnPublicKey{}, fmt.Errorf("%w: invalid rpid %q", ErrInvalidWebAuthn, rpid)
	}

	if len(w.AuthData) < minAuthDataLen {
		return WebAuthnPublicKey{}, fmt.Errorf("%w: auth data too short (%d)", ErrInvalidWebAuthn, len(w.AuthData))
	}
	rpidHash := checksum.Hash256([]byte(rpid))
	if !bytes.Equal(w.AuthData[:checksum.Checksum256Len], rpidHash[:]) {
		return WebAuthnPublicKey{}, fmt.Errorf("%w: rpid hash mismatch", ErrInvalidWebAuthn)
	}
	presence := UserPresenceNone
	flags := w.AuthData[checksum.Checksum256Len]
	if flags&flagUserPresent != 0 {
		presence = UserPresencePresent
	}
	if flags&flagUserVerified != 0 {
		presence = UserPresenceVerified
	}

	clientHash := checksum.Hash256([]byte(w.ClientJSON))
	signed := checksum.Hash256(append(append([]byte{}, w.AuthData...), clientHash[:]...))
	key, err := secp256r1.RecoverPublicKey(signed[:], w.Compact)
	if err != nil {
		return WebAuthnPublicKey{}, err
	}
	return WebAuthnPublicKey{Key: key, UserPresence: presence, RPID: rpid}, nil
}
