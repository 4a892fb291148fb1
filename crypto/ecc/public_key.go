// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/codec/base58"
	"github.com/ava-labs/antelope-types/consts"
	"github.com/ava-labs/antelope-types/crypto"
	"github.com/ava-labs/antelope-types/crypto/secp256k1"
	"github.com/ava-labs/antelope-types/crypto/secp256r1"
)

// PublicKey is a tagged curve point. The payload is the compressed point
// for K1 and R1, and the WebAuthn key layout for WA.
type PublicKey struct {
	typ  KeyType
	data []byte
}

var _ codec.Value = PublicKey{}

// NewPublicKey validates [data] as a payload of type [typ].
func NewPublicKey(typ KeyType, data []byte) (PublicKey, error) {
	switch typ {
	case K1:
		if _, err := secp256k1.PublicKeyFromBytes(data); err != nil {
			return PublicKey{}, err
		}
	case R1:
		if _, err := secp256r1.PublicKeyFromBytes(data); err != nil {
			return PublicKey{}, err
		}
	case WA:
		p := codec.NewReader(data, consts.NetworkSizeLimit)
		if _, err := unpackWebAuthnPublicKey(p); err != nil {
			return PublicKey{}, err
		}
		if err := p.Done(); err != nil {
			return PublicKey{}, err
		}
	default:
		return PublicKey{}, fmt.Errorf("%w: %s", ErrUnsupportedKeyType, typ)
	}
	return PublicKey{typ: typ, data: bytes.Clone(data)}, nil
}

func NewK1PublicKey(k secp256k1.PublicKey) PublicKey {
	return PublicKey{typ: K1, data: bytes.Clone(k[:])}
}

func NewR1PublicKey(k secp256r1.PublicKey) PublicKey {
	return PublicKey{typ: R1, data: bytes.Clone(k[:])}
}

// NewWebAuthnPublicKey fails if [w] has an unknown presence flag, an rpid
// longer than 256 bytes or an encoding past MaxWebAuthnPayloadLen.
func NewWebAuthnPublicKey(w WebAuthnPublicKey) (PublicKey, error) {
	data, err := w.bytes()
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKey{typ: WA, data: data}, nil
}

// ParsePublicKey accepts "PUB_<TYPE>_<base58>" and legacy K1 keys with
// the "EOS" prefix.
func ParsePublicKey(s string) (PublicKey, error) {
	if strings.HasPrefix(s, PublicKeyPrefix) {
		typ, body, err := splitTagged(s, PublicKeyPrefix)
		if err != nil {
			return PublicKey{}, err
		}
		payload, err := base58.DecodeCheck(body, typ.String())
		if err != nil {
			return PublicKey{}, err
		}
		return NewPublicKey(typ, payload)
	}
	return ParsePublicKeyWithPrefix(s, LegacyPublicKeyPrefix)
}

// ParsePublicKeyWithPrefix parses a legacy K1 key carrying [prefix]
// instead of a type tag.
func ParsePublicKeyWithPrefix(s, prefix string) (PublicKey, error) {
	body, ok := strings.CutPrefix(s, prefix)
	if !ok || len(prefix) == 0 {
		return PublicKey{}, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	raw, err := base58.Decode(body)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %w", ErrUnknownFormat, err)
	}
	if len(raw) != secp256k1.PublicKeyLen+base58.ChecksumLen {
		return PublicKey{}, fmt.Errorf("%w: legacy key of %d bytes", ErrUnknownFormat, len(raw))
	}
	payload, err := base58.DecodeCheck(body, "")
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKey(K1, payload)
}

func (k PublicKey) Type() KeyType {
	return k.typ
}

// Bytes returns a copy of the curve payload (without the type tag).
func (k PublicKey) Bytes() []byte {
	return bytes.Clone(k.data)
}

func (k PublicKey) IsEmpty() bool {
	return len(k.data) == 0
}

func (k PublicKey) String() string {
	if k.IsEmpty() {
		return ""
	}
	return PublicKeyPrefix + k.typ.String() + "_" + base58.EncodeCheck(k.data, k.typ.String())
}

// LegacyString renders a K1 key in the untagged format.
func (k PublicKey) LegacyString(prefix string) (string, error) {
	if k.typ != K1 || k.IsEmpty() {
		return "", fmt.Errorf("%w: legacy format requires K1, have %s", ErrUnsupportedKeyType, k.typ)
	}
	return prefix + base58.EncodeCheck(k.data, ""), nil
}

// WebAuthn decodes the payload of a WA key.
func (k PublicKey) WebAuthn() (WebAuthnPublicKey, error) {
	if k.typ != WA {
		return WebAuthnPublicKey{}, fmt.Errorf("%w: expected WA, have %s", ErrUnsupportedKeyType, k.typ)
	}
	return unpackWebAuthnPublicKey(codec.NewReader(k.data, consts.NetworkSizeLimit))
}

func (k PublicKey) Equal(o PublicKey) bool {
	return k.typ == o.typ && bytes.Equal(k.data, o.data)
}

// Compare orders keys by type tag, then payload bytes.
func (k PublicKey) Compare(o PublicKey) int {
	switch {
	case k.typ < o.typ:
		return -1
	case k.typ > o.typ:
		return 1
	default:
		return bytes.Compare(k.data, o.data)
	}
}

func (k PublicKey) Size() int {
	return codec.VarUint32Len(uint32(k.typ)) + len(k.data)
}

// Marshal refuses the zero value, which has no payload to decode.
func (k PublicKey) Marshal(p *codec.Packer) {
	if k.IsEmpty() {
		p.AddErr(fmt.Errorf("%w: empty public key", crypto.ErrInvalidPublicKey))
		return
	}
	p.PackVarUint32(uint32(k.typ))
	p.PackFixedBytes(k.data)
}

func UnmarshalPublicKey(p *codec.Packer) (PublicKey, error) {
	typ := KeyType(p.UnpackVarUint32())
	if err := p.Err(); err != nil {
		return PublicKey{}, err
	}
	switch typ {
	case K1, R1:
		var data []byte
		p.UnpackFixedBytes(secp256k1.PublicKeyLen, &data)
		if err := p.Err(); err != nil {
			return PublicKey{}, err
		}
		return NewPublicKey(typ, data)
	case WA:
		w, err := unpackWebAuthnPublicKey(p)
		if err != nil {
			return PublicKey{}, err
		}
		return NewWebAuthnPublicKey(w)
	default:
		return PublicKey{}, fmt.Errorf("%w: tag %d", ErrUnsupportedKeyType, uint32(typ))
	}
}

func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PublicKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
