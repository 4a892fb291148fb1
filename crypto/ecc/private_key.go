// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/codec/base58"
	"github.com/ava-labs/antelope-types/crypto"
	"github.com/ava-labs/antelope-types/crypto/checksum"
	"github.com/ava-labs/antelope-types/crypto/secp256k1"
	"github.com/ava-labs/antelope-types/crypto/secp256r1"
)

// PrivateKey is a tagged 32-byte scalar. Only K1 and R1 keys exist; WA
// keys live inside an authenticator.
type PrivateKey struct {
	typ  KeyType
	data [secp256k1.PrivateKeyLen]byte
}

var _ codec.Value = PrivateKey{}

func NewPrivateKey(typ KeyType, data []byte) (PrivateKey, error) {
	switch typ {
	case K1:
		k, err := secp256k1.PrivateKeyFromBytes(data)
		if err != nil {
			return PrivateKey{}, err
		}
		return PrivateKey{typ: K1, data: k}, nil
	case R1:
		k, err := secp256r1.PrivateKeyFromBytes(data)
		if err != nil {
			return PrivateKey{}, err
		}
		return PrivateKey{typ: R1, data: k}, nil
	default:
		return PrivateKey{}, fmt.Errorf("%w: no private keys of type %s", ErrUnsupportedKeyType, typ)
	}
}

// GeneratePrivateKey returns a fresh random key of type [typ].
func GeneratePrivateKey(typ KeyType) (PrivateKey, error) {
	switch typ {
	case K1:
		k, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			return PrivateKey{}, err
		}
		return PrivateKey{typ: K1, data: k}, nil
	case R1:
		k, err := secp256r1.GeneratePrivateKey()
		if err != nil {
			return PrivateKey{}, err
		}
		return PrivateKey{typ: R1, data: k}, nil
	default:
		return PrivateKey{}, fmt.Errorf("%w: cannot generate %s keys", ErrUnsupportedKeyType, typ)
	}
}

// wifLen is the decoded size of a legacy key: version, scalar, checksum.
const wifLen = 1 + secp256k1.PrivateKeyLen + base58.ChecksumLen

// ParsePrivateKey accepts "PVT_<TYPE>_<base58>" and legacy WIF keys. Input
// that is neither is ErrUnknownFormat; checksums are only checked once the
// format is known.
func ParsePrivateKey(s string) (PrivateKey, error) {
	if !strings.HasPrefix(s, PrivateKeyPrefix) {
		raw, err := base58.Decode(s)
		if err != nil {
			return PrivateKey{}, fmt.Errorf("%w: %w", ErrUnknownFormat, err)
		}
		if len(raw) != wifLen {
			return PrivateKey{}, fmt.Errorf("%w: %d bytes is not a WIF key", ErrUnknownFormat, len(raw))
		}
		payload, err := base58.DecodeWIF(s)
		if err != nil {
			return PrivateKey{}, err
		}
		return NewPrivateKey(K1, payload)
	}
	typ, body, err := splitTagged(s, PrivateKeyPrefix)
	if err != nil {
		return PrivateKey{}, err
	}
	payload, err := base58.DecodeCheck(body, typ.String())
	if err != nil {
		return PrivateKey{}, err
	}
	return NewPrivateKey(typ, payload)
}

func (k PrivateKey) Type() KeyType {
	return k.typ
}

func (k PrivateKey) Bytes() []byte {
	return bytes.Clone(k.data[:])
}

func (k PrivateKey) String() string {
	return PrivateKeyPrefix + k.typ.String() + "_" + base58.EncodeCheck(k.data[:], k.typ.String())
}

// LegacyString renders a K1 key as WIF.
func (k PrivateKey) LegacyString() (string, error) {
	if k.typ != K1 {
		return "", fmt.Errorf("%w: legacy format requires K1, have %s", ErrUnsupportedKeyType, k.typ)
	}
	return base58.EncodeWIF(k.data[:]), nil
}

func (k PrivateKey) PublicKey() PublicKey {
	if k.typ == R1 {
		return NewR1PublicKey(secp256r1.PrivateKey(k.data).PublicKey())
	}
	return NewK1PublicKey(secp256k1.PrivateKey(k.data).PublicKey())
}

// Sign signs [digest]. K1 signatures are always canonical.
func (k PrivateKey) Sign(digest checksum.Checksum256) (Signature, error) {
	switch k.typ {
	case K1:
		sig, err := secp256k1.PrivateKey(k.data).Sign(digest[:])
		if err != nil {
			return Signature{}, err
		}
		return NewK1Signature(sig), nil
	case R1:
		sig, err := secp256r1.PrivateKey(k.data).Sign(digest[:])
		if err != nil {
			return Signature{}, err
		}
		return NewR1Signature(sig), nil
	default:
		return Signature{}, fmt.Errorf("%w: cannot sign with %s", ErrUnsupportedKeyType, k.typ)
	}
}

func (k PrivateKey) Equal(o PrivateKey) bool {
	return k == o
}

func (k PrivateKey) Size() int {
	return codec.VarUint32Len(uint32(k.typ)) + len(k.data)
}

// Marshal refuses the zero value, which is not a valid scalar.
func (k PrivateKey) Marshal(p *codec.Packer) {
	if k.data == [secp256k1.PrivateKeyLen]byte{} {
		p.AddErr(fmt.Errorf("%w: empty private key", crypto.ErrInvalidPrivateKey))
		return
	}
	p.PackVarUint32(uint32(k.typ))
	p.PackFixedBytes(k.data[:])
}

func UnmarshalPrivateKey(p *codec.Packer) (PrivateKey, error) {
	typ := KeyType(p.UnpackVarUint32())
	if err := p.Err(); err != nil {
		return PrivateKey{}, err
	}
	if typ != K1 && typ != R1 {
		return PrivateKey{}, fmt.Errorf("%w: tag %d", ErrUnsupportedKeyType, uint32(typ))
	}
	var data []byte
	p.UnpackFixedBytes(secp256k1.PrivateKeyLen, &data)
	if err := p.Err(); err != nil {
		return PrivateKey{}, err
	}
	return NewPrivateKey(typ, data)
}

func (k PrivateKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PrivateKey) UnmarshalText(text []byte) error {
	parsed, err := ParsePrivateKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
