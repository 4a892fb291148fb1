// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"bytes"
	"fmt"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/codec/base58"
	"github.com/ava-labs/antelope-types/consts"
	"github.com/ava-labs/antelope-types/crypto"
	"github.com/ava-labs/antelope-types/crypto/checksum"
	"github.com/ava-labs/antelope-types/crypto/secp256k1"
	"github.com/ava-labs/antelope-types/crypto/secp256r1"
)

// Signature is a tagged compact signature. WA signatures also carry the
// authenticator data and client JSON they were made over.
type Signature struct {
	typ  KeyType
	data []byte
}

var _ codec.Value = Signature{}

func NewSignature(typ KeyType, data []byte) (Signature, error) {
	switch typ {
	case K1:
		if len(data) != secp256k1.SignatureLen {
			return Signature{}, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidSignature, secp256k1.SignatureLen, len(data))
		}
	case R1:
		if len(data) != secp256r1.SignatureLen {
			return Signature{}, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidSignature, secp256r1.SignatureLen, len(data))
		}
	case WA:
		p := codec.NewReader(data, consts.NetworkSizeLimit)
		if _, err := unpackWebAuthnSignature(p); err != nil {
			return Signature{}, err
		}
		if err := p.Done(); err != nil {
			return Signature{}, err
		}
	default:
		return Signature{}, fmt.Errorf("%w: %s", ErrUnsupportedKeyType, typ)
	}
	return Signature{typ: typ, data: bytes.Clone(data)}, nil
}

func NewK1Signature(s secp256k1.Signature) Signature {
	return Signature{typ: K1, data: bytes.Clone(s[:])}
}

func NewR1Signature(s secp256r1.Signature) Signature {
	return Signature{typ: R1, data: bytes.Clone(s[:])}
}

// NewR1SignatureFromASN1 converts a DER signature of [digest] by the R1
// key [pub] into a compact R1 signature.
func NewR1SignatureFromASN1(digest checksum.Checksum256, der []byte, pub PublicKey) (Signature, error) {
	if pub.Type() != R1 || pub.IsEmpty() {
		return Signature{}, fmt.Errorf("%w: DER signatures require an R1 key, have %s", ErrUnsupportedKeyType, pub.Type())
	}
	sig, err := secp256r1.SignatureFromASN1(digest[:], der, secp256r1.PublicKey(pub.data))
	if err != nil {
		return Signature{}, err
	}
	return NewR1Signature(sig), nil
}

// NewWebAuthnSignature fails if [w] encodes past MaxWebAuthnPayloadLen.
func NewWebAuthnSignature(w WebAuthnSignature) (Signature, error) {
	data, err := w.bytes()
	if err != nil {
		return Signature{}, err
	}
	return Signature{typ: WA, data: data}, nil
}

// ParseSignature accepts "SIG_<TYPE>_<base58>".
func ParseSignature(s string) (Signature, error) {
	typ, body, err := splitTagged(s, SignaturePrefix)
	if err != nil {
		return Signature{}, err
	}
	payload, err := base58.DecodeCheck(body, typ.String())
	if err != nil {
		return Signature{}, err
	}
	return NewSignature(typ, payload)
}

func (s Signature) Type() KeyType {
	return s.typ
}

func (s Signature) Bytes() []byte {
	return bytes.Clone(s.data)
}

func (s Signature) IsEmpty() bool {
	return len(s.data) == 0
}

func (s Signature) String() string {
	if s.IsEmpty() {
		return ""
	}
	return SignaturePrefix + s.typ.String() + "_" + base58.EncodeCheck(s.data, s.typ.String())
}

// WebAuthn decodes the payload of a WA signature.
func (s Signature) WebAuthn() (WebAuthnSignature, error) {
	if s.typ != WA {
		return WebAuthnSignature{}, fmt.Errorf("%w: expected WA, have %s", ErrUnsupportedKeyType, s.typ)
	}
	return unpackWebAuthnSignature(codec.NewReader(s.data, consts.NetworkSizeLimit))
}

// IsCanonical reports whether a K1 signature satisfies the canonical form
// required by the chain. R1 and WA signatures are always reported canonical.
func (s Signature) IsCanonical() bool {
	if s.typ != K1 {
		return true
	}
	return secp256k1.IsCanonical(secp256k1.Signature(s.data))
}

// RecoverPublicKey returns the key that produced s over [digest].
func (s Signature) RecoverPublicKey(digest checksum.Checksum256) (PublicKey, error) {
	switch s.typ {
	case K1:
		pub, err := secp256k1.RecoverPublicKey(digest[:], secp256k1.Signature(s.data))
		if err != nil {
			return PublicKey{}, err
		}
		return NewK1PublicKey(pub), nil
	case R1:
		pub, err := secp256r1.RecoverPublicKey(digest[:], secp256r1.Signature(s.data))
		if err != nil {
			return PublicKey{}, err
		}
		return NewR1PublicKey(pub), nil
	case WA:
		w, err := s.WebAuthn()
		if err != nil {
			return PublicKey{}, err
		}
		pub, err := w.Recover(digest)
		if err != nil {
			return PublicKey{}, err
		}
		return NewWebAuthnPublicKey(pub)
	default:
		return PublicKey{}, fmt.Errorf("%w: %s", ErrUnsupportedKeyType, s.typ)
	}
}

// Verify reports whether s is a signature of [digest] by [pub].
func (s Signature) Verify(digest checksum.Checksum256, pub PublicKey) bool {
	recovered, err := s.RecoverPublicKey(digest)
	if err != nil {
		return false
	}
	return recovered.Equal(pub)
}

func (s Signature) Equal(o Signature) bool {
	return s.typ == o.typ && bytes.Equal(s.data, o.data)
}

// Compare orders signatures by type tag, then payload bytes.
func (s Signature) Compare(o Signature) int {
	switch {
	case s.typ < o.typ:
		return -1
	case s.typ > o.typ:
		return 1
	default:
		return bytes.Compare(s.data, o.data)
	}
}

func (s Signature) Size() int {
	return codec.VarUint32Len(uint32(s.typ)) + len(s.data)
}

// Marshal refuses the zero value, which has no payload to decode.
func (s Signature) Marshal(p *codec.Packer) {
	if s.IsEmpty() {
		p.AddErr(fmt.Errorf("%w: empty signature", crypto.ErrInvalidSignature))
		return
	}
	p.PackVarUint32(uint32(s.typ))
	p.PackFixedBytes(s.data)
}

func UnmarshalSignature(p *codec.Packer) (Signature, error) {
	typ := KeyType(p.UnpackVarUint32())
	if err := p.Err(); err != nil {
		return Signature{}, err
	}
	switch typ {
	case K1, R1:
		var data []byte
		p.UnpackFixedBytes(secp256k1.SignatureLen, &data)
		if err := p.Err(); err != nil {
			return Signature{}, err
		}
		return NewSignature(typ, data)
	case WA:
		w, err := unpackWebAuthnSignature(p)
		if err != nil {
			return Signature{}, err
		}
		return NewWebAuthnSignature(w)
	default:
		return Signature{}, fmt.Errorf("%w: tag %d", ErrUnsupportedKeyType, uint32(typ))
	}
}

func (s Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Signature) UnmarshalText(text []byte) error {
	parsed, err := ParseSignature(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
