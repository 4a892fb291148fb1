// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256k1

import (
	"crypto/subtle"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/ava-labs/antelope-types/crypto"
)

const (
	PublicKeyLen  = 33 // compressed point
	PrivateKeyLen = 32
	SignatureLen  = 65 // header || r || s
	DigestLen     = 32

	// compactHeader is added to the recovery id of every signature. The
	// extra 4 marks the recovered key as compressed.
	compactHeader = 27 + 4

	rsLen = 32
)

type (
	PublicKey  [PublicKeyLen]byte
	PrivateKey [PrivateKeyLen]byte
	Signature  [SignatureLen]byte
)

var (
	EmptyPublicKey  = [PublicKeyLen]byte{}
	EmptyPrivateKey = [PrivateKeyLen]byte{}
	EmptySignature  = [SignatureLen]byte{}
)

// GeneratePrivateKey returns a secp256k1 private key.
func GeneratePrivateKey() (PrivateKey, error) {
	k, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return EmptyPrivateKey, err
	}
	defer k.Zero()
	return PrivateKey(k.Serialize()), nil
}

// PrivateKeyFromBytes rejects zero and any scalar not below the group order.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return EmptyPrivateKey, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidPrivateKey, PrivateKeyLen, len(b))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow || s.IsZero() {
		return EmptyPrivateKey, fmt.Errorf("%w: scalar out of range", crypto.ErrInvalidPrivateKey)
	}
	return PrivateKey(b), nil
}

// PublicKeyFromBytes checks that b is a compressed point on the curve.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLen {
		return EmptyPublicKey, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidPublicKey, PublicKeyLen, len(b))
	}
	if _, err := secp256k1.ParsePubKey(b); err != nil {
		return EmptyPublicKey, fmt.Errorf("%w: %w", crypto.ErrInvalidPublicKey, err)
	}
	return PublicKey(b), nil
}

// PublicKey returns the compressed public key associated with p.
func (p PrivateKey) PublicKey() PublicKey {
	k := secp256k1.PrivKeyFromBytes(p[:])
	defer k.Zero()
	return PublicKey(k.PubKey().SerializeCompressed())
}

// Sign produces a canonical compact signature of digest.
//
// Nonces are derived with RFC6979. When the resulting signature is not
// canonical, the nonce is re-derived with the next extra iteration until one
// is found.
func (p PrivateKey) Sign(digest []byte) (Signature, error) {
	if len(digest) != DigestLen {
		return EmptySignature, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidDigest, DigestLen, len(digest))
	}
	var d secp256k1.ModNScalar
	if overflow := d.SetByteSlice(p[:]); overflow || d.IsZero() {
		return EmptySignature, crypto.ErrInvalidPrivateKey
	}
	defer d.Zero()

	for iteration := uint32(0); ; iteration++ {
		k := secp256k1.NonceRFC6979(p[:], digest, nil, nil, iteration)
		sig, ok := sign(&d, k, digest)
		k.Zero()
		if ok && IsCanonical(sig) {
			return sig, nil
		}
	}
}

// sign follows the decred signing routine but keeps the recovery id so the
// compact form can be built directly.
func sign(d, k *secp256k1.ModNScalar, digest []byte) (Signature, bool) {
	var kG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &kG)
	kG.ToAffine()

	var r secp256k1.ModNScalar
	overflow := r.SetBytes(kG.X.Bytes())
	if r.IsZero() {
		return EmptySignature, false
	}
	recid := byte(overflow << 1)
	if kG.Y.IsOdd() {
		recid |= 1
	}

	var e secp256k1.ModNScalar
	e.SetByteSlice(digest)
	kinv := new(secp256k1.ModNScalar).InverseValNonConst(k)
	s := new(secp256k1.ModNScalar).Mul2(d, &r).Add(&e).Mul(kinv)
	if s.IsZero() {
		return EmptySignature, false
	}
	if s.IsOverHalfOrder() {
		s.Negate()
		recid ^= 1
	}

	var sig Signature
	sig[0] = compactHeader + recid
	r.PutBytesUnchecked(sig[1 : 1+rsLen])
	s.PutBytesUnchecked(sig[1+rsLen:])
	return sig, true
}

// IsCanonical reports whether neither r nor s has its high bit set and
// neither carries a redundant leading zero byte.
func IsCanonical(sig Signature) bool {
	return sig[1]&0x80 == 0 &&
		!(sig[1] == 0 && sig[2]&0x80 == 0) &&
		sig[33]&0x80 == 0 &&
		!(sig[33] == 0 && sig[34]&0x80 == 0)
}

// RecoverPublicKey returns the public key that produced sig over digest.
func RecoverPublicKey(digest []byte, sig Signature) (PublicKey, error) {
	if len(digest) != DigestLen {
		return EmptyPublicKey, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidDigest, DigestLen, len(digest))
	}
	if sig[0] < compactHeader || sig[0] > compactHeader+3 {
		return EmptyPublicKey, fmt.Errorf("%w: unexpected header byte %d", crypto.ErrInvalidSignature, sig[0])
	}
	pub, _, err := ecdsa.RecoverCompact(sig[:], digest)
	if err != nil {
		return EmptyPublicKey, fmt.Errorf("%w: %w", crypto.ErrInvalidSignature, err)
	}
	return PublicKey(pub.SerializeCompressed()), nil
}

// Verify returns whether sig is a valid signature of digest by p.
func Verify(digest []byte, p PublicKey, sig Signature) bool {
	if len(digest) != DigestLen {
		return false
	}
	pub, err := secp256k1.ParsePubKey(p[:])
	if err != nil {
		return false
	}
	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[1 : 1+rsLen]); overflow || r.IsZero() {
		return false
	}
	if overflow := s.SetByteSlice(sig[1+rsLen:]); overflow || s.IsZero() {
		return false
	}
	if !ecdsa.NewSignature(&r, &s).Verify(digest, pub) {
		return false
	}
	// The recovery id must point back at the same key.
	recovered, err := RecoverPublicKey(digest, sig)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(recovered[:], p[:]) == 1
}
