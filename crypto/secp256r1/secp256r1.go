// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package secp256r1

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"

	"github.com/ava-labs/antelope-types/crypto"
)

const (
	PublicKeyLen  = 33 // compressed point
	PrivateKeyLen = 32
	SignatureLen  = 65 // header || r || s
	DigestLen     = 32

	compactHeader = 27 + 4

	coordinateLen = 32
	rsLen         = 32
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

	errInvalidASN1 = errors.New("invalid ASN.1")
)

var curve = elliptic.P256()

// secp256r1Order returns the curve order for the secp256r1 (P-256) curve.
//
// source: https://github.com/cosmos/cosmos-sdk/blob/b71ec62807628b9a94bef32071e1c8686fcd9d36/crypto/keys/internal/ecdsa/privkey.go#L12-L37
// source: https://github.com/bitcoin/bips/blob/master/bip-0062.mediawiki#low-s-values-in-signatures
var secp256r1Order = curve.Params().N

// secp256r1HalfOrder returns half the curve order of the secp256r1 (P-256) curve.
//
// source: https://github.com/cosmos/cosmos-sdk/blob/b71ec62807628b9a94bef32071e1c8686fcd9d36/crypto/keys/internal/ecdsa/privkey.go#L12-L37
// source: https://github.com/bitcoin/bips/blob/master/bip-0062.mediawiki#low-s-values-in-signatures
var secp256r1HalfOrder = new(big.Int).Div(secp256r1Order, big.NewInt(2))

// IsNormalized returns true if [s] falls in the lower half of the curve order (inclusive).
// This should be used when verifying signatures to ensure they are not malleable.
func IsNormalized(s *big.Int) bool {
	return s.Cmp(secp256r1HalfOrder) != 1
}

// NormalizeSignature inverts [s] if it is not in the lower half of the curve order.
func NormalizeSignature(s *big.Int) *big.Int {
	if IsNormalized(s) {
		return s
	}
	return new(big.Int).Sub(secp256r1Order, s)
}

// ParseASN1Signature parses an ASN.1 encoded (using DER serialization) secp256r1 signature.
// This function does not normalize the extracted signature.
//
// source: https://cs.opensource.google/go/go/+/refs/tags/go1.21.3:src/crypto/ecdsa/ecdsa.go;l=549
func ParseASN1Signature(sig []byte) (r, s []byte, err error) {
	var inner cryptobyte.String
	input := cryptobyte.String(sig)
	if !input.ReadASN1(&inner, asn1.SEQUENCE) ||
		!input.Empty() ||
		!inner.ReadASN1Integer(&r) ||
		!inner.ReadASN1Integer(&s) ||
		!inner.Empty() {
		return nil, nil, errInvalidASN1
	}
	return r, s, nil
}

// GeneratePrivateKey returns a secp256r1 PrivateKey.
func GeneratePrivateKey() (PrivateKey, error) {
	k, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		return EmptyPrivateKey, err
	}
	var p PrivateKey
	k.D.FillBytes(p[:])
	return p, nil
}

// PrivateKeyFromBytes rejects zero and any scalar not below the group order.
func PrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	if len(b) != PrivateKeyLen {
		return EmptyPrivateKey, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidPrivateKey, PrivateKeyLen, len(b))
	}
	d := new(big.Int).SetBytes(b)
	if d.Sign() == 0 || d.Cmp(secp256r1Order) >= 0 {
		return EmptyPrivateKey, fmt.Errorf("%w: scalar out of range", crypto.ErrInvalidPrivateKey)
	}
	return PrivateKey(b), nil
}

// PublicKeyFromBytes checks that b is a compressed point on the curve.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeyLen {
		return EmptyPublicKey, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidPublicKey, PublicKeyLen, len(b))
	}
	if x, _ := elliptic.UnmarshalCompressed(curve, b); x == nil {
		return EmptyPublicKey, fmt.Errorf("%w: not a compressed P-256 point", crypto.ErrInvalidPublicKey)
	}
	return PublicKey(b), nil
}

// PublicKey returns the compressed PublicKey associated with the secp256r1 PrivateKey p.
func (p PrivateKey) PublicKey() PublicKey {
	x, y := curve.ScalarBaseMult(p[:])
	return PublicKey(elliptic.MarshalCompressed(curve, x, y))
}

func (p PrivateKey) ecdsa() *ecdsa.PrivateKey {
	x, y := curve.ScalarBaseMult(p[:])
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: curve,
			X:     x,
			Y:     y,
		},
		D: new(big.Int).SetBytes(p[:]),
	}
}

// Sign returns a compact signature of digest using p.
//
// [s] is adjusted to be in the lower half of the curve order and the
// recovery id is found by trial recovery.
func (p PrivateKey) Sign(digest []byte) (Signature, error) {
	if len(digest) != DigestLen {
		return EmptySignature, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidDigest, DigestLen, len(digest))
	}
	r, s, err := ecdsa.Sign(rand.Reader, p.ecdsa(), digest)
	if err != nil {
		return EmptySignature, err
	}
	return withRecoveryID(digest, r, NormalizeSignature(s), p.PublicKey())
}

// SignatureFromASN1 converts a DER signature of [digest] by [pub], as
// produced by platform authenticators, into compact form. [s] is
// normalized and the recovery id is found by trial recovery.
func SignatureFromASN1(digest []byte, der []byte, pub PublicKey) (Signature, error) {
	if len(digest) != DigestLen {
		return EmptySignature, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidDigest, DigestLen, len(digest))
	}
	rb, sb, err := ParseASN1Signature(der)
	if err != nil {
		return EmptySignature, fmt.Errorf("%w: %w", crypto.ErrInvalidSignature, err)
	}
	r := new(big.Int).SetBytes(rb)
	s := new(big.Int).SetBytes(sb)
	if r.Sign() == 0 || s.Sign() == 0 || r.Cmp(secp256r1Order) >= 0 || s.Cmp(secp256r1Order) >= 0 {
		return EmptySignature, fmt.Errorf("%w: scalar out of range", crypto.ErrInvalidSignature)
	}
	return withRecoveryID(digest, r, NormalizeSignature(s), pub)
}

func withRecoveryID(digest []byte, r, s *big.Int, pub PublicKey) (Signature, error) {
	for recid := byte(0); recid < 4; recid++ {
		sig := compact(recid, r, s)
		recovered, err := RecoverPublicKey(digest, sig)
		if err == nil && recovered == pub {
			return sig, nil
		}
	}
	return EmptySignature, fmt.Errorf("%w: unable to find recovery id", crypto.ErrInvalidSignature)
}

func compact(recid byte, r, s *big.Int) Signature {
	var sig Signature
	sig[0] = compactHeader + recid
	r.FillBytes(sig[1 : 1+rsLen])
	s.FillBytes(sig[1+rsLen:])
	return sig
}

// RecoverPublicKey returns the public key that produced sig over digest.
//
// Q = r⁻¹(sR - eG), where R is the point whose x coordinate is r plus
// (recid / 2) multiples of the order and whose y parity is recid & 1.
func RecoverPublicKey(digest []byte, sig Signature) (PublicKey, error) {
	if len(digest) != DigestLen {
		return EmptyPublicKey, fmt.Errorf("%w: expected %d bytes, got %d", crypto.ErrInvalidDigest, DigestLen, len(digest))
	}
	if sig[0] < compactHeader || sig[0] > compactHeader+3 {
		return EmptyPublicKey, fmt.Errorf("%w: unexpected header byte %d", crypto.ErrInvalidSignature, sig[0])
	}
	recid := sig[0] - compactHeader
	r := new(big.Int).SetBytes(sig[1 : 1+rsLen])
	s := new(big.Int).SetBytes(sig[1+rsLen:])
	if r.Sign() == 0 || s.Sign() == 0 || r.Cmp(secp256r1Order) >= 0 || s.Cmp(secp256r1Order) >= 0 {
		return EmptyPublicKey, fmt.Errorf("%w: scalar out of range", crypto.ErrInvalidSignature)
	}

	x := new(big.Int).Set(r)
	if recid&2 != 0 {
		x.Add(x, secp256r1Order)
	}
	if x.Cmp(curve.Params().P) >= 0 {
		return EmptyPublicKey, fmt.Errorf("%w: recovery point out of range", crypto.ErrInvalidSignature)
	}
	var enc [PublicKeyLen]byte
	enc[0] = 0x02 | recid&1
	x.FillBytes(enc[1:])
	rx, ry := elliptic.UnmarshalCompressed(curve, enc[:])
	if rx == nil {
		return EmptyPublicKey, fmt.Errorf("%w: no curve point for r", crypto.ErrInvalidSignature)
	}

	rInv := new(big.Int).ModInverse(r, secp256r1Order)
	e := new(big.Int).SetBytes(digest)
	u1 := new(big.Int).Mul(e, rInv)
	u1.Neg(u1).Mod(u1, secp256r1Order)
	u2 := new(big.Int).Mul(s, rInv)
	u2.Mod(u2, secp256r1Order)

	var u1b, u2b [coordinateLen]byte
	u1.FillBytes(u1b[:])
	u2.FillBytes(u2b[:])
	gx, gy := curve.ScalarBaseMult(u1b[:])
	px, py := curve.ScalarMult(rx, ry, u2b[:])
	qx, qy := curve.Add(gx, gy, px, py)
	if qx.Sign() == 0 && qy.Sign() == 0 {
		return EmptyPublicKey, fmt.Errorf("%w: recovered point at infinity", crypto.ErrInvalidSignature)
	}
	return PublicKey(elliptic.MarshalCompressed(curve, qx, qy)), nil
}

// Verify returns whether sig is a valid signature of digest by p.
//
// The value of [s] in [sig] must be in the lower half of the curve
// order for the signature to be considered valid.
func Verify(digest []byte, p PublicKey, sig Signature) bool {
	if len(digest) != DigestLen {
		return false
	}

	// Parse PublicKey
	x, y := elliptic.UnmarshalCompressed(curve, p[:])
	if x == nil {
		return false
	}
	pk := &ecdsa.PublicKey{
		Curve: curve,
		X:     x,
		Y:     y,
	}

	// Parse Signature
	r := new(big.Int).SetBytes(sig[1 : 1+rsLen])
	s := new(big.Int).SetBytes(sig[1+rsLen:])
	if !IsNormalized(s) {
		return false
	}
	return ecdsa.Verify(pk, digest, r, s)
}
