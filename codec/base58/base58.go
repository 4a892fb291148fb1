// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package base58 implements the Base58Check variants used for keys and
// signatures: a ripemd160 checksum over the payload and an optional curve
// tag, and the legacy WIF format for private keys.
package base58

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/ava-labs/antelope-types/crypto/checksum"
)

const (
	Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// ChecksumLen is the number of ripemd160 bytes appended to a payload.
	ChecksumLen = 4

	// WIFVersion prefixes legacy private keys.
	WIFVersion byte = 0x80
)

var (
	ErrInvalidCharacter = errors.New("invalid base58 character")
	ErrInvalidFormat    = errors.New("invalid base58check format")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Encode returns the plain Base58 text of [b].
func Encode(b []byte) string {
	return base58.Encode(b)
}

// Decode returns the bytes of Base58 text [s].
func Decode(s string) ([]byte, error) {
	if i := strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune(Alphabet, r)
	}); i >= 0 {
		return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
	}
	return base58.Decode(s), nil
}

// Checksum returns the first ChecksumLen bytes of ripemd160(payload || suffix).
func Checksum(payload []byte, suffix string) []byte {
	digest := checksum.Hash160(payload, []byte(suffix))
	return digest[:ChecksumLen]
}

// EncodeCheck appends the ripemd160 checksum of [payload] and [suffix]
// and encodes the result. The suffix itself is not part of the output.
func EncodeCheck(payload []byte, suffix string) string {
	b := make([]byte, 0, len(payload)+ChecksumLen)
	b = append(b, payload...)
	b = append(b, Checksum(payload, suffix)...)
	return Encode(b)
}

// DecodeCheck reverses EncodeCheck and verifies the checksum.
func DecodeCheck(s string, suffix string) ([]byte, error) {
	decoded, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(decoded) < ChecksumLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidFormat, len(decoded))
	}
	payload := decoded[:len(decoded)-ChecksumLen]
	if !bytes.Equal(decoded[len(payload):], Checksum(payload, suffix)) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}

// EncodeWIF encodes a legacy private key: version byte 0x80, the key and
// the first 4 bytes of its double sha256.
func EncodeWIF(key []byte) string {
	return base58.CheckEncode(key, WIFVersion)
}

// DecodeWIF reverses EncodeWIF.
func DecodeWIF(s string) ([]byte, error) {
	if _, err := Decode(s); err != nil {
		return nil, err
	}
	key, version, err := base58.CheckDecode(s)
	switch {
	case errors.Is(err, base58.ErrChecksum):
		return nil, ErrChecksumMismatch
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	case version != WIFVersion:
		return nil, fmt.Errorf("%w: unexpected version 0x%02x", ErrInvalidFormat, version)
	}
	return key, nil
}
