// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package base32 implements the 32 symbol alphabet used by account names.
// Bits are consumed most significant first across the whole input and each
// 5-bit group selects one symbol.
package base32

import (
	"errors"
	"fmt"
)

const Alphabet = ".12345abcdefghijklmnopqrstuvwxyz"

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrInvalidLength    = errors.New("invalid length")
)

var decodeMap = func() [256]int8 {
	var m [256]int8
	for i := range m {
		m[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		m[Alphabet[i]] = int8(i)
	}
	return m
}()

// Index returns the symbol value of [c] and whether [c] is in the alphabet.
func Index(c byte) (byte, bool) {
	v := decodeMap[c]
	if v < 0 {
		return 0, false
	}
	return byte(v), true
}

// EncodedLen is the number of symbols Encode produces for [n] bytes.
func EncodedLen(n int) int {
	return (n*8 + 4) / 5
}

// Encode maps every 5-bit group of [src] to a symbol. A trailing partial
// group is padded with zero bits on the right.
func Encode(src []byte) string {
	out := make([]byte, 0, EncodedLen(len(src)))
	var (
		acc  uint32
		bits uint
	)
	for _, b := range src {
		acc = acc<<8 | uint32(b)
		bits += 8
		for bits >= 5 {
			bits -= 5
			out = append(out, Alphabet[(acc>>bits)&0x1f])
		}
		acc &= 1<<bits - 1
	}
	if bits > 0 {
		out = append(out, Alphabet[(acc<<(5-bits))&0x1f])
	}
	return string(out)
}

// Decode is the inverse of Encode. It writes the symbols of [s] into an
// [n] byte buffer, left justified. Set bits that do not fit in [n] bytes
// are ErrInvalidLength.
func Decode(s string, n int) ([]byte, error) {
	out := make([]byte, n)
	bit := 0
	for i := 0; i < len(s); i++ {
		v, ok := Index(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, s[i], i)
		}
		for k := 4; k >= 0; k-- {
			if v>>k&1 == 1 {
				if bit >= n*8 {
					return nil, fmt.Errorf("%w: %d symbols do not fit in %d bytes", ErrInvalidLength, len(s), n)
				}
				out[bit/8] |= 0x80 >> (bit % 8)
			}
			bit++
		}
	}
	return out, nil
}
