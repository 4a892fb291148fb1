// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package checksum provides the fixed-size digest types of the chain:
// Checksum160 (ripemd160), Checksum256 (sha256) and Checksum512 (sha512).
package checksum

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ava-labs/antelope-types/codec"
)

const (
	Checksum160Len = 20
	Checksum256Len = 32
	Checksum512Len = 64
)

var (
	ErrWrongLength = errors.New("wrong length")
	ErrInvalidHex  = errors.New("invalid hex")
)

type (
	Checksum160 [Checksum160Len]byte
	Checksum256 [Checksum256Len]byte
	Checksum512 [Checksum512Len]byte
)

var (
	EmptyChecksum160 = Checksum160{}
	EmptyChecksum256 = Checksum256{}
	EmptyChecksum512 = Checksum512{}
)

var (
	_ codec.Value = Checksum160{}
	_ codec.Value = Checksum256{}
	_ codec.Value = Checksum512{}
)

func fromBytes(dst, b []byte) error {
	if len(b) != len(dst) {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrWrongLength, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

func fromHex(dst []byte, s string) error {
	if len(s) != 2*len(dst) {
		return fmt.Errorf("%w: expected %d hex digits, got %d", ErrInvalidHex, 2*len(dst), len(s))
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}
	return nil
}

func unmarshal(p *codec.Packer, dst []byte) error {
	var b []byte
	p.UnpackFixedBytes(len(dst), &b)
	if err := p.Err(); err != nil {
		return err
	}
	copy(dst, b)
	return nil
}

// Checksum160FromBytes copies exactly 20 bytes into a Checksum160.
func Checksum160FromBytes(b []byte) (Checksum160, error) {
	var c Checksum160
	if err := fromBytes(c[:], b); err != nil {
		return EmptyChecksum160, err
	}
	return c, nil
}

// Checksum160FromHex parses exactly 40 hex digits.
func Checksum160FromHex(s string) (Checksum160, error) {
	var c Checksum160
	if err := fromHex(c[:], s); err != nil {
		return EmptyChecksum160, err
	}
	return c, nil
}

func (c Checksum160) Bytes() []byte { return c[:] }

func (c Checksum160) String() string { return hex.EncodeToString(c[:]) }

func (c Checksum160) IsEmpty() bool { return c == EmptyChecksum160 }

// Compare orders checksums byte-wise.
func (c Checksum160) Compare(o Checksum160) int { return bytes.Compare(c[:], o[:]) }

func (Checksum160) Size() int { return Checksum160Len }

func (c Checksum160) Marshal(p *codec.Packer) { p.PackFixedBytes(c[:]) }

func UnmarshalChecksum160(p *codec.Packer) (Checksum160, error) {
	var c Checksum160
	if err := unmarshal(p, c[:]); err != nil {
		return EmptyChecksum160, err
	}
	return c, nil
}

func (c Checksum160) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Checksum160) UnmarshalText(text []byte) error {
	parsed, err := Checksum160FromHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Checksum256FromBytes copies exactly 32 bytes into a Checksum256.
func Checksum256FromBytes(b []byte) (Checksum256, error) {
	var c Checksum256
	if err := fromBytes(c[:], b); err != nil {
		return EmptyChecksum256, err
	}
	return c, nil
}

// Checksum256FromHex parses exactly 64 hex digits.
func Checksum256FromHex(s string) (Checksum256, error) {
	var c Checksum256
	if err := fromHex(c[:], s); err != nil {
		return EmptyChecksum256, err
	}
	return c, nil
}

func (c Checksum256) Bytes() []byte { return c[:] }

func (c Checksum256) String() string { return hex.EncodeToString(c[:]) }

func (c Checksum256) IsEmpty() bool { return c == EmptyChecksum256 }

func (c Checksum256) Compare(o Checksum256) int { return bytes.Compare(c[:], o[:]) }

func (Checksum256) Size() int { return Checksum256Len }

func (c Checksum256) Marshal(p *codec.Packer) { p.PackFixedBytes(c[:]) }

func UnmarshalChecksum256(p *codec.Packer) (Checksum256, error) {
	var c Checksum256
	if err := unmarshal(p, c[:]); err != nil {
		return EmptyChecksum256, err
	}
	return c, nil
}

func (c Checksum256) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Checksum256) UnmarshalText(text []byte) error {
	parsed, err := Checksum256FromHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Checksum512FromBytes copies exactly 64 bytes into a Checksum512.
func Checksum512FromBytes(b []byte) (Checksum512, error) {
	var c Checksum512
	if err := fromBytes(c[:], b); err != nil {
		return EmptyChecksum512, err
	}
	return c, nil
}

// Checksum512FromHex parses exactly 128 hex digits.
func Checksum512FromHex(s string) (Checksum512, error) {
	var c Checksum512
	if err := fromHex(c[:], s); err != nil {
		return EmptyChecksum512, err
	}
	return c, nil
}

func (c Checksum512) Bytes() []byte { return c[:] }

func (c Checksum512) String() string { return hex.EncodeToString(c[:]) }

func (c Checksum512) IsEmpty() bool { return c == EmptyChecksum512 }

func (c Checksum512) Compare(o Checksum512) int { return bytes.Compare(c[:], o[:]) }

func (Checksum512) Size() int { return Checksum512Len }

func (c Checksum512) Marshal(p *codec.Packer) { p.PackFixedBytes(c[:]) }

func UnmarshalChecksum512(p *codec.Packer) (Checksum512, error) {
	var c Checksum512
	if err := unmarshal(p, c[:]); err != nil {
		return EmptyChecksum512, err
	}
	return c, nil
}

func (c Checksum512) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *Checksum512) UnmarshalText(text []byte) error {
	parsed, err := Checksum512FromHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
