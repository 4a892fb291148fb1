// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/codec/base32"
	"github.com/ava-labs/antelope-types/consts"
)

const (
	// MaxNameLen is the number of characters a Name can hold. The first 12
	// use 5 bits each, the last one the remaining 4.
	MaxNameLen = 13

	nameHeadLen  = MaxNameLen - 1
	lastCharMask = 0x0f
)

// Name is an account, action or table identifier packed into 64 bits.
type Name uint64

var _ codec.Value = Name(0)

// NewName packs [s]. Trailing dots are accepted and do not survive String.
func NewName(s string) (Name, error) {
	if len(s) > MaxNameLen {
		return 0, fmt.Errorf("%w: %q has %d characters", ErrNameTooLong, s, len(s))
	}
	head := s
	if len(s) == MaxNameLen {
		head = s[:nameHeadLen]
	}
	b, err := base32.Decode(head, consts.Uint64Len)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidCharacter, err)
	}
	v := binary.BigEndian.Uint64(b)
	if len(s) == MaxNameLen {
		c, ok := base32.Index(s[nameHeadLen])
		if !ok || c > lastCharMask {
			return 0, fmt.Errorf("%w: %q cannot be the 13th character", ErrInvalidCharacter, s[nameHeadLen])
		}
		v |= uint64(c)
	}
	return Name(v), nil
}

// ParseName is the strict form of NewName: [s] must be exactly what String
// returns for the packed value, so trailing dots and the empty string are
// refused.
func ParseName(s string) (Name, error) {
	n, err := NewName(s)
	if err != nil {
		return 0, err
	}
	if s == "" || n.String() != s {
		return 0, fmt.Errorf("%w: %q reads back as %q", ErrNotNormalized, s, n.String())
	}
	return n, nil
}

// MustName panics if [s] is not a valid name. Only use it with literals.
func MustName(s string) Name {
	n, err := NewName(s)
	if err != nil {
		panic(err)
	}
	return n
}

func (n Name) Raw() uint64 {
	return uint64(n)
}

func (n Name) IsEmpty() bool {
	return n == 0
}

func (n Name) String() string {
	var b [consts.Uint64Len]byte
	binary.BigEndian.PutUint64(b[:], uint64(n))
	s := base32.Encode(b[:])[:nameHeadLen] + string(base32.Alphabet[n&lastCharMask])
	return strings.TrimRight(s, ".")
}

// Length is the number of characters up to and including the last non-dot.
func (n Name) Length() int {
	const mask = 0xF800000000000000
	if n == 0 {
		return 0
	}
	l := 0
	v := uint64(n)
	for i := 0; i < MaxNameLen; i++ {
		if v&mask != 0 {
			l = i
		}
		v <<= 5
	}
	return l + 1
}

// Prefix returns the name up to (not including) its last dot that follows
// a non-dot character. Names without such a dot are returned unchanged.
func (n Name) Prefix() Name {
	v := uint64(n)
	var (
		seen bool
		mask uint64 = lastCharMask
	)
	for offset := 0; offset <= 59; {
		if (v>>offset)&mask == 0 {
			if seen {
				return Name((v >> offset) << offset)
			}
		} else {
			seen = true
		}
		if offset == 0 {
			offset += 4
			mask = 0x1f
		} else {
			offset += 5
		}
	}
	return n
}

// Suffix returns the part of the name after its last dot that precedes a
// non-dot character. Leading dots alone do not split a name.
func (n Name) Suffix() Name {
	v := uint64(n)
	var afterDot, tmp int
	for bits := 59; bits >= 4; bits -= 5 {
		if (v>>bits)&0x1f == 0 {
			tmp = bits
		} else {
			afterDot = tmp
		}
	}
	last := v & lastCharMask
	if last != 0 {
		afterDot = tmp
	}
	if afterDot == 0 {
		return n
	}
	mask := uint64(1)<<afterDot - 16
	shift := 64 - afterDot
	return Name((v&mask)<<shift + last<<(shift-1))
}

func (Name) Size() int {
	return consts.NameLen
}

func (n Name) Marshal(p *codec.Packer) {
	p.PackUint64(uint64(n))
}

func UnmarshalName(p *codec.Packer) (Name, error) {
	v := p.UnpackUint64(false)
	return Name(v), p.Err()
}

func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := NewName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
