// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/consts"
)

const (
	MaxSymbolCodeLen = 7
	MaxPrecision     = 18
)

// SymbolCode holds up to 7 upper case letters, first letter in the low
// byte.
type SymbolCode uint64

func NewSymbolCode(s string) (SymbolCode, error) {
	if len(s) == 0 || len(s) > MaxSymbolCodeLen {
		return 0, fmt.Errorf("%w: code %q must have 1 to %d characters", ErrInvalidSymbol, s, MaxSymbolCodeLen)
	}
	var v uint64
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < 'A' || c > 'Z' {
			return 0, fmt.Errorf("%w: code %q contains %q", ErrInvalidSymbol, s, c)
		}
		v = v<<8 | uint64(c)
	}
	return SymbolCode(v), nil
}

func (c SymbolCode) Raw() uint64 {
	return uint64(c)
}

// IsValid reports whether c is 1 to 7 letters with no gaps.
func (c SymbolCode) IsValid() bool {
	v := uint64(c)
	if v == 0 || v>>(8*MaxSymbolCodeLen) != 0 {
		return false
	}
	for ; v != 0; v >>= 8 {
		if b := byte(v); b < 'A' || b > 'Z' {
			return false
		}
	}
	return true
}

func (c SymbolCode) Length() int {
	l := 0
	for v := uint64(c); v != 0 && l < consts.Uint64Len; v >>= 8 {
		l++
	}
	return l
}

func (c SymbolCode) String() string {
	var b strings.Builder
	for v := uint64(c); v&0xff != 0; v >>= 8 {
		b.WriteByte(byte(v))
	}
	return b.String()
}

// Symbol is a SymbolCode with its precision in the low byte.
type Symbol uint64

var _ codec.Value = Symbol(0)

func NewSymbol(precision uint8, code SymbolCode) (Symbol, error) {
	if precision > MaxPrecision {
		return 0, fmt.Errorf("%w: precision %d > %d", ErrInvalidSymbol, precision, MaxPrecision)
	}
	if !code.IsValid() {
		return 0, fmt.Errorf("%w: code %#x", ErrInvalidSymbol, uint64(code))
	}
	return Symbol(uint64(code)<<8 | uint64(precision)), nil
}

// MustSymbol panics on invalid input. Only use it with literals.
func MustSymbol(precision uint8, code string) Symbol {
	c, err := NewSymbolCode(code)
	if err != nil {
		panic(err)
	}
	s, err := NewSymbol(precision, c)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSymbol parses "<precision>,<CODE>", e.g. "4,EOS".
func ParseSymbol(s string) (Symbol, error) {
	p, code, ok := strings.Cut(s, ",")
	if !ok {
		return 0, fmt.Errorf("%w: %q is not <precision>,<code>", ErrInvalidSymbol, s)
	}
	precision, err := strconv.ParseUint(p, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: precision %q", ErrInvalidSymbol, p)
	}
	c, err := NewSymbolCode(code)
	if err != nil {
		return 0, err
	}
	return NewSymbol(uint8(precision), c)
}

func (s Symbol) Raw() uint64 {
	return uint64(s)
}

func (s Symbol) Precision() uint8 {
	return uint8(s)
}

func (s Symbol) Code() SymbolCode {
	return SymbolCode(uint64(s) >> 8)
}

func (s Symbol) IsValid() bool {
	return s.Precision() <= MaxPrecision && s.Code().IsValid()
}

func (s Symbol) String() string {
	return strconv.Itoa(int(s.Precision())) + "," + s.Code().String()
}

func (Symbol) Size() int {
	return consts.SymbolLen
}

func (s Symbol) Marshal(p *codec.Packer) {
	p.PackUint64(uint64(s))
}

func UnmarshalSymbol(p *codec.Packer) (Symbol, error) {
	s := Symbol(p.UnpackUint64(false))
	if err := p.Err(); err != nil {
		return 0, err
	}
	if !s.IsValid() {
		return 0, fmt.Errorf("%w: %#x", ErrInvalidSymbol, uint64(s))
	}
	return s, nil
}

func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ExtendedSymbol is a Symbol qualified by the contract that issues it.
type ExtendedSymbol struct {
	Symbol   Symbol
	Contract Name
}

var _ codec.Value = ExtendedSymbol{}

// ParseExtendedSymbol parses "<precision>,<CODE>@<contract>".
func ParseExtendedSymbol(s string) (ExtendedSymbol, error) {
	sym, contract, ok := strings.Cut(s, "@")
	if !ok {
		return ExtendedSymbol{}, fmt.Errorf("%w: %q has no contract", ErrInvalidSymbol, s)
	}
	parsed, err := ParseSymbol(sym)
	if err != nil {
		return ExtendedSymbol{}, err
	}
	c, err := NewName(contract)
	if err != nil {
		return ExtendedSymbol{}, err
	}
	return ExtendedSymbol{Symbol: parsed, Contract: c}, nil
}

func (e ExtendedSymbol) String() string {
	return e.Symbol.String() + "@" + e.Contract.String()
}

func (ExtendedSymbol) Size() int {
	return consts.SymbolLen + consts.NameLen
}

func (e ExtendedSymbol) Marshal(p *codec.Packer) {
	e.Symbol.Marshal(p)
	e.Contract.Marshal(p)
}

func UnmarshalExtendedSymbol(p *codec.Packer) (ExtendedSymbol, error) {
	sym, err := UnmarshalSymbol(p)
	if err != nil {
		return ExtendedSymbol{}, err
	}
	contract, err := UnmarshalName(p)
	if err != nil {
		return ExtendedSymbol{}, err
	}
	return ExtendedSymbol{Symbol: sym, Contract: contract}, nil
}

func (e ExtendedSymbol) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *ExtendedSymbol) UnmarshalText(text []byte) error {
	parsed, err := ParseExtendedSymbol(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
