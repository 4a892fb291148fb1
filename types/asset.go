// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/consts"
)

// MaxAmount bounds the magnitude of every asset amount.
const MaxAmount int64 = 1<<62 - 1

var maxAmountDecimal = decimal.NewFromInt(MaxAmount)

// Asset is a signed fixed-point quantity of a Symbol.
type Asset struct {
	Amount int64
	Symbol Symbol
}

var _ codec.Value = Asset{}

// NewAsset checks the symbol and the amount range.
func NewAsset(amount int64, sym Symbol) (Asset, error) {
	a := Asset{Amount: amount, Symbol: sym}
	if !sym.IsValid() {
		return Asset{}, fmt.Errorf("%w: %#x", ErrInvalidSymbol, sym.Raw())
	}
	if !a.IsAmountWithinRange() {
		return Asset{}, fmt.Errorf("%w: %d", ErrOverflow, amount)
	}
	return a, nil
}

// ParseAsset parses "<amount> <CODE>". The precision is the number of
// digits after the decimal point.
func ParseAsset(s string) (Asset, error) {
	amount, code, ok := strings.Cut(s, " ")
	if !ok || strings.Contains(code, " ") {
		return Asset{}, fmt.Errorf("%w: %q is not <amount> <code>", ErrMalformedAsset, s)
	}

	digits := amount
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	intPart, frac, hasDot := strings.Cut(digits, ".")
	if hasDot && strings.Contains(frac, ".") {
		return Asset{}, fmt.Errorf("%w: %q has more than one decimal point", ErrMalformedAsset, amount)
	}
	if len(frac) > MaxPrecision {
		return Asset{}, fmt.Errorf("%w: precision %d > %d", ErrInvalidSymbol, len(frac), MaxPrecision)
	}
	digits = intPart + frac
	if len(digits) == 0 || strings.IndexFunc(digits, isNotDigit) >= 0 {
		return Asset{}, fmt.Errorf("%w: invalid amount %q", ErrMalformedAsset, amount)
	}

	magnitude, err := strconv.ParseUint(digits, 10, 64)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return Asset{}, fmt.Errorf("%w: %q", ErrOverflow, amount)
	case err != nil:
		return Asset{}, fmt.Errorf("%w: %w", ErrMalformedAsset, err)
	case magnitude > uint64(MaxAmount):
		return Asset{}, fmt.Errorf("%w: %q exceeds %d", ErrOverflow, amount, MaxAmount)
	}

	c, err := NewSymbolCode(code)
	if err != nil {
		return Asset{}, err
	}
	sym, err := NewSymbol(uint8(len(frac)), c)
	if err != nil {
		return Asset{}, err
	}
	value := int64(magnitude)
	if neg {
		value = -value
	}
	return Asset{Amount: value, Symbol: sym}, nil
}

func isNotDigit(r rune) bool {
	return r < '0' || r > '9'
}

// MustAsset panics on invalid input. Only use it with literals.
func MustAsset(s string) Asset {
	a, err := ParseAsset(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Asset) IsAmountWithinRange() bool {
	return -MaxAmount <= a.Amount && a.Amount <= MaxAmount
}

func (a Asset) IsValid() bool {
	return a.IsAmountWithinRange() && a.Symbol.IsValid()
}

func (a Asset) checked(amount int64) (Asset, error) {
	r := Asset{Amount: amount, Symbol: a.Symbol}
	if !r.IsAmountWithinRange() {
		return Asset{}, fmt.Errorf("%w: %d", ErrOverflow, amount)
	}
	return r, nil
}

func (a Asset) requireSymbol(b Asset) error {
	if a.Symbol != b.Symbol {
		return fmt.Errorf("%w: %s != %s", ErrSymbolMismatch, a.Symbol, b.Symbol)
	}
	return nil
}

func (a Asset) requireOperands(b Asset) error {
	if err := a.requireSymbol(b); err != nil {
		return err
	}
	if !a.IsAmountWithinRange() || !b.IsAmountWithinRange() {
		return fmt.Errorf("%w: operand out of range", ErrOverflow)
	}
	return nil
}

// Add returns a + b. In-range operands cannot overflow int64, so only the
// result range needs checking.
func (a Asset) Add(b Asset) (Asset, error) {
	if err := a.requireOperands(b); err != nil {
		return Asset{}, err
	}
	return a.checked(a.Amount + b.Amount)
}

func (a Asset) Sub(b Asset) (Asset, error) {
	if err := a.requireOperands(b); err != nil {
		return Asset{}, err
	}
	return a.checked(a.Amount - b.Amount)
}

func (a Asset) Neg() Asset {
	return Asset{Amount: -a.Amount, Symbol: a.Symbol}
}

// Mul scales the amount by an integer.
func (a Asset) Mul(n int64) (Asset, error) {
	hi, lo := bits.Mul64(abs(a.Amount), abs(n))
	if hi != 0 || lo > uint64(MaxAmount) {
		return Asset{}, fmt.Errorf("%w: %d * %d", ErrOverflow, a.Amount, n)
	}
	product := int64(lo)
	if (a.Amount < 0) != (n < 0) {
		product = -product
	}
	return a.checked(product)
}

// Div divides the amount by an integer, truncating toward zero.
func (a Asset) Div(n int64) (Asset, error) {
	switch {
	case n == 0:
		return Asset{}, ErrDivisionByZero
	case n == -1 && a.Amount == math.MinInt64:
		return Asset{}, fmt.Errorf("%w: %d / -1", ErrOverflow, a.Amount)
	}
	return a.checked(a.Amount / n)
}

// MulDecimal scales the amount by [d], truncating toward zero.
func (a Asset) MulDecimal(d decimal.Decimal) (Asset, error) {
	return a.fromDecimal(decimal.NewFromInt(a.Amount).Mul(d).Truncate(0))
}

// DivDecimal divides the amount by [d], truncating toward zero.
func (a Asset) DivDecimal(d decimal.Decimal) (Asset, error) {
	if d.IsZero() {
		return Asset{}, ErrDivisionByZero
	}
	q, _ := decimal.NewFromInt(a.Amount).QuoRem(d, 0)
	return a.fromDecimal(q)
}

func (a Asset) fromDecimal(d decimal.Decimal) (Asset, error) {
	if d.Abs().GreaterThan(maxAmountDecimal) {
		return Asset{}, fmt.Errorf("%w: %s", ErrOverflow, d)
	}
	return Asset{Amount: d.IntPart(), Symbol: a.Symbol}, nil
}

// DivAsset returns the integer ratio of two amounts of the same symbol.
func (a Asset) DivAsset(b Asset) (int64, error) {
	if err := a.requireSymbol(b); err != nil {
		return 0, err
	}
	if b.Amount == 0 {
		return 0, ErrDivisionByZero
	}
	if b.Amount == -1 && a.Amount == math.MinInt64 {
		return 0, fmt.Errorf("%w: %d / -1", ErrOverflow, a.Amount)
	}
	return a.Amount / b.Amount, nil
}

// Compare orders assets of the same symbol by amount. Assets of different
// symbols are not comparable.
func (a Asset) Compare(b Asset) (int, error) {
	if err := a.requireSymbol(b); err != nil {
		return 0, err
	}
	switch {
	case a.Amount < b.Amount:
		return -1, nil
	case a.Amount > b.Amount:
		return 1, nil
	default:
		return 0, nil
	}
}

// Value is the amount as a decimal number of whole units.
func (a Asset) Value() decimal.Decimal {
	return decimal.New(a.Amount, -int32(a.Symbol.Precision()))
}

// String renders "<int>.<frac> <CODE>" with exactly precision fractional
// digits. The sign is kept when the integer part is zero.
func (a Asset) String() string {
	p := int(a.Symbol.Precision())
	digits := strconv.FormatUint(abs(a.Amount), 10)
	if p > 0 {
		if len(digits) <= p {
			digits = strings.Repeat("0", p-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-p] + "." + digits[len(digits)-p:]
	}
	if a.Amount < 0 {
		digits = "-" + digits
	}
	return digits + " " + a.Symbol.Code().String()
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func (Asset) Size() int {
	return consts.AssetLen
}

func (a Asset) Marshal(p *codec.Packer) {
	p.PackInt64(a.Amount)
	a.Symbol.Marshal(p)
}

func UnmarshalAsset(p *codec.Packer) (Asset, error) {
	amount := p.UnpackInt64(false)
	if err := p.Err(); err != nil {
		return Asset{}, err
	}
	sym, err := UnmarshalSymbol(p)
	if err != nil {
		return Asset{}, err
	}
	return NewAsset(amount, sym)
}

func (a Asset) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Asset) UnmarshalText(text []byte) error {
	parsed, err := ParseAsset(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
