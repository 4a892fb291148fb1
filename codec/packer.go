// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/ava-labs/antelope-types/consts"
)

// Packer reads or writes the little-endian wire format used by Antelope
// chains. The first error encountered is sticky: once set, every further
// call is a no-op and Err returns it.
type Packer struct {
	bytes   []byte
	offset  int
	maxSize int
	errs    wrappers.Errs
}

// NewReader returns a Packer that reads from [src]. At most [limit] bytes
// are accepted.
func NewReader(src []byte, limit int) *Packer {
	p := &Packer{bytes: src, maxSize: limit}
	if len(src) > limit {
		p.AddErr(fmt.Errorf("%w: %d > %d", ErrTooLarge, len(src), limit))
	}
	return p
}

// NewWriter returns a Packer with [initial] bytes of capacity that refuses
// to grow past [limit] bytes.
func NewWriter(initial, limit int) *Packer {
	if initial > limit {
		initial = limit
	}
	return &Packer{bytes: make([]byte, 0, initial), maxSize: limit}
}

// Bytes returns the written bytes (for a writer) or the full source buffer
// (for a reader).
func (p *Packer) Bytes() []byte {
	return p.bytes
}

// Offset is the number of bytes consumed by a reader.
func (p *Packer) Offset() int {
	return p.offset
}

// Empty reports whether a reader has consumed all of its input.
func (p *Packer) Empty() bool {
	return p.offset == len(p.bytes)
}

func (p *Packer) Err() error {
	return p.errs.Err
}

// Done adds ErrTrailingBytes if a reader still has unread input and returns
// the packer error.
func (p *Packer) Done() error {
	if !p.errs.Errored() && !p.Empty() {
		p.AddErr(fmt.Errorf("%w: %d remaining", ErrTrailingBytes, len(p.bytes)-p.offset))
	}
	return p.Err()
}

// AddErr records [err] unless an earlier error is already set. Values use
// it to refuse encodings they cannot represent.
func (p *Packer) AddErr(err error) {
	p.errs.Add(err)
}

func (p *Packer) grow(n int) bool {
	if p.errs.Errored() {
		return false
	}
	if len(p.bytes)+n > p.maxSize {
		p.AddErr(fmt.Errorf("%w: %d > %d", ErrTooLarge, len(p.bytes)+n, p.maxSize))
		return false
	}
	return true
}

func (p *Packer) take(n int) []byte {
	if p.errs.Errored() {
		return nil
	}
	if n < 0 || len(p.bytes)-p.offset < n {
		p.AddErr(fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrInsufficientLength, n, p.offset, len(p.bytes)-p.offset))
		return nil
	}
	b := p.bytes[p.offset : p.offset+n]
	p.offset += n
	return b
}

func (p *Packer) PackByte(b byte) {
	if p.grow(consts.ByteLen) {
		p.bytes = append(p.bytes, b)
	}
}

func (p *Packer) UnpackByte() byte {
	b := p.take(consts.ByteLen)
	if b == nil {
		return 0
	}
	return b[0]
}

func (p *Packer) PackBool(v bool) {
	if v {
		p.PackByte(1)
		return
	}
	p.PackByte(0)
}

func (p *Packer) UnpackBool() bool {
	switch p.UnpackByte() {
	case 0:
		return false
	case 1:
		return true
	default:
		p.AddErr(ErrInvalidBool)
		return false
	}
}

func (p *Packer) PackUint16(v uint16) {
	if p.grow(consts.Uint16Len) {
		p.bytes = binary.LittleEndian.AppendUint16(p.bytes, v)
	}
}

func (p *Packer) UnpackUint16() uint16 {
	b := p.take(consts.Uint16Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (p *Packer) PackUint32(v uint32) {
	if p.grow(consts.Uint32Len) {
		p.bytes = binary.LittleEndian.AppendUint32(p.bytes, v)
	}
}

func (p *Packer) UnpackUint32() uint32 {
	b := p.take(consts.Uint32Len)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (p *Packer) PackUint64(v uint64) {
	if p.grow(consts.Uint64Len) {
		p.bytes = binary.LittleEndian.AppendUint64(p.bytes, v)
	}
}

// UnpackUint64 reads a uint64. If [required] is set, a zero value is
// reported as ErrFieldNotPopulated.
func (p *Packer) UnpackUint64(required bool) uint64 {
	b := p.take(consts.Uint64Len)
	if b == nil {
		return 0
	}
	v := binary.LittleEndian.Uint64(b)
	if required && v == 0 {
		p.AddErr(ErrFieldNotPopulated)
	}
	return v
}

func (p *Packer) PackInt64(v int64) {
	p.PackUint64(uint64(v))
}

func (p *Packer) UnpackInt64(required bool) int64 {
	return int64(p.UnpackUint64(required))
}

// PackVarUint32 appends [v] as unsigned LEB128: 7 bits per byte, least
// significant group first, high bit set on every byte but the last.
func (p *Packer) PackVarUint32(v uint32) {
	if !p.grow(VarUint32Len(v)) {
		return
	}
	for v >= 0x80 {
		p.bytes = append(p.bytes, byte(v)|0x80)
		v >>= 7
	}
	p.bytes = append(p.bytes, byte(v))
}

// UnpackVarUint32 reads an unsigned LEB128 value of at most 5 bytes.
func (p *Packer) UnpackVarUint32() uint32 {
	var (
		v     uint32
		shift uint
	)
	for i := 0; i < consts.MaxVarUint32Len; i++ {
		b := p.take(consts.ByteLen)
		if b == nil {
			return 0
		}
		c := b[0]
		// The fifth byte only has room for the top 4 bits.
		if i == consts.MaxVarUint32Len-1 && c&0x70 != 0 {
			p.AddErr(fmt.Errorf("%w: overflows 32 bits", ErrMalformedVarint))
			return 0
		}
		v |= uint32(c&0x7f) << shift
		if c&0x80 == 0 {
			return v
		}
		shift += 7
	}
	p.AddErr(fmt.Errorf("%w: longer than %d bytes", ErrMalformedVarint, consts.MaxVarUint32Len))
	return 0
}

// PackFixedBytes appends [b] without a length prefix.
func (p *Packer) PackFixedBytes(b []byte) {
	if p.grow(len(b)) {
		p.bytes = append(p.bytes, b...)
	}
}

// UnpackFixedBytes copies the next [size] bytes into [dest].
func (p *Packer) UnpackFixedBytes(size int, dest *[]byte) {
	b := p.take(size)
	if b == nil {
		return
	}
	*dest = append([]byte(nil), b...)
}

// PackBytes appends a varuint32 length prefix followed by [b].
func (p *Packer) PackBytes(b []byte) {
	if len(b) > int(consts.MaxUint32) {
		p.AddErr(fmt.Errorf("%w: %d bytes", ErrTooLarge, len(b)))
		return
	}
	p.PackVarUint32(uint32(len(b)))
	p.PackFixedBytes(b)
}

// UnpackBytes reads a length-prefixed byte sequence into [dest]. A length
// above [limit] (when non-negative) is ErrTooLarge. If [required] is set an
// empty sequence is ErrFieldNotPopulated.
func (p *Packer) UnpackBytes(limit int, required bool, dest *[]byte) {
	l := p.UnpackVarUint32()
	if p.errs.Errored() {
		return
	}
	if limit >= 0 && int(l) > limit {
		p.AddErr(fmt.Errorf("%w: %d > %d", ErrTooLarge, l, limit))
		return
	}
	if required && l == 0 {
		p.AddErr(ErrFieldNotPopulated)
		return
	}
	p.UnpackFixedBytes(int(l), dest)
	if !p.errs.Errored() && *dest == nil {
		*dest = []byte{}
	}
}

func (p *Packer) PackString(s string) {
	p.PackBytes([]byte(s))
}

func (p *Packer) UnpackString(required bool) string {
	var b []byte
	p.UnpackBytes(-1, required, &b)
	return string(b)
}
