// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "github.com/ava-labs/antelope-types/consts"

// Value is the capability set shared by every primitive type: a binary
// encoding through a Packer, a known encoded size and a canonical string.
type Value interface {
	Marshal(p *Packer)
	Size() int
	String() string
}

// Marshal returns the binary encoding of [v]. Encodings past
// NetworkSizeLimit, or values that refuse to encode, are an error.
func Marshal(v Value) ([]byte, error) {
	p := NewWriter(v.Size(), consts.NetworkSizeLimit)
	v.Marshal(p)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// Unmarshal decodes a single value from [b] with [f] and rejects any
// trailing bytes.
func Unmarshal[T any](b []byte, f func(*Packer) (T, error)) (T, error) {
	p := NewReader(b, consts.NetworkSizeLimit)
	v, err := f(p)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := p.Done(); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
