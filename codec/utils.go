// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// VarUint32Len returns the number of bytes PackVarUint32 writes for [v].
func VarUint32Len(v uint32) int {
	l := 1
	for v >= 0x80 {
		v >>= 7
		l++
	}
	return l
}

// BytesLen is the encoded size of a length-prefixed byte sequence.
func BytesLen(msg []byte) int {
	return VarUint32Len(uint32(len(msg))) + len(msg)
}

func StringLen(msg string) int {
	return VarUint32Len(uint32(len(msg))) + len(msg)
}
