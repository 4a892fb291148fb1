// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	MaxUint8  = ^uint8(0)
	MaxUint16 = ^uint16(0)
	MaxUint32 = ^uint32(0)
	MaxUint64 = ^uint64(0)
	MaxUint   = ^uint(0)
	MaxInt    = int(MaxUint >> 1)

	BoolLen   = 1
	ByteLen   = 1
	Uint16Len = 2
	Uint32Len = 4
	Uint64Len = 8
	Int64Len  = 8

	// MaxVarUint32Len is the longest LEB128 encoding of a uint32.
	MaxVarUint32Len = 5

	NameLen          = Uint64Len
	SymbolLen        = Uint64Len
	AssetLen         = Int64Len + SymbolLen
	ExtendedAssetLen = AssetLen + NameLen

	// NetworkSizeLimit bounds a single decoded value.
	NetworkSizeLimit = 2_044_723 // 1.95 MiB
)
