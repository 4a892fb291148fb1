// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package checksum

import (
	"crypto/sha512"

	"github.com/ava-labs/avalanchego/utils/hashing"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

// Hash160 returns the ripemd160 digest of the concatenation of [data].
func Hash160(data ...[]byte) Checksum160 {
	h := ripemd160.New()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	var c Checksum160
	copy(c[:], h.Sum(nil))
	return c
}

// Hash256 returns the sha256 digest of [data].
func Hash256(data []byte) Checksum256 {
	return Checksum256(hashing.ComputeHash256Array(data))
}

// Hash512 returns the sha512 digest of [data].
func Hash512(data []byte) Checksum512 {
	return Checksum512(sha512.Sum512(data))
}
