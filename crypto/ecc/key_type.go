// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"fmt"
	"strings"
)

// KeyType is the variant tag written before every key and signature.
type KeyType uint32

const (
	K1 KeyType = iota
	R1
	WA
)

const (
	PublicKeyPrefix  = "PUB_"
	PrivateKeyPrefix = "PVT_"
	SignaturePrefix  = "SIG_"

	// LegacyPublicKeyPrefix is the default prefix of untagged K1 keys.
	LegacyPublicKeyPrefix = "EOS"
)

func (k KeyType) String() string {
	switch k {
	case K1:
		return "K1"
	case R1:
		return "R1"
	case WA:
		return "WA"
	default:
		return fmt.Sprintf("KeyType(%d)", uint32(k))
	}
}

func (k KeyType) IsValid() bool {
	return k <= WA
}

// ParseKeyType accepts the tag in either case.
func ParseKeyType(s string) (KeyType, error) {
	switch strings.ToUpper(s) {
	case "K1":
		return K1, nil
	case "R1":
		return R1, nil
	case "WA":
		return WA, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedKeyType, s)
	}
}

// splitTagged splits "<prefix><TYPE>_<base58>" into its key type and the
// base58 body.
func splitTagged(s, prefix string) (KeyType, string, error) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return 0, "", fmt.Errorf("%w: missing %q prefix", ErrUnknownFormat, prefix)
	}
	tag, body, ok := strings.Cut(rest, "_")
	if !ok {
		return 0, "", fmt.Errorf("%w: missing key type", ErrUnknownFormat)
	}
	typ, err := ParseKeyType(tag)
	if err != nil || tag != typ.String() {
		return 0, "", fmt.Errorf("%w: unknown key type %q", ErrUnknownFormat, tag)
	}
	return typ, body, nil
}
