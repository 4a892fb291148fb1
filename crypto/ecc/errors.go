// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import "errors"

var (
	ErrUnknownFormat       = errors.New("unknown key format")
	ErrUnsupportedKeyType  = errors.New("unsupported key type")
	ErrInvalidWebAuthn     = errors.New("invalid webauthn assertion")
	ErrInvalidUserPresence = errors.New("invalid user presence")
)
