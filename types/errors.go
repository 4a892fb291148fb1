// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import "errors"

var (
	ErrNameTooLong      = errors.New("name too long")
	ErrInvalidCharacter = errors.New("invalid name character")
	ErrNotNormalized    = errors.New("name not in canonical form")
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrMalformedAsset   = errors.New("malformed asset")
	ErrSymbolMismatch   = errors.New("symbol mismatch")
	ErrContractMismatch = errors.New("contract mismatch")
	ErrOverflow         = errors.New("amount overflow")
	ErrDivisionByZero   = errors.New("division by zero")
)
