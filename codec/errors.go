// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInsufficientLength = errors.New("unexpected end of buffer")
	ErrMalformedVarint    = errors.New("malformed varint")
	ErrTooLarge           = errors.New("value exceeds size limit")
	ErrFieldNotPopulated  = errors.New("field is not populated")
	ErrInvalidBool        = errors.New("invalid bool")
	ErrTrailingBytes      = errors.New("trailing bytes")
	ErrInvalidSize        = errors.New("invalid size")
)
