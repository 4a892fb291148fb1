// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyType(t *testing.T) {
	tests := []struct {
		in   string
		want KeyType
	}{
		{in: "K1", want: K1},
		{in: "r1", want: R1},
		{in: "WA", want: WA},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require := require.New(t)
			typ, err := ParseKeyType(tt.in)
			require.NoError(err)
			require.Equal(tt.want, typ)
			require.True(typ.IsValid())
		})
	}

	_, err := ParseKeyType("EM")
	require.ErrorIs(t, err, ErrUnsupportedKeyType)
	require.False(t, KeyType(3).IsValid())
	require.Equal(t, "KeyType(3)", KeyType(3).String())
}
