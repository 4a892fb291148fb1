// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codectest

import (
	"crypto/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/ava-labs/antelope-types/codec"
)

// RandomBytes returns [n] random bytes for use during testing
func RandomBytes(t testing.TB, n int) []byte {
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

// RequireRoundTrip checks that [v] encodes to exactly v.Size() bytes and
// that [unmarshal] decodes those bytes back to [v].
func RequireRoundTrip[T codec.Value](t testing.TB, v T, unmarshal func(*codec.Packer) (T, error)) []byte {
	require := require.New(t)

	b, err := codec.Marshal(v)
	require.NoError(err)
	require.Len(b, v.Size())

	decoded, err := codec.Unmarshal(b, unmarshal)
	require.NoError(err)
	require.Equal(v, decoded)
	require.Equal(v.String(), decoded.String())
	return b
}

// LoadVectors decodes the YAML file at [path] into [out].
func LoadVectors(t testing.TB, path string, out interface{}) {
	require := require.New(t)

	b, err := os.ReadFile(path)
	require.NoError(err)
	require.NoError(yaml.UnmarshalStrict(b, out))
}
