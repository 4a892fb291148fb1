// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/antelope-types/codec"
)

func TestSaveBytes(t *testing.T) {
	require := require.New(t)

	filename := filepath.Join(t.TempDir(), "SaveBytes")
	key := []byte("PVT_K1_2bfGi9rYsXQSXXTvJbDAPhHLQUojjaNLomdm3cEJ1XTzMqUt3V")
	require.NoError(SaveBytes(filename, key), "Error during call to SaveBytes")
	require.FileExists(filename, "SaveBytes did not create file")

	// Check correct key was saved in file
	loaded, err := LoadBytes(filename, len(key))
	require.NoError(err)
	require.Equal(key, loaded)
}

func TestLoadBytesIncorrectLength(t *testing.T) {
	require := require.New(t)
	filename := filepath.Join(t.TempDir(), "LoadBytes")
	require.NoError(os.WriteFile(filename, []byte{1, 2, 3, 4, 5}, 0o600))

	_, err := LoadBytes(filename, 32)
	require.ErrorIs(err, codec.ErrInvalidSize)

	b, err := LoadBytes(filename, -1)
	require.NoError(err)
	require.Len(b, 5)
}

func TestLoadBytesMissingFile(t *testing.T) {
	_, err := LoadBytes(filepath.Join(t.TempDir(), "missing"), -1)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMap(t *testing.T) {
	require := require.New(t)
	out := Map(strconv.Itoa, []int{1, 22, 333})
	require.Equal([]string{"1", "22", "333"}, out)
	require.Empty(Map(strconv.Itoa, nil))
}

func TestForEach(t *testing.T) {
	sum := 0
	ForEach(func(v int) { sum += v }, []int{1, 2, 3})
	require.Equal(t, 6, sum)
}

func TestFilter(t *testing.T) {
	require := require.New(t)

	in := []int{1, 2, 3, 4, 5}
	even := Filter(func(v int) bool { return v%2 == 0 }, in)
	require.Equal([]int{2, 4}, even)
	require.Equal([]int{1, 2, 3, 4, 5}, in)
	require.Empty(Filter(func(int) bool { return false }, in))
}
