// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ecc

import (
	"testing"

	"github.com/ava-labs/antelope-types/codectest"
	"github.com/ava-labs/antelope-types/crypto/checksum"
)

type keyVector struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Hex    string `yaml:"hex"`
	Tagged string `yaml:"tagged"`
	Legacy string `yaml:"legacy"`
	Public string `yaml:"public"`
	Signer string `yaml:"signer"`
}

type keyVectors struct {
	PublicKeys  []keyVector `yaml:"public_keys"`
	PrivateKeys []keyVector `yaml:"private_keys"`
	Signatures  []keyVector `yaml:"signatures"`
}

func loadKeyVectors(t *testing.T) keyVectors {
	var v keyVectors
	codectest.LoadVectors(t, "testdata/keys.yaml", &v)
	return v
}

func helloDigest() checksum.Checksum256 {
	return checksum.Hash256([]byte("hello"))
}
