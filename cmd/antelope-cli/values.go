// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/crypto/checksum"
	"github.com/ava-labs/antelope-types/crypto/ecc"
	"github.com/ava-labs/antelope-types/types"
)

// valueType ties a type name to its string and binary decoders.
type valueType struct {
	parse     func(string) (codec.Value, error)
	unmarshal func(*codec.Packer) (codec.Value, error)
}

func newValueType[T codec.Value](
	parse func(string) (T, error),
	unmarshal func(*codec.Packer) (T, error),
) valueType {
	return valueType{
		parse: func(s string) (codec.Value, error) {
			v, err := parse(s)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		unmarshal: func(p *codec.Packer) (codec.Value, error) {
			v, err := unmarshal(p)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

var valueTypes = map[string]valueType{
	"name":            newValueType(types.NewName, types.UnmarshalName),
	"symbol":          newValueType(types.ParseSymbol, types.UnmarshalSymbol),
	"extended_symbol": newValueType(types.ParseExtendedSymbol, types.UnmarshalExtendedSymbol),
	"asset":           newValueType(types.ParseAsset, types.UnmarshalAsset),
	"extended_asset":  newValueType(types.ParseExtendedAsset, types.UnmarshalExtendedAsset),
	"checksum160":     newValueType(checksum.Checksum160FromHex, checksum.UnmarshalChecksum160),
	"checksum256":     newValueType(checksum.Checksum256FromHex, checksum.UnmarshalChecksum256),
	"checksum512":     newValueType(checksum.Checksum512FromHex, checksum.UnmarshalChecksum512),
	"public_key":      newValueType(ecc.ParsePublicKey, ecc.UnmarshalPublicKey),
	"private_key":     newValueType(ecc.ParsePrivateKey, ecc.UnmarshalPrivateKey),
	"signature":       newValueType(ecc.ParseSignature, ecc.UnmarshalSignature),
}

func typeNames() []string {
	names := maps.Keys(valueTypes)
	slices.Sort(names)
	return names
}

func lookupType(name string) (valueType, error) {
	vt, ok := valueTypes[name]
	if !ok {
		return valueType{}, fmt.Errorf("unknown type %q (expected one of %s)", name, strings.Join(typeNames(), ", "))
	}
	return vt, nil
}

// parseValue decodes the string form of [typ].
func parseValue(typ, s string) (codec.Value, error) {
	vt, err := lookupType(typ)
	if err != nil {
		return nil, err
	}
	return vt.parse(s)
}

// unpackValue decodes the binary form of [typ], rejecting trailing bytes.
func unpackValue(typ string, b []byte) (codec.Value, error) {
	vt, err := lookupType(typ)
	if err != nil {
		return nil, err
	}
	return codec.Unmarshal(b, vt.unmarshal)
}
