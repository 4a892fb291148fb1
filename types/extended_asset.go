// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package types

import (
	"fmt"
	"strings"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/consts"
)

// ExtendedAsset is an Asset qualified by the contract that issues it.
type ExtendedAsset struct {
	Quantity Asset
	Contract Name
}

var _ codec.Value = ExtendedAsset{}

// ParseExtendedAsset parses "<amount> <CODE>@<contract>".
func ParseExtendedAsset(s string) (ExtendedAsset, error) {
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return ExtendedAsset{}, fmt.Errorf("%w: %q has no contract", ErrMalformedAsset, s)
	}
	quantity, err := ParseAsset(s[:i])
	if err != nil {
		return ExtendedAsset{}, err
	}
	contract, err := NewName(s[i+1:])
	if err != nil {
		return ExtendedAsset{}, err
	}
	return ExtendedAsset{Quantity: quantity, Contract: contract}, nil
}

func (e ExtendedAsset) ExtendedSymbol() ExtendedSymbol {
	return ExtendedSymbol{Symbol: e.Quantity.Symbol, Contract: e.Contract}
}

func (e ExtendedAsset) IsValid() bool {
	return e.Quantity.IsValid()
}

func (e ExtendedAsset) requireContract(o ExtendedAsset) error {
	if e.Contract != o.Contract {
		return fmt.Errorf("%w: %s != %s", ErrContractMismatch, e.Contract, o.Contract)
	}
	return nil
}

func (e ExtendedAsset) Add(o ExtendedAsset) (ExtendedAsset, error) {
	if err := e.requireContract(o); err != nil {
		return ExtendedAsset{}, err
	}
	q, err := e.Quantity.Add(o.Quantity)
	if err != nil {
		return ExtendedAsset{}, err
	}
	return ExtendedAsset{Quantity: q, Contract: e.Contract}, nil
}

func (e ExtendedAsset) Sub(o ExtendedAsset) (ExtendedAsset, error) {
	if err := e.requireContract(o); err != nil {
		return ExtendedAsset{}, err
	}
	q, err := e.Quantity.Sub(o.Quantity)
	if err != nil {
		return ExtendedAsset{}, err
	}
	return ExtendedAsset{Quantity: q, Contract: e.Contract}, nil
}

func (e ExtendedAsset) Neg() ExtendedAsset {
	return ExtendedAsset{Quantity: e.Quantity.Neg(), Contract: e.Contract}
}

// Compare requires the same contract and symbol.
func (e ExtendedAsset) Compare(o ExtendedAsset) (int, error) {
	if err := e.requireContract(o); err != nil {
		return 0, err
	}
	return e.Quantity.Compare(o.Quantity)
}

func (e ExtendedAsset) String() string {
	return e.Quantity.String() + "@" + e.Contract.String()
}

func (ExtendedAsset) Size() int {
	return consts.ExtendedAssetLen
}

func (e ExtendedAsset) Marshal(p *codec.Packer) {
	e.Quantity.Marshal(p)
	e.Contract.Marshal(p)
}

func UnmarshalExtendedAsset(p *codec.Packer) (ExtendedAsset, error) {
	quantity, err := UnmarshalAsset(p)
	if err != nil {
		return ExtendedAsset{}, err
	}
	contract, err := UnmarshalName(p)
	if err != nil {
		return ExtendedAsset{}, err
	}
	return ExtendedAsset{Quantity: quantity, Contract: contract}, nil
}

func (e ExtendedAsset) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *ExtendedAsset) UnmarshalText(text []byte) error {
	parsed, err := ParseExtendedAsset(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
