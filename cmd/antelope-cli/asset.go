// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/types"
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Parse assets and do checked arithmetic on them",
}

var assetParseCmd = &cobra.Command{
	Use:   "parse <\"amount CODE[@contract]\">",
	Short: "Parse an asset or extended asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.Contains(args[0], "@") {
			e, err := types.ParseExtendedAsset(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse extended asset: %w", err)
			}
			return printAsset(cmd, e.Quantity, e)
		}
		a, err := types.ParseAsset(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse asset: %w", err)
		}
		return printAsset(cmd, a, a)
	},
}

type assetCmdResponse struct {
	Asset  string      `json:"asset"`
	Amount int64       `json:"amount"`
	Symbol string      `json:"symbol"`
	Value  string      `json:"value"`
	Hex    codec.Bytes `json:"hex"`
}

// printAsset describes [a]; [v] is what gets encoded, which is the
// extended asset when a contract was given.
func printAsset(cmd *cobra.Command, a types.Asset, v codec.Value) error {
	b, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode asset: %w", err)
	}
	return printValue(cmd, assetCmdResponse{
		Asset:  v.String(),
		Amount: a.Amount,
		Symbol: a.Symbol.String(),
		Value:  a.Value().String(),
		Hex:    b,
	})
}

func (r assetCmdResponse) String() string {
	return fmt.Sprintf("%s\tamount=%d\tsymbol=%s\thex=%s", r.Asset, r.Amount, r.Symbol, r.Hex)
}

func binaryAssetCmd(use, short string, extended func(a, b types.ExtendedAsset) (types.ExtendedAsset, error), plain func(a, b types.Asset) (types.Asset, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <asset> <asset>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.Contains(args[0], "@") || strings.Contains(args[1], "@") {
				a, err := types.ParseExtendedAsset(args[0])
				if err != nil {
					return fmt.Errorf("failed to parse first operand: %w", err)
				}
				b, err := types.ParseExtendedAsset(args[1])
				if err != nil {
					return fmt.Errorf("failed to parse second operand: %w", err)
				}
				r, err := extended(a, b)
				if err != nil {
					logger.Debug("asset arithmetic failed", zap.String("op", use), zap.Stringer("a", a), zap.Stringer("b", b), zap.Error(err))
					return fmt.Errorf("failed to %s: %w", use, err)
				}
				return printAsset(cmd, r.Quantity, r)
			}

			a, err := types.ParseAsset(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse first operand: %w", err)
			}
			b, err := types.ParseAsset(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse second operand: %w", err)
			}
			r, err := plain(a, b)
			if err != nil {
				logger.Debug("asset arithmetic failed", zap.String("op", use), zap.Stringer("a", a), zap.Stringer("b", b), zap.Error(err))
				return fmt.Errorf("failed to %s: %w", use, err)
			}
			return printAsset(cmd, r, r)
		},
	}
}

func scalarAssetCmd(use, short string, integer func(types.Asset, int64) (types.Asset, error), fractional func(types.Asset, decimal.Decimal) (types.Asset, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <asset> <scalar>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := types.ParseAsset(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse asset: %w", err)
			}
			scalar, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("failed to parse scalar: %w", err)
			}

			var r types.Asset
			if scalar.IsInteger() && scalar.Abs().LessThanOrEqual(decimal.NewFromInt(types.MaxAmount)) {
				r, err = integer(a, scalar.IntPart())
			} else {
				r, err = fractional(a, scalar)
			}
			if err != nil {
				logger.Debug("asset scaling failed", zap.String("op", use), zap.Stringer("asset", a), zap.Stringer("scalar", scalar), zap.Error(err))
				return fmt.Errorf("failed to %s: %w", use, err)
			}
			return printAsset(cmd, r, r)
		},
	}
}

func init() {
	rootCmd.AddCommand(assetCmd)
	assetCmd.AddCommand(
		assetParseCmd,
		binaryAssetCmd("add", "Add two assets of the same symbol", types.ExtendedAsset.Add, types.Asset.Add),
		binaryAssetCmd("sub", "Subtract two assets of the same symbol", types.ExtendedAsset.Sub, types.Asset.Sub),
		scalarAssetCmd("mul", "Multiply an asset by a scalar", types.Asset.Mul, types.Asset.MulDecimal),
		scalarAssetCmd("div", "Divide an asset by a scalar", types.Asset.Div, types.Asset.DivDecimal),
	)
}
