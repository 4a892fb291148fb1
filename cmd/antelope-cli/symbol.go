// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/types"
)

var symbolCmd = &cobra.Command{
	Use:   "symbol",
	Short: "Inspect symbols",
}

var symbolParseCmd = &cobra.Command{
	Use:   "parse <precision,CODE[@contract]>",
	Short: "Parse a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			v   codec.Value
			sym types.Symbol
			err error
		)
		if strings.Contains(args[0], "@") {
			var e types.ExtendedSymbol
			e, err = types.ParseExtendedSymbol(args[0])
			v, sym = e, e.Symbol
		} else {
			sym, err = types.ParseSymbol(args[0])
			v = sym
		}
		if err != nil {
			return fmt.Errorf("failed to parse symbol: %w", err)
		}
		b, err := codec.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode symbol: %w", err)
		}
		return printValue(cmd, symbolCmdResponse{
			Symbol:    v.String(),
			Precision: sym.Precision(),
			Code:      sym.Code().String(),
			Raw:       sym.Raw(),
			Hex:       b,
		})
	},
}

type symbolCmdResponse struct {
	Symbol    string      `json:"symbol"`
	Precision uint8       `json:"precision"`
	Code      string      `json:"code"`
	Raw       uint64      `json:"raw"`
	Hex       codec.Bytes `json:"hex"`
}

func (r symbolCmdResponse) String() string {
	return fmt.Sprintf("%s\tprecision=%d\tcode=%s\traw=%d\thex=%s", r.Symbol, r.Precision, r.Code, r.Raw, r.Hex)
}

func init() {
	rootCmd.AddCommand(symbolCmd)
	symbolCmd.AddCommand(symbolParseCmd)
}
