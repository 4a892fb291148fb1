// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/antelope-types/codec"
)

var packCmd = &cobra.Command{
	Use:   "pack <type> <value>",
	Short: "Encode a value to its binary form",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseValue(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}
		resp, err := newPackCmdResponse(args[0], v)
		if err != nil {
			return err
		}
		return printValue(cmd, resp)
	},
}

var unpackCmd = &cobra.Command{
	Use:   "unpack <type> <hex-or-file>",
	Short: "Decode the binary form of a value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := decodeFileOrHex(args[1])
		if err != nil {
			return err
		}
		v, err := unpackValue(args[0], b)
		if err != nil {
			return fmt.Errorf("failed to unpack %s: %w", args[0], err)
		}
		resp, err := newPackCmdResponse(args[0], v)
		if err != nil {
			return err
		}
		return printValue(cmd, resp)
	},
}

type packCmdResponse struct {
	Type  string      `json:"type"`
	Value string      `json:"value"`
	Hex   codec.Bytes `json:"hex"`
	Size  int         `json:"size"`
}

func newPackCmdResponse(typ string, v codec.Value) (packCmdResponse, error) {
	b, err := codec.Marshal(v)
	if err != nil {
		return packCmdResponse{}, fmt.Errorf("failed to encode %s: %w", typ, err)
	}
	return packCmdResponse{
		Type:  typ,
		Value: v.String(),
		Hex:   b,
		Size:  len(b),
	}, nil
}

func (r packCmdResponse) String() string {
	return fmt.Sprintf("%s\n%s", r.Value, r.Hex)
}

func init() {
	rootCmd.AddCommand(packCmd, unpackCmd)
}
