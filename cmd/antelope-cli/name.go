// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/types"
)

var nameCmd = &cobra.Command{
	Use:   "name",
	Short: "Encode and decode names",
}

var nameEncodeCmd = &cobra.Command{
	Use:   "encode <name>",
	Short: "Pack a name into its 64-bit value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			return fmt.Errorf("failed to get strict flag: %w", err)
		}
		parse := types.NewName
		if strict {
			parse = types.ParseName
		}
		n, err := parse(args[0])
		if err != nil {
			logger.Debug("invalid name", zap.String("input", args[0]), zap.Error(err))
			return fmt.Errorf("failed to encode name: %w", err)
		}
		resp, err := newNameResponse(n)
		if err != nil {
			return err
		}
		return printValue(cmd, resp)
	},
}

var nameDecodeCmd = &cobra.Command{
	Use:   "decode <uint64>",
	Short: "Unpack a 64-bit value into a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse raw name: %w", err)
		}
		resp, err := newNameResponse(types.Name(raw))
		if err != nil {
			return err
		}
		return printValue(cmd, resp)
	},
}

type nameResponse struct {
	Name   string      `json:"name"`
	Raw    uint64      `json:"raw"`
	Hex    codec.Bytes `json:"hex"`
	Prefix string      `json:"prefix"`
	Suffix string      `json:"suffix"`
}

func newNameResponse(n types.Name) (nameResponse, error) {
	b, err := codec.Marshal(n)
	if err != nil {
		return nameResponse{}, fmt.Errorf("failed to encode name: %w", err)
	}
	return nameResponse{
		Name:   n.String(),
		Raw:    n.Raw(),
		Hex:    b,
		Prefix: n.Prefix().String(),
		Suffix: n.Suffix().String(),
	}, nil
}

func (r nameResponse) String() string {
	return fmt.Sprintf("%s\traw=%d\thex=%s", r.Name, r.Raw, r.Hex)
}

func init() {
	rootCmd.AddCommand(nameCmd)
	nameCmd.AddCommand(nameEncodeCmd, nameDecodeCmd)
	nameEncodeCmd.Flags().Bool("strict", false, "Reject names that do not read back unchanged")
}
