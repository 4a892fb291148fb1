// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/antelope-types/crypto/checksum"
)

var checksumCmd = &cobra.Command{
	Use:   "checksum",
	Short: "Compute digests",
}

var checksumHashCmd = &cobra.Command{
	Use:   "hash <ripemd160|sha256|sha512> <hex-or-file>",
	Short: "Hash hex encoded bytes or the contents of a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := decodeFileOrHex(args[1])
		if err != nil {
			return err
		}
		logger.Debug("hashing input", zap.String("algorithm", args[0]), zap.Int("size", len(data)))

		var digest fmt.Stringer
		switch args[0] {
		case "ripemd160":
			digest = checksum.Hash160(data)
		case "sha256":
			digest = checksum.Hash256(data)
		case "sha512":
			digest = checksum.Hash512(data)
		default:
			return fmt.Errorf("unknown algorithm %q", args[0])
		}
		return printValue(cmd, checksumHashCmdResponse{
			Algorithm: args[0],
			Digest:    digest.String(),
		})
	},
}

type checksumHashCmdResponse struct {
	Algorithm string `json:"algorithm"`
	Digest    string `json:"digest"`
}

func (r checksumHashCmdResponse) String() string {
	return r.Digest
}

func init() {
	rootCmd.AddCommand(checksumCmd)
	checksumCmd.AddCommand(checksumHashCmd)
}
