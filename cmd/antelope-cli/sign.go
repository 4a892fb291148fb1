// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/antelope-types/crypto/checksum"
	"github.com/ava-labs/antelope-types/crypto/ecc"
)

var errSignatureMismatch = errors.New("signature does not match public key")

var signCmd = &cobra.Command{
	Use:   "sign [private-key] <digest-hex>",
	Short: "Sign a 32 byte digest",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		priv, err := privateKeyFromArgs(cmd, args[:len(args)-1])
		if err != nil {
			return err
		}
		digest, err := digestFromArg(cmd, args[len(args)-1])
		if err != nil {
			return err
		}
		sig, err := priv.Sign(digest)
		if err != nil {
			return fmt.Errorf("failed to sign: %w", err)
		}
		logger.Debug("signed digest",
			zap.Stringer("digest", digest),
			zap.Stringer("type", priv.Type()),
		)
		return printValue(cmd, signatureCmdResponse{
			Digest:    digest.String(),
			Signature: sig.String(),
			PublicKey: priv.PublicKey().String(),
		})
	},
}

var recoverCmd = &cobra.Command{
	Use:   "recover <signature> <digest-hex>",
	Short: "Recover the public key that produced a signature",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig, err := ecc.ParseSignature(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse signature: %w", err)
		}
		digest, err := digestFromArg(cmd, args[1])
		if err != nil {
			return err
		}
		pub, err := sig.RecoverPublicKey(digest)
		if err != nil {
			return fmt.Errorf("failed to recover public key: %w", err)
		}

		expected, err := cmd.Flags().GetString("verify")
		if err != nil {
			return fmt.Errorf("failed to get verify flag: %w", err)
		}
		if expected != "" {
			want, err := ecc.ParsePublicKey(expected)
			if err != nil {
				return fmt.Errorf("failed to parse public key: %w", err)
			}
			if !sig.Verify(digest, want) {
				return fmt.Errorf("%w: recovered %s", errSignatureMismatch, pub)
			}
		}
		return printValue(cmd, signatureCmdResponse{
			Digest:    digest.String(),
			Signature: sig.String(),
			PublicKey: pub.String(),
		})
	},
}

var importDERCmd = &cobra.Command{
	Use:   "import-der <r1-public-key> <digest-hex> <der-hex-or-file>",
	Short: "Convert a DER encoded R1 signature into a SIG_R1 signature",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pub, err := ecc.ParsePublicKey(args[0])
		if err != nil {
			return fmt.Errorf("failed to parse public key: %w", err)
		}
		digest, err := digestFromArg(cmd, args[1])
		if err != nil {
			return err
		}
		der, err := decodeFileOrHex(args[2])
		if err != nil {
			return err
		}
		sig, err := ecc.NewR1SignatureFromASN1(digest, der, pub)
		if err != nil {
			logger.Debug("invalid DER signature", zap.Int("size", len(der)), zap.Error(err))
			return fmt.Errorf("failed to convert signature: %w", err)
		}
		return printValue(cmd, signatureCmdResponse{
			Digest:    digest.String(),
			Signature: sig.String(),
			PublicKey: pub.String(),
		})
	},
}

type signatureCmdResponse struct {
	Digest    string `json:"digest"`
	Signature string `json:"signature"`
	PublicKey string `json:"publicKey"`
}

func (r signatureCmdResponse) String() string {
	return fmt.Sprintf("signature: %s\npublic:    %s", r.Signature, r.PublicKey)
}

// digestFromArg decodes a 32 byte hex digest, or hashes the input first
// when --hash is set.
func digestFromArg(cmd *cobra.Command, arg string) (checksum.Checksum256, error) {
	hash, err := cmd.Flags().GetBool("hash")
	if err != nil {
		return checksum.Checksum256{}, fmt.Errorf("failed to get hash flag: %w", err)
	}
	if hash {
		data, err := decodeFileOrHex(arg)
		if err != nil {
			return checksum.Checksum256{}, err
		}
		return checksum.Hash256(data), nil
	}
	digest, err := checksum.Checksum256FromHex(arg)
	if err != nil {
		return checksum.Checksum256{}, fmt.Errorf("failed to parse digest: %w", err)
	}
	return digest, nil
}

func init() {
	rootCmd.AddCommand(signCmd, recoverCmd, importDERCmd)
	signCmd.Flags().String("key-file", "", "File holding the private key")
	signCmd.Flags().Bool("hash", false, "Hash the input with sha256 before signing")
	recoverCmd.Flags().Bool("hash", false, "Hash the input with sha256 before recovering")
	recoverCmd.Flags().String("verify", "", "Fail unless the signature was made by this public key")
	importDERCmd.Flags().Bool("hash", false, "Hash the input with sha256 first")
}
