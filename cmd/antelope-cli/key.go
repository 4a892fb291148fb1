// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/antelope-types/crypto/ecc"
	"github.com/ava-labs/antelope-types/utils"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage keys",
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new private key",
	RunE: func(cmd *cobra.Command, _ []string) error {
		typeString, err := cmd.Flags().GetString("type")
		if err != nil {
			return fmt.Errorf("failed to get type flag: %w", err)
		}
		typ, err := ecc.ParseKeyType(typeString)
		if err != nil {
			return err
		}
		priv, err := ecc.GeneratePrivateKey(typ)
		if err != nil {
			return fmt.Errorf("failed to generate key: %w", err)
		}

		savePath, err := cmd.Flags().GetString("save")
		if err != nil {
			return fmt.Errorf("failed to get save flag: %w", err)
		}
		if savePath != "" {
			if err := utils.SaveBytes(savePath, []byte(priv.String())); err != nil {
				return fmt.Errorf("failed to save key: %w", err)
			}
			logger.Debug("saved private key", zap.String("path", savePath))
		}

		resp, err := newKeyResponse(cmd, priv.PublicKey())
		if err != nil {
			return err
		}
		resp.PrivateKey = priv.String()
		resp.SavedTo = savePath
		return printValue(cmd, resp)
	},
}

var keyPublicCmd = &cobra.Command{
	Use:   "public [private-key]",
	Short: "Derive the public key of a private key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		priv, err := privateKeyFromArgs(cmd, args)
		if err != nil {
			return err
		}
		resp, err := newKeyResponse(cmd, priv.PublicKey())
		if err != nil {
			return err
		}
		return printValue(cmd, resp)
	},
}

var keyConvertCmd = &cobra.Command{
	Use:   "convert <public-key>",
	Short: "Convert a public key between the tagged and legacy formats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := legacyPrefix(cmd)
		if err != nil {
			return err
		}
		pub, err := ecc.ParsePublicKey(args[0])
		if err != nil && prefix != ecc.LegacyPublicKeyPrefix {
			pub, err = ecc.ParsePublicKeyWithPrefix(args[0], prefix)
		}
		if err != nil {
			logger.Debug("invalid public key", zap.String("input", args[0]), zap.Error(err))
			return fmt.Errorf("failed to parse public key: %w", err)
		}
		resp, err := newKeyResponse(cmd, pub)
		if err != nil {
			return err
		}
		return printValue(cmd, resp)
	},
}

type keyCmdResponse struct {
	Type       string `json:"type"`
	PrivateKey string `json:"privateKey,omitempty"`
	PublicKey  string `json:"publicKey"`
	Legacy     string `json:"legacy,omitempty"`
	SavedTo    string `json:"savedTo,omitempty"`
}

func newKeyResponse(cmd *cobra.Command, pub ecc.PublicKey) (keyCmdResponse, error) {
	resp := keyCmdResponse{
		Type:      pub.Type().String(),
		PublicKey: pub.String(),
	}
	if pub.Type() == ecc.K1 {
		prefix, err := legacyPrefix(cmd)
		if err != nil {
			return keyCmdResponse{}, err
		}
		resp.Legacy, err = pub.LegacyString(prefix)
		if err != nil {
			return keyCmdResponse{}, err
		}
	}
	return resp, nil
}

func (r keyCmdResponse) String() string {
	lines := []string{}
	if r.PrivateKey != "" {
		lines = append(lines, "private: "+r.PrivateKey)
	}
	lines = append(lines, "public:  "+r.PublicKey)
	if r.Legacy != "" {
		lines = append(lines, "legacy:  "+r.Legacy)
	}
	if r.SavedTo != "" {
		lines = append(lines, "saved:   "+r.SavedTo)
	}
	return strings.Join(lines, "\n")
}

// privateKeyFromArgs reads the key from the first argument or, if absent,
// from the file named by --key-file.
func privateKeyFromArgs(cmd *cobra.Command, args []string) (ecc.PrivateKey, error) {
	keyString := ""
	if len(args) > 0 {
		keyString = args[0]
	} else {
		keyFile, err := cmd.Flags().GetString("key-file")
		if err != nil {
			return ecc.PrivateKey{}, fmt.Errorf("failed to get key-file flag: %w", err)
		}
		if keyFile == "" {
			return ecc.PrivateKey{}, fmt.Errorf("a private key argument or --key-file is required")
		}
		b, err := utils.LoadBytes(keyFile, -1)
		if err != nil {
			return ecc.PrivateKey{}, fmt.Errorf("failed to read key file: %w", err)
		}
		keyString = strings.TrimSpace(string(b))
	}
	priv, err := ecc.ParsePrivateKey(keyString)
	if err != nil {
		return ecc.PrivateKey{}, fmt.Errorf("failed to parse private key: %w", err)
	}
	return priv, nil
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keyGenerateCmd, keyPublicCmd, keyConvertCmd)
	keyGenerateCmd.Flags().String("type", "k1", "Key type (k1 or r1)")
	keyGenerateCmd.Flags().String("save", "", "Write the private key to this file")
	keyPublicCmd.Flags().String("key-file", "", "File holding the private key")
}
