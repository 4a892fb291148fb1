// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "antelope-cli",
	Short:        "Antelope CLI for inspecting primitive chain values",
	Long:         `A CLI application for encoding, decoding and validating names, symbols, assets, checksums, keys and signatures.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return fmt.Errorf("failed to get verbose flag: %w", err)
		}
		if err := initLogger(verbose); err != nil {
			return err
		}
		return loadConfig()
	},
}

func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (text or json)")
	rootCmd.PersistentFlags().String("legacy-prefix", "", "Prefix of legacy public keys (default EOS)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug information to stderr")
}

func main() {
	Execute()
}
