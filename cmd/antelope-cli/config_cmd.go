// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/ava-labs/antelope-types/utils"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show CLI configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		values := make(map[string]string, len(configKeys))
		utils.ForEach(func(key string) {
			values[key] = viper.GetString(key)
		}, configKeys)
		return printValue(cmd, configCmdResponse{
			File:   viper.ConfigFileUsed(),
			Values: values,
		})
	},
}

type configCmdResponse struct {
	File   string            `json:"file"`
	Values map[string]string `json:"values"`
}

func (r configCmdResponse) String() string {
	lines := utils.Map(func(key string) string {
		return key + ": " + r.Values[key]
	}, configKeys)
	return strings.Join(lines, "\n")
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !slices.Contains(configKeys, key) {
			return fmt.Errorf("unknown config key %q (expected one of %s)", key, strings.Join(configKeys, ", "))
		}
		if key == outputKey && value != "text" && value != "json" {
			return fmt.Errorf("invalid output format %q", value)
		}

		if err := setConfigValue(key, value); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		logger.Debug("config updated",
			zap.String("key", key),
			zap.String("value", value),
			zap.String("file", viper.ConfigFileUsed()),
		)

		return printValue(cmd, configSetCmdResponse{
			Key:   key,
			Value: value,
		})
	},
}

type configSetCmdResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r configSetCmdResponse) String() string {
	return r.Key + " set to: " + r.Value
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
}
