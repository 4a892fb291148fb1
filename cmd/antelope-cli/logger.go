// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"go.uber.org/zap"
)

var logger = zap.NewNop()

// initLogger replaces the no-op logger with a development logger writing
// to stderr when [verbose] is set.
func initLogger(verbose bool) error {
	if !verbose {
		return nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l
	return nil
}
