// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/antelope-types/codec"
	"github.com/ava-labs/antelope-types/utils"
)

var (
	errMalformedLine = errors.New("expected <type>:<value>")
	errInvalidValues = errors.New("invalid values")
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a file of <type>:<value> lines",
	Long: `Each non-empty line that does not start with '#' must be of the form
<type>:<value>. Every value is parsed and its binary encoding round tripped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := utils.LoadBytes(args[0], -1)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		results, err := validateLines(cmd.Context(), strings.Split(string(b), "\n"))
		if err != nil {
			return err
		}
		utils.ForEach(func(r validationResult) {
			if r.Err != nil {
				utils.Outf("{{red}}%d: %s:%s{{/}} %v\n", r.Line, r.Type, r.Value, r.Err)
				return
			}
			utils.Outf("{{green}}%d: %s{{/}} %s\n", r.Line, r.Type, r.Value)
		}, results)
		invalid := utils.Filter(func(r validationResult) bool { return r.Err != nil }, results)
		if len(invalid) > 0 {
			return fmt.Errorf("%w: %d of %d", errInvalidValues, len(invalid), len(results))
		}
		return nil
	},
}

type validationResult struct {
	Line  int
	Type  string
	Value string
	Err   error
}

// validateLines checks every entry concurrently. Results are returned in
// input order, skipping blank lines and comments.
func validateLines(ctx context.Context, lines []string) ([]validationResult, error) {
	results := make([]validationResult, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r := validationResult{Line: i + 1}
		typ, value, ok := strings.Cut(line, ":")
		if !ok {
			r.Err = errMalformedLine
			r.Value = line
		} else {
			r.Type = strings.TrimSpace(typ)
			r.Value = strings.TrimSpace(value)
		}
		results = append(results, r)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.Err = validateValue(r.Type, r.Value)
			if r.Err != nil {
				logger.Debug("invalid value", zap.Int("line", r.Line), zap.Error(r.Err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// validateValue parses [value] and checks that its encoding decodes back
// to the same string.
func validateValue(typ, value string) error {
	v, err := parseValue(typ, value)
	if err != nil {
		return err
	}
	b, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode: %w", err)
	}
	decoded, err := unpackValue(typ, b)
	if err != nil {
		return fmt.Errorf("failed to decode encoding: %w", err)
	}
	if decoded.String() != v.String() {
		return fmt.Errorf("round trip changed %q to %q", v.String(), decoded.String())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
