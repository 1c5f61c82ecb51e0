/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notebase/notebase/core/eval"
	"github.com/notebase/notebase/core/expr"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR",
	Short: "Evaluate a standalone expression",
	Long: `Eval parses and evaluates an expression without a note context.
Property references resolve to null.

Examples:
  notebase eval '1 + 2 * 3'
  notebase eval 'duration("1d 2h") + duration("30m")'
  notebase eval 'date("2025-03-10").format("MMMM D, YYYY")'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := expr.Parse(args[0])
		if err != nil {
			return err
		}
		result, err := eval.New().Eval(parsed, &eval.Context{})
		if err != nil {
			return err
		}
		fmt.Println(result.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
