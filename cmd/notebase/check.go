/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notebase/notebase/core/prepared"
)

var checkCmd = &cobra.Command{
	Use:   "check BASE",
	Short: "Validate a base file",
	Long: `Check parses and prepares a base file, reporting the first error
with the location of the failing expression.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := prepared.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d views, %d formulas)\n", args[0], len(base.Views), len(base.Formulas))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
