/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

// Command notebase queries vaults of markdown notes with .base files: YAML
// documents describing filters, formulas, and views over note properties.
package main

import (
	"fmt"
	"os"

	"github.com/oarkflow/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "notebase",
	Short: "Query markdown vaults with base files",
	Long: `Notebase reads a vault of markdown notes and runs .base files
against it: filters, formulas, and views over note properties.

Examples:
  notebase query ./vault books.base --view "My table"
  notebase check books.base
  notebase tags ./vault
  notebase links ./vault
  notebase eval '1 + 2 * 3'`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.DefaultLogger.Level = log.DebugLevel
		} else {
			log.DefaultLogger.Level = log.WarnLevel
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
