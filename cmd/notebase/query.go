/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package main

import (
	"fmt"
	"os"

	"github.com/oarkflow/log"
	"github.com/spf13/cobra"

	"github.com/notebase/notebase/core/prepared"
	"github.com/notebase/notebase/core/rendering"
	"github.com/notebase/notebase/core/vault"
)

var (
	queryView   string
	queryFormat string
)

var queryCmd = &cobra.Command{
	Use:   "query VAULT BASE",
	Short: "Run a base file's view against a vault",
	Long: `Query loads the vault, prepares the base file, runs the selected
view, and prints the result.

Examples:
  notebase query ./vault books.base
  notebase query ./vault books.base --view "My table" --format json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vaultPath, basePath := args[0], args[1]

		base, err := prepared.Load(basePath)
		if err != nil {
			return err
		}
		view, ok := base.View(queryView)
		if !ok {
			if queryView == "" {
				return fmt.Errorf("base file %s defines no views", basePath)
			}
			return fmt.Errorf("base file %s has no view named '%s'", basePath, queryView)
		}

		v, err := vault.Read(vaultPath)
		if err != nil {
			return err
		}

		result, err := rendering.RunView(base, view, v)
		if err != nil {
			return err
		}
		if result.Skipped > 0 {
			log.Warn().Int("notes", result.Skipped).Msg("skipped notes with failing filters")
		}

		switch queryFormat {
		case "table":
			fmt.Print(result.ToAscii())
			return nil
		case "html":
			renderer, err := rendering.NewHTMLRenderer()
			if err != nil {
				return err
			}
			return renderer.Render(os.Stdout, result)
		case "json":
			return result.RenderJSON(os.Stdout)
		}
		return fmt.Errorf("unknown format '%s', want table, html, or json", queryFormat)
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryView, "view", "", "View name (default: first view)")
	queryCmd.Flags().StringVar(&queryFormat, "format", "table", "Output format: table, html, or json")
	rootCmd.AddCommand(queryCmd)
}
