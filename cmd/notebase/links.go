/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package main

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/notebase/notebase/core/vault"
)

var linksCmd = &cobra.Command{
	Use:   "links VAULT",
	Short: "Print forward links and backlinks per file",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vault.Read(args[0])
		if err != nil {
			return err
		}

		// Link targets are written by stem or by path, so resolve both.
		backlinks := make(map[string][]string)
		byStem := make(map[string]string)
		for _, note := range v.Notes {
			base := path.Base(note.Path)
			byStem[strings.TrimSuffix(base, path.Ext(base))] = note.Path
		}
		resolve := func(target string) string {
			if resolved, ok := byStem[target]; ok {
				return resolved
			}
			return target
		}

		for _, note := range v.Notes {
			for _, target := range note.Links {
				resolved := resolve(target)
				backlinks[resolved] = append(backlinks[resolved], note.Path)
			}
		}

		for _, note := range v.Notes {
			fmt.Println(note.Path)
			for _, target := range note.Links {
				fmt.Printf("  -> %s\n", resolve(target))
			}
			back := backlinks[note.Path]
			sort.Strings(back)
			for _, source := range back {
				fmt.Printf("  <- %s\n", source)
			}
		}
		return nil
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(linksCmd)
}
