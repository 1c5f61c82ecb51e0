/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/notebase/notebase/core/vault"
)

var tagsFilter string

var tagsCmd = &cobra.Command{
	Use:   "tags VAULT",
	Short: "List tags with file counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := vault.Read(args[0])
		if err != nil {
			return err
		}

		counts := make(map[string]int)
		for _, note := range v.Notes {
			for _, tag := range note.Tags {
				counts[tag]++
			}
		}

		tags := make([]string, 0, len(counts))
		for tag := range counts {
			if tagsFilter != "" && tag != tagsFilter {
				continue
			}
			tags = append(tags, tag)
		}
		sort.Slice(tags, func(i, j int) bool {
			if counts[tags[i]] != counts[tags[j]] {
				return counts[tags[i]] > counts[tags[j]]
			}
			return tags[i] < tags[j]
		})

		for _, tag := range tags {
			fmt.Printf("%5d  #%s\n", counts[tag], tag)
		}
		return nil
	},
}

func init() {
	tagsCmd.Flags().StringVar(&tagsFilter, "filter", "", "Show only the given tag")
	rootCmd.AddCommand(tagsCmd)
}
