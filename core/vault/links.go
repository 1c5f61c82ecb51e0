/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package vault

import (
	"regexp"
	"strings"
)

var (
	wikiLinkRe     = regexp.MustCompile(`\[\[([^\[\]]+)\]\]`)
	markdownLinkRe = regexp.MustCompile(`\[[^\[\]]*\]\(([^()\s]+)\)`)
	inlineTagRe    = regexp.MustCompile(`(^|\s)#([A-Za-z0-9][A-Za-z0-9_/-]*)`)
)

// ExtractLinks returns the link targets of a note body in order of
// appearance. Wiki links strip the |display and #heading parts; markdown
// links keep only .md targets, since external URLs are not notes.
func ExtractLinks(body string) []string {
	var links []string
	seen := make(map[string]bool)
	add := func(target string) {
		target = strings.TrimSpace(target)
		if target == "" || seen[target] {
			return
		}
		seen[target] = true
		links = append(links, target)
	}

	for _, match := range wikiLinkRe.FindAllStringSubmatch(body, -1) {
		target := match[1]
		if idx := strings.IndexByte(target, '|'); idx >= 0 {
			target = target[:idx]
		}
		if idx := strings.IndexByte(target, '#'); idx >= 0 {
			target = target[:idx]
		}
		add(target)
	}
	for _, match := range markdownLinkRe.FindAllStringSubmatch(body, -1) {
		target := match[1]
		if idx := strings.IndexByte(target, '#'); idx >= 0 {
			target = target[:idx]
		}
		if strings.HasSuffix(target, ".md") {
			add(target)
		}
	}
	return links
}

// ExtractInlineTags returns #tags found in the body. Headings start with
// "# " and are not tags, which the tag pattern rules out by requiring a
// non-space character after the hash.
func ExtractInlineTags(body string) []string {
	var tags []string
	for _, match := range inlineTagRe.FindAllStringSubmatch(body, -1) {
		tags = append(tags, match[2])
	}
	return tags
}
