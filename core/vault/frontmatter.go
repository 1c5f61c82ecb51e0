/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package vault

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/notebase/notebase/core/value"
)

// SplitFrontmatter separates a leading YAML frontmatter block from the note
// body. The block starts with "---" on the first line and ends at the next
// line that is exactly "---". Notes without a block return a nil
// frontmatter and the unchanged text.
func SplitFrontmatter(text string) (*value.Frontmatter, string, error) {
	rest, ok := strings.CutPrefix(text, "---\n")
	if !ok {
		if text == "---" || strings.HasPrefix(text, "---\r\n") {
			rest = strings.TrimPrefix(strings.TrimPrefix(text, "---"), "\r\n")
		} else {
			return nil, text, nil
		}
	}

	block, body, ok := cutFence(rest)
	if !ok {
		// An unterminated block makes the whole note frontmatter.
		block, body = rest, ""
	}
	front, err := parseFrontmatter(block)
	if err != nil {
		return nil, "", err
	}
	return front, body, nil
}

// cutFence splits at the first line that is exactly "---".
func cutFence(text string) (before, after string, found bool) {
	offset := 0
	for {
		idx := strings.Index(text[offset:], "---")
		if idx < 0 {
			return text, "", false
		}
		start := offset + idx
		end := start + 3
		atLineStart := start == 0 || text[start-1] == '\n'
		line := text[end:]
		atLineEnd := line == "" || strings.HasPrefix(line, "\n") || strings.HasPrefix(line, "\r\n")
		if atLineStart && atLineEnd {
			after = strings.TrimPrefix(strings.TrimPrefix(text[end:], "\r"), "\n")
			return text[:start], after, true
		}
		offset = end
	}
}

// fmDoc is the raw shape of the frontmatter block. Known fields decode into
// their own slots; everything else is collected by the inline map.
type fmDoc struct {
	Tags       yaml.Node            `yaml:"tags"`
	Aliases    yaml.Node            `yaml:"aliases"`
	CSSClasses yaml.Node            `yaml:"cssclasses"`
	Extra      map[string]yaml.Node `yaml:",inline"`
}

func parseFrontmatter(block string) (*value.Frontmatter, error) {
	if strings.TrimSpace(block) == "" {
		return &value.Frontmatter{}, nil
	}
	var doc fmDoc
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}

	front := &value.Frontmatter{}
	var err error
	if front.Tags, err = stringListNode(&doc.Tags, "tags"); err != nil {
		return nil, err
	}
	if front.Aliases, err = stringListNode(&doc.Aliases, "aliases"); err != nil {
		return nil, err
	}
	if front.CSSClasses, err = stringListNode(&doc.CSSClasses, "cssclasses"); err != nil {
		return nil, err
	}
	if len(doc.Extra) > 0 {
		front.Extra = make(map[string]value.Value, len(doc.Extra))
		for name, node := range doc.Extra {
			val, err := yamlToValue(&node)
			if err != nil {
				return nil, fmt.Errorf("frontmatter property %s: %w", name, err)
			}
			front.Extra[name] = val
		}
	}
	return front, nil
}

// stringListNode accepts a sequence of strings or a single string, which
// some notes use for one-element tag lists.
func stringListNode(node *yaml.Node, field string) ([]string, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, fmt.Errorf("frontmatter %s: %w", field, err)
		}
		return []string{s}, nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return nil, fmt.Errorf("frontmatter %s: %w", field, err)
		}
		return items, nil
	}
	return nil, fmt.Errorf("frontmatter %s must be a string or list of strings", field)
}

// yamlToValue converts an arbitrary YAML node into an expression value.
// Timestamps become datetimes; everything else maps onto the obvious kind.
func yamlToValue(node *yaml.Node) (value.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return value.Null(), nil
		}
		return yamlToValue(node.Content[0])
	case yaml.ScalarNode:
		return scalarToValue(node)
	case yaml.SequenceNode:
		items := make([]value.Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := yamlToValue(child)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, item)
		}
		return value.NewList(items), nil
	case yaml.MappingNode:
		entries := make(map[string]value.Value, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			item, err := yamlToValue(node.Content[i+1])
			if err != nil {
				return value.Value{}, err
			}
			entries[node.Content[i].Value] = item
		}
		return value.NewObject(entries), nil
	case yaml.AliasNode:
		return yamlToValue(node.Alias)
	}
	return value.Null(), nil
}

func scalarToValue(node *yaml.Node) (value.Value, error) {
	switch node.Tag {
	case "!!null":
		return value.Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return value.Value{}, err
		}
		return value.NewBool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return value.Value{}, err
		}
		return value.NewInt(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return value.Value{}, err
		}
		return value.NewFloat(f), nil
	case "!!timestamp":
		var t time.Time
		if err := node.Decode(&t); err != nil {
			return value.Value{}, err
		}
		return value.NewDateTime(t), nil
	}
	// Dates are usually written unquoted, which YAML 1.1 resolves as
	// strings unless the timestamp tag applies. Recognize the common
	// forms here.
	if t, err := time.ParseInLocation("2006-01-02", node.Value, time.Local); err == nil && node.Style == 0 {
		return value.NewDateTime(t), nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", node.Value, time.Local); err == nil && node.Style == 0 {
		return value.NewDateTime(t), nil
	}
	return value.NewString(node.Value), nil
}
