/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

// Package schema defines the structure of .base files: YAML documents that
// declare filters, formulas, property display options, and views. Parsing
// here is purely structural; expression strings stay unparsed until the
// prepared package compiles them.
package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BaseFile is the top-level structure of a .base file.
type BaseFile struct {
	Filters    *FilterNode               `yaml:"filters"`
	Formulas   map[string]string         `yaml:"formulas"`
	Properties map[string]PropertyConfig `yaml:"properties"`
	Views      []View                    `yaml:"views"`
}

// FilterNode is a recursive filter tree. A node is either a logical
// combinator (exactly one of And, Or, Not is non-nil) or a bare expression
// string. In YAML a combinator is a single-key mapping and an expression is
// a scalar.
type FilterNode struct {
	And        []FilterNode
	Or         []FilterNode
	Not        []FilterNode
	Expression string
}

// IsExpression reports whether the node is a leaf expression rather than a
// logical combinator.
func (n *FilterNode) IsExpression() bool {
	return n.And == nil && n.Or == nil && n.Not == nil
}

// UnmarshalYAML decodes either a scalar expression or a mapping with a
// single and/or/not key.
func (n *FilterNode) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("filter expression at line %d must be a string: %w", node.Line, err)
		}
		n.Expression = s
		return nil
	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return fmt.Errorf("filter node at line %d must have exactly one of and, or, not", node.Line)
		}
		key := node.Content[0].Value
		var children []FilterNode
		if err := node.Content[1].Decode(&children); err != nil {
			return fmt.Errorf("invalid %s filter at line %d: %w", key, node.Line, err)
		}
		switch key {
		case "and":
			n.And = children
		case "or":
			n.Or = children
		case "not":
			n.Not = children
		default:
			return fmt.Errorf("unknown filter operator %q at line %d, want and, or, or not", key, node.Line)
		}
		return nil
	}
	return fmt.Errorf("invalid filter node at line %d, want an expression string or an and/or/not mapping", node.Line)
}

// MarshalYAML emits the same shape UnmarshalYAML accepts.
func (n FilterNode) MarshalYAML() (any, error) {
	switch {
	case n.And != nil:
		return map[string][]FilterNode{"and": n.And}, nil
	case n.Or != nil:
		return map[string][]FilterNode{"or": n.Or}, nil
	case n.Not != nil:
		return map[string][]FilterNode{"not": n.Not}, nil
	}
	return n.Expression, nil
}

// PropertyConfig controls how a property is displayed in views.
type PropertyConfig struct {
	DisplayName string `yaml:"displayName"`
}

// View configures one view of the base.
type View struct {
	Type       ViewType       `yaml:"type"`
	Name       string         `yaml:"name"`
	Filters    *FilterNode    `yaml:"filters"`
	Order      []string       `yaml:"order"`
	Limit      *int           `yaml:"limit"`
	Sort       []SortField    `yaml:"sort"`
	Image      string         `yaml:"image"`
	ColumnSize map[string]int `yaml:"columnSize"`
}

// ViewType enumerates the supported view layouts.
type ViewType string

const (
	ViewTypeTable ViewType = "table"
	ViewTypeCards ViewType = "cards"
	ViewTypeList  ViewType = "list"
	ViewTypeMap   ViewType = "map"
)

// UnmarshalYAML validates the view type against the known set.
func (v *ViewType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch ViewType(s) {
	case ViewTypeTable, ViewTypeCards, ViewTypeList, ViewTypeMap:
		*v = ViewType(s)
		return nil
	}
	return fmt.Errorf("unknown view type %q at line %d, want table, cards, list, or map", s, node.Line)
}

// SortField describes one key of a view's sort order.
type SortField struct {
	Property  string        `yaml:"property"`
	Direction SortDirection `yaml:"direction"`
}

// SortDirection is either ASC or DESC.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// UnmarshalYAML validates the sort direction against the known set.
func (d *SortDirection) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch SortDirection(s) {
	case SortAsc, SortDesc:
		*d = SortDirection(s)
		return nil
	}
	return fmt.Errorf("unknown sort direction %q at line %d, want ASC or DESC", s, node.Line)
}

// Parse decodes a .base document.
func Parse(data []byte) (*BaseFile, error) {
	var base BaseFile
	if err := yaml.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("parsing base file: %w", err)
	}
	return &base, nil
}

// Load reads and decodes a .base file from disk.
func Load(path string) (*BaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading base file: %w", err)
	}
	return Parse(data)
}
