/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

// Package prepared compiles a deserialized base file into a form where every
// expression string has been parsed. Downstream evaluation works on these
// structures and never re-parses strings.
package prepared

import (
	"fmt"

	"github.com/notebase/notebase/core/expr"
	"github.com/notebase/notebase/core/schema"
)

// Base is a base file with all of its expressions parsed.
type Base struct {
	Original   *schema.BaseFile
	Filters    *Filter
	Formulas   map[string]expr.Expr
	Properties map[string]schema.PropertyConfig
	Views      []View
}

// View is a view with parsed filters and a validated order list.
type View struct {
	Type       schema.ViewType
	Name       string
	Filters    *Filter
	Order      []expr.PropertyRef
	Limit      *int
	Sort       []schema.SortField
	Image      string
	ColumnSize map[string]int
}

// FilterOp distinguishes the combinator kinds of a prepared filter node.
type FilterOp int

const (
	// FilterExpr is a leaf holding a parsed expression.
	FilterExpr FilterOp = iota
	// FilterAnd matches when every child matches.
	FilterAnd
	// FilterOr matches when any child matches.
	FilterOr
	// FilterNot matches when no child matches.
	FilterNot
)

// Filter is a filter tree with expressions parsed. Leaves carry Expr;
// combinators carry Children.
type Filter struct {
	Op       FilterOp
	Children []Filter
	Expr     expr.Expr
}

// FromBase compiles a base file, validating view names and parsing every
// filter, formula, and order entry. Errors name the location of the failing
// expression within the file.
func FromBase(base *schema.BaseFile) (*Base, error) {
	if err := ensureUniqueViewNames(base); err != nil {
		return nil, err
	}

	var filters *Filter
	if base.Filters != nil {
		compiled, err := compileFilterNode(base.Filters, "base.filters")
		if err != nil {
			return nil, err
		}
		filters = &compiled
	}

	formulas := make(map[string]expr.Expr, len(base.Formulas))
	for name, src := range base.Formulas {
		parsed, err := expr.Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse formula '%s': %w", name, err)
		}
		formulas[name] = parsed
	}

	views := make([]View, 0, len(base.Views))
	for idx := range base.Views {
		view, err := compileView(&base.Views[idx], idx)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return &Base{
		Original:   base,
		Filters:    filters,
		Formulas:   formulas,
		Properties: base.Properties,
		Views:      views,
	}, nil
}

// Compile parses a .base document and prepares it in one step.
func Compile(data []byte) (*Base, error) {
	base, err := schema.Parse(data)
	if err != nil {
		return nil, err
	}
	return FromBase(base)
}

// Load reads, parses, and prepares a .base file from disk.
func Load(path string) (*Base, error) {
	base, err := schema.Load(path)
	if err != nil {
		return nil, err
	}
	return FromBase(base)
}

// View returns the view with the given name, or the first view when name is
// empty. The second result reports whether a view was found.
func (b *Base) View(name string) (*View, bool) {
	if name == "" {
		if len(b.Views) == 0 {
			return nil, false
		}
		return &b.Views[0], true
	}
	for i := range b.Views {
		if b.Views[i].Name == name {
			return &b.Views[i], true
		}
	}
	return nil, false
}

func ensureUniqueViewNames(base *schema.BaseFile) error {
	seen := make(map[string]int)
	for idx, view := range base.Views {
		if view.Name == "" {
			continue
		}
		if previous, ok := seen[view.Name]; ok {
			return fmt.Errorf("duplicate view name '%s' detected at indices %d and %d", view.Name, previous, idx)
		}
		seen[view.Name] = idx
	}
	return nil
}

func compileView(view *schema.View, index int) (View, error) {
	context := viewContext(view, index)

	var filters *Filter
	if view.Filters != nil {
		compiled, err := compileFilterNode(view.Filters, context+".filters")
		if err != nil {
			return View{}, err
		}
		filters = &compiled
	}

	order, err := parseOrder(view.Order, context+".order")
	if err != nil {
		return View{}, err
	}

	return View{
		Type:       view.Type,
		Name:       view.Name,
		Filters:    filters,
		Order:      order,
		Limit:      view.Limit,
		Sort:       view.Sort,
		Image:      view.Image,
		ColumnSize: view.ColumnSize,
	}, nil
}

func compileFilterNode(node *schema.FilterNode, context string) (Filter, error) {
	compileChildren := func(children []schema.FilterNode, key string) ([]Filter, error) {
		compiled := make([]Filter, 0, len(children))
		for idx := range children {
			child, err := compileFilterNode(&children[idx], fmt.Sprintf("%s.%s[%d]", context, key, idx))
			if err != nil {
				return nil, err
			}
			compiled = append(compiled, child)
		}
		return compiled, nil
	}

	switch {
	case node.And != nil:
		children, err := compileChildren(node.And, "and")
		if err != nil {
			return Filter{}, err
		}
		return Filter{Op: FilterAnd, Children: children}, nil
	case node.Or != nil:
		children, err := compileChildren(node.Or, "or")
		if err != nil {
			return Filter{}, err
		}
		return Filter{Op: FilterOr, Children: children}, nil
	case node.Not != nil:
		children, err := compileChildren(node.Not, "not")
		if err != nil {
			return Filter{}, err
		}
		return Filter{Op: FilterNot, Children: children}, nil
	}

	parsed, err := expr.Parse(node.Expression)
	if err != nil {
		return Filter{}, fmt.Errorf("failed to parse filter expression at %s: %w", context, err)
	}
	return Filter{Op: FilterExpr, Expr: parsed}, nil
}

func parseOrder(entries []string, context string) ([]expr.PropertyRef, error) {
	order := make([]expr.PropertyRef, 0, len(entries))
	for idx, entry := range entries {
		parsed, err := expr.Parse(entry)
		if err != nil {
			return nil, fmt.Errorf("failed to parse order entry '%s' at %s[%d]: %w", entry, context, idx, err)
		}
		prop, ok := parsed.(*expr.Property)
		if !ok {
			return nil, fmt.Errorf("order entry '%s' at %s[%d] must be a property reference", entry, context, idx)
		}
		order = append(order, prop.Ref)
	}
	return order, nil
}

func viewContext(view *schema.View, index int) string {
	if view.Name != "" {
		return fmt.Sprintf("view '%s' (index %d)", view.Name, index)
	}
	return fmt.Sprintf("view at index %d", index)
}
