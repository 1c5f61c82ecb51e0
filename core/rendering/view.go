/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

// Package rendering runs prepared views over a vault and renders the
// results. A view run filters the notes, sorts them by the view's sort
// fields, applies the limit, and evaluates the order columns into display
// strings. Output formats are an ASCII table, HTML, and JSON.
package rendering

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notebase/notebase/core/eval"
	"github.com/notebase/notebase/core/expr"
	"github.com/notebase/notebase/core/prepared"
	"github.com/notebase/notebase/core/schema"
	"github.com/notebase/notebase/core/value"
	"github.com/notebase/notebase/core/vault"
)

// Column is one output column of a view run.
type Column struct {
	// Key is the property reference as written, e.g. "file.name".
	Key string
	// Header is the display name, falling back to Key.
	Header string
}

// Result holds the rows of a view run, formatted for output.
type Result struct {
	View    string
	Columns []Column
	// Rows map column keys to display strings, in final order.
	Rows []map[string]string
	// Total counts the notes that matched the filters before the limit.
	Total   int
	HasMore bool
	// Skipped counts notes dropped because a filter or column errored.
	// A failing predicate means the note does not match.
	Skipped int
}

// RunView executes a prepared view against the vault's notes.
func RunView(base *prepared.Base, view *prepared.View, v *vault.Vault) (*Result, error) {
	ev := eval.New()

	type item struct {
		ctx  *eval.Context
		keys []sortKey
	}

	sortProps, err := parseSortFields(view.Sort)
	if err != nil {
		return nil, err
	}

	result := &Result{View: view.Name, Columns: viewColumns(base, view)}

	var matched []item
	for i := range v.Notes {
		note := &v.Notes[i]
		ctx := &eval.Context{
			Note:     note.Properties(),
			File:     note.FileValue(),
			Formulas: base.Formulas,
		}
		ok, err := ev.Matches(base.Filters, ctx)
		if err == nil && ok {
			ok, err = ev.Matches(view.Filters, ctx)
		}
		if err != nil {
			result.Skipped++
			continue
		}
		if !ok {
			continue
		}
		keys, err := evalSortKeys(ev, ctx, sortProps)
		if err != nil {
			result.Skipped++
			continue
		}
		matched = append(matched, item{ctx: ctx, keys: keys})
	}
	result.Total = len(matched)

	if len(sortProps) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			return lessSortKeys(matched[i].keys, matched[j].keys)
		})
	}

	if view.Limit != nil && *view.Limit >= 0 && len(matched) > *view.Limit {
		matched = matched[:*view.Limit]
		result.HasMore = true
	}

	for _, it := range matched {
		row := make(map[string]string, len(result.Columns))
		for i, ref := range view.Order {
			cell, err := ev.Eval(&expr.Property{Ref: ref}, it.ctx)
			if err != nil {
				return nil, fmt.Errorf("evaluating column %s: %w", result.Columns[i].Key, err)
			}
			row[result.Columns[i].Key] = cell.String()
		}
		result.Rows = append(result.Rows, row)
	}
	return result, nil
}

// viewColumns resolves the output columns: the view's order list with
// display names from the base's property configuration.
func viewColumns(base *prepared.Base, view *prepared.View) []Column {
	columns := make([]Column, 0, len(view.Order))
	for _, ref := range view.Order {
		key := propertyKey(ref)
		header := key
		if cfg, ok := base.Properties[key]; ok && cfg.DisplayName != "" {
			header = cfg.DisplayName
		}
		columns = append(columns, Column{Key: key, Header: header})
	}
	return columns
}

// propertyKey renders a property reference the way base files write them:
// the note namespace is implicit.
func propertyKey(ref expr.PropertyRef) string {
	if ref.Namespace == expr.NamespaceNote {
		s := ""
		for i, seg := range ref.Path {
			if i > 0 {
				s += "."
			}
			s += seg
		}
		return s
	}
	return ref.String()
}

type sortProp struct {
	expr       expr.Expr
	descending bool
}

type sortKey struct {
	val        value.Value
	descending bool
}

func parseSortFields(fields []schema.SortField) ([]sortProp, error) {
	props := make([]sortProp, 0, len(fields))
	for _, field := range fields {
		parsed, err := expr.Parse(field.Property)
		if err != nil {
			return nil, fmt.Errorf("parsing sort property '%s': %w", field.Property, err)
		}
		props = append(props, sortProp{
			expr:       parsed,
			descending: field.Direction == schema.SortDesc,
		})
	}
	return props, nil
}

func evalSortKeys(ev *eval.Evaluator, ctx *eval.Context, props []sortProp) ([]sortKey, error) {
	keys := make([]sortKey, 0, len(props))
	for _, prop := range props {
		val, err := ev.Eval(prop.expr, ctx)
		if err != nil {
			return nil, err
		}
		keys = append(keys, sortKey{val: val, descending: prop.descending})
	}
	return keys, nil
}

func lessSortKeys(a, b []sortKey) bool {
	for i := range a {
		cmp := compareCells(a[i].val, b[i].val)
		if cmp == 0 {
			continue
		}
		if a[i].descending {
			return cmp > 0
		}
		return cmp < 0
	}
	return false
}

// compareCells orders mixed-type cells: comparable values use the language
// ordering, everything else falls back to type name then display string.
func compareCells(a, b value.Value) int {
	if cmp, err := a.Compare(b); err == nil {
		return cmp
	}
	if a.TypeName() != b.TypeName() {
		return strings.Compare(a.TypeName(), b.TypeName())
	}
	return strings.Compare(a.String(), b.String())
}
