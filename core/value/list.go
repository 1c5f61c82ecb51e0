/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package value

import (
	"sort"
	"strings"
)

// Methods and fields available on list values.

var listMethods = map[string]methodFunc{
	"contains":    listContains,
	"join":        listJoin,
	"isEmpty":     listIsEmpty,
	"containsAll": listContainsAll,
	"containsAny": listContainsAny,
	"reverse":     listReverse,
	"sort":        listSort,
	"flat":        listFlat,
	"unique":      listUnique,
	"slice":       listSlice,
	"first":       listFirst,
	"last":        listLast,
}

var listFields = map[string]fieldFunc{
	"length": func(v Value) Value {
		return NewInt(int64(len(v.list)))
	},
}

func listHas(items []Value, needle Value) bool {
	for _, item := range items {
		if item.Equals(needle) {
			return true
		}
	}
	return false
}

func listContains(v Value, args []Value) (Value, error) {
	if err := exactArgs(args, 1); err != nil {
		return Value{}, err
	}
	return NewBool(listHas(v.list, args[0])), nil
}

// listJoin joins the display form of every element with a separator.
func listJoin(v Value, args []Value) (Value, error) {
	if err := exactArgs(args, 1); err != nil {
		return Value{}, err
	}
	sep, err := stringArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	parts := make([]string, len(v.list))
	for i, item := range v.list {
		parts[i] = item.String()
	}
	return NewString(strings.Join(parts, sep)), nil
}

func listIsEmpty(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	return NewBool(len(v.list) == 0), nil
}

func listContainsAll(v Value, args []Value) (Value, error) {
	if len(args) == 0 {
		return Value{}, &ArgumentCountError{Expected: 1, Found: 0}
	}
	for _, needle := range args {
		if !listHas(v.list, needle) {
			return NewBool(false), nil
		}
	}
	return NewBool(true), nil
}

func listContainsAny(v Value, args []Value) (Value, error) {
	if len(args) == 0 {
		return Value{}, &ArgumentCountError{Expected: 1, Found: 0}
	}
	for _, needle := range args {
		if listHas(v.list, needle) {
			return NewBool(true), nil
		}
	}
	return NewBool(false), nil
}

func listReverse(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	reversed := make([]Value, len(v.list))
	for i, item := range v.list {
		reversed[len(v.list)-1-i] = item
	}
	return NewList(reversed), nil
}

// listSort orders elements by value comparison; incomparable pairs fall back
// to type name, then display form.
func listSort(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	sorted := make([]Value, len(v.list))
	copy(sorted, v.list)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if ord, err := a.Compare(b); err == nil {
			return ord < 0
		}
		if a.TypeName() != b.TypeName() {
			return a.TypeName() < b.TypeName()
		}
		return a.String() < b.String()
	})
	return NewList(sorted), nil
}

// listFlat flattens nested lists one level deep.
func listFlat(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	var flattened []Value
	for _, item := range v.list {
		if item.kind == KindList {
			flattened = append(flattened, item.list...)
		} else {
			flattened = append(flattened, item)
		}
	}
	return NewList(flattened), nil
}

// listUnique removes duplicates, keeping first occurrences. Quadratic in
// the list length.
func listUnique(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	var seen []Value
	for _, item := range v.list {
		if !listHas(seen, item) {
			seen = append(seen, item)
		}
	}
	return NewList(seen), nil
}

// listSlice returns the elements from start to end (exclusive) with
// Python-style negative indices clamped to the list.
func listSlice(v Value, args []Value) (Value, error) {
	if len(args) == 0 || len(args) > 2 {
		return Value{}, &ArgumentCountError{Expected: 1, Found: len(args)}
	}
	start, end, err := sliceBounds(args, len(v.list))
	if err != nil {
		return Value{}, err
	}
	if start >= end {
		return NewList(nil), nil
	}
	return NewList(v.list[start:end]), nil
}

func listFirst(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	if len(v.list) == 0 {
		return Null(), nil
	}
	return v.list[0], nil
}

func listLast(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	if len(v.list) == 0 {
		return Null(), nil
	}
	return v.list[len(v.list)-1], nil
}
