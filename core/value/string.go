/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package value

import (
	"strings"
	"unicode/utf8"
)

// Methods and fields available on string values.

var stringMethods = map[string]methodFunc{
	"contains":    stringContains,
	"startsWith":  stringStartsWith,
	"endsWith":    stringEndsWith,
	"lower":       stringLower,
	"upper":       stringUpper,
	"trim":        stringTrim,
	"split":       stringSplit,
	"slice":       stringSlice,
	"replace":     stringReplace,
	"isEmpty":     stringIsEmpty,
	"containsAll": stringContainsAll,
	"containsAny": stringContainsAny,
}

var stringFields = map[string]fieldFunc{
	// length counts characters, not bytes.
	"length": func(v Value) Value {
		return NewInt(int64(utf8.RuneCountInString(v.str)))
	},
}

func stringContains(v Value, args []Value) (Value, error) {
	sub, err := stringArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	return NewBool(strings.Contains(v.str, sub)), nil
}

func stringStartsWith(v Value, args []Value) (Value, error) {
	prefix, err := stringArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	return NewBool(strings.HasPrefix(v.str, prefix)), nil
}

func stringEndsWith(v Value, args []Value) (Value, error) {
	suffix, err := stringArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	return NewBool(strings.HasSuffix(v.str, suffix)), nil
}

func stringLower(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	return NewString(strings.ToLower(v.str)), nil
}

func stringUpper(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	return NewString(strings.ToUpper(v.str)), nil
}

func stringTrim(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	return NewString(strings.TrimSpace(v.str)), nil
}

func stringSplit(v Value, args []Value) (Value, error) {
	sep, err := stringArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	parts := strings.Split(v.str, sep)
	items := make([]Value, len(parts))
	for i, part := range parts {
		items[i] = NewString(part)
	}
	return NewList(items), nil
}

// stringSlice returns the substring from start to end (exclusive), counted
// in characters, with Python-style negative indices clamped to the string.
func stringSlice(v Value, args []Value) (Value, error) {
	if len(args) == 0 || len(args) > 2 {
		return Value{}, &ArgumentCountError{Expected: 1, Found: len(args)}
	}
	runes := []rune(v.str)
	start, end, err := sliceBounds(args, len(runes))
	if err != nil {
		return Value{}, err
	}
	if start >= end {
		return NewString(""), nil
	}
	return NewString(string(runes[start:end])), nil
}

// sliceBounds resolves slice(start, end?) arguments against a length.
func sliceBounds(args []Value, length int) (int, int, error) {
	start, err := numberArg(args, 0)
	if err != nil {
		return 0, 0, err
	}
	startIdx := clampIndex(int(start), length)

	endIdx := length
	if len(args) == 2 {
		end, err := numberArg(args, 1)
		if err != nil {
			return 0, 0, err
		}
		endIdx = clampIndex(int(end), length)
	}
	return startIdx, endIdx, nil
}

func clampIndex(idx, length int) int {
	if idx < 0 {
		idx += length
		if idx < 0 {
			return 0
		}
		return idx
	}
	if idx > length {
		return length
	}
	return idx
}

func stringReplace(v Value, args []Value) (Value, error) {
	if err := exactArgs(args, 2); err != nil {
		return Value{}, err
	}
	pattern, err := stringArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	replacement, err := stringArg(args, 1)
	if err != nil {
		return Value{}, err
	}
	return NewString(strings.ReplaceAll(v.str, pattern, replacement)), nil
}

func stringIsEmpty(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	return NewBool(v.str == ""), nil
}

func stringContainsAll(v Value, args []Value) (Value, error) {
	if len(args) == 0 {
		return Value{}, &ArgumentCountError{Expected: 1, Found: 0}
	}
	for i := range args {
		sub, err := stringArg(args, i)
		if err != nil {
			return Value{}, err
		}
		if !strings.Contains(v.str, sub) {
			return NewBool(false), nil
		}
	}
	return NewBool(true), nil
}

func stringContainsAny(v Value, args []Value) (Value, error) {
	if len(args) == 0 {
		return Value{}, &ArgumentCountError{Expected: 1, Found: 0}
	}
	for i := range args {
		sub, err := stringArg(args, i)
		if err != nil {
			return Value{}, err
		}
		if strings.Contains(v.str, sub) {
			return NewBool(true), nil
		}
	}
	return NewBool(false), nil
}
