/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package functions

import (
	"strconv"
	"time"

	"github.com/oarkflow/date"

	"github.com/notebase/notebase/core/value"
)

// ifFn returns the second argument when the condition holds, otherwise the
// third (or null when absent). Arguments are evaluated eagerly by the
// caller; the condition must be a boolean.
func ifFn(args []value.Value) (value.Value, error) {
	if len(args) > 3 {
		return value.Value{}, &value.ArgumentCountError{Expected: 2, Found: len(args)}
	}
	if len(args) == 0 {
		return value.Value{}, &value.ArgumentCountError{Expected: 2, Found: 0}
	}
	cond := args[0]
	if cond.Kind() != value.KindBoolean {
		return value.Value{}, &value.ArgumentTypeError{Index: 1, Found: cond.TypeName(), Expected: "boolean"}
	}
	if len(args) < 2 {
		return value.Value{}, &value.ArgumentCountError{Expected: 2, Found: len(args)}
	}
	if cond.Bool() {
		return args[1], nil
	}
	if len(args) == 3 {
		return args[2], nil
	}
	return value.Null(), nil
}

func nowFn(args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return value.Value{}, &value.ArgumentCountError{Expected: 0, Found: len(args)}
	}
	return value.NewDateTime(time.Now()), nil
}

// todayFn returns midnight local time of the current day.
func todayFn(args []value.Value) (value.Value, error) {
	if len(args) != 0 {
		return value.Value{}, &value.ArgumentCountError{Expected: 0, Found: len(args)}
	}
	year, month, day := time.Now().Date()
	return value.NewDateTime(time.Date(year, month, day, 0, 0, 0, 0, time.Local)), nil
}

// durationFn parses compound duration strings like "1d 2h30m".
func durationFn(args []value.Value) (value.Value, error) {
	s, err := singleString(args)
	if err != nil {
		return value.Value{}, err
	}
	d, err := value.ParseDuration(s)
	if err != nil {
		return value.Value{}, err
	}
	return value.NewDuration(d), nil
}

// listFn wraps its argument in a list; lists pass through unchanged.
func listFn(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, &value.ArgumentCountError{Expected: 1, Found: len(args)}
	}
	item := args[0]
	if item.Kind() == value.KindList {
		return item, nil
	}
	return value.NewList([]value.Value{item}), nil
}

// numberFn coerces strings, booleans, datetimes, and durations to numbers.
// Datetimes and durations convert to milliseconds.
func numberFn(args []value.Value) (value.Value, error) {
	if len(args) != 1 {
		return value.Value{}, &value.ArgumentCountError{Expected: 1, Found: len(args)}
	}
	item := args[0]
	switch item.Kind() {
	case value.KindNumber:
		return item, nil
	case value.KindString:
		if i, err := strconv.ParseInt(item.Str(), 10, 64); err == nil {
			return value.NewInt(i), nil
		}
		f, err := strconv.ParseFloat(item.Str(), 64)
		if err != nil {
			return value.Value{}, value.Callf("could not parse string '%s' as a number: %v", item.Str(), err)
		}
		return value.NewFloat(f), nil
	case value.KindBoolean:
		if item.Bool() {
			return value.NewInt(1), nil
		}
		return value.NewInt(0), nil
	case value.KindDateTime:
		return value.NewInt(item.Time().UnixMilli()), nil
	case value.KindDuration:
		return value.NewInt(item.Duration().Milliseconds()), nil
	case value.KindNull:
		return value.Value{}, &value.ArgumentTypeError{Index: 1, Found: item.TypeName(), Expected: "non-null"}
	}
	return value.Value{}, &value.ArgumentTypeError{Index: 1, Found: item.TypeName(), Expected: "number"}
}

// linkFn builds a link from a string or file target, with an optional
// display text.
func linkFn(args []value.Value) (value.Value, error) {
	if len(args) > 2 {
		return value.Value{}, &value.ArgumentCountError{Expected: 2, Found: len(args)}
	}
	if len(args) == 0 {
		return value.Value{}, &value.ArgumentCountError{Expected: 1, Found: 0}
	}

	var target string
	switch arg := args[0]; arg.Kind() {
	case value.KindString:
		target = arg.Str()
	case value.KindFile:
		target = arg.File().Path
	default:
		return value.Value{}, &value.ArgumentTypeError{Index: 1, Found: arg.TypeName(), Expected: "string or file"}
	}

	display := ""
	if len(args) == 2 {
		arg := args[1]
		if arg.Kind() != value.KindString {
			return value.Value{}, &value.ArgumentTypeError{Index: 2, Found: arg.TypeName(), Expected: "string"}
		}
		display = arg.Str()
	}
	return value.NewLink(target, display), nil
}

// dateLayouts are tried in order of specificity before falling back to
// permissive parsing.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// dateFn parses a datetime string. The documented format is
// "YYYY-MM-DD HH:mm:ss"; ISO 8601 variants and bare dates are accepted, and
// anything else goes through a permissive fallback parser.
func dateFn(args []value.Value) (value.Value, error) {
	s, err := singleString(args)
	if err != nil {
		return value.Value{}, err
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return value.NewDateTime(t), nil
		}
	}
	if t, err := date.Parse(s); err == nil {
		return value.NewDateTime(t), nil
	}
	return value.Value{}, value.Callf(
		"could not parse '%s' as a date. Expected format: YYYY-MM-DD HH:mm:ss", s)
}

func minFn(args []value.Value) (value.Value, error) {
	return fold(args, func(best, next float64) bool { return next < best })
}

func maxFn(args []value.Value) (value.Value, error) {
	return fold(args, func(best, next float64) bool { return next > best })
}

// fold reduces numeric arguments with the given preference, requiring at
// least one argument and rejecting non-numbers by index.
func fold(args []value.Value, better func(best, next float64) bool) (value.Value, error) {
	if len(args) == 0 {
		return value.Value{}, &value.ArgumentCountError{Expected: 1, Found: 0}
	}
	best := args[0]
	for i, arg := range args {
		if arg.Kind() != value.KindNumber {
			return value.Value{}, &value.ArgumentTypeError{Index: i, Found: arg.TypeName(), Expected: "number"}
		}
		if i > 0 && better(best.Float64(), arg.Float64()) {
			best = arg
		}
	}
	return best, nil
}

// singleString fetches the only argument as a string, mirroring the
// argument numbering of the other builtins.
func singleString(args []value.Value) (string, error) {
	if len(args) == 0 {
		return "", &value.ArgumentCountError{Expected: 1, Found: 0}
	}
	if len(args) > 1 {
		return "", &value.ArgumentCountError{Expected: 1, Found: len(args)}
	}
	arg := args[0]
	if arg.Kind() != value.KindString {
		return "", &value.ArgumentTypeError{Index: 1, Found: arg.TypeName(), Expected: "string"}
	}
	return arg.Str(), nil
}
