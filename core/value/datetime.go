/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package value

import "time"

// Methods and fields available on datetime values.

var dateMethods = map[string]methodFunc{
	"date":    dateDate,
	"format":  dateFormat,
	"time":    dateTime,
	"isEmpty": dateIsEmpty,
}

var dateFields = map[string]fieldFunc{
	"year":   func(v Value) Value { return NewInt(int64(v.t.Year())) },
	"month":  func(v Value) Value { return NewInt(int64(v.t.Month())) },
	"day":    func(v Value) Value { return NewInt(int64(v.t.Day())) },
	"hour":   func(v Value) Value { return NewInt(int64(v.t.Hour())) },
	"minute": func(v Value) Value { return NewInt(int64(v.t.Minute())) },
	"second": func(v Value) Value { return NewInt(int64(v.t.Second())) },
	"millisecond": func(v Value) Value {
		return NewInt(int64(v.t.Nanosecond() / 1_000_000))
	},
}

// dateDate strips the time portion, keeping midnight of the same day.
func dateDate(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	year, month, day := v.t.Date()
	return NewDateTime(time.Date(year, month, day, 0, 0, 0, 0, v.t.Location())), nil
}

// dateFormat formats the datetime using a moment.js format pattern.
func dateFormat(v Value, args []Value) (Value, error) {
	if err := exactArgs(args, 1); err != nil {
		return Value{}, err
	}
	pattern, err := stringArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	return NewString(v.t.Format(MomentLayout(pattern))), nil
}

// dateTime returns the time portion as an HH:mm:ss string.
func dateTime(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	return NewString(v.t.Format("15:04:05")), nil
}

// dateIsEmpty always reports false; dates are never empty.
func dateIsEmpty(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	return NewBool(false), nil
}
