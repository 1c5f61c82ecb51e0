/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package value

import (
	"math"
	"strconv"
)

// Methods available on number values. Numbers have no fields.

var numberMethods = map[string]methodFunc{
	"toFixed": numberToFixed,
	"round":   numberRound,
	"abs":     numberAbs,
	"ceil":    numberCeil,
	"floor":   numberFloor,
	"isEmpty": numberIsEmpty,
}

// numberToFixed renders the number with a fixed number of decimal places.
func numberToFixed(v Value, args []Value) (Value, error) {
	if err := exactArgs(args, 1); err != nil {
		return Value{}, err
	}
	precision, err := numberArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	return NewString(strconv.FormatFloat(v.f, 'f', int(precision), 64)), nil
}

// numberRound rounds to the nearest integer, or to the given number of
// decimal places. Negative digit counts round to powers of ten.
func numberRound(v Value, args []Value) (Value, error) {
	if len(args) > 1 {
		return Value{}, &ArgumentCountError{Expected: 1, Found: len(args)}
	}
	if len(args) == 0 {
		return NewFloat(math.Round(v.f)), nil
	}
	digits, err := numberArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	switch d := int(digits); {
	case d > 0:
		multiplier := math.Pow(10, float64(d))
		return NewFloat(math.Round(v.f*multiplier) / multiplier), nil
	case d < 0:
		multiplier := math.Pow(10, float64(-d))
		return NewFloat(math.Round(v.f/multiplier) * multiplier), nil
	}
	return NewFloat(math.Round(v.f)), nil
}

func numberAbs(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	if v.isInt && v.i != math.MinInt64 {
		if v.i < 0 {
			return NewInt(-v.i), nil
		}
		return NewInt(v.i), nil
	}
	return NewFloat(math.Abs(v.f)), nil
}

func numberCeil(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	if v.isInt {
		return v, nil
	}
	return NewFloat(math.Ceil(v.f)), nil
}

func numberFloor(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	if v.isInt {
		return v, nil
	}
	return NewFloat(math.Floor(v.f)), nil
}

// numberIsEmpty treats values within epsilon of zero and NaN as empty.
func numberIsEmpty(v Value, args []Value) (Value, error) {
	if err := noArgs(args); err != nil {
		return Value{}, err
	}
	return NewBool(math.Abs(v.f) <= epsilon || math.IsNaN(v.f)), nil
}
