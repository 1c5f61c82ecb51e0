/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package value

// Argument helpers shared by the per-kind method tables.

func noArgs(args []Value) error {
	if len(args) != 0 {
		return &ArgumentCountError{Expected: 0, Found: len(args)}
	}
	return nil
}

func exactArgs(args []Value, n int) error {
	if len(args) != n {
		return &ArgumentCountError{Expected: n, Found: len(args)}
	}
	return nil
}

func stringArg(args []Value, index int) (string, error) {
	if index >= len(args) {
		return "", &ArgumentCountError{Expected: index + 1, Found: len(args)}
	}
	arg := args[index]
	if arg.kind != KindString {
		return "", &ArgumentTypeError{Index: index, Found: arg.TypeName(), Expected: "string"}
	}
	return arg.str, nil
}

func numberArg(args []Value, index int) (float64, error) {
	if index >= len(args) {
		return 0, &ArgumentCountError{Expected: index + 1, Found: len(args)}
	}
	arg := args[index]
	if arg.kind != KindNumber {
		return 0, &ArgumentTypeError{Index: index, Found: arg.TypeName(), Expected: "number"}
	}
	return arg.f, nil
}
