/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package value

import "fmt"

// OperationError reports a binary operation applied to unsupported types.
type OperationError struct {
	Op    string
	Left  string
	Right string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("operation '%s' is not supported for %s and %s", e.Op, e.Left, e.Right)
}

// UnaryError reports a unary operation applied to an unsupported type.
type UnaryError struct {
	Op      string
	Operand string
}

func (e *UnaryError) Error() string {
	return fmt.Sprintf("operation '%s' is not supported for %s", e.Op, e.Operand)
}

// ConversionError reports a failed conversion between value types.
type ConversionError struct {
	From string
	To   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.From, e.To)
}

// ComparisonError reports an ordering comparison between incomparable values.
type ComparisonError struct {
	Left  string
	Right string
}

func (e *ComparisonError) Error() string {
	return fmt.Sprintf("cannot compare %s with %s", e.Left, e.Right)
}

// ArgumentCountError reports a function called with the wrong number of
// arguments.
type ArgumentCountError struct {
	Expected int
	Found    int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("incorrect number of arguments, expected %d, got %d", e.Expected, e.Found)
}

// ArgumentTypeError reports a function argument of the wrong type, naming
// the argument's index.
type ArgumentTypeError struct {
	Index    int
	Found    string
	Expected string
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("incorrect argument type, argument at index %d is type %s, expected %s",
		e.Index, e.Found, e.Expected)
}

// UnknownFunctionError reports a call to a function or method that is not
// registered.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("function %s does not exist", e.Name)
}

// CallError wraps a failure raised inside a function body, as opposed to a
// registry-level failure.
type CallError struct {
	Err error
}

func (e *CallError) Error() string { return e.Err.Error() }

func (e *CallError) Unwrap() error { return e.Err }

// Callf builds a CallError from a format string.
func Callf(format string, args ...any) *CallError {
	return &CallError{Err: fmt.Errorf(format, args...)}
}
