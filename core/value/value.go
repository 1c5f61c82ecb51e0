/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

// Package value implements the runtime value model of the Bases expression
// language: a kind-tagged value type with per-kind arithmetic, comparison,
// truthiness, and method/field dispatch. Composite payloads are held behind
// slices, maps, and pointers so copying a Value is O(1).
package value

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Kind identifies the runtime type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindDateTime
	KindDuration
	KindList
	KindObject
	KindFile
	KindLink
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindDateTime:
		return "datetime"
	case KindDuration:
		return "duration"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	case KindFile:
		return "file"
	case KindLink:
		return "link"
	}
	return "unknown"
}

// Value is a runtime value. The zero Value is null. Numbers track whether
// they were produced from integer inputs; integer arithmetic stays integral
// until an operation overflows or produces a fraction, at which point the
// result widens to a float.
type Value struct {
	kind  Kind
	isInt bool
	i     int64
	f     float64
	b     bool
	str   string
	t     time.Time
	d     time.Duration
	list  []Value
	obj   map[string]Value
	file  *FileInfo
	link  *Link
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// NewString creates a string value.
func NewString(s string) Value {
	return Value{kind: KindString, str: s}
}

// NewInt creates an integer-backed number value.
func NewInt(v int64) Value {
	return Value{kind: KindNumber, isInt: true, i: v, f: float64(v)}
}

// NewFloat creates a float-backed number value.
func NewFloat(v float64) Value {
	return Value{kind: KindNumber, f: v}
}

// NewBool creates a boolean value.
func NewBool(v bool) Value {
	return Value{kind: KindBoolean, b: v}
}

// NewDateTime creates a datetime value. Times are treated as wall-clock
// local times; frontmatter and vault metadata carry no zone information.
func NewDateTime(t time.Time) Value {
	return Value{kind: KindDateTime, t: t}
}

// NewDuration creates a duration value.
func NewDuration(d time.Duration) Value {
	return Value{kind: KindDuration, d: d}
}

// NewList creates a list value. The slice is not copied.
func NewList(items []Value) Value {
	return Value{kind: KindList, list: items}
}

// NewObject creates an object value. The map is not copied.
func NewObject(entries map[string]Value) Value {
	return Value{kind: KindObject, obj: entries}
}

// NewFile creates a file value wrapping per-note metadata.
func NewFile(info *FileInfo) Value {
	return Value{kind: KindFile, file: info}
}

// NewLink creates a link value.
func NewLink(target, display string) Value {
	return Value{kind: KindLink, link: &Link{Target: target, Display: display}}
}

// Kind returns the runtime kind of the value.
func (v Value) Kind() Kind { return v.kind }

// TypeName returns the type name used in diagnostics.
func (v Value) TypeName() string { return v.kind.String() }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsInt reports whether a number value is integer-backed.
func (v Value) IsInt() bool { return v.kind == KindNumber && v.isInt }

// Int64 returns the integer payload of an integer-backed number.
func (v Value) Int64() int64 { return v.i }

// Float64 returns the numeric payload as a float.
func (v Value) Float64() float64 { return v.f }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// Str returns the string payload.
func (v Value) Str() string { return v.str }

// Time returns the datetime payload.
func (v Value) Time() time.Time { return v.t }

// Duration returns the duration payload.
func (v Value) Duration() time.Duration { return v.d }

// List returns the list payload. Callers must not mutate it.
func (v Value) List() []Value { return v.list }

// Object returns the object payload. Callers must not mutate it.
func (v Value) Object() map[string]Value { return v.obj }

// File returns the file payload, or nil.
func (v Value) File() *FileInfo { return v.file }

// Link returns the link payload, or nil.
func (v Value) Link() *Link { return v.link }

// IsTruthy reports whether the value is treated as true in boolean position.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBoolean:
		return v.b
	case KindNumber:
		return !math.IsNaN(v.f) && v.f != 0
	case KindString:
		return v.str != ""
	case KindDuration:
		return v.d != 0
	case KindList:
		return len(v.list) > 0
	case KindObject:
		return len(v.obj) > 0
	}
	// datetime, file, link
	return true
}

// IsEmpty reports whether the value should be considered empty. Numbers are
// empty when within epsilon of zero; this is a spreadsheet-style convention,
// not IEEE semantics.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == ""
	case KindList:
		return len(v.list) == 0
	case KindObject:
		return len(v.obj) == 0
	case KindDuration:
		return v.d == 0
	case KindNumber:
		return math.Abs(v.f) <= epsilon || math.IsNaN(v.f)
	}
	return false
}

const epsilon = 2.220446049250313e-16

// String renders the value for display.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindDateTime:
		return v.t.Format("2006-01-02 15:04:05")
	case KindDuration:
		return FormatDuration(v.d)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		parts := make([]string, 0, len(v.obj))
		for key, val := range v.obj {
			parts = append(parts, key+": "+val.String())
		}
		sort.Strings(parts)
		return "{" + strings.Join(parts, ", ") + "}"
	case KindFile:
		return v.file.Path
	case KindLink:
		return v.link.String()
	}
	return ""
}

func formatNumber(v Value) string {
	if v.isInt {
		return strconv.FormatInt(v.i, 10)
	}
	return strconv.FormatFloat(v.f, 'f', -1, 64)
}

// Equals reports deep value equality. NaN compares equal to NaN so that
// filter results stay deterministic.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == other.str
	case KindNumber:
		if math.IsNaN(v.f) && math.IsNaN(other.f) {
			return true
		}
		return v.f == other.f
	case KindBoolean:
		return v.b == other.b
	case KindDateTime:
		return v.t.Equal(other.t)
	case KindDuration:
		return v.d == other.d
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equals(other.list[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for key, val := range v.obj {
			o, ok := other.obj[key]
			if !ok || !val.Equals(o) {
				return false
			}
		}
		return true
	case KindFile:
		return v.file.Path == other.file.Path
	case KindLink:
		return *v.link == *other.link
	}
	return false
}

// Compare orders two values, returning -1, 0, or 1. Only same-kind scalar
// pairs and null/null are comparable.
func (v Value) Compare(other Value) (int, error) {
	switch {
	case v.kind == KindNull && other.kind == KindNull:
		return 0, nil
	case v.kind == KindNumber && other.kind == KindNumber:
		if math.IsNaN(v.f) || math.IsNaN(other.f) {
			return 0, &ComparisonError{Left: v.TypeName(), Right: other.TypeName()}
		}
		return cmpOrdered(v.f, other.f), nil
	case v.kind == KindString && other.kind == KindString:
		return strings.Compare(v.str, other.str), nil
	case v.kind == KindBoolean && other.kind == KindBoolean:
		return cmpBool(v.b, other.b), nil
	case v.kind == KindDateTime && other.kind == KindDateTime:
		return v.t.Compare(other.t), nil
	case v.kind == KindDuration && other.kind == KindDuration:
		return cmpOrdered(v.d, other.d), nil
	}
	return 0, &OperationError{Op: "compare", Left: v.TypeName(), Right: other.TypeName()}
}

func cmpOrdered[T float64 | time.Duration](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}
	return 1
}

// Add adds two values: numeric addition, string concatenation, and
// date/duration arithmetic.
func (v Value) Add(other Value) (Value, error) {
	switch {
	case v.kind == KindString && other.kind == KindString:
		return NewString(v.str + other.str), nil
	case v.kind == KindDateTime && other.kind == KindDuration:
		return NewDateTime(v.t.Add(other.d)), nil
	case v.kind == KindDuration && other.kind == KindDateTime:
		return NewDateTime(other.t.Add(v.d)), nil
	case v.kind == KindDuration && other.kind == KindDuration:
		return NewDuration(v.d + other.d), nil
	case v.kind == KindNumber && other.kind == KindNumber:
		if v.isInt && other.isInt {
			if sum, ok := addInt64(v.i, other.i); ok {
				return NewInt(sum), nil
			}
		}
		return NewFloat(v.f + other.f), nil
	}
	return Value{}, &OperationError{Op: "add", Left: v.TypeName(), Right: other.TypeName()}
}

// Sub subtracts a value: numeric subtraction, datetime-datetime producing a
// duration, and datetime/duration arithmetic.
func (v Value) Sub(other Value) (Value, error) {
	switch {
	case v.kind == KindDateTime && other.kind == KindDuration:
		return NewDateTime(v.t.Add(-other.d)), nil
	case v.kind == KindDateTime && other.kind == KindDateTime:
		return NewDuration(v.t.Sub(other.t)), nil
	case v.kind == KindDuration && other.kind == KindDuration:
		return NewDuration(v.d - other.d), nil
	case v.kind == KindNumber && other.kind == KindNumber:
		if v.isInt && other.isInt {
			if diff, ok := subInt64(v.i, other.i); ok {
				return NewInt(diff), nil
			}
		}
		return NewFloat(v.f - other.f), nil
	}
	return Value{}, &OperationError{Op: "sub", Left: v.TypeName(), Right: other.TypeName()}
}

// Mul multiplies two numbers.
func (v Value) Mul(other Value) (Value, error) {
	if v.kind != KindNumber || other.kind != KindNumber {
		return Value{}, &OperationError{Op: "mul", Left: v.TypeName(), Right: other.TypeName()}
	}
	if v.isInt && other.isInt {
		if prod, ok := mulInt64(v.i, other.i); ok {
			return NewInt(prod), nil
		}
	}
	return NewFloat(v.f * other.f), nil
}

// Div divides two numbers. Division by zero is an error, never inf or NaN.
// Integer division that divides evenly stays integral.
func (v Value) Div(other Value) (Value, error) {
	if v.kind != KindNumber || other.kind != KindNumber || other.f == 0 {
		return Value{}, &OperationError{Op: "div", Left: v.TypeName(), Right: other.TypeName()}
	}
	if v.isInt && other.isInt && v.i%other.i == 0 {
		return NewInt(v.i / other.i), nil
	}
	return NewFloat(v.f / other.f), nil
}

// Rem computes the remainder of dividing two numbers. A zero divisor is an
// error.
func (v Value) Rem(other Value) (Value, error) {
	if v.kind != KindNumber || other.kind != KindNumber || other.f == 0 {
		return Value{}, &OperationError{Op: "mod", Left: v.TypeName(), Right: other.TypeName()}
	}
	if v.isInt && other.isInt {
		return NewInt(v.i % other.i), nil
	}
	return NewFloat(math.Mod(v.f, other.f)), nil
}

// Negate negates numbers and durations.
func (v Value) Negate() (Value, error) {
	switch v.kind {
	case KindNumber:
		if v.isInt {
			if v.i == math.MinInt64 {
				return NewFloat(-v.f), nil
			}
			return NewInt(-v.i), nil
		}
		return NewFloat(-v.f), nil
	case KindDuration:
		return NewDuration(-v.d), nil
	}
	return Value{}, &UnaryError{Op: "neg", Operand: v.TypeName()}
}

// Not negates the truthiness of the value.
func (v Value) Not() Value {
	return NewBool(!v.IsTruthy())
}

// Length returns the length of strings (in characters), lists, and objects.
func (v Value) Length() (int, error) {
	switch v.kind {
	case KindString:
		return utf8.RuneCountInString(v.str), nil
	case KindList:
		return len(v.list), nil
	case KindObject:
		return len(v.obj), nil
	}
	return 0, &UnaryError{Op: "len", Operand: v.TypeName()}
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum <= 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (a >= 0 && b < 0 && diff <= 0) || (a < 0 && b > 0 && diff >= 0) {
		return 0, false
	}
	return diff, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	if prod/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	return prod, true
}

// Call invokes a named method on the value. Unknown names and kinds without
// methods report UnknownFunctionError.
func (v Value) Call(name string, args []Value) (Value, error) {
	var table map[string]methodFunc
	switch v.kind {
	case KindString:
		table = stringMethods
	case KindNumber:
		table = numberMethods
	case KindList:
		table = listMethods
	case KindDateTime:
		table = dateMethods
	case KindFile:
		table = fileMethods
	}
	if fn, ok := table[name]; ok {
		return fn(v, args)
	}
	return Value{}, &UnknownFunctionError{Name: name}
}

// Field evaluates a named field on the value, reporting whether it exists.
// Object values resolve fields as key lookups.
func (v Value) Field(name string) (Value, bool) {
	var table map[string]fieldFunc
	switch v.kind {
	case KindString:
		table = stringFields
	case KindList:
		table = listFields
	case KindDateTime:
		table = dateFields
	case KindFile:
		table = fileFields
	case KindObject:
		val, ok := v.obj[name]
		return val, ok
	}
	if fn, ok := table[name]; ok {
		return fn(v), true
	}
	return Value{}, false
}

// methodFunc implements one method for one value kind. Dispatch is a static
// per-kind table rather than per-instance closures.
type methodFunc func(v Value, args []Value) (Value, error)

type fieldFunc func(v Value) Value
