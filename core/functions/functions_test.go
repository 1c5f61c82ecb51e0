/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package functions

import (
	"errors"
	"testing"
	"time"

	"github.com/notebase/notebase/core/value"
)

func callGlobal(t *testing.T, name string, args ...value.Value) value.Value {
	t.Helper()
	got, err := Global().Call(name, args)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return got
}

func TestIf(t *testing.T) {
	if got := callGlobal(t, "if", value.NewBool(true), value.NewInt(1), value.NewInt(2)); got.Int64() != 1 {
		t.Errorf("if(true) = %v", got)
	}
	if got := callGlobal(t, "if", value.NewBool(false), value.NewInt(1), value.NewInt(2)); got.Int64() != 2 {
		t.Errorf("if(false) = %v", got)
	}
	// The else branch defaults to null.
	if got := callGlobal(t, "if", value.NewBool(false), value.NewInt(1)); !got.IsNull() {
		t.Errorf("if without else = %v, want null", got)
	}

	var typeErr *value.ArgumentTypeError
	_, err := Global().Call("if", []value.Value{value.NewInt(1), value.NewInt(2)})
	if !errors.As(err, &typeErr) || typeErr.Expected != "boolean" {
		t.Errorf("if(1, 2): %v", err)
	}
}

func TestNowAndToday(t *testing.T) {
	now := callGlobal(t, "now")
	if now.Kind() != value.KindDateTime {
		t.Fatalf("now() = %v", now)
	}
	if time.Since(now.Time()) > time.Minute {
		t.Errorf("now() far from current time: %v", now.Time())
	}

	today := callGlobal(t, "today")
	h, m, s := today.Time().Clock()
	if h != 0 || m != 0 || s != 0 {
		t.Errorf("today() = %v, want midnight", today.Time())
	}
}

func TestDuration(t *testing.T) {
	got := callGlobal(t, "duration", value.NewString("1d 2h 30m"))
	expected := 24*time.Hour + 2*time.Hour + 30*time.Minute
	if got.Duration() != expected {
		t.Errorf("duration = %v, want %v", got.Duration(), expected)
	}

	if _, err := Global().Call("duration", []value.Value{value.NewString("nope")}); err == nil {
		t.Error("bad duration parsed")
	}
}

func TestList(t *testing.T) {
	wrapped := callGlobal(t, "list", value.NewInt(1))
	if len(wrapped.List()) != 1 || wrapped.List()[0].Int64() != 1 {
		t.Errorf("list(1) = %v", wrapped)
	}
	passthrough := callGlobal(t, "list", value.NewList([]value.Value{value.NewInt(1), value.NewInt(2)}))
	if len(passthrough.List()) != 2 {
		t.Errorf("list(list) = %v", passthrough)
	}
}

func TestNumber(t *testing.T) {
	if got := callGlobal(t, "number", value.NewString("42")); !got.IsInt() || got.Int64() != 42 {
		t.Errorf("number(\"42\") = %v", got)
	}
	if got := callGlobal(t, "number", value.NewString("2.5")); got.Float64() != 2.5 {
		t.Errorf("number(\"2.5\") = %v", got)
	}
	if got := callGlobal(t, "number", value.NewBool(true)); got.Int64() != 1 {
		t.Errorf("number(true) = %v", got)
	}
	if got := callGlobal(t, "number", value.NewDuration(time.Second)); got.Int64() != 1000 {
		t.Errorf("number(1s) = %v", got)
	}

	for _, bad := range []value.Value{value.Null(), value.NewList(nil)} {
		if _, err := Global().Call("number", []value.Value{bad}); err == nil {
			t.Errorf("number(%s) succeeded, want error", bad.TypeName())
		}
	}
}

func TestLink(t *testing.T) {
	got := callGlobal(t, "link", value.NewString("notes/a.md"), value.NewString("A"))
	if got.Link().Target != "notes/a.md" || got.Link().Display != "A" {
		t.Errorf("link = %v", got.Link())
	}
	got = callGlobal(t, "link", value.NewString("notes/a.md"))
	if got.Link().Display != "" {
		t.Errorf("link display = %q", got.Link().Display)
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2025-03-10 14:30:45", time.Date(2025, 3, 10, 14, 30, 45, 0, time.Local)},
		{"2025-03-10 14:30", time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)},
		{"2025-03-10T14:30:45", time.Date(2025, 3, 10, 14, 30, 45, 0, time.Local)},
		{"2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := callGlobal(t, "date", value.NewString(tt.input))
			if !got.Time().Equal(tt.expected) {
				t.Errorf("date(%q) = %v, want %v", tt.input, got.Time(), tt.expected)
			}
		})
	}

	if _, err := Global().Call("date", []value.Value{value.NewString("not a date at all, ever")}); err == nil {
		t.Error("nonsense date parsed")
	}
}

func TestMinMax(t *testing.T) {
	if got := callGlobal(t, "min", value.NewInt(3), value.NewInt(1), value.NewInt(2)); got.Int64() != 1 {
		t.Errorf("min = %v", got)
	}
	if got := callGlobal(t, "max", value.NewInt(3), value.NewFloat(3.5)); got.Float64() != 3.5 {
		t.Errorf("max = %v", got)
	}

	var typeErr *value.ArgumentTypeError
	_, err := Global().Call("min", []value.Value{value.NewInt(1), value.NewString("x")})
	if !errors.As(err, &typeErr) || typeErr.Index != 1 {
		t.Errorf("min with string: %v", err)
	}
	if _, err := Global().Call("max", nil); err == nil {
		t.Error("max() succeeded, want argument count error")
	}
}

func TestUnknownFunction(t *testing.T) {
	var unknownErr *value.UnknownFunctionError
	_, err := Global().Call("bogus", nil)
	if !errors.As(err, &unknownErr) || unknownErr.Name != "bogus" {
		t.Errorf("unknown function: %v", err)
	}
}
