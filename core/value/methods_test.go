/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package value

import (
	"errors"
	"testing"
	"time"
)

func call(t *testing.T, v Value, name string, args ...Value) Value {
	t.Helper()
	got, err := v.Call(name, args)
	if err != nil {
		t.Fatalf("%s.%s: %v", v.TypeName(), name, err)
	}
	return got
}

func TestStringMethods(t *testing.T) {
	s := NewString("  Hello World  ")

	if got := call(t, s, "trim"); got.Str() != "Hello World" {
		t.Errorf("trim = %q", got.Str())
	}
	if got := call(t, NewString("Hello"), "lower"); got.Str() != "hello" {
		t.Errorf("lower = %q", got.Str())
	}
	if got := call(t, NewString("Hello"), "upper"); got.Str() != "HELLO" {
		t.Errorf("upper = %q", got.Str())
	}
	if got := call(t, NewString("Hello"), "contains", NewString("ell")); !got.Bool() {
		t.Error("contains(ell) = false")
	}
	if got := call(t, NewString("Hello"), "startsWith", NewString("He")); !got.Bool() {
		t.Error("startsWith(He) = false")
	}
	if got := call(t, NewString("Hello"), "endsWith", NewString("lo")); !got.Bool() {
		t.Error("endsWith(lo) = false")
	}
	if got := call(t, NewString("a,b,c"), "split", NewString(",")); len(got.List()) != 3 || got.List()[1].Str() != "b" {
		t.Errorf("split = %v", got)
	}
	if got := call(t, NewString("banana"), "replace", NewString("an"), NewString("AN")); got.Str() != "bANANa" {
		t.Errorf("replace = %q", got.Str())
	}
	if got := call(t, NewString(""), "isEmpty"); !got.Bool() {
		t.Error("isEmpty on empty = false")
	}
	if got := call(t, NewString("abc"), "containsAll", NewString("a"), NewString("c")); !got.Bool() {
		t.Error("containsAll(a, c) = false")
	}
	if got := call(t, NewString("abc"), "containsAny", NewString("x"), NewString("b")); !got.Bool() {
		t.Error("containsAny(x, b) = false")
	}
}

func TestStringSlice(t *testing.T) {
	s := NewString("hello world")
	tests := []struct {
		name     string
		args     []Value
		expected string
	}{
		{"start only", []Value{NewInt(6)}, "world"},
		{"start and end", []Value{NewInt(0), NewInt(5)}, "hello"},
		{"negative start", []Value{NewInt(-5)}, "world"},
		{"negative end", []Value{NewInt(0), NewInt(-6)}, "hello"},
		{"clamped", []Value{NewInt(-100), NewInt(100)}, "hello world"},
		{"inverted", []Value{NewInt(5), NewInt(2)}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Call("slice", tt.args)
			if err != nil {
				t.Fatalf("slice: %v", err)
			}
			if got.Str() != tt.expected {
				t.Errorf("slice = %q, want %q", got.Str(), tt.expected)
			}
		})
	}
}

func TestStringLengthCountsCharacters(t *testing.T) {
	got, ok := NewString("héllo").Field("length")
	if !ok {
		t.Fatal("length field missing")
	}
	if got.Int64() != 5 {
		t.Errorf("length = %d, want 5", got.Int64())
	}
}

func TestNumberMethods(t *testing.T) {
	if got := call(t, NewFloat(3.30958235), "toFixed", NewInt(2)); got.Str() != "3.31" {
		t.Errorf("toFixed = %q", got.Str())
	}
	if got := call(t, NewFloat(2.7), "round"); got.Float64() != 3 {
		t.Errorf("round = %v", got.Float64())
	}
	if got := call(t, NewFloat(2.3456), "round", NewInt(2)); got.Float64() != 2.35 {
		t.Errorf("round(2) = %v", got.Float64())
	}
	if got := call(t, NewFloat(1234.0), "round", NewInt(-2)); got.Float64() != 1200 {
		t.Errorf("round(-2) = %v", got.Float64())
	}
	if got := call(t, NewFloat(-5), "abs"); got.Float64() != 5 {
		t.Errorf("abs = %v", got.Float64())
	}
	if got := call(t, NewFloat(2.1), "ceil"); got.Float64() != 3 {
		t.Errorf("ceil = %v", got.Float64())
	}
	if got := call(t, NewFloat(2.9), "floor"); got.Float64() != 2 {
		t.Errorf("floor = %v", got.Float64())
	}
	if got := call(t, NewInt(0), "isEmpty"); !got.Bool() {
		t.Error("0.isEmpty() = false")
	}
	if got := call(t, NewInt(7), "isEmpty"); got.Bool() {
		t.Error("7.isEmpty() = true")
	}
}

func TestListMethods(t *testing.T) {
	list := NewList([]Value{NewInt(3), NewInt(1), NewInt(2)})

	if got := call(t, list, "contains", NewInt(2)); !got.Bool() {
		t.Error("contains(2) = false")
	}
	if got := call(t, list, "join", NewString("-")); got.Str() != "3-1-2" {
		t.Errorf("join = %q", got.Str())
	}
	if got := call(t, list, "reverse"); got.List()[0].Int64() != 2 {
		t.Errorf("reverse = %v", got)
	}
	if got := call(t, list, "sort"); got.List()[0].Int64() != 1 || got.List()[2].Int64() != 3 {
		t.Errorf("sort = %v", got)
	}

	nested := NewList([]Value{NewInt(1), NewList([]Value{NewInt(2), NewInt(3)}), NewInt(4)})
	if got := call(t, nested, "flat"); len(got.List()) != 4 {
		t.Errorf("flat = %v", got)
	}

	dups := NewList([]Value{NewInt(1), NewInt(2), NewInt(1), NewString("a"), NewString("a")})
	if got := call(t, dups, "unique"); len(got.List()) != 3 {
		t.Errorf("unique = %v", got)
	}

	if got := call(t, list, "first"); got.Int64() != 3 {
		t.Errorf("first = %v", got)
	}
	if got := call(t, list, "last"); got.Int64() != 2 {
		t.Errorf("last = %v", got)
	}
	if got := call(t, NewList(nil), "first"); !got.IsNull() {
		t.Errorf("first on empty = %v, want null", got)
	}

	length, ok := list.Field("length")
	if !ok || length.Int64() != 3 {
		t.Errorf("length = %v (ok=%v)", length, ok)
	}
}

func TestListSortMixedTypes(t *testing.T) {
	// Incomparable elements order by type name, then display form.
	mixed := NewList([]Value{NewString("b"), NewInt(2), NewString("a"), NewInt(1)})
	got := call(t, mixed, "sort")
	items := got.List()
	if items[0].Int64() != 1 || items[1].Int64() != 2 {
		t.Errorf("numbers should sort before strings: %v", got)
	}
	if items[2].Str() != "a" || items[3].Str() != "b" {
		t.Errorf("strings out of order: %v", got)
	}
}

func TestListSliceNegativeIndices(t *testing.T) {
	list := NewList([]Value{NewInt(1), NewInt(2)})
	// Python-style: a start of -5 on a 2-element list clamps to 0.
	got, err := list.Call("slice", []Value{NewInt(-5)})
	if err != nil {
		t.Fatalf("slice: %v", err)
	}
	if len(got.List()) != 2 {
		t.Errorf("slice(-5) = %v, want the whole list", got)
	}
}

func TestDateMethods(t *testing.T) {
	dt := NewDateTime(time.Date(2025, 3, 10, 14, 30, 45, 123_000_000, time.Local))

	if got := call(t, dt, "date"); got.Time().Hour() != 0 || got.Time().Day() != 10 {
		t.Errorf("date() = %v", got.Time())
	}
	if got := call(t, dt, "time"); got.Str() != "14:30:45" {
		t.Errorf("time() = %q", got.Str())
	}
	if got := call(t, dt, "format", NewString("YYYY-MM-DD")); got.Str() != "2025-03-10" {
		t.Errorf("format = %q", got.Str())
	}
	if got := call(t, dt, "isEmpty"); got.Bool() {
		t.Error("date isEmpty = true")
	}

	fields := map[string]int64{
		"year": 2025, "month": 3, "day": 10,
		"hour": 14, "minute": 30, "second": 45, "millisecond": 123,
	}
	for name, expected := range fields {
		got, ok := dt.Field(name)
		if !ok {
			t.Errorf("field %s missing", name)
			continue
		}
		if got.Int64() != expected {
			t.Errorf("field %s = %d, want %d", name, got.Int64(), expected)
		}
	}
}

func testFile() Value {
	return NewFile(&FileInfo{
		Path:  "projects/books/reading.md",
		Size:  2048,
		MTime: time.Date(2025, 2, 1, 8, 0, 0, 0, time.Local),
		Tags:  []string{"book", "project"},
		Links: []string{"authors/herbert.md", "notes/dune"},
		Frontmatter: &Frontmatter{
			Tags:  []string{"book"},
			Extra: map[string]Value{"status": NewString("reading")},
		},
	})
}

func TestFileMethods(t *testing.T) {
	f := testFile()

	if got := call(t, f, "hasTag", NewString("nope"), NewString("book")); !got.Bool() {
		t.Error("hasTag OR semantics failed")
	}
	if got := call(t, f, "hasTag", NewString("nope")); got.Bool() {
		t.Error("hasTag matched a missing tag")
	}
	// Substring match.
	if got := call(t, f, "hasLink", NewString("herbert")); !got.Bool() {
		t.Error("hasLink substring match failed")
	}
	// Stem match.
	if got := call(t, f, "hasLink", NewString("dune")); !got.Bool() {
		t.Error("hasLink stem match failed")
	}
	if got := call(t, f, "hasLink", NewString("tolkien")); got.Bool() {
		t.Error("hasLink matched a missing target")
	}
	if got := call(t, f, "inFolder", NewString("books")); !got.Bool() {
		t.Error("inFolder trailing segment failed")
	}
	if got := call(t, f, "inFolder", NewString("projects")); !got.Bool() {
		t.Error("inFolder leading segment failed")
	}
	if got := call(t, f, "inFolder", NewString("archive")); got.Bool() {
		t.Error("inFolder matched a missing folder")
	}
	if got := call(t, f, "hasProperty", NewString("status")); !got.Bool() {
		t.Error("hasProperty missed a frontmatter key")
	}
	if got := call(t, f, "hasProperty", NewString("tags")); !got.Bool() {
		t.Error("hasProperty missed the tags field")
	}
	if got := call(t, f, "hasProperty", NewString("aliases")); got.Bool() {
		t.Error("hasProperty matched unset aliases")
	}
	if got := call(t, f, "asLink", NewString("Reading")); got.Link().Display != "Reading" {
		t.Errorf("asLink = %v", got.Link())
	}
}

func TestFileFields(t *testing.T) {
	f := testFile()
	tests := []struct {
		field    string
		expected string
	}{
		{"name", "reading"},
		{"path", "projects/books/reading.md"},
		{"ext", "md"},
		{"folder", "projects/books"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := f.Field(tt.field)
			if !ok {
				t.Fatalf("field %s missing", tt.field)
			}
			if got.Str() != tt.expected {
				t.Errorf("%s = %q, want %q", tt.field, got.Str(), tt.expected)
			}
		})
	}

	if got, _ := f.Field("size"); got.Int64() != 2048 {
		t.Errorf("size = %v", got)
	}
	// Creation time is unavailable, so ctime is null.
	if got, _ := f.Field("ctime"); !got.IsNull() {
		t.Errorf("ctime = %v, want null", got)
	}
	if got, _ := f.Field("tags"); len(got.List()) != 2 {
		t.Errorf("tags = %v", got)
	}
	if got, _ := f.Field("links"); len(got.List()) != 2 {
		t.Errorf("links = %v", got)
	}
}

func TestCallErrors(t *testing.T) {
	var countErr *ArgumentCountError
	_, err := NewString("x").Call("lower", []Value{NewInt(1)})
	if !errors.As(err, &countErr) || countErr.Expected != 0 || countErr.Found != 1 {
		t.Errorf("lower(1): %v", err)
	}

	var typeErr *ArgumentTypeError
	_, err = NewString("x").Call("contains", []Value{NewInt(1)})
	if !errors.As(err, &typeErr) || typeErr.Index != 0 || typeErr.Expected != "string" {
		t.Errorf("contains(1): %v", err)
	}

	var unknownErr *UnknownFunctionError
	_, err = NewString("x").Call("bogus", nil)
	if !errors.As(err, &unknownErr) {
		t.Errorf("unknown method: %v", err)
	}

	// Fields on kinds without that field report absence, not an error.
	if _, ok := NewInt(1).Field("length"); ok {
		t.Error("number exposed a length field")
	}
}

func TestObjectFieldLookup(t *testing.T) {
	obj := NewObject(map[string]Value{"inner": NewInt(7)})
	got, ok := obj.Field("inner")
	if !ok || got.Int64() != 7 {
		t.Errorf("object field = %v (ok=%v)", got, ok)
	}
	if _, ok := obj.Field("missing"); ok {
		t.Error("missing object key reported present")
	}
}
