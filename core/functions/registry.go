/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

// Package functions provides the global function registry of the Bases
// expression language. Per-type methods live with their value kinds in the
// value package; this registry only holds free functions like if, now, and
// duration.
package functions

import "github.com/notebase/notebase/core/value"

// Func is a global function callable from expressions.
type Func func(args []value.Value) (value.Value, error)

// Registry maps function names to implementations. A registry is built once
// and read-only afterwards.
type Registry struct {
	functions map[string]Func
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{functions: make(map[string]Func)}
}

// Global creates a registry with the built-in functions registered.
func Global() *Registry {
	r := New()
	r.Register("if", ifFn)
	r.Register("now", nowFn)
	r.Register("today", todayFn)
	r.Register("duration", durationFn)
	r.Register("list", listFn)
	r.Register("number", numberFn)
	r.Register("link", linkFn)
	r.Register("date", dateFn)
	r.Register("min", minFn)
	r.Register("max", maxFn)
	return r
}

// Register adds a function under the given name.
func (r *Registry) Register(name string, fn Func) {
	r.functions[name] = fn
}

// Call invokes the named function with the given arguments.
func (r *Registry) Call(name string, args []value.Value) (value.Value, error) {
	fn, ok := r.functions[name]
	if !ok {
		return value.Value{}, &value.UnknownFunctionError{Name: name}
	}
	return fn(args)
}
