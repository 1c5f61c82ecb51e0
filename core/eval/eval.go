/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

// Package eval walks expression trees against a per-note context. A Context
// carries the note's frontmatter properties, its file metadata, and the
// base's formulas; formulas may reference each other and cycles are
// detected rather than looped.
package eval

import (
	"fmt"

	"github.com/notebase/notebase/core/expr"
	"github.com/notebase/notebase/core/functions"
	"github.com/notebase/notebase/core/prepared"
	"github.com/notebase/notebase/core/value"
)

// Context is the data an expression evaluates against. A zero Note map and
// null File are valid: property references then resolve to null or error
// depending on the namespace.
type Context struct {
	// Note maps frontmatter property names to values. Missing properties
	// resolve to null.
	Note map[string]value.Value
	// File is the file value backing file.* references.
	File value.Value
	// Formulas are the parsed formulas of the base, keyed by name.
	Formulas map[string]expr.Expr
}

// Evaluator evaluates expressions with a function registry and per-call
// formula cycle detection.
type Evaluator struct {
	functions *functions.Registry
	inFlight  map[string]bool
}

// New creates an evaluator backed by the global function registry.
func New() *Evaluator {
	return &Evaluator{
		functions: functions.Global(),
		inFlight:  make(map[string]bool),
	}
}

// Eval evaluates an expression against the context.
func (e *Evaluator) Eval(node expr.Expr, ctx *Context) (value.Value, error) {
	switch n := node.(type) {
	case *expr.StringLit:
		return value.NewString(n.Value), nil
	case *expr.IntLit:
		return value.NewInt(n.Value), nil
	case *expr.FloatLit:
		return value.NewFloat(n.Value), nil
	case *expr.BoolLit:
		return value.NewBool(n.Value), nil
	case *expr.NullLit:
		return value.Null(), nil
	case *expr.Property:
		return e.resolveProperty(n.Ref, ctx)
	case *expr.FunctionCall:
		args, err := e.evalArgs(n.Args, ctx)
		if err != nil {
			return value.Value{}, err
		}
		return e.functions.Call(n.Name, args)
	case *expr.BinaryOp:
		return e.evalBinary(n, ctx)
	case *expr.UnaryOp:
		operand, err := e.Eval(n.Expr, ctx)
		if err != nil {
			return value.Value{}, err
		}
		if n.Op == expr.OpNot {
			return operand.Not(), nil
		}
		return operand.Negate()
	case *expr.MemberAccess:
		object, err := e.Eval(n.Object, ctx)
		if err != nil {
			return value.Value{}, err
		}
		if field, ok := object.Field(n.Member); ok {
			return field, nil
		}
		return value.Null(), nil
	case *expr.MethodCall:
		object, err := e.Eval(n.Object, ctx)
		if err != nil {
			return value.Value{}, err
		}
		args, err := e.evalArgs(n.Args, ctx)
		if err != nil {
			return value.Value{}, err
		}
		return object.Call(n.Method, args)
	}
	return value.Value{}, fmt.Errorf("unhandled expression node %T", node)
}

// Matches evaluates a prepared filter tree. A note matches an and node when
// every child matches, an or node when any child does, and a not node when
// none do. Leaf expressions must produce a truthy value.
func (e *Evaluator) Matches(filter *prepared.Filter, ctx *Context) (bool, error) {
	if filter == nil {
		return true, nil
	}
	switch filter.Op {
	case prepared.FilterAnd:
		for i := range filter.Children {
			ok, err := e.Matches(&filter.Children[i], ctx)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case prepared.FilterOr:
		for i := range filter.Children {
			ok, err := e.Matches(&filter.Children[i], ctx)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	case prepared.FilterNot:
		for i := range filter.Children {
			ok, err := e.Matches(&filter.Children[i], ctx)
			if err != nil {
				return false, err
			}
			if ok {
				return false, nil
			}
		}
		return true, nil
	}
	result, err := e.Eval(filter.Expr, ctx)
	if err != nil {
		return false, err
	}
	return result.IsTruthy(), nil
}

// evalBinary handles binary operators. && and || short-circuit on the
// truthiness of the left operand and return a boolean.
func (e *Evaluator) evalBinary(n *expr.BinaryOp, ctx *Context) (value.Value, error) {
	left, err := e.Eval(n.Left, ctx)
	if err != nil {
		return value.Value{}, err
	}

	switch n.Op {
	case expr.OpAnd:
		if !left.IsTruthy() {
			return value.NewBool(false), nil
		}
		right, err := e.Eval(n.Right, ctx)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewBool(right.IsTruthy()), nil
	case expr.OpOr:
		if left.IsTruthy() {
			return value.NewBool(true), nil
		}
		right, err := e.Eval(n.Right, ctx)
		if err != nil {
			return value.Value{}, err
		}
		return value.NewBool(right.IsTruthy()), nil
	}

	right, err := e.Eval(n.Right, ctx)
	if err != nil {
		return value.Value{}, err
	}

	switch n.Op {
	case expr.OpAdd:
		return left.Add(right)
	case expr.OpSub:
		return left.Sub(right)
	case expr.OpMul:
		return left.Mul(right)
	case expr.OpDiv:
		return left.Div(right)
	case expr.OpMod:
		return left.Rem(right)
	case expr.OpEq:
		return value.NewBool(left.Equals(right)), nil
	case expr.OpNe:
		return value.NewBool(!left.Equals(right)), nil
	case expr.OpGt, expr.OpLt, expr.OpGte, expr.OpLte:
		cmp, err := left.Compare(right)
		if err != nil {
			return value.Value{}, err
		}
		switch n.Op {
		case expr.OpGt:
			return value.NewBool(cmp > 0), nil
		case expr.OpLt:
			return value.NewBool(cmp < 0), nil
		case expr.OpGte:
			return value.NewBool(cmp >= 0), nil
		default:
			return value.NewBool(cmp <= 0), nil
		}
	}
	return value.Value{}, fmt.Errorf("unhandled binary operator %s", n.Op)
}

func (e *Evaluator) evalArgs(nodes []expr.Expr, ctx *Context) ([]value.Value, error) {
	args := make([]value.Value, 0, len(nodes))
	for _, node := range nodes {
		arg, err := e.Eval(node, ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// resolveProperty looks up a namespaced property path. The head of the path
// resolves against the namespace; remaining segments are field accesses
// where a miss yields null. this.* resolves like note.*.
func (e *Evaluator) resolveProperty(ref expr.PropertyRef, ctx *Context) (value.Value, error) {
	var head value.Value
	rest := ref.Path

	switch ref.Namespace {
	case expr.NamespaceNote, expr.NamespaceThis:
		if len(ref.Path) == 0 {
			return value.Null(), nil
		}
		head = ctx.Note[ref.Path[0]]
		rest = ref.Path[1:]
	case expr.NamespaceFile:
		head = ctx.File
	case expr.NamespaceFormula:
		if len(ref.Path) == 0 {
			return value.Value{}, fmt.Errorf("formula reference is missing a name")
		}
		resolved, err := e.evalFormula(ref.Path[0], ctx)
		if err != nil {
			return value.Value{}, err
		}
		head = resolved
		rest = ref.Path[1:]
	}

	for _, segment := range rest {
		field, ok := head.Field(segment)
		if !ok {
			return value.Null(), nil
		}
		head = field
	}
	return head, nil
}

func (e *Evaluator) evalFormula(name string, ctx *Context) (value.Value, error) {
	formula, ok := ctx.Formulas[name]
	if !ok {
		return value.Value{}, fmt.Errorf("unknown formula '%s'", name)
	}
	if e.inFlight[name] {
		return value.Value{}, fmt.Errorf("formula '%s' references itself, directly or through another formula", name)
	}
	e.inFlight[name] = true
	defer delete(e.inFlight, name)
	return e.Eval(formula, ctx)
}
