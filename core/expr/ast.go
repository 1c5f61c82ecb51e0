/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

// Package expr implements the Bases expression language: a small formula
// and filter language embedded in .base documents. It provides the parser
// producing an immutable AST that the evaluator walks per note.
package expr

// Namespace identifies which data source a property path resolves against.
type Namespace int

const (
	// NamespaceNote resolves against the note's frontmatter properties.
	NamespaceNote Namespace = iota
	// NamespaceFile resolves against file metadata (name, path, size, ...).
	NamespaceFile
	// NamespaceFormula resolves against other formulas defined in the base.
	NamespaceFormula
	// NamespaceThis resolves against the note currently being evaluated.
	NamespaceThis
)

func (ns Namespace) String() string {
	switch ns {
	case NamespaceNote:
		return "note"
	case NamespaceFile:
		return "file"
	case NamespaceFormula:
		return "formula"
	case NamespaceThis:
		return "this"
	}
	return "unknown"
}

// PropertyRef is a namespaced path such as file.ext or note.price. When the
// first written segment is not a namespace keyword the namespace defaults to
// note and the segment joins the path.
type PropertyRef struct {
	Namespace Namespace
	Path      []string
}

func (r PropertyRef) String() string {
	s := r.Namespace.String()
	for _, seg := range r.Path {
		s += "." + seg
	}
	return s
}

// BinaryOperator enumerates the binary operators of the language.
type BinaryOperator int

const (
	OpAdd BinaryOperator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpNe
	OpGt
	OpLt
	OpGte
	OpLte
	OpAnd
	OpOr
)

func (op BinaryOperator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "%"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpGt:
		return ">"
	case OpLt:
		return "<"
	case OpGte:
		return ">="
	case OpLte:
		return "<="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	}
	return "?"
}

// UnaryOperator enumerates the unary operators of the language.
type UnaryOperator int

const (
	OpNot UnaryOperator = iota
	OpNeg
)

func (op UnaryOperator) String() string {
	if op == OpNot {
		return "!"
	}
	return "-"
}

// Expr is a node in the expression AST. Children are exclusively owned by
// their parent; a tree is never mutated after parsing.
type Expr interface {
	expr()
}

// StringLit represents a string literal
type StringLit struct {
	Value string
}

func (n *StringLit) expr() {}

// IntLit represents an integer literal
type IntLit struct {
	Value int64
}

func (n *IntLit) expr() {}

// FloatLit represents a floating-point literal
type FloatLit struct {
	Value float64
}

func (n *FloatLit) expr() {}

// BoolLit represents true or false
type BoolLit struct {
	Value bool
}

func (n *BoolLit) expr() {}

// NullLit represents the null literal
type NullLit struct{}

func (n *NullLit) expr() {}

// Property represents a namespaced property reference
type Property struct {
	Ref PropertyRef
}

func (n *Property) expr() {}

// FunctionCall represents a global function call, e.g. date("2025-01-01")
type FunctionCall struct {
	Name string
	Args []Expr
}

func (n *FunctionCall) expr() {}

// BinaryOp represents a binary operation
type BinaryOp struct {
	Op    BinaryOperator
	Left  Expr
	Right Expr
}

func (n *BinaryOp) expr() {}

// UnaryOp represents a unary operation
type UnaryOp struct {
	Op   UnaryOperator
	Expr Expr
}

func (n *UnaryOp) expr() {}

// MemberAccess represents field access, e.g. file.mtime.year
type MemberAccess struct {
	Object Expr
	Member string
}

func (n *MemberAccess) expr() {}

// MethodCall represents a method invocation on a value, e.g. name.lower()
type MethodCall struct {
	Object Expr
	Method string
	Args   []Expr
}

func (n *MethodCall) expr() {}
