/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package expr

import (
	"strconv"
	"strings"
)

// Parser is a scannerless recursive-descent parser over a byte string.
type Parser struct {
	input string
	pos   int
}

// NewParser creates a new parser
func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// Parse parses a single expression from input. The whole input must be
// consumed apart from trailing whitespace.
func Parse(input string) (Expr, error) {
	return NewParser(input).Parse()
}

// Parse parses the input and returns the AST
func (p *Parser) Parse() (Expr, error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, p.errf("unexpected content after expression")
	}
	return node, nil
}

// Expression parsing with precedence climbing
// Precedence (low to high):
// 1. ||
// 2. &&
// 3. ==, !=
// 4. <, >, <=, >=
// 5. +, -
// 6. *, /, %
// 7. unary !, -
// 8. postfix .field / .method(args)

func (p *Parser) parseExpr() (Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		if !p.eat("||") {
			return left, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: OpOr, Left: left, Right: right}
	}
}

func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		if !p.eat("&&") {
			return left, nil
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: OpAnd, Left: left, Right: right}
	}
}

func (p *Parser) parseEquality() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		var op BinaryOperator
		switch {
		case p.eat("=="):
			op = OpEq
		case p.eat("!="):
			op = OpNe
		default:
			return left, nil
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseComparison() (Expr, error) {
	left, err := p.parseAddSub()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		var op BinaryOperator
		switch {
		case p.eat(">="):
			op = OpGte
		case p.eat("<="):
			op = OpLte
		case p.eat(">"):
			op = OpGt
		case p.eat("<"):
			op = OpLt
		default:
			return left, nil
		}
		right, err := p.parseAddSub()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseAddSub() (Expr, error) {
	left, err := p.parseMulDiv()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		var op BinaryOperator
		switch {
		case p.eat("+"):
			op = OpAdd
		case p.eat("-"):
			op = OpSub
		default:
			return left, nil
		}
		right, err := p.parseMulDiv()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseMulDiv() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		var op BinaryOperator
		switch {
		case p.eat("*"):
			op = OpMul
		case p.eat("/"):
			op = OpDiv
		case p.eat("%"):
			op = OpMod
		default:
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() (Expr, error) {
	p.skipSpace()
	if p.eat("!") {
		node, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: OpNot, Expr: node}, nil
	}
	if p.eat("-") {
		node, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: OpNeg, Expr: node}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses an atom followed by any number of .member or
// .method(args) suffixes. The dot must be directly followed by an
// identifier; otherwise the chain stops and the dot is left unconsumed.
func (p *Parser) parsePostfix() (Expr, error) {
	node, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		p.skipSpace()
		mark := p.pos
		if !p.eat(".") {
			return node, nil
		}
		name, ok := p.ident()
		if !ok {
			p.pos = mark
			return node, nil
		}
		if p.peek() == '(' {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			node = &MethodCall{Object: node, Method: name, Args: args}
		} else {
			node = &MemberAccess{Object: node, Member: name}
		}
	}
}

func (p *Parser) parseAtom() (Expr, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, p.err(ErrEOF, "")
	}

	switch c := p.input[p.pos]; {
	case c == '"' || c == '\'':
		return p.parseString(c)
	case isDigit(c):
		return p.parseNumber()
	case c == '(':
		p.pos++
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.eat(")") {
			return nil, p.err(ErrChar, ")")
		}
		return node, nil
	case isIdentStart(c):
		return p.parseIdentExpr()
	}
	return nil, p.errf("expected expression")
}

// parseNumber parses an integer or float literal. The dot is consumed as a
// decimal point only when directly followed by a digit, so 123.round() is an
// integer with a method call while 123.45 is a float.
func (p *Parser) parseNumber() (Expr, error) {
	start := p.pos
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}

	isFloat := false
	if p.pos+1 < len(p.input) && p.input[p.pos] == '.' && isDigit(p.input[p.pos+1]) {
		isFloat = true
		p.pos++
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
		}
	}

	// 123abc is malformed rather than a number followed by an identifier.
	if p.pos < len(p.input) && isIdentStart(p.input[p.pos]) {
		return nil, p.err(ErrDigit, "")
	}

	text := p.input[start:p.pos]
	if !isFloat {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			return &IntLit{Value: v}, nil
		}
		// Too many digits for int64: fall through to float.
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &ParseError{Input: p.input, Offset: start, Kind: ErrDigit}
	}
	return &FloatLit{Value: v}, nil
}

func (p *Parser) parseString(quote byte) (Expr, error) {
	p.pos++ // opening quote
	var sb strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case quote:
			p.pos++
			return &StringLit{Value: sb.String()}, nil
		case '\\':
			if p.pos+1 >= len(p.input) {
				p.pos = len(p.input)
				return nil, p.err(ErrEOF, "")
			}
			esc := p.input[p.pos+1]
			switch esc {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case '\\', quote:
				sb.WriteByte(esc)
			default:
				p.pos++
				return nil, p.errf("invalid escape sequence")
			}
			p.pos += 2
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return nil, p.err(ErrEOF, "")
}

// parseIdentExpr parses keywords, function calls, and property references.
// An identifier directly followed by ( is a function call. A dotted chain
// extends the property path until a segment is itself followed by (, which
// marks a method call on the property parsed so far.
func (p *Parser) parseIdentExpr() (Expr, error) {
	name, _ := p.ident()

	switch name {
	case "true":
		return &BoolLit{Value: true}, nil
	case "false":
		return &BoolLit{Value: false}, nil
	case "null":
		return &NullLit{}, nil
	}

	if p.peek() == '(' {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &FunctionCall{Name: name, Args: args}, nil
	}

	segs := []string{name}
	for p.peek() == '.' {
		mark := p.pos
		p.pos++
		seg, ok := p.ident()
		if !ok || p.peek() == '(' {
			p.pos = mark
			break
		}
		segs = append(segs, seg)
	}
	return &Property{Ref: newPropertyRef(segs)}, nil
}

func newPropertyRef(segs []string) PropertyRef {
	var ns Namespace
	switch segs[0] {
	case "note":
		ns = NamespaceNote
	case "file":
		ns = NamespaceFile
	case "formula":
		ns = NamespaceFormula
	case "this":
		ns = NamespaceThis
	default:
		return PropertyRef{Namespace: NamespaceNote, Path: segs}
	}
	return PropertyRef{Namespace: ns, Path: segs[1:]}
}

func (p *Parser) parseArgs() ([]Expr, error) {
	p.pos++ // opening paren
	p.skipSpace()
	if p.eat(")") {
		return nil, nil
	}

	var args []Expr
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		p.skipSpace()
		if p.eat(",") {
			continue
		}
		if p.eat(")") {
			return args, nil
		}
		return nil, p.err(ErrChar, ")")
	}
}

func (p *Parser) ident() (string, bool) {
	if p.pos >= len(p.input) || !isIdentStart(p.input[p.pos]) {
		return "", false
	}
	start := p.pos
	p.pos++
	for p.pos < len(p.input) && isIdentPart(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos], true
}

func (p *Parser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *Parser) eat(tok string) bool {
	if strings.HasPrefix(p.input[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

func (p *Parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *Parser) err(kind ErrorKind, want string) *ParseError {
	return &ParseError{Input: p.input, Offset: p.pos, Kind: kind, Want: want}
}

func (p *Parser) errf(msg string) *ParseError {
	return &ParseError{Input: p.input, Offset: p.pos, Kind: ErrGeneric, Msg: msg}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
