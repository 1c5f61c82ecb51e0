/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package expr

import "fmt"

// ErrorKind categorizes what the parser expected at the failure position.
type ErrorKind int

const (
	ErrGeneric ErrorKind = iota
	ErrDigit
	ErrIdent
	ErrToken
	ErrChar
	ErrEOF
)

// ParseError reports a syntax error with its byte offset in the input and a
// short window of surrounding context.
type ParseError struct {
	Input  string
	Offset int
	Kind   ErrorKind
	Want   string // expected token or character, when known
	Msg    string // free-form message for ErrGeneric
}

func (e *ParseError) message() string {
	switch e.Kind {
	case ErrDigit:
		return "expected digit"
	case ErrIdent:
		return "expected identifier"
	case ErrToken:
		return fmt.Sprintf("expected %q", e.Want)
	case ErrChar:
		return fmt.Sprintf("expected %q", e.Want)
	case ErrEOF:
		return "unexpected end of input"
	}
	if e.Msg != "" {
		return e.Msg
	}
	return "invalid expression"
}

func (e *ParseError) Error() string {
	start := e.Offset - 10
	if start < 0 {
		start = 0
	}
	end := e.Offset + 10
	if end > len(e.Input) {
		end = len(e.Input)
	}
	return fmt.Sprintf("%s at offset %d near %q", e.message(), e.Offset, e.Input[start:end])
}
