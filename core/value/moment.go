/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package value

import "strings"

// Moment.js format pattern translation.
//
// Patterns like "YYYY-MM-DD HH:mm" (the convention in Obsidian and Dataview)
// are translated to Go reference-time layouts. Bracketed runs [like this]
// pass through as literal text. Tokens with no Go layout equivalent (Q, X,
// week numbers, the unpadded 24-hour H, the weekday number d) degrade to the
// closest layout or to literal text; this is a best-effort translation, not
// a full moment.js implementation.

// momentToken maps one moment.js token to its Go layout. Tokens are tried
// in order, longest match first, so YYYY wins over YY and MMMM over MMM.
type momentToken struct {
	token  string
	layout string
}

var momentTokens = []momentToken{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"DDDD", "002"},
	{"DDD", "002"},
	{"DD", "02"},
	{"D", "2"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	// Go has no two-letter weekday; fall back to the abbreviation.
	{"dd", "Mon"},
	// Go has no weekday-number layout; the d passes through literally.
	{"d", "d"},
	{"HH", "15"},
	// Go has no unpadded 24-hour layout.
	{"H", "15"},
	{"hh", "03"},
	{"h", "3"},
	// Milliseconds. Meaningful after a dot, e.g. ss.SSS -> 05.000.
	{"SSS", "000"},
	{"ss", "05"},
	{"s", "5"},
	{"mm", "04"},
	{"m", "4"},
	{"A", "PM"},
	{"a", "pm"},
	{"ZZ", "-0700"},
	{"Z", "-07:00"},
	// Unix seconds, week numbers, and quarters have no layout equivalent.
	{"X", "X"},
	{"ww", "ww"},
	{"WW", "WW"},
	{"Q", "Q"},
}

// MomentLayout converts a moment.js format pattern to a Go time layout.
func MomentLayout(pattern string) string {
	var sb strings.Builder
	for len(pattern) > 0 {
		if pattern[0] == '[' {
			if end := strings.IndexByte(pattern, ']'); end > 1 {
				sb.WriteString(pattern[1:end])
				pattern = pattern[end+1:]
				continue
			}
			// No closing bracket (or an empty one): the [ is a literal.
		}
		if layout, rest, ok := matchToken(pattern); ok {
			sb.WriteString(layout)
			pattern = rest
			continue
		}
		sb.WriteByte(pattern[0])
		pattern = pattern[1:]
	}
	return sb.String()
}

func matchToken(pattern string) (layout, rest string, ok bool) {
	for _, tok := range momentTokens {
		if strings.HasPrefix(pattern, tok.token) {
			return tok.layout, pattern[len(tok.token):], true
		}
	}
	return "", "", false
}
