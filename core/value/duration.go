/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package value

import (
	"strconv"
	"strings"
	"time"
)

// Compound duration parsing and formatting. Duration strings combine
// components like "1d 2h30m" or "2 weeks"; supported units are y, M, w, d,
// h, m, s and their long forms. Months count as 30 days and years as 365.

const (
	durDay   = 24 * time.Hour
	durWeek  = 7 * durDay
	durMonth = 30 * durDay
	durYear  = 365 * durDay
)

// ParseDuration parses a compound duration string.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, Callf("empty duration string")
	}

	var total time.Duration
	rest := s
	for n := 0; ; n++ {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" {
			if n == 0 {
				return 0, Callf("failed to parse duration '%s'", s)
			}
			return total, nil
		}
		num, unit, remaining, err := parseDurationComponent(rest)
		if err != nil {
			return 0, Callf("failed to parse duration '%s': %v", s, err)
		}
		d, err := unitDuration(num, unit)
		if err != nil {
			return 0, err
		}
		total += d
		rest = remaining
	}
}

// parseDurationComponent reads one number-unit pair, allowing whitespace
// between the number and the unit.
func parseDurationComponent(s string) (float64, string, string, error) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digitsStart := i
	for i < len(s) && isDurDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDurDigit(s[i]) {
			i++
		}
	}
	if i == digitsStart {
		return 0, "", "", strconv.ErrSyntax
	}
	num, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", "", err
	}

	j := i
	for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
		j++
	}
	unitStart := j
	for j < len(s) && isDurLetter(s[j]) {
		j++
	}
	if j == unitStart {
		return 0, "", "", strconv.ErrSyntax
	}
	return num, s[unitStart:j], s[j:], nil
}

// unitDuration converts a count and unit to a duration. Fractional counts
// truncate the same way for every unit except years and months, which scale
// to whole days first.
func unitDuration(num float64, unit string) (time.Duration, error) {
	switch unit {
	case "y", "year", "years":
		return time.Duration(num*365) * durDay, nil
	case "M", "month", "months":
		return time.Duration(num*30) * durDay, nil
	case "w", "week", "weeks":
		return time.Duration(num) * durWeek, nil
	case "d", "day", "days":
		return time.Duration(num) * durDay, nil
	case "h", "hour", "hours":
		return time.Duration(num) * time.Hour, nil
	case "m", "minute", "minutes":
		return time.Duration(num) * time.Minute, nil
	case "s", "second", "seconds":
		return time.Duration(num) * time.Second, nil
	}
	return 0, Callf("unknown duration unit: %s", unit)
}

func isDurDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isDurLetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

// FormatDuration returns a compact representation like "2h30m" or "3d4h".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}

	var sb strings.Builder
	if d < 0 {
		sb.WriteString("-")
		d = -d
	}

	// Days are not part of Go's standard duration formatting.
	days := d / durDay
	d = d % durDay

	if days > 0 {
		sb.WriteString(strconv.FormatInt(int64(days), 10))
		sb.WriteString("d")
	}
	if d > 0 || days == 0 {
		sb.WriteString(d.String())
	}
	return sb.String()
}
