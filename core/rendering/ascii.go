/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package rendering

import (
	"fmt"
	"strings"
)

// ToAscii returns the result as a table with ASCII borders. Column widths
// fit the widest cell or header.
func (r *Result) ToAscii() string {
	var sb strings.Builder

	widths := r.columnWidths()

	writeRule := func() {
		for _, w := range widths {
			sb.WriteString("+")
			sb.WriteString(strings.Repeat("-", w+2))
		}
		sb.WriteString("+\n")
	}
	writeRow := func(cells []string) {
		for i, cell := range cells {
			sb.WriteString(fmt.Sprintf("| %-*s ", widths[i], cell))
		}
		sb.WriteString("|\n")
	}

	writeRule()
	headers := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		headers[i] = col.Header
	}
	writeRow(headers)
	writeRule()
	for _, row := range r.Rows {
		cells := make([]string, len(r.Columns))
		for i, col := range r.Columns {
			cells[i] = row[col.Key]
		}
		writeRow(cells)
	}
	writeRule()

	if r.HasMore {
		sb.WriteString(fmt.Sprintf("%d of %d rows\n", len(r.Rows), r.Total))
	}
	return sb.String()
}

func (r *Result) columnWidths() []int {
	widths := make([]int, len(r.Columns))
	for i, col := range r.Columns {
		widths[i] = len(col.Header)
		if widths[i] < 1 {
			widths[i] = 1
		}
	}
	for _, row := range r.Rows {
		for i, col := range r.Columns {
			if n := len(row[col.Key]); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}
