/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package rendering

import (
	"encoding/json"
	"io"
)

// jsonResult is the wire shape of a result. Rows stay keyed by column key.
type jsonResult struct {
	View    string              `json:"view,omitempty"`
	Columns []jsonColumn        `json:"columns"`
	Rows    []map[string]string `json:"rows"`
	Total   int                 `json:"total"`
	HasMore bool                `json:"hasMore,omitempty"`
}

type jsonColumn struct {
	Key    string `json:"key"`
	Header string `json:"header"`
}

// RenderJSON writes the result as indented JSON.
func (r *Result) RenderJSON(w io.Writer) error {
	out := jsonResult{
		View:    r.View,
		Columns: make([]jsonColumn, len(r.Columns)),
		Rows:    r.Rows,
		Total:   r.Total,
		HasMore: r.HasMore,
	}
	if out.Rows == nil {
		out.Rows = []map[string]string{}
	}
	for i, col := range r.Columns {
		out.Columns[i] = jsonColumn{Key: col.Key, Header: col.Header}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
