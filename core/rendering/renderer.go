/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package rendering

import (
	"embed"
	"io"

	"github.com/google/safehtml/template"
)

//go:embed templates/*
var templateFS embed.FS

// HTMLRenderer renders view results to HTML.
type HTMLRenderer struct {
	tableTemplate *template.Template
}

// NewHTMLRenderer parses the embedded templates.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	tableTemplate, err := template.New("table.html").ParseFS(trustedFS, "templates/table.html")
	if err != nil {
		return nil, err
	}

	return &HTMLRenderer{tableTemplate: tableTemplate}, nil
}

// Render writes the result as an HTML table.
func (r *HTMLRenderer) Render(w io.Writer, result *Result) error {
	return r.tableTemplate.Execute(w, result)
}
