/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package rendering

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/notebase/notebase/core/prepared"
	"github.com/notebase/notebase/core/value"
	"github.com/notebase/notebase/core/vault"
)

func testVault() *vault.Vault {
	note := func(path string, price float64, status string, tags ...string) vault.Note {
		return vault.Note{
			Path:  path,
			Size:  1024,
			MTime: time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local),
			Tags:  tags,
			Frontmatter: &value.Frontmatter{
				Tags: tags,
				Extra: map[string]value.Value{
					"price":  value.NewFloat(price),
					"status": value.NewString(status),
				},
			},
		}
	}
	return &vault.Vault{
		Root: "vault",
		Notes: []vault.Note{
			note("books/cheap.md", 5, "open", "book"),
			note("books/pricey.md", 30, "open", "book"),
			note("books/done.md", 12, "done", "book"),
			note("notes/misc.md", 1, "open"),
		},
	}
}

func compileBase(t *testing.T, yaml string) *prepared.Base {
	t.Helper()
	base, err := prepared.Compile([]byte(yaml))
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return base
}

func TestRunView(t *testing.T) {
	base := compileBase(t, `filters:
  and:
    - file.hasTag("book")
properties:
  price:
    displayName: Price
views:
  - type: table
    name: Books
    filters:
      and:
        - 'status != "done"'
    order:
      - file.name
      - price
    sort:
      - property: price
        direction: DESC
`)
	view, ok := base.View("Books")
	if !ok {
		t.Fatal("view Books missing")
	}
	result, err := RunView(base, view, testVault())
	if err != nil {
		t.Fatalf("RunView: %v", err)
	}

	wantColumns := []Column{
		{Key: "file.name", Header: "file.name"},
		{Key: "price", Header: "Price"},
	}
	if diff := cmp.Diff(wantColumns, result.Columns); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}

	wantRows := []map[string]string{
		{"file.name": "pricey", "price": "30"},
		{"file.name": "cheap", "price": "5"},
	}
	if diff := cmp.Diff(wantRows, result.Rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if result.Total != 2 || result.HasMore {
		t.Errorf("total = %d, hasMore = %v", result.Total, result.HasMore)
	}
}

func TestRunViewLimit(t *testing.T) {
	base := compileBase(t, `views:
  - type: table
    name: All
    limit: 2
    order:
      - file.name
    sort:
      - property: file.name
        direction: ASC
`)
	view, _ := base.View("All")
	result, err := RunView(base, view, testVault())
	if err != nil {
		t.Fatalf("RunView: %v", err)
	}
	if len(result.Rows) != 2 || result.Total != 4 || !result.HasMore {
		t.Errorf("rows = %d, total = %d, hasMore = %v", len(result.Rows), result.Total, result.HasMore)
	}
	if result.Rows[0]["file.name"] != "cheap" {
		t.Errorf("first row = %v", result.Rows[0])
	}
}

func TestRunViewFormulaColumn(t *testing.T) {
	base := compileBase(t, `formulas:
  label: 'status + ": " + file.name'
views:
  - type: table
    name: Labelled
    filters:
      and:
        - 'formula.label.startsWith("open")'
    order:
      - formula.label
    sort:
      - property: formula.label
        direction: ASC
`)
	view, _ := base.View("Labelled")
	result, err := RunView(base, view, testVault())
	if err != nil {
		t.Fatalf("RunView: %v", err)
	}
	want := []string{"open: cheap", "open: misc", "open: pricey"}
	var got []string
	for _, row := range result.Rows {
		got = append(got, row["formula.label"])
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRunViewSkipsFailingPredicates(t *testing.T) {
	// notes/misc.md has no tags list; price comparison works everywhere,
	// but comparing status to a number errors and drops the note.
	base := compileBase(t, `views:
  - type: table
    name: Odd
    filters:
      and:
        - "status > 5"
    order:
      - file.name
`)
	view, _ := base.View("Odd")
	result, err := RunView(base, view, testVault())
	if err != nil {
		t.Fatalf("RunView: %v", err)
	}
	if len(result.Rows) != 0 {
		t.Errorf("rows = %v, want none", result.Rows)
	}
	if result.Skipped != 4 {
		t.Errorf("skipped = %d, want 4", result.Skipped)
	}
}

func TestToAscii(t *testing.T) {
	result := &Result{
		Columns: []Column{{Key: "a", Header: "Name"}, {Key: "b", Header: "Price"}},
		Rows: []map[string]string{
			{"a": "cheap", "b": "5"},
			{"a": "pricey", "b": "30"},
		},
		Total: 2,
	}
	want := strings.Join([]string{
		"+--------+-------+",
		"| Name   | Price |",
		"+--------+-------+",
		"| cheap  | 5     |",
		"| pricey | 30    |",
		"+--------+-------+",
		"",
	}, "\n")
	if diff := cmp.Diff(want, result.ToAscii()); diff != "" {
		t.Errorf("ascii mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderJSON(t *testing.T) {
	result := &Result{
		View:    "Books",
		Columns: []Column{{Key: "price", Header: "Price"}},
		Rows:    []map[string]string{{"price": "5"}},
		Total:   3,
		HasMore: true,
	}
	var buf bytes.Buffer
	if err := result.RenderJSON(&buf); err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["view"] != "Books" || decoded["total"] != float64(3) || decoded["hasMore"] != true {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestRenderHTML(t *testing.T) {
	renderer, err := NewHTMLRenderer()
	if err != nil {
		t.Fatalf("NewHTMLRenderer: %v", err)
	}
	result := &Result{
		View:    "Books",
		Columns: []Column{{Key: "a", Header: "Name"}},
		Rows:    []map[string]string{{"a": "<script>alert(1)</script>"}},
	}
	var buf bytes.Buffer
	if err := renderer.Render(&buf, result); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "<th>Name</th>") {
		t.Errorf("missing header in %q", html)
	}
	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("cell content not escaped")
	}
}
