/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

// Package vault reads a directory of markdown notes. The walker collects
// every .md file with its filesystem metadata, splits off the frontmatter
// block, and extracts tags and links from the body. Paths are always
// slash-separated and relative to the vault root.
package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/oarkflow/log"

	"github.com/notebase/notebase/core/value"
)

// Note is one markdown file of the vault.
type Note struct {
	// Path is slash-separated and relative to the vault root.
	Path        string
	Size        int64
	MTime       time.Time
	Body        string
	Frontmatter *value.Frontmatter
	Tags        []string
	Links       []string
}

// FileValue builds the file value backing file.* references for this note.
// Creation time is left zero; the platform APIs for it are not portable,
// so file.ctime resolves to null.
func (n *Note) FileValue() value.Value {
	return value.NewFile(&value.FileInfo{
		Path:        n.Path,
		Size:        n.Size,
		MTime:       n.MTime,
		Tags:        n.Tags,
		Links:       n.Links,
		Frontmatter: n.Frontmatter,
	})
}

// Properties builds the note.* property map from the frontmatter.
func (n *Note) Properties() map[string]value.Value {
	props := make(map[string]value.Value)
	if n.Frontmatter == nil {
		return props
	}
	if n.Frontmatter.Tags != nil {
		props["tags"] = stringList(n.Frontmatter.Tags)
	}
	if n.Frontmatter.Aliases != nil {
		props["aliases"] = stringList(n.Frontmatter.Aliases)
	}
	if n.Frontmatter.CSSClasses != nil {
		props["cssclasses"] = stringList(n.Frontmatter.CSSClasses)
	}
	for name, val := range n.Frontmatter.Extra {
		props[name] = val
	}
	return props
}

func stringList(items []string) value.Value {
	values := make([]value.Value, len(items))
	for i, s := range items {
		values[i] = value.NewString(s)
	}
	return value.NewList(values)
}

// Vault is the result of reading a note directory.
type Vault struct {
	Root  string
	Notes []Note
}

// Read walks root recursively and loads every .md file. Unreadable files
// are logged and skipped; a missing root is an error.
func Read(root string) (*Vault, error) {
	return ReadWith(root, &log.DefaultLogger)
}

// ReadWith is Read with an explicit logger.
func ReadWith(root string, logger *log.Logger) (*Vault, error) {
	v := &Vault{Root: root}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories like .obsidian hold configuration,
			// not notes.
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		note, err := loadNote(root, path, d)
		if err != nil {
			logger.Warn().Str("path", path).Err(err).Msg("skipping unreadable note")
			return nil
		}
		v.Notes = append(v.Notes, note)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading vault %s: %w", root, err)
	}
	sort.Slice(v.Notes, func(i, j int) bool { return v.Notes[i].Path < v.Notes[j].Path })
	logger.Debug().Str("root", root).Int("notes", len(v.Notes)).Msg("vault loaded")
	return v, nil
}

func loadNote(root, path string, d fs.DirEntry) (Note, error) {
	info, err := d.Info()
	if err != nil {
		return Note{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Note{}, err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Note{}, err
	}

	front, body, err := SplitFrontmatter(string(data))
	if err != nil {
		return Note{}, err
	}

	note := Note{
		Path:        filepath.ToSlash(rel),
		Size:        info.Size(),
		MTime:       info.ModTime(),
		Body:        body,
		Frontmatter: front,
		Links:       ExtractLinks(body),
	}
	note.Tags = collectTags(front, body)
	return note, nil
}

// collectTags merges frontmatter and inline tags, sorted and deduplicated.
func collectTags(front *value.Frontmatter, body string) []string {
	seen := make(map[string]bool)
	var tags []string
	add := func(tag string) {
		tag = strings.TrimPrefix(tag, "#")
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	if front != nil {
		for _, tag := range front.Tags {
			add(tag)
		}
	}
	for _, tag := range ExtractInlineTags(body) {
		add(tag)
	}
	sort.Strings(tags)
	return tags
}
