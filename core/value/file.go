/*
SPDX-License-Identifier: Apache-2.0

Copyright 2026 The Notebase Authors
*/

package value

import (
	"path"
	"strings"
	"time"
)

// Link is a wiki link or URL with an optional display text.
type Link struct {
	Target  string
	Display string
}

func (l *Link) String() string {
	if l.Display != "" {
		return l.Target + "|" + l.Display
	}
	return l.Target
}

// Frontmatter is the parsed YAML metadata block of a note. The known fields
// are kept separately; everything else lands in Extra.
type Frontmatter struct {
	Tags       []string
	Aliases    []string
	CSSClasses []string
	Extra      map[string]Value
}

// HasField reports whether the frontmatter defines the named property,
// checking the known fields before the generic map.
func (fm *Frontmatter) HasField(name string) bool {
	if fm == nil {
		return false
	}
	switch name {
	case "tags":
		return fm.Tags != nil
	case "aliases":
		return fm.Aliases != nil
	case "cssclasses":
		return fm.CSSClasses != nil
	}
	_, ok := fm.Extra[name]
	return ok
}

// FileInfo is the per-note evaluation context: path, filesystem metadata,
// extracted links and tags, and the optional frontmatter. It is built once
// by the vault reader and treated as read-only afterwards.
type FileInfo struct {
	Path        string
	Size        int64
	CTime       time.Time // zero when the platform cannot report it
	MTime       time.Time
	Tags        []string // sorted, deduplicated
	Links       []string // link target paths in order of appearance
	Frontmatter *Frontmatter
}

// Methods and fields available on file values.

var fileMethods = map[string]methodFunc{
	"hasTag":      fileHasTag,
	"hasLink":     fileHasLink,
	"inFolder":    fileInFolder,
	"hasProperty": fileHasProperty,
	"asLink":      fileAsLink,
}

var fileFields = map[string]fieldFunc{
	"name": func(v Value) Value {
		base := path.Base(v.file.Path)
		return NewString(strings.TrimSuffix(base, path.Ext(base)))
	},
	"path": func(v Value) Value { return NewString(v.file.Path) },
	"ext": func(v Value) Value {
		return NewString(strings.TrimPrefix(path.Ext(v.file.Path), "."))
	},
	"folder": func(v Value) Value { return NewString(fileParent(v.file.Path)) },
	"size":   func(v Value) Value { return NewInt(v.file.Size) },
	"ctime": func(v Value) Value {
		if v.file.CTime.IsZero() {
			return Null()
		}
		return NewDateTime(v.file.CTime)
	},
	"mtime": func(v Value) Value {
		if v.file.MTime.IsZero() {
			return Null()
		}
		return NewDateTime(v.file.MTime)
	},
	"tags": func(v Value) Value {
		items := make([]Value, len(v.file.Tags))
		for i, tag := range v.file.Tags {
			items[i] = NewString(tag)
		}
		return NewList(items)
	},
	"links": func(v Value) Value {
		items := make([]Value, len(v.file.Links))
		for i, target := range v.file.Links {
			items[i] = NewString(target)
		}
		return NewList(items)
	},
}

func fileParent(p string) string {
	parent := path.Dir(p)
	if parent == "." || parent == "/" {
		return ""
	}
	return parent
}

// fileHasTag reports whether the file carries any of the given tags.
func fileHasTag(v Value, args []Value) (Value, error) {
	if len(args) == 0 {
		return Value{}, &ArgumentCountError{Expected: 1, Found: 0}
	}
	for i := range args {
		tag, err := stringArg(args, i)
		if err != nil {
			return Value{}, err
		}
		for _, have := range v.file.Tags {
			if have == tag {
				return NewBool(true), nil
			}
		}
	}
	return NewBool(false), nil
}

// fileHasLink reports whether the file links to the target. String targets
// match by substring or by file stem; file targets match by exact path.
// The loose string matching is a known approximation that callers depend
// on, so it stays substring-based rather than doing proper path matching.
func fileHasLink(v Value, args []Value) (Value, error) {
	if err := exactArgs(args, 1); err != nil {
		return Value{}, err
	}
	switch arg := args[0]; arg.kind {
	case KindString:
		target := arg.str
		for _, link := range v.file.Links {
			if strings.Contains(link, target) || linkStem(link) == target {
				return NewBool(true), nil
			}
		}
		return NewBool(false), nil
	case KindFile:
		for _, link := range v.file.Links {
			if link == arg.file.Path {
				return NewBool(true), nil
			}
		}
		return NewBool(false), nil
	default:
		return Value{}, &ArgumentTypeError{Index: 0, Found: arg.TypeName(), Expected: "string or file"}
	}
}

func linkStem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// fileInFolder reports whether the file sits in the named folder. The
// parent path may equal the folder or contain it as a leading, trailing,
// or interior segment; matching is deliberately loose.
func fileInFolder(v Value, args []Value) (Value, error) {
	if err := exactArgs(args, 1); err != nil {
		return Value{}, err
	}
	folder, err := stringArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	parent := fileParent(v.file.Path)
	in := parent == folder ||
		strings.HasPrefix(parent, folder+"/") ||
		strings.HasSuffix(parent, "/"+folder) ||
		strings.Contains(parent, "/"+folder+"/")
	return NewBool(in), nil
}

// fileHasProperty reports whether the frontmatter defines the named
// property.
func fileHasProperty(v Value, args []Value) (Value, error) {
	if err := exactArgs(args, 1); err != nil {
		return Value{}, err
	}
	name, err := stringArg(args, 0)
	if err != nil {
		return Value{}, err
	}
	return NewBool(v.file.Frontmatter.HasField(name)), nil
}

// fileAsLink returns the file as a link value with an optional display.
func fileAsLink(v Value, args []Value) (Value, error) {
	if len(args) > 1 {
		return Value{}, &ArgumentCountError{Expected: 1, Found: len(args)}
	}
	display := ""
	if len(args) == 1 {
		var err error
		display, err = stringArg(args, 0)
		if err != nil {
			return Value{}, err
		}
	}
	return NewLink(v.file.Path, display), nil
}
