// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package document

import (
	"fmt"
	"io/fs"
	"strings"

	"cogentcore.org/xmlcolormap/colormap"
	"github.com/hack-pad/hackpadfs"
)

// Entry describes one color map block of a document.
type Entry struct {
	Name   string `yaml:"name" toml:"name"`
	Space  string `yaml:"space" toml:"space"`
	Points int    `yaml:"points" toml:"points"`
}

// List returns the color maps of the document at path, in document order,
// using the same line prefix scan as [Write]. A blank document has no
// entries. If the closing marker is missing, the entries found so far
// are returned with an error wrapping [ErrMalformedDocument].
func List(fsys hackpadfs.FS, path string) ([]Entry, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading color map document %q: %w", path, err)
	}
	content := string(b)
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}
	var es []Entry
	var cur *Entry
	for _, ln := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(ln, colormap.MapOpenPrefix):
			es = append(es, Entry{Name: attr(ln, "name"), Space: attr(ln, "space")})
			cur = &es[len(es)-1]
		case strings.HasPrefix(ln, colormap.PointPrefix):
			if cur != nil {
				cur.Points++
			}
		case strings.HasPrefix(ln, colormap.MapClose):
			cur = nil
		case strings.HasPrefix(ln, colormap.RootClose):
			return es, nil
		}
	}
	return es, fmt.Errorf("%w: %q", ErrMalformedDocument, path)
}

// attr returns the value of the given attribute on a marker line,
// or "" if it is not there.
func attr(line, key string) string {
	_, rest, ok := strings.Cut(line, " "+key+`="`)
	if !ok {
		return ""
	}
	v, _, _ := strings.Cut(rest, `"`)
	return v
}
