// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package document creates and extends color map XML documents on a
// [hackpadfs.FS]. Documents are never parsed as XML: they are scanned
// line by line for the markers defined in package colormap, and always
// fully rewritten through a temporary file that replaces the original.
//
// Nothing is locked: two concurrent writers on the same document race,
// and one of their color maps may be lost.
package document

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/fsx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/xmlcolormap/colormap"
	"github.com/hack-pad/hackpadfs"
)

var (
	// ErrDuplicateColorMap is returned when the document already
	// contains a color map with the requested name.
	ErrDuplicateColorMap = errors.New("color map already exists")

	// ErrMalformedDocument is returned when an existing document
	// has no line starting with the closing </ColorMaps> marker.
	ErrMalformedDocument = errors.New("malformed color map document: no " + colormap.RootClose + " line")
)

// Mode is the way a color map is added to a document.
type Mode int32

const (
	// Create writes a new document containing only the color map.
	Create Mode = iota

	// Append inserts the color map before the end of an existing document.
	Append
)

func (m Mode) String() string {
	switch m {
	case Create:
		return "create"
	case Append:
		return "append"
	}
	return fmt.Sprintf("Mode(%d)", int32(m))
}

// Perm is the permission used for written documents.
const Perm hackpadfs.FileMode = 0o644

// Check returns the [Mode] in which a color map with the given name
// would be added to the document at path. It returns an error wrapping
// [ErrDuplicateColorMap] if the name is taken, and [ErrMalformedDocument]
// if the document cannot be extended.
func Check(fsys hackpadfs.FS, path, name string) (Mode, error) {
	content, err := read(fsys, path)
	if err != nil {
		return Create, err
	}
	mode, _, err := scan(content, path, name)
	return mode, err
}

// Write adds the given color map to the document at path, creating the
// document if it does not exist or is blank, and appending to it
// otherwise. It returns the mode that was used. The document is not
// modified if an error wrapping [ErrDuplicateColorMap] or
// [ErrMalformedDocument] is returned.
func Write(fsys hackpadfs.FS, path string, cm *colormap.ColorMap) (Mode, error) {
	slog.Info("reading color map document to check if the color map already exists", "file", path, "name", cm.Name)
	content, err := read(fsys, path)
	if err != nil {
		return Create, err
	}
	mode, head, err := scan(content, path, cm.Name)
	if err != nil {
		return mode, err
	}
	var b bytes.Buffer
	switch mode {
	case Create:
		slog.Info("creating color map document", "file", path, "name", cm.Name)
		err = colormap.WriteDocument(&b, cm)
	case Append:
		slog.Info("color map not found in document, appending", "file", path, "name", cm.Name)
		for _, ln := range head {
			b.WriteString(ln)
			b.WriteByte('\n')
		}
		err = cm.WriteBlock(&b)
		b.WriteString(colormap.RootClose + "\n")
	}
	if err != nil {
		return mode, err
	}
	return mode, replace(fsys, path, b.Bytes())
}

// TempPath returns the path of the temporary file that replaces the
// document at path. It is left behind if the final rename fails,
// in which case it holds the complete new document.
func TempPath(p string) string {
	return path.Join(path.Dir(p), "."+path.Base(p)+".tmp")
}

// read returns the content of the document at path,
// or "" if it does not exist.
func read(fsys hackpadfs.FS, path string) (string, error) {
	exists, err := fsx.FileExistsFS(fsys, path)
	if err != nil {
		return "", fmt.Errorf("reading color map document %q: %w", path, err)
	}
	if !exists {
		return "", nil
	}
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return "", fmt.Errorf("reading color map document %q: %w", path, err)
	}
	return string(b), nil
}

// scan checks the document content for the given color map name.
// For [Append] it also returns the lines preceding the closing marker.
func scan(content, path, name string) (Mode, []string, error) {
	if strings.TrimSpace(content) == "" {
		return Create, nil, nil
	}
	attr := colormap.NameAttr(name)
	lines := strings.Split(content, "\n")
	for i, ln := range lines {
		switch {
		case strings.HasPrefix(ln, colormap.MapOpenPrefix):
			if strings.Contains(ln, attr) {
				return Append, nil, fmt.Errorf("%w: %q in %q", ErrDuplicateColorMap, name, path)
			}
		case strings.HasPrefix(ln, colormap.RootClose):
			logx.PrintlnDebug("found", colormap.RootClose, "on line", i+1, "of", path)
			return Append, lines[:i], nil
		}
	}
	return Append, nil, fmt.Errorf("%w: %q", ErrMalformedDocument, path)
}

// replace writes data to the temporary file of path and then renames
// it over path.
func replace(fsys hackpadfs.FS, path string, data []byte) error {
	tmp := TempPath(path)
	if err := hackpadfs.WriteFullFile(fsys, tmp, data, Perm); err != nil {
		hackpadfs.Remove(fsys, tmp)
		return fmt.Errorf("writing temporary file %q: %w", tmp, err)
	}
	if err := hackpadfs.Rename(fsys, tmp, path); err != nil {
		return fmt.Errorf("replacing color map document %q with %q: %w", path, tmp, err)
	}
	return nil
}
