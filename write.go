// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xmlcolormap

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/xmlcolormap/colormap"
	"cogentcore.org/xmlcolormap/document"
	"cogentcore.org/xmlcolormap/formula"
	"github.com/hack-pad/hackpadfs"
	"github.com/muesli/termenv"
)

// Generate returns the color map described by the given config,
// without touching any document. It fails for an invalid
// [Config.System] or [Config.Samples].
func Generate(c *Config) (*colormap.ColorMap, error) {
	set, err := formula.Get(c.System)
	if err != nil {
		return nil, err
	}
	xs, err := colormap.Samples(c.Samples)
	if err != nil {
		return nil, err
	}
	cm := colormap.New(c.Name, c.Space, set, xs)
	for _, p := range cm.Points {
		logx.PrintlnDebug("sample", colormap.PointLine(p))
	}
	if n := cm.OutOfGamut(); n > 0 {
		slog.Warn("color channels outside of [0, 1] are written unclamped", "name", c.Name, "system", int(c.System), "points", n)
	}
	return cm, nil
}

// Write adds a new color map to the document, creating the document
// if it does not exist yet. It fails without modifying the document if
// the document already contains a color map with the same name.
func Write(c *Config) error {
	p, err := c.Path()
	if err != nil {
		return err
	}
	fsys, fp, err := document.OSFS(p)
	if err != nil {
		return err
	}
	return WriteFS(os.Stdout, fsys, fp, c)
}

// WriteFS is [Write] on the document at path in the given filesystem,
// reporting success to w. With [Config.DryRun], the document is only
// checked and reported on.
func WriteFS(w io.Writer, fsys hackpadfs.FS, path string, c *Config) error {
	cm, err := Generate(c)
	if err != nil {
		return err
	}
	var mode document.Mode
	if c.DryRun {
		mode, err = document.Check(fsys, path, cm.Name)
	} else {
		mode, err = document.Write(fsys, path, cm)
	}
	if err != nil {
		return err
	}
	verb := "Created"
	switch {
	case c.DryRun && mode == document.Append:
		verb = "Would append to"
	case c.DryRun:
		verb = "Would create"
	case mode == document.Append:
		verb = "Appended to"
	}
	out := termenv.NewOutput(w)
	_, err = fmt.Fprintf(w, "%s %s with color map %s (%d points, system %d)\n",
		verb, c.File, out.String(cm.Name).Bold(), len(cm.Points), int(c.System))
	return err
}
