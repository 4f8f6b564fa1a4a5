// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xmlcolormap

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/xmlcolormap/document"
	"github.com/hack-pad/hackpadfs"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// List prints the color maps of the document.
func List(c *Config) error {
	p, err := c.Path()
	if err != nil {
		return err
	}
	fsys, fp, err := document.OSFS(p)
	if err != nil {
		return err
	}
	return ListFS(os.Stdout, fsys, fp, c)
}

// ListFS is [List] on the document at path in the given filesystem,
// printing to w in [Config.Format].
func ListFS(w io.Writer, fsys hackpadfs.FS, path string, c *Config) error {
	es, err := document.List(fsys, path)
	if err != nil {
		return err
	}
	switch c.Format {
	case "", "text":
		out := termenv.NewOutput(w)
		for _, e := range es {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%d points\n", out.String(e.Name).Bold(), e.Space, e.Points); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		b, err := yaml.Marshal(es)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "toml":
		b, err := toml.Marshal(struct {
			ColorMaps []document.Entry `toml:"color_maps"`
		}{es})
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("invalid list format %q: must be text, yaml, or toml", c.Format)
}
