// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xmlcolormap generates ParaView color map XML documents
// from analytic color schemes.
package main

import (
	"cogentcore.org/core/cli"
	"cogentcore.org/xmlcolormap"
)

func main() {
	opts := cli.DefaultOptions("xmlcolormap", "Xmlcolormap creates and extends ParaView color map XML documents using analytic color schemes.")
	opts.DefaultFiles = []string{"xmlcolormap.toml"}
	cli.Run(opts, &xmlcolormap.Config{},
		&cli.Cmd[*xmlcolormap.Config]{Func: xmlcolormap.Write, Name: "write", Doc: "adds a new color map to the document, creating the document if needed", Root: true},
		&cli.Cmd[*xmlcolormap.Config]{Func: xmlcolormap.List, Name: "list", Doc: "prints the color maps of the document"},
		&cli.Cmd[*xmlcolormap.Config]{Func: xmlcolormap.Formulas, Name: "formulas", Doc: "prints the available formula systems"},
	)
}
