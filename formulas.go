// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xmlcolormap

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/xmlcolormap/formula"
	"github.com/muesli/termenv"
)

// Formulas prints the available formula systems.
func Formulas(c *Config) error {
	return FormulasTo(os.Stdout, c)
}

// FormulasTo is [Formulas] printing to w,
// with the configured system in bold.
func FormulasTo(w io.Writer, c *Config) error {
	out := termenv.NewOutput(w)
	for _, s := range formula.Systems() {
		line := fmt.Sprintf("%d  %s", int(s), s.Doc())
		mark := " "
		if s == c.System {
			mark = "*"
			line = out.String(line).Bold().String()
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", mark, line); err != nil {
			return err
		}
	}
	return nil
}
