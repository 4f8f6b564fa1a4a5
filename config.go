// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xmlcolormap generates ParaView color map XML documents from
// the analytic color schemes in package formula. It provides the
// configuration and commands of the xmlcolormap tool.
package xmlcolormap

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/xmlcolormap/formula"
	"github.com/mitchellh/go-homedir"
)

// Config is the configuration information for the xmlcolormap tool.
type Config struct {

	// File is the color map document to create or append to.
	// A leading ~ is expanded to the home directory.
	File string `default:"ColorMap.xml" flag:"f,file"`

	// Name is the name of the color map, which must
	// not already exist in the document.
	Name string `default:"Tol3" flag:"n,name"`

	// Space is the color space label written for the color map.
	// It is written as it is.
	Space string `default:"RGB"`

	// Samples is the number of evenly spaced sample points
	// over [0, 1], including both ends. It must be at least 2.
	Samples int `default:"10"`

	// System is the formula system used to compute the colors of the samples.
	// See the formulas command for the available systems.
	System formula.System `default:"3"`

	// DryRun reports whether the color map would be created or appended
	// without writing the document.
	DryRun bool `cmd:"write" flag:"dry-run"`

	// Format is the output format of the list command: text, yaml, or toml.
	Format string `cmd:"list" default:"text"`
}

// Defaults returns a new [Config] with all fields
// set to their default values.
func Defaults() *Config {
	c := &Config{}
	errors.Log(cli.SetFromDefaults(c))
	return c
}

// Path returns [Config.File] with any leading ~ expanded.
func (c *Config) Path() (string, error) {
	return homedir.Expand(c.File)
}
