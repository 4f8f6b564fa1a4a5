// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides named color maps sampled from analytic
// formulas, and their text representation in the ParaView color map
// XML format:
//
//	<ColorMaps>
//	<ColorMap name="NAME" space="SPACE">
//	<Point x="X" o="1" r="R" g="G" b="B"/>
//	</ColorMap>
//	</ColorMaps>
//
// Every marker is on its own line, which is what allows documents to be
// checked and extended with simple line prefix scans.
package colormap

import (
	"bufio"
	"io"
	"strconv"

	"cogentcore.org/xmlcolormap/formula"
	"github.com/lucasb-eyer/go-colorful"
)

// Markers of the document format. Each one starts a line.
const (
	RootOpen      = "<ColorMaps>"
	RootClose     = "</ColorMaps>"
	MapOpenPrefix = "<ColorMap "
	MapClose      = "</ColorMap>"
	PointPrefix   = "<Point "
)

// Point represents a single sample point of a color map.
type Point struct {

	// X is the position of the point between 0 and 1.
	X float64

	// Color is the color at the point. Channels are not clamped.
	Color colorful.Color

	// Opacity is the 0-1 level of opacity of the point.
	Opacity float64
}

// ColorMap is a named, ordered list of sample points.
type ColorMap struct {

	// Name identifies the color map within a document.
	Name string

	// Space is the color space label, stored verbatim (e.g. "RGB").
	Space string

	// Points are the sample points in increasing X order.
	Points []Point
}

// New returns a new color map with the given name and color space,
// with one fully opaque point per position in xs, colored by set.
func New(name, space string, set formula.Set, xs []float64) *ColorMap {
	cm := &ColorMap{Name: name, Space: space, Points: make([]Point, 0, len(xs))}
	for _, x := range xs {
		cm.AddPoint(x, set.Eval(x))
	}
	return cm
}

// AddPoint adds a new point with the given position and color,
// and an optional opacity that defaults to 1.
func (cm *ColorMap) AddPoint(x float64, clr colorful.Color, opacity ...float64) {
	op := 1.0
	if len(opacity) > 0 {
		op = opacity[0]
	}
	cm.Points = append(cm.Points, Point{X: x, Color: clr, Opacity: op})
}

// OutOfGamut returns the number of points that have a color channel
// outside of [0, 1]. Such points are written as they are.
func (cm *ColorMap) OutOfGamut() int {
	n := 0
	for _, p := range cm.Points {
		if !p.Color.IsValid() {
			n++
		}
	}
	return n
}

// OpenTag returns the opening marker line of the color map, without a newline.
func (cm *ColorMap) OpenTag() string {
	return MapOpenPrefix + NameAttr(cm.Name) + ` space="` + cm.Space + `">`
}

// NameAttr returns the name attribute identifying a color map with the given name.
func NameAttr(name string) string {
	return `name="` + name + `"`
}

// PointLine returns the line of the given point, without a newline.
// Opacity is written in its shortest form, so full opacity is o="1".
func PointLine(p Point) string {
	return PointPrefix + `x="` + FormatFloat(p.X) + `" o="` + strconv.FormatFloat(p.Opacity, 'g', -1, 64) +
		`" r="` + FormatFloat(p.Color.R) + `" g="` + FormatFloat(p.Color.G) +
		`" b="` + FormatFloat(p.Color.B) + `"/>`
}

// WriteBlock writes the ColorMap block of cm, from its opening
// marker through its closing marker, each line ending in a newline.
func (cm *ColorMap) WriteBlock(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(cm.OpenTag() + "\n")
	for _, p := range cm.Points {
		bw.WriteString(PointLine(p) + "\n")
	}
	bw.WriteString(MapClose + "\n")
	return bw.Flush()
}

// WriteDocument writes a complete document containing the given color maps.
func WriteDocument(w io.Writer, maps ...*ColorMap) error {
	if _, err := io.WriteString(w, RootOpen+"\n"); err != nil {
		return err
	}
	for _, cm := range maps {
		if err := cm.WriteBlock(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, RootClose+"\n")
	return err
}
