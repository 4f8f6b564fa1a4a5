// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/xmlcolormap/formula"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linear is a simple formula set with exactly representable outputs.
var linear = formula.Set{
	Red:   func(x float64) float64 { return x },
	Green: func(x float64) float64 { return 1 - x },
	Blue:  func(x float64) float64 { return 0.5 },
}

func TestSamples(t *testing.T) {
	xs, err := Samples(10)
	require.NoError(t, err)
	require.Len(t, xs, 10)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 1.0, xs[9])
	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
		assert.InDelta(t, 1.0/9, xs[i]-xs[i-1], 1e-12)
		assert.InDelta(t, float64(i)/9, xs[i], 1e-15)
	}

	xs, err = Samples(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1}, xs)

	xs, err = Samples(5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, xs)
}

func TestSamplesInvalid(t *testing.T) {
	for _, n := range []int{1, 0, -3} {
		xs, err := Samples(n)
		assert.ErrorIs(t, err, ErrSampleCount)
		assert.Nil(t, xs)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{-0.25, "-0.25"},
		{1.0 / 9, "0.1111111111111111"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{2.5e-7, "2.5e-07"},
		{123456789, "123456789.0"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{-2.5e16, "-2.5e+16"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFloat(tt.in), "%v", tt.in)
	}
}

func TestWriteBlock(t *testing.T) {
	cm := New("A", "RGB", linear, errors.Must1(Samples(3)))
	var b bytes.Buffer
	require.NoError(t, cm.WriteBlock(&b))
	want := `<ColorMap name="A" space="RGB">
<Point x="0.0" o="1" r="0.0" g="1.0" b="0.5"/>
<Point x="0.5" o="1" r="0.5" g="0.5" b="0.5"/>
<Point x="1.0" o="1" r="1.0" g="0.0" b="0.5"/>
</ColorMap>
`
	assert.Equal(t, want, b.String())
}

func TestWriteDocument(t *testing.T) {
	a := New("A", "RGB", linear, errors.Must1(Samples(2)))
	b := New("B", "Lab", linear, errors.Must1(Samples(2)))
	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, a, b))
	want := `<ColorMaps>
<ColorMap name="A" space="RGB">
<Point x="0.0" o="1" r="0.0" g="1.0" b="0.5"/>
<Point x="1.0" o="1" r="1.0" g="0.0" b="0.5"/>
</ColorMap>
<ColorMap name="B" space="Lab">
<Point x="0.0" o="1" r="0.0" g="1.0" b="0.5"/>
<Point x="1.0" o="1" r="1.0" g="0.0" b="0.5"/>
</ColorMap>
</ColorMaps>
`
	assert.Equal(t, want, buf.String())
}

func TestPointValues(t *testing.T) {
	set := errors.Must1(formula.Get(formula.Tol3))
	xs := errors.Must1(Samples(10))
	cm := New("Tol3", "RGB", set, xs)
	require.Len(t, cm.Points, 10)
	for i, p := range cm.Points {
		assert.Equal(t, xs[i], p.X)
		assert.Equal(t, 1.0, p.Opacity)
		assert.Equal(t, set.Red(xs[i]), p.Color.R)
		assert.Equal(t, set.Green(xs[i]), p.Color.G)
		assert.Equal(t, set.Blue(xs[i]), p.Color.B)
	}

	// each attribute parses back to the exact value written
	var b bytes.Buffer
	require.NoError(t, cm.WriteBlock(&b))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	for i, ln := range lines[1:11] {
		p := cm.Points[i]
		want := []float64{p.X, p.Opacity, p.Color.R, p.Color.G, p.Color.B}
		for j, key := range []string{"x", "o", "r", "g", "b"} {
			_, rest, ok := strings.Cut(ln, " "+key+`="`)
			require.True(t, ok, ln)
			val, _, _ := strings.Cut(rest, `"`)
			assert.Equal(t, want[j], errors.Must1(strconv.ParseFloat(val, 64)), ln)
		}
	}
}

func TestOutOfGamut(t *testing.T) {
	cm := &ColorMap{Name: "A", Space: "RGB"}
	cm.AddPoint(0, colorful.Color{R: 0, G: 0.5, B: 1})
	assert.Equal(t, 0, cm.OutOfGamut())
	cm.AddPoint(0.5, colorful.Color{R: 1.2, G: 0.5, B: 1}, 0.5)
	cm.AddPoint(1, colorful.Color{R: 0, G: -0.01, B: 1})
	assert.Equal(t, 2, cm.OutOfGamut())
	assert.Equal(t, 0.5, cm.Points[1].Opacity)
	assert.Equal(t, `<Point x="0.5" o="0.5" r="1.2" g="0.5" b="1.0"/>`, PointLine(cm.Points[1]))
}

func TestGolden(t *testing.T) {
	tests := []struct {
		file    string
		name    string
		system  formula.System
		samples int
	}{
		{"tol3-10.xml", "Tol3", formula.Tol3, 10},
		{"tol3-7.xml", "Tol3", formula.Tol3, 7},
		{"tol3-50.xml", "Tol3", formula.Tol3, 50},
		{"tol2-10.xml", "Tol2", formula.Tol2, 10},
		{"tol2-50.xml", "Tol2", formula.Tol2, 50},
	}
	for _, test := range tests {
		t.Run(test.file, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("testdata", test.file))
			require.NoError(t, err)
			set, err := formula.Get(test.system)
			require.NoError(t, err)
			xs, err := Samples(test.samples)
			require.NoError(t, err)
			var b bytes.Buffer
			require.NoError(t, WriteDocument(&b, New(test.name, "RGB", set, xs)))
			assert.Equal(t, string(want), b.String())
		})
	}
}
