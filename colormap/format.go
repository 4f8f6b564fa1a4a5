// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat returns the text form of f used for all numeric attributes.
// It uses the shortest representation that parses back to f, in plain
// decimal notation with at least one fractional digit when
// 1e-4 <= |f| < 1e16 (and for zero), and in exponent notation otherwise
// (1e-05, 2.5e+16). Non-finite values are written as nan, inf and -inf.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	a := math.Abs(f)
	if a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
