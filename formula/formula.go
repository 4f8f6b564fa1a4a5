// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package formula provides the analytic color map equations given in
// Paul Tol, 2012, "Colour Schemes", SRON Technical Note SRON/EPS/TN/09-002
// (https://personal.sron.nl/~pault/colourschemes.pdf). Each equation
// system maps a scalar position to red, green, and blue channel values.
package formula

import (
	"fmt"
	"math"
	"math/big"

	"cogentcore.org/core/base/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidSelector is returned by [Get] for a [System] that does not exist.
var ErrInvalidSelector = errors.New("invalid formula system")

// Func is a single color channel equation, evaluated at position x.
type Func func(x float64) float64

// Set is the triple of channel equations making up one equation system.
type Set struct {
	Red   Func
	Green Func
	Blue  Func
}

// Eval evaluates all three channels at x. The result is not clamped,
// so channels may fall outside of [0, 1] near the edges of the domain;
// see [colorful.Color.IsValid].
func (s Set) Eval(x float64) colorful.Color {
	return colorful.Color{R: s.Red(x), G: s.Green(x), B: s.Blue(x)}
}

// System selects one of the equation systems.
type System int

const (
	// Tol1 is system (1) p.7, a sequence of error function blends.
	Tol1 System = 1 + iota

	// Tol2 is system (2) p.9, polynomial and rational blends.
	Tol2

	// Tol3 is system (3) p.11, polynomial and rational blends.
	Tol3
)

// Systems returns all valid systems in order.
func Systems() []System {
	return []System{Tol1, Tol2, Tol3}
}

// IsValid returns whether s names an existing equation system.
func (s System) IsValid() bool {
	return s >= Tol1 && s <= Tol3
}

// Doc returns a one-line description of the system.
func (s System) Doc() string {
	switch s {
	case Tol1:
		return "error function blend, system (1) p.7"
	case Tol2:
		return "degree 5 polynomial / rational blend, system (2) p.9"
	case Tol3:
		return "degree 3 rational / degree 6 polynomial blend, system (3) p.11"
	}
	return "invalid"
}

// Get returns the channel equations of the given system,
// or an error wrapping [ErrInvalidSelector].
func Get(system System) (Set, error) {
	switch system {
	case Tol1:
		return Set{
			Red: func(x float64) float64 {
				return 1 - float64(0.392*(1+math.Erf((x-0.869)/0.255)))
			},
			Green: func(x float64) float64 {
				return 1.021 - float64(0.456*(1+math.Erf((x-0.527)/0.376)))
			},
			Blue: func(x float64) float64 {
				return 1 - float64(0.493*(1+math.Erf((x-0.272)/0.309)))
			},
		}, nil
	case Tol2:
		return Set{
			Red: func(x float64) float64 {
				return poly(x, 0.237, -2.13, 26.92, -65.5, 63.5, -22.36)
			},
			Green: func(x float64) float64 {
				return pow(poly(x, 0.572, 1.524, -1.811)/poly(x, 1, -0.291, 0.1574), 2)
			},
			Blue: func(x float64) float64 {
				return 1 / poly(x, 1.579, -4.03, 12.92, -31.4, 48.6, -23.36)
			},
		}, nil
	case Tol3:
		return Set{
			Red: func(x float64) float64 {
				return poly(x, 0.472, -0.567, 4.05) / poly(x, 1, 8.72, -19.17, 14.1)
			},
			Green: func(x float64) float64 {
				return poly(x, 0.108932, -1.22635, 27.284, -98.577, 163.3, -131.395, 40.634)
			},
			Blue: func(x float64) float64 {
				return 1 / poly(x, 1.97, 3.54, -68.5, 243, -297, 125)
			},
		}, nil
	}
	return Set{}, fmt.Errorf("%w %d: must be one of %v", ErrInvalidSelector, int(system), Systems())
}

// poly returns c[0] + c[1]*x + c[2]*x**2 + ..., summed in that order with
// every term rounded on its own. The conversions keep the compiler from
// fusing a term into its sum, so results are the same on every platform.
func poly(x float64, c ...float64) float64 {
	s := c[0]
	for n := 1; n < len(c); n++ {
		s += float64(c[n] * pow(x, n))
	}
	return s
}

// pow returns x**n for n >= 0, correctly rounded, which [math.Pow]
// does not guarantee. The product is computed exactly and rounded once.
func pow(x float64, n int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.Pow(x, float64(n))
	}
	prec := uint(53 * max(n, 1))
	z := new(big.Float).SetPrec(prec).SetFloat64(1)
	bx := new(big.Float).SetPrec(prec).SetFloat64(x)
	for range n {
		z.Mul(z, bx)
	}
	f, _ := z.Float64()
	return f
}
