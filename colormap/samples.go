// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"fmt"

	"cogentcore.org/core/base/errors"
)

// ErrSampleCount is returned by [Samples] for fewer than two samples.
var ErrSampleCount = errors.New("sample count must be at least 2")

// Samples returns count evenly spaced positions over [0, 1],
// including both endpoints.
func Samples(count int) ([]float64, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrSampleCount, count)
	}
	step := 1 / float64(count-1)
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = float64(i) * step
	}
	// multiplying by step can land just off 1
	xs[count-1] = 1
	return xs, nil
}
