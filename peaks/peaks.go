// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package peaks finds local maxima in binned data such as histograms or
spectra.

A peak is a sample strictly greater than its neighbors; a flat run of
equal values bounded by strictly smaller samples counts as one peak at the
(left-biased) middle of the run.  Samples at the series boundaries are
never peaks -- callers that need boundary maxima can pad the series with a
-Inf sentinel.
*/
package peaks

import "math"

// Peak is one detected local maximum.
type Peak struct {
	Idx    int     `desc:"index of the peak sample -- middle of the run for flat-topped peaks"`
	Height float64 `desc:"value of the series at Idx"`
}

// Find returns all local maxima of h with height >= minHt, in increasing
// index order.
func Find(h []float64, minHt float64) []Peak {
	var pks []Peak
	n := len(h)
	i := 1
	for i < n-1 {
		if !(h[i] > h[i-1]) {
			i++
			continue
		}
		// run of equal values starting at i
		j := i
		for j < n-1 && h[j+1] == h[i] {
			j++
		}
		if j < n-1 && h[j+1] < h[i] {
			mid := i + (j-i)/2
			if h[mid] >= minHt && !math.IsInf(h[mid], 0) {
				pks = append(pks, Peak{Idx: mid, Height: h[mid]})
			}
		}
		i = j + 1
	}
	return pks
}
