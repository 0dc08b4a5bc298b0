// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package smooth provides locally weighted scatterplot smoothing (lowess)
for equally-spaced series, as used to smooth log-ISI histograms prior to
peak detection.

For each point, a weighted linear regression is fit over the Frac-nearest
neighbors using tricube distance weights, and evaluated at that point.
Optional robustness iterations downweight outliers with bisquare weights
of the scaled residuals.
*/
package smooth

import (
	"math"
	"sort"
)

// Params are the lowess smoothing parameters.
type Params struct {
	Frac  float64 `def:"0.05" min:"0" max:"1" desc:"fraction of the data used to fit each local regression -- the window is the Frac * N nearest neighbors, floored at 2 points"`
	Iters int     `def:"3" min:"0" desc:"number of robustness iterations -- residuals from the previous fit downweight outliers with bisquare weights"`
}

func (sp *Params) Defaults() {
	sp.Frac = 0.05
	sp.Iters = 3
}

// Window returns the neighborhood size for a series of length n:
// Frac * n, floored at 2 and capped at n.
func (sp *Params) Window(n int) int {
	k := int(sp.Frac * float64(n))
	if k < 2 {
		k = 2
	}
	if k > n {
		k = n
	}
	return k
}

// Smooth returns the lowess-smoothed version of y, treating the values as
// equally spaced (x = index).  Inputs of fewer than 3 points are returned
// as a copy, unsmoothed.
func (sp *Params) Smooth(y []float64) []float64 {
	n := len(y)
	fit := make([]float64, n)
	copy(fit, y)
	if n < 3 {
		return fit
	}
	k := sp.Window(n)
	delta := make([]float64, n)
	for i := range delta {
		delta[i] = 1
	}
	for it := 0; it <= sp.Iters; it++ {
		for i := 0; i < n; i++ {
			fit[i] = sp.fitAt(y, delta, i, k)
		}
		if it == sp.Iters {
			break
		}
		if !sp.robustWts(y, fit, delta) {
			break
		}
	}
	return fit
}

// fitAt computes the local weighted linear regression at index i over the
// k nearest neighbors, with robustness weights delta.
func (sp *Params) fitAt(y, delta []float64, i, k int) float64 {
	n := len(y)
	// nearest-k window: slide while the far left edge is farther than the
	// next point on the right
	lo := i - k/2
	if lo < 0 {
		lo = 0
	}
	if lo+k > n {
		lo = n - k
	}
	for lo > 0 && i-(lo-1) < (lo+k-1)-i {
		lo--
	}
	for lo+k < n && (lo+k)-i < i-lo {
		lo++
	}
	hi := lo + k - 1
	maxd := math.Max(float64(i-lo), float64(hi-i))
	if maxd <= 0 {
		return y[i]
	}
	var sw, swx, swy, swxx, swxy float64
	for j := lo; j <= hi; j++ {
		d := math.Abs(float64(j-i)) / maxd
		w := tricube(d) * delta[j]
		x := float64(j)
		sw += w
		swx += w * x
		swy += w * y[j]
		swxx += w * x * x
		swxy += w * x * y[j]
	}
	if sw <= 0 {
		return y[i]
	}
	det := sw*swxx - swx*swx
	if math.Abs(det) < 1e-12*sw*swxx || det == 0 {
		// degenerate design (all weight on one point): weighted mean
		return swy / sw
	}
	b := (sw*swxy - swx*swy) / det
	a := (swy - b*swx) / sw
	return a + b*float64(i)
}

// robustWts updates the bisquare robustness weights from the current
// residuals.  Returns false if the residuals are all (near) zero, in which
// case further iterations are pointless.
func (sp *Params) robustWts(y, fit, delta []float64) bool {
	n := len(y)
	res := make([]float64, n)
	for i := range res {
		res[i] = math.Abs(y[i] - fit[i])
	}
	srt := make([]float64, n)
	copy(srt, res)
	sort.Float64s(srt)
	var med float64
	if n%2 == 1 {
		med = srt[n/2]
	} else {
		med = 0.5 * (srt[n/2-1] + srt[n/2])
	}
	if med <= 0 {
		return false
	}
	for i := range delta {
		u := res[i] / (6 * med)
		if u >= 1 {
			delta[i] = 0
		} else {
			delta[i] = (1 - u*u) * (1 - u*u)
		}
	}
	return true
}

// tricube is the standard lowess distance weight (1 - d^3)^3 for d in [0,1].
func tricube(d float64) float64 {
	if d >= 1 {
		return 0
	}
	c := 1 - d*d*d
	return c * c * c
}
