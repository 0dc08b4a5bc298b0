// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logisi

import (
	"fmt"
	"math"
	"sort"

	"github.com/emer/etable/v2/minmax"
	"github.com/emer/logisi/smooth"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MinISI is the ISI resolution floor in ms -- intervals below this are
// discarded before histogramming.
const MinISI = 1.0

// ISIHist is the log-spaced inter-spike-interval histogram of one spike
// train, with a lowess-smoothed variant used for peak finding.  All values
// are in ms.
type ISIHist struct {
	Edges  []float64  `desc:"log-spaced bin edges in ms, from 1 ms to 10^ceil(log10(max ISI)) -- one more than the number of bins"`
	Hist   []float64  `desc:"density-normalized bin heights"`
	Smooth []float64  `desc:"lowess-smoothed bin heights, smoothed over bin index"`
	Range  minmax.F64 `desc:"range of the ISIs entering the histogram, ms"`
}

// NBins returns the number of histogram bins.
func (ih *ISIHist) NBins() int {
	return len(ih.Hist)
}

// ISIHistogram builds the log-spaced ISI histogram for a spike train
// (times in seconds).  ISIs are converted to ms and intervals below MinISI
// are discarded; edges span [1, 10^ceil(log10(max ISI))] ms with
// 10 * ceil(log10(max ISI)) log-spaced points, and heights are density
// normalized.  Degenerate trains (no usable ISIs, or all ISIs within the
// first decade edge) return an error -- callers treat that as "no
// threshold available", not a fault.
func ISIHistogram(st []float64, smth *smooth.Params) (*ISIHist, error) {
	var isi []float64
	for i := 1; i < len(st); i++ {
		d := (st[i] - st[i-1]) * 1000
		if d >= MinISI {
			isi = append(isi, d)
		}
	}
	if len(isi) == 0 {
		return nil, fmt.Errorf("logisi.ISIHistogram: no ISIs at or above %g ms in train of %d spikes", MinISI, len(st))
	}
	maxISI := floats.Max(isi)
	maxDecade := math.Ceil(math.Log10(maxISI))
	npts := int(10 * maxDecade)
	if npts < 2 {
		return nil, fmt.Errorf("logisi.ISIHistogram: degenerate ISI span, max ISI %g ms", maxISI)
	}
	ih := &ISIHist{Edges: make([]float64, npts)}
	floats.LogSpan(ih.Edges, 1, math.Pow(10, maxDecade))
	ih.Range.Set(floats.Min(isi), maxISI)

	sort.Float64s(isi)
	// bump the top divider so the maximum ISI lands in the last bin
	// (closed-right last bin)
	div := make([]float64, npts)
	copy(div, ih.Edges)
	div[npts-1] = math.Nextafter(div[npts-1], math.Inf(1))
	counts := make([]float64, npts-1)
	stat.Histogram(counts, div, isi, nil)

	tot := float64(len(isi))
	ih.Hist = make([]float64, npts-1)
	for i := range counts {
		ih.Hist[i] = counts[i] / (tot * (ih.Edges[i+1] - ih.Edges[i]))
	}
	ih.Smooth = smth.Smooth(ih.Hist)
	return ih, nil
}
