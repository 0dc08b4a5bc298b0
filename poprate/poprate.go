// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package poprate provides simple binned population-level measures over
per-neuron spike trains: spike counts per time bin, population activity
(ASDR when the bin is one second), and the naive fraction-threshold
network burst definition ("more than X% of neurons fired in the same
bin").  These are cheap cross-checks for the logISI network burst
detector, not a replacement for it.
*/
package poprate

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BinSpikes returns the number of spikes per fixed-size time bin for one
// spike train (ascending times, times and binSize in the same unit,
// typically seconds).  One extra bin is appended past the last spike, plus
// padRight more empty bins if requested.  Non-finite entries terminate the
// train (padding).
func BinSpikes(spikes []float64, binSize float64, padRight int) []float64 {
	n := len(spikes)
	for i, t := range spikes {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			n = i
			break
		}
	}
	if n == 0 {
		return []float64{}
	}
	nbins := int(math.Ceil(spikes[n-1]/binSize)) + 1 + padRight
	// top divider is strictly past the last spike, so no closed-right bump
	// is needed
	div := make([]float64, nbins+1)
	floats.Span(div, 0, float64(nbins)*binSize)
	counts := make([]float64, nbins)
	stat.Histogram(counts, div, spikes[:n], nil)
	return counts
}

// PopulationActivity returns the total spike count per time bin across all
// neurons.  With binSize = 1 s this is the array-wide spike detection rate
// (ASDR).  Trains may have different extents; shorter ones contribute
// nothing to later bins.
func PopulationActivity(trains [][]float64, binSize float64) []float64 {
	var res []float64
	for _, tr := range trains {
		bins := BinSpikes(tr, binSize, 0)
		if len(bins) > len(res) {
			grown := make([]float64, len(bins))
			copy(grown, res)
			res = grown
		}
		for i, c := range bins {
			res[i] += c
		}
	}
	if res == nil {
		res = []float64{}
	}
	return res
}

// BurstOnsets returns the (bin-centered) times of bins in which at least
// fract of all neurons fired, the classic quick definition of a network
// burst.  With onsetOnly, runs of consecutive bursting bins are collapsed
// to their first bin.
func BurstOnsets(trains [][]float64, binSize, fract float64, onsetOnly bool) []float64 {
	numN := len(trains)
	if numN == 0 {
		return []float64{}
	}
	var active []float64 // number of neurons with >= 1 spike per bin
	for _, tr := range trains {
		bins := BinSpikes(tr, binSize, 0)
		if len(bins) > len(active) {
			grown := make([]float64, len(bins))
			copy(grown, active)
			active = grown
		}
		for i, c := range bins {
			if c > 0 {
				active[i]++
			}
		}
	}
	th := fract * float64(numN)
	onsets := []float64{}
	prev := -2
	for i, a := range active {
		if a < th {
			continue
		}
		if !onsetOnly || i != prev+1 {
			onsets = append(onsets, (float64(i)+0.5)*binSize)
		}
		prev = i
	}
	return onsets
}

// InterBurstIntervals returns the differences between consecutive entries
// of an ascending burst-time list.
func InterBurstIntervals(burstTimes []float64) []float64 {
	if len(burstTimes) < 2 {
		return []float64{}
	}
	ibis := make([]float64, len(burstTimes)-1)
	for i := 1; i < len(burstTimes); i++ {
		ibis[i-1] = burstTimes[i] - burstTimes[i-1]
	}
	return ibis
}
