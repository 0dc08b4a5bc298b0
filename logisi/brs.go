// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logisi

import (
	"math"

	"github.com/goki/ki/ints"
)

// between reports whether x lies within [a, b] inclusive.
func between(x, a, b int) bool {
	return x >= a && x <= b
}

// AddBRS reconciles a coarse burst collection with a fine one (brs =
// burst-related spikes, detected with the adaptive threshold) over the
// same spike train: each coarse burst is widened to the union of itself
// and every overlapping fine burst.  Overlap means either boundary of the
// coarse burst lies within the fine burst, or vice versa.
//
// Widening can collapse neighboring bursts onto the same boundary; such
// degenerate duplicates are dropped, keeping the wider burst of each pair.
// All derived stats (BLen, Durn, MeanISIs, IBI, Med) are recomputed from
// the widened boundaries.
func AddBRS(bursts, brs *Bursts, spikes []float64) *Bursts {
	nb := bursts.Len()
	nf := brs.Len()
	beg := make([]int, nb)
	end := make([]int, nb)
	for i := 0; i < nb; i++ {
		beg[i] = bursts.Beg[i]
		end[i] = bursts.End[i]
		for j := 0; j < nf; j++ {
			if brs.Beg[j] > bursts.End[i] { // sorted: nothing further overlaps
				break
			}
			if between(bursts.Beg[i], brs.Beg[j], brs.End[j]) ||
				between(bursts.End[i], brs.Beg[j], brs.End[j]) ||
				between(brs.Beg[j], bursts.Beg[i], bursts.End[i]) {
				beg[i] = ints.MinInt(beg[i], brs.Beg[j])
				end[i] = ints.MaxInt(end[i], brs.End[j])
			}
		}
	}

	// drop bursts that collapsed onto a neighbor: equal begs keep the
	// later (wider) entry, equal ends keep the earlier one
	rejects := make(map[int]bool)
	for i := 0; i < nb-1; i++ {
		if beg[i+1] == beg[i] {
			rejects[i] = true
		}
		if end[i+1] == end[i] {
			rejects[i+1] = true
		}
	}

	adj := NoBursts()
	for i := 0; i < nb; i++ {
		if rejects[i] {
			continue
		}
		adj.Beg = append(adj.Beg, beg[i])
		adj.End = append(adj.End, end[i])
		blen := end[i] - beg[i] + 1
		durn := spikes[end[i]] - spikes[beg[i]]
		adj.BLen = append(adj.BLen, blen)
		adj.Durn = append(adj.Durn, durn)
		adj.MeanISIs = append(adj.MeanISIs, durn/float64(blen-1))
		adj.Med = append(adj.Med, median(spikes[beg[i]:end[i]+1]))
	}
	adj.IBI = make([]float64, adj.Len())
	for i := range adj.IBI {
		if i == 0 {
			adj.IBI[i] = math.NaN()
		} else {
			adj.IBI[i] = spikes[adj.Beg[i]] - spikes[adj.End[i-1]]
		}
	}
	return adj
}
