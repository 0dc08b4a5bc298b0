// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logisi

import (
	"fmt"
	"math"
)

// eps is the numerical tolerance added to the ISI threshold comparison in
// the phase-1 scan.
const eps = 1e-10

// Bursts is a collection of bursts detected in one spike train, as
// equal-length parallel arrays, one entry per burst, ordered by ascending
// Beg.  Beg / End are indices into the spike train passed to detection --
// the caller owns the mapping back to absolute times.
type Bursts struct {
	Beg      []int     `desc:"index of the first spike in each burst"`
	End      []int     `desc:"index of the last spike in each burst"`
	IBI      []float64 `desc:"time from the end of the previous burst to the first spike of this one -- NaN for the first burst"`
	BLen     []int     `desc:"number of spikes in each burst"`
	Durn     []float64 `desc:"duration, first spike to last spike"`
	MeanISIs []float64 `desc:"mean inter-spike interval within each burst = Durn / (BLen-1)"`
	Med      []float64 `desc:"median spike time of each burst"`
	Unique   []int     `desc:"number of distinct contributing neurons -- only set for network-level detection, nil otherwise"`
}

// NoBursts returns the canonical empty collection: detection ran and found
// nothing.  All arrays are non-nil and empty.
func NoBursts() *Bursts {
	return &Bursts{
		Beg:      []int{},
		End:      []int{},
		IBI:      []float64{},
		BLen:     []int{},
		Durn:     []float64{},
		MeanISIs: []float64{},
		Med:      []float64{},
	}
}

// Len returns the number of bursts in the collection.
func (bc *Bursts) Len() int {
	return len(bc.Beg)
}

// median returns the median of an ascending-sorted slice, averaging the two
// middle values for even lengths.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return 0.5 * (sorted[n/2-1] + sorted[n/2])
}

// burstRec is the per-burst record accumulated during extraction.
type burstRec struct {
	beg, end int
	ibi      float64
}

// FindBursts finds bursts in one spike train using a fixed ISI threshold,
// in three phases: scan consecutive ISIs against isiLow (phase 1), merge
// bursts closer than minIBI into their predecessor (phase 2), and reject
// bursts shorter than minDurn or with fewer than minSpikes spikes
// (phase 3).  Times are in seconds throughout.
//
// neuronIDs, when non-nil, must parallel spikes and hold the id of the
// neuron that produced each event; the minSpikes requirement then counts
// distinct contributing neurons instead of raw events, and the Unique
// array is filled in.  This is how network-level detection requires enough
// separate neurons to participate.
//
// A train yielding no bursts returns the canonical empty collection.
// Recording more than floor(N/2) bursts in phase 1 is impossible for a
// well-formed train and panics.
func FindBursts(spikes []float64, minIBI, minDurn float64, minSpikes int, isiLow float64, neuronIDs []int) *Bursts {
	nspikes := len(spikes)
	maxBursts := nspikes / 2

	// Phase 1 -- scan.  Each ISI at or below the threshold (plus
	// tolerance) is part of a burst; the first ISI above it closes the
	// current burst.  lastEnd is the time of the last spike of the
	// previous burst, for the IBI; NaN before the first burst.
	var recs []burstRec
	lastEnd := math.NaN()
	inBurst := false
	beg := 0
	closeBurst := func(end int) {
		recs = append(recs, burstRec{beg: beg, end: end, ibi: spikes[beg] - lastEnd})
		lastEnd = spikes[end]
		if len(recs) > maxBursts {
			panic(fmt.Sprintf("logisi.FindBursts: %d bursts from %d spikes exceeds the N/2 bound -- malformed train", len(recs), nspikes))
		}
	}
	for n := 1; n < nspikes; n++ {
		isi := spikes[n] - spikes[n-1]
		if inBurst {
			if isi-isiLow > eps {
				inBurst = false
				closeBurst(n - 1)
			}
		} else if isi-isiLow <= eps {
			beg = n - 1
			inBurst = true
		}
	}
	if inBurst { // still open at train end
		closeBurst(nspikes - 1)
	}
	if len(recs) == 0 {
		return NoBursts()
	}

	// Phase 2 -- merge.  A burst whose IBI is below minIBI is folded
	// backward into its predecessor.  Working in reverse index order
	// collapses chains of 3+ adjacent mergeable bursts correctly.  The
	// first burst has IBI NaN and never merges.
	rejects := make(map[int]bool)
	for i := len(recs) - 1; i >= 1; i-- {
		if recs[i].ibi < minIBI {
			recs[i-1].end = recs[i].end
			rejects[i] = true
		}
	}

	// Phase 3 -- reject.  Recompute lengths and durations on the merged
	// records, then drop bursts failing the duration or spike-count
	// floors, together with the merged-away entries.
	nr := len(recs)
	blen := make([]int, nr)
	durn := make([]float64, nr)
	var unique []int
	if neuronIDs != nil {
		unique = make([]int, nr)
	}
	for i, r := range recs {
		blen[i] = r.end - r.beg + 1
		durn[i] = spikes[r.end] - spikes[r.beg]
		if neuronIDs != nil {
			seen := make(map[int]bool, blen[i])
			for j := r.beg; j <= r.end; j++ {
				seen[neuronIDs[j]] = true
			}
			unique[i] = len(seen)
		}
	}
	for i := range recs {
		if durn[i] < minDurn {
			rejects[i] = true
		}
		if neuronIDs == nil {
			if blen[i] < minSpikes {
				rejects[i] = true
			}
		} else if unique[i] < minSpikes {
			rejects[i] = true
		}
	}

	bc := NoBursts()
	if neuronIDs != nil {
		bc.Unique = []int{}
	}
	for i, r := range recs {
		if rejects[i] {
			continue
		}
		bc.Beg = append(bc.Beg, r.beg)
		bc.End = append(bc.End, r.end)
		bc.BLen = append(bc.BLen, blen[i])
		bc.Durn = append(bc.Durn, durn[i])
		bc.MeanISIs = append(bc.MeanISIs, durn[i]/float64(blen[i]-1))
		bc.Med = append(bc.Med, median(spikes[r.beg:r.end+1]))
		if neuronIDs != nil {
			bc.Unique = append(bc.Unique, unique[i])
		}
	}
	// IBIs are recomputed post-rejection, between surviving neighbors
	bc.IBI = make([]float64, bc.Len())
	for i := range bc.IBI {
		if i == 0 {
			bc.IBI[i] = math.NaN()
		} else {
			bc.IBI[i] = spikes[bc.Beg[i]] - spikes[bc.End[i-1]]
		}
	}
	return bc
}
