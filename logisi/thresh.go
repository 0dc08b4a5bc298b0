// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logisi

import (
	"math"

	"github.com/emer/logisi/peaks"
	"github.com/emer/logisi/smooth"
	"github.com/goki/ki/kit"
	"gonum.org/v1/gonum/floats"
)

// ThreshState is the outcome of threshold finding over the ISI histogram.
type ThreshState int

//go:generate stringer -type=ThreshState

var KiT_ThreshState = kit.Enums.AddEnum(ThreshStateN, kit.NotBitFlag, nil)

func (ev ThreshState) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *ThreshState) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The threshold outcomes
const (
	// ThreshValid means a usable threshold was found, in ISILow
	ThreshValid ThreshState = iota

	// ThreshUnavail means no separable inter-burst peak was found --
	// callers fall back to a fixed cutoff
	ThreshUnavail

	// ThreshRejected means no peak lies below the intra-burst cutoff at
	// all -- an explicit decision to report no bursts, distinct from
	// ThreshUnavail
	ThreshRejected

	ThreshStateN
)

// Thresh is the tagged threshold result: ISILow is only meaningful when
// State is ThreshValid.
type Thresh struct {
	State  ThreshState `desc:"outcome of threshold finding"`
	ISILow float64     `desc:"threshold separating intra- from inter-burst intervals, seconds -- valid only when State == ThreshValid"`
}

// Diag bundles the diagnostics of one detection run, returned alongside
// the burst collection so no intermediate state lives in globals.
type Diag struct {
	Thresh Thresh   `desc:"threshold finding outcome"`
	Hist   *ISIHist `desc:"ISI histogram with smoothed variant and edges -- nil if the histogram could not be built"`
}

// FindThresh finds the ISI threshold separating the intra-burst peak from
// the following inter-burst (or background) peak of a smoothed log-ISI
// histogram.  h are the smoothed bin heights, edges the bin edges, both in
// ms; isiTh is the upper bound (ms) for a plausible intra-burst peak, and
// voidTh the minimum void parameter for a valley to count as separation.
//
// The histogram and edges are padded with a single -Inf at index 0 so a
// maximum in the first bin is still detected as a peak.  The intra-burst
// peak is the maximum-height peak positioned below isiTh; for each later
// peak the void parameter 1 - min/sqrt(h1*h2) is computed over the valley
// between them, and the valley position of the first later peak clearing
// voidTh becomes the threshold.  Returned ISILow is in ms.
func FindThresh(h, edges []float64, isiTh, voidTh float64) Thresh {
	hp := append([]float64{math.Inf(-1)}, h...)
	ep := append([]float64{math.Inf(-1)}, edges...)
	pks := peaks.Find(hp, 0)
	if len(pks) == 0 {
		// zero-variance histogram (e.g. all ISIs in one boundary bin):
		// no data to separate, not an explicit rejection
		return Thresh{State: ThreshUnavail}
	}

	// intra-burst peak: max height among peaks below the cutoff
	intra := -1
	for i, pk := range pks {
		if ep[pk.Idx] >= isiTh {
			break
		}
		if intra < 0 || pk.Height > pks[intra].Height {
			intra = i
		}
	}
	if intra < 0 {
		return Thresh{State: ThreshRejected}
	}
	if intra == len(pks)-1 {
		return Thresh{State: ThreshUnavail}
	}

	x1 := pks[intra].Idx
	y1 := pks[intra].Height
	for _, pk := range pks[intra+1:] {
		seg := hp[x1+1 : pk.Idx] // strictly between the two peaks
		if len(seg) == 0 {
			continue
		}
		mi := floats.MinIdx(seg)
		void := 1 - seg[mi]/math.Sqrt(y1*pk.Height)
		if void >= voidTh {
			return Thresh{State: ThreshValid, ISILow: ep[x1+1+mi]}
		}
	}
	return Thresh{State: ThreshUnavail}
}

// BreakCalc computes the adaptive ISI threshold for a spike train (times
// in seconds): build the log-ISI histogram, smooth it, and run FindThresh
// with cutoff (seconds) as the intra-burst bound.  The returned threshold
// is converted back to seconds.  A degenerate train returns an error with
// a nil histogram; callers treat that as "no threshold", not a fault.
func BreakCalc(st []float64, cutoff, voidTh float64, smth *smooth.Params) (Thresh, *ISIHist, error) {
	ih, err := ISIHistogram(st, smth)
	if err != nil {
		return Thresh{State: ThreshUnavail}, nil, err
	}
	thr := FindThresh(ih.Smooth, ih.Edges, cutoff*1000, voidTh)
	if thr.State == ThreshValid {
		thr.ISILow /= 1000
	}
	return thr, ih, nil
}
