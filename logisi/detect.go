// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logisi

import (
	"math"

	"github.com/emer/logisi/smooth"
)

// Params are the single-train burst detection parameters.
type Params struct {
	Cutoff    float64       `def:"0.1" min:"0" desc:"upper bound for a plausible intra-burst ISI, seconds -- also the fallback threshold when no adaptive one is available"`
	VoidTh    float64       `def:"0.7" min:"0" max:"1" desc:"minimum void parameter for a histogram valley to separate the intra- and inter-burst ISI modes"`
	MinSpikes int           `def:"3" min:"1" desc:"minimum number of spikes for a burst to be kept"`
	MinDurn   float64       `def:"0" min:"0" desc:"minimum burst duration, seconds"`
	Smooth    smooth.Params `view:"inline" desc:"lowess smoothing of the ISI histogram"`
}

func (pr *Params) Defaults() {
	pr.Cutoff = 0.1
	pr.VoidTh = 0.7
	pr.MinSpikes = 3
	pr.MinDurn = 0
	pr.Smooth.Defaults()
}

// StripPadding returns the leading portion of train that is actual data,
// dropping zero and non-finite padding values anywhere in the train.  Use
// for trains unpacked from padded 2D arrays; ragged inputs need no
// stripping.
func StripPadding(train []float64) []float64 {
	out := make([]float64, 0, len(train))
	for _, t := range train {
		if t == 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Detect finds bursts in one spike train (ascending times in seconds),
// choosing the threshold strategy from the adaptive threshold's relation
// to Cutoff:
//
//   - 3 or fewer spikes: the empty collection, immediately.
//   - threshold unavailable, or at or above 1 s: extract with Cutoff as
//     the threshold (no plausible adaptive threshold).
//   - threshold rejected: the empty collection -- an explicit "no bursts"
//     decision, not a fallback.
//   - Cutoff < threshold < 1 s: extract coarse bursts with Cutoff
//     (merging within the adaptive threshold), extract fine burst-related
//     spikes with the adaptive threshold, and reconcile with AddBRS.
//   - otherwise: extract directly with the adaptive threshold.
//
// The returned Diag carries the threshold outcome and ISI histogram for
// inspection; results are freshly allocated and the input train is never
// modified.
func (pr *Params) Detect(st []float64) (*Bursts, *Diag) {
	if len(st) <= 3 {
		return NoBursts(), &Diag{Thresh: Thresh{State: ThreshUnavail}}
	}
	thr, ih, err := BreakCalc(st, pr.Cutoff, pr.VoidTh, &pr.Smooth)
	diag := &Diag{Thresh: thr, Hist: ih}
	switch {
	case err != nil || thr.State == ThreshUnavail ||
		(thr.State == ThreshValid && thr.ISILow >= 1):
		return FindBursts(st, 0, pr.MinDurn, pr.MinSpikes, pr.Cutoff, nil), diag
	case thr.State == ThreshRejected:
		return NoBursts(), diag
	case thr.ISILow > pr.Cutoff && thr.ISILow < 1:
		bursts := FindBursts(st, thr.ISILow, pr.MinDurn, pr.MinSpikes, pr.Cutoff, nil)
		if bursts.Len() == 0 {
			return bursts, diag
		}
		brs := FindBursts(st, 0, pr.MinDurn, pr.MinSpikes, thr.ISILow, nil)
		return AddBRS(bursts, brs, st), diag
	default: // 0 <= threshold <= Cutoff
		return FindBursts(st, 0, pr.MinDurn, pr.MinSpikes, thr.ISILow, nil), diag
	}
}
