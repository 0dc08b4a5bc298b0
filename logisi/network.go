// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logisi

import (
	"sort"
	"sync"

	"github.com/emer/logisi/smooth"
	"github.com/goki/ki/kit"
)

// SortBy is the time criterion used to order pooled neuron-level burst
// events for network burst detection.
type SortBy int

//go:generate stringer -type=SortBy

var KiT_SortBy = kit.Enums.AddEnum(SortByN, kit.NotBitFlag, nil)

func (ev SortBy) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SortBy) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The pooled-event sort criteria
const (
	// SortBeg orders neuron-level bursts by their first spike time
	SortBeg SortBy = iota

	// SortMed orders neuron-level bursts by their median spike time
	SortMed

	// SortEnd orders neuron-level bursts by their last spike time
	SortEnd

	SortByN
)

// NetParams are the network burst detection parameters.  The log-ISI
// threshold trick is applied twice: per neuron with the Neuron parameters,
// then over the pooled train of neuron-level burst events with the
// network-level ones.
type NetParams struct {
	Neuron   Params        `view:"inline" desc:"single-train detection parameters applied independently to each neuron"`
	Cutoff   float64       `def:"0.2" min:"0" desc:"intra-burst bound for the pooled burst-event train, seconds -- the pooled train has different statistics than a raw spike train"`
	VoidTh   float64       `def:"0" min:"0" max:"1" desc:"void threshold for the pooled train -- 0 accepts the first separating valley"`
	MinIBI   float64       `def:"0.25" min:"0" desc:"minimum interval between network bursts, seconds -- closer candidates are merged"`
	NetFract float64       `def:"0.8" min:"0" max:"1" desc:"fraction of distinct neurons that must participate in a candidate for it to count as a network burst"`
	SortBy   SortBy        `desc:"time criterion for ordering the pooled neuron-level burst events -- only affects the sequence of contributing neurons, not the bursts themselves"`
	NThreads int           `def:"1" min:"1" desc:"number of parallel threads (go routines) for the per-neuron stage -- <= 1 runs sequentially; results are identical either way"`
	Smooth   smooth.Params `view:"inline" desc:"lowess smoothing of the pooled-train histogram"`
}

func (np *NetParams) Defaults() {
	np.Neuron.Defaults()
	np.Cutoff = 0.2
	np.VoidTh = 0
	np.MinIBI = 0.25
	np.NetFract = 0.8
	np.SortBy = SortBeg
	np.NThreads = 1
	np.Smooth.Defaults()
}

// Details are the pooled neuron-level burst events underlying a network
// burst detection, as parallel arrays sorted by the chosen criterion.
// Network burst Beg / End indices index into these arrays.
type Details struct {
	NeuronIDs []int     `desc:"id (train index) of the neuron that produced each burst event"`
	BegTimes  []float64 `desc:"time of the first spike of each neuron-level burst, seconds"`
	MedTimes  []float64 `desc:"median spike time of each neuron-level burst, seconds"`
	EndTimes  []float64 `desc:"time of the last spike of each neuron-level burst, seconds"`
}

// Len returns the number of pooled neuron-level burst events.
func (dt *Details) Len() int {
	return len(dt.NeuronIDs)
}

// noDetails returns the canonical empty details.
func noDetails() *Details {
	return &Details{NeuronIDs: []int{}, BegTimes: []float64{}, MedTimes: []float64{}, EndTimes: []float64{}}
}

// Detect finds network bursts over a set of per-neuron spike trains
// (ascending times in seconds, no padding -- see StripPadding and
// TrainsFromTensor for padded inputs).
//
// Each neuron is burst-detected independently (in parallel when NThreads
// > 1); the resulting neuron-level bursts are pooled into one event train
// sorted by SortBy, and the threshold finder + extractor run again at that
// level, requiring NetFract of all neurons to contribute distinct events
// to a network burst.  Any failure of the pooled stage is downgraded to
// "no network bursts", preserving the per-neuron details already computed,
// so one degenerate realization does not abort a batch.
func (np *NetParams) Detect(trains [][]float64) (*Bursts, *Details, *Diag) {
	numN := len(trains)
	perN := make([]*Bursts, numN)
	np.runPerNeuron(trains, perN)

	det := noDetails()
	for n, bc := range perN {
		for i := 0; i < bc.Len(); i++ {
			det.NeuronIDs = append(det.NeuronIDs, n)
			det.BegTimes = append(det.BegTimes, trains[n][bc.Beg[i]])
			det.MedTimes = append(det.MedTimes, bc.Med[i])
			det.EndTimes = append(det.EndTimes, trains[n][bc.End[i]])
		}
	}
	if det.Len() == 0 {
		return NoBursts(), det, &Diag{Thresh: Thresh{State: ThreshUnavail}}
	}
	det.sortBy(np.SortBy)

	var times []float64
	switch np.SortBy {
	case SortMed:
		times = det.MedTimes
	case SortEnd:
		times = det.EndTimes
	default:
		times = det.BegTimes
	}

	nb, diag := np.pooled(times, det.NeuronIDs, numN)
	return nb, det, diag
}

// pooled runs the network-level threshold + extraction over the sorted
// event train.  Failures (including a corrupted-invariant panic from the
// extractor) yield the empty collection.
func (np *NetParams) pooled(times []float64, ids []int, numN int) (nb *Bursts, diag *Diag) {
	diag = &Diag{Thresh: Thresh{State: ThreshUnavail}}
	defer func() {
		if recover() != nil {
			nb = NoBursts()
		}
	}()
	thr, ih, err := BreakCalc(times, np.Cutoff, np.VoidTh, &np.Smooth)
	diag = &Diag{Thresh: thr, Hist: ih}
	if err != nil || thr.State != ThreshValid {
		return NoBursts(), diag
	}
	minSpikes := int(np.NetFract * float64(numN))
	nb = FindBursts(times, np.MinIBI, 0, minSpikes, thr.ISILow, ids)
	return nb, diag
}

// runPerNeuron fills perN with the single-train detection result for each
// train, using NThreads worker goroutines when parallel.  Each call
// depends only on its own train, so completion order is irrelevant.
func (np *NetParams) runPerNeuron(trains [][]float64, perN []*Bursts) {
	if np.NThreads <= 1 {
		for n, tr := range trains {
			perN[n], _ = np.Neuron.Detect(tr)
		}
		return
	}
	var wg sync.WaitGroup
	work := make(chan int, len(trains))
	for t := 0; t < np.NThreads; t++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range work {
				perN[n], _ = np.Neuron.Detect(trains[n])
			}
		}()
	}
	for n := range trains {
		work <- n
	}
	close(work)
	wg.Wait()
}

// sortBy reorders all detail arrays in place by the chosen time criterion,
// stably, so ties keep their neuron order and results are deterministic.
func (dt *Details) sortBy(by SortBy) {
	var key []float64
	switch by {
	case SortMed:
		key = dt.MedTimes
	case SortEnd:
		key = dt.EndTimes
	default:
		key = dt.BegTimes
	}
	idx := make([]int, dt.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return key[idx[a]] < key[idx[b]] })
	ids := make([]int, dt.Len())
	beg := make([]float64, dt.Len())
	med := make([]float64, dt.Len())
	end := make([]float64, dt.Len())
	for i, j := range idx {
		ids[i] = dt.NeuronIDs[j]
		beg[i] = dt.BegTimes[j]
		med[i] = dt.MedTimes[j]
		end[i] = dt.EndTimes[j]
	}
	dt.NeuronIDs, dt.BegTimes, dt.MedTimes, dt.EndTimes = ids, beg, med, end
}
