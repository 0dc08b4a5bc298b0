// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package logisi implements logISI-histogram burst detection for neural
spike trains, following Pasquale et al. (DOI 10.1007/s10827-009-0175-1)
and the R implementation in sjemea / burstanalysis.

The ISIs of a bursty spike train form two modes in log space: a fast
intra-burst mode and a slow inter-burst one.  BreakCalc builds the
log-spaced ISI histogram, smooths it, and FindThresh places a threshold at
the valley between the two modes when the void parameter says they are
cleanly separated.  FindBursts then extracts bursts with a three-phase
scan / merge / reject pass, and Params.Detect orchestrates the choice of
threshold strategy for a single train.

NetParams.Detect applies the same primitive twice: per neuron, and then
over the pooled train of neuron-level burst events, where the minimum
spike count becomes a minimum count of distinct participating neurons.
Bursts of bursts are just bursts of a different point process.

All functions are pure over their inputs: collections are freshly
allocated, caller trains are never modified, and diagnostics are returned
as values rather than kept in package state.
*/
package logisi
