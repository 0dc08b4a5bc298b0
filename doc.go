// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package logisi is the overall repository for logISI-histogram burst
detection of neural spike trains, following Pasquale et al.
(DOI 10.1007/s10827-009-0175-1), implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* logisi: the core algorithm -- log-spaced ISI histogram, void-parameter
threshold finding, three-phase burst extraction, burst-edge extension, and
the single-train and network-level orchestration.  Network bursts are
detected by re-applying the same threshold + extraction primitive to the
pooled train of per-neuron burst events.

* smooth: locally weighted scatterplot smoothing (lowess) used to smooth
the ISI histogram before peak finding.

* peaks: local-maxima detection over binned data, with plateau handling
and a minimum-height floor.

* poprate: simple population-level measures -- binned spike counts,
population activity (ASDR), and a naive fraction-threshold network burst
definition useful as a cross-check against the logISI detector.
*/
package logisi
