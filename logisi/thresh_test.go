// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logisi

import (
	"math"
	"testing"

	"github.com/emer/logisi/smooth"
)

func TestFindThreshValid(t *testing.T) {
	// two clean modes with an empty valley: void parameter 1
	h := []float64{0, 5, 1, 0, 0, 0.5, 2, 0.5}
	edges := []float64{1, 2, 4, 8, 16, 32, 64, 128, 256}
	thr := FindThresh(h, edges, 100, 0.7)
	if thr.State != ThreshValid {
		t.Fatalf("state err: got %v, want ThreshValid\n", thr.State)
	}
	// valley minimum first occurs at bin 3 -> edge 8 ms
	if math.Abs(thr.ISILow-8) > difTol {
		t.Errorf("isi_low err: got %v, want 8\n", thr.ISILow)
	}
}

func TestFindThreshVoidParam(t *testing.T) {
	// shallow valley: void = 1 - 0.9/sqrt(1*1) = 0.1 < 0.7 -> unavailable
	h := []float64{0, 1, 0.9, 1, 0}
	edges := []float64{1, 2, 4, 8, 16, 32}
	thr := FindThresh(h, edges, 100, 0.7)
	if thr.State != ThreshUnavail {
		t.Errorf("state err: got %v, want ThreshUnavail\n", thr.State)
	}
	// same histogram clears a lower void threshold at the valley, bin 2
	thr = FindThresh(h, edges, 100, 0.05)
	if thr.State != ThreshValid || math.Abs(thr.ISILow-4) > difTol {
		t.Errorf("low void err: got %v, %v\n", thr.State, thr.ISILow)
	}
}

func TestFindThreshRejected(t *testing.T) {
	// the only peaks sit above the intra-burst bound
	h := []float64{0, 0, 0, 2, 0, 3, 0}
	edges := []float64{1, 10, 100, 1000, 2000, 4000, 8000, 16000}
	thr := FindThresh(h, edges, 100, 0.7)
	if thr.State != ThreshRejected {
		t.Errorf("state err: got %v, want ThreshRejected\n", thr.State)
	}
}

func TestFindThreshNoLaterPeak(t *testing.T) {
	h := []float64{0, 5, 1, 0, 0, 0}
	edges := []float64{1, 2, 4, 8, 16, 32, 64}
	thr := FindThresh(h, edges, 100, 0.7)
	if thr.State != ThreshUnavail {
		t.Errorf("state err: got %v, want ThreshUnavail\n", thr.State)
	}
}

func TestFindThreshFirstBinPeak(t *testing.T) {
	// the -Inf padding makes a maximum in the first bin detectable
	h := []float64{5, 0, 0, 0, 2, 0}
	edges := []float64{1, 2, 4, 8, 16, 32, 64}
	thr := FindThresh(h, edges, 100, 0.7)
	if thr.State != ThreshValid {
		t.Fatalf("state err: got %v, want ThreshValid\n", thr.State)
	}
	if math.Abs(thr.ISILow-2) > difTol {
		t.Errorf("isi_low err: got %v, want 2\n", thr.ISILow)
	}
}

func TestBreakCalcTwoModes(t *testing.T) {
	st := []float64{0, 0.01, 0.02, 0.03, 5.0, 5.01, 5.02, 10.0}
	sp := smooth.Params{}
	sp.Defaults()
	thr, ih, err := BreakCalc(st, 0.1, 0.7, &sp)
	if err != nil {
		t.Fatalf("unexpected error: %v\n", err)
	}
	if thr.State != ThreshValid {
		t.Fatalf("state err: got %v, want ThreshValid\n", thr.State)
	}
	// threshold falls in the valley between the 10 ms and ~5 s modes,
	// in seconds, just above the intra-burst ISIs
	if thr.ISILow <= 0.01 || thr.ISILow >= 0.1 {
		t.Errorf("isi_low err: got %v, want in (0.01, 0.1)\n", thr.ISILow)
	}
	if ih == nil || ih.NBins() != 39 { // 4 decades, 40 log-spaced edges
		t.Errorf("hist err: %+v\n", ih)
	}
}

func TestBreakCalcDegenerate(t *testing.T) {
	// sub-ms ISIs only: no usable histogram -> unavailable + error
	st := []float64{0, 0.0001, 0.0002, 0.0003, 0.0004}
	sp := smooth.Params{}
	sp.Defaults()
	thr, ih, err := BreakCalc(st, 0.1, 0.7, &sp)
	if err == nil {
		t.Errorf("expected error for sub-ms train\n")
	}
	if thr.State != ThreshUnavail || ih != nil {
		t.Errorf("degenerate err: state %v, hist %v\n", thr.State, ih)
	}
}
