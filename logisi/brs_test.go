// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logisi

import (
	"math"
	"testing"
)

func TestAddBRSIdentity(t *testing.T) {
	// identical coarse and fine collections come back unchanged
	st := []float64{0, 0.01, 0.02, 0.03, 5.0, 5.01, 5.02, 10.0}
	bc := FindBursts(st, 0, 0, 2, 0.1, nil)
	adj := AddBRS(bc, bc, st)
	if adj.Len() != bc.Len() {
		t.Fatalf("num bursts err: got %v, want %v\n", adj.Len(), bc.Len())
	}
	for i := 0; i < bc.Len(); i++ {
		if adj.Beg[i] != bc.Beg[i] || adj.End[i] != bc.End[i] || adj.BLen[i] != bc.BLen[i] {
			t.Errorf("identity err: idx: %v, got [%v,%v], want [%v,%v]\n", i, adj.Beg[i], adj.End[i], bc.Beg[i], bc.End[i])
		}
		if math.Abs(adj.Durn[i]-bc.Durn[i]) > difTol || math.Abs(adj.Med[i]-bc.Med[i]) > difTol {
			t.Errorf("identity stats err: idx: %v\n", i)
		}
	}
}

func TestAddBRSWiden(t *testing.T) {
	st := []float64{0, 0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.4}
	coarse := &Bursts{Beg: []int{2}, End: []int{5}}
	fine := &Bursts{Beg: []int{1, 5}, End: []int{3, 7}}
	adj := AddBRS(coarse, fine, st)
	if adj.Len() != 1 {
		t.Fatalf("num bursts err: got %v, want 1\n", adj.Len())
	}
	// widened to the union over both overlapping fine bursts
	if adj.Beg[0] != 1 || adj.End[0] != 7 {
		t.Errorf("widen err: got [%v,%v], want [1,7]\n", adj.Beg[0], adj.End[0])
	}
	if adj.BLen[0] != 7 {
		t.Errorf("blen err: got %v, want 7\n", adj.BLen[0])
	}
	if math.Abs(adj.Durn[0]-0.3) > difTol {
		t.Errorf("durn err: got %v, want 0.3\n", adj.Durn[0])
	}
	if math.Abs(adj.Med[0]-0.2) > difTol {
		t.Errorf("med err: got %v, want 0.2\n", adj.Med[0])
	}
}

func TestAddBRSDegenerateDrop(t *testing.T) {
	// both coarse bursts widen onto the same fine burst start: the
	// collapsed narrower one is dropped
	st := []float64{0, 0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35}
	coarse := &Bursts{Beg: []int{2, 5}, End: []int{3, 6}}
	fine := &Bursts{Beg: []int{1}, End: []int{5}}
	adj := AddBRS(coarse, fine, st)
	if adj.Len() != 1 {
		t.Fatalf("num bursts err: got %v, want 1\n", adj.Len())
	}
	if adj.Beg[0] != 1 || adj.End[0] != 6 {
		t.Errorf("drop err: got [%v,%v], want [1,6]\n", adj.Beg[0], adj.End[0])
	}
	if !math.IsNaN(adj.IBI[0]) {
		t.Errorf("IBI err: got %v, want NaN\n", adj.IBI[0])
	}
}

func TestAddBRSNoOverlap(t *testing.T) {
	st := []float64{0, 0.05, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35}
	coarse := &Bursts{Beg: []int{5}, End: []int{6}}
	fine := &Bursts{Beg: []int{0}, End: []int{2}}
	adj := AddBRS(coarse, fine, st)
	if adj.Len() != 1 || adj.Beg[0] != 5 || adj.End[0] != 6 {
		t.Errorf("no-overlap err: got %+v\n", adj)
	}
}
