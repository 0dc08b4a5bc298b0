// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logisi

import (
	"github.com/emer/etable/v2/etable"
	"github.com/emer/etable/v2/etensor"
)

// ToTable returns the collection as an etable.Table with one column per
// parallel array and one row per burst, for downstream aggregation,
// plotting, or saving.  The Unique column is only present for
// network-level results.
func (bc *Bursts) ToTable(name string) *etable.Table {
	sch := etable.Schema{
		{Name: "Beg", Type: etensor.INT64},
		{Name: "End", Type: etensor.INT64},
		{Name: "IBI", Type: etensor.FLOAT64},
		{Name: "BLen", Type: etensor.INT64},
		{Name: "Durn", Type: etensor.FLOAT64},
		{Name: "MeanISIs", Type: etensor.FLOAT64},
		{Name: "Med", Type: etensor.FLOAT64},
	}
	if bc.Unique != nil {
		sch = append(sch, etable.Column{Name: "Unique", Type: etensor.INT64})
	}
	dt := &etable.Table{}
	dt.SetMetaData("name", name)
	dt.SetFromSchema(sch, bc.Len())
	for i := 0; i < bc.Len(); i++ {
		dt.SetCellFloat("Beg", i, float64(bc.Beg[i]))
		dt.SetCellFloat("End", i, float64(bc.End[i]))
		dt.SetCellFloat("IBI", i, bc.IBI[i])
		dt.SetCellFloat("BLen", i, float64(bc.BLen[i]))
		dt.SetCellFloat("Durn", i, bc.Durn[i])
		dt.SetCellFloat("MeanISIs", i, bc.MeanISIs[i])
		dt.SetCellFloat("Med", i, bc.Med[i])
		if bc.Unique != nil {
			dt.SetCellFloat("Unique", i, float64(bc.Unique[i]))
		}
	}
	return dt
}

// TrainsFromTensor unpacks a zero / NaN padded 2D tensor of spike times
// (first dimension = neurons) into ragged per-neuron trains, stripping the
// padding.  This is the explicit boundary for padded array inputs -- the
// detection API itself only takes ragged trains, so a padding zero is
// never confused with a real t=0 timestamp past this point.
func TrainsFromTensor(tsr *etensor.Float64) [][]float64 {
	numN := tsr.Dim(0)
	maxS := tsr.Dim(1)
	trains := make([][]float64, numN)
	for n := 0; n < numN; n++ {
		row := make([]float64, maxS)
		for s := 0; s < maxS; s++ {
			row[s] = tsr.Value([]int{n, s})
		}
		trains[n] = StripPadding(row)
	}
	return trains
}

// DetectTensor is Detect over a zero / NaN padded 2D tensor of spike
// times, first dimension neurons.
func (np *NetParams) DetectTensor(tsr *etensor.Float64) (*Bursts, *Details, *Diag) {
	return np.Detect(TrainsFromTensor(tsr))
}
