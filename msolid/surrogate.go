// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/mlyield/tsr"
)

// Classifier defines trained binary classifiers of stress states
type Classifier interface {
	DecisionFunction(x [][]float64) []float64 // signed distances of samples to the decision boundary; > 0 means plastic
}

// Surrogate implements a machine-learning yield function given by a classifier trained on
// scaled stresses and plastic strains
//  Note: features are σ/ScaleSeq (6 components) followed by εp/ScaleWh (6 components)
type Surrogate struct {
	ScaleSeq float64    // scaling of stresses
	ScaleWh  float64    // scaling of plastic strains (work hardening)
	Clf      Classifier // trained classifier
}

// add model to factory
func init() {
	allocators["surrogate"] = func() Model { return new(Surrogate) }
}

// Init initialises model
func (o *Surrogate) Init(prms dbf.Params) (err error) {
	err = checkPrms("surrogate", prms, "scaleSeq", "scaleWh")
	if err != nil {
		return
	}
	o.ScaleSeq = prms.GetValueOrDefault("scaleSeq", 1)
	o.ScaleWh = prms.GetValueOrDefault("scaleWh", 1)
	err = positive("surrogate", "scaleSeq", o.ScaleSeq)
	if err != nil {
		return
	}
	return positive("surrogate", "scaleWh", o.ScaleWh)
}

// GetPrms gets (an example) of parameters
func (o Surrogate) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "scaleSeq", V: 150},
		&dbf.P{N: "scaleWh", V: 0.005},
	}
}

// SetClassifier sets the trained classifier
func (o *Surrogate) SetClassifier(clf Classifier) {
	o.Clf = clf
}

// Ready returns an error if the classifier has not been set
func (o Surrogate) Ready() error {
	if o.Clf == nil {
		return chk.Err("surrogate: classifier has not been set; it cannot be given by parameters")
	}
	return nil
}

// Features computes the scaled features of a stress and plastic strain
func (o Surrogate) Features(σ, εp [6]float64) (x []float64) {
	x = make([]float64, 12)
	for i := 0; i < 6; i++ {
		x[i] = σ[i] / o.ScaleSeq
		x[6+i] = εp[i] / o.ScaleWh
	}
	return
}

// Seq computes the J2 equivalent stress
func (o Surrogate) Seq(σ [6]float64) float64 {
	return tsr.SeqJ2Voigt(σ)
}

// YieldFunc returns the decision function of the classifier
func (o Surrogate) YieldFunc(σ, εp [6]float64) float64 {
	if o.Clf == nil {
		chk.Panic("surrogate: classifier has not been set")
	}
	return o.Clf.DecisionFunction([][]float64{o.Features(σ, εp)})[0]
}

// YieldFuncs computes the decision function of N stresses and plastic strains in one call
func (o Surrogate) YieldFuncs(sig, epl [][6]float64) ([]float64, error) {
	if len(sig) == 0 || len(sig) != len(epl) {
		return nil, &tsr.ShapeError{Where: "Surrogate.YieldFuncs", Shape: []int{len(sig), len(epl)}, Want: "(N,6) and (N,6) with N > 0"}
	}
	if o.Clf == nil {
		return nil, chk.Err("surrogate: classifier has not been set")
	}
	x := make([][]float64, len(sig))
	for i := range sig {
		x[i] = o.Features(sig[i], epl[i])
	}
	return o.Clf.DecisionFunction(x), nil
}
