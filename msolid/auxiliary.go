// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/mlyield/tsr"
)

// Ptol is the tolerance on the yield function for plastic yielding
const Ptol = tsr.Ptol

// checkPrms returns an error if prms contains a parameter not in names
func checkPrms(model string, prms dbf.Params, names ...string) error {
	for _, p := range prms {
		found := false
		for _, n := range names {
			if p.N == n {
				found = true
				break
			}
		}
		if !found {
			return chk.Err("%s: parameter named %q is incorrect\n", model, p.N)
		}
	}
	return nil
}

// positive returns an error if the value of a parameter is not positive
func positive(model, name string, v float64) error {
	if v <= 0 {
		return chk.Err("%s: parameter %q must be positive. %g is invalid\n", model, name, v)
	}
	return nil
}

// YieldFuncBatch computes yield functions of N Voigt stresses with the same plastic strain
func YieldFuncBatch(mdl Model, sig [][]float64, εp [6]float64) ([]float64, error) {
	return tsr.MapRows("YieldFuncBatch", sig, []int{6}, func(row []float64) float64 {
		var σ [6]float64
		copy(σ[:], row)
		return mdl.YieldFunc(σ, εp)
	})
}
