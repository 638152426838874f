// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/mlyield/tsr"
)

// Hill implements Hill's orthotropic plasticity with linear isotropic hardening
//  Note: with all coefficients equal to 1, Hill reduces to von Mises
type Hill struct {
	Sy    float64    // yield strength
	Khard float64    // linear hardening coefficient
	H     [6]float64 // anisotropy coefficients
}

// add model to factory
func init() {
	allocators["hill"] = func() Model { return new(Hill) }
}

// Init initialises model
func (o *Hill) Init(prms dbf.Params) (err error) {
	err = checkPrms("hill", prms, "sy", "khard", "h0", "h1", "h2", "h3", "h4", "h5")
	if err != nil {
		return
	}
	o.Sy = prms.GetValueOrDefault("sy", 0)
	o.Khard = prms.GetValueOrDefault("khard", 0)
	for i := 0; i < 6; i++ {
		o.H[i] = prms.GetValueOrDefault(hillNames[i], 1)
		if o.H[i] < 0 {
			return chk.Err("hill: parameter %q must be non-negative. %g is invalid\n", hillNames[i], o.H[i])
		}
	}
	return positive("hill", "sy", o.Sy)
}

// GetPrms gets (an example) of parameters
func (o Hill) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "sy", V: 150},
		&dbf.P{N: "khard", V: 0},
		&dbf.P{N: "h0", V: 1.2},
		&dbf.P{N: "h1", V: 0.9},
		&dbf.P{N: "h2", V: 1},
		&dbf.P{N: "h3", V: 1},
		&dbf.P{N: "h4", V: 1},
		&dbf.P{N: "h5", V: 1},
	}
}

// Seq computes the Hill equivalent stress
func (o Hill) Seq(σ [6]float64) float64 {
	d12 := σ[0] - σ[1]
	d23 := σ[1] - σ[2]
	d31 := σ[2] - σ[0]
	hh := o.H[0]*d12*d12 + o.H[1]*d23*d23 + o.H[2]*d31*d31
	hh += 6.0 * (o.H[3]*σ[3]*σ[3] + o.H[4]*σ[4]*σ[4] + o.H[5]*σ[5]*σ[5])
	return math.Sqrt(0.5 * hh)
}

// YieldFunc computes the yield function
func (o Hill) YieldFunc(σ, εp [6]float64) float64 {
	return o.Seq(σ) - (o.Sy + o.Khard*tsr.EpsEq(εp))
}

var hillNames = []string{"h0", "h1", "h2", "h3", "h4", "h5"}
