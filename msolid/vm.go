// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/mlyield/tsr"
)

// VonMises implements von Mises (J2) plasticity with linear isotropic hardening
type VonMises struct {
	E     float64 // Young's modulus
	Nu    float64 // Poisson's coefficient
	Sy    float64 // yield strength
	Khard float64 // linear hardening coefficient
}

// add model to factory
func init() {
	allocators["vm"] = func() Model { return new(VonMises) }
}

// Init initialises model
func (o *VonMises) Init(prms dbf.Params) (err error) {
	err = checkPrms("vm", prms, "E", "nu", "sy", "khard")
	if err != nil {
		return
	}
	o.E = prms.GetValueOrDefault("E", 0)
	o.Nu = prms.GetValueOrDefault("nu", 0)
	o.Sy = prms.GetValueOrDefault("sy", 0)
	o.Khard = prms.GetValueOrDefault("khard", 0)
	return positive("vm", "sy", o.Sy)
}

// GetPrms gets (an example) of parameters
func (o VonMises) GetPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "E", V: 200000},
		&dbf.P{N: "nu", V: 0.3},
		&dbf.P{N: "sy", V: 150},
		&dbf.P{N: "khard", V: 4500},
	}
}

// Seq computes the J2 equivalent stress
func (o VonMises) Seq(σ [6]float64) float64 {
	return tsr.SeqJ2Voigt(σ)
}

// YieldFunc computes the yield function
func (o VonMises) YieldFunc(σ, εp [6]float64) float64 {
	return o.Seq(σ) - (o.Sy + o.Khard*tsr.EpsEq(εp))
}
