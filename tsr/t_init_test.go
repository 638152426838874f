// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// scaledJ2 is a material whose equivalent stress is a multiple of the J2 one
type scaledJ2 struct {
	fac  float64    // factor
	last [6]float64 // last stress passed to Seq
}

func (o *scaledJ2) Seq(σ [6]float64) float64 {
	o.last = σ
	return o.fac * SeqJ2Voigt(σ)
}

func (o *scaledJ2) YieldFunc(σ, εp [6]float64) float64 {
	return o.Seq(σ) - 1.0
}

// samples holds Voigt stresses used in tests
var samples = [][6]float64{
	{1, 2, 3, 0.5, -0.3, 0.7},
	{-100, 20, 35, 10, 0, -5},
	{0, 0, 0, 1, 0, 0},
	{0, 0, 0, 0, 0, 1},
	{1, 1, 1, 0, 0, 0},
	{5, 0, 0, 0, 0, 0},
	{0.3, -0.2, 0.1, 0.4, 0.4, 0.4},
	{-2, -2, 3, 0, 1.5, 0},
}
