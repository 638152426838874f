// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"encoding/json"
	"flag"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mlyield/inp"
	"github.com/cpmech/mlyield/msolid"
	"github.com/cpmech/mlyield/training"
)

type Input struct {
	N3d     int          // number of principal (3D) load cases
	N6d     int          // number of full (6D) load cases
	Ref     *inp.MatData // reference material
	Test    *inp.MatData // material to be scored
	Factors []float64    // multipliers of reference critical stresses
	Smax    float64      // upper bound of scaling factor for critical stresses
}

func (o *Input) PostProcess() {
	if len(o.Factors) == 0 {
		o.Factors = []float64{0.9, 0.99, 1.01, 1.1}
	}
	if o.Smax <= 0 {
		o.Smax = 1e4
	}
}

func (o Input) String() (l string) {
	l += "\nInput data\n"
	l += "==========\n"
	l += io.Sf("number of 3D load cases : N3d     = %v\n", o.N3d)
	l += io.Sf("number of 6D load cases : N6d     = %v\n", o.N6d)
	l += io.Sf("reference material      : Ref     = %v\n", o.Ref.Name)
	l += io.Sf("material to be scored   : Test    = %v\n", o.Test.Name)
	l += io.Sf("stress multipliers      : Factors = %v\n", o.Factors)
	l += io.Sf("scaling bound           : Smax    = %v\n", o.Smax)
	l += "\n"
	return
}

func model(mat *inp.MatData) msolid.Model {
	if mat == nil {
		io.PfRed("material data must be given\n")
		return nil
	}
	mdl, err := msolid.New(mat.Name)
	if err != nil {
		io.PfRed("cannot allocate model: %v\n", err)
		return nil
	}
	err = mdl.Init(mat.Prms)
	if err != nil {
		io.PfRed("cannot initialise model: %v\n", err)
		return nil
	}
	err = msolid.CheckReady(mdl)
	if err != nil {
		io.PfRed("cannot use model: %v\n", err)
		return nil
	}
	return mdl
}

func main() {

	// input data file
	inpfn := "data/scoremodels.json"
	flag.Parse()
	if len(flag.Args()) > 0 {
		inpfn = flag.Arg(0)
	}
	if io.FnExt(inpfn) == "" {
		inpfn += ".json"
	}

	// read and parse input data
	var in Input
	err := json.Unmarshal(io.ReadFile(inpfn), &in)
	if err != nil {
		io.PfRed("cannot parse %s\n", inpfn)
		return
	}
	if in.Ref == nil || in.Test == nil {
		io.PfRed("reference and test materials must be given\n")
		return
	}
	in.PostProcess()

	// print input data
	io.Pf("%v\n", in)

	// models
	ref, test := model(in.Ref), model(in.Test)
	if ref == nil || test == nil {
		return
	}

	// critical stresses of reference material
	sig, _, _, err := training.LoadCases(in.N3d, in.N6d)
	if err != nil {
		io.PfRed("cannot generate load cases: %v\n", err)
		return
	}
	var εp [6]float64
	crit, _, err := msolid.CriticalStresses(ref, sig, εp, in.Smax)
	if err != nil {
		io.PfRed("cannot compute critical stresses: %v\n", err)
		return
	}

	// yield functions around the reference yield surface
	var yfRef, yfTest []float64
	for _, σc := range crit {
		for _, f := range in.Factors {
			var σ [6]float64
			for i := 0; i < 6; i++ {
				σ[i] = f * σc[i]
			}
			yfRef = append(yfRef, ref.YieldFunc(σ, εp))
			yfTest = append(yfTest, test.YieldFunc(σ, εp))
		}
	}

	// score
	scores, err := training.Score(yfRef, yfTest)
	if err != nil {
		io.PfRed("cannot score: %v\n", err)
		return
	}
	io.Pf("%v", scores)
	if undef := scores.Undefined(); len(undef) > 0 {
		io.PfYel("undefined metrics: %v\n", undef)
	}
}
