// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mlyield/inp"
	"github.com/cpmech/mlyield/msolid"
	"github.com/cpmech/mlyield/training"
	"github.com/cpmech/mlyield/tsr"
)

// Run generates load cases, their cylindrical coordinates and, if a material is given, the
// critical stresses on the initial yield surface
func Run(in *inp.Input) (res *Results, err error) {

	// material
	mdl, err := in.Model()
	if err != nil {
		return
	}
	var mat tsr.Material
	res = &Results{Desc: in.Desc}
	if mdl != nil {
		mat = mdl
		res.Material = in.Material.Name
	}

	// load cases
	var warns tsr.Warnings
	res.Sig, res.Small, warns, err = training.LoadCases(in.N3d, in.N6d)
	if err != nil {
		return nil, chk.Err("cannot generate load cases:\n%v", err)
	}
	res.Scyl, err = tsr.SCylBatch(res.Sig, mat)
	if err != nil {
		return nil, err
	}

	// critical stresses
	if mdl != nil {
		var w tsr.Warnings
		res.Crit, w, err = msolid.CriticalStresses(mdl, res.Sig, [6]float64{}, in.Smax)
		if err != nil {
			return nil, chk.Err("cannot compute critical stresses:\n%v", err)
		}
		warns.Append(w)
		res.CritCyl = make([][3]float64, len(res.Crit))
		for i, σc := range res.Crit {
			res.CritCyl[i] = tsr.SCylVoigt(σc, mat)
		}
	}

	// warnings
	for _, w := range warns {
		res.Warnings = append(res.Warnings, w.String())
	}
	return
}

// Summary returns a summary of results
func (o Results) Summary() string {
	mat := o.Material
	if mat == "" {
		mat = "J2"
	}
	l := io.ArgsTable("RESULTS",
		"number of load cases", "nlc", len(o.Sig),
		"material", "material", mat,
		"number of small stresses", "nsmall", len(o.Small),
		"number of critical stresses", "ncrit", len(o.Crit),
		"number of warnings", "nwarn", len(o.Warnings),
	)
	return l
}
