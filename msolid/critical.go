// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mlyield/training"
	"github.com/cpmech/mlyield/tsr"
)

// CriticalStress scales the direction of stress σ until the yield function vanishes
//  smax -- upper bound of the scaling factor; the yield function must be positive at smax·σ
//  Output:
//   σc        -- critical stress on the yield surface
//   converged -- the root finder converged
func CriticalStress(mdl Model, σ, εp [6]float64, smax float64) (σc [6]float64, converged bool, err error) {
	f := func(s float64) float64 {
		var sσ [6]float64
		for i := 0; i < 6; i++ {
			sσ[i] = s * σ[i]
		}
		return mdl.YieldFunc(sσ, εp)
	}
	if f(0) > 0 {
		return σc, false, chk.Err("zero stress is not elastic; yield function = %g", f(0))
	}
	brent := training.NewBrent(f)
	s, converged, err := brent.Root(0, smax)
	if err != nil {
		return σc, false, chk.Err("cannot find critical stress:\n%v", err)
	}
	for i := 0; i < 6; i++ {
		σc[i] = s * σ[i]
	}
	return
}

// CriticalStresses finds the critical stresses along N Voigt stress directions
//  Note: rows that cannot be scaled to the yield surface (origin already plastic or root not
//        bracketed by smax) are returned as zero with a NoSolution warning; non-converged rows
//        get a Convergence warning
func CriticalStresses(mdl Model, sig [][]float64, εp [6]float64, smax float64) (res [][6]float64, warns tsr.Warnings, err error) {
	i := 0
	res, err = tsr.MapRows("CriticalStresses", sig, []int{6}, func(row []float64) (σc [6]float64) {
		var σ [6]float64
		copy(σ[:], row)
		σc, converged, e := CriticalStress(mdl, σ, εp, smax)
		if e != nil {
			warns.Add(tsr.NoSolution, "CriticalStresses", i, "%v", e)
		} else if !converged {
			warns.Add(tsr.Convergence, "CriticalStresses", i, "root finding did not converge")
		}
		i++
		return
	})
	return
}
