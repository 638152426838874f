// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package training

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/mlyield/tsr"
)

// LoadCases generates unit stresses in principal stress space (3D) and in full stress space (6D)
//  n3d -- number of principal unit stresses; shear components are zero
//  n6d -- number of full unit stresses
//  Output:
//   sig   -- [n3d+n6d][6] Voigt stresses with unit J2 equivalent stress
//   small -- indices of rows whose equivalent stress before scaling was below tsr.SeqSmall
//   warns -- all warnings, including DegenerateInput warnings for the small rows
//  Note: a row with zero equivalent stress cannot be scaled and is kept unchanged
func LoadCases(n3d, n6d int) (sig [][]float64, small []int, warns tsr.Warnings, err error) {

	// check
	if n3d < 0 || n6d < 0 || n3d+n6d < 1 {
		return nil, nil, nil, chk.Err("numbers of 3D and 6D load cases must be non-negative with a positive sum. n3d=%d, n6d=%d is invalid", n3d, n6d)
	}

	// 3D samples padded with zero shear
	sig = utl.Alloc(n3d+n6d, 6)
	if n3d > 0 {
		p3, w, e := UniformHypersphere(3, n3d)
		warns.Append(w)
		if e != nil {
			return nil, nil, warns, e
		}
		for i := 0; i < n3d; i++ {
			copy(sig[i], p3[i])
		}
	}

	// 6D samples
	if n6d > 0 {
		p6, w, e := UniformHypersphere(6, n6d)
		warns.Append(w)
		if e != nil {
			return nil, nil, warns, e
		}
		for i := 0; i < n6d; i++ {
			copy(sig[n3d+i], p6[i])
		}
	}

	// scale to unit equivalent stress
	small, w, err := scaleToUnitSeq(sig)
	warns.Append(w)
	if err != nil {
		return nil, nil, warns, err
	}
	return
}

// scaleToUnitSeq divides each Voigt stress by its J2 equivalent stress
//  Note: rows with seq < tsr.SeqSmall are flagged but kept; rows with seq == 0 are not scaled
func scaleToUnitSeq(sig [][]float64) (small []int, warns tsr.Warnings, err error) {
	seq, err := tsr.SeqJ2Batch(sig)
	if err != nil {
		return
	}
	for i, s := range seq {
		if s < tsr.SeqSmall {
			small = append(small, i)
			warns.Add(tsr.DegenerateInput, "LoadCases", i, "small stress detected: seq=%g", s)
		}
		if s == 0 {
			continue
		}
		for j := 0; j < 6; j++ {
			sig[i][j] /= s
		}
	}
	return
}
