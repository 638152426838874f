// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tsr implements stress and strain tensors in Voigt notation, their principal values,
// invariants and the conversions between Cartesian and cylindrical (π-plane) coordinates
package tsr

import "math"

// constants
var (
	SQ2    = math.Sqrt(2.0)       // √2
	SQ3    = math.Sqrt(3.0)       // √3
	SQ2by3 = math.Sqrt(2.0 / 3.0) // √(2/3)
	SQ3by2 = math.Sqrt(3.0 / 2.0) // √(3/2)
)

// unit vectors spanning the deviatoric (π) plane in principal stress space
//  Note: read-only
var (
	Avec = [3]float64{1.0 / SQ3by2, -0.5 / SQ3by2, -0.5 / SQ3by2} // real axis: (1,-½,-½)/√1.5
	Bvec = [3]float64{0, 0.5 * SQ2, -0.5 * SQ2}                   // imaginary axis: (0,½,-½)·√2
)

// tolerances
const (
	Ptol     = 3e-3  // plastic yielding if yield function > Ptol
	DevTol   = 1e-4  // deviatoric norms below DevTol are clamped to 1 when computing polar angles
	SeqSmall = 1e-3  // equivalent norms below SeqSmall are flagged in load cases
	SeqZero  = 1e-12 // equivalent stresses below SeqZero cannot be used as divisors
)
