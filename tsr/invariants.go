// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SeqJ2 computes the J2 equivalent stress from principal stresses
func SeqJ2(sp [3]float64) float64 {
	d12 := sp[0] - sp[1]
	d23 := sp[1] - sp[2]
	d31 := sp[2] - sp[0]
	return math.Sqrt(0.5 * (d12*d12 + d23*d23 + d31*d31))
}

// SeqJ2Voigt computes the J2 equivalent stress from a Voigt stress
func SeqJ2Voigt(v [6]float64) float64 {
	sp, _ := Princ(v)
	return SeqJ2(sp)
}

// EpsEq computes the equivalent strain from a Voigt strain
func EpsEq(e [6]float64) float64 {
	n := e[0]*e[0] + e[1]*e[1] + e[2]*e[2]
	s := e[3]*e[3] + e[4]*e[4] + e[5]*e[5]
	return math.Sqrt(2.0 * (n + 0.5*s) / 3.0)
}

// EpsEqPrinc computes the equivalent strain from principal strains
func EpsEqPrinc(e [3]float64) float64 {
	return math.Sqrt(2.0 * (e[0]*e[0] + e[1]*e[1] + e[2]*e[2]) / 3.0)
}

// Hydro computes the hydrostatic (mean) stress from principal stresses
func Hydro(sp [3]float64) float64 {
	return (sp[0] + sp[1] + sp[2]) / 3.0
}

// DevPrinc computes the deviatoric principal stresses and their Euclidean norm
func DevPrinc(sp [3]float64) (dev [3]float64, norm float64) {
	p := Hydro(sp)
	for i := 0; i < 3; i++ {
		dev[i] = sp[i] - p
	}
	norm = floats.Norm(dev[:], 2)
	return
}

// IsDevDegenerate tells whether the deviatoric part of sp is too small to define a polar angle
func IsDevDegenerate(sp [3]float64) bool {
	_, norm := DevPrinc(sp)
	return norm < DevTol
}

// PolarAngle computes the polar angle θ ∈ (-π, π] of principal stresses in the deviatoric plane
// measured from Avec towards Bvec
//  Note: deviatoric norms below DevTol are clamped to 1; the result is finite but arbitrary
func PolarAngle(sp [3]float64) float64 {
	dev, vn := DevPrinc(sp)
	if vn < DevTol {
		vn = 1
	}
	dsa := floats.Dot(dev[:], Avec[:]) / vn
	dsb := floats.Dot(dev[:], Bvec[:]) / vn
	θ := math.Atan2(dsb, dsa)
	if θ <= -math.Pi {
		θ = math.Pi
	}
	return θ
}

// LodeAngle computes the Lode angle of a stress tensor with hydrostatic stress p and given
// equivalent stress; the positive-cosine definition is used
//  Note: the acos argument is clamped to [-1,1]; degenerate is true if seq < SeqZero, in which
//        case la = 0
func LodeAngle(t [3][3]float64, p, seq float64) (la float64, degenerate bool) {
	if seq < SeqZero {
		return 0, true
	}
	for i := 0; i < 3; i++ {
		t[i][i] -= p
	}
	J3 := Det(t)
	c := 3.0 / seq
	hh := 0.5 * J3 * c * c * c
	hh = math.Max(-1, math.Min(1, hh))
	return math.Acos(hh) / 3.0, false
}
