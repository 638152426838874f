// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "math"

// SCyl converts principal stresses into cylindrical coordinates (seq, θ, p)
//  mat -- [optional] material for generalised equivalent stresses; nil => J2.
//         The material receives the principal stresses padded with zero shear
func SCyl(sp [3]float64, mat Material) (sc [3]float64) {
	if mat == nil {
		sc[0] = SeqJ2(sp)
	} else {
		sc[0] = mat.Seq(padPrinc(sp))
	}
	sc[1] = PolarAngle(sp)
	sc[2] = Hydro(sp)
	return
}

// SCylVoigt converts a Voigt stress into cylindrical coordinates (seq, θ, p)
//  mat -- [optional] material; receives the full Voigt stress
func SCylVoigt(v [6]float64, mat Material) (sc [3]float64) {
	sp, _ := Princ(v)
	sc = SCyl(sp, nil)
	if mat != nil {
		sc[0] = mat.Seq(v)
	}
	return
}

// SpCart converts cylindrical coordinates into principal stresses
//  seq -- equivalent stress
//  θ   -- polar angle in the deviatoric plane
//  p   -- hydrostatic stress; use 0 for a purely deviatoric state
func SpCart(seq, θ, p float64) (sp [3]float64) {
	c := SQ2by3 * seq
	co, si := math.Cos(θ), math.Sin(θ)
	for i := 0; i < 3; i++ {
		sp[i] = c*(co*Avec[i]+si*Bvec[i]) + p
	}
	return
}

// SVoigt converts cylindrical coordinates and eigenvectors into a Voigt stress
//  scyl -- (seq, θ, p)
//  ev   -- eigenvectors in columns; the sign is flipped (on a copy) if the frame is left-handed
func SVoigt(scyl [3]float64, ev [3][3]float64) [6]float64 {
	sp := SpCart(scyl[0], scyl[1], scyl[2])
	if Det(ev) < 0 {
		negate(&ev)
	}
	return Voigt(SpectralCompose(sp, ev))
}
