// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

// Material defines the capabilities of material models needed by stress conversions
type Material interface {
	Seq(σ [6]float64) float64            // equivalent stress of Voigt stress σ
	YieldFunc(σ, εp [6]float64) float64 // yield function; > 0 means plastic
}

// Stress holds a Voigt stress tensor and its derived representations
//  Note: all fields are computed by NewStress and must not be modified
type Stress struct {
	V  [6]float64    // Voigt components (xx,yy,zz,yz,xz,xy)
	T  [3][3]float64 // matrix
	P  [3]float64    // principal stresses
	Ev [3][3]float64 // eigenvectors in columns
	H  float64       // hydrostatic stress
	D  [6]float64    // deviatoric stress (Voigt)
}

// NewStress computes all representations of Voigt stress v
func NewStress(v [6]float64) (o Stress) {
	o.V = v
	o.T = Ten(v)
	o.P, o.Ev = PrincTen(o.T)
	o.H = Hydro(o.P)
	o.D = v
	for i := 0; i < 3; i++ {
		o.D[i] -= o.H
	}
	return
}

// Seq computes the equivalent stress of a material
func (o Stress) Seq(mat Material) float64 {
	return mat.Seq(o.V)
}

// Theta computes the polar angle in the deviatoric plane
func (o Stress) Theta() float64 {
	return PolarAngle(o.P)
}

// SJ2 computes the J2 equivalent stress
func (o Stress) SJ2() float64 {
	return SeqJ2(o.P)
}

// Cyl returns the cylindrical coordinates (J2 equivalent stress, polar angle, hydrostatic stress)
func (o Stress) Cyl() [3]float64 {
	return [3]float64{SeqJ2(o.P), PolarAngle(o.P), o.H}
}

// LodeAngle computes the Lode angle for a given equivalent stress
func (o Stress) LodeAngle(seq float64) (la float64, degenerate bool) {
	return LodeAngle(o.T, o.H, seq)
}

// LodeAngleMat computes the Lode angle using the equivalent stress of a material
func (o Stress) LodeAngleMat(mat Material) (la float64, degenerate bool) {
	return LodeAngle(o.T, o.H, mat.Seq(o.V))
}
