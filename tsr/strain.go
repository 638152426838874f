// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "math"

// Strain holds a Voigt strain tensor and its derived representations
type Strain struct {
	V  [6]float64    // Voigt components (xx,yy,zz,yz,xz,xy)
	T  [3][3]float64 // matrix
	P  [3]float64    // principal strains
	Ev [3][3]float64 // eigenvectors in columns
}

// NewStrain computes all representations of Voigt strain v
func NewStrain(v [6]float64) (o Strain) {
	o.V = v
	o.T = Ten(v)
	o.P, o.Ev = PrincTen(o.T)
	return
}

// Eeq computes the equivalent strain
func (o Strain) Eeq() float64 {
	return EpsEq(o.V)
}

// Inv computes the component-wise inverse of the Voigt strain; zeros are kept
func (o Strain) Inv() (inv [6]float64) {
	for i := 0; i < 6; i++ {
		if math.Abs(o.V[i]) > 1e-9 {
			inv[i] = 1.0 / o.V[i]
		}
	}
	return
}
