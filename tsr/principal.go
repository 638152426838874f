// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Princ computes the principal values and eigenvectors of a Voigt tensor
//  sp -- principal values arranged by axis slots (see AxisSlots)
//  ev -- eigenvectors in columns; ev[i][k] is the i-th component of the k-th eigenvector
//  Note: t = ev・diag(sp)・evᵀ and det(ev) = +1
func Princ(v [6]float64) (sp [3]float64, ev [3][3]float64) {
	return PrincTen(Ten(v))
}

// PrincTen computes the principal values and eigenvectors of a symmetric 3x3 matrix
//  Note: panics if t has non-finite components
func PrincTen(t [3][3]float64) (sp [3]float64, ev [3][3]float64) {

	// check input
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(t[i][j]) || math.IsInf(t[i][j], 0) {
				chk.Panic("PrincTen: component t[%d][%d] = %v is not finite", i, j, t[i][j])
			}
		}
	}

	// eigen-decomposition
	var eig mat.EigenSym
	a := mat.NewSymDense(3, []float64{
		t[0][0], t[0][1], t[0][2],
		t[1][0], t[1][1], t[1][2],
		t[2][0], t[2][1], t[2][2],
	})
	if !eig.Factorize(a, true) {
		chk.Panic("PrincTen: eigen-decomposition of %v failed", t)
	}
	λ := eig.Values(nil)
	var q mat.Dense
	eig.VectorsTo(&q)

	// major axis of each eigenvector
	var iev [3]int
	for k := 0; k < 3; k++ {
		vmax := math.Abs(q.At(0, k))
		for i := 1; i < 3; i++ {
			if c := math.Abs(q.At(i, k)); c > vmax {
				iev[k], vmax = i, c
			}
		}
	}

	// arrange eigenpairs
	j := AxisSlots(iev)
	for m := 0; m < 3; m++ {
		sp[m] = λ[j[m]]
		for i := 0; i < 3; i++ {
			ev[i][m] = q.At(i, j[m])
		}
	}

	// right-handed frame
	if Det(ev) < 0 {
		negate(&ev)
	}
	return
}

// AxisSlots returns the order in which eigenpairs fill the slots 0, 1 and 2
//  iev -- iev[k] is the coordinate axis along which eigenvector k has its largest component
//  Note: eigenvectors along axis 0 come first, then axis 1, then axis 2; the discovery order is
//        kept within each group. Thus, j is not a sort by eigenvalue
func AxisSlots(iev [3]int) (j [3]int) {
	m := 0
	for axis := 0; axis < 3; axis++ {
		for k := 0; k < 3; k++ {
			if iev[k] == axis {
				j[m] = k
				m++
			}
		}
	}
	return
}

// negate flips the sign of all components of a
func negate(a *[3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = -a[i][j]
		}
	}
}
