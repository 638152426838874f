// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "gonum.org/v1/gonum/mat"

// Ten converts a Voigt tensor (xx,yy,zz,yz,xz,xy) into a symmetric 3x3 matrix
func Ten(v [6]float64) (t [3][3]float64) {
	t[0][0] = v[0]
	t[1][1] = v[1]
	t[2][2] = v[2]
	t[1][2], t[2][1] = v[3], v[3]
	t[0][2], t[2][0] = v[4], v[4]
	t[0][1], t[1][0] = v[5], v[5]
	return
}

// Voigt extracts the six independent components of a symmetric 3x3 matrix
func Voigt(t [3][3]float64) [6]float64 {
	return [6]float64{t[0][0], t[1][1], t[2][2], t[1][2], t[0][2], t[0][1]}
}

// SpectralCompose recreates a tensor from its spectral decomposition
//  λ -- eigenvalues
//  n -- eigenvectors [ncp][nvecs]; i.e. n[i][k] is the i-th component of the k-th eigenvector
func SpectralCompose(λ [3]float64, n [3][3]float64) (t [3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = λ[0]*n[i][0]*n[j][0] + λ[1]*n[i][1]*n[j][1] + λ[2]*n[i][2]*n[j][2]
		}
	}
	return
}

// Det computes the determinant of a 3x3 matrix
func Det(a [3][3]float64) float64 {
	return mat.Det(dense(a))
}

// dense returns a gonum matrix with a copy of a
func dense(a [3][3]float64) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	})
}

// padPrinc returns principal values as a Voigt tensor with zero shear components
func padPrinc(sp [3]float64) [6]float64 {
	return [6]float64{sp[0], sp[1], sp[2], 0, 0, 0}
}
