// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "github.com/cpmech/gosl/io"

// MapRows applies f to all rows of a after checking that they share one of the accepted widths
//  where  -- calling context for error messages
//  widths -- accepted number of columns
func MapRows[T any](where string, a [][]float64, widths []int, f func(row []float64) T) (res []T, err error) {
	want := wantString(widths)
	if len(a) == 0 {
		return nil, &ShapeError{Where: where, Shape: []int{0}, Want: want}
	}
	ncol := len(a[0])
	ok := false
	for _, w := range widths {
		if ncol == w {
			ok = true
		}
	}
	if !ok {
		return nil, &ShapeError{Where: where, Shape: []int{len(a), ncol}, Want: want}
	}
	res = make([]T, len(a))
	for i, row := range a {
		if len(row) != ncol {
			return nil, &ShapeError{Where: where, Shape: []int{len(a), len(row), i}, Want: want}
		}
		res[i] = f(row)
	}
	return
}

// PrincBatch computes principal stresses and eigenvectors of N Voigt stresses
func PrincBatch(sig [][]float64) (sp [][3]float64, ev [][3][3]float64, err error) {
	ev = make([][3][3]float64, len(sig))
	i := 0
	sp, err = MapRows("PrincBatch", sig, []int{6}, func(row []float64) (p [3]float64) {
		p, ev[i] = Princ(to6(row))
		i++
		return
	})
	if err != nil {
		return nil, nil, err
	}
	return
}

// SeqJ2Batch computes J2 equivalent stresses of N principal (N,3) or Voigt (N,6) stresses
func SeqJ2Batch(sig [][]float64) ([]float64, error) {
	return MapRows("SeqJ2Batch", sig, []int{3, 6}, func(row []float64) float64 {
		return SeqJ2(princOf(row))
	})
}

// EpsEqBatch computes equivalent strains of N principal (N,3) or Voigt (N,6) strains
func EpsEqBatch(eps [][]float64) ([]float64, error) {
	return MapRows("EpsEqBatch", eps, []int{3, 6}, func(row []float64) float64 {
		if len(row) == 3 {
			return EpsEqPrinc(to3(row))
		}
		return EpsEq(to6(row))
	})
}

// PolarAngleBatch computes polar angles of N principal (N,3) or Voigt (N,6) stresses
//  warns -- DegenerateInput warnings for rows with clamped deviatoric norm
func PolarAngleBatch(sig [][]float64) (θ []float64, warns Warnings, err error) {
	i := 0
	θ, err = MapRows("PolarAngleBatch", sig, []int{3, 6}, func(row []float64) float64 {
		sp := princOf(row)
		if IsDevDegenerate(sp) {
			warns.Add(DegenerateInput, "PolarAngleBatch", i, "deviatoric norm < %g; polar angle is arbitrary", DevTol)
		}
		i++
		return PolarAngle(sp)
	})
	return
}

// SCylBatch converts N principal (N,3) or Voigt (N,6) stresses into cylindrical coordinates
//  mat -- [optional] material for generalised equivalent stresses
func SCylBatch(sig [][]float64, mat Material) ([][3]float64, error) {
	return MapRows("SCylBatch", sig, []int{3, 6}, func(row []float64) [3]float64 {
		if len(row) == 3 {
			return SCyl(to3(row), mat)
		}
		return SCylVoigt(to6(row), mat)
	})
}

// SpCartBatch converts N cylindrical stresses (seq, θ) (N,2) or (seq, θ, p) (N,3) into
// principal stresses; missing p means p = 0
func SpCartBatch(scyl [][]float64) ([][3]float64, error) {
	return MapRows("SpCartBatch", scyl, []int{2, 3}, func(row []float64) [3]float64 {
		p := 0.0
		if len(row) == 3 {
			p = row[2]
		}
		return SpCart(row[0], row[1], p)
	})
}

// SVoigtBatch converts N cylindrical stresses and eigenvectors into Voigt stresses
func SVoigtBatch(scyl [][3]float64, ev [][3][3]float64) (res [][6]float64, err error) {
	if len(scyl) == 0 || len(scyl) != len(ev) {
		return nil, &ShapeError{Where: "SVoigtBatch", Shape: []int{len(scyl), len(ev)}, Want: "(N,3) and (N,3,3) with N > 0"}
	}
	res = make([][6]float64, len(scyl))
	for i := range scyl {
		res[i] = SVoigt(scyl[i], ev[i])
	}
	return
}

// princOf returns principal values of a row with 3 (principal) or 6 (Voigt) components
func princOf(row []float64) [3]float64 {
	if len(row) == 3 {
		return to3(row)
	}
	sp, _ := Princ(to6(row))
	return sp
}

func to3(row []float64) (a [3]float64) {
	copy(a[:], row)
	return
}

func to6(row []float64) (a [6]float64) {
	copy(a[:], row)
	return
}

func wantString(widths []int) (l string) {
	for i, w := range widths {
		if i > 0 {
			l += " or "
		}
		l += io.Sf("(N,%d)", w)
	}
	return
}
