// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func checkShapeError(tst *testing.T, msg string, err error, shape []int) {
	var se *ShapeError
	if !errors.As(err, &se) {
		tst.Errorf("%s: ShapeError expected. got %v\n", msg, err)
		return
	}
	io.Pforan("%s: %v\n", msg, err)
	chk.Ints(tst, msg, se.Shape, shape)
}

func Test_batch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch01")

	_, err := SeqJ2Batch(nil)
	checkShapeError(tst, "empty", err, []int{0})

	_, err = SeqJ2Batch([][]float64{{1, 2, 3, 4}})
	checkShapeError(tst, "4 columns", err, []int{1, 4})

	_, err = SCylBatch([][]float64{{1, 2, 3}, {1, 2}}, nil)
	checkShapeError(tst, "ragged", err, []int{2, 2, 1})

	_, _, err = PrincBatch([][]float64{{1, 2, 3}})
	checkShapeError(tst, "princ with 3 columns", err, []int{1, 3})

	_, err = SpCartBatch([][]float64{{1, 2, 3, 4}})
	checkShapeError(tst, "spcart with 4 columns", err, []int{1, 4})

	_, err = SVoigtBatch([][3]float64{{1, 0, 0}}, nil)
	checkShapeError(tst, "svoigt mismatch", err, []int{1, 0})

	_, err = SVoigtBatch(nil, nil)
	checkShapeError(tst, "svoigt empty", err, []int{0, 0})
}

func Test_batch02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch02")

	// Voigt stresses
	sig := make([][]float64, len(samples))
	for i, v := range samples {
		sig[i] = v[:]
	}
	sp, ev, err := PrincBatch(sig)
	if err != nil {
		tst.Errorf("PrincBatch failed: %v\n", err)
		return
	}
	seq, err := SeqJ2Batch(sig)
	if err != nil {
		tst.Errorf("SeqJ2Batch failed: %v\n", err)
		return
	}
	for i, v := range samples {
		p, n := Princ(v)
		chk.Array(tst, "sp", 1e-15, sp[i][:], p[:])
		chk.Deep2(tst, "ev", 1e-15, [][]float64{ev[i][0][:], ev[i][1][:], ev[i][2][:]}, [][]float64{n[0][:], n[1][:], n[2][:]})
		chk.Float64(tst, "seq", 1e-15, seq[i], SeqJ2(p))
	}

	// principal stresses give the same result
	psig := make([][]float64, len(sp))
	for i := range sp {
		psig[i] = []float64{sp[i][0], sp[i][1], sp[i][2]}
	}
	pseq, err := SeqJ2Batch(psig)
	if err != nil {
		tst.Errorf("SeqJ2Batch failed: %v\n", err)
		return
	}
	chk.Array(tst, "seq(princ)", 1e-15, pseq, seq)

	// cylindrical and back
	scyl, err := SCylBatch(sig, nil)
	if err != nil {
		tst.Errorf("SCylBatch failed: %v\n", err)
		return
	}
	res, err := SVoigtBatch(scyl, ev)
	if err != nil {
		tst.Errorf("SVoigtBatch failed: %v\n", err)
		return
	}
	for i, v := range samples {
		chk.Array(tst, io.Sf("round trip %d", i), 1e-8, res[i][:], v[:])
	}

	// strains: principal
	eps, err := EpsEqBatch([][]float64{{1, 0, 0}, {0, 0, 2}})
	if err != nil {
		tst.Errorf("EpsEqBatch failed: %v\n", err)
		return
	}
	chk.Float64(tst, "eps[0]", 1e-15, eps[0], math.Sqrt(2.0/3.0))
	chk.Float64(tst, "eps[1]", 1e-15, eps[1], 2*math.Sqrt(2.0/3.0))

	// strains: Voigt
	eps, err = EpsEqBatch([][]float64{{0, 0, 0, 1, 0, 0}, {1, 0, 0, 0, 0, 0}})
	if err != nil {
		tst.Errorf("EpsEqBatch failed: %v\n", err)
		return
	}
	chk.Float64(tst, "eps[0]", 1e-15, eps[0], math.Sqrt(1.0/3.0))
	chk.Float64(tst, "eps[1]", 1e-15, eps[1], math.Sqrt(2.0/3.0))

	// strains: mixed widths
	_, err = EpsEqBatch([][]float64{{1, 0, 0}, {0, 0, 0, 1, 0, 0}})
	checkShapeError(tst, "EpsEqBatch mixed widths", err, []int{2, 6, 1})
}

func Test_batch03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("batch03")

	// (seq,θ) and (seq,θ,p)
	sp, err := SpCartBatch([][]float64{{1, 0}, {1, 0}})
	if err != nil {
		tst.Errorf("SpCartBatch failed: %v\n", err)
		return
	}
	chk.Array(tst, "sp[0]", 1e-15, sp[0][:], []float64{2.0 / 3.0, -1.0 / 3.0, -1.0 / 3.0})
	sp, err = SpCartBatch([][]float64{{1, 0, 2}})
	if err != nil {
		tst.Errorf("SpCartBatch failed: %v\n", err)
		return
	}
	chk.Array(tst, "sp[0]", 1e-15, sp[0][:], []float64{2 + 2.0/3.0, 2 - 1.0/3.0, 2 - 1.0/3.0})

	// degenerate rows are reported
	θ, warns, err := PolarAngleBatch([][]float64{{1, 0, 0}, {3, 3, 3}, {0, 1, 0}, {-2, -2, -2}})
	if err != nil {
		tst.Errorf("PolarAngleBatch failed: %v\n", err)
		return
	}
	io.Pforan("θ = %v\n", θ)
	chk.Float64(tst, "θ[0]", 1e-15, θ[0], 0)
	chk.Ints(tst, "degenerate", warns.Indices(DegenerateInput), []int{1, 3})
	if len(warns.Indices(Convergence)) != 0 {
		tst.Errorf("there should be no convergence warnings\n")
	}
	for _, w := range warns {
		if w.Where != "PolarAngleBatch" {
			tst.Errorf("context of warning is incorrect: %v\n", w)
		}
	}
}
