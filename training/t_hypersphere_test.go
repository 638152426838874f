// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package training

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mlyield/tsr"
	"gonum.org/v1/gonum/floats"
)

func Test_sphere01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sphere01")

	// circle
	pts, warns, err := UniformHypersphere(2, 8)
	if err != nil {
		tst.Errorf("UniformHypersphere failed: %v\n", err)
		return
	}
	if len(warns) != 0 {
		tst.Errorf("there should be no warnings\n")
	}
	chk.Int(tst, "n", len(pts), 8)
	for i, p := range pts {
		t := float64(i) * math.Pi / 4
		chk.Array(tst, io.Sf("p%d", i), 1e-15, p, []float64{math.Sin(t), math.Cos(t)})
	}

	// errors
	_, _, err = UniformHypersphere(1, 8)
	if err == nil {
		tst.Errorf("d=1 should fail\n")
	}
	_, _, err = UniformHypersphere(3, 0)
	if err == nil {
		tst.Errorf("n=0 should fail\n")
	}
}

func Test_sphere02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sphere02")

	// sphere: the last coordinate is cos(y) with (1-cos(y))/2 = frac(i√2)
	n := 40
	pts, warns, err := UniformHypersphere(3, n)
	if err != nil {
		tst.Errorf("UniformHypersphere failed: %v\n", err)
		return
	}
	if len(warns) != 0 {
		tst.Errorf("there should be no warnings\n")
	}
	for i, p := range pts {
		_, x := math.Modf(float64(i) * math.Sqrt2)
		chk.Float64(tst, io.Sf("z%d", i), 1e-7, p[2], 1-2*x)
		chk.Float64(tst, io.Sf("|p%d|", i), 1e-14, floats.Norm(p, 2), 1)
	}
	chk.Array(tst, "p0", 1e-15, pts[0], []float64{0, 0, 1})
	chk.Array(tst, "p1", 1e-7, pts[1], []float64{0.154114765782877, 0.973042335895427, 0.171572875253810})

	// 6D
	pts, _, err = UniformHypersphere(6, 3)
	if err != nil {
		tst.Errorf("UniformHypersphere failed: %v\n", err)
		return
	}
	io.Pforan("pts = %v\n", pts)
	chk.Deep2(tst, "6D points", 1e-7, pts, [][]float64{
		{0, 0, 0, 0, 0, 1},
		{0.724483775887492, -0.418280903032160, 0.145691714026778, -0.341764660365793, 0.362957777523941, -0.174346889155723},
		{-0.630189454448277, -0.363840051166177, -0.633910649967017, 0.054535173238980, 0.035952946664226, 0.253716883620157},
	})
	for i, p := range pts {
		chk.Float64(tst, io.Sf("|p%d|", i), 1e-14, floats.Norm(p, 2), 1)
	}
}

func Test_loadcases01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loadcases01")

	sig, small, warns, err := LoadCases(10, 10)
	if err != nil {
		tst.Errorf("LoadCases failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of rows", len(sig), 20)
	if len(small) != 0 || len(warns) != 0 {
		tst.Errorf("there should be no small stresses. small=%v\n", small)
	}

	// unit equivalent stresses
	seq, err := tsr.SeqJ2Batch(sig)
	if err != nil {
		tst.Errorf("SeqJ2Batch failed: %v\n", err)
		return
	}
	for i := range sig {
		chk.Int(tst, "number of columns", len(sig[i]), 6)
		chk.Float64(tst, io.Sf("seq%d", i), 1e-12, seq[i], 1)
	}

	// principal stresses
	for i := 0; i < 10; i++ {
		chk.Array(tst, io.Sf("shear%d", i), 1e-15, sig[i][3:], []float64{0, 0, 0})
	}
	chk.Array(tst, "sig0", 1e-15, sig[0], []float64{0, 0, 1, 0, 0, 0})
	chk.Array(tst, "sig1", 1e-7, sig[1], []float64{1.053078898718489, 1.449438757025823, 0.312017566511720, 0, 0, 0})

	// full stresses
	chk.Array(tst, "sig10", 1e-14, sig[10], []float64{0, 0, 0, 0, 0, 1 / tsr.SQ3})
	chk.Array(tst, "sig12", 1e-7, sig[12], []float64{0.553579591742499, 0.179868912789709, -0.507062267190990, 0.043622438881015, 0.028758599731220, 0.202946989831710})
}

func Test_loadcases02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loadcases02")

	// only principal stresses
	sig, _, _, err := LoadCases(5, 0)
	if err != nil {
		tst.Errorf("LoadCases failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of rows", len(sig), 5)

	// only full stresses
	sig, _, _, err = LoadCases(0, 4)
	if err != nil {
		tst.Errorf("LoadCases failed: %v\n", err)
		return
	}
	chk.Int(tst, "number of rows", len(sig), 4)

	// errors
	for _, n := range [][2]int{{0, 0}, {-1, 5}, {5, -1}} {
		_, _, _, err = LoadCases(n[0], n[1])
		if err == nil {
			tst.Errorf("LoadCases(%d,%d) should fail\n", n[0], n[1])
		}
	}
}

func Test_loadcases03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loadcases03")

	sig := [][]float64{
		{2, 0, 0, 0, 0, 0},    // normal
		{1, 1, 1, 0, 0, 0},    // hydrostatic: zero seq
		{1e-4, 0, 0, 0, 0, 0}, // tiny
		{0, 0, 0, 0, 0, 3},    // shear
	}
	small, warns, err := scaleToUnitSeq(sig)
	if err != nil {
		tst.Errorf("scaleToUnitSeq failed: %v\n", err)
		return
	}
	io.Pforan("warns = %v\n", warns)
	chk.Ints(tst, "small", small, []int{1, 2})
	chk.Ints(tst, "degenerate", warns.Indices(tsr.DegenerateInput), []int{1, 2})
	chk.Int(tst, "number of warnings", len(warns), 2)

	// rows are kept; the zero-seq row is unchanged
	chk.Int(tst, "number of rows", len(sig), 4)
	chk.Array(tst, "normal", 1e-12, sig[0], []float64{1, 0, 0, 0, 0, 0})
	chk.Array(tst, "hydrostatic", 1e-15, sig[1], []float64{1, 1, 1, 0, 0, 0})
	chk.Array(tst, "tiny", 1e-10, sig[2], []float64{1, 0, 0, 0, 0, 0})
	chk.Array(tst, "shear", 1e-12, sig[3], []float64{0, 0, 0, 0, 0, 1 / math.Sqrt(3)})
	for i := 0; i < 4; i++ {
		if i == 1 {
			continue
		}
		chk.Float64(tst, io.Sf("seq%d", i), 1e-10, tsr.SeqJ2Voigt([6]float64(sig[i])), 1)
	}

	// wrong shape
	_, _, err = scaleToUnitSeq([][]float64{{1, 2}})
	if err == nil {
		tst.Errorf("scaleToUnitSeq should fail with wrong shape\n")
	}
}
