// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package training

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mlyield/tsr"
)

// Scores holds the confusion matrix and metrics of a binary classification of yield function
// values; positive (+1) means plastic and negative (-1) means elastic
//  Note: metrics whose denominator is zero are NaN
type Scores struct {
	TP, FN, FP, TN int // confusion matrix

	Precision float64 // TP / (TP + FP)
	Accuracy  float64 // (TP + TN) / N
	Recall    float64 // TP / (TP + FN)
	F1        float64 // 2 Recall Precision / (Recall + Precision)
	MAE       float64 // mean absolute error of raw values
	MCC       float64 // Matthews correlation coefficient
}

// Score compares reference and predicted yield function values
//  Note: zero values are counted as positive; NaN values are not accepted
func Score(ref, pred []float64) (o *Scores, err error) {
	if len(ref) == 0 || len(ref) != len(pred) {
		return nil, &tsr.ShapeError{Where: "Score", Shape: []int{len(ref), len(pred)}, Want: "(N) and (N) with N > 0"}
	}
	for i := range ref {
		if math.IsNaN(ref[i]) || math.IsNaN(pred[i]) {
			return nil, chk.Err("Score: values at index %d are invalid: ref=%v, pred=%v", i, ref[i], pred[i])
		}
	}
	o = new(Scores)
	for i := range ref {
		r, p := sign(ref[i]), sign(pred[i])
		switch {
		case r > 0 && p > 0:
			o.TP++
		case r > 0 && p < 0:
			o.FN++
		case r < 0 && p > 0:
			o.FP++
		default:
			o.TN++
		}
		o.MAE += math.Abs(ref[i] - pred[i])
	}
	o.MAE /= float64(len(ref))
	tp, fn, fp, tn := float64(o.TP), float64(o.FN), float64(o.FP), float64(o.TN)
	o.Precision = ratio(tp, tp+fp)
	o.Accuracy = ratio(tp+tn, tp+fp+fn+tn)
	o.Recall = ratio(tp, tp+fn)
	o.F1 = ratio(2*o.Recall*o.Precision, o.Recall+o.Precision)
	o.MCC = ratio(tp*tn-fp*fn, math.Sqrt((tp+fp)*(tp+fn)*(tn+fp)*(tn+fn)))
	return
}

// Undefined returns the names of metrics that are NaN
func (o *Scores) Undefined() (names []string) {
	metrics := []struct {
		name string
		val  float64
	}{
		{"Precision", o.Precision},
		{"Accuracy", o.Accuracy},
		{"Recall", o.Recall},
		{"F1", o.F1},
		{"MAE", o.MAE},
		{"MCC", o.MCC},
	}
	for _, m := range metrics {
		if math.IsNaN(m.val) {
			names = append(names, m.name)
		}
	}
	return
}

// String returns the confusion matrix and metrics
func (o *Scores) String() (l string) {
	l = io.Sf("%20s%10s%10s\n", "", "Elastic", "Plastic")
	l += io.Sf("%20s%10d%10d\n", "Elastic (reference)", o.TN, o.FP)
	l += io.Sf("%20s%10d%10d\n", "Plastic (reference)", o.FN, o.TP)
	l += io.ArgsTable("METRICS",
		"mean absolute error", "MAE", o.MAE,
		"precision", "Precision", o.Precision,
		"accuracy", "Accuracy", o.Accuracy,
		"recall", "Recall", o.Recall,
		"F1 score", "F1", o.F1,
		"Matthews correlation", "MCC", o.MCC,
	)
	return
}

// sign returns -1 for negative values and +1 otherwise
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// ratio returns a/b or NaN if b is zero
func ratio(a, b float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	return a / b
}
