// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// linearClf is a classifier with a linear decision function w·x + b
type linearClf struct {
	w    []float64   // weights
	b    float64     // bias
	last [][]float64 // last samples
}

func (o *linearClf) DecisionFunction(x [][]float64) (res []float64) {
	o.last = x
	res = make([]float64, len(x))
	for i, row := range x {
		res[i] = o.b
		for j, v := range row {
			res[i] += o.w[j] * v
		}
	}
	return
}
