// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msolid implements material models for solids defined by yield functions in stress space
package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/mlyield/tsr"
)

// Model defines the interface for solid models
type Model interface {
	tsr.Material
	Init(prms dbf.Params) error // initialises model
	GetPrms() dbf.Params        // gets (an example) of parameters
}

// Readier is implemented by models that need extra data, not given by parameters, before use
type Readier interface {
	Ready() error // returns an error if the model cannot be used yet
}

// CheckReady returns an error if a model still needs data that parameters cannot provide
func CheckReady(mdl Model) error {
	if r, ok := mdl.(Readier); ok {
		return r.Ready()
	}
	return nil
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'msolid' database", name)
	}
	return allocator(), nil
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
