// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// State holds the stress and plastic strain at a material point
type State struct {
	Sig     [6]float64 // σ: current Cauchy stress (Voigt)
	EpsP    [6]float64 // εp: plastic strain (Voigt)
	Loading bool       // σ is on or beyond the yield surface
}

// NewState allocates a new state with given stress and zero plastic strain
func NewState(σ [6]float64) *State {
	return &State{Sig: σ}
}

// Set copies states
func (o *State) Set(other *State) {
	o.Sig = other.Sig
	o.EpsP = other.EpsP
	o.Loading = other.Loading
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := new(State)
	other.Set(o)
	return other
}

// YieldFunc computes the yield function of a model at state s and sets the Loading flag
//  Note: f > -Ptol means loading, i.e. the state is on or outside the yield surface
func YieldFunc(mdl Model, s *State) (f float64) {
	f = mdl.YieldFunc(s.Sig, s.EpsP)
	s.Loading = f > -Ptol
	return
}
