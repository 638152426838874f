// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import "github.com/cpmech/gosl/io"

// ShapeError reports an unsupported or mismatched shape of input data
type ShapeError struct {
	Where string // calling context; e.g. "SeqJ2Batch"
	Shape []int  // offending shape; e.g. [N, ncols] or [N, ncols, irow]
	Want  string // accepted shapes; e.g. "(N,3) or (N,6)"
}

// Error returns the error message
func (o *ShapeError) Error() string {
	return io.Sf("%s: unsupported shape %v; want %s", o.Where, o.Shape, o.Want)
}

// WarnKind defines the kind of non-fatal numerical issue
type WarnKind int

const (
	Convergence     WarnKind = iota // root finder did not converge; best estimate used
	DegenerateInput                 // near-zero norm; clamped to a safe default
	NoSolution                      // no solution exists in the search interval; zero result used
)

// String returns the name of the kind of warning
func (o WarnKind) String() string {
	switch o {
	case Convergence:
		return "ConvergenceWarning"
	case DegenerateInput:
		return "DegenerateInputWarning"
	case NoSolution:
		return "NoSolutionWarning"
	}
	return io.Sf("WarnKind(%d)", int(o))
}

// Warning holds a non-fatal numerical issue
type Warning struct {
	Kind  WarnKind // kind of warning
	Where string   // calling context
	Index int      // index of sample (row) or -1
	Msg   string   // message
}

// String returns a description of this warning
func (o Warning) String() string {
	if o.Index < 0 {
		return io.Sf("%v in %s: %s", o.Kind, o.Where, o.Msg)
	}
	return io.Sf("%v in %s [%d]: %s", o.Kind, o.Where, o.Index, o.Msg)
}

// Warnings collects warnings
type Warnings []*Warning

// Add appends a new warning and prints it (if io.Verbose)
func (o *Warnings) Add(kind WarnKind, where string, index int, msg string, prm ...interface{}) {
	w := &Warning{Kind: kind, Where: where, Index: index, Msg: io.Sf(msg, prm...)}
	io.Pfyel("WARNING: %v\n", w)
	*o = append(*o, w)
}

// Append appends other warnings (already printed)
func (o *Warnings) Append(other Warnings) {
	*o = append(*o, other...)
}

// Indices returns the indices of samples with a given kind of warning
func (o Warnings) Indices(kind WarnKind) (idx []int) {
	for _, w := range o {
		if w.Kind == kind && w.Index >= 0 {
			idx = append(idx, w.Index)
		}
	}
	return
}
