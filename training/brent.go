// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package training

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MACHEPS is the machine epsilon
const MACHEPS = 2.220446049250313e-16

// Brent implements Brent's method for finding the roots of scalar functions
type Brent struct {

	// configuration
	MaxIt   int     // max iterations
	Tol     float64 // tolerance on x
	Verbose bool    // show messages

	// statistics
	NumFeval int // number of function evaluations
	NumIter  int // number of iterations from last call to Root

	// internal
	ffcn func(x float64) float64 // y = f(x)
}

// NewBrent returns a new Brent structure
func NewBrent(ffcn func(x float64) float64) (o *Brent) {
	o = new(Brent)
	o.MaxIt = 100
	o.Tol = 1e-8
	o.ffcn = ffcn
	return
}

// Root solves f(x) = 0 for x in [xa, xb] with f(xa) * f(xb) <= 0
//  Based on the ZEROIN algorithm by Forsythe, Malcolm and Moler: bisection combined with linear
//  or inverse quadratic interpolation.
//  Output:
//   x         -- root or best estimate if not converged
//   converged -- the tolerance was reached within MaxIt iterations
//   err       -- the root is not bracketed
func (o *Brent) Root(xa, xb float64) (x float64, converged bool, err error) {

	// basic variables and function evaluation
	a := xa // the last but one approximation
	b := xb // the last and the best approximation to the root
	c := a  // earlier approximation such that f(b) and f(c) have opposite signs
	fa := o.ffcn(a)
	fb := o.ffcn(b)
	o.NumFeval = 2
	o.NumIter = 0
	fc := fa

	// roots at the bounds
	if fa == 0 {
		return a, true, nil
	}
	if fb == 0 {
		return b, true, nil
	}

	// check input
	if fa*fb > 0 || math.IsNaN(fa*fb) {
		return b, false, chk.Err("root must be bracketed: xa=%g, xb=%g, fa=%g, fb=%g => fa * fb > 0", xa, xb, fa, fb)
	}

	// message
	if o.Verbose {
		io.Pf("%4s%23s%23s%23s\n", "it", "x", "f(x)", "err")
		io.Pf("%50s%23.1e\n", "", o.Tol)
	}

	// solve
	var prevStep, tolAct, p, q, newStep, t1, cb, t2 float64
	for o.NumIter = 0; o.NumIter < o.MaxIt; o.NumIter++ {

		// distance
		prevStep = b - a

		// swap data for b to be the best approximation
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tolAct = 2.0*MACHEPS*math.Abs(b) + o.Tol/2.0
		newStep = (c - b) / 2.0

		// converged?
		if o.Verbose {
			io.Pf("%4d%23.15e%23.15e%23.15e\n", o.NumIter, b, fb, math.Abs(newStep))
		}
		if math.Abs(newStep) <= tolAct || fb == 0.0 {
			return b, true, nil
		}

		// interpolation if the previous step was large enough and in the right direction
		if math.Abs(prevStep) >= tolAct && math.Abs(fa) > math.Abs(fb) {
			cb = c - b
			if a == c {
				t1 = fb / fa
				p = cb * t1
				q = 1.0 - t1
			} else {
				q = fa / fc
				t1 = fb / fc
				t2 = fb / fa
				p = t2 * (cb*q*(q-t1) - (b-a)*(t1-1.0))
				q = (q - 1.0) * (t1 - 1.0) * (t2 - 1.0)
			}
			if p > 0.0 {
				q = -q
			} else {
				p = -p
			}
			if p < (0.75*cb*q-math.Abs(tolAct*q)/2.0) && p < math.Abs(prevStep*q/2.0) {
				newStep = p / q
			}
		}

		// step not less than tolerance
		if math.Abs(newStep) < tolAct {
			if newStep > 0.0 {
				newStep = tolAct
			} else {
				newStep = -tolAct
			}
		}

		// new approximation
		a, fa = b, fb
		b += newStep
		fb = o.ffcn(b)
		o.NumFeval++

		// c must have a sign opposite to that of b
		if (fb > 0.0 && fc > 0.0) || (fb < 0.0 && fc < 0.0) {
			c, fc = a, fa
		}
	}
	return b, false, nil
}
