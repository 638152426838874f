// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package training

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/mlyield/tsr"
)

// UniformHypersphere generates n unit points evenly distributed on the unit hypersphere of
// dimension d
//  Note: the first two coordinates are (sin t, cos t) with t ∈ [0,2π) evenly spaced; each further
//        coordinate is obtained by inverting the normalised integral of sin^m with a
//        quasi-random (Weyl) sequence based on the square root of a prime number
//  Output:
//   points -- [n][d] unit points
//   warns  -- Convergence warnings; the best estimate of the root is used in this case
func UniformHypersphere(d, n int) (points [][]float64, warns tsr.Warnings, err error) {

	// check
	if d < 2 {
		return nil, nil, chk.Err("dimension of hypersphere must be at least 2. d=%d is invalid", d)
	}
	if n < 1 {
		return nil, nil, chk.Err("number of points must be at least 1. n=%d is invalid", n)
	}

	// first two coordinates
	points = utl.Alloc(n, d)
	t := utl.LinSpaceOpen(0, 2*math.Pi, n)
	for i := 0; i < n; i++ {
		points[i][0] = math.Sin(t[i])
		points[i][1] = math.Cos(t[i])
		for j := 2; j < d; j++ {
			points[i][j] = 1
		}
	}

	// further coordinates
	primes := NewPrimes()
	var target float64
	for dim := 2; dim < d; dim++ {
		offset := math.Sqrt(float64(primes.Next()))
		mult := math.Gamma(0.5*float64(dim+1)) / (math.Gamma(0.5*float64(dim)) * math.Sqrt(math.Pi))
		brent := NewBrent(func(y float64) float64 {
			return mult*IntSinM(y, dim-1) - target
		})
		for i := 0; i < n; i++ {
			_, target = math.Modf(float64(i) * offset)
			y, converged, e := brent.Root(0, math.Pi)
			if e != nil {
				return nil, warns, chk.Err("cannot compute coordinate %d of point %d:\n%v", dim, i, e)
			}
			if !converged {
				warns.Add(tsr.Convergence, "UniformHypersphere", i, "root finding did not converge after %d iterations in dimension %d; y=%g", brent.NumIter, dim, y)
			}
			sy := math.Sin(y)
			for j := 0; j < dim; j++ {
				points[i][j] *= sy
			}
			points[i][dim] *= math.Cos(y)
		}
	}
	return
}
