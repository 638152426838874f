// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package training

import "math"

// IntSinM computes the integral of sin^m(t) dt from 0 to x
//  Note: m must be non-negative
func IntSinM(x float64, m int) float64 {
	switch m {
	case 0:
		return x
	case 1:
		return 1.0 - math.Cos(x)
	}
	fm := float64(m)
	return (fm-1.0)/fm*IntSinM(x, m-2) - math.Cos(x)*math.Pow(math.Sin(x), fm-1.0)/fm
}
