// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package training generates load cases for the training of machine-learning yield functions
// and scores the resulting classifiers
package training

// Primes generates an infinite sequence of prime numbers with an incremental sieve
type Primes struct {
	idx   int         // index of next prime in the initial list
	comp  map[int]int // composite => step
	base  *Primes     // generator of base primes
	p     int         // current base prime
	psq   int         // p*p
	i     int         // current odd candidate
	ready bool        // sieve has been started
}

// NewPrimes returns a new prime generator starting at 2
func NewPrimes() (o *Primes) {
	o = new(Primes)
	o.Reset()
	return
}

// Reset restarts the sequence at 2
func (o *Primes) Reset() {
	o.idx = 0
	o.comp = make(map[int]int)
	o.base = nil
	o.ready = false
}

// Next returns the next prime
func (o *Primes) Next() int {

	// first primes
	first := []int{2, 3, 5, 7}
	if o.idx < len(first) {
		o.idx++
		return first[o.idx-1]
	}

	// start sieve with base primes 3, 5, ...
	if !o.ready {
		o.base = NewPrimes()
		o.base.Next()
		o.p = o.base.Next()
		o.psq = o.p * o.p
		o.i = 7
		o.ready = true
	}

	// odd candidates from 9
	for {
		o.i += 2
		var step int
		if s, found := o.comp[o.i]; found {
			step = s
			delete(o.comp, o.i)
		} else if o.i < o.psq {
			return o.i
		} else {
			step = 2 * o.p
			o.p = o.base.Next()
			o.psq = o.p * o.p
		}
		k := o.i + step
		for {
			if _, found := o.comp[k]; !found {
				break
			}
			k += step
		}
		o.comp[k] = step
	}
}
