// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output handling of load cases for saving, reading and plotting
package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Results holds generated load cases and derived data
type Results struct {
	Desc     string       // description of run
	Material string       // name of material; empty => J2
	Sig      [][]float64  // [nlc][6] unit load cases (Voigt)
	Scyl     [][3]float64 // [nlc] cylindrical coordinates (seq, θ, p) of load cases
	Small    []int        // indices of load cases with small equivalent stress before scaling
	Crit     [][6]float64 // [nlc] critical stresses on the yield surface; empty if no material
	CritCyl  [][3]float64 // [nlc] cylindrical coordinates of critical stresses
	Warnings []string     // messages of all warnings
}

// Write saves results to dirout/key.enctype
//  enctype -- "gob" or "json"
func Write(dirout, key, enctype string, res *Results) (err error) {

	// buffer and encoder
	var buf bytes.Buffer
	enc := utl.NewEncoder(&buf, enctype)

	// encode results
	err = enc.Encode(res)
	if err != nil {
		return chk.Err("cannot encode results\n%v", err)
	}

	// save file
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory for output results (%s): %v", dirout, err)
	}
	fn := Path(dirout, key, enctype)
	err = os.WriteFile(fn, buf.Bytes(), 0644)
	if err != nil {
		return chk.Err("cannot save results to %q\n%v", fn, err)
	}
	io.Pfblue2("file <%s> written\n", fn)
	return
}

// Read reads results back
func Read(dirout, key, enctype string) (res *Results, err error) {

	// open file
	fn := Path(dirout, key, enctype)
	fil, err := os.Open(fn)
	if err != nil {
		return nil, chk.Err("cannot open results file %q\n%v", fn, err)
	}
	defer fil.Close()

	// decode results
	res = new(Results)
	dec := utl.NewDecoder(fil, enctype)
	err = dec.Decode(res)
	if err != nil {
		return nil, chk.Err("cannot decode results file %q\n%v", fn, err)
	}
	return
}

// Path returns the path of results file
func Path(dirout, key, enctype string) string {
	return filepath.Join(dirout, io.Sf("%s.%s", key, enctype))
}
