// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mlyield/inp"
	"github.com/cpmech/mlyield/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".json", true)
	verbose := io.ArgToBool(1, true)
	io.Verbose = verbose

	// message
	if verbose {
		io.PfWhite("\nmlyield -- load cases for machine-learning yield functions\n\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// input data
	in := inp.ReadInput(fnamepath)
	io.Pf("%v\n", in)

	// run
	res, err := out.Run(in)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	io.Pf("%v\n", res.Summary())

	// save results
	err = out.Write(in.DirOut, in.Key, in.EncType, res)
	if err != nil {
		chk.Panic("cannot save results:\n%v", err)
	}

	// plot
	if in.Plot != "" {
		err = out.PlotPiPlane(filepath.Join(in.DirOut, in.Plot), res.Scyl, res.CritCyl)
		if err != nil {
			chk.Panic("cannot plot results:\n%v", err)
		}
	}
}
