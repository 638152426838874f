// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a JSON or YAML file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mlyield/msolid"
	"gopkg.in/yaml.v3"
)

// MatData holds material data
type MatData struct {
	Name string     `json:"name" yaml:"name"` // name of model in msolid database; e.g. "vm", "hill"
	Prms dbf.Params `json:"prms" yaml:"prms"` // parameters
}

// Input holds all data for generating load cases
type Input struct {

	// input
	Desc     string   `json:"desc" yaml:"desc"`         // description of run
	N3d      int      `json:"n3d" yaml:"n3d"`           // number of principal (3D) load cases
	N6d      int      `json:"n6d" yaml:"n6d"`           // number of full (6D) load cases
	DirOut   string   `json:"dirout" yaml:"dirout"`     // directory for output; e.g. /tmp/mlyield
	Encoder  string   `json:"encoder" yaml:"encoder"`   // encoder name; "gob" or "json"
	Plot     string   `json:"plot" yaml:"plot"`         // filename of π-plane plot; e.g. "pi.png". empty => no plot
	Smax     float64  `json:"smax" yaml:"smax"`         // upper bound of scaling factor for critical stresses
	Material *MatData `json:"material" yaml:"material"` // [optional] material

	// derived
	Key     string // run key; e.g. myrun.json => myrun
	EncType string // encoder type
}

// ReadInput reads all input data from a .json, .yaml or .yml file
//  Note: this function panics on errors
func ReadInput(fn string) *Input {
	b := io.ReadFile(fn)
	o, err := Decode(b, filepath.Ext(fn))
	if err != nil {
		chk.Panic("ReadInput: cannot decode input file %q:\n%v", fn, err)
	}
	err = o.PostProcess(io.FnKey(filepath.Base(fn)))
	if err != nil {
		chk.Panic("ReadInput: input file %q is invalid:\n%v", fn, err)
	}
	return o
}

// Decode decodes input data
//  ext -- file extension: ".json", ".yaml" or ".yml"
func Decode(b []byte, ext string) (o *Input, err error) {
	o = new(Input)
	o.SetDefault()
	switch strings.ToLower(ext) {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("file extension %q is not supported; use .json, .yaml or .yml", ext)
	}
	if err != nil {
		return nil, err
	}
	return
}

// SetDefault sets default values
func (o *Input) SetDefault() {
	o.N3d = 100
	o.N6d = 100
	o.Encoder = "gob"
	o.Smax = 1e4
}

// PostProcess checks data and sets derived values
//  fnkey -- filename key used if DirOut is empty
func (o *Input) PostProcess(fnkey string) (err error) {

	// numbers of load cases
	if o.N3d < 0 || o.N6d < 0 || o.N3d+o.N6d < 1 {
		return chk.Err("numbers of load cases must be non-negative with a positive sum. n3d=%d, n6d=%d is invalid", o.N3d, o.N6d)
	}
	if o.Smax <= 0 {
		return chk.Err("smax must be positive. %g is invalid", o.Smax)
	}

	// key and output directory
	o.Key = fnkey
	if o.DirOut == "" {
		o.DirOut = "/tmp/mlyield/" + fnkey
	}
	o.DirOut = os.ExpandEnv(o.DirOut)

	// encoder type
	o.EncType = o.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// material
	if o.Material != nil && o.Material.Name == "" {
		return chk.Err("name of material must be given")
	}
	return
}

// Model allocates and initialises the material model; nil if no material is given
func (o *Input) Model() (mdl msolid.Model, err error) {
	if o.Material == nil {
		return
	}
	mdl, err = msolid.New(o.Material.Name)
	if err != nil {
		return
	}
	err = mdl.Init(o.Material.Prms)
	if err != nil {
		return nil, chk.Err("cannot initialise material %q:\n%v", o.Material.Name, err)
	}
	err = msolid.CheckReady(mdl)
	if err != nil {
		return nil, chk.Err("material %q cannot be used from input files:\n%v", o.Material.Name, err)
	}
	return
}

// String returns a summary of input data
func (o Input) String() string {
	mat := "J2"
	if o.Material != nil {
		mat = o.Material.Name
	}
	return io.ArgsTable("INPUT DATA",
		"description", "desc", o.Desc,
		"number of 3D load cases", "n3d", o.N3d,
		"number of 6D load cases", "n6d", o.N6d,
		"output directory", "dirout", o.DirOut,
		"encoder", "encoder", o.EncType,
		"plot file", "plot", o.Plot,
		"scaling bound", "smax", o.Smax,
		"material", "material", mat,
	)
}
