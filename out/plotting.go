// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PiPlaneXY converts cylindrical coordinates (seq, θ, p) into points of the π-plane
//  x = seq·cos(θ) and y = seq·sin(θ)
func PiPlaneXY(scyl [][3]float64) (xys plotter.XYs) {
	xys = make(plotter.XYs, len(scyl))
	for i, s := range scyl {
		xys[i].X = s[0] * math.Cos(s[1])
		xys[i].Y = s[0] * math.Sin(s[1])
	}
	return
}

// PlotPiPlane plots load cases and, optionally, critical stresses in the π-plane
//  fn   -- filename; the format is given by the extension; e.g. .png, .svg, .pdf
//  scyl -- cylindrical coordinates of load cases
//  crit -- [optional] cylindrical coordinates of critical stresses
func PlotPiPlane(fn string, scyl, crit [][3]float64) (err error) {

	// check
	if len(scyl) == 0 {
		return chk.Err("there are no load cases to plot")
	}

	// plot
	p := plot.New()
	p.Title.Text = "π-plane"
	p.X.Label.Text = "seq cos(θ)"
	p.Y.Label.Text = "seq sin(θ)"
	p.Add(plotter.NewGrid())

	// load cases
	lc, err := plotter.NewScatter(PiPlaneXY(scyl))
	if err != nil {
		return chk.Err("cannot plot load cases:\n%v", err)
	}
	lc.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	lc.GlyphStyle.Shape = draw.CircleGlyph{}
	lc.GlyphStyle.Radius = vg.Points(2)
	p.Add(lc)
	p.Legend.Add("load cases", lc)

	// critical stresses
	if len(crit) > 0 {
		cs, err := plotter.NewScatter(PiPlaneXY(crit))
		if err != nil {
			return chk.Err("cannot plot critical stresses:\n%v", err)
		}
		cs.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
		cs.GlyphStyle.Shape = draw.CrossGlyph{}
		cs.GlyphStyle.Radius = vg.Points(3)
		p.Add(cs)
		p.Legend.Add("critical stresses", cs)
	}

	// save
	err = p.Save(5*vg.Inch, 5*vg.Inch, fn)
	if err != nil {
		return chk.Err("cannot save figure %q:\n%v", fn, err)
	}
	io.Pfblue2("file <%s> written\n", fn)
	return
}
