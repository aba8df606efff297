/*
 * nuclear.go, part of goqed.
 *
 * Copyright 2024 Rodrigo Molina <rmolina{at}fisDOTuachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goQED is developed at the Institute of Physics,
 * Universidad Austral de Chile, Valdivia.
 *
 */

package qed

import (
	"math"

	"github.com/rmolina/goqed/grid"
	"github.com/rmolina/goqed/orbital"
)

//Measured root-mean-square nuclear charge radii in fm, from the
//Angeli-Marinova 2013 compilation, for elements that show up often in
//heavy-ion QED work. Everything else falls back to the A^(1/3) formula.
var rmsRadius = map[int]float64{
	1:   0.8783,
	2:   1.6755,
	6:   2.4702,
	10:  3.0055,
	18:  3.4028,
	26:  3.7377,
	36:  4.1884,
	54:  4.7859,
	70:  5.3108,
	74:  5.3658,
	79:  5.4371,
	80:  5.4463,
	82:  5.5012,
	90:  5.7848,
	92:  5.8571,
	100: 5.8570,
}

// NuclearModel carries the nuclear charge and extension parameters of the
// ion under study. It is immutable; build a new one to change anything.
type NuclearModel struct {
	z    float64
	rrms float64 //bohr; 0 means point nucleus
}

// NewNuclearModel returns a nuclear model of charge z with an rms charge
// radius taken from measured values when available and from the usual
// A^(1/3) estimate otherwise. A non-positive z panics, as no computation
// downstream can mean anything for it.
func NewNuclearModel(z float64) *NuclearModel {
	if z <= 0 {
		panic(ErrNilData)
	}
	zi := int(math.Round(z))
	r, ok := rmsRadius[zi]
	if !ok {
		// estimate A from Z, then r = 0.836 A^(1/3) + 0.570 fm
		a := 2.5 * z
		r = 0.836*math.Cbrt(a) + 0.570
	}
	return &NuclearModel{z: z, rrms: r * orbital.FmToBohr}
}

// NewPointNuclearModel returns a nuclear model of charge z with no
// nuclear extension.
func NewPointNuclearModel(z float64) *NuclearModel {
	if z <= 0 {
		panic(ErrNilData)
	}
	return &NuclearModel{z: z}
}

// WithRadius returns a copy of the model with the rms charge radius set
// to rfm, given in fm. Zero or negative rfm means a point nucleus.
func (nm *NuclearModel) WithRadius(rfm float64) *NuclearModel {
	if rfm <= 0 {
		return &NuclearModel{z: nm.z}
	}
	return &NuclearModel{z: nm.z, rrms: rfm * orbital.FmToBohr}
}

// Z returns the nuclear charge.
func (nm *NuclearModel) Z() float64 { return nm.z }

// Rrms returns the rms charge radius in bohr; 0 for a point nucleus.
func (nm *NuclearModel) Rrms() float64 { return nm.rrms }

// Point reports whether the model is a point nucleus.
func (nm *NuclearModel) Point() bool { return nm.rrms == 0 }

// Potential samples the nuclear potential on a grid. For an extended
// nucleus the charge is spread over a uniform sphere with the same rms
// radius; inside it the potential is the usual parabolic form.
func (nm *NuclearModel) Potential(g *grid.Grid) []float64 {
	if g == nil {
		panic(ErrNilData)
	}
	if nm.rrms == 0 {
		return g.Eval(func(r float64) float64 { return -nm.z / r })
	}
	rn := math.Sqrt(5.0/3.0) * nm.rrms //uniform-sphere radius
	return g.Eval(func(r float64) float64 {
		if r >= rn {
			return -nm.z / r
		}
		return -nm.z * (3 - (r/rn)*(r/rn)) / (2 * rn)
	})
}
