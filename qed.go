/*
 * qed.go, part of goqed.
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
	"github.com/rmolina/goqed/grid"
	"github.com/rmolina/goqed/orbital"
)

// Model selects the QED approximation scheme.
type Model int

const (
	// Sydney: Uehling vacuum polarization plus a low-frequency
	// self-energy term evaluated with the mean-field potential.
	Sydney Model = iota
	// Petersburg: Uehling vacuum polarization plus a self-energy
	// rescaled from tabulated hydrogenic values.
	Petersburg
)

func (m Model) String() string {
	switch m {
	case Sydney:
		return "Sydney"
	case Petersburg:
		return "Petersburg"
	}
	return "unknown"
}

// Options holds the knobs of a Calculator.
type Options struct {
	model     Model
	wk        bool
	quadOrder int
	maxCached int
	verbose   int
}

// DefaultOptions returns an Options with the default settings: the
// Petersburg model, no Wichmann-Kroll term, a 7-point auxiliary
// quadrature and a quiet calculator.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.model = Petersburg
	ret.wk = false
	ret.quadOrder = 7
	ret.maxCached = 16
	ret.verbose = 0
	return ret
}

// Model returns the selected QED model and sets it, if one is given.
func (o *Options) Model(m ...Model) Model {
	ret := o.model
	if len(m) > 0 {
		o.model = m[0]
	}
	return ret
}

// WichmannKroll returns whether the approximate Wichmann-Kroll
// vacuum-polarization term is added to the Uehling one, and sets it if a
// value is given. It is off by default: the approximation has not been
// validated against full calculations for the heavy elements.
func (o *Options) WichmannKroll(on ...bool) bool {
	ret := o.wk
	if len(on) > 0 {
		o.wk = on[0]
	}
	return ret
}

// QuadOrder returns the order of the auxiliary Gauss-Legendre grid used
// for frequency and spectral integrals, and sets it if a valid (positive)
// value is given.
func (o *Options) QuadOrder(n ...int) int {
	ret := o.quadOrder
	if len(n) > 0 && n[0] > 0 {
		o.quadOrder = n[0]
	}
	return ret
}

// MaxCached returns how many nuclear charges worth of hydrogenic
// reference integrals a Calculator keeps, and sets it if a positive
// value is given.
func (o *Options) MaxCached(n ...int) int {
	ret := o.maxCached
	if len(n) > 0 && n[0] > 0 {
		o.maxCached = n[0]
	}
	return ret
}

// Verbose returns the verbosity level and sets it, if a value is given.
// Anything above 0 traces cache refreshes and computed matrix elements
// to the standard logger.
func (o *Options) Verbose(v ...int) int {
	ret := o.verbose
	if len(v) > 0 {
		o.verbose = v[0]
	}
	return ret
}

// Calculator computes local QED corrections. It owns its configuration
// and the cached hydrogenic reference integrals, so independent
// calculations (including concurrent ones, one Calculator each) don't
// step on each other.
type Calculator struct {
	o    *Options
	refs map[float64]*Reference
	src  HydrogenicSource
}

// NewCalculator returns a calculator with the given options, or the
// defaults if none are given.
func NewCalculator(options ...*Options) *Calculator {
	ret := new(Calculator)
	if len(options) > 0 && options[0] != nil {
		ret.o = options[0]
	} else {
		ret.o = DefaultOptions()
	}
	ret.refs = make(map[float64]*Reference)
	ret.src = analyticSource{}
	return ret
}

// SetSource replaces the hydrogenic-orbital source used for the reference
// integrals and drops everything cached, since the cached values came
// from the old source.
func (c *Calculator) SetSource(src HydrogenicSource) {
	if src == nil {
		panic(ErrNilData)
	}
	c.src = src
	c.refs = make(map[float64]*Reference)
}

// Options returns the calculator's options, which can be changed in
// place between calculations.
func (c *Calculator) Options() *Options {
	return c.o
}

// LocalCorrection returns the local QED correction matrix element between
// the orbitals a (bra) and b (ket), for the given nuclear model, mean-field
// potential and grid. The hydrogenic reference integrals for the nuclear
// charge are refreshed first if needed. The scheme is selected by the
// calculator's Model option; an unknown model panics, since running a
// whole atomic calculation with a misconfigured QED model is not
// something to limp through.
func (c *Calculator) LocalCorrection(a, b *orbital.Orbital, nuc *NuclearModel, pot []float64, g *grid.Grid) (float64, error) {
	if a == nil || b == nil || nuc == nil || g == nil {
		panic(ErrNilData)
	}
	ref, err := c.Refresh(nuc.Z(), g)
	if err != nil {
		return 0, errDecorate(err, "LocalCorrection")
	}
	// unit auxiliary grid; each term maps the nodes onto its own
	// spectral variable
	fg := orbital.NewFreqGrid(c.o.QuadOrder(), 0, 1)
	var vp, se float64
	switch c.o.Model() {
	case Sydney:
		vp = c.uehling(a, b, nuc, g, fg)
		se, err = c.selfEnergyLow(a, b, nuc, pot, g, fg)
		if err != nil {
			return 0, errDecorate(err, "LocalCorrection")
		}
	case Petersburg:
		vp = c.uehling(a, b, nuc, g, fg)
		se, err = c.selfEnergyVolotka(a, b, nuc, g, ref)
		if err != nil {
			return 0, errDecorate(err, "LocalCorrection")
		}
	default:
		panic(ErrUnknownModel)
	}
	return vp + se, nil
}

// FofZA returns the effective scaled self-energy function implied by the
// tabulated model for the given orbital, that is, the computed matrix
// element with the hydrogenic scaling divided back out. For a hydrogenic
// reference orbital it reproduces the table entry, which makes it a handy
// self-check; for a many-electron orbital it measures how much the
// orbital relaxation changed the correction.
func (c *Calculator) FofZA(o *orbital.Orbital, nuc *NuclearModel, g *grid.Grid) (float64, error) {
	if o == nil || nuc == nil || g == nil {
		panic(ErrNilData)
	}
	ref, err := c.Refresh(nuc.Z(), g)
	if err != nil {
		return 0, errDecorate(err, "FofZA")
	}
	se, err := c.selfEnergyVolotka(o, o, nuc, g, ref)
	if err != nil {
		return 0, errDecorate(err, "FofZA")
	}
	if se == 0 {
		return 0, nil
	}
	cl, ok := ClassOfKappa(o.Shell.Kappa)
	if !ok {
		panic(ErrUnknownKappa)
	}
	return se / hydrogenicScale(nuc.Z(), cl) / orbital.DampedOverlap(o, o) * ref.Overlap[cl-1], nil
}
