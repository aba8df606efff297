/*
 * uehling.go, part of goqed.
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
	"log"
	"math"

	"github.com/rmolina/goqed/grid"
	"github.com/rmolina/goqed/orbital"
)

//Vacuum polarization. The Uehling term carries almost all of it; the
//Wichmann-Kroll correction is small, of the opposite sign, and only
//available here as a rough point-nucleus fit, so it hides behind an
//explicit option.

// UehlingPotential samples the Uehling vacuum-polarization potential of
// the nucleus on the grid,
//
//	V(r) = -(2 alpha Z)/(3 pi r) Int_1^inf dt sqrt(t^2-1)/t^2 (1 + 1/(2t^2)) exp(-2 c t r)
//
// with the t-integral done on the auxiliary Gauss-Legendre grid through
// the substitution t = 1/u. The point-nucleus form is used regardless of
// the nuclear extension; at the radii where the orbitals this library
// cares about live, the difference is below the accuracy of the
// self-energy models.
func UehlingPotential(nuc *NuclearModel, g *grid.Grid, fg *orbital.FreqGrid) []float64 {
	if nuc == nil || g == nil || fg == nil {
		panic(ErrNilData)
	}
	pref := -2 * alpha * nuc.Z() / (3 * math.Pi)
	return g.Eval(func(r float64) float64 {
		s := fg.Integrate(func(u float64) float64 {
			t := 1 / u
			// the t*t factor is the Jacobian dt = du/u^2
			return math.Sqrt(t*t-1) / (t * t) * (1 + 1/(2*t*t)) * math.Exp(-2*SpeedOfLight*t*r) * t * t
		})
		return pref * s / r
	})
}

// WichmannKrollPotential samples an approximate point-nucleus
// Wichmann-Kroll potential on the grid. The fit keeps the (Z alpha)^3/r
// short-range behavior and dies off over a Compton wavelength; it is
// meant as an estimate of the term's size, not as a precision value.
func WichmannKrollPotential(nuc *NuclearModel, g *grid.Grid) []float64 {
	if nuc == nil || g == nil {
		panic(ErrNilData)
	}
	za := alpha * nuc.Z()
	pref := 0.3617 * 2 * alpha / (3 * math.Pi) * nuc.Z() * za * za
	return g.Eval(func(r float64) float64 {
		x := 2 * SpeedOfLight * r
		return pref / r / (1 + x*x)
	})
}

// uehling returns the vacuum-polarization matrix element between a and b,
// adding the Wichmann-Kroll estimate when the option asks for it.
func (c *Calculator) uehling(a, b *orbital.Orbital, nuc *NuclearModel, g *grid.Grid, fg *orbital.FreqGrid) float64 {
	v := UehlingPotential(nuc, g, fg)
	if c.o.WichmannKroll() {
		wk := WichmannKrollPotential(nuc, g)
		for i := range v {
			v[i] += wk[i]
		}
	}
	me := orbital.MatrixElement(a, b, v)
	if c.o.Verbose() > 0 {
		log.Printf("goQED: vacuum polarization <%s|V|%s> = %.6e for Z=%.2f", a.Shell.Label(), b.Shell.Label(), me, nuc.Z())
	}
	return me
}
