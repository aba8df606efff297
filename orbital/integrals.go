/*
 * integrals.go, part of goqed.
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

package orbital

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

//Radial integrals between orbitals. All of them require both orbitals
//(and the potential, where there is one) to be sampled on the same grid.

// chi returns the overlap density P_a*P_b + Q_a*Q_b, checking grids.
func chi(a, b *Orbital) []float64 {
	if a == nil || b == nil {
		panic(ErrNilOrbital)
	}
	if a.g != b.g {
		panic(ErrGridMismatch)
	}
	d := make([]float64, a.g.Len())
	for i := range d {
		d[i] = a.p[i]*b.p[i] + a.q[i]*b.q[i]
	}
	return d
}

// Overlap returns the radial overlap integral of two orbitals.
func Overlap(a, b *Orbital) float64 {
	d := chi(a, b)
	return a.g.Integrate(d)
}

// DampedOverlap returns the overlap of two orbitals regularized by an
// exponential factor decaying over the reduced Compton wavelength, scaled
// by the fine-structure constant:
//
//	alpha * Int (P_a P_b + Q_a Q_b) exp(-2 r/lambda_C) dr
//
// This integral weighs the orbital density within a Compton wavelength of
// the nucleus, which is the region local QED corrections probe.
func DampedOverlap(a, b *Orbital) float64 {
	d := chi(a, b)
	for i, r := range a.g.Points() {
		d[i] *= math.Exp(-2 * r / ComptonWavelength)
	}
	return FineStructure * a.g.Integrate(d)
}

// MatrixElement returns the matrix element of a local potential between
// two orbitals, Int (P_a P_b + Q_a Q_b) V dr. The potential must be
// sampled on the orbitals' grid.
func MatrixElement(a, b *Orbital, v []float64) float64 {
	d := chi(a, b)
	if len(v) != len(d) {
		panic(ErrGridMismatch)
	}
	for i := range d {
		d[i] *= v[i]
	}
	return a.g.Integrate(d)
}

// FreqGrid is a fixed-order Gauss-Legendre grid, used for the frequency
// and spectral-variable integrals of the QED terms. X are the nodes and
// W the weights; all nodes are interior, so integrands may blow up at
// the interval ends.
type FreqGrid struct {
	X []float64
	W []float64
}

// NewFreqGrid returns the Gauss-Legendre nodes and weights of the given
// order over [min, max].
func NewFreqGrid(order int, min, max float64) *FreqGrid {
	if order < 1 || max <= min {
		panic(ErrBadQuadrature)
	}
	f := new(FreqGrid)
	f.X = make([]float64, order)
	f.W = make([]float64, order)
	quad.Legendre{}.FixedLocations(f.X, f.W, min, max)
	return f
}

// Integrate applies the quadrature to a function of the node variable.
func (f *FreqGrid) Integrate(fn func(x float64) float64) float64 {
	var s float64
	for i, x := range f.X {
		s += f.W[i] * fn(x)
	}
	return s
}
