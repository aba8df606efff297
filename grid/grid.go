/*
 * grid.go, part of goqed.
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

/*Package grid implements the exponential radial grid on which all radial
functions in goQED (orbitals, potentials) are discretized, together with
quadrature over that grid. Points accumulate near the origin, where
relativistic orbitals vary fastest, and thin out at large radii.
The grid is immutable once built.*/
package grid

import (
	"math"

	"gonum.org/v1/gonum/integrate"
)

// Grid is an exponential radial grid, r_i = rho*(exp(h*(i+1)) - 1),
// for i = 0...n-1. The first point is strictly positive so that
// Coulomb-like potentials can be sampled on every point.
type Grid struct {
	r   []float64
	rho float64
	h   float64
}

// New returns a grid with n points and the given scale parameters.
// Panics if the parameters can't define an increasing positive grid,
// as a grid like that means the program is wrong anyway.
func New(n int, rho, h float64) *Grid {
	if n < 3 || rho <= 0 || h <= 0 {
		panic(ErrBadParameters)
	}
	g := new(Grid)
	g.rho = rho
	g.h = h
	g.r = make([]float64, n)
	for i := 0; i < n; i++ {
		g.r[i] = rho * (math.Exp(h*float64(i+1)) - 1)
	}
	return g
}

// NewForCharge returns a grid suited to a hydrogenic ion of nuclear charge z:
// the first point sits well inside the nucleus and the last one far outside
// the outermost bound density for the subshells this library handles.
// The number of points can be given; it defaults to 600.
func NewForCharge(z float64, points ...int) *Grid {
	n := 600
	if len(points) > 0 && points[0] >= 3 {
		n = points[0]
	}
	if z < 1 {
		z = 1
	}
	rho := 1.0e-5 / z
	rmax := 60.0 / z
	h := math.Log(rmax/rho+1) / float64(n)
	return New(n, rho, h)
}

// Len returns the number of points in the grid.
func (g *Grid) Len() int {
	return len(g.r)
}

// R returns the radius of the i-th point. Panics if out of range.
func (g *Grid) R(i int) float64 {
	if i < 0 || i >= len(g.r) {
		panic(ErrOutOfRange)
	}
	return g.r[i]
}

// Points returns the radii of all grid points. The slice is the grid's
// own storage, so the caller must not modify it.
func (g *Grid) Points() []float64 {
	return g.r
}

// Rho returns the rho scale parameter of the grid.
func (g *Grid) Rho() float64 {
	return g.rho
}

// H returns the exponential step parameter of the grid.
func (g *Grid) H() float64 {
	return g.h
}

// LastR returns the outermost radius of the grid.
func (g *Grid) LastR() float64 {
	return g.r[len(g.r)-1]
}

// Integrate returns the integral over r of a function sampled on the grid.
// It panics if f doesn't have exactly one value per grid point.
func (g *Grid) Integrate(f []float64) float64 {
	if len(f) != len(g.r) {
		panic(ErrMismatched)
	}
	return integrate.Simpsons(g.r, f)
}

// Eval samples the function fn on every point of the grid.
func (g *Grid) Eval(fn func(r float64) float64) []float64 {
	f := make([]float64, len(g.r))
	for i, v := range g.r {
		f[i] = fn(v)
	}
	return f
}

// PanicMsg is the type for the panic messages of this package.
// It satisfies the error interface so it can be rethrown as an error
// by a recovering caller.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrBadParameters = PanicMsg("goQED/grid: grid parameters must be positive, with at least 3 points")
	ErrOutOfRange    = PanicMsg("goQED/grid: requested point out of range")
	ErrMismatched    = PanicMsg("goQED/grid: sampled function doesn't match the grid")
)
