/*
 * orbital.go, part of goqed.
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

/*Package orbital implements relativistic radial orbitals discretized on a
radial grid, analytic hydrogenic (Dirac point-Coulomb) orbitals, and the
radial integrals goQED needs: overlaps, Compton-damped overlaps and matrix
elements of local potentials. It also provides small fixed-order
Gauss-Legendre grids for frequency-type integrals.*/
package orbital

import (
	"fmt"
	"math"

	"github.com/rmolina/goqed/grid"
	"gonum.org/v1/gonum/floats"
)

// Orbital is a radial orbital sampled on a grid: large component P and
// small component Q, both including the factor r. Orbitals are immutable
// once built; Energy is the binding energy relative to the rest mass,
// in hartree.
type Orbital struct {
	Shell  Subshell
	Energy float64
	p, q   []float64
	g      *grid.Grid
}

// New builds an orbital from already-sampled components. The slices are
// kept by the orbital, not copied. It returns an error if the components
// don't match the grid.
func New(s Subshell, energy float64, p, q []float64, g *grid.Grid) (*Orbital, error) {
	if g == nil {
		panic(ErrNilGrid)
	}
	if len(p) != g.Len() || len(q) != g.Len() {
		return nil, Error{fmt.Sprintf("components for %s don't match the grid: %d, %d vs %d points", s.Label(), len(p), len(q), g.Len()), []string{"New"}}
	}
	return &Orbital{Shell: s, Energy: energy, p: p, q: q, g: g}, nil
}

// P returns the large component at point i.
func (o *Orbital) P(i int) float64 { return o.p[i] }

// Q returns the small component at point i.
func (o *Orbital) Q(i int) float64 { return o.q[i] }

// Grid returns the grid the orbital lives on.
func (o *Orbital) Grid() *grid.Grid { return o.g }

// Density returns P^2+Q^2 sampled on the grid, in a fresh slice.
func (o *Orbital) Density() []float64 {
	d := make([]float64, len(o.p))
	for i := range d {
		d[i] = o.p[i]*o.p[i] + o.q[i]*o.q[i]
	}
	return d
}

// Norm returns the radial norm integral of the orbital. For orbitals
// built by Hydrogenic it is 1 up to quadrature error.
func (o *Orbital) Norm() float64 {
	return o.g.Integrate(o.Density())
}

// Hydrogenic returns the bound Dirac orbital for a point nucleus of charge
// z and the given subshell, sampled on g and normalized on it. The radial
// shape is the closed-form solution in terms of confluent hypergeometric
// polynomials; the normalization is done numerically on the grid so that
// norm and overlap integrals are exactly consistent with Integrate.
func Hydrogenic(z float64, s Subshell, g *grid.Grid) (*Orbital, error) {
	if g == nil {
		panic(ErrNilGrid)
	}
	if err := s.Valid(); err != nil {
		return nil, errDecorate(err, "Hydrogenic")
	}
	ak := math.Abs(float64(s.Kappa))
	za := z * FineStructure
	if za >= ak {
		return nil, Error{fmt.Sprintf("point-Coulomb solution undefined: Z*alpha=%.4f reaches |kappa|=%d", za, int(ak)), []string{"Hydrogenic"}}
	}
	gam := math.Sqrt(ak*ak - za*za)
	nr := float64(s.N) - ak //number of radial nodes
	bigN := math.Sqrt(float64(s.N*s.N) - 2*nr*(ak-gam))
	eps := 1 / math.Sqrt(1+(za/(gam+nr))*(za/(gam+nr)))
	lam := SpeedOfLight * math.Sqrt((1-eps)*(1+eps))
	sp := math.Sqrt(1 + eps)
	sq := math.Sqrt(1 - eps)
	kp := bigN - float64(s.Kappa)
	nri := int(math.Round(nr))
	p := make([]float64, g.Len())
	q := make([]float64, g.Len())
	for i, r := range g.Points() {
		x := 2 * lam * r
		pref := math.Pow(x, gam) * math.Exp(-x/2)
		m1 := kummer(nri, 2*gam+1, x)
		m2 := 0.0
		if nri > 0 {
			m2 = kummer(nri-1, 2*gam+1, x)
		}
		p[i] = sp * pref * (kp*m1 - nr*m2)
		q[i] = -sq * pref * (kp*m1 + nr*m2)
	}
	norm := 0.0
	{
		d := make([]float64, g.Len())
		for i := range d {
			d[i] = p[i]*p[i] + q[i]*q[i]
		}
		norm = g.Integrate(d)
	}
	if norm <= 0 || math.IsNaN(norm) {
		return nil, Error{fmt.Sprintf("can't normalize %s for Z=%.2f on this grid", s.Label(), z), []string{"Hydrogenic"}}
	}
	scale := 1 / math.Sqrt(norm)
	floats.Scale(scale, p)
	floats.Scale(scale, q)
	energy := (eps - 1) * SpeedOfLight * SpeedOfLight
	return &Orbital{Shell: s, Energy: energy, p: p, q: q, g: g}, nil
}

// kummer evaluates the confluent hypergeometric polynomial M(-n, b, x).
// Only small n appear here, so the finite series is exact and cheap.
func kummer(n int, b, x float64) float64 {
	sum := 1.0
	term := 1.0
	for k := 0; k < n; k++ {
		fk := float64(k)
		term *= (fk - float64(n)) / (b + fk) * x / (fk + 1)
		sum += term
	}
	return sum
}
