/*
 * selfenergy.go, part of goqed.
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

// hydrogenicScale is the closed-form hydrogenic self-energy scale for
// charge z and angular class cl: (alpha/pi) (alpha Z)^4 / n^3, converted
// from the natural mc^2 unit of the tabulated function to hartree by
// the final 1/alpha^2.
func hydrogenicScale(z float64, cl AngularClass) float64 {
	za := alpha * z
	n := float64(cl.EffectiveN())
	return (alpha / math.Pi) * za * za * za * za / (n * n * n) / (alpha * alpha)
}

// selfEnergyVolotka returns the self-energy contribution under the
// tabulated hydrogenic model. The model is defined only for diagonal
// matrix elements of subshells up to n=4: anything else returns exactly
// zero rather than extrapolating a formula documented to be wrong there.
// A kappa with no angular class panics.
func (c *Calculator) selfEnergyVolotka(a, b *orbital.Orbital, nuc *NuclearModel, g *grid.Grid, ref *Reference) (float64, error) {
	if a.Shell != b.Shell || a.Shell.N > 4 {
		return 0, nil
	}
	fze, err := fzeOverHydrogenic(nuc.Z(), a.Shell.Kappa, ref)
	if err != nil {
		return 0, errDecorate(err, "selfEnergyVolotka")
	}
	if fze == 0 {
		return 0, nil
	}
	cl, _ := ClassOfKappa(a.Shell.Kappa) //fzeOverHydrogenic already vetted kappa
	sigma := fze * hydrogenicScale(nuc.Z(), cl) * orbital.DampedOverlap(a, a)
	if c.o.Verbose() > 0 {
		log.Printf("goQED: self-energy <%s|Sigma|%s> = %.6e for Z=%.2f", a.Shell.Label(), b.Shell.Label(), sigma, nuc.Z())
	}
	return sigma, nil
}

// selfEnergyLow returns the low-frequency part of the self-energy,
// quadratic in the binding potential and cut off at the electron rest
// energy. The frequency integral runs over the auxiliary grid, with the
// photon damping exp(-2 w r / c) tying the radial and frequency scales
// together. High-frequency and vertex parts are not included in this
// scheme.
func (c *Calculator) selfEnergyLow(a, b *orbital.Orbital, nuc *NuclearModel, pot []float64, g *grid.Grid, fg *orbital.FreqGrid) (float64, error) {
	if pot == nil {
		return 0, CError{"low-frequency self-energy needs the mean-field potential", []string{"selfEnergyLow"}}
	}
	if len(pot) != g.Len() {
		return 0, CError{"mean-field potential doesn't match the grid", []string{"selfEnergyLow"}}
	}
	d := make([]float64, g.Len())
	for i := 0; i < g.Len(); i++ {
		d[i] = (a.P(i)*b.P(i) + a.Q(i)*b.Q(i)) * pot[i] * pot[i]
	}
	mc2 := SpeedOfLight * SpeedOfLight
	w := make([]float64, g.Len())
	sum := fg.Integrate(func(u float64) float64 {
		omega := u * mc2
		for i, r := range g.Points() {
			w[i] = d[i] * math.Exp(-2*omega*r/SpeedOfLight)
		}
		return (1 - u) * g.Integrate(w)
	})
	sigma := (alpha / math.Pi) * (4.0 / 3.0) * sum / mc2
	if c.o.Verbose() > 0 {
		log.Printf("goQED: low-frequency self-energy <%s|Sigma|%s> = %.6e for Z=%.2f", a.Shell.Label(), b.Shell.Label(), sigma, nuc.Z())
	}
	return sigma, nil
}
