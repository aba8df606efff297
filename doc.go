/*
 * doc.go, part of goqed.
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

/*
Package qed computes local single-electron QED corrections (vacuum
polarization and self-energy) to the energies of atomic orbitals, for use in
many-electron atomic-structure calculations.

The entry point is the Calculator, which owns the configuration and the
cached hydrogenic reference integrals for each nuclear charge it has seen.
A minimal use looks like:

	g := grid.NewForCharge(74)
	nuc := qed.NewNuclearModel(74)
	o, _ := orbital.Hydrogenic(74, orbital.Subshell{N: 1, Kappa: -1}, g)
	c := qed.NewCalculator()
	de, err := c.LocalCorrection(o, o, nuc, nuc.Potential(g), g)

Two approximation schemes are available, selected through Options: Sydney
(Uehling vacuum polarization plus a low-frequency self-energy term) and
Petersburg (Uehling plus a self-energy rescaled from tabulated hydrogenic
values). The tabulated scheme is defined only for diagonal matrix elements
of subshells up to n=4 and returns zero outside that domain; that is a
modeling decision, not an error.

Calculators are not safe for concurrent use. Give each goroutine its own;
they are cheap and their caches are independent.

Subpackages: grid and orbital hold the radial numerics, qdf archives
computed radial data in compressed files, and qedplot draws diagnostics.
*/
package qed
