/*
 * constants.go, part of goqed.
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

// Fundamental constants, in Hartree atomic units unless said otherwise.
// CODATA 2018 values. They live in this package because everything else
// in goQED imports it; the root package re-exports the ones callers need.
const (
	// Fine-structure constant (dimensionless)
	FineStructure = 7.2973525693e-3

	// Speed of light in atomic units, 1/alpha
	SpeedOfLight = 1.0 / FineStructure

	// Reduced electron Compton wavelength in bohr; numerically equal
	// to the fine-structure constant in these units
	ComptonWavelength = FineStructure

	// Bohr radius in meters, to convert nuclear radii given in fm
	BohrMeters = 5.29177210903e-11

	// Femtometer in bohr
	FmToBohr = 1.0e-15 / BohrMeters

	// Hartree in eV, for printing energies in units experimentalists read
	HartreeEV = 27.211386245988
)
