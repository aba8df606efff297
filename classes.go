/*
 * classes.go, part of goqed.
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

import "github.com/rmolina/goqed/orbital"

// Physical constants re-exported from the orbital package, where they
// live to avoid import cycles.
const (
	FineStructure = orbital.FineStructure
	SpeedOfLight  = orbital.SpeedOfLight
)

const alpha = FineStructure

// AngularClass enumerates the five angular-momentum symmetry classes the
// tabulated self-energy model covers. The same closed set drives both the
// kappa-to-column mapping of the table and the effective principal number
// of the hydrogenic scaling, so the two can't drift apart.
type AngularClass int

const (
	ClassS12 AngularClass = iota + 1 // s1/2, kappa=-1
	ClassP12                         // p1/2, kappa=+1
	ClassP32                         // p3/2, kappa=-2
	ClassD32                         // d3/2, kappa=+2
	ClassD52                         // d5/2, kappa=-3
)

// NAngularClasses is the number of classes in the closed set above.
const NAngularClasses = 5

// ClassOfKappa maps a kappa quantum number to its angular class. The
// second return is false for any kappa outside the closed set (f
// subshells and beyond), for which the tabulated model is undefined.
func ClassOfKappa(kappa int) (AngularClass, bool) {
	switch kappa {
	case -1:
		return ClassS12, true
	case 1:
		return ClassP12, true
	case -2:
		return ClassP32, true
	case 2:
		return ClassD32, true
	case -3:
		return ClassD52, true
	}
	return 0, false
}

// EffectiveN returns the principal quantum number of the lowest subshell
// in the class: 1 for s1/2, 2 for p, 3 for d. It sets the n^3 scaling of
// the hydrogenic self-energy.
func (c AngularClass) EffectiveN() int {
	switch c {
	case ClassS12:
		return 1
	case ClassP12, ClassP32:
		return 2
	case ClassD32, ClassD52:
		return 3
	}
	panic(ErrUnknownKappa)
}

// Kappa returns the kappa quantum number of the class.
func (c AngularClass) Kappa() int {
	switch c {
	case ClassS12:
		return -1
	case ClassP12:
		return 1
	case ClassP32:
		return -2
	case ClassD32:
		return 2
	case ClassD52:
		return -3
	}
	panic(ErrUnknownKappa)
}

// Reference returns the hydrogenic reference subshell of the class, the
// lowest bound subshell with its kappa: 1s1/2, 2p1/2, 2p3/2, 3d3/2, 3d5/2.
func (c AngularClass) Reference() orbital.Subshell {
	return orbital.Subshell{N: c.EffectiveN(), Kappa: c.Kappa()}
}

// String returns the spectroscopic label of the class's reference subshell.
func (c AngularClass) String() string {
	return c.Reference().Label()
}
