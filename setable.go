/*
 * setable.go, part of goqed.
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

import "fmt"

//The tabulated scaled self-energy function F(Z) for hydrogenic ions.
//Rows run over Z = 10, 20, ... 120; columns over the angular classes
//s1/2, p1/2, p3/2, d3/2, d5/2. The table is fixed empirical input and is
//only ever read, never recomputed.

const (
	seZMin  = 10.0
	seZMax  = 120.0
	seZStep = 10.0
)

var seFofZA = [12][NAngularClasses]float64{
	{4.6542, -0.1148, 0.1304, -0.0427, 0.0408}, //Z=10
	{3.2462, -0.0963, 0.1438, -0.0420, 0.0416}, //Z=20
	{2.5518, -0.0555, 0.1635, -0.0410, 0.0429}, //Z=30
	{2.1351, 0.0085, 0.1896, -0.0396, 0.0446},  //Z=40
	{1.8633, 0.1000, 0.2226, -0.0378, 0.0468},  //Z=50
	{1.6820, 0.2261, 0.2637, -0.0353, 0.0496},  //Z=60
	{1.5637, 0.3983, 0.3148, -0.0321, 0.0530},  //Z=70
	{1.4955, 0.6349, 0.3785, -0.0279, 0.0570},  //Z=80
	{1.4721, 0.9658, 0.4588, -0.0225, 0.0618},  //Z=90
	{1.4961, 1.4424, 0.5620, -0.0154, 0.0673},  //Z=100
	{1.5771, 2.1580, 0.6978, -0.0062, 0.0738},  //Z=110
	{1.7335, 3.2711, 0.8835, 0.0058, 0.0813},   //Z=120
}

// TableValue returns the tabulated self-energy function F for nuclear
// charge z and angular class c, linearly interpolated within the decade
// bucket containing z. Below the table (z < 10) the correction is defined
// to be zero. At or beyond the upper edge (z >= 120) it returns an error:
// the model cannot be extrapolated there.
func TableValue(z float64, c AngularClass) (float64, error) {
	if c < ClassS12 || c > ClassD52 {
		panic(ErrUnknownKappa)
	}
	if z < seZMin {
		return 0, nil
	}
	if z >= seZMax {
		return 0, CError{fmt.Sprintf("Z=%.2f at or beyond the upper edge of the self-energy table (%.0f)", z, seZMax), []string{"TableValue"}}
	}
	bucket := int((z - seZMin) / seZStep)
	frac := (z - (seZMin + float64(bucket)*seZStep)) / seZStep
	col := int(c) - 1
	lo := seFofZA[bucket][col]
	hi := seFofZA[bucket+1][col]
	return lo + frac*(hi-lo), nil
}

// fzeOverHydrogenic returns the tabulated self-energy function for z and
// the given kappa, normalized by the cached hydrogenic damped-overlap
// reference of the matching angular class. The reference must have been
// computed for this same z; handing in a stale or missing reference is
// reported instead of silently producing garbage normalization.
func fzeOverHydrogenic(z float64, kappa int, ref *Reference) (float64, error) {
	c, ok := ClassOfKappa(kappa)
	if !ok {
		panic(ErrUnknownKappa)
	}
	f, err := TableValue(z, c)
	if err != nil {
		return 0, errDecorate(err, "fzeOverHydrogenic")
	}
	if f == 0 {
		return 0, nil
	}
	if ref == nil || ref.Z != z {
		return 0, CError{fmt.Sprintf("hydrogenic reference integrals not available for Z=%.2f", z), []string{"fzeOverHydrogenic"}}
	}
	return f / ref.Overlap[c-1], nil
}
