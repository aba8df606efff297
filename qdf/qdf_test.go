/*
 * qdf_test.go, part of goqed.
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
 */

package qdf

import (
	"fmt"
	"math"
	"testing"

	"github.com/rmolina/goqed/orbital"

	"github.com/rmolina/goqed/grid"
)

//Writes a small hydrogenic basis to a dump and reads it back.
func TestQDFRoundTrip(Te *testing.T) {
	fmt.Println("QDF roundtrip test!")
	g := grid.NewForCharge(20, 400)
	shells := []orbital.Subshell{
		{N: 1, Kappa: -1},
		{N: 2, Kappa: -1},
		{N: 2, Kappa: 1},
	}
	orbs := make([]*orbital.Orbital, 0, len(shells))
	for _, s := range shells {
		o, err := orbital.Hydrogenic(20, s, g)
		if err != nil {
			Te.Fatal(err)
		}
		orbs = append(orbs, o)
	}
	name := Te.TempDir() + "/basis_z20.qdf"
	w, err := NewWriter(name, g, map[string]string{"z": "20", "source": "hydrogenic"})
	if err != nil {
		Te.Fatal(err)
	}
	for _, o := range orbs {
		if err := w.WOrbital(o); err != nil {
			Te.Error(err)
		}
	}
	w.Close()
	r, header, err := New(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	if header["z"] != "20" || header["source"] != "hydrogenic" {
		Te.Errorf("header not preserved: %v", header)
	}
	if r.Grid().Len() != g.Len() || math.Abs(r.Grid().LastR()-g.LastR()) > 1e-10 {
		Te.Errorf("grid not preserved: %d points, last r %v vs %v", r.Grid().Len(), r.Grid().LastR(), g.LastR())
	}
	read := 0
	for {
		o, err := r.Next()
		if err != nil {
			if _, ok := err.(LastOrbitalError); ok {
				break
			}
			Te.Fatal(err)
		}
		want := orbs[read]
		if o.Shell != want.Shell {
			Te.Errorf("orbital %d: got %s, want %s", read, o.Shell.Label(), want.Shell.Label())
		}
		if math.Abs(o.Energy-want.Energy) > 1e-9 {
			Te.Errorf("orbital %s: energy %v, want %v", o.Shell.Label(), o.Energy, want.Energy)
		}
		maxdev := 0.0
		for i := 0; i < g.Len(); i++ {
			if d := math.Abs(o.P(i) - want.P(i)); d > maxdev {
				maxdev = d
			}
			if d := math.Abs(o.Q(i) - want.Q(i)); d > maxdev {
				maxdev = d
			}
		}
		if maxdev > 1e-10 {
			Te.Errorf("orbital %s: components deviate by %v", o.Shell.Label(), maxdev)
		}
		fmt.Println("read back", o.Shell.Label(), "energy", o.Energy)
		read++
	}
	if read != len(orbs) {
		Te.Errorf("read %d orbitals, wrote %d", read, len(orbs))
	}
}

//The writer must refuse orbitals from a different grid.
func TestQDFGridMismatch(Te *testing.T) {
	g := grid.NewForCharge(20, 400)
	other := grid.NewForCharge(20, 500)
	o, err := orbital.Hydrogenic(20, orbital.Subshell{N: 1, Kappa: -1}, other)
	if err != nil {
		Te.Fatal(err)
	}
	name := Te.TempDir() + "/mismatch.qdf"
	w, err := NewWriter(name, g)
	if err != nil {
		Te.Fatal(err)
	}
	defer w.Close()
	if err := w.WOrbital(o); err == nil {
		Te.Error("expected an error writing an orbital from another grid")
	} else {
		fmt.Println("got the expected error:", err)
	}
}
