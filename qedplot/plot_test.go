/*
 * plot_test.go, part of goqed.
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

package qedplot

import (
	"fmt"
	"os"
	"testing"

	qed "github.com/rmolina/goqed"
	"github.com/rmolina/goqed/grid"
	"github.com/rmolina/goqed/orbital"
)

func TestPlots(Te *testing.T) {
	fmt.Println("Plot test!")
	dir := Te.TempDir()
	g := grid.NewForCharge(40, 400)
	nuc := qed.NewNuclearModel(40)
	pots := map[string][]float64{
		"nuclear": nuc.Potential(g),
		"Uehling": qed.UehlingPotential(nuc, g, orbital.NewFreqGrid(7, 0, 1)),
	}
	if err := Potentials(dir+"/potentials", "Z=40 potentials", g, 1.0, pots); err != nil {
		Te.Error(err)
	}
	o1s, err := orbital.Hydrogenic(40, orbital.Subshell{N: 1, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	o2s, err := orbital.Hydrogenic(40, orbital.Subshell{N: 2, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	if err := Densities(dir+"/densities", "Z=40 densities", o1s, o2s); err != nil {
		Te.Error(err)
	}
	if err := FofZA(dir + "/fofza"); err != nil {
		Te.Error(err)
	}
	for _, name := range []string{"potentials", "densities", "fofza"} {
		fi, err := os.Stat(dir + "/" + name + ".png")
		if err != nil {
			Te.Error(err)
			continue
		}
		if fi.Size() == 0 {
			Te.Errorf("%s.png is empty", name)
		}
	}
}
