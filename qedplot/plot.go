/*
 * plot.go, part of goqed.
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

/*Package qedplot produces quick-look PNG plots of the quantities the rest
of the library computes: radial potentials, orbital densities and the
empirical self-energy scaling function. Meant for eyeballing a calculation,
not for publication figures.*/
package qedplot

import (
	"fmt"

	qed "github.com/rmolina/goqed"
	"github.com/rmolina/goqed/grid"
	"github.com/rmolina/goqed/orbital"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func radialLine(g *grid.Grid, f []float64) (plotter.XYs, error) {
	if g == nil || len(f) != g.Len() {
		return nil, fmt.Errorf("qedplot: function doesn't match the grid")
	}
	pts := make(plotter.XYs, g.Len())
	for i := 0; i < g.Len(); i++ {
		pts[i].X = g.R(i)
		pts[i].Y = f[i]
	}
	return pts, nil
}

// Potentials plots one or more radial functions of r against the grid,
// labeled with the keys of pots, and saves the result to plotname.png.
// Points with r beyond rmax are left out, which keeps short-range
// potentials readable.
func Potentials(plotname, title string, g *grid.Grid, rmax float64, pots map[string][]float64) error {
	p := basicPlot(title, "r (a.u.)", "V(r) (a.u.)")
	args := make([]interface{}, 0, 2*len(pots))
	for label, v := range pots {
		pts, err := radialLine(g, v)
		if err != nil {
			return err
		}
		if rmax > 0 {
			cut := pts[:0]
			for _, xy := range pts {
				if xy.X <= rmax {
					cut = append(cut, xy)
				}
			}
			pts = cut
		}
		args = append(args, label, pts)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

// Densities plots the radial densities P^2+Q^2 of the given orbitals,
// labeled with their subshell labels, and saves the result to
// plotname.png. All orbitals must live on the same grid.
func Densities(plotname, title string, orbs ...*orbital.Orbital) error {
	if len(orbs) == 0 {
		return fmt.Errorf("qedplot: no orbitals given")
	}
	p := basicPlot(title, "r (a.u.)", "P^2+Q^2")
	g := orbs[0].Grid()
	args := make([]interface{}, 0, 2*len(orbs))
	for _, o := range orbs {
		if o.Grid() != g {
			return fmt.Errorf("qedplot: orbital %s lives on a different grid", o.Shell.Label())
		}
		pts, err := radialLine(g, o.Density())
		if err != nil {
			return err
		}
		args = append(args, o.Shell.Label(), pts)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

// FofZA plots the tabulated self-energy scaling function against Z for
// the given angular classes and saves the result to plotname.png.
// With no classes given, all five are plotted.
func FofZA(plotname string, classes ...qed.AngularClass) error {
	if len(classes) == 0 {
		classes = []qed.AngularClass{qed.ClassS12, qed.ClassP12, qed.ClassP32, qed.ClassD32, qed.ClassD52}
	}
	p := basicPlot("Self-energy scaling", "Z", "F(Z)")
	args := make([]interface{}, 0, 2*len(classes))
	for _, c := range classes {
		pts := make(plotter.XYs, 0, 110)
		for z := 10.0; z < 120; z++ {
			f, err := qed.TableValue(z, c)
			if err != nil {
				return err
			}
			pts = append(pts, plotter.XY{X: z, Y: f})
		}
		args = append(args, c.String(), pts)
	}
	if err := plotutil.AddLines(p, args...); err != nil {
		return err
	}
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
