/*
 * qed_test.go, part of goqed.
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

package qed

import (
	"fmt"
	"math"
	"testing"

	"github.com/rmolina/goqed/grid"
	"github.com/rmolina/goqed/orbital"
)

//countingSource wraps the analytic hydrogenic generator and counts calls,
//to see how often the reference cache actually recomputes.
type countingSource struct {
	calls int
}

func (cs *countingSource) Hydrogenic(z float64, s orbital.Subshell, g *grid.Grid) (*orbital.Orbital, error) {
	cs.calls++
	return orbital.Hydrogenic(z, s, g)
}

func TestRefreshCaching(Te *testing.T) {
	fmt.Println("Reference cache test!")
	c := NewCalculator()
	cs := new(countingSource)
	c.SetSource(cs)
	g := grid.NewForCharge(50, 400)
	r1, err := c.Refresh(50, g)
	if err != nil {
		Te.Fatal(err)
	}
	if cs.calls != NAngularClasses {
		Te.Errorf("first refresh took %d orbital generations, want %d", cs.calls, NAngularClasses)
	}
	r2, err := c.Refresh(50, g)
	if err != nil {
		Te.Fatal(err)
	}
	if cs.calls != NAngularClasses {
		Te.Errorf("second refresh recomputed: %d generations total", cs.calls)
	}
	if r1 != r2 {
		Te.Error("second refresh returned a different reference")
	}
	if !c.Cached(50) || c.Cached(51) {
		Te.Error("Cached doesn't reflect the cache contents")
	}
	for i, v := range r1.Overlap {
		if v <= 0 || v >= FineStructure {
			Te.Errorf("reference overlap %d = %v outside (0, alpha)", i, v)
		}
	}
}

func TestCacheEviction(Te *testing.T) {
	o := DefaultOptions()
	o.MaxCached(2)
	c := NewCalculator(o)
	g := grid.NewForCharge(30, 400)
	for _, z := range []float64{20, 30, 40} {
		if _, err := c.Refresh(z, g); err != nil {
			Te.Fatal(err)
		}
	}
	if !c.Cached(40) {
		Te.Error("the just-computed charge was evicted")
	}
	n := 0
	for _, z := range []float64{20, 30, 40} {
		if c.Cached(z) {
			n++
		}
	}
	if n != 2 {
		Te.Errorf("%d charges cached, want 2", n)
	}
}

//For a hydrogenic orbital the effective scaled self-energy must give back
//the table entry, since the reference normalization cancels exactly.
func TestFofZAHydrogenic(Te *testing.T) {
	fmt.Println("F(Z) consistency test!")
	c := NewCalculator()
	g := grid.NewForCharge(74, 600)
	nuc := NewPointNuclearModel(74)
	o, err := orbital.Hydrogenic(74, orbital.Subshell{N: 1, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	f, err := c.FofZA(o, nuc, g)
	if err != nil {
		Te.Fatal(err)
	}
	want, err := TableValue(74, ClassS12)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("F(74, 1s1/2):", f, "table:", want)
	if math.Abs(f-want) > 1e-9 {
		Te.Errorf("F(74, 1s1/2) = %v, want %v", f, want)
	}
}

func TestVolotkaSelectivity(Te *testing.T) {
	c := NewCalculator()
	g := grid.NewForCharge(74, 500)
	nuc := NewPointNuclearModel(74)
	ref, err := c.Refresh(74, g)
	if err != nil {
		Te.Fatal(err)
	}
	o1s, err := orbital.Hydrogenic(74, orbital.Subshell{N: 1, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	o2s, err := orbital.Hydrogenic(74, orbital.Subshell{N: 2, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	o5s, err := orbital.Hydrogenic(74, orbital.Subshell{N: 5, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	se, err := c.selfEnergyVolotka(o1s, o2s, nuc, g, ref)
	if err != nil {
		Te.Error(err)
	}
	if se != 0 {
		Te.Errorf("off-diagonal self-energy = %v, want 0", se)
	}
	se, err = c.selfEnergyVolotka(o5s, o5s, nuc, g, ref)
	if err != nil {
		Te.Error(err)
	}
	if se != 0 {
		Te.Errorf("n=5 self-energy = %v, want 0", se)
	}
	se, err = c.selfEnergyVolotka(o1s, o1s, nuc, g, ref)
	if err != nil {
		Te.Error(err)
	}
	if se <= 0 {
		Te.Errorf("1s1/2 self-energy = %v, want > 0", se)
	}
}

//A stale reference, computed for another charge, must be refused.
func TestStaleReference(Te *testing.T) {
	c := NewCalculator()
	g := grid.NewForCharge(74, 500)
	ref, err := c.Refresh(60, g)
	if err != nil {
		Te.Fatal(err)
	}
	o, err := orbital.Hydrogenic(74, orbital.Subshell{N: 1, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	nuc := NewPointNuclearModel(74)
	if _, err := c.selfEnergyVolotka(o, o, nuc, g, ref); err == nil {
		Te.Error("expected an error for a reference computed at another charge")
	} else {
		fmt.Println("got the expected error:", err)
	}
}

func TestUnknownKappaPanics(Te *testing.T) {
	c := NewCalculator()
	g := grid.NewForCharge(74, 500)
	nuc := NewPointNuclearModel(74)
	o4f, err := orbital.Hydrogenic(74, orbital.Subshell{N: 4, Kappa: 3}, g)
	if err != nil {
		Te.Fatal(err)
	}
	ref, err := c.Refresh(74, g)
	if err != nil {
		Te.Fatal(err)
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Error("expected a panic for an f subshell")
		}
	}()
	c.selfEnergyVolotka(o4f, o4f, nuc, g, ref)
}

func TestUnknownModelPanics(Te *testing.T) {
	o := DefaultOptions()
	o.Model(Model(99))
	c := NewCalculator(o)
	g := grid.NewForCharge(20, 400)
	nuc := NewPointNuclearModel(20)
	orb, err := orbital.Hydrogenic(20, orbital.Subshell{N: 1, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	defer func() {
		if r := recover(); r == nil {
			Te.Error("expected a panic for an unknown model")
		}
	}()
	c.LocalCorrection(orb, orb, nuc, nil, g)
}

//The Uehling potential is attractive, so its diagonal matrix element on a
//bound orbital must be negative, and turning on the repulsive
//Wichmann-Kroll estimate must shrink its magnitude.
func TestUehling(Te *testing.T) {
	fmt.Println("Uehling test!")
	c := NewCalculator()
	g := grid.NewForCharge(74, 600)
	nuc := NewPointNuclearModel(74)
	o, err := orbital.Hydrogenic(74, orbital.Subshell{N: 1, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	fg := orbital.NewFreqGrid(c.Options().QuadOrder(), 0, 1)
	vp := c.uehling(o, o, nuc, g, fg)
	fmt.Println("Uehling <1s|V|1s> at Z=74:", vp)
	if vp >= 0 {
		Te.Errorf("Uehling matrix element = %v, want < 0", vp)
	}
	c.Options().WichmannKroll(true)
	vpwk := c.uehling(o, o, nuc, g, fg)
	if vpwk <= vp {
		Te.Errorf("with Wichmann-Kroll %v, without %v: should be less negative", vpwk, vp)
	}
	if vpwk >= 0 {
		Te.Errorf("Wichmann-Kroll estimate overwhelmed Uehling: %v", vpwk)
	}
}

//Full corrections under both models at Z=74: both finite, same sign,
//within an order of magnitude of each other for 1s.
func TestLocalCorrectionModels(Te *testing.T) {
	fmt.Println("Local correction test!")
	g := grid.NewForCharge(74, 600)
	nuc := NewNuclearModel(74)
	o, err := orbital.Hydrogenic(74, orbital.Subshell{N: 1, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	pot := nuc.Potential(g)
	pc := NewCalculator()
	petersburg, err := pc.LocalCorrection(o, o, nuc, nil, g)
	if err != nil {
		Te.Fatal(err)
	}
	so := DefaultOptions()
	so.Model(Sydney)
	sc := NewCalculator(so)
	sydney, err := sc.LocalCorrection(o, o, nuc, pot, g)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("corrections at Z=74, 1s1/2: Petersburg", petersburg, "Sydney", sydney)
	for _, v := range []float64{petersburg, sydney} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			Te.Errorf("non-finite correction %v", v)
		}
	}
	//the self-energy dominates the vacuum polarization here
	if petersburg <= 0 {
		Te.Errorf("Petersburg correction = %v, want > 0 for 1s at Z=74", petersburg)
	}
	//Sydney needs the mean-field potential
	if _, err := sc.LocalCorrection(o, o, nuc, nil, g); err == nil {
		Te.Error("expected an error for the Sydney model without a potential")
	}
}

//Light elements fall below the table: the Petersburg self-energy is zero
//there and only the vacuum polarization remains.
func TestLightElement(Te *testing.T) {
	c := NewCalculator()
	g := grid.NewForCharge(5, 400)
	nuc := NewPointNuclearModel(5)
	o, err := orbital.Hydrogenic(5, orbital.Subshell{N: 1, Kappa: -1}, g)
	if err != nil {
		Te.Fatal(err)
	}
	corr, err := c.LocalCorrection(o, o, nuc, nil, g)
	if err != nil {
		Te.Fatal(err)
	}
	fg := orbital.NewFreqGrid(c.Options().QuadOrder(), 0, 1)
	vp := c.uehling(o, o, nuc, g, fg)
	if math.Abs(corr-vp) > 1e-15 {
		Te.Errorf("correction %v at Z=5 should be pure vacuum polarization %v", corr, vp)
	}
	f, err := c.FofZA(o, nuc, g)
	if err != nil {
		Te.Fatal(err)
	}
	if f != 0 {
		Te.Errorf("F(5, 1s1/2) = %v, want 0", f)
	}
}
