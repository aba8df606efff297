/*
 * setable_test.go, part of goqed.
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
)

var allClasses = []AngularClass{ClassS12, ClassP12, ClassP32, ClassD32, ClassD52}

//At a table node the interpolation must return the entry itself.
func TestTableNodes(Te *testing.T) {
	fmt.Println("Self-energy table node test!")
	cases := []struct {
		z    float64
		c    AngularClass
		want float64
	}{
		{20, ClassS12, 3.2462},
		{30, ClassS12, 2.5518},
		{70, ClassS12, 1.5637},
		{80, ClassS12, 1.4955},
		{10, ClassP32, 0.1304},
		{110, ClassD52, 0.0738},
	}
	for _, v := range cases {
		got, err := TableValue(v.z, v.c)
		if err != nil {
			Te.Error(err)
			continue
		}
		if got != v.want {
			Te.Errorf("F(%v, %v) = %v, want %v", v.z, v.c, got, v.want)
		}
	}
}

func TestTableInterpolation(Te *testing.T) {
	got, err := TableValue(25, ClassS12)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(got-2.8990) > 1e-12 {
		Te.Errorf("F(25, s1/2) = %v, want 2.8990", got)
	}
	got, err = TableValue(74, ClassS12)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(got-1.53642) > 1e-12 {
		Te.Errorf("F(74, s1/2) = %v, want 1.53642", got)
	}
	//every bucket, every class, against the two bracketing nodes
	for _, c := range allClasses {
		for z := 10.0; z < 119; z += 3.7 {
			lo, err1 := TableValue(10*math.Floor(z/10), c)
			hi, err2 := TableValue(math.Min(10*math.Floor(z/10)+10, 119.999999), c)
			mid, err3 := TableValue(z, c)
			if err1 != nil || err2 != nil || err3 != nil {
				Te.Fatal(err1, err2, err3)
			}
			if mid < math.Min(lo, hi)-1e-9 || mid > math.Max(lo, hi)+1e-9 {
				Te.Errorf("F(%v, %v) = %v outside its bracket [%v, %v]", z, c, mid, lo, hi)
			}
		}
	}
}

//Charges below the table get exactly zero, not an extrapolation.
func TestTableBelowRange(Te *testing.T) {
	for _, c := range allClasses {
		for _, z := range []float64{1, 5, 9.999} {
			got, err := TableValue(z, c)
			if err != nil {
				Te.Error(err)
			}
			if got != 0 {
				Te.Errorf("F(%v, %v) = %v, want 0", z, c, got)
			}
		}
	}
}

//Charges at or beyond the upper edge are an error.
func TestTableUpperEdge(Te *testing.T) {
	for _, z := range []float64{120, 137} {
		_, err := TableValue(z, ClassS12)
		if err == nil {
			Te.Errorf("expected an error for Z=%v", z)
		} else {
			fmt.Println("got the expected error:", err)
		}
	}
}

func TestTableBadClassPanics(Te *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			Te.Error("expected a panic for an invalid angular class")
		}
	}()
	TableValue(50, AngularClass(7))
}
