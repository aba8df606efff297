/*
 * cache.go, part of goqed.
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

	"github.com/rmolina/goqed/grid"
	"github.com/rmolina/goqed/orbital"
)

// Reference holds the damped-overlap integrals of the five hydrogenic
// reference subshells (1s1/2, 2p1/2, 2p3/2, 3d3/2, 3d5/2) for one nuclear
// charge. They normalize the tabulated self-energy values, rescaling the
// hydrogenic-model correction to the actual atomic orbital.
type Reference struct {
	Z       float64
	Overlap [NAngularClasses]float64
}

// HydrogenicSource produces hydrogenic orbitals for the reference
// integrals. The default source is orbital.Hydrogenic; tests and callers
// with precomputed orbitals can substitute their own.
type HydrogenicSource interface {
	Hydrogenic(z float64, s orbital.Subshell, g *grid.Grid) (*orbital.Orbital, error)
}

type analyticSource struct{}

func (analyticSource) Hydrogenic(z float64, s orbital.Subshell, g *grid.Grid) (*orbital.Orbital, error) {
	return orbital.Hydrogenic(z, s, g)
}

// Refresh makes sure the calculator holds the hydrogenic reference
// integrals for nuclear charge z, computing them if this z hasn't been
// seen (or has been evicted). The five orbital generations behind a miss
// are the expensive part of the whole module, so repeated calls with the
// same z are a cheap no-op.
func (c *Calculator) Refresh(z float64, g *grid.Grid) (*Reference, error) {
	if g == nil {
		panic(ErrNilData)
	}
	if ref, ok := c.refs[z]; ok {
		return ref, nil
	}
	ref := &Reference{Z: z}
	for cl := ClassS12; cl <= ClassD52; cl++ {
		o, err := c.src.Hydrogenic(z, cl.Reference(), g)
		if err != nil {
			// a substituted source may return errors of any type
			if _, ok := err.(Error); !ok {
				err = CError{err.Error(), nil}
			}
			return nil, errDecorate(err, "Refresh")
		}
		ref.Overlap[cl-1] = orbital.DampedOverlap(o, o)
	}
	if len(c.refs) >= c.o.MaxCached() {
		// the cache stays tiny; dropping an arbitrary entry is enough.
		// A caller alternating over more charges than this re-pays the
		// refresh, which it was told not to do.
		for k := range c.refs {
			delete(c.refs, k)
			break
		}
	}
	c.refs[z] = ref
	if c.o.Verbose() > 0 {
		log.Printf("goQED: hydrogenic reference integrals for Z=%.2f: 1s1/2 %.6e  2p1/2 %.6e  2p3/2 %.6e  3d3/2 %.6e  3d5/2 %.6e",
			z, ref.Overlap[0], ref.Overlap[1], ref.Overlap[2], ref.Overlap[3], ref.Overlap[4])
	}
	return ref, nil
}

// Cached reports whether the reference integrals for charge z are
// currently held by the calculator.
func (c *Calculator) Cached(z float64) bool {
	_, ok := c.refs[z]
	return ok
}
