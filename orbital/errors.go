/*
 * errors.go, part of goqed.
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

import "fmt"

//The same error vocabulary as the root package, kept here to avoid a
//circular import.

// Error is the error type returned by this package. The Decorate method
// allows callers to add information while passing the error up, without
// changing its type.
type Error struct {
	message string
	deco    []string
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("%s", err.message)
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. An empty string only returns the current decorations.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that err carries a Decorate method and decorates it
// with the caller's name before returning it. Panics on any other error,
// as using it on one means the program is wrong.
func errDecorate(err error, caller string) error {
	err2 := err.(interface {
		Error() string
		Decorate(string) []string
	})
	err2.Decorate(caller)
	return err2
}

// PanicMsg is the type for the panic messages of this package, for misuses
// that indicate a wrong program rather than bad data. It satisfies the
// error interface so a recovering caller can rethrow it as an error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilOrbital    = PanicMsg("goQED/orbital: nil orbital given")
	ErrNilGrid       = PanicMsg("goQED/orbital: nil grid given")
	ErrGridMismatch  = PanicMsg("goQED/orbital: orbitals or potential live on different grids")
	ErrBadQuadrature = PanicMsg("goQED/orbital: a frequency grid needs at least one node and max > min")
)
