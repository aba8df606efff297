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

package qed

import "fmt"

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows adding information to the error
// while it is passed up, without changing its type or wrapping it.
// Each function in the call stack adds its name, plus any relevant detail,
// in the format "FunctionName: extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type of this package.
type CError struct {
	msg  string
	deco []string
}

// Error returns a string with an error message.
func (err CError) Error() string {
	return fmt.Sprintf("%s", err.msg)
}

// Decorate adds dec to the decoration slice of the error and returns the
// resulting slice. An empty string only returns the current decorations.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// errDecorate asserts that the given error implements Error, decorates it
// with the caller's name and returns it. Calling it on a plain error is a
// bug in this library, hence the panic on a failed assertion.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

// PanicMsg is the type for panic messages, used for conditions that mean
// the calling program is wrong (misconfiguration, values outside closed
// sets) rather than for recoverable bad data. It satisfies the error
// interface so a recovering caller can rethrow it as an error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrUnknownModel = PanicMsg("goQED: unsupported QED model selected")
	ErrUnknownKappa = PanicMsg("goQED: no angular class defined for this kappa")
	ErrNilData      = PanicMsg("goQED: nil data given")
)
