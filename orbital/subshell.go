/*
 * subshell.go, part of goqed.
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

import (
	"fmt"
	"strconv"
	"strings"
)

// Subshell identifies a relativistic subshell by its principal quantum
// number N and relativistic angular quantum number Kappa. It is a value
// type; compare with ==.
type Subshell struct {
	N     int
	Kappa int
}

var lletters = []string{"s", "p", "d", "f", "g", "h", "i"}

// L returns the orbital angular momentum quantum number of the subshell.
func (s Subshell) L() int {
	if s.Kappa > 0 {
		return s.Kappa
	}
	return -s.Kappa - 1
}

// TwoJ returns twice the total angular momentum, 2j = 2|kappa| - 1.
func (s Subshell) TwoJ() int {
	k := s.Kappa
	if k < 0 {
		k = -k
	}
	return 2*k - 1
}

// Degeneracy returns the number of electrons the subshell can hold, 2j+1.
func (s Subshell) Degeneracy() int {
	return s.TwoJ() + 1
}

// Valid returns nil if the subshell corresponds to a bound relativistic
// state (kappa nonzero, in -n...n-1) and an error otherwise.
func (s Subshell) Valid() error {
	if s.N < 1 || s.Kappa == 0 || s.Kappa >= s.N || -s.Kappa > s.N {
		return Error{fmt.Sprintf("no bound subshell with n=%d kappa=%d", s.N, s.Kappa), []string{"Valid"}}
	}
	return nil
}

// Label returns the spectroscopic label of the subshell, e.g. "1s1/2",
// "2p3/2" or "3d5/2". Subshells with l beyond i keep a numeric letter.
func (s Subshell) Label() string {
	l := s.L()
	letter := strconv.Itoa(l)
	if l < len(lletters) {
		letter = lletters[l]
	}
	return fmt.Sprintf("%d%s%d/2", s.N, letter, s.TwoJ())
}

// ParseLabel is the inverse of Label. It accepts labels like "2p1/2".
func ParseLabel(label string) (Subshell, error) {
	var ret Subshell
	bad := Error{fmt.Sprintf("can't parse subshell label %q", label), []string{"ParseLabel"}}
	rest, ok := strings.CutSuffix(label, "/2")
	if !ok || len(rest) < 3 {
		return ret, bad
	}
	var letter string
	for _, v := range lletters {
		if strings.Contains(rest[1:], v) {
			letter = v
			break
		}
	}
	if letter == "" {
		return ret, bad
	}
	parts := strings.SplitN(rest, letter, 2)
	if len(parts) != 2 {
		return ret, bad
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return ret, bad
	}
	twoj, err := strconv.Atoi(parts[1])
	if err != nil || twoj < 1 || twoj%2 == 0 {
		return ret, bad
	}
	l := 0
	for i, v := range lletters {
		if v == letter {
			l = i
		}
	}
	// kappa = l for j = l - 1/2, -(l+1) for j = l + 1/2
	var kappa int
	switch twoj {
	case 2*l - 1:
		kappa = l
	case 2*l + 1:
		kappa = -(l + 1)
	default:
		return ret, bad
	}
	ret = Subshell{N: n, Kappa: kappa}
	if err := ret.Valid(); err != nil {
		return Subshell{}, errDecorate(err, "ParseLabel")
	}
	return ret, nil
}
