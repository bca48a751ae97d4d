/*
 * orbitals.go, part of godos.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 */

package dos

import "fmt"

//The DOSCAR doesn't say what each column of an atom block is, that depends on
//whether the calculation was spin-polarized and whether phase factors
//(LORBIT) were calculated. The tables here only document the usual
//conventions, nothing in the reader checks them.

//Layout is one of the column conventions for the atom blocks of a DOSCAR.
type Layout int

const (
	//s=1, p=2, d=3
	Unpolarized Layout = iota
	//s-up=1, s-down=2, p-up=3, p-down=4, d-up=5, d-down=6
	SpinPolarized
	//s, py, pz, px, dxy, dyz, dz2, dxz, dx2 in columns 1 to 9
	PhaseFactors
	//as PhaseFactors, but each orbital takes 2 columns, up and then down.
	PhaseFactorsSpin
)

//Spin selects the up or down column in spin-polarized layouts.
//It is ignored for the others.
type Spin int

const (
	Up Spin = iota
	Down
)

var layoutOrbitals = map[Layout][]string{
	Unpolarized:      {"s", "p", "d"},
	SpinPolarized:    {"s", "p", "d"},
	PhaseFactors:     {"s", "py", "pz", "px", "dxy", "dyz", "dz2", "dxz", "dx2"},
	PhaseFactorsSpin: {"s", "py", "pz", "px", "dxy", "dyz", "dz2", "dxz", "dx2"},
}

var layoutNames = map[Layout]string{
	Unpolarized:      "unpolarized",
	SpinPolarized:    "spin-polarized",
	PhaseFactors:     "phase factors",
	PhaseFactorsSpin: "spin-polarized with phase factors",
}

func (l Layout) String() string {
	if n, ok := layoutNames[l]; ok {
		return n
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

//Polarized returns true for the spin-polarized layouts.
func (l Layout) Polarized() bool {
	return l == SpinPolarized || l == PhaseFactorsSpin
}

//Orbitals returns the names of the orbitals in the layout, in the order
//they appear in the file.
func (l Layout) Orbitals() []string {
	o := layoutOrbitals[l]
	ret := make([]string, len(o))
	copy(ret, o)
	return ret
}

//Columns returns the total number of columns, energy included, of an atom block
//with this layout.
func (l Layout) Columns() int {
	n := len(layoutOrbitals[l])
	if l.Polarized() {
		n *= 2
	}
	return n + 1
}

//Column returns the column index of the given orbital and spin in
//this layout, to be used with LDOS.Series.
func (l Layout) Column(orbital string, spin Spin) (int, error) {
	for i, v := range layoutOrbitals[l] {
		if v != orbital {
			continue
		}
		if !l.Polarized() {
			return i + 1, nil
		}
		return 2*i + 1 + int(spin), nil
	}
	return -1, fmt.Errorf("orbital %q not in layout %s", orbital, l)
}

//GuessLayout returns the layout that gives atom blocks with cols columns,
//energy included. The guess can only be as good as the usual conventions.
func GuessLayout(cols int) (Layout, error) {
	for _, l := range []Layout{Unpolarized, SpinPolarized, PhaseFactors, PhaseFactorsSpin} {
		if l.Columns() == cols {
			return l, nil
		}
	}
	return -1, fmt.Errorf("no known DOSCAR layout has %d columns", cols)
}
