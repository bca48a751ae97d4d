/*
 * fermi.go, part of godos.
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

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//fermiState is either unshifted (the energies are the ones in the file)
//or shifted by value.
type fermiState struct {
	shifted bool
	value   float64
}

//Fermi returns the current Fermi level. It is 0 if it has never been set.
func (L *LDOS) Fermi() float64 {
	return L.fermi.value
}

//Shifted returns true if the energies have been shifted by a Fermi level,
//even if that level is 0.
func (L *LDOS) Shifted() bool {
	return L.fermi.shifted
}

//SetFermi sets the Fermi level to e, so the energies in column 0 of every block
//become E_file - e. The previous shift, if any, is undone first, so
//setting the same value twice has the same effect as setting it once,
//and setting it to 0 brings back the energies in the file.
func (L *LDOS) SetFermi(e float64) {
	var shift float64
	if L.fermi.shifted {
		shift = L.fermi.value
	}
	shift -= e
	if shift != 0 {
		L.shiftEnergies(shift)
	}
	L.fermi = fermiState{shifted: true, value: e}
}

//ClearFermi always fails. There is no "no Fermi level" state to go back to
//once one is set, set it to 0 instead.
func (L *LDOS) ClearFermi() error {
	return &Error{message: FermiNotDeletable, filename: L.filename, block: -1, kind: InvalidOperation, deco: []string{"ClearFermi"}}
}

//adds shift to column 0 of every block, in place.
func (L *LDOS) shiftEnergies(shift float64) {
	var col []float64
	for _, b := range L.dos {
		col = mat.Col(col, 0, b)
		floats.AddConst(shift, col)
		b.SetCol(0, col)
	}
}
