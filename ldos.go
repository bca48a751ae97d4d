/*
 * ldos.go, part of godos.
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
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//LDOS is a set of local densities of states, as read from a DOSCAR.
//Conceptually it is a 3D array:
//1st index: which block. 0 is the total DOS, 1..N the atoms.
//2nd index: the DOS grid point.
//3rd index: 0 is the energy, the rest are the orbital DOSs (see Layout).
//All blocks have the same shape.
type LDOS struct {
	dos       []*mat.Dense
	natoms    int
	fermi     fermiState
	recovered bool
	filename  string
}

var _ Seriesr = (*LDOS)(nil)

//Atoms returns the number of atoms in the file, which is
//the number of blocks minus one.
func (L *LDOS) Atoms() int {
	return L.natoms
}

//Dims returns the number of blocks, of DOS points per block and
//of columns per block.
func (L *LDOS) Dims() (blocks, rows, cols int) {
	if len(L.dos) == 0 {
		return 0, 0, 0
	}
	rows, cols = L.dos[0].Dims()
	return len(L.dos), rows, cols
}

//Recovered returns true if the file lacked the total DOS block and a
//zero block was put in its place.
func (L *LDOS) Recovered() bool {
	return L.recovered
}

//FileName returns the name of the file the data was read from, or an empty
//string if it was read from a reader.
func (L *LDOS) FileName() string {
	return L.filename
}

//At returns the value at the given block, row and column. It panics if
//any index is out of range, as mat.Dense does.
func (L *LDOS) At(block, row, col int) float64 {
	return L.dos[block].At(row, col)
}

//Block returns a copy of the given block, or an error if the block doesn't exist.
func (L *LDOS) Block(i int) (*mat.Dense, error) {
	if i < 0 || i >= len(L.dos) {
		return nil, rangeErr("Block", "block %d requested, there are %d", i, len(L.dos))
	}
	return mat.DenseCopyOf(L.dos[i]), nil
}

//EnergyGrid returns the energies of the DOS points, taken from the first
//atom block (block 1).
func (L *LDOS) EnergyGrid() ([]float64, error) {
	if len(L.dos) < 2 {
		return nil, &Error{message: NoEnergyGrid, filename: L.filename, block: -1, kind: OutOfRange, deco: []string{"EnergyGrid"}}
	}
	return mat.Col(nil, 0, L.dos[1]), nil
}

//Series returns the DOS for the given atom and orbital, one value per point
//in the energy grid. Atom 0 is the total DOS. Which orbital corresponds to which
//column depends on how the calculation was run, see Layout.
//If dest is given, and it is large enough, the values are put there.
func (L *LDOS) Series(atom, orbital int, dest ...[]float64) ([]float64, error) {
	if atom < 0 || atom >= len(L.dos) {
		return nil, rangeErr("Series", "atom %d requested, the LDOS has blocks 0 to %d", atom, len(L.dos)-1)
	}
	rows, cols := L.dos[atom].Dims()
	if orbital < 0 || orbital >= cols {
		return nil, rangeErr("Series", "orbital column %d requested, the LDOS has columns 0 to %d", orbital, cols-1)
	}
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= rows {
		d = dest[0][:rows]
	}
	return mat.Col(d, orbital, L.dos[atom]), nil
}

func (L *LDOS) String() string {
	b, r, c := L.Dims()
	return fmt.Sprintf("LDOS %s: %d blocks x %d points x %d columns, Fermi level %g", nameOrInput(L.filename), b, r, c, L.fermi.value)
}
