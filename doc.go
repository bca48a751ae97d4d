/*
 * doc.go, part of godos.
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

/*Package dos reads densities of states from VASP DOSCAR files.



	**Capabilities**


    Reads DOSCAR files, plain or compressed with zstd or gzip, into an LDOS,
	a 3D array of blocks x DOS points x columns, backed by gonum matrices.

    Reads DOSCARs from old VASP versions, that don't write the total DOS block.
	A zero block is put in its place and a warning is logged.

    Shifts the energies by a Fermi level. Setting a new level undoes the
	previous one, so the energies are always E_file - E_fermi.

    Gives the energy grid and the DOS for any atom/orbital pair.

    Documents the usual column conventions (spin polarization, phase factors)
	as Layout values, without enforcing them.

The dosplot subpackage draws the DOSs with gonum/plot.

Logging goes through klog. Run programs with -v=4 to see each block as it is read.*/
package dos
