/*
 * options.go, part of godos.
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

//Options contains the options for reading DOSCAR files.
type Options struct {
	fermi   float64
	recover bool
}

//DefaultOptions returns the options used when none are given:
//no Fermi shift, and recovery of a missing total DOS block enabled.
func DefaultOptions() *Options {
	r := new(Options)
	r.fermi = 0.0
	r.recover = true
	return r
}

//Returns the Fermi level that will be set right after reading,
//and sets it to a new value, if given.
//Setting it to 0 leaves the energies as they are in the file.
func (O *Options) Fermi(e ...float64) float64 {
	if len(e) > 0 {
		O.fermi = e[0]
	}
	return O.fermi
}

//Returns whether a DOSCAR lacking the leading total DOS block
//(as written by some old VASP versions) will be read, with a zero block
//in place of the missing one, and sets it to a new value, if given.
//If false, such files give an error.
func (O *Options) Recover(r ...bool) bool {
	if len(r) > 0 {
		O.recover = r[0]
	}
	return O.recover
}

func optionsOrDefault(options []*Options) *Options {
	if len(options) > 0 && options[0] != nil {
		return options[0]
	}
	return DefaultOptions()
}
