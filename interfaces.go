/*
 * interfaces.go, part of godos.
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

//Errors

// Decorator is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Decorator interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice resulting from the current call. If passed an empty string, it just returns the current value.
}

// FileError is the interface for errors associated to a DOS file.
type FileError interface {
	Decorator
	Critical() bool
	FileName() string
	Format() string
}

// Seriesr is anything that can give an energy axis and a
// DOS series over it. *LDOS implements it, and the dosplot
// package only needs this.
type Seriesr interface {
	EnergyGrid() ([]float64, error)
	Series(atom, orbital int, dest ...[]float64) ([]float64, error)
}
