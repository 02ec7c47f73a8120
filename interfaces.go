/*
 * interfaces.go, part of goCell.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package cell

import v3 "github.com/rmera/gocell/v3"

// Structure is the interface for anything that can describe a periodic
// structure: the output of any structure reader, including a *Cell.
type Structure interface {

	//Lattice returns the 3 lattice vectors, one per row.
	Lattice() *v3.Matrix

	//Frac returns the fractional coordinates of the atoms, one atom per row.
	Frac() *v3.Matrix

	//Symbols returns the chemical symbols of the atoms, in the same order
	//as the coordinates.
	Symbols() []string
}

// Masser can  return a slice with the masses of each atom in the reference.
type Masser interface {

	//Returns a slice with the masses of all atoms
	Masses() ([]float64, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the decoration slice after the current call. An empty string adds nothing.
	Critical() bool
}
