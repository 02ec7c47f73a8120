/*
 * doc.go, part of goCell.
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

/*
Package cell is the main package of the goCell library. It provides a Cell
type for periodic (crystal) structures, and functions to decide whether two
cells describe the same crystal. Its main use is to check structure-file
readers against each other: the cell produced by a new reader is compared
with a reference cell obtained from a trusted one.

	**goCell Capabilities**

	Compares two cells: lattice vectors, fractional coordinates (modulo
	whole lattice translations, so 0.9999999 and 0.0 are the same
	coordinate) and chemical symbols, atom by atom, within a tolerance.
	The comparison returns a Report telling which of the checks failed.

	Compares many pairs of structures concurrently.

	Converts between cartesian and fractional coordinates, wraps
	coordinates into the unit cell, and obtains volumes, densities and
	formulas.

	Reads and writes cells as JSON or YAML documents, optionally
	compressed with zstd or gzip.

Atom ordering matters: atoms are compared by index, and no attempt is
made to match permuted atoms.

The subpackage v3 provides the Nx3 matrix type used for lattices and
coordinates, cellplot plots the deviations found in a comparison, and
cmd/cellcmp is a command-line interface to the library.
*/
package cell
