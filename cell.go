/*
 * cell.go, part of goCell.
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

import (
	"fmt"
	"math"
	"strings"

	v3 "github.com/rmera/gocell/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Cell is a periodic structure: 3 lattice vectors, and the fractional
// coordinates and chemical symbols of the atoms in the unit cell.
// A Cell is never modified after it is built. All the methods returning
// matrices or slices return copies. Cells must be built with NewCell,
// NewCellCartesian or FromStructure; the zero value is not usable.
type Cell struct {
	lattice *v3.Matrix
	frac    *v3.Matrix
	symbols []string
}

// NewCell returns a Cell with the given lattice vectors (one per row), fractional coordinates
// and symbols. The data is copied. It returns an error wrapping ErrShapeMismatch if the lattice is not
// 3x3 or if the number of coordinates and symbols differ.
func NewCell(lattice, frac *v3.Matrix, symbols []string) (*Cell, error) {
	if err := checkShapes(lattice, frac, symbols, "NewCell"); err != nil {
		return nil, err
	}
	c := &Cell{
		lattice: lattice.Clone(),
		frac:    frac.Clone(),
		symbols: make([]string, len(symbols)),
	}
	copy(c.symbols, symbols)
	return c, nil
}

// NewCellCartesian is like NewCell, but takes cartesian coordinates, in the same units as the
// lattice vectors. They are converted to fractional coordinates using the inverse of the lattice.
func NewCellCartesian(lattice, cart *v3.Matrix, symbols []string) (*Cell, error) {
	if err := checkShapes(lattice, cart, symbols, "NewCellCartesian"); err != nil {
		return nil, err
	}
	frac, err := cartToFrac(lattice, cart)
	if err != nil {
		return nil, errDecorate(err, "NewCellCartesian")
	}
	c := &Cell{
		lattice: lattice.Clone(),
		frac:    frac,
		symbols: make([]string, len(symbols)),
	}
	copy(c.symbols, symbols)
	return c, nil
}

// FromStructure returns a Cell with the data of any Structure.
func FromStructure(s Structure) (*Cell, error) {
	if c, ok := s.(*Cell); ok {
		return c, nil
	}
	c, err := NewCell(s.Lattice(), s.Frac(), s.Symbols())
	if err != nil {
		return nil, errDecorate(err, "FromStructure")
	}
	return c, nil
}

func checkShapes(lattice, coords *v3.Matrix, symbols []string, caller string) error {
	if lattice == nil || coords == nil {
		return &CError{msg: "goCell: nil lattice or coordinates", deco: []string{caller}, critical: true}
	}
	if r, c := lattice.Dims(); r != 3 || c != 3 {
		return shapeMismatch(caller, "goCell: shape mismatch: lattice is %dx%d, not 3x3", r, c)
	}
	if r, c := coords.Dims(); c != 3 {
		return shapeMismatch(caller, "goCell: shape mismatch: coordinates are %dx%d, not Nx3", r, c)
	}
	if n := coords.NVecs(); n != len(symbols) {
		return shapeMismatch(caller, "goCell: shape mismatch: %d coordinates but %d symbols", n, len(symbols))
	}
	return nil
}

func cartToFrac(lattice, cart *v3.Matrix) (*v3.Matrix, error) {
	inv := v3.Zeros(3)
	if err := inv.Inverse(lattice); err != nil {
		return nil, &CError{msg: "goCell: singular lattice: " + err.Error(), deco: []string{"cartToFrac"}, critical: true, wrapped: err}
	}
	frac := v3.Zeros(cart.NVecs())
	frac.Mul(cart, inv)
	return frac, nil
}

// Len returns the number of atoms in the cell.
func (C *Cell) Len() int {
	return len(C.symbols)
}

// Lattice returns a copy of the lattice vectors, one per row.
func (C *Cell) Lattice() *v3.Matrix {
	return C.lattice.Clone()
}

// Frac returns a copy of the fractional coordinates, as given when the cell was built.
func (C *Cell) Frac() *v3.Matrix {
	return C.frac.Clone()
}

// Symbols returns a copy of the chemical symbols.
func (C *Cell) Symbols() []string {
	ret := make([]string, len(C.symbols))
	copy(ret, C.symbols)
	return ret
}

// Symbol returns the chemical symbol of the ith atom. Panics if i is out of range.
func (C *Cell) Symbol(i int) string {
	return C.symbols[i]
}

// Cartesian returns the cartesian coordinates of the atoms, in the units
// of the lattice vectors.
func (C *Cell) Cartesian() *v3.Matrix {
	var cart mat.Dense
	cart.Mul(v3.Matrix2Dense(C.frac), v3.Matrix2Dense(C.lattice))
	return v3.Dense2Matrix(&cart)
}

// ok returns false for cells not built by one of the constructors.
func (C *Cell) ok() bool {
	return C != nil && C.lattice != nil && C.frac != nil
}

// Wrapped returns the fractional coordinates with every component
// brought into [0,1).
func (C *Cell) Wrapped() *v3.Matrix {
	w := C.frac.Clone()
	r := w.NVecs()
	for i := 0; i < r; i++ {
		row := w.RawRowView(i)
		for j, v := range row {
			v -= math.Floor(v)
			if v >= 1 { //-1e-17 - floor(-1e-17) rounds up to 1.
				v = 0
			}
			row[j] = v
		}
	}
	return w
}

// Volume returns the volume of the cell, in the cube of the lattice units.
func (C *Cell) Volume() float64 {
	return math.Abs(C.lattice.Det())
}

// Masses returns the mass of each atom, in amu. It returns an error if
// any symbol is not in the mass table.
func (C *Cell) Masses() ([]float64, error) {
	ret := make([]float64, C.Len())
	for i, s := range C.symbols {
		m, ok := symbolMass[s]
		if !ok {
			return nil, &CError{msg: fmt.Sprintf("goCell: no mass for symbol %q (atom %d)", s, i), deco: []string{"Masses"}, critical: true}
		}
		ret[i] = m
	}
	return ret, nil
}

// TotalMass returns the sum of the masses of all atoms in m.
func TotalMass(m Masser) (float64, error) {
	masses, err := m.Masses()
	if err != nil {
		return 0, errDecorate(err, "TotalMass")
	}
	return floats.Sum(masses), nil
}

// Density returns the density of the cell in g/cm3, assuming the lattice
// is given in Angstroms. It returns an error for a cell with zero volume.
func (C *Cell) Density() (float64, error) {
	total, err := TotalMass(C)
	if err != nil {
		return 0, errDecorate(err, "Density")
	}
	vol := C.Volume()
	if vol == 0 {
		return 0, &CError{msg: "goCell: singular lattice: the cell has no volume", deco: []string{"Density"}, critical: true}
	}
	return total * amuA3ToGcm3 / vol, nil
}

// Formula returns the chemical formula of the cell contents, with elements
// in order of first appearance, i.e. "Na4Cl4".
func (C *Cell) Formula() string {
	counts := make(map[string]int, len(C.symbols))
	order := make([]string, 0, len(C.symbols))
	for _, s := range C.symbols {
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}
	var b strings.Builder
	for _, s := range order {
		b.WriteString(s)
		if counts[s] > 1 {
			fmt.Fprintf(&b, "%d", counts[s])
		}
	}
	return b.String()
}

// String returns a short human-readable description of the cell.
func (C *Cell) String() string {
	return fmt.Sprintf("%s (%d atoms) lattice:%v", C.Formula(), C.Len(), C.lattice)
}
