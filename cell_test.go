/*
 * cell_test.go, part of goCell.
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
	"errors"
	"math"
	"testing"

	v3 "github.com/rmera/gocell/v3"
	"gonum.org/v1/gonum/mat"
)

func TestNewCellShapes(Te *testing.T) {
	L, _ := v3.NewMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	F, _ := v3.NewMatrix([]float64{0, 0, 0, 0.5, 0.5, 0.5})
	if _, err := NewCell(L, F, []string{"Na"}); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("2 coordinates and 1 symbol should be a shape mismatch, got %v", err)
	}
	if _, err := NewCell(F, F, []string{"Na", "Cl"}); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("a 2x3 lattice should be a shape mismatch, got %v", err)
	}
	if _, err := NewCell(nil, F, []string{"Na", "Cl"}); err == nil {
		Te.Error("a nil lattice should be an error")
	}
	wide := v3.Dense2Matrix(mat.NewDense(2, 4, []float64{0, 0, 0, 0, 0.5, 0.5, 0.5, 0}))
	if _, err := NewCell(L, wide, []string{"Na", "Cl"}); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("2x4 coordinates should be a shape mismatch, got %v", err)
	}
	s := plainStructure{L, wide, []string{"Na", "Cl"}}
	if _, err := CompareStructures(s, s, nil); !errors.Is(err, ErrShapeMismatch) {
		Te.Errorf("a structure with 2x4 coordinates should be a shape mismatch, got %v", err)
	}
}

func TestZeroCell(Te *testing.T) {
	c := mustCell(Te, cubic, []float64{0, 0, 0}, "Na")
	for _, pair := range [][2]*Cell{{&Cell{}, &Cell{}}, {c, &Cell{}}, {nil, c}} {
		if _, err := Compare(pair[0], pair[1], nil); err == nil {
			Te.Error("comparing an unbuilt cell should be an error")
		}
	}
}

func TestCellIsImmutable(Te *testing.T) {
	lat := []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}
	L, _ := v3.NewMatrix(lat)
	F, _ := v3.NewMatrix([]float64{0.1, 0.2, 0.3})
	sym := []string{"Na"}
	c, err := NewCell(L, F, sym)
	if err != nil {
		Te.Fatal(err)
	}
	lat[0] = 100
	sym[0] = "K"
	F.Set(0, 0, 0.9)
	if c.Lattice().At(0, 0) != 1 || c.Symbol(0) != "Na" || c.Frac().At(0, 0) != 0.1 {
		Te.Error("changing the inputs should not change the cell")
	}
	c.Lattice().Set(0, 0, 100)
	c.Symbols()[0] = "K"
	if c.Lattice().At(0, 0) != 1 || c.Symbol(0) != "Na" {
		Te.Error("changing returned values should not change the cell")
	}
}

func TestCartesian(Te *testing.T) {
	L, _ := v3.NewMatrix([]float64{4, 0, 0, 2, 4, 0, 0, 0, 5})
	cart, _ := v3.NewMatrix([]float64{3, 2, 2.5, 0, 0, 0})
	c, err := NewCellCartesian(L, cart, []string{"Cl", "Na"})
	if err != nil {
		Te.Fatal(err)
	}
	want := []float64{0.5, 0.5, 0.5, 0, 0, 0}
	for i, v := range c.Frac().Data() {
		if math.Abs(v-want[i]) > 1e-12 {
			Te.Errorf("wrong fractional coordinates %v", c.Frac())
			break
		}
	}
	back := c.Cartesian()
	for i, v := range back.Data() {
		if math.Abs(v-cart.Data()[i]) > 1e-12 {
			Te.Errorf("wrong cartesian coordinates %v", back)
			break
		}
	}
	S, _ := v3.NewMatrix([]float64{1, 0, 0, 1, 0, 0, 0, 0, 1})
	if _, err := NewCellCartesian(S, cart, []string{"Cl", "Na"}); err == nil {
		Te.Error("a singular lattice should give an error")
	}
}

func TestWrapped(Te *testing.T) {
	c := mustCell(Te, cubic, []float64{1.25, -0.25, 0, -1e-17, 2, 0.999}, "Na", "Cl")
	want := []float64{0.25, 0.75, 0, 0, 0, 0.999}
	for i, v := range c.Wrapped().Data() {
		if math.Abs(v-want[i]) > 1e-12 || v < 0 || v >= 1 {
			Te.Errorf("component %d: got %g, wanted %g", i, v, want[i])
		}
	}
	eq, err := Equivalent(c, mustCell(Te, cubic, c.Wrapped().Data(), "Na", "Cl"))
	if err != nil || !eq {
		Te.Errorf("wrapping should not change the structure: %v %v", eq, err)
	}
}

func TestDerived(Te *testing.T) {
	c := mustCell(Te, cubic, []float64{0, 0, 0, 0.5, 0.5, 0.5}, "Na", "Cl")
	if v := c.Volume(); math.Abs(v-5.69*5.69*5.69) > 1e-9 {
		Te.Errorf("wrong volume %g", v)
	}
	if f := c.Formula(); f != "NaCl" {
		Te.Errorf("wrong formula %s", f)
	}
	d, err := c.Density()
	if err != nil {
		Te.Fatal(err)
	}
	//one formula unit of NaCl in a 5.69 A cube.
	if math.Abs(d-0.5270) > 1e-3 {
		Te.Errorf("wrong density %g", d)
	}
	u := mustCell(Te, cubic, []float64{0, 0, 0}, "Xx")
	if _, err := u.Masses(); err == nil {
		Te.Error("an unknown symbol should have no mass")
	}
	m, err := TotalMass(c)
	if err != nil || math.Abs(m-58.44) > 1e-9 {
		Te.Errorf("wrong total mass %g %v", m, err)
	}
	var _ Structure = c

	flat := mustCell(Te, []float64{1, 0, 0, 1, 0, 0, 0, 0, 1}, []float64{0, 0, 0}, "Na")
	if d, err := flat.Density(); err == nil {
		Te.Errorf("a cell without volume should have no density, got %g", d)
	}
}

func TestFromStructure(Te *testing.T) {
	c := mustCell(Te, cubic, []float64{0, 0, 0, 0.5, 0.5, 0.5}, "Na", "Cl")
	s := plainStructure{c.Lattice(), c.Frac(), c.Symbols()}
	R, err := CompareStructures(s, c, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if !R.Equivalent() {
		Te.Errorf("a cell and its plain copy should be equivalent:\n%s", R)
	}
}

type plainStructure struct {
	lat, frac *v3.Matrix
	sym       []string
}

func (p plainStructure) Lattice() *v3.Matrix { return p.lat }
func (p plainStructure) Frac() *v3.Matrix    { return p.frac }
func (p plainStructure) Symbols() []string   { return p.sym }
