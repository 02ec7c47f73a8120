/*
 * equivalence.go, part of goCell.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultTolerance is the tolerance used when none is given, in lattice units
// for the lattice vectors, and in fractional units for the coordinates.
const DefaultTolerance = 1e-5

// Options contains the options for comparing two cells.
type Options struct {
	tolerance float64
}

// DefaultOptions returns the options with the default tolerance.
func DefaultOptions() *Options {
	return &Options{tolerance: DefaultTolerance}
}

// Tolerance returns the tolerance for the comparison,
// and sets it to a new value, if given. Negative and NaN values are ignored.
func (O *Options) Tolerance(tol ...float64) float64 {
	if len(tol) > 0 && tol[0] >= 0 {
		O.tolerance = tol[0]
	}
	return O.tolerance
}

// Check identifies one of the three tests that two cells must pass to be equivalent.
type Check int

const (
	LatticeCheck Check = iota
	PositionCheck
	SpeciesCheck
)

func (c Check) String() string {
	switch c {
	case LatticeCheck:
		return "lattice"
	case PositionCheck:
		return "positions"
	case SpeciesCheck:
		return "species"
	}
	return fmt.Sprintf("Check(%d)", int(c))
}

// Report contains the result of comparing two cells.
// All the entries of both cells are always compared.
type Report struct {
	Tolerance float64

	Lattice   bool //did the lattice vectors match?
	Positions bool
	Species   bool

	MaxLatticeDev float64

	//For each atom, the largest absolute difference in a fractional coordinate,
	//after removing whole lattice translations.
	AtomDevs           []float64
	MaxPositionDev     float64
	MeanPositionDev    float64
	PositionMismatches []int

	SpeciesMismatches []int
}

// Equivalent returns true if all the checks passed.
func (R *Report) Equivalent() bool {
	return R.Lattice && R.Positions && R.Species
}

// Failed returns the checks that didn't pass, in the order they are performed.
func (R *Report) Failed() []Check {
	var ret []Check
	if !R.Lattice {
		ret = append(ret, LatticeCheck)
	}
	if !R.Positions {
		ret = append(ret, PositionCheck)
	}
	if !R.Species {
		ret = append(ret, SpeciesCheck)
	}
	return ret
}

func okOrFailed(b bool) string {
	if b {
		return "ok"
	}
	return "FAILED"
}

func intsString(ints []int) string {
	s := make([]string, len(ints))
	for i, v := range ints {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, ", ")
}

// String returns a report, suitable to show to a user.
func (R *Report) String() string {
	var b strings.Builder
	if R.Equivalent() {
		fmt.Fprintf(&b, "equivalent (tolerance %g)\n", R.Tolerance)
	} else {
		failed := R.Failed()
		names := make([]string, len(failed))
		for i, f := range failed {
			names[i] = f.String()
		}
		fmt.Fprintf(&b, "not equivalent (tolerance %g): failed %s\n", R.Tolerance, strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "  lattice:   %s, max deviation %.3e\n", okOrFailed(R.Lattice), R.MaxLatticeDev)
	fmt.Fprintf(&b, "  positions: %s, max deviation %.3e, mean %.3e", okOrFailed(R.Positions), R.MaxPositionDev, R.MeanPositionDev)
	if len(R.PositionMismatches) > 0 {
		fmt.Fprintf(&b, " (atoms %s)", intsString(R.PositionMismatches))
	}
	fmt.Fprintf(&b, "\n  species:   %s", okOrFailed(R.Species))
	if len(R.SpeciesMismatches) > 0 {
		fmt.Fprintf(&b, " (atoms %s)", intsString(R.SpeciesMismatches))
	}
	return b.String()
}

// within returns true if the absolute deviation dev is below tol.
// An exact zero always passes, so a cell is equivalent to itself even with tol=0.
// NaN never passes.
func within(dev, tol float64) bool {
	return dev < tol || dev == 0
}

// maxAbs returns the largest absolute value in v. A NaN anywhere in v gives NaN.
func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		x = math.Abs(x)
		if math.IsNaN(x) {
			return x
		}
		if x > m {
			m = x
		}
	}
	return m
}

// PeriodicDiff puts in dst the difference a-b between 2 sets of fractional
// coordinates, with the nearest integer subtracted from each component, so
// the result is in [-0.5,0.5]. Panics if the lengths of dst, a and b are not equal.
func PeriodicDiff(dst, a, b []float64) []float64 {
	floats.SubTo(dst, a, b)
	for i, v := range dst {
		dst[i] = v - math.RoundToEven(v)
	}
	return dst
}

// Compare compares the cells a and b and returns a report with the result.
// An error wrapping ErrShapeMismatch is returned if the cells don't have
// the same number of atoms. Non-equivalent cells are not an error.
// If opts is nil, the default options are used.
func Compare(a, b *Cell, opts *Options) (*Report, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if !a.ok() || !b.ok() {
		return nil, &CError{msg: "goCell: nil or uninitialized cell given", deco: []string{"Compare"}, critical: true}
	}
	if a.Len() != b.Len() || a.frac.NVecs() != b.frac.NVecs() {
		return nil, shapeMismatch("Compare", "goCell: shape mismatch: %d atoms vs %d atoms", a.Len(), b.Len())
	}
	tol := opts.Tolerance()
	R := &Report{Tolerance: tol}

	latdiff := make([]float64, 9)
	floats.SubTo(latdiff, a.lattice.Data(), b.lattice.Data())
	R.MaxLatticeDev = maxAbs(latdiff)
	R.Lattice = within(R.MaxLatticeDev, tol)

	n := a.Len()
	R.AtomDevs = make([]float64, n)
	d := make([]float64, 3)
	for i := 0; i < n; i++ {
		PeriodicDiff(d, a.frac.RawRowView(i), b.frac.RawRowView(i))
		R.AtomDevs[i] = maxAbs(d)
		if !within(R.AtomDevs[i], tol) {
			R.PositionMismatches = append(R.PositionMismatches, i)
		}
	}
	R.Positions = len(R.PositionMismatches) == 0
	R.MaxPositionDev = maxAbs(R.AtomDevs)
	R.MeanPositionDev = stat.Mean(R.AtomDevs, nil)

	for i := 0; i < n; i++ {
		if a.symbols[i] != b.symbols[i] {
			R.SpeciesMismatches = append(R.SpeciesMismatches, i)
		}
	}
	R.Species = len(R.SpeciesMismatches) == 0
	return R, nil
}

// CompareStructures is like Compare, but takes any Structure.
func CompareStructures(a, b Structure, opts *Options) (*Report, error) {
	ca, err := FromStructure(a)
	if err != nil {
		return nil, errDecorate(err, "CompareStructures")
	}
	cb, err := FromStructure(b)
	if err != nil {
		return nil, errDecorate(err, "CompareStructures")
	}
	R, err := Compare(ca, cb, opts)
	if err != nil {
		return nil, errDecorate(err, "CompareStructures")
	}
	return R, nil
}

// ValidTolerance returns an error if tol can't be used as a tolerance, i.e.
// if it is negative or NaN.
func ValidTolerance(tol float64) error {
	if !(tol >= 0) {
		return &CError{msg: fmt.Sprintf("goCell: invalid tolerance %g", tol), deco: []string{"ValidTolerance"}, critical: true}
	}
	return nil
}

// Equivalent returns true if the cells a and b describe the same structure, within the
// tolerance given (DefaultTolerance if no tolerance is given). The lattice vectors, the fractional
// coordinates, modulo whole lattice translations, and the chemical symbols, are compared
// atom by atom, in order. It returns an error wrapping ErrShapeMismatch if the cells have
// different numbers of atoms, and an error if the tolerance is negative or NaN.
func Equivalent(a, b *Cell, tolerance ...float64) (bool, error) {
	o := DefaultOptions()
	if len(tolerance) > 0 {
		if err := ValidTolerance(tolerance[0]); err != nil {
			return false, errDecorate(err, "Equivalent")
		}
		o.Tolerance(tolerance[0])
	}
	R, err := Compare(a, b, o)
	if err != nil {
		return false, errDecorate(err, "Equivalent")
	}
	return R.Equivalent(), nil
}
