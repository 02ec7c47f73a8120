/*
 * gonum.go, part of goCell.
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

//gonum.go contains what is needed for handling the gonum/mat types.

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space.
// Within the package it is understood that a "vector" is a row vector, i.e.
// one lattice vector, or the coordinates of one atom.
type Matrix struct {
	*mat.Dense
}

func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

func Dense2Matrix(A *mat.Dense) *Matrix {
	return &Matrix{A}
}

// NewMatrix generates and returns a Matrix with 3 columns from data.
// The data slice is used as the backing storage, it is not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice lenght %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return nil, Error{"Can't build a Matrix from an empty slice", []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

// Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// Len is an alias for NVecs.
func (F *Matrix) Len() int {
	return F.NVecs()
}

// VecView returns a view of the ith vector of the matrix. Changes in the view are
// reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

// Vec returns a copy of the ith vector of F as a slice.
func (F *Matrix) Vec(i int) []float64 {
	ret := make([]float64, 3)
	copy(ret, F.RawRowView(i))
	return ret
}

// Clone returns a deep copy of F.
func (F *Matrix) Clone() *Matrix {
	return &Matrix{mat.DenseCopyOf(F.Dense)}
}

// Data returns a copy of the elements of F, vector after vector.
func (F *Matrix) Data() []float64 {
	r := F.NVecs()
	ret := make([]float64, 0, 3*r)
	for i := 0; i < r; i++ {
		ret = append(ret, F.RawRowView(i)...)
	}
	return ret
}

// Det returns the determinant of F. Panics if F is not 3x3.
func (F *Matrix) Det() float64 {
	if F.NVecs() != 3 {
		panic(ErrDeterminant)
	}
	return mat.Det(F.Dense)
}

// Inverse puts the inverse of A in the receiver. A must be 3x3.
// It returns an error if A is singular or near-singular.
func (F *Matrix) Inverse(A *Matrix) error {
	if A.NVecs() != 3 || F.NVecs() != 3 {
		panic(ErrShape)
	}
	err := F.Dense.Inverse(A.Dense)
	if err != nil {
		return Error{fmt.Sprintf("goCell/v3: Can't invert matrix: %s", err.Error()), []string{"Inverse"}, true}
	}
	return nil
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v = append(v, fmt.Sprintf(" %9.5f %9.5f %9.5f", row[0], row[1], row[2]))
	}
	return "\n[" + strings.TrimPrefix(strings.Join(v, "\n"), " ") + " ]"
}

//Errors

// the same as cell.Error but avoids a circular import.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

// Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

var _ errorInt = Error{}

// PanicMsg is a message used for panics, even though it does satisfy the error interface.
// for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix = PanicMsg("goCell/v3: A Matrix should have 3 columns")
	ErrDeterminant  = PanicMsg("goCell/v3: Determinants are only available for 3x3 matrices")
	ErrShape        = PanicMsg("goCell/v3: Dimension mismatch")
)
